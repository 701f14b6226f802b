// internal/models/product.go
package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is the persisted catalog entity. A discontinued product keeps its
// row but is hidden from every default read path.
type Product struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"size:63;not null" validate:"required,max=63"`
	Description  string          `json:"description" gorm:"size:1023" validate:"max=1023"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(14,2);not null"`
	ImageURL     string          `json:"image_url" gorm:"size:1023" validate:"max=1023"`
	Category     string          `json:"category" gorm:"size:63" validate:"max=63"`
	Availability bool            `json:"availability" gorm:"default:true;not null"`
	Discontinued bool            `json:"discontinued" gorm:"default:false;not null"`
	Favorited    bool            `json:"favorited" gorm:"default:false;not null"`
	CreatedDate  time.Time       `json:"created_date" gorm:"not null"`
	UpdatedDate  time.Time       `json:"updated_date" gorm:"not null"`
}

// Serialize renders the product as a plain key-value mapping. Price is a
// fixed-point decimal string so no precision is lost in transport.
func (p *Product) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":           p.ID,
		"name":         p.Name,
		"description":  p.Description,
		"price":        p.Price.StringFixed(2),
		"image_url":    p.ImageURL,
		"category":     p.Category,
		"availability": p.Availability,
		"discontinued": p.Discontinued,
		"favorited":    p.Favorited,
		"created_date": p.CreatedDate,
		"updated_date": p.UpdatedDate,
	}
}

// Deserialize populates the product from a key-value mapping. The keys name,
// description, price, image_url and category must all be present; the boolean
// flags default to true/false/false when absent.
func (p *Product) Deserialize(data map[string]interface{}) error {
	if data == nil {
		return NewDataValidationError("body of request contained bad or no data")
	}

	var err error
	if p.Name, err = stringField(data, "name"); err != nil {
		return err
	}
	if p.Description, err = stringField(data, "description"); err != nil {
		return err
	}

	rawPrice, ok := data["price"]
	if !ok {
		return NewDataValidationError("missing price")
	}
	if p.Price, err = ParsePrice(rawPrice); err != nil {
		return err
	}

	if p.ImageURL, err = stringField(data, "image_url"); err != nil {
		return err
	}
	if p.Category, err = stringField(data, "category"); err != nil {
		return err
	}

	if p.Availability, err = boolField(data, "availability", true); err != nil {
		return err
	}
	if p.Discontinued, err = boolField(data, "discontinued", false); err != nil {
		return err
	}
	if p.Favorited, err = boolField(data, "favorited", false); err != nil {
		return err
	}

	return nil
}

// ParsePrice converts a JSON value into a non-negative decimal. Strings,
// numbers and json.Number are accepted; anything unparsable is a client error.
func ParsePrice(value interface{}) (decimal.Decimal, error) {
	var (
		price decimal.Decimal
		err   error
	)

	switch v := value.(type) {
	case string:
		price, err = decimal.NewFromString(strings.TrimSpace(v))
	case json.Number:
		price, err = decimal.NewFromString(v.String())
	case float64:
		price = decimal.NewFromFloat(v)
	case int:
		price = decimal.NewFromInt(int64(v))
	case int64:
		price = decimal.NewFromInt(v)
	default:
		return decimal.Decimal{}, NewDataValidationError("invalid price: must be a decimal number")
	}

	if err != nil {
		return decimal.Decimal{}, NewDataValidationError("invalid price: %v is not a decimal number", value)
	}
	if price.IsNegative() {
		return decimal.Decimal{}, NewDataValidationError("invalid price: must not be negative")
	}
	return price, nil
}

func stringField(data map[string]interface{}, key string) (string, error) {
	raw, ok := data[key]
	if !ok {
		return "", NewDataValidationError("missing %s", key)
	}
	if raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", NewDataValidationError("invalid attribute: %s", key)
	}
	return s, nil
}

func boolField(data map[string]interface{}, key string, fallback bool) (bool, error) {
	raw, ok := data[key]
	if !ok || raw == nil {
		return fallback, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, NewDataValidationError("invalid attribute: %s", key)
	}
	return b, nil
}
