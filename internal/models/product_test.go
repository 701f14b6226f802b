// internal/models/product_test.go
package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Widget",
		"description": "Nice widget",
		"price":       "9.99",
		"image_url":   "http://img.example.com/widget.png",
		"category":    "tools",
	}
}

func TestDeserialize(t *testing.T) {
	var p Product
	require.NoError(t, p.Deserialize(validPayload()))

	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "Nice widget", p.Description)
	assert.Equal(t, "9.99", p.Price.StringFixed(2))
	assert.Equal(t, "http://img.example.com/widget.png", p.ImageURL)
	assert.Equal(t, "tools", p.Category)

	// optional flags take their defaults when absent
	assert.True(t, p.Availability)
	assert.False(t, p.Discontinued)
	assert.False(t, p.Favorited)
}

func TestDeserializeExplicitFlags(t *testing.T) {
	data := validPayload()
	data["availability"] = false
	data["discontinued"] = true
	data["favorited"] = true

	var p Product
	require.NoError(t, p.Deserialize(data))
	assert.False(t, p.Availability)
	assert.True(t, p.Discontinued)
	assert.True(t, p.Favorited)
}

func TestDeserializeMissingKey(t *testing.T) {
	for _, key := range []string{"name", "description", "price", "image_url", "category"} {
		data := validPayload()
		delete(data, key)

		var p Product
		err := p.Deserialize(data)
		require.Error(t, err, key)

		var dve *DataValidationError
		require.ErrorAs(t, err, &dve)
		assert.Contains(t, err.Error(), "missing "+key)
	}
}

func TestDeserializeNilData(t *testing.T) {
	var p Product
	err := p.Deserialize(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad or no data")
}

func TestDeserializeBadAttributeTypes(t *testing.T) {
	data := validPayload()
	data["name"] = 42.0

	var p Product
	err := p.Deserialize(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid attribute: name")

	data = validPayload()
	data["availability"] = "yes"
	err = p.Deserialize(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid attribute: availability")
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		value    interface{}
		expected string
	}{
		{"9.99", "9.99"},
		{"10", "10.00"},
		{12.5, "12.50"},
		{json.Number("3.25"), "3.25"},
		{7, "7.00"},
		{int64(8), "8.00"},
	}
	for _, tc := range cases {
		price, err := ParsePrice(tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, price.StringFixed(2))
	}
}

func TestParsePriceRejectsGarbage(t *testing.T) {
	for _, value := range []interface{}{"not-a-number", "", true, nil, []string{"9.99"}} {
		_, err := ParsePrice(value)
		require.Error(t, err, "%v should not parse", value)

		var dve *DataValidationError
		assert.ErrorAs(t, err, &dve)
	}
}

func TestParsePriceRejectsNegative(t *testing.T) {
	_, err := ParsePrice("-1.00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")

	_, err = ParsePrice(-0.01)
	require.Error(t, err)
}

func TestSerialize(t *testing.T) {
	now := time.Now().UTC()
	p := Product{
		ID:           7,
		Name:         "Widget",
		Description:  "Nice widget",
		Price:        decimal.RequireFromString("9.9"),
		ImageURL:     "http://img.example.com/widget.png",
		Category:     "tools",
		Availability: true,
		CreatedDate:  now,
		UpdatedDate:  now,
	}

	data := p.Serialize()
	assert.Equal(t, uint(7), data["id"])
	assert.Equal(t, "Widget", data["name"])
	assert.Equal(t, "9.90", data["price"], "price is a fixed-point decimal string")
	assert.Equal(t, true, data["availability"])
	assert.Equal(t, false, data["discontinued"])
	assert.Equal(t, false, data["favorited"])
	assert.Equal(t, now, data["created_date"])
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	original := Product{
		Name:         "Round Trip",
		Description:  "back and forth",
		Price:        decimal.RequireFromString("123.45"),
		ImageURL:     "http://img.example.com/rt.png",
		Category:     "misc",
		Availability: false,
		Favorited:    true,
	}

	var restored Product
	require.NoError(t, restored.Deserialize(original.Serialize()))

	assert.Equal(t, original.Name, restored.Name)
	assert.Equal(t, original.Description, restored.Description)
	assert.True(t, original.Price.Equal(restored.Price))
	assert.Equal(t, original.ImageURL, restored.ImageURL)
	assert.Equal(t, original.Category, restored.Category)
	assert.Equal(t, original.Availability, restored.Availability)
	assert.Equal(t, original.Discontinued, restored.Discontinued)
	assert.Equal(t, original.Favorited, restored.Favorited)
}
