// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/productcatalog/products-service/internal/models"
)

// ProductService provides the read/write primitives the handlers depend on.
// Every collection read excludes discontinued rows; Find does not, so callers
// can detect an already-discontinued product before exposing it.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// UpdateProductRequest carries a partial field set. Only non-nil fields are
// merged into an existing record.
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=63"`
	Description  *string          `json:"description" validate:"omitempty,max=1023"`
	Price        *decimal.Decimal `json:"price"`
	ImageURL     *string          `json:"image_url" validate:"omitempty,max=1023"`
	Category     *string          `json:"category" validate:"omitempty,max=63"`
	Availability *bool            `json:"availability"`
}

// Apply merges the supplied fields into product, leaving the rest untouched.
// The discontinued and favorited flags are never writable through an update.
func (req *UpdateProductRequest) Apply(product *models.Product) error {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return models.NewDataValidationError("invalid price: must not be negative")
		}
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Availability != nil {
		product.Availability = *req.Availability
	}
	return nil
}

// Create assigns a fresh id, stamps both timestamps and persists the product.
// A storage failure rolls the write back and surfaces as a PersistenceError.
func (s *ProductService) Create(ctx context.Context, product *models.Product) error {
	logrus.WithField("name", product.Name).Info("Creating product")

	now := time.Now().UTC()
	product.ID = 0
	product.CreatedDate = now
	product.UpdatedDate = now

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
	if err != nil {
		logrus.WithError(err).WithField("name", product.Name).Error("Error creating product")
		return &models.PersistenceError{Op: "create", Err: err}
	}
	return nil
}

// Find looks a product up by id, including discontinued rows.
func (s *ProductService) Find(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, &models.PersistenceError{Op: "find", Err: err}
	}
	return &product, nil
}

// Update persists an already-loaded record in place, refreshing updated_date.
func (s *ProductService) Update(ctx context.Context, product *models.Product) error {
	logrus.WithField("id", product.ID).Info("Saving product")

	product.UpdatedDate = time.Now().UTC()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(product).Error
	})
	if err != nil {
		logrus.WithError(err).WithField("id", product.ID).Error("Error updating product")
		return &models.PersistenceError{Op: "update", Err: err}
	}
	return nil
}

// Delete removes the row permanently.
func (s *ProductService) Delete(ctx context.Context, product *models.Product) error {
	logrus.WithField("id", product.ID).Info("Deleting product")

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(product).Error
	})
	if err != nil {
		logrus.WithError(err).WithField("id", product.ID).Error("Error deleting product")
		return &models.PersistenceError{Op: "delete", Err: err}
	}
	return nil
}

// All returns every non-discontinued product sorted by name.
func (s *ProductService) All(ctx context.Context) ([]models.Product, error) {
	return s.collect(s.active(ctx))
}

// FindByName returns non-discontinued products whose name contains the given
// substring, matched case-insensitively.
func (s *ProductService) FindByName(ctx context.Context, name string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(name) + "%"
	return s.collect(s.active(ctx).Where("LOWER(name) LIKE ?", pattern))
}

// FindByCategory returns non-discontinued products whose category contains
// the given substring, matched case-insensitively.
func (s *ProductService) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	pattern := "%" + strings.ToLower(category) + "%"
	return s.collect(s.active(ctx).Where("LOWER(category) LIKE ?", pattern))
}

// FindByAvailability returns non-discontinued products by availability.
func (s *ProductService) FindByAvailability(ctx context.Context, available bool) ([]models.Product, error) {
	return s.collect(s.active(ctx).Where("availability = ?", available))
}

// active is the base query for every collection read: discontinued rows are
// excluded and results are ordered by name, case-insensitively.
func (s *ProductService) active(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("discontinued = ?", false).
		Order("lower(name) ASC")
}

func (s *ProductService) collect(query *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, &models.PersistenceError{Op: "query", Err: err}
	}
	return products, nil
}
