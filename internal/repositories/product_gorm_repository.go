package repositories

import (
	"context"
	"errors"
	"fmt"

	"botica/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
// The handle is injected here and scoped per call with WithContext; there is
// no package-level connection state.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create inserts the product and lets the database assign the id.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// List retrieves products in id order with offset/limit pagination.
func (r *GORMProductRepository) List(ctx context.Context, skip, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its primary key.
func (r *GORMProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Update overwrites every field of the existing row. The row's existence is
// checked first so a missing id surfaces as ErrProductNotFound instead of an
// upsert.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	var existing models.Product
	if err := r.db.WithContext(ctx).First(&existing, product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product with ID %d: %w", product.ID, ErrProductNotFound)
		}
		return fmt.Errorf("failed to load product %d for update: %w", product.ID, err)
	}

	// Save writes all fields, including zero values, which gives the full
	// replacement semantics updates require.
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return nil
}

// Delete removes a product by its id.
func (r *GORMProductRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	return nil
}
