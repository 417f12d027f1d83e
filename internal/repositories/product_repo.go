package repositories

import (
	"context"
	"errors"

	"botica/internal/models"
)

// ErrProductNotFound is the only domain-level failure the gateway reports.
// Anything else coming out of a repository is an infrastructure error.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access. It is the
// only layer allowed to talk to the backing store. Implementations perform no
// business validation; inputs are assumed to have passed the schema already.
type ProductRepository interface {
	// Create persists a new product and fills in the assigned id.
	Create(ctx context.Context, product *models.Product) error
	// List returns up to limit products in insertion order, skipping the
	// first skip rows.
	List(ctx context.Context, skip, limit int) ([]models.Product, error)
	// GetByID returns the product with the given id or ErrProductNotFound.
	GetByID(ctx context.Context, id int) (*models.Product, error)
	// Update replaces every field of the stored row with the given values,
	// keeping the id. Returns ErrProductNotFound if no row matches.
	Update(ctx context.Context, product *models.Product) error
	// Delete removes the row permanently. Returns ErrProductNotFound if no
	// row matches.
	Delete(ctx context.Context, id int) error
}
