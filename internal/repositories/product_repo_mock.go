package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"botica/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the gateway contract closely enough for unit tests and local
// runs without a database: sequential ids, insertion-order listing, hard
// deletes.
type MockProductRepository struct {
	products map[int]models.Product
	nextID   int
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// Create stores the product under a freshly assigned id.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// List returns products in id order, honouring skip and limit.
func (r *MockProductRepository) List(_ context.Context, skip, limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]models.Product, 0, limit)
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(result) >= limit {
			break
		}
		result = append(result, r.products[id])
	}
	return result, nil
}

// GetByID returns a product by its id.
func (r *MockProductRepository) GetByID(_ context.Context, id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	return &product, nil
}

// Update replaces an existing product in full.
func (r *MockProductRepository) Update(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %d: %w", product.ID, ErrProductNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its id.
func (r *MockProductRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product with ID %d: %w", id, ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}
