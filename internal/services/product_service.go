package services

import (
	"context"
	"log"

	"botica/internal/models"
	"botica/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes product lifecycle events. Publishing is best
// effort: the CRUD operation has already committed by the time an event goes
// out, so a broker failure is logged, never surfaced to the caller.
type EventPublisher interface {
	PublishProductEvent(event string, payload map[string]interface{}) error
}

// ProductService handles business logic related to products. Validation has
// already happened at the boundary; this layer orchestrates the repository
// and emits events.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher // may be nil when no broker is configured
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// ListProducts retrieves a single page of products.
func (s *ProductService) ListProducts(ctx context.Context, skip, limit int) ([]models.Product, error) {
	return s.repo.List(ctx, skip, limit)
}

// GetProductByID retrieves a single product by its id.
func (s *ProductService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct persists a new product and announces it.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}
	s.publish("product.created", product)
	return nil
}

// UpdateProduct replaces an existing product in full and announces it.
func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}
	s.publish("product.updated", product)
	return nil
}

// DeleteProduct removes a product by its id and announces it.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish("product.deleted", &models.Product{ID: id})
	return nil
}

func (s *ProductService) publish(event string, product *models.Product) {
	if s.events == nil {
		return
	}

	payload := map[string]interface{}{
		"event_id":   uuid.New().String(),
		"product_id": product.ID,
		"name":       product.Name,
		"price":      product.Price,
		"stock":      product.Stock,
	}
	if err := s.events.PublishProductEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", event, product.ID, err)
	}
}
