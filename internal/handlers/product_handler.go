package handlers

import (
	"errors"
	"log"
	"strconv"

	"botica/internal/repositories"
	"botica/internal/schemas"
	"botica/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Defaults for list pagination.
const (
	defaultSkip  = 0
	defaultLimit = 10
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleCreateProduct validates the request body and persists a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input, err := schemas.ParseProductCreate(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, fieldErrs := input.Validate()
	if fieldErrs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": fieldErrs,
		})
	}

	if err := h.service.CreateProduct(c.UserContext(), product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.JSON(product)
}

// HandleListProducts returns one page of products. skip defaults to 0 and
// limit to 10.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", defaultSkip)
	if skip < 0 {
		skip = defaultSkip
	}
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}

	products, err := h.service.ListProducts(c.UserContext(), skip, limit)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}

	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its id.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return invalidProductID(c)
	}

	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return productNotFound(c)
		}
		log.Printf("Error getting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}

	return c.JSON(product)
}

// HandleUpdateProduct validates the body and replaces every field of an
// existing product. The id never changes.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return invalidProductID(c)
	}

	input, err := schemas.ParseProductCreate(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, fieldErrs := input.Validate()
	if fieldErrs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"detail": fieldErrs,
		})
	}
	product.ID = id

	if err := h.service.UpdateProduct(c.UserContext(), product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return productNotFound(c)
		}
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}

	return c.JSON(product)
}

// HandleDeleteProduct removes a product permanently.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return invalidProductID(c)
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return productNotFound(c)
		}
		log.Printf("Error deleting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// A non-integer id segment is a bad request, not a missing product.
func invalidProductID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid product ID",
	})
}

func productNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Product not found",
	})
}
