package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"botica/internal/handlers"
	"botica/internal/middleware"
	"botica/internal/models"
	"botica/internal/repositories"
	"botica/internal/services"
	"botica/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=botica port=5432 sslmode=disable")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", "supersecretkey")
	viper.SetDefault("AUTH_ENABLED", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := gorm.Open(postgres.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Create the products table on startup if it does not exist yet.
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Product lifecycle events are best effort; the service runs fine
	// without a broker.
	var events services.EventPublisher
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, product events disabled: %v", err)
		} else {
			defer mqClient.Close()
			events = mqClient
		}
	}

	// --- Wiring ---
	productRepo := repositories.NewGORMProductRepository(db)
	productService := services.NewProductService(productRepo, events)
	productHandler := handlers.NewProductHandler(productService)
	authService := services.NewAuthService(viper.GetString("JWT_SECRET"))

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	// The bearer-token check is available but stays off the product routes
	// unless explicitly enabled.
	if viper.GetBool("AUTH_ENABLED") {
		apiV1 = apiV1.Group("", middleware.AuthRequired(authService))
	}

	productHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
