package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"shopfront/internal/handlers"
	"shopfront/internal/middleware"
	"shopfront/internal/models"
	"shopfront/internal/repositories"
	"shopfront/internal/services"
	"shopfront/internal/storage"
	"shopfront/internal/stores"
	"shopfront/pkg/events"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openDatabase connects to the configured database. SQLite is the
// default so the demo runs with zero setup; Postgres is a config
// switch away.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite":
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", driver)
	}
}

// buildApp wires repositories, stores, services and handlers into a
// Fiber app. mqClient may be nil when no broker is configured.
func buildApp(db *gorm.DB, mqClient *events.Client, jwtSecret string, paymentDelay time.Duration) (*fiber.App, error) {
	if err := db.AutoMigrate(&models.Account{}, &models.Product{}, &storage.UserRecord{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	// --- Repositories and persistence ---
	accountRepo := repositories.NewGORMAccountRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	recordStore := storage.NewGORMStore(db)

	services.SeedDemoCatalog(productRepo)

	// --- User-scoped stores ---
	cartStore := stores.NewCartStore(recordStore)
	wishlistStore := stores.NewWishlistStore(recordStore)
	orderStore := stores.NewOrderStore(recordStore)
	notificationStore := stores.NewNotificationStore(recordStore)
	addressStore := stores.NewAddressStore(recordStore)
	paymentStore := stores.NewPaymentStore(recordStore)

	// --- Services ---
	authService := services.NewAuthService(accountRepo, jwtSecret)
	catalogService := services.NewCatalogService(productRepo)
	checkoutService := services.NewCheckoutService(cartStore, orderStore, notificationStore, mqClient, paymentDelay)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartStore)
	wishlistHandler := handlers.NewWishlistHandler(wishlistStore)
	orderHandler := handlers.NewOrderHandler(orderStore, cartStore, notificationStore, checkoutService)
	notificationHandler := handlers.NewNotificationHandler(notificationStore)
	profileHandler := handlers.NewProfileHandler(addressStore, paymentStore)
	dashboardHandler := handlers.NewDashboardHandler()

	app := fiber.New()
	app.Use(logger.New()) // Request logger

	apiV1 := app.Group("/api/v1")

	// Authentication routes (public)
	authHandler.RegisterRoutes(apiV1)

	// Storefront routes. Guests browse and shop under the shared guest
	// namespace; a valid token switches the stores to that account.
	storefront := apiV1.Group("", middleware.OptionalAuth(authService))
	productHandler.RegisterRoutes(storefront)
	cartHandler.RegisterRoutes(storefront)
	wishlistHandler.RegisterRoutes(storefront)
	orderHandler.RegisterRoutes(storefront)
	notificationHandler.RegisterRoutes(storefront)

	// Profile and dashboard require a signed-in account.
	protected := apiV1.Group("", middleware.AuthRequired(authService))
	profileHandler.RegisterRoutes(protected)
	dashboardHandler.RegisterRoutes(protected)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, nil
}

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "shopfront.db")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("PAYMENT_DELAY_MS", 1500)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	paymentDelay := time.Duration(viper.GetInt("PAYMENT_DELAY_MS")) * time.Millisecond

	// --- Database ---
	db, err := openDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DB_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// The storefront works without a broker; order events just stay off.
	var mqClient *events.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = events.NewClient(events.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, order events disabled: %v", err)
			mqClient = nil
		}
	}
	defer mqClient.Close()

	app, err := buildApp(db, mqClient, viper.GetString("JWT_SECRET"), paymentDelay)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	// --- Order event consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting order event consumer...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeOrderEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start order event consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
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

	log.Println("Server stopped.")
}
