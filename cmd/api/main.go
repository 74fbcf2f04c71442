package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "invoice-analytics/api/swagger" // swagger docs
	"invoice-analytics/internal/database"
	"invoice-analytics/internal/handler"
	"invoice-analytics/internal/repository"
	"invoice-analytics/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Invoice Analytics API
// @version         1.0
// @description     Business-analytics dashboard API: invoice aggregations, vendor rankings and a chat-with-data proxy.
// @host            localhost:3001
// @BasePath        /
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dbHost := envOr("DB_HOST", "localhost")
	dbPort := envOr("DB_PORT", "5432")
	dbUser := envOr("DB_USER", "postgres")
	dbPassword := envOr("DB_PASSWORD", "postgres")
	dbName := envOr("DB_NAME", "invoice_analytics")
	dbSslMode := envOr("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up dependencies (Repository -> Service -> Handler)
	invoiceRepo := repository.NewInvoiceRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	invoiceService := service.NewInvoiceService(invoiceRepo)
	vendorService := service.NewVendorService(vendorRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	chatService := service.NewChatService(envOr("VANNA_API_BASE_URL", "http://localhost:8000"))

	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	vendorHandler := handler.NewVendorHandler(vendorService, analyticsService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	chatHandler := handler.NewChatHandler(chatService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration: the dashboard frontend may be served from anywhere
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Register API Routes
	invoiceHandler.RegisterRoutes(router.Group(""))
	vendorHandler.RegisterRoutes(router.Group(""))
	analyticsHandler.RegisterRoutes(router.Group(""))
	chatHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:         ":" + envOr("PORT", "3001"),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then release the DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Printf("Database close error: %v", err)
	}
	log.Println("Server stopped.")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
