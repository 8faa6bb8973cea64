package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nvisionfilms/Prenjulum-Store/internal/cart"
	"github.com/Nvisionfilms/Prenjulum-Store/internal/events"
	"github.com/Nvisionfilms/Prenjulum-Store/internal/handler"
	"github.com/Nvisionfilms/Prenjulum-Store/internal/mail"
	"github.com/Nvisionfilms/Prenjulum-Store/internal/repository"
	"github.com/Nvisionfilms/Prenjulum-Store/internal/service"
	"github.com/Nvisionfilms/Prenjulum-Store/pkg/config"
	"github.com/Nvisionfilms/Prenjulum-Store/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Info("Service configuration",
		zap.String("port", cfg.Port),
		zap.Bool("redis_carts", cfg.RedisURL != ""),
		zap.Bool("kafka_events", cfg.KafkaBrokers != ""))

	ctx := context.Background()

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := repository.Migrate(ctx, pool); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Cart storage: redis when configured, in-process otherwise.
	var cartStorage cart.Storage = cart.NewMemoryStorage()
	var redisStorage *cart.RedisStorage
	if cfg.RedisURL != "" {
		redisStorage, err = cart.NewRedisStorage(cfg.RedisURL, cfg.CartTTL)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisStorage.Close()
		cartStorage = redisStorage
	}

	var publisher service.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer := events.NewProducer(cfg.KafkaBrokers, logger)
		defer producer.Close()
		publisher = producer
	}

	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	reconciler := service.NewInventoryReconciler(productRepo, logger)
	catalogService := service.NewCatalogService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, reconciler, publisher, logger)
	notificationService := service.NewNotificationService(orderRepo, reconciler,
		mail.NewResendSender(cfg.ResendAPIKey), cfg.EmailFrom, cfg.StoreEmail, logger)
	cartService := cart.NewService(cartStorage)

	productHandler := handler.NewProductHandler(catalogService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	receiptHandler := handler.NewReceiptHandler(notificationService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	router.GET("/products", productHandler.ListProducts)
	router.GET("/products/:id", productHandler.GetProduct)
	router.PATCH("/products/:id", productHandler.UpdateProduct)
	router.DELETE("/products/:id", productHandler.DeleteProduct)

	router.GET("/orders", orderHandler.ListOrders)
	router.POST("/orders", orderHandler.CreateOrder)
	router.GET("/orders/:id", orderHandler.GetOrder)
	router.PATCH("/orders/:id", orderHandler.UpdateOrder)

	router.POST("/send-receipt", receiptHandler.SendReceipt)

	router.GET("/cart/:id", cartHandler.GetCart)
	router.POST("/cart/:id/items", cartHandler.AddItem)
	router.PATCH("/cart/:id/items", cartHandler.UpdateQuantity)
	router.DELETE("/cart/:id/items", cartHandler.RemoveItem)
	router.DELETE("/cart/:id", cartHandler.ClearCart)

	router.GET("/health", func(c *gin.Context) {
		status := gin.H{
			"status":  "healthy",
			"service": "storefront",
		}
		if err := pool.Ping(c.Request.Context()); err != nil {
			status["database"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "healthy"
		if redisStorage != nil {
			if err := redisStorage.Ping(c.Request.Context()); err != nil {
				status["redis"] = "unhealthy"
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["redis"] = "healthy"
		}
		c.JSON(http.StatusOK, status)
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}
