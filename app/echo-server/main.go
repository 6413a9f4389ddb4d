package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vibecart/app/echo-server/router"
	cartService "vibecart/business/cart"
	checkoutService "vibecart/business/checkout"
	ordersService "vibecart/business/orders"
	productService "vibecart/business/product"
	userService "vibecart/business/user"
	"vibecart/internal/middleware"
	"vibecart/internal/repository/notification"
	psqlRepo "vibecart/internal/repository/postgres"
	redisRepo "vibecart/internal/repository/redis"
	"vibecart/internal/rest"
	"vibecart/pkg/config"
	"vibecart/pkg/database"
	redisdb "vibecart/pkg/database/redis"
	"vibecart/pkg/logger"
	"vibecart/pkg/metrics"
	"vibecart/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting VibeCart", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		_ = redisdb.CloseRedisClient(redisClient)
	}()

	mailjetEmail := notification.NewMailjetRepository(
		notification.MailjetConfig{
			MailjetBaseURL:           cfg.Mailjet.MailjetBaseUrl,
			MailjetBasicAuthUsername: cfg.Mailjet.MailjetBasicAuthUsername,
			MailjetBasicAuthPassword: cfg.Mailjet.MailjetBasicAuthPassword,
			MailjetSenderEmail:       cfg.Mailjet.MailjetSenderEmail,
			MailjetSenderName:        cfg.Mailjet.MailjetSenderName,
		},
	)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	cartRepo := psqlRepo.NewCartRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	// Init service
	users := userService.NewUserService(userRepo, validate, sessionRepo)
	products := productService.NewProductService(productRepo)
	carts := cartService.NewCartService(cartRepo, productRepo)
	checkouts := checkoutService.NewCheckoutService(ordersRepo, cartRepo, mailjetEmail)
	orders := ordersService.NewOrdersService(ordersRepo)

	// Init handler
	userHandler := rest.NewUserHandler(users)
	productHandler := rest.NewProductHandler(products)
	cartHandler := rest.NewCartHandler(carts)
	checkoutHandler := rest.NewCheckoutHandler(checkouts)
	adminOrdersHandler := rest.NewAdminOrdersHandler(orders)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(users)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupCartRoutes(api, cartHandler, authRequired)
	router.SetupCheckoutRoutes(api, checkoutHandler, authRequired)
	router.SetupAdminOrderRoutes(api, adminOrdersHandler, authRequired, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
