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

	"agentMarket/app/echo-server/router"
	"agentMarket/business/catalog"
	"agentMarket/business/consultation"
	"agentMarket/business/copay"
	"agentMarket/business/deals"
	"agentMarket/business/vendor"
	"agentMarket/internal/middleware"
	"agentMarket/internal/repository/notification"
	psqlRepo "agentMarket/internal/repository/postgres"
	redisRepo "agentMarket/internal/repository/redis"
	"agentMarket/internal/rest"
	"agentMarket/pkg/config"
	"agentMarket/pkg/database"
	redisdb "agentMarket/pkg/database/redis"
	"agentMarket/pkg/logger"
	"agentMarket/pkg/metrics"

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
	logger.Info("Starting Agent Services Marketplace", "version", cfg.App.Version)

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
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close Redis client", err)
		}
	}()

	logger.Info("Redis connected successfully")

	metrics.Init()

	// Init notification mailer
	mailer := notification.NewMailRepository(
		notification.MailConfig{
			MailBaseUrl:           cfg.Mail.MailBaseUrl,
			MailBasicAuthUsername: cfg.Mail.MailBasicAuthUsername,
			MailBasicAuthPassword: cfg.Mail.MailBasicAuthPassword,
			MailSenderEmail:       cfg.Mail.MailSenderEmail,
			MailSenderName:        cfg.Mail.MailSenderName,
		},
	)

	// Init repo
	serviceRepo := psqlRepo.NewServiceRepository(db)
	vendorRepo := psqlRepo.NewVendorRepository(db)
	reviewRepo := psqlRepo.NewReviewRepository(db)
	tierRepo := psqlRepo.NewPricingTierRepository(db)
	copayRepo := psqlRepo.NewCoPayRepository(db)
	consultationRepo := psqlRepo.NewConsultationRepository(db)
	dealConfigRepo := psqlRepo.NewDealConfigRepository(db)
	dealEventRepo := psqlRepo.NewDealEventRepository(db)
	curatedRepo := psqlRepo.NewCuratedRepository(db)

	flagRepo := redisRepo.NewFlagRepository(redisClient)
	impressionStore := redisRepo.NewImpressionStore(redisClient)
	dealCache := redisRepo.NewDealCache(redisClient, cfg.Deals.CacheTTL)

	// Init service
	catalogService := catalog.NewCatalogService(serviceRepo, tierRepo, reviewRepo)
	vendorService := vendor.NewVendorService(vendorRepo)
	copayService := copay.NewCoPayService(copayRepo, serviceRepo)
	consultationService := consultation.NewConsultationService(consultationRepo, serviceRepo, mailer)
	dealsService := deals.NewDealsService(
		serviceRepo,
		reviewRepo,
		dealEventRepo,
		curatedRepo,
		dealConfigRepo,
		flagRepo,
		impressionStore,
		dealCache,
		deals.NoopEligibilityChecker{},
		deals.DefaultConfig(),
		cfg.Deals.ClickTokenKey,
		cfg.Deals.ImpressionTTL,
	)

	// Init handler
	serviceHandler := rest.NewServiceHandler(catalogService)
	vendorHandler := rest.NewVendorHandler(vendorService)
	copayHandler := rest.NewCoPayHandler(copayService)
	consultationHandler := rest.NewConsultationHandler(consultationService)
	dealsHandler := rest.NewDealsHandler(dealsService)
	dealsAdminHandler := rest.NewDealsAdminHandler(dealConfigRepo, flagRepo, curatedRepo)

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

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupServiceRoutes(api, serviceHandler, authRequired, adminOnly)
	router.SetupVendorRoutes(api, vendorHandler, authRequired, adminOnly)
	router.SetDealsRoutes(api, dealsHandler)
	router.SetDealsAdminRoutes(api, dealsAdminHandler)
	router.SetCoPayRoutes(api, copayHandler)
	router.SetConsultationRoutes(api, consultationHandler)

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
