package main

import (
	"context"
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"autogestor/internal/caching"
	"autogestor/internal/config"
	"autogestor/internal/handlers"
	"autogestor/internal/jobs"
	"autogestor/internal/logger"
	"autogestor/internal/metrics"
	"autogestor/internal/middleware"
	"autogestor/internal/repositories"
	"autogestor/internal/services"
	"autogestor/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	store, err := services.NewMinioStore(
		cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
		cfg.MinioUseSSL, cfg.MinioBucket, cfg.PublicStorageURL,
	)
	if err != nil {
		zlog.Fatal("object store init failed", zap.Error(err))
	}
	if !cfg.UploadsDisabled {
		if err := store.EnsureBucket(ctx); err != nil {
			zlog.Fatal("bucket check failed", zap.Error(err))
		}
	}

	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Repositories
	profileRepo := repositories.NewProfileRepo(pool)
	dealerRepo := repositories.NewDealerRepo(pool)
	vehicleRepo := repositories.NewVehicleRepo(pool)
	clientRepo := repositories.NewClientRepo(pool)
	contractRepo := repositories.NewContractRepo(pool)
	insuranceRepo := repositories.NewInsuranceRepo(pool)
	concesionarioRepo := repositories.NewConcesionarioRepo(pool)

	// Services
	imageSvc := services.NewImageService(store)
	vehicleSvc := services.NewVehicleService(vehicleRepo, imageSvc, cacheSvc, cfg.UploadsDisabled, zlog)
	clientSvc := services.NewClientService(clientRepo, cacheSvc, zlog)
	contractSvc := services.NewContractService(contractRepo, cacheSvc, zlog)
	insuranceSvc := services.NewInsuranceService(insuranceRepo, cacheSvc, zlog)
	concesionarioSvc := services.NewConcesionarioService(concesionarioRepo, vehicleRepo)
	dealerSvc := services.NewDealerService(dealerRepo, profileRepo)
	dashboardSvc := services.NewDashboardService(vehicleRepo, clientRepo, contractRepo, insuranceRepo, cacheSvc, zlog)

	// Handlers
	vehicleHandlers := handlers.NewVehicleHandlers(vehicleSvc)
	clientHandlers := handlers.NewClientHandlers(clientSvc)
	contractHandlers := handlers.NewContractHandlers(contractSvc)
	insuranceHandlers := handlers.NewInsuranceHandlers(insuranceSvc)
	concesionarioHandlers := handlers.NewConcesionarioHandlers(concesionarioSvc)
	dealerHandlers := handlers.NewDealerHandlers(dealerSvc)
	dashboardHandlers := handlers.NewDashboardHandlers(dashboardSvc)

	// Token verification: JWKS when configured, shared secret otherwise.
	var verifier middleware.TokenVerifier
	if cfg.AuthJWKSURL != "" {
		verifier, err = middleware.NewJWKSVerifier(cfg.AuthJWKSURL)
		if err != nil {
			zlog.Fatal("jwks init failed", zap.Error(err))
		}
	} else {
		verifier = middleware.NewHSVerifier(cfg.JWTSecret)
	}

	// Background insurance status refresh
	statusSvc := jobs.NewInsuranceStatusService(insuranceRepo, zlog)
	scheduler, err := jobs.NewScheduler(statusSvc, zlog)
	if err != nil {
		zlog.Fatal("scheduler init failed", zap.Error(err))
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			zlog.Warn("scheduler shutdown failed", zap.Error(err))
		}
	}()

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(metrics.Middleware())

	// Health and scrape endpoints (no auth required)
	e.GET("/health", handlers.HealthCheck)
	e.GET("/health/ready", func(c echo.Context) error {
		return handlers.ReadinessCheck(c, pool)
	})
	e.GET("/metrics", metrics.Handler())

	v1 := e.Group("/v1")
	v1.Use(middleware.Auth(profileRepo, verifier, zlog))

	v1.GET("/me", dealerHandlers.Me)
	v1.GET("/dealer", dealerHandlers.GetDealer)

	v1.GET("/vehicles", vehicleHandlers.ListVehicles)
	v1.POST("/vehicles", vehicleHandlers.CreateVehicle)
	v1.GET("/vehicles/:id", vehicleHandlers.GetVehicle)
	v1.PUT("/vehicles/:id/consignment", vehicleHandlers.UpdateConsignment)

	v1.GET("/clients", clientHandlers.ListClients)
	v1.POST("/clients", clientHandlers.CreateClient)

	v1.GET("/contracts", contractHandlers.ListContracts)
	v1.POST("/contracts", contractHandlers.CreateContract)

	v1.GET("/insurance", insuranceHandlers.ListInsurance)
	v1.POST("/insurance", insuranceHandlers.CreateInsurance)

	v1.GET("/concesionarios", concesionarioHandlers.ListConcesionarios)
	v1.POST("/concesionarios", concesionarioHandlers.CreateConcesionario)
	v1.GET("/concesionarios/:id", concesionarioHandlers.GetConcesionario)

	v1.GET("/dashboard/stats", dashboardHandlers.GetStats)

	zlog.Info("server starting",
		zap.String("version", version),
		zap.Int("port", cfg.Port),
		zap.String("env", cfg.Env))

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
