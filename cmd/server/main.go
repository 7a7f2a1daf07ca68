package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nimbatransit/transit-tracker/internal/cache"
	"github.com/nimbatransit/transit-tracker/internal/config"
	"github.com/nimbatransit/transit-tracker/internal/database"
	"github.com/nimbatransit/transit-tracker/internal/handler"
	"github.com/nimbatransit/transit-tracker/internal/middleware"
	"github.com/nimbatransit/transit-tracker/internal/repository"
	"github.com/nimbatransit/transit-tracker/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	if cacheClient != nil {
		defer cacheClient.Close()
	}

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		if err := database.SeedData(context.Background(), pool); err != nil {
			log.Fatal().Err(err).Msg("failed to seed data")
		}
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool, cacheClient)
	router.GET("/health", healthHandler.Health)

	setupAPIRoutes(router, pool, cacheClient)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupAPIRoutes(router *gin.Engine, pool *pgxpool.Pool, cacheClient *cache.Client) {
	shipmentRepo := repository.NewShipmentRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)
	ratesRepo := repository.NewRatesRepository(pool)

	ratesService := service.NewRatesService(ratesRepo, cacheClient)
	customsService := service.NewCustomsService(ratesService)
	shipmentService := service.NewShipmentService(shipmentRepo, expenseRepo, customsService)
	expenseService := service.NewExpenseService(expenseRepo, shipmentRepo)
	financeService := service.NewFinanceService(shipmentRepo, expenseRepo)

	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	financeHandler := handler.NewFinanceHandler(financeService)
	customsHandler := handler.NewCustomsHandler(customsService, ratesService)
	validationHandler := handler.NewValidationHandler()

	api := router.Group("/api/v1")
	{
		api.POST("/shipments", shipmentHandler.Create)
		api.GET("/shipments", shipmentHandler.List)
		api.GET("/shipments/:id", shipmentHandler.Get)
		api.GET("/shipments/track/:number", shipmentHandler.Track)

		api.POST("/shipments/:id/expenses", expenseHandler.Add)
		api.POST("/expenses/:id/pay", expenseHandler.Pay)
		api.POST("/shipments/:id/liquidation/pay", expenseHandler.PayLiquidation)

		api.GET("/shipments/:id/balance", financeHandler.Balance)
		api.GET("/shipments/:id/report", financeHandler.Report)
		api.GET("/shipments/:id/audit", financeHandler.Audit)

		api.POST("/customs/quote", customsHandler.Quote)
		api.GET("/customs/rates", customsHandler.GetRates)
		api.PUT("/customs/rates", customsHandler.UpdateRates)

		api.POST("/validate/tracking", validationHandler.Tracking)
		api.POST("/validate/bl", validationHandler.BL)
		api.POST("/validate/container", validationHandler.Container)
	}
}
