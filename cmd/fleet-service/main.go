package main

import (
	"fmt"
	"os"

	"fleet-service/internal/auth"
	"fleet-service/internal/config"
	"fleet-service/internal/db"
	httphandler "fleet-service/internal/http"
	"fleet-service/internal/http/middleware"
	"fleet-service/internal/logger"
	"fleet-service/internal/repository"
	"fleet-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	userRepo := repository.NewUserRepository(database)
	truckRepo := repository.NewTruckRepository(database)
	trailerRepo := repository.NewTrailerRepository(database)
	tireRepo := repository.NewTireRepository(database)
	tripRepo := repository.NewTripRepository(database)
	maintenanceRepo := repository.NewMaintenanceRepository(database)
	reportRepo := repository.NewReportRepository(database)

	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	authService := service.NewAuthService(userRepo, tokenIssuer)
	truckService := service.NewTruckService(truckRepo, tripRepo)
	trailerService := service.NewTrailerService(trailerRepo)
	tireService := service.NewTireService(tireRepo, truckRepo)
	tripService := service.NewTripService(tripRepo, truckRepo, trailerRepo, userRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, truckRepo)
	reportService := service.NewReportService(reportRepo)

	handler := httphandler.NewHandler(
		authService,
		truckService,
		trailerService,
		tireService,
		tripService,
		maintenanceService,
		reportService,
		appLogger,
	)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting fleet service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
