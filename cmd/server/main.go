package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"unitsync-backend/internal/auth"
	"unitsync-backend/internal/cache"
	"unitsync-backend/internal/config"
	"unitsync-backend/internal/database"
	"unitsync-backend/internal/db"
	"unitsync-backend/internal/handlers"
	"unitsync-backend/internal/health"
	apphttp "unitsync-backend/internal/http"
	"unitsync-backend/internal/middleware"
	"unitsync-backend/internal/monitoring"
	"unitsync-backend/internal/repositories"
	"unitsync-backend/internal/services"
	"unitsync-backend/migrations"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	migrator := database.NewMigrator(pool, migrations.FS, ".")
	if err := migrator.RunMigrations(ctx); err != nil {
		cancel()
		log.Fatalf("migrations failed: %v", err)
	}
	cancel()

	// Redis is optional; without it stats queries hit the database directly
	if err := cache.Init(); err != nil {
		log.Printf("[Cache] redis unavailable, continuing without cache: %v", err)
	}

	store := repositories.NewStore(pool)
	jwtManager := auth.NewJWTManager(cfg)

	userService := services.NewUserService(store)
	totpService := services.NewTOTPService(store)
	propertyService := services.NewPropertyService(store)
	unitService := services.NewUnitService(store)
	tenantService := services.NewTenantService(store)
	ledgerService := services.NewLedgerService(store)
	submissionService := services.NewSubmissionService(store)
	maintenanceService := services.NewMaintenanceService(store)
	reportService := services.NewReportService(store)
	statsService := services.NewStatsService(store)

	authHandler := handlers.NewAuthHandler(userService, totpService, jwtManager)
	totpHandler := handlers.NewTOTPHandler(totpService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	unitHandler := handlers.NewUnitHandler(unitService, propertyService, tenantService)
	tenantHandler := handlers.NewTenantHandler(tenantService, ledgerService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	paymentHandler := handlers.NewPaymentHandler(ledgerService, reportService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	statsHandler := handlers.NewStatsHandler(statsService)
	portalHandler := handlers.NewPortalHandler(tenantService, ledgerService, submissionService, maintenanceService, jwtManager)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, store)

	router := apphttp.NewRouter(
		authHandler,
		totpHandler,
		propertyHandler,
		unitHandler,
		tenantHandler,
		ledgerHandler,
		paymentHandler,
		submissionHandler,
		maintenanceHandler,
		statsHandler,
		portalHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.NewCORS(cfg)(router))

	go monitoring.NewServer(pool, cfg.Server.MonitoringPort).Start()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("[Server] listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
