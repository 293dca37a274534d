package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getDailyEligibilityHandler "github.com/airjam-co/booking-resolver/internal/api/handlers/get_daily_eligibility"
	getDateBoundsHandler "github.com/airjam-co/booking-resolver/internal/api/handlers/get_date_bounds"
	getDaySlotsHandler "github.com/airjam-co/booking-resolver/internal/api/handlers/get_day_slots"
	refreshAvailabilityHandler "github.com/airjam-co/booking-resolver/internal/api/handlers/refresh_availability"
	submitBookingHandler "github.com/airjam-co/booking-resolver/internal/api/handlers/submit_booking"
	"github.com/airjam-co/booking-resolver/internal/api/middleware"
	"github.com/airjam-co/booking-resolver/internal/config"
	snapshotRepo "github.com/airjam-co/booking-resolver/internal/infra/storage/snapshot"
	providerClient "github.com/airjam-co/booking-resolver/internal/integrations/availability"
	availabilityService "github.com/airjam-co/booking-resolver/internal/service/availability"
	checkDailyEligibilityUC "github.com/airjam-co/booking-resolver/internal/usecase/check_daily_eligibility"
	getDateBoundsUC "github.com/airjam-co/booking-resolver/internal/usecase/get_date_bounds"
	resolveSlotsUC "github.com/airjam-co/booking-resolver/internal/usecase/resolve_slots"
	submitBookingUC "github.com/airjam-co/booking-resolver/internal/usecase/submit_booking"
	"github.com/airjam-co/booking-resolver/pkg/dbmetrics"
	"github.com/airjam-co/booking-resolver/pkg/logger"
	"github.com/airjam-co/booking-resolver/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-resolver...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	provider := providerClient.NewClient(
		cfg.Provider.URL,
		cfg.Provider.AuthToken,
		time.Duration(cfg.Provider.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Provider client initialized (url=%s timeout=%ds)", cfg.Provider.URL, cfg.Provider.Timeout)

	var snapshotRepository *snapshotRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		snapshotRepository = snapshotRepo.NewRepository(wrappedDB)
	} else {
		snapshotRepository = snapshotRepo.NewRepository(db)
	}

	availabilitySvc := availabilityService.NewService(provider, snapshotRepository, log)

	resolveSlotsUseCase := resolveSlotsUC.NewUseCase(availabilitySvc, log)
	checkDailyEligibilityUseCase := checkDailyEligibilityUC.NewUseCase(availabilitySvc, log)
	getDateBoundsUseCase := getDateBoundsUC.NewUseCase(availabilitySvc, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		resolveSlotsUseCase,
		checkDailyEligibilityUseCase,
		provider,
		log,
	)

	getDaySlots := getDaySlotsHandler.NewHandler(resolveSlotsUseCase, log)
	getDailyEligibility := getDailyEligibilityHandler.NewHandler(checkDailyEligibilityUseCase, log)
	getDateBounds := getDateBoundsHandler.NewHandler(getDateBoundsUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	refreshAvailability := refreshAvailabilityHandler.NewHandler(availabilitySvc, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public read endpoints
	api.HandleFunc("/components/{componentId}/slots",
		getDaySlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/components/{componentId}/daily-eligibility",
		getDailyEligibility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/components/{componentId}/resources/{resourceId}/date-bounds",
		getDateBounds.Handle).Methods(http.MethodGet)

	// Booking submission is public; the widget posts selections directly
	api.HandleFunc("/components/{componentId}/bookings",
		submitBooking.Handle).Methods(http.MethodPost)

	// Forced snapshot refresh requires the shared API key
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.APIKey(cfg.Auth.APIKey))
	protected.HandleFunc("/components/{componentId}/availability/refresh",
		refreshAvailability.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
