package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminPageHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/admin_page"
	calculatePriceHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/calculate_price"
	cancelBookingHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/create_booking"
	createGalleryImageHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/create_gallery_image"
	deleteBookingHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/get_booking"
	getBookingByReferenceHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/get_booking_by_reference"
	getGalleryHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/get_gallery"
	getGameTypesHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/get_game_types"
	getSettingsHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/get_settings"
	healthHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/list_bookings"
	seedHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/seed"
	updateBookingHandler "github.com/m04kA/GameLounge-BookingService/internal/api/handlers/update_booking"
	"github.com/m04kA/GameLounge-BookingService/internal/api/middleware"
	"github.com/m04kA/GameLounge-BookingService/internal/config"
	"github.com/m04kA/GameLounge-BookingService/internal/infra/postgres"
	bookingRepo "github.com/m04kA/GameLounge-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/GameLounge-BookingService/internal/infra/storage/catalog"
	completeBookingsJob "github.com/m04kA/GameLounge-BookingService/internal/jobs/complete_bookings"
	bookingsService "github.com/m04kA/GameLounge-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/GameLounge-BookingService/internal/service/catalog"
	"github.com/m04kA/GameLounge-BookingService/internal/service/pricing"
	createBookingUC "github.com/m04kA/GameLounge-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/GameLounge-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/GameLounge-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GameLounge-BookingService/pkg/logger"
	"github.com/m04kA/GameLounge-BookingService/pkg/metrics"
	"github.com/m04kA/GameLounge-BookingService/pkg/txmanager"
)

func main() {
	// Configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting GameLounge-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Lounge schedule
	schedule, err := cfg.Lounge.Schedule()
	if err != nil {
		log.Fatal("Invalid lounge schedule: %v", err)
	}
	location := cfg.Lounge.Location()
	log.Info("Lounge %q: %s-%s every %d min, tz=%s, resources=%v",
		cfg.Lounge.Name, schedule.OpenTime(), schedule.CloseTime(), schedule.Grid().Interval(),
		location, schedule.GameTypes())

	// Metrics (if enabled)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Database
	db, err := postgres.Open(context.Background(), cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// dbmetrics.DB skips observation when the collector is nil
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil, cfg.Metrics.ServiceName)
	}

	// Repositories
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Services
	calculator := pricing.NewCalculator(cfg.Lounge.HourlyRates())
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		bookingsService.Options{
			CancellationNotice: cfg.Lounge.CancellationNotice(),
			Location:           location,
		},
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		txMgr,
		catalogService.CacheOptions{Size: cfg.Cache.Size, TTL: cfg.Cache.TTL()},
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		calculator,
		txMgr,
		metricsCollector,
		createBookingUC.Options{Schedule: schedule, Location: location},
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, schedule, log)

	// Handlers
	health := healthHandler.NewHandler(cfg.Lounge.Name)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, cfg.Lounge.DefaultDurationMinutes, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, cfg.Lounge.DefaultDurationMinutes, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculator, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingByReference := getBookingByReferenceHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	adminPage := adminPageHandler.NewHandler(bookingSvc, cfg.Lounge.Name, log)
	getGameTypes := getGameTypesHandler.NewHandler(catalogSvc, log)
	getGallery := getGalleryHandler.NewHandler(catalogSvc, log)
	createGalleryImage := createGalleryImageHandler.NewHandler(catalogSvc, log)
	getSettings := getSettingsHandler.NewHandler(catalogSvc, log)
	seed := seedHandler.NewHandler(catalogSvc, log)

	// Background jobs
	var scheduler *completeBookingsJob.Scheduler
	if cfg.Jobs.CompleteBookingsEnabled {
		job := completeBookingsJob.NewJob(bookingRepository, location, log)
		scheduler, err = completeBookingsJob.NewScheduler(job, cfg.Jobs.CompleteBookingsSchedule, location, log)
		if err != nil {
			log.Fatal("Failed to schedule booking completion job: %v", err)
		}
		scheduler.Start()
	}

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Admin HTML page
	r.HandleFunc("/admin/bookings", adminPage.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/", health.Handle).Methods(http.MethodGet)

	// --- Availability ---
	api.HandleFunc("/availability/{date}", getAvailability.Handle).Methods(http.MethodGet)

	// --- Bookings ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/calculate-price", calculatePrice.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/reference/{reference}", getBookingByReference.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/reference/{reference}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/admin/bookings", listBookings.Handle).Methods(http.MethodGet)

	// --- Catalog ---
	api.HandleFunc("/game-types", getGameTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/gallery", getGallery.Handle).Methods(http.MethodGet)
	api.HandleFunc("/gallery", createGalleryImage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/seed", seed.Handle).Methods(http.MethodPost)

	// Outer middleware: timeout, CORS, panic recovery, access log
	var handler http.Handler = r
	if cfg.Server.HandlerTimeout > 0 {
		handler = http.TimeoutHandler(handler, time.Duration(cfg.Server.HandlerTimeout)*time.Second, "request timed out")
	}
	handler = gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(handler)
	handler = gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(log),
		gorillaHandlers.PrintRecoveryStack(true),
	)(handler)
	handler = gorillaHandlers.CombinedLoggingHandler(log.Writer(), handler)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	// Stop connection pool metrics collection
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
