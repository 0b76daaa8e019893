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

	createBookingHandler "github.com/m04kA/DJB-ScheduleService/internal/api/handlers/create_booking"
	createVenueHandler "github.com/m04kA/DJB-ScheduleService/internal/api/handlers/create_venue"
	deactivateVenueHandler "github.com/m04kA/DJB-ScheduleService/internal/api/handlers/deactivate_venue"
	deleteBookingHandler "github.com/m04kA/DJB-ScheduleService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/DJB-ScheduleService/internal/api/handlers/get_availability"
	getDJBookingsHandler "github.com/m04kA/DJB-ScheduleService/internal/api/handlers/get_dj_bookings"
	getDJSummaryHandler "github.com/m04kA/DJB-ScheduleService/internal/api/handlers/get_dj_summary"
	getVenueBookingsHandler "github.com/m04kA/DJB-ScheduleService/internal/api/handlers/get_venue_bookings"
	listVenuesHandler "github.com/m04kA/DJB-ScheduleService/internal/api/handlers/list_venues"
	updateDJHandler "github.com/m04kA/DJB-ScheduleService/internal/api/handlers/update_dj"
	"github.com/m04kA/DJB-ScheduleService/internal/api/middleware"
	"github.com/m04kA/DJB-ScheduleService/internal/config"
	"github.com/m04kA/DJB-ScheduleService/internal/infra/migrations"
	bookingRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/booking"
	djRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/dj"
	venueRepo "github.com/m04kA/DJB-ScheduleService/internal/infra/storage/venue"
	bookingsService "github.com/m04kA/DJB-ScheduleService/internal/service/bookings"
	compensationService "github.com/m04kA/DJB-ScheduleService/internal/service/compensation"
	rosterService "github.com/m04kA/DJB-ScheduleService/internal/service/roster"
	venuesService "github.com/m04kA/DJB-ScheduleService/internal/service/venues"
	createBookingUC "github.com/m04kA/DJB-ScheduleService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/DJB-ScheduleService/internal/usecase/get_availability"
	"github.com/m04kA/DJB-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/DJB-ScheduleService/pkg/logger"
	"github.com/m04kA/DJB-ScheduleService/pkg/metrics"
	"github.com/m04kA/DJB-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/DJB-ScheduleService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting DJB-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := migrations.Run(db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	if version, err := migrations.Version(db); err == nil {
		log.Info("Database schema at version %d", version)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		venueRepository   *venueRepo.Repository
		djRepository      *djRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		venueRepository = venueRepo.NewRepository(wrappedDB)
		djRepository = djRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		venueRepository = venueRepo.NewRepository(db)
		djRepository = djRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	compensationSvc := compensationService.NewService(
		bookingRepository,
		djRepository,
		cfg.Compensation.BaseQuota,
		cfg.Compensation.ExtraRate,
		log,
	)
	venueSvc := venuesService.NewService(venueRepository, djRepository, log)
	rosterSvc := rosterService.NewService(djRepository, venueRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		venueRepository,
		djRepository,
		txMgr,
		cfg.Booking.MaxDJsPerDay,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, djRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, metricsCollector, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, metricsCollector, log)
	getVenueBookings := getVenueBookingsHandler.NewHandler(bookingSvc, log)
	getDJBookings := getDJBookingsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getDJSummary := getDJSummaryHandler.NewHandler(compensationSvc, log)
	listVenues := listVenuesHandler.NewHandler(venueSvc, log)
	createVenue := createVenueHandler.NewHandler(venueSvc, log)
	deactivateVenue := deactivateVenueHandler.NewHandler(venueSvc, log)
	updateDJ := updateDJHandler.NewHandler(rosterSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник салонов
	api.HandleFunc("/venues", listVenues.Handle).Methods(http.MethodGet)

	// Расписание салона
	api.HandleFunc("/venues/{venueId}/bookings", getVenueBookings.Handle).Methods(http.MethodGet)

	// Разбиение ростера на свободных и занятых на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-DJ-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Удаление собственного бронирования
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// График диджея
	protected.HandleFunc("/djs/{djId}/bookings", getDJBookings.Handle).Methods(http.MethodGet)

	// Сводка вознаграждения диджея
	protected.HandleFunc("/djs/{djId}/summary", getDJSummary.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	// Создание салона
	protected.HandleFunc("/venues", createVenue.Handle).Methods(http.MethodPost)

	// Деактивация салона
	protected.HandleFunc("/venues/{venueId}/deactivate", deactivateVenue.Handle).Methods(http.MethodPatch)

	// Обновление записи ростера
	protected.HandleFunc("/djs/{djId}", updateDJ.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
