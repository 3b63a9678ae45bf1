package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/create_booking"
	createEventTypeHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/create_event_type"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/get_booking"
	healthHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/list_bookings"
	listEventTypesHandler "github.com/m04kA/SMC-SchedulerService/internal/api/handlers/list_event_types"
	"github.com/m04kA/SMC-SchedulerService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulerService/internal/api/pages"
	"github.com/m04kA/SMC-SchedulerService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/booking"
	eventTypeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/event_type"
	"github.com/m04kA/SMC-SchedulerService/internal/infra/storage/migrations"
	userRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-SchedulerService/internal/service/bookings"
	eventTypesService "github.com/m04kA/SMC-SchedulerService/internal/service/event_types"
	createBookingUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/get_available_slots"
	seedUC "github.com/m04kA/SMC-SchedulerService/internal/usecase/seed"
	"github.com/m04kA/SMC-SchedulerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/logger"
	"github.com/m04kA/SMC-SchedulerService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulerService/pkg/txmanager"
)

const (
	configPath             = "config.toml"
	startupTimeout         = 30 * time.Second
	rateLimitCleanupPeriod = time.Minute
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-SchedulerService...")

	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.App.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		dbCollector      dbmetrics.Collector
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
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

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()

	// Проверяем соединение
	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без collector обёртка только проксирует вызовы
	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Миграции
	if cfg.Database.AutoMigrate {
		migrator := migrations.NewMigrator(wrappedDB, txMgr, log)
		if err := migrator.Up(startupCtx); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Инициализируем репозитории
	userRepository := userRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	eventTypeRepository := eventTypeRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	// Начальное заполнение
	if cfg.Seed.Enabled {
		seedRequest := seedUC.DefaultRequest()
		seedRequest.Username = cfg.Seed.Username
		seedRequest.Email = cfg.Seed.Email
		seedRequest.DayStart = cfg.Slots.DayStart
		seedRequest.DayEnd = cfg.Slots.DayEnd

		seedUseCase := seedUC.NewUseCase(userRepository, availabilityRepository, eventTypeRepository, txMgr, log)
		result, err := seedUseCase.Execute(startupCtx, seedRequest)
		if err != nil {
			log.Fatal("Failed to seed database: %v", err)
		}
		log.Info("Seed completed (user_id=%d, user_created=%t, event_types_created=%d)",
			result.UserID, result.UserCreated, result.EventTypesCreated)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, metricsCollector, log)
	eventTypeSvc := eventTypesService.NewService(eventTypeRepository, userRepository, cfg.App.AdminUserID, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		eventTypeRepository,
		txMgr,
		metricsCollector,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		eventTypeRepository,
		cfg.Slots.Window(),
		location,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, cfg.App.AdminUserID, log)
	createEventType := createEventTypeHandler.NewHandler(eventTypeSvc, log)
	listEventTypes := listEventTypesHandler.NewHandler(eventTypeSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	web, err := pages.NewHandler(
		eventTypeSvc,
		bookingSvc,
		getAvailableSlotsUseCase,
		createBookingUseCase,
		cfg.App.AdminUserID,
		location,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize pages: %v", err)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(web.NotFound)

	// Добавляем metrics middleware (если метрики включены)
	var httpMetrics middleware.HTTPMetrics
	if cfg.Metrics.Enabled {
		httpMetrics = metricsCollector
		log.Info("HTTP metrics middleware enabled")
	}
	r.Use(middleware.Stack(log, httpMetrics)...)

	serverCtx, cancelServer := context.WithCancel(context.Background())
	defer cancelServer()

	// Ограничение частоты изменяющих запросов
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go limiter.RunCleanup(serverCtx, rateLimitCleanupPeriod)
		r.Use(middleware.RateLimit(limiter, log))
		log.Info("Rate limit enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// JSON API
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Типы встреч ---
	api.HandleFunc("/event-types", createEventType.Handle).Methods(http.MethodPost)
	api.HandleFunc("/event-types", listEventTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/event-types/{eventTypeId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// HTML страницы
	// ============================================================

	r.HandleFunc("/", web.Home).Methods(http.MethodGet)
	r.HandleFunc("/event-types/new", web.NewEventType).Methods(http.MethodGet)
	r.HandleFunc("/event-types/new", web.CreateEventType).Methods(http.MethodPost)
	r.HandleFunc("/bookings", web.Bookings).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{bookingId}/cancel", web.CancelBooking).Methods(http.MethodPost)

	// Публичная страница бронирования регистрируется последней:
	// шаблон /{username}/{slug} совпадает с /event-types/new
	r.HandleFunc("/{username}/{slug}", web.BookingPage).Methods(http.MethodGet)
	r.HandleFunc("/{username}/{slug}", web.Book).Methods(http.MethodPost)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancelServer()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
