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

	cancelBookingHandler "github.com/glamspot/ArtistBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/glamspot/ArtistBookingService/internal/api/handlers/create_booking"
	getArtistBookingsHandler "github.com/glamspot/ArtistBookingService/internal/api/handlers/get_artist_bookings"
	getArtistScheduleHandler "github.com/glamspot/ArtistBookingService/internal/api/handlers/get_artist_schedule"
	getBookingHandler "github.com/glamspot/ArtistBookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/glamspot/ArtistBookingService/internal/api/handlers/get_calendar"
	getUserBookingsHandler "github.com/glamspot/ArtistBookingService/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/glamspot/ArtistBookingService/internal/api/handlers/update_booking_status"
	updateArtistScheduleHandler "github.com/glamspot/ArtistBookingService/internal/api/handlers/update_artist_schedule"
	"github.com/glamspot/ArtistBookingService/internal/api/middleware"
	"github.com/glamspot/ArtistBookingService/internal/config"
	bookingRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/booking"
	servicesRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/services"
	settingsRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/settings"
	accountServiceClient "github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
	ledgerServiceClient "github.com/glamspot/ArtistBookingService/internal/integrations/ledgerservice"
	"github.com/glamspot/ArtistBookingService/internal/schedule"
	bookingsService "github.com/glamspot/ArtistBookingService/internal/service/bookings"
	schedulecfgService "github.com/glamspot/ArtistBookingService/internal/service/schedulecfg"
	createBookingUC "github.com/glamspot/ArtistBookingService/internal/usecase/create_booking"
	getCalendarUC "github.com/glamspot/ArtistBookingService/internal/usecase/get_calendar"
	"github.com/glamspot/ArtistBookingService/pkg/dbmetrics"
	"github.com/glamspot/ArtistBookingService/pkg/logger"
	"github.com/glamspot/ArtistBookingService/pkg/metrics"
	"github.com/glamspot/ArtistBookingService/pkg/simpletxmanager"
	"github.com/glamspot/ArtistBookingService/pkg/txmanager"
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

	log.Info("Starting ArtistBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Нормализатор времени платформы (фиксированная IANA зона)
	normalizer, err := schedule.NewNormalizer(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("Failed to load platform timezone %q: %v", cfg.Schedule.Timezone, err)
	}
	log.Info("Platform timezone: %s", cfg.Schedule.Timezone)

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

	// Инициализируем интеграционных клиентов
	accountClient := accountServiceClient.NewClient(
		cfg.AccountService.URL,
		time.Duration(cfg.AccountService.Timeout)*time.Second,
		log,
	)
	ledgerClient := ledgerServiceClient.NewClient(
		cfg.LedgerService.URL,
		time.Duration(cfg.LedgerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AccountService=%s timeout=%ds, LedgerService=%s timeout=%ds)",
		cfg.AccountService.URL, cfg.AccountService.Timeout, cfg.LedgerService.URL, cfg.LedgerService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		settingsRepository *settingsRepo.Repository
		servicesRepository *servicesRepo.Repository
	)

	var txMgr createBookingUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		servicesRepository = servicesRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		servicesRepository = servicesRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		accountClient,
		ledgerClient,
		log,
	)
	scheduleSvc := schedulecfgService.NewService(
		settingsRepository,
		accountClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		servicesRepository,
		accountClient,
		txMgr,
		normalizer,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		accountClient,
		normalizer,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, normalizer, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getArtistBookings := getArtistBookingsHandler.NewHandler(bookingSvc, log)
	getArtistSchedule := getArtistScheduleHandler.NewHandler(scheduleSvc, log)
	updateArtistSchedule := updateArtistScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь доступности мастера
	api.HandleFunc("/artists/{artistId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Резолвленное расписание мастера
	api.HandleFunc("/artists/{artistId}/schedule", getArtistSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Обновление статуса бронирования (только мастер)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Кабинет мастера ---
	// Список записей к мастеру
	protected.HandleFunc("/artists/{artistId}/bookings", getArtistBookings.Handle).Methods(http.MethodGet)

	// Обновление настроек расписания
	protected.HandleFunc("/artists/{artistId}/schedule", updateArtistSchedule.Handle).Methods(http.MethodPut)

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
