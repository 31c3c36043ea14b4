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

	addBookingReviewHandler "github.com/mabani-platform/MBN-BookingService/internal/api/handlers/add_booking_review"
	cancelBookingHandler "github.com/mabani-platform/MBN-BookingService/internal/api/handlers/cancel_booking"
	checkConflictsHandler "github.com/mabani-platform/MBN-BookingService/internal/api/handlers/check_conflicts"
	createBookingHandler "github.com/mabani-platform/MBN-BookingService/internal/api/handlers/create_booking"
	getCalendarHandler "github.com/mabani-platform/MBN-BookingService/internal/api/handlers/get_calendar"
	getProjectBookingsHandler "github.com/mabani-platform/MBN-BookingService/internal/api/handlers/get_project_bookings"
	manageConflictsHandler "github.com/mabani-platform/MBN-BookingService/internal/api/handlers/manage_conflicts"
	recommendSchedulingHandler "github.com/mabani-platform/MBN-BookingService/internal/api/handlers/recommend_scheduling"
	syncTimelineHandler "github.com/mabani-platform/MBN-BookingService/internal/api/handlers/sync_timeline"
	updateBookingStatusHandler "github.com/mabani-platform/MBN-BookingService/internal/api/handlers/update_booking_status"
	"github.com/mabani-platform/MBN-BookingService/internal/api/middleware"
	"github.com/mabani-platform/MBN-BookingService/internal/config"
	bookingRepo "github.com/mabani-platform/MBN-BookingService/internal/infra/storage/booking"
	providerServiceClient "github.com/mabani-platform/MBN-BookingService/internal/integrations/providerservice"
	timelineServiceClient "github.com/mabani-platform/MBN-BookingService/internal/integrations/timeline"
	bookingsService "github.com/mabani-platform/MBN-BookingService/internal/service/bookings"
	checkConflictsUC "github.com/mabani-platform/MBN-BookingService/internal/usecase/check_conflicts"
	createBookingUC "github.com/mabani-platform/MBN-BookingService/internal/usecase/create_booking"
	recommendSchedulingUC "github.com/mabani-platform/MBN-BookingService/internal/usecase/recommend_scheduling"
	resolveConflictsUC "github.com/mabani-platform/MBN-BookingService/internal/usecase/resolve_conflicts"
	syncTimelineUC "github.com/mabani-platform/MBN-BookingService/internal/usecase/sync_timeline"
	"github.com/mabani-platform/MBN-BookingService/pkg/dbmetrics"
	"github.com/mabani-platform/MBN-BookingService/pkg/logger"
	"github.com/mabani-platform/MBN-BookingService/pkg/metrics"
	"github.com/mabani-platform/MBN-BookingService/pkg/simpletxmanager"
	"github.com/mabani-platform/MBN-BookingService/pkg/txmanager"
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

	log.Info("Starting MBN-BookingService...")
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

	// Инициализируем интеграционных клиентов
	providerClient := providerServiceClient.NewClient(
		cfg.ProviderService.URL,
		time.Duration(cfg.ProviderService.Timeout)*time.Second,
		time.Duration(cfg.ProviderService.CacheTTL)*time.Second,
		log,
	)
	timelineClient := timelineServiceClient.NewClient(
		cfg.TimelineService.URL,
		time.Duration(cfg.TimelineService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ProviderService=%s timeout=%ds, ProjectService=%s timeout=%ds)",
		cfg.ProviderService.URL, cfg.ProviderService.Timeout, cfg.TimelineService.URL, cfg.TimelineService.Timeout)

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в create_booking)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		timelineClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		providerClient,
		timelineClient,
		txMgr,
		log,
	)
	checkConflictsUseCase := checkConflictsUC.NewUseCase(bookingRepository, log)
	resolveConflictsUseCase := resolveConflictsUC.NewUseCase(bookingRepository, log)
	syncTimelineUseCase := syncTimelineUC.NewUseCase(bookingRepository, timelineClient, log)
	recommendSchedulingUseCase := recommendSchedulingUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	checkConflicts := checkConflictsHandler.NewHandler(checkConflictsUseCase, log)
	manageConflicts := manageConflictsHandler.NewHandler(resolveConflictsUseCase, log)
	syncTimeline := syncTimelineHandler.NewHandler(syncTimelineUseCase, log)
	recommendScheduling := recommendSchedulingHandler.NewHandler(recommendSchedulingUseCase, log)
	getProjectBookings := getProjectBookingsHandler.NewHandler(bookingSvc, log)
	getCalendar := getCalendarHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	addBookingReview := addBookingReviewHandler.NewHandler(bookingSvc, log)

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

	// Консультативная проверка конфликтов (слот не резервирует)
	api.HandleFunc("/bookings/check-conflicts", checkConflicts.Handle).Methods(http.MethodPost)

	// Календарь бронирований проекта
	api.HandleFunc("/projects/{projectId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Обновление статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Отзыв о выполненной услуге
	protected.HandleFunc("/bookings/{bookingId}/review", addBookingReview.Handle).Methods(http.MethodPost)

	// --- Проект ---
	// Список бронирований проекта
	protected.HandleFunc("/projects/{projectId}/bookings", getProjectBookings.Handle).Methods(http.MethodGet)

	// Конфликты бронирований проекта с предложениями по разрешению
	protected.HandleFunc("/projects/{projectId}/conflicts", manageConflicts.Handle).Methods(http.MethodGet)

	// Синхронизация с таймлайном проекта
	protected.HandleFunc("/projects/{projectId}/timeline-sync", syncTimeline.Handle).Methods(http.MethodGet)

	// Рекомендации по планированию недостающих услуг
	protected.HandleFunc("/projects/{projectId}/scheduling-recommendations",
		recommendScheduling.Handle).Methods(http.MethodGet)

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
