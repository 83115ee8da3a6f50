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

	cancelBookingHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/create_booking"
	createSlotHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/delete_slot"
	duplicateSlotHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/duplicate_slot"
	getAvailableSlotsHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/get_client_bookings"
	getPolicyPreviewHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/get_policy_preview"
	runSweepHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/run_sweep"
	updateBookingStatusHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/update_booking_status"
	updateSlotHandler "github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/handlers/update_slot"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/api/middleware"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/config"
	bookingRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/booking"
	patternRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/pattern"
	policyRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/policy"
	slotRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/slot"
	notifierClient "github.com/Peguy24/paola-s-glam-studio-sub000/internal/integrations/notifier"
	paymentsClient "github.com/Peguy24/paola-s-glam-studio-sub000/internal/integrations/payments"
	bookingsService "github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/bookings"
	policiesService "github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/policies"
	slotsService "github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots"
	cancelBookingUC "github.com/Peguy24/paola-s-glam-studio-sub000/internal/usecase/cancel_booking"
	createBookingUC "github.com/Peguy24/paola-s-glam-studio-sub000/internal/usecase/create_booking"
	expandScheduleUC "github.com/Peguy24/paola-s-glam-studio-sub000/internal/usecase/expand_schedule"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/dbmetrics"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/logger"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/metrics"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/simpletxmanager"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/txmanager"
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

	log.Info("Starting glam-studio booking service...")
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
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	payments := paymentsClient.NewClient(
		cfg.Payments.URL,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Notifier=%s timeout=%ds, Payments=%s timeout=%ds)",
		cfg.Notifier.URL, cfg.Notifier.Timeout, cfg.Payments.URL, cfg.Payments.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
		policyRepository  *policyRepo.Repository
		patternRepository *patternRepo.Repository
	)

	// Контракт транзакционности задает сам use case
	var txMgr createBookingUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		patternRepository = patternRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		patternRepository = patternRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	slotSvc := slotsService.NewService(slotRepository, bookingRepository, notifier, log)
	policySvc := policiesService.NewService(policyRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		notifier,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		policyRepository,
		payments,
		notifier,
		log,
	)
	expandScheduleUseCase := expandScheduleUC.NewUseCase(
		patternRepository,
		slotRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotSvc, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	duplicateSlot := duplicateSlotHandler.NewHandler(slotSvc, log)
	runSweep := runSweepHandler.NewHandler(expandScheduleUseCase, log)
	getPolicyPreview := getPolicyPreviewHandler.NewHandler(policySvc, log)

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

	// Слоты за период
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Действующая политика возврата
	api.HandleFunc("/policies/preview", getPolicyPreview.Handle).Methods(http.MethodGet)

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

	// Отмена бронирования с расчётом возврата
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Административные операции ---
	// Смена статуса бронирования (pending -> confirmed -> completed)
	protected.HandleFunc("/admin/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Управление слотами
	protected.HandleFunc("/admin/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/slots/{slotId}", updateSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/admin/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/admin/slots/{slotId}/duplicate", duplicateSlot.Handle).Methods(http.MethodPost)

	// Ручной запуск развертки паттернов
	protected.HandleFunc("/admin/schedule/sweep", runSweep.Handle).Methods(http.MethodPost)

	// Фоновая развертка паттернов по таймеру
	stopSweepCh := make(chan struct{})
	if cfg.Sweep.Enabled {
		go runSweepLoop(expandScheduleUseCase, time.Duration(cfg.Sweep.IntervalHours)*time.Hour, stopSweepCh, log)
		log.Info("Background schedule sweep enabled, interval=%dh", cfg.Sweep.IntervalHours)
	}

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

	// Останавливаем фоновую развертку
	if cfg.Sweep.Enabled {
		close(stopSweepCh)
	}

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

// runSweepLoop запускает развертку паттернов сразу при старте и далее по таймеру.
// Развертка идемпотентна, поэтому совпадение таймера с ручным запуском безопасно.
func runSweepLoop(uc *expandScheduleUC.UseCase, interval time.Duration, stopCh <-chan struct{}, log *logger.Logger) {
	runOnce := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		result, err := uc.Sweep(ctx)
		if err != nil {
			log.Error("Background sweep failed: %v", err)
			return
		}
		log.Info("Background sweep done: patterns=%d, slots created=%d",
			result.PatternsProcessed, result.SlotsCreated)
	}

	runOnce()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			runOnce()
		case <-stopCh:
			return
		}
	}
}
