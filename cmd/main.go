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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkoutBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/checkout_booking"
	createBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_booking"
	estimateCostHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/estimate_cost"
	getBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_dashboard"
	getHistoryHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_history"
	getPricingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_pricing"
	getSlotsSummaryHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_slots_summary"
	healthHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/health"
	listActivityHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_activity"
	listBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_bookings"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/alerts"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/history"
	activityRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/activity"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	activityService "github.com/m04kA/SMC-ParkingService/internal/service/activity"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	pricingService "github.com/m04kA/SMC-ParkingService/internal/service/pricing"
	"github.com/m04kA/SMC-ParkingService/internal/statistics"
	checkoutBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/checkout_booking"
	createBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	getDashboardUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_dashboard"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/idgen"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

const bookingIDPrefix = "BK-"

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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml")

	// Метрики создаются всегда, наружу отдаются только при metrics.enabled
	var (
		metricsCollector *metrics.Metrics
		dbMetrics        *metrics.Metrics
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		metricsCollector = metrics.NewWithRegistry(prometheus.NewRegistry(), cfg.Metrics.ServiceName)
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

	wrappedDB := dbmetrics.WrapWithDefault(db, dbMetrics, stopMetricsCh)

	// Инициализируем репозитории
	slotRepository := slotRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	activityRepository := activityRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Заполняем пустую парковку
	if cfg.Inventory.SeedOnStart {
		seeded, err := slotRepository.Seed(context.Background(), cfg.Inventory.TotalCapacity, cfg.Inventory.Zones)
		if err != nil {
			log.Fatal("Failed to seed parking slots: %v", err)
		}
		if seeded > 0 {
			log.Info("Seeded %d parking slots across zones %v", seeded, cfg.Inventory.Zones)
		}
	}

	timeProvider := &createBookingUC.RealTimeProvider{Location: cfg.Location()}
	pricingCfg := cfg.PricingDomain()

	// Состояние дашборда
	alertBoard := alerts.NewBoard()
	historyRing := history.NewRing(cfg.History.Size)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	pricingSvc := pricingService.NewService(
		pricingCfg,
		cfg.Booking.MinDurationHours,
		cfg.Booking.MaxDurationHours,
		timeProvider,
		log,
	)
	activitySvc := activityService.NewService(activityRepository, cfg.Booking.ActivityLogLimit, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		bookingRepository,
		activityRepository,
		txMgr,
		idgen.New(bookingIDPrefix),
		metricsCollector,
		timeProvider,
		createBookingUC.Config{
			Pricing:          pricingCfg,
			MinDurationHours: cfg.Booking.MinDurationHours,
			MaxDurationHours: cfg.Booking.MaxDurationHours,
			MaxAttempts:      cfg.Booking.MaxAllocationAttempts,
		},
		log,
	)

	checkoutBookingUseCase := checkoutBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		activityRepository,
		txMgr,
		metricsCollector,
		timeProvider,
		log,
	)

	getDashboardUseCase := getDashboardUC.NewUseCase(
		slotRepository,
		statistics.NewRandomSource(),
		alertBoard,
		historyRing,
		metricsCollector,
		timeProvider,
		getDashboardUC.Config{
			Pricing:       pricingCfg,
			Thresholds:    cfg.AlertThresholds(),
			TotalCapacity: cfg.Inventory.TotalCapacity,
		},
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(wrappedDB, timeProvider, log)
	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, log)
	getSlotsSummary := getSlotsSummaryHandler.NewHandler(getDashboardUseCase, log)
	getHistory := getHistoryHandler.NewHandler(historyRing, log)
	getPricing := getPricingHandler.NewHandler(pricingSvc, log)
	estimateCost := estimateCostHandler.NewHandler(pricingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	checkoutBooking := checkoutBookingHandler.NewHandler(checkoutBookingUseCase, log)
	listActivity := listActivityHandler.NewHandler(activitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Мониторинг ---
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/summary", getSlotsSummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/history", getHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activity", listActivity.Handle).Methods(http.MethodGet)

	// --- Тарифы ---
	api.HandleFunc("/pricing", getPricing.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing/estimate", estimateCost.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/checkout", checkoutBooking.Handle).Methods(http.MethodPatch)

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
