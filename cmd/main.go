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

	cancelAppointmentHandler "github.com/glamnails/booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/glamnails/booking-service/internal/api/handlers/create_appointment"
	getAvailabilityHandler "github.com/glamnails/booking-service/internal/api/handlers/get_availability"
	healthHandler "github.com/glamnails/booking-service/internal/api/handlers/health"
	listAppointmentsHandler "github.com/glamnails/booking-service/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/glamnails/booking-service/internal/api/handlers/list_services"
	listTechniciansHandler "github.com/glamnails/booking-service/internal/api/handlers/list_technicians"
	"github.com/glamnails/booking-service/internal/api/middleware"
	"github.com/glamnails/booking-service/internal/config"
	"github.com/glamnails/booking-service/internal/infra/storage/appointment"
	"github.com/glamnails/booking-service/internal/infra/storage/bootstrap"
	"github.com/glamnails/booking-service/internal/infra/storage/catalog"
	appointmentsService "github.com/glamnails/booking-service/internal/service/appointments"
	catalogService "github.com/glamnails/booking-service/internal/service/catalog"
	createAppointmentUC "github.com/glamnails/booking-service/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/glamnails/booking-service/internal/usecase/get_availability"
	"github.com/glamnails/booking-service/pkg/dbmetrics"
	"github.com/glamnails/booking-service/pkg/logger"
	"github.com/glamnails/booking-service/pkg/metrics"
	"github.com/glamnails/booking-service/pkg/types"
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

	log.Info("Starting salon booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Создаём схему и заполняем стартовый каталог (идемпотентно)
	if err := bootstrap.Run(context.Background(), db); err != nil {
		log.Fatal("Failed to bootstrap database: %v", err)
	}
	log.Info("Database schema ready, sample catalog seeded")

	// Строим каталог слотов из конфигурации
	slots, err := getAvailabilityUC.GenerateTimeSlots(
		types.TimeString(cfg.Booking.OpenTime),
		types.TimeString(cfg.Booking.CloseTime),
		cfg.Booking.SlotDurationMinutes,
	)
	if err != nil {
		log.Fatal("Failed to build slot catalog: %v", err)
	}
	log.Info("Slot catalog built: %d slots from %s to %s, step %d min",
		len(slots), cfg.Booking.OpenTime, cfg.Booking.CloseTime, cfg.Booking.SlotDurationMinutes)

	// Инициализируем репозитории (с метриками или без)
	var (
		catalogRepository     *catalog.Repository
		appointmentRepository *appointment.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")

		catalogRepository = catalog.NewRepository(wrappedDB)
		appointmentRepository = appointment.NewRepository(wrappedDB)
	} else {
		catalogRepository = catalog.NewRepository(db)
		appointmentRepository = appointment.NewRepository(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		catalogRepository,
		appointmentRepository,
		slots,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listTechnicians := listTechniciansHandler.NewHandler(catalogSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Каталог салона
	r.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	r.HandleFunc("/technicians", listTechnicians.Handle).Methods(http.MethodGet)

	// Доступность слотов
	r.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Записи клиентов
	r.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	r.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

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
