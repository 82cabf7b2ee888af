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

	cancelAppointmentHandler "github.com/m04kA/SMC-ScheduleBot/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/m04kA/SMC-ScheduleBot/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/m04kA/SMC-ScheduleBot/internal/api/handlers/create_appointment"
	createConversationHandler "github.com/m04kA/SMC-ScheduleBot/internal/api/handlers/create_conversation"
	getAppointmentHandler "github.com/m04kA/SMC-ScheduleBot/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ScheduleBot/internal/api/handlers/get_available_slots"
	getDayAppointmentsHandler "github.com/m04kA/SMC-ScheduleBot/internal/api/handlers/get_day_appointments"
	processTurnHandler "github.com/m04kA/SMC-ScheduleBot/internal/api/handlers/process_turn"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-ScheduleBot/internal/api/handlers/reschedule_appointment"
	"github.com/m04kA/SMC-ScheduleBot/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleBot/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ScheduleBot/internal/infra/storage/appointment"
	appointmentsService "github.com/m04kA/SMC-ScheduleBot/internal/service/appointments"
	availabilityService "github.com/m04kA/SMC-ScheduleBot/internal/service/availability"
	dialogueService "github.com/m04kA/SMC-ScheduleBot/internal/service/dialogue"
	bookAppointmentUC "github.com/m04kA/SMC-ScheduleBot/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/m04kA/SMC-ScheduleBot/internal/usecase/cancel_appointment"
	processTurnUC "github.com/m04kA/SMC-ScheduleBot/internal/usecase/process_turn"
	queryAvailabilityUC "github.com/m04kA/SMC-ScheduleBot/internal/usecase/query_availability"
	rescheduleAppointmentUC "github.com/m04kA/SMC-ScheduleBot/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-ScheduleBot/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleBot/pkg/logger"
	"github.com/m04kA/SMC-ScheduleBot/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleBot/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ScheduleBot/pkg/txmanager"
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

	log.Info("Starting SMC-ScheduleBot...")
	log.Info("Configuration loaded from config.toml")

	// Правила расписания проверены при загрузке конфигурации
	rules, err := cfg.Schedule.ToDomainRules()
	if err != nil {
		log.Fatal("Failed to build schedule rules: %v", err)
	}
	log.Info("Schedule rules loaded (slot=%dm, gap=%dm, max_per_day=%d, hours=%s-%s)",
		rules.SlotDurationMinutes, rules.MinGapMinutes, rules.MaxAppointmentsPerDay,
		rules.WorkingHours.Start, rules.WorkingHours.End)

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

	// Инициализируем репозиторий (с метриками или без)
	var appointmentRepository *appointmentRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(appointmentRepository, rules, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	sessions := dialogueService.NewSessionStore()
	dialogueSvc := dialogueService.NewService(sessions, log)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		availabilitySvc,
		appointmentRepository,
		txMgr,
		rules,
		log,
	)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(appointmentRepository, log)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		availabilitySvc,
		appointmentRepository,
		txMgr,
		rules,
		log,
	)
	queryAvailabilityUseCase := queryAvailabilityUC.NewUseCase(availabilitySvc, log)

	processTurnUseCase := processTurnUC.NewUseCase(
		dialogueSvc,
		bookAppointmentUseCase,
		cancelAppointmentUseCase,
		rescheduleAppointmentUseCase,
		queryAvailabilityUseCase,
		log,
	)

	// Инициализируем handlers
	createConversation := createConversationHandler.NewHandler(dialogueSvc, log)
	processTurn := processTurnHandler.NewHandler(processTurnUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getDayAppointments := getDayAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(availabilitySvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(queryAvailabilityUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Диалог ---
	// Создание новой беседы
	api.HandleFunc("/conversations", createConversation.Handle).Methods(http.MethodPost)

	// Обработка одного хода беседы
	api.HandleFunc("/conversations/{conversationId}/turns", processTurn.Handle).Methods(http.MethodPost)

	// --- Записи на приём ---
	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список записей на дату
	api.HandleFunc("/appointments", getDayAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	api.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// Перенос записи
	api.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// --- Доступность ---
	// Свободные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка конкретного времени
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

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
