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
	"github.com/rs/cors"

	bookSlotHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/cancel_booking"
	getNamesHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_names"
	getSlotsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_slots"
	getUserBookingsHandler "github.com/m04kA/SMC-LabBookingService/internal/api/handlers/get_user_bookings"
	"github.com/m04kA/SMC-LabBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-LabBookingService/internal/config"
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	calendarStorage "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/calendar"
	namesStorage "github.com/m04kA/SMC-LabBookingService/internal/infra/storage/names"
	bookingsService "github.com/m04kA/SMC-LabBookingService/internal/service/bookings"
	directoryService "github.com/m04kA/SMC-LabBookingService/internal/service/directory"
	bookSlotUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/book_slot"
	getSlotsUC "github.com/m04kA/SMC-LabBookingService/internal/usecase/get_slots"
	"github.com/m04kA/SMC-LabBookingService/pkg/logger"
	"github.com/m04kA/SMC-LabBookingService/pkg/metrics"
	"github.com/m04kA/SMC-LabBookingService/pkg/types"
)

// CalendarRepository общий интерфейс двух бэкендов хранилища бронирований
type CalendarRepository interface {
	Book(ctx context.Context, reservation *domain.Reservation) error
	Cancel(ctx context.Context, systemID, date, slot string) error
	ListByDate(ctx context.Context, systemID, date string) (map[string]string, error)
	ListByOccupant(ctx context.Context, systemID, occupant string) ([]*domain.Reservation, error)
}

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

	log.Info("Starting SMC-LabBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем справочник политик нарезки слотов
	// Некорректная политика фатальна при старте, а не на запросе
	policies, err := buildPolicySet(cfg.Slots)
	if err != nil {
		log.Fatal("Failed to build slot policies: %v", err)
	}
	log.Info("Slot policies initialized (%d override(s))", len(cfg.Slots.Policies))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем бэкенд хранилища бронирований
	var calendarRepo CalendarRepository

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Port, cfg.Storage.Postgres.DBName)

		calendarRepo = calendarStorage.NewRepository(db)

	default:
		calendarRepo = calendarStorage.NewStore()
		log.Info("Using in-memory calendar store (no persistence across restarts)")
	}

	// Загружаем справочник имен (создается с дефолтами, если файла нет)
	namesRepo, err := namesStorage.NewStore(cfg.Directory.File, cfg.Directory.DefaultNames)
	if err != nil {
		log.Fatal("Failed to load names directory: %v", err)
	}
	log.Info("Names directory loaded from %s", cfg.Directory.File)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(calendarRepo, log)
	directorySvc := directoryService.NewService(namesRepo, log)

	// Инициализируем use cases
	getSlotsUseCase := getSlotsUC.NewUseCase(calendarRepo, policies, log)
	bookSlotUseCase := bookSlotUC.NewUseCase(calendarRepo, policies, log)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(getSlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getNames := getNamesHandler.NewHandler(directorySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Расписание слотов на дату
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Бронирование слота
	api.HandleFunc("/bookings", bookSlot.Handle).Methods(http.MethodPost)

	// Снятие бронирования
	api.HandleFunc("/bookings/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Бронирования пользователя
	api.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Справочник имен для автодополнения
	api.HandleFunc("/names", getNames.Handle).Methods(http.MethodGet)

	// CORS: клиентская страница ходит к API с другого origin
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

// buildPolicySet собирает справочник политик: встроенные политики плюс
// переопределения из конфигурации
func buildPolicySet(cfg config.SlotsConfig) (*domain.PolicySet, error) {
	overrides := map[string]domain.SlotPolicy{
		domain.FullDaySystemID: domain.FullDayPolicy(),
	}

	for _, p := range cfg.Policies {
		if p.System == "" {
			return nil, fmt.Errorf("slot policy without system id")
		}
		overrides[p.System] = domain.SlotPolicy{
			Start:           types.TimeString(p.Start),
			End:             types.TimeString(p.End),
			IntervalMinutes: p.IntervalMinutes,
		}
	}

	return domain.NewPolicySet(domain.DefaultPolicy(), overrides)
}
