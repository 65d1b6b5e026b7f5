package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	checkAvailabilityHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/create_booking"
	findOrCreateGuestHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/find_or_create_guest"
	getAvailableRoomsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_booking"
	getGuestHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_guest"
	getRoomHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_room"
	listBookingsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/list_bookings"
	listGuestsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/list_guests"
	listRoomsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/list_rooms"
	"github.com/m04kA/SMC-HotelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HotelBooking/internal/config"
	"github.com/m04kA/SMC-HotelBooking/internal/infra/catalog"
	bookingRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/booking"
	guestRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/guest"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	bookingsService "github.com/m04kA/SMC-HotelBooking/internal/service/bookings"
	guestsService "github.com/m04kA/SMC-HotelBooking/internal/service/guests"
	roomsService "github.com/m04kA/SMC-HotelBooking/internal/service/rooms"
	checkAvailabilityUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/create_booking"
	getAvailableRoomsUC "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
	"github.com/m04kA/SMC-HotelBooking/pkg/roomlock"
	"github.com/m04kA/SMC-HotelBooking/pkg/validation"
)

// BusinessMetrics бизнес-метрики, общие для сервисов и use cases
type BusinessMetrics interface {
	BookingCreated(category string)
	BookingConflict()
	AvailabilityChecked(available bool)
	GuestCreated()
}

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-HotelBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		businessMetrics  BusinessMetrics = metrics.Nop{}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		businessMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог номеров
	rooms := roomRepo.NewRepository()
	if err := loadCatalog(cfg, rooms, log); err != nil {
		log.Fatal("Failed to load room catalog: %v", err)
	}

	// Инициализируем хранилища
	bookings := bookingRepo.NewRepository()
	guests := guestRepo.NewRepository()
	locker := roomlock.NewManager()
	validator := validation.New()

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(rooms, log)
	guestSvc := guestsService.NewService(guests, validator, businessMetrics, log)
	bookingSvc := bookingsService.NewService(bookings, rooms, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookings,
		rooms,
		guests,
		locker,
		validator,
		businessMetrics,
		cfg.Location(),
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(rooms, bookings, businessMetrics, log)
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(rooms, bookings, log)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	findOrCreateGuest := findOrCreateGuestHandler.NewHandler(guestSvc, log)
	listGuests := listGuestsHandler.NewHandler(guestSvc, log)
	getGuest := getGuestHandler.NewHandler(guestSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogging(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Номера ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	// Регистрируется до /rooms/{roomId}, иначе "available" будет принят за ID
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Гости ---
	api.HandleFunc("/guests", findOrCreateGuest.Handle).Methods(http.MethodPost)
	api.HandleFunc("/guests", listGuests.Handle).Methods(http.MethodGet)
	api.HandleFunc("/guests/{nationalId}", getGuest.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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

// loadCatalog заполняет каталог номеров из источника, выбранного в конфигурации
func loadCatalog(cfg *config.Config, rooms *roomRepo.Repository, log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var src catalog.Source

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}
		log.Info("Connected to catalog database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		src = catalog.NewPostgresSource(db)

	default:
		static := make([]catalog.StaticRoom, 0, len(cfg.Catalog.Rooms))
		for _, room := range cfg.Catalog.Rooms {
			static = append(static, catalog.StaticRoom{
				ID:       room.ID,
				Number:   room.Number,
				Category: room.Category,
				Beds:     room.Beds,
			})
		}
		src = catalog.NewStaticSource(static)
	}

	_, err := catalog.Load(ctx, src, rooms, log)
	return err
}
