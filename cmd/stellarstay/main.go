package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"stellarstay/internal/app/services/reservations"
	"stellarstay/internal/domain/pricing"
	"stellarstay/internal/domain/reservation"
	"stellarstay/internal/domain/room"
	"stellarstay/internal/domain/shared/money"
	"stellarstay/internal/infra/broker/kafka"
	"stellarstay/internal/infra/config"
	mongodb "stellarstay/internal/infra/db/mongo"
	ginserver "stellarstay/internal/infra/http/gin"
	"stellarstay/internal/infra/obs"
	"stellarstay/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using fallback configuration", "error", err)
		cfg = config.Config{
			Env:             env,
			HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
			StorageMode:     config.StorageMemory,
			Currency:        "USD",
			ShutdownTimeout: 5 * time.Second,
		}
	}

	app, err := buildApplication(ctx, cfg, logger)
	if err != nil {
		logger.Error("application bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer app.close(logger)

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, app.handlers)

	fixturesPath := cfg.RoomFixtures
	if fixturesPath == "" {
		fixturesPath = defaultRoomFixturesPath()
	}
	if err := app.seedRooms(ctx, fixturesPath, cfg.Currency, logger); err != nil {
		logger.Warn("room fixtures load failed", "error", err, "path", fixturesPath)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	rooms    room.Catalog
	mongo    *mongodb.Client
	producer *kafka.Producer
}

func buildApplication(ctx context.Context, cfg config.Config, logger *slog.Logger) (*application, error) {
	app := &application{}

	var reservationsRepo reservation.Repository
	switch cfg.StorageMode {
	case config.StorageMongo:
		client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		app.mongo = client
		app.rooms = mongodb.NewRoomRepository(client.DB)
		reservationsRepo = mongodb.NewReservationRepository(client.DB)
	default:
		app.rooms = memory.NewRoomRepository()
		reservationsRepo = memory.NewReservationRepository()
	}

	var events reservations.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			return nil, fmt.Errorf("kafka connect: %w", err)
		}
		app.producer = producer
		events = kafka.ReservationEvents{Producer: producer, Topic: cfg.KafkaTopic}
		logger.Info("reservation events enabled", "topic", cfg.KafkaTopic)
	}

	service := &reservations.Service{
		Rooms:        app.rooms,
		Reservations: reservationsRepo,
		Pricing:      pricing.NewRateCalculator(),
		Events:       events,
		Logger:       logger,
	}

	app.handlers = ginserver.Handlers{
		Reservations: ginserver.ReservationHandler{Service: service},
		Rooms:        ginserver.RoomHandler{Catalog: app.rooms},
	}
	return app, nil
}

func (a *application) ready() error {
	if a.mongo == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return a.mongo.Ping(ctx)
}

func (a *application) close(logger *slog.Logger) {
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			logger.Error("kafka producer close failed", "error", err)
		}
	}
	if a.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.mongo.Close(ctx); err != nil {
			logger.Error("mongo disconnect failed", "error", err)
		}
	}
}

type roomFixture struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	MaxOccupancy int    `json:"max_occupancy"`
	NumberOfBeds int    `json:"number_of_beds"`
	HasOceanView bool   `json:"has_ocean_view"`
	BaseRate     string `json:"base_rate"`
}

func (a *application) seedRooms(ctx context.Context, path, currency string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("room fixtures file not found, skipping", "path", path)
			return nil
		}
		return fmt.Errorf("read fixtures: %w", err)
	}
	if len(data) == 0 {
		logger.Warn("room fixtures file empty", "path", path)
		return nil
	}

	var fixtures []roomFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}

	for _, fx := range fixtures {
		rate, err := money.ParseDecimal(fx.BaseRate, currency)
		if err != nil {
			logger.Error("fixture rate invalid", "room_id", fx.ID, "error", err)
			continue
		}
		rm := &room.Room{
			ID:           room.RoomID(fx.ID),
			Type:         fx.Type,
			MaxOccupancy: fx.MaxOccupancy,
			NumberOfBeds: fx.NumberOfBeds,
			HasOceanView: fx.HasOceanView,
			BaseRate:     rate,
		}
		if err := rm.Validate(); err != nil {
			logger.Error("fixture invalid", "room_id", fx.ID, "error", err)
			continue
		}
		if err := a.rooms.Save(ctx, rm); err != nil {
			logger.Error("cannot store fixture room", "room_id", fx.ID, "error", err)
			continue
		}
		logger.Info("room fixture imported", "room_id", rm.ID, "type", rm.Type)
	}
	return nil
}

func defaultRoomFixturesPath() string {
	candidates := []string{
		filepath.Join("data", "rooms.json"),
		filepath.Join("cmd", "stellarstay", "data", "rooms.json"),
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return candidates[0]
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
