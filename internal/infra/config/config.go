package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env             string
	HTTPAddr        string
	StorageMode     string
	MongoURI        string
	MongoDB         string
	KafkaBrokers    []string
	KafkaTopic      string
	RoomFixtures    string
	Currency        string
	ShutdownTimeout time.Duration
}

// Load parses configuration from the current environment. Mongo settings are
// required only when STORAGE_MODE=mongo; Kafka is optional and disabled when
// no brokers are configured.
func Load() (Config, error) {
	cfg := Config{
		Env:          getEnv("APP_ENV", "dev"),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		StorageMode:  strings.ToLower(getEnv("STORAGE_MODE", StorageMemory)),
		MongoURI:     os.Getenv("MONGO_URI"),
		MongoDB:      getEnv("MONGO_DB", "stellarstay"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "stellarstay.reservations"),
		RoomFixtures: getEnv("ROOM_FIXTURES", ""),
		Currency:     strings.ToUpper(getEnv("CURRENCY", "USD")),
	}
	brokers := getEnv("KAFKA_BROKERS", "")
	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	shutdown, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.ShutdownTimeout = shutdown

	switch cfg.StorageMode {
	case StorageMemory:
	case StorageMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required when STORAGE_MODE=%s", StorageMongo)
		}
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_MODE: %q", cfg.StorageMode)
	}
	if len(cfg.Currency) != 3 {
		return Config{}, fmt.Errorf("invalid CURRENCY: %q", cfg.Currency)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}
