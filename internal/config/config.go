package config

import (
	"errors"
	"os"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// Station registry configuration.
	StationAPIURL    string
	StationEnabled   bool
	StationTimeout   time.Duration
	StationCacheSize int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	batchSize, err := parseBoundedInt("BATCH_SIZE", 50, 1, 1000)
	if err != nil {
		return nil, err
	}

	flushInterval, err := parseDuration("BATCH_FLUSH_INTERVAL", "500ms")
	if err != nil {
		return nil, err
	}

	stationTimeout, err := parseDuration("STATION_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	stationCacheSize, err := parseBoundedInt("STATION_CACHE_SIZE", 1000, 1, 1_000_000)
	if err != nil {
		return nil, err
	}

	stationAPIURL := os.Getenv("STATION_API_URL")
	stationEnabled := stationAPIURL != ""
	if v := os.Getenv("STATION_ENABLED"); v != "" {
		stationEnabled = v == "true"
	}

	cfg := &Config{
		KafkaBrokers:       parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic:   envOrDefault("KAFKA_SOURCE_TOPIC", "raw-thermometer-readings"),
		KafkaSinkTopic:     envOrDefault("KAFKA_SINK_TOPIC", "enriched-thermometer-readings"),
		KafkaGroupID:       envOrDefault("KAFKA_GROUP_ID", "thermoscale-etl"),
		HTTPAddr:           envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:    shutdownTimeout,
		BatchSize:          batchSize,
		BatchFlushInterval: flushInterval,

		StationAPIURL:    stationAPIURL,
		StationEnabled:   stationEnabled,
		StationTimeout:   stationTimeout,
		StationCacheSize: stationCacheSize,
	}

	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSourceTopic == "" {
		return nil, errors.New("KAFKA_SOURCE_TOPIC is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}
	if cfg.StationEnabled && cfg.StationAPIURL == "" {
		return nil, errors.New("STATION_ENABLED is true but STATION_API_URL is not set")
	}

	return cfg, nil
}
