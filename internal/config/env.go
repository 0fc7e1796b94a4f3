package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// envOrDefault returns the environment variable's value, or def when unset
// or empty.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(s string) []string {
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

// parseDuration reads a positive duration from the environment.
func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive duration", key)
	}
	return d, nil
}

// parseBoundedInt reads an integer from the environment and enforces
// [min, max].
func parseBoundedInt(key string, def, min, max int) (int, error) {
	s := envOrDefault(key, strconv.Itoa(def))
	n, err := strconv.Atoi(s)
	if err != nil || n < min || n > max {
		return 0, fmt.Errorf("invalid %s: must be an integer in [%d, %d]", key, min, max)
	}
	return n, nil
}
