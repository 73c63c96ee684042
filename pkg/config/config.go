// Package config centralises configuration parsing for the workout tracker.
package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DriverMongo selects the MongoDB storage gateway.
	DriverMongo = "mongo"
	// DriverMemory selects the embedded in-memory store.
	DriverMemory = "memory"
)

// Config captures runtime configuration values for the workout tracker.
type Config struct {
	MongoURI            string
	DatabaseName        string
	MongoConnectTimeout time.Duration
	Host                string
	Port                int
	StoreDriver         string
	DataFile            string        // Snapshot file for the memory store; empty disables persistence.
	SaveInterval        time.Duration // Background save interval for the memory store; 0 disables.
	StaticDir           string
	CORSOrigin          string
	LogLevel            string
	ShutdownTimeout     time.Duration
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() Config {
	return Config{
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017/"),
		DatabaseName:        getEnv("DB_NAME", "workout_tracker"),
		MongoConnectTimeout: getDurationEnv("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		Host:                getEnv("SERVER_HOST", "0.0.0.0"),
		Port:                getIntEnv("SERVER_PORT", 8080),
		StoreDriver:         strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		DataFile:            getEnv("DATA_FILE", ""),
		SaveInterval:        getDurationEnv("SAVE_INTERVAL", 0),
		StaticDir:           getEnv("STATIC_DIR", "frontend"),
		CORSOrigin:          getEnv("CORS_ORIGIN", "*"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout:     getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// Address returns the host:port the HTTP server binds to.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
