package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
	SwaggerHost    string

	// WebSocket relay
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
	MaxMessageSize  int64

	ShutdownTimeout time.Duration
}

// Load builds a Config from environment variables, falling back to defaults
// for anything unset or unparsable. Call godotenv.Load first to pick up .env.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	swaggerHost := os.Getenv("SWAGGER_HOST")
	if swaggerHost == "" {
		swaggerHost = "localhost:" + port
	}

	return Config{
		Port:            port,
		GinMode:         os.Getenv("GIN_MODE"),
		AllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
		SwaggerHost:     swaggerHost,
		ReadBufferSize:  intEnv("WS_READ_BUFFER_SIZE", 1024),
		WriteBufferSize: intEnv("WS_WRITE_BUFFER_SIZE", 1024),
		SendQueueSize:   intEnv("WS_SEND_QUEUE_SIZE", 256),
		MaxMessageSize:  int64(intEnv("WS_MAX_MESSAGE_SIZE", 10000)),
		ShutdownTimeout: durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func intEnv(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("Invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return v
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Printf("Invalid %s=%q, using default %s", key, raw, def)
		return def
	}
	return v
}

func splitList(raw string, def []string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
