package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/isawsback/isawsback/internal/fetch"
)

type Config struct {
	Addr   string // API bind address, e.g., "127.0.0.1:8080" (local) or ":8080" (Docker)
	LogDir string // logs directory

	Endpoints   []fetch.Endpoint // status mirrors, priority order
	HTTPTimeout time.Duration    // per-endpoint request timeout

	PollInterval time.Duration // between checks; 0 disables the loop
	PollCron     string        // optional cron expression; overrides PollInterval

	SQLitePath   string // default durable store (empty means in-memory)
	DatabaseURL  string // postgres store when set
	RedisURL     string // redis store when set
	SlackWebhook string

	PublicAPIKeys  []string
	AdminAPIKeys   []string
	AllowedOrigins []string
	PublicRPM      int
	PublicBurst    int
	AdminRPM       int
	AdminBurst     int
}

// LoadDotEnv merges a .env file into the environment if one exists. Absence
// is fine; env vars always win in containerized deployments.
func LoadDotEnv() {
	_ = godotenv.Load()
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	var endpoints []fetch.Endpoint
	for _, u := range splitList(os.Getenv("STATUS_ENDPOINTS")) {
		endpoints = append(endpoints, fetch.Endpoint{URL: u})
	}
	if len(endpoints) == 0 {
		endpoints = fetch.DefaultEndpoints
	}

	httpTimeout := 10 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			httpTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	pollInterval := 60 * time.Second
	if v := os.Getenv("CHECK_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			pollInterval = time.Duration(ms) * time.Millisecond
		}
	}

	return Config{
		Addr:   addr,
		LogDir: logDir,

		Endpoints:   endpoints,
		HTTPTimeout: httpTimeout,

		PollInterval: pollInterval,
		PollCron:     os.Getenv("CHECK_CRON"),

		SQLitePath:   os.Getenv("SQLITE_PATH"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		SlackWebhook: os.Getenv("SLACK_WEBHOOK"),

		PublicAPIKeys:  splitList(os.Getenv("PUBLIC_API_KEYS")),
		AdminAPIKeys:   splitList(os.Getenv("ADMIN_API_KEYS")),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		PublicRPM:      envInt("PUBLIC_RPM", 120),
		PublicBurst:    envInt("PUBLIC_BURST", 60),
		AdminRPM:       envInt("ADMIN_RPM", 60),
		AdminBurst:     envInt("ADMIN_BURST", 30),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
