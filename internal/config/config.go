package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP    HTTPConfig
	Storage StorageConfig
	Sync    SyncConfig
	Export  ExportConfig
	Logging LoggingConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Port            int
	UserHeader      string
	ShutdownTimeout time.Duration
}

// StorageConfig locates the remote database and the local cache directory.
type StorageConfig struct {
	DatabaseURL string
	DataDir     string
}

// SyncConfig tunes the persistence synchronizer.
type SyncConfig struct {
	Debounce  time.Duration
	NoticeTTL time.Duration
	Timeout   time.Duration
}

type ExportConfig struct {
	ChromePath string
	Timeout    time.Duration
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultPort            = 3000
	defaultUserHeader      = "X-User-ID"
	defaultShutdownTimeout = 10 * time.Second
	defaultDataDir         = "resume-data"
	defaultDebounce        = 2 * time.Second
	defaultNoticeTTL       = 3 * time.Second
	defaultSaveTimeout     = 10 * time.Second
	defaultExportTimeout   = 60 * time.Second
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
)

// LoadDotEnv loads the first existing file of paths into the environment.
// Variables already set win. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		err := godotenv.Load(p)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			UserHeader: valueOrDefault("AUTH_USER_HEADER", defaultUserHeader),
		},
		Storage: StorageConfig{
			DatabaseURL: os.Getenv("RESUME_DATABASE_URL"),
			DataDir:     valueOrDefault("RESUME_DATA_DIR", defaultDataDir),
		},
		Export: ExportConfig{
			ChromePath: os.Getenv("CHROME_PATH"),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	port, err := parsePort("PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"SHUTDOWN_TIMEOUT", defaultShutdownTimeout, &cfg.HTTP.ShutdownTimeout},
		{"SAVE_DEBOUNCE", defaultDebounce, &cfg.Sync.Debounce},
		{"SAVE_NOTICE_TTL", defaultNoticeTTL, &cfg.Sync.NoticeTTL},
		{"SAVE_TIMEOUT", defaultSaveTimeout, &cfg.Sync.Timeout},
		{"EXPORT_TIMEOUT", defaultExportTimeout, &cfg.Export.Timeout},
	}
	for _, d := range durations {
		v, err := parseDuration(d.key, d.fallback)
		if err != nil {
			return Config{}, err
		}
		*d.dst = v
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
