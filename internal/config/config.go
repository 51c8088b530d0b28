package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const appDirName = "nyr"

type Config struct {
	// Application
	AppName  string
	AppEnv   string
	AppTitle string
	DataDir  string
	LogFile  string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Observability (optional)
	SentryDSN string

	// Rendering
	AnimationStep float64       // percentage points added per animation tick
	AnimationTick time.Duration // animation tick period
	ClockTick     time.Duration // wall-clock refresh period
	BarWidth      int           // progress bar width in cells
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	dataDir := envString("DATA_DIR", defaultDataDir())

	cfg := &Config{
		// Application
		AppName:  envString("APP_NAME", "nyr"),
		AppEnv:   envString("APP_ENV", "development"),
		AppTitle: envString("APP_TITLE", fmt.Sprintf("Resolutions %d", time.Now().Year())),
		DataDir:  dataDir,
		LogFile:  envString("LOG_FILE", filepath.Join(dataDir, "nyr.log")),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", filepath.Join(dataDir, "database.sqlite")+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Rendering
		AnimationStep: envFloat("ANIMATION_STEP", 0.5),
		AnimationTick: envDuration("ANIMATION_TICK", 100*time.Millisecond),
		ClockTick:     envDuration("CLOCK_TICK", time.Second),
		BarWidth:      envInt("BAR_WIDTH", 40),
	}

	if cfg.AnimationStep <= 0 {
		slog.Warn("config animation step must be positive, using default", "value", cfg.AnimationStep, "default", 0.5)
		cfg.AnimationStep = 0.5
	}

	return cfg
}

// defaultDataDir is the per-user data directory for the platform:
// $XDG_DATA_HOME/nyr on Linux, ~/Library/Application Support/nyr on macOS
// and %LOCALAPPDATA%\nyr on Windows.
func defaultDataDir() string {
	return filepath.Join(xdg.DataHome, appDirName)
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("config invalid float, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Debug reports whether verbose logging was requested regardless of environment.
func (c *Config) Debug() bool {
	return envBool("DEBUG", c.IsDevelopment())
}
