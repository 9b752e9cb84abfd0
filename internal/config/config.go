package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	MigrationsPath string
	DefaultLocale  string
	CacheListTTL   time.Duration
	CacheEntityTTL time.Duration
	CacheStatsTTL  time.Duration
}

// Load carga la configuración desde las variables de entorno y la valida.
func Load() (*Config, error) {
	// .env es opcional cuando las variables vienen del entorno (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
	}

	var err error
	if cfg.CacheListTTL, err = durationEnv("CACHE_LIST_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheEntityTTL, err = durationEnv("CACHE_ENTITY_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.CacheStatsTTL, err = durationEnv("CACHE_STATS_TTL", 10*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func durationEnv(name string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s inválido (%q): %w", name, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s debe ser mayor a 0", name)
	}
	return d, nil
}

// validate aplica las reglas sobre la configuración cargada.
func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = ":3000"
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valor por defecto útil en local cuando DATABASE_URL no se define.
		c.DatabaseURL = "postgres://localhost:5432/attendo?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL inválida (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL inválida (%q): falta scheme o host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "es"
	}

	return nil
}
