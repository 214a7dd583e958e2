package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultUpstream = "http://26.206.108.15:8000"
)

// Config sale de env vars; un .env en el directorio actual se carga primero
// sin pisar lo que ya está en el entorno.
type Config struct {
	Host string
	Port string

	// Destino del dev proxy.
	Upstream string
	// Base a la que llama el controller. Si está vacío, Upstream.
	APIURL string

	DevProxy    bool
	HTTPTimeout time.Duration
	ViewTTL     time.Duration
	PrettyHTML  bool
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load lee .env (si existe) y luego el entorno.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv arma la config a partir de un lookup (os.Getenv en producción).
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Host:     get("HOST", "127.0.0.1"),
		Port:     get("PORT", "8080"),
		Upstream: strings.TrimRight(get("CATS_UPSTREAM", DefaultUpstream), "/"),
	}
	cfg.APIURL = strings.TrimRight(get("CATS_API_URL", cfg.Upstream), "/")

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("config: PORT must be numeric, got %q", cfg.Port)
	}

	var err error
	if cfg.DevProxy, err = parseBool("DEV_PROXY", get("DEV_PROXY", "true")); err != nil {
		return Config{}, err
	}
	if cfg.PrettyHTML, err = parseBool("PRETTY_HTML", get("PRETTY_HTML", "false")); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout, err = parseDuration("HTTP_TIMEOUT", get("HTTP_TIMEOUT", "10s")); err != nil {
		return Config{}, err
	}
	if cfg.ViewTTL, err = parseDuration("VIEW_TTL", get("VIEW_TTL", "30m")); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func parseBool(key, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a bool, got %q", key, v)
	}
	return b, nil
}

func parseDuration(key, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("config: %s must be a positive duration, got %q", key, v)
	}
	return d, nil
}
