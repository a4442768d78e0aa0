package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "CINETRACK_CONFIG"

var DefaultPaths = []string{"config.yaml", "config.yml"}

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Catalog CatalogConfig `koanf:"catalog"`
	HTTP    HTTPConfig    `koanf:"http"`
	Log     LogConfig     `koanf:"log"`
}

type ServerConfig struct {
	Port         int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"gt=0"`
}

type CatalogConfig struct {
	Path    string        `koanf:"path" validate:"required"`
	Retry   int           `koanf:"retry" validate:"min=0,max=10"`
	Breaker BreakerConfig `koanf:"breaker"`
}

type BreakerConfig struct {
	MaxFailures uint32        `koanf:"max_failures" validate:"min=1"`
	OpenTimeout time.Duration `koanf:"open_timeout" validate:"gt=0"`
}

type HTTPConfig struct {
	RateLimit   int           `koanf:"rate_limit" validate:"min=0"`
	RateWindow  time.Duration `koanf:"rate_window" validate:"gt=0"`
	CORSOrigins []string      `koanf:"cors_origins"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Catalog: CatalogConfig{
			Path:  "data/catalog.json",
			Retry: 2,
			Breaker: BreakerConfig{
				MaxFailures: 5,
				OpenTimeout: 30 * time.Second,
			},
		},
		HTTP: HTTPConfig{
			RateLimit:   120,
			RateWindow:  time.Minute,
			CORSOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// envKeys maps environment variables onto config paths. PORT is kept for
// platforms that inject it.
var envKeys = map[string]string{
	"PORT":                               "server.port",
	"CINETRACK_PORT":                     "server.port",
	"CINETRACK_READ_TIMEOUT":             "server.read_timeout",
	"CINETRACK_WRITE_TIMEOUT":            "server.write_timeout",
	"CINETRACK_IDLE_TIMEOUT":             "server.idle_timeout",
	"CINETRACK_CATALOG_PATH":             "catalog.path",
	"CINETRACK_CATALOG_RETRY":            "catalog.retry",
	"CINETRACK_CATALOG_BREAKER_FAILURES": "catalog.breaker.max_failures",
	"CINETRACK_CATALOG_BREAKER_TIMEOUT":  "catalog.breaker.open_timeout",
	"CINETRACK_RATE_LIMIT":               "http.rate_limit",
	"CINETRACK_RATE_WINDOW":              "http.rate_window",
	"CINETRACK_CORS_ORIGINS":             "http.cors_origins",
	"LOG_LEVEL":                          "log.level",
	"LOG_FORMAT":                         "log.format",
}

// Load layers defaults, an optional YAML file and the environment, in that
// order of increasing priority. A .env file in the working directory is
// read into the environment first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	// comma-separated from the environment, a list from YAML
	if v, ok := k.Get("http.cors_origins").(string); ok {
		if err := k.Set("http.cors_origins", splitList(v)); err != nil {
			return nil, fmt.Errorf("config: cors origins: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// envTransform returns "" for variables that are not config keys, which
// makes the env provider skip them.
func envTransform(key string) string {
	return envKeys[key]
}

func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
