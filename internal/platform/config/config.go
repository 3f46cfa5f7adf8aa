package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string `validate:"required,numeric"`
	IsProduction bool

	// Ipeadata OData endpoint
	IpeadataBaseURL string `validate:"required,url"`
	IpeadataTimeout time.Duration

	// Series cache
	SeriesCacheTTL  time.Duration
	SeriesCacheSize int `validate:"gt=0"`

	RateLimit          string
	CORSAllowedOrigins []string
	DisplayLocale      string `validate:"required,bcp47_language_tag"`
}

// Defaults used when the environment does not provide a value.
const (
	defaultPort            = "8080"
	defaultIpeadataBaseURL = "http://www.ipeadata.gov.br/api/odata4"
	defaultIpeadataTimeout = 30 * time.Second
	defaultSeriesCacheTTL  = 12 * time.Hour
	defaultSeriesCacheSize = 32
	defaultRateLimit       = "120-M"
	defaultDisplayLocale   = "pt-BR"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("IPEADATA_BASE_URL", defaultIpeadataBaseURL)
	v.SetDefault("IPEADATA_TIMEOUT", defaultIpeadataTimeout.String())
	v.SetDefault("SERIES_CACHE_TTL", defaultSeriesCacheTTL.String())
	v.SetDefault("SERIES_CACHE_SIZE", defaultSeriesCacheSize)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DISPLAY_LOCALE", defaultDisplayLocale)
	v.AutomaticEnv()

	cfg := fromViper(v)
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Series snapshots will not be persisted.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.IpeadataBaseURL = strings.TrimRight(v.GetString("IPEADATA_BASE_URL"), "/")
	if cfg.IpeadataBaseURL == "" {
		cfg.IpeadataBaseURL = defaultIpeadataBaseURL
	}

	cfg.IpeadataTimeout = durationOrDefault(v, "IPEADATA_TIMEOUT", defaultIpeadataTimeout)
	cfg.SeriesCacheTTL = durationOrDefault(v, "SERIES_CACHE_TTL", defaultSeriesCacheTTL)

	cfg.SeriesCacheSize = v.GetInt("SERIES_CACHE_SIZE")
	if cfg.SeriesCacheSize <= 0 {
		log.Printf("Warning: Invalid value for SERIES_CACHE_SIZE (%d). Defaulting to %d.\n", cfg.SeriesCacheSize, defaultSeriesCacheSize)
		cfg.SeriesCacheSize = defaultSeriesCacheSize
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.DisplayLocale = v.GetString("DISPLAY_LOCALE")
	if cfg.DisplayLocale == "" {
		cfg.DisplayLocale = defaultDisplayLocale
	}

	return cfg
}

// durationOrDefault parses key as a time.Duration (e.g. "30s", "12h") and falls back to def.
func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
