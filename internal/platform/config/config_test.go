package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PGSQL_URL", "")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://www.ipeadata.gov.br/api/odata4", cfg.IpeadataBaseURL)
	assert.Equal(t, 30*time.Second, cfg.IpeadataTimeout)
	assert.Equal(t, 12*time.Hour, cfg.SeriesCacheTTL)
	assert.Equal(t, 32, cfg.SeriesCacheSize)
	assert.Equal(t, "120-M", cfg.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "pt-BR", cfg.DisplayLocale)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("IPEADATA_BASE_URL", "http://localhost:1234/odata4/")
	t.Setenv("SERIES_CACHE_TTL", "45m")
	t.Setenv("SERIES_CACHE_SIZE", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "http://localhost:1234/odata4", cfg.IpeadataBaseURL)
	assert.Equal(t, 45*time.Minute, cfg.SeriesCacheTTL)
	assert.Equal(t, 4, cfg.SeriesCacheSize)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_InvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	v.Set("IPEADATA_TIMEOUT", "soon")
	v.Set("SERIES_CACHE_SIZE", -1)

	cfg := fromViper(v)
	assert.Equal(t, defaultIpeadataTimeout, cfg.IpeadataTimeout)
	assert.Equal(t, defaultSeriesCacheSize, cfg.SeriesCacheSize)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultIpeadataBaseURL, cfg.IpeadataBaseURL)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non numeric port", key: "PORT", value: "http"},
		{name: "relative ipeadata url", key: "IPEADATA_BASE_URL", value: "ipeadata/odata4"},
		{name: "malformed locale", key: "DISPLAY_LOCALE", value: "pt_BR!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := LoadConfig()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
