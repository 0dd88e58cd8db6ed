package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T) (*Config, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	return Load()
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)

	assert.True(t, cfg.App.DemoMode)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.NotEmpty(t, cfg.JWT.Secret, "demo mode falls back to a built-in secret")
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30, cfg.RateLimit.ChatPerMin)
	assert.Equal(t, 10, cfg.RateLimit.LoginPerMin)
	assert.Equal(t, "primary", cfg.GoogleCalendar.CalendarID)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Asia/Ho_Chi_Minh")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("TELEGRAM_WEBHOOK_SECRET", "hook-secret")
	t.Setenv("RATE_LIMIT_CHAT_PER_MIN", "5")

	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.App.Timezone)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "bot-token", cfg.Telegram.BotToken)
	assert.Equal(t, "hook-secret", cfg.Telegram.WebhookSecret)
	assert.Equal(t, 5, cfg.RateLimit.ChatPerMin)
}

func TestLoadValidation(t *testing.T) {
	t.Run("production needs a jwt secret", func(t *testing.T) {
		t.Setenv("APP_DEMO_MODE", "false")
		t.Setenv("DATABASE_DRIVER", DriverPostgres)
		t.Setenv("DATABASE_DSN", "postgres://localhost/taskflow")

		_, err := load(t)
		assert.ErrorContains(t, err, "jwt.secret")
	})

	t.Run("postgres needs a dsn", func(t *testing.T) {
		t.Setenv("APP_DEMO_MODE", "false")
		t.Setenv("DATABASE_DRIVER", DriverPostgres)
		t.Setenv("JWT_SECRET", "secret")

		_, err := load(t)
		assert.ErrorContains(t, err, "database.dsn")
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Setenv("APP_TIMEZONE", "Mars/Olympus")

		_, err := load(t)
		assert.ErrorContains(t, err, "app.timezone")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("APP_DEMO_MODE", "false")
		t.Setenv("DATABASE_DRIVER", "mysql")

		_, err := load(t)
		assert.ErrorContains(t, err, "database.driver")
	})
}
