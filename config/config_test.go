package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()

	for k, v := range map[string]string{
		"APP_NAME":                       "turfics",
		"APP_VERSION":                    "test",
		"CACHE_DURATIONS":                "300",
		"HTTP_PORT":                      "8080",
		"LOG_LEVEL":                      "debug",
		"REDIS_HOST":                     "localhost",
		"REDIS_PORT":                     "6379",
		"OAUTH_GOOGLE_CLIENT_ID":         "id",
		"OAUTH_GOOGLE_CLIENT_SECRET":     "secret",
		"OAUTH_GOOGLE_REDIRECT_URL":      "http://localhost/callback",
		"OAUTH_GOOGLE_FRONTEND_URL":      "http://localhost",
		"SUPABASE_AWS_ACCESS_KEY_ID":     "key",
		"SUPABASE_AWS_SECRET_ACCESS_KEY": "secret",
		"SUPABASE_ENDPOINT_URL":          "http://localhost/storage/v1/s3",
		"SUPABASE_REGION":                "ap-south-1",
		"SUPABASE_BUCKET_NAME":           "exports",
		"MAIL_SMTP_HOST":                 "localhost",
		"MAIL_SMTP_PORT":                 "587",
		"MAIL_SMTP_USERNAME":             "user",
		"MAIL_SMTP_PASSWORD":             "pass",
		"MAIL_FROM_EMAIL":                "noreply@turfics.test",
		"MAIL_FROM_NAME":                 "Turfics",
	} {
		t.Setenv(k, v)
	}
}

func TestNew(t *testing.T) {
	t.Run("success: defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := New()
		require.NoError(t, err)

		assert.Equal(t, 30*time.Minute, cfg.Booking.SlotDuration)
		assert.Equal(t, 2, cfg.Booking.MinSlots)
		assert.Equal(t, 480*time.Second, cfg.Booking.HoldWindow)
		assert.Equal(t, "always-advance", cfg.Booking.ConfirmPolicy)
		assert.InDelta(t, 1.4, cfg.Discovery.Tortuosity, 0.0001)
		assert.Equal(t, 500*time.Millisecond, cfg.Discovery.RefineDebounce)
		assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	})

	t.Run("success: trailing slash trimmed from api url", func(t *testing.T) {
		setRequired(t)
		t.Setenv("TURFICS_API_URL", "https://turfics-web.onrender.com/")

		cfg, err := New()
		require.NoError(t, err)

		assert.Equal(t, "https://turfics-web.onrender.com", cfg.API.BaseURL)
	})

	t.Run("error: missing required", func(t *testing.T) {
		setRequired(t)
		require.NoError(t, os.Unsetenv("HTTP_PORT"))

		_, err := New()
		assert.Error(t, err)
	})
}
