package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		App       App
		CORS      CORS
		Cache     Cache
		HTTP      HTTP
		Log       Log
		Redis     Redis
		Swagger   Swagger
		Schedule  Schedule
		JWT       JWT
		OAuth     OAuth
		API       API
		Booking   Booking
		Discovery Discovery
		Search    Search
		Geocoding Geocoding
		Supabase  Supabase
		Mail      Mail
	}

	App struct {
		Name     string `env:"APP_NAME,required"`
		Version  string `env:"APP_VERSION,required"`
		Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Kolkata"`
		URL      string `env:"APP_URL" envDefault:"http://localhost:5173"`
	}

	CORS struct {
		AllowCredentials bool   `env:"APP_CORS_ALLOW_CREDENTIALS"`
		AllowedHeaders   string `env:"APP_CORS_ALLOWED_HEADERS"`
		AllowedMethods   string `env:"APP_CORS_ALLOWED_METHODS"`
		AllowedOrigins   string `env:"APP_CORS_ALLOWED_ORIGINS"`
		Enable           bool   `env:"APP_CORS_ENABLE"`
		MaxAgeSeconds    int    `env:"APP_CORS_MAX_AGE_SECONDS"`
	}

	Cache struct {
		Duration      int `env:"CACHE_DURATIONS,required"`
		RouteDuration int `env:"CACHE_ROUTE_DURATIONS" envDefault:"86400"`
	}

	HTTP struct {
		Port            string        `env:"HTTP_PORT,required"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"3s"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL,required" envDefault:"info"`
	}

	Redis struct {
		Host        string        `env:"REDIS_HOST,required"`
		Port        int           `env:"REDIS_PORT,required"`
		Password    string        `env:"REDIS_PASSWORD"`
		DB          int           `env:"REDIS_DB"`
		PoolSize    int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
		DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT" envDefault:"5s"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}

	Schedule struct {
		HoldSweep     string        `env:"SCHEDULE_HOLD_SWEEP" envDefault:"0 */1 * * * *"`
		HoldRetention time.Duration `env:"SCHEDULE_HOLD_RETENTION" envDefault:"15m"`
	}

	// JWT is used to read claims from tokens issued by the turfics API.
	// Signature verification is skipped when Secret is empty.
	JWT struct {
		Secret string `env:"JWT_SECRET"`
	}

	OAuth struct {
		Google GoogleOAuth `env:"OAUTH_GOOGLE"`
	}

	GoogleOAuth struct {
		ClientID     string `env:"OAUTH_GOOGLE_CLIENT_ID,required"`
		ClientSecret string `env:"OAUTH_GOOGLE_CLIENT_SECRET,required"`
		RedirectURL  string `env:"OAUTH_GOOGLE_REDIRECT_URL,required"`
		FrontendURL  string `env:"OAUTH_GOOGLE_FRONTEND_URL,required"`
	}

	API struct {
		BaseURL string        `env:"TURFICS_API_URL" envDefault:"http://localhost:5000"`
		Timeout time.Duration `env:"TURFICS_API_TIMEOUT" envDefault:"15s"`
	}

	Booking struct {
		SlotDuration  time.Duration `env:"BOOKING_SLOT_DURATION" envDefault:"30m"`
		MinSlots      int           `env:"BOOKING_MIN_SLOTS" envDefault:"2"`
		HoldWindow    time.Duration `env:"HOLD_WINDOW" envDefault:"480s"`
		HoldTick      time.Duration `env:"HOLD_TICK" envDefault:"1s"`
		ConfirmPolicy string        `env:"HOLD_CONFIRM_POLICY" envDefault:"always-advance"`
		PartialRatio  float64       `env:"BOOKING_PARTIAL_RATIO" envDefault:"0.3"`
	}

	Discovery struct {
		Tortuosity     float64       `env:"DISCOVERY_TORTUOSITY" envDefault:"1.4"`
		RefineDebounce time.Duration `env:"DISCOVERY_REFINE_DEBOUNCE" envDefault:"500ms"`
		RefineDeadline time.Duration `env:"DISCOVERY_REFINE_DEADLINE" envDefault:"4s"`
		RoutingURL     string        `env:"DISCOVERY_ROUTING_URL" envDefault:"https://router.project-osrm.org"`
		DefaultCity    string        `env:"DISCOVERY_DEFAULT_CITY" envDefault:"Bangalore"`
	}

	Search struct {
		Debounce time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"300ms"`
		MinQuery int           `env:"SEARCH_MIN_QUERY" envDefault:"2"`
	}

	Geocoding struct {
		URL       string `env:"GEOCODING_URL" envDefault:"https://nominatim.openstreetmap.org"`
		UserAgent string `env:"GEOCODING_USER_AGENT" envDefault:"turfics-gateway"`
	}

	Supabase struct {
		AccessKeyID     string `env:"SUPABASE_AWS_ACCESS_KEY_ID,required"`
		SecretAccessKey string `env:"SUPABASE_AWS_SECRET_ACCESS_KEY,required"`
		EndpointURL     string `env:"SUPABASE_ENDPOINT_URL,required"`
		Region          string `env:"SUPABASE_REGION,required"`
		BucketName      string `env:"SUPABASE_BUCKET_NAME,required"`
	}

	Mail struct {
		SMTPHost     string `env:"MAIL_SMTP_HOST,required"`
		SMTPPort     int    `env:"MAIL_SMTP_PORT,required"`
		SMTPUsername string `env:"MAIL_SMTP_USERNAME,required"`
		SMTPPassword string `env:"MAIL_SMTP_PASSWORD,required"`
		FromEmail    string `env:"MAIL_FROM_EMAIL,required"`
		FromName     string `env:"MAIL_FROM_NAME,required"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config failed: %w", err)
	}

	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	cfg.Discovery.RoutingURL = strings.TrimRight(cfg.Discovery.RoutingURL, "/")
	cfg.Geocoding.URL = strings.TrimRight(cfg.Geocoding.URL, "/")

	return cfg, nil
}
