package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/delivery/http"
	"github.com/savioruz/turfics/internal/delivery/http/response"
	"github.com/savioruz/turfics/pkg/geocoding"
	"github.com/savioruz/turfics/pkg/hold"
	"github.com/savioruz/turfics/pkg/httpserver"
	"github.com/savioruz/turfics/pkg/jwt"
	"github.com/savioruz/turfics/pkg/logger"
	"github.com/savioruz/turfics/pkg/mail"
	"github.com/savioruz/turfics/pkg/oauth"
	"github.com/savioruz/turfics/pkg/redis"
	"github.com/savioruz/turfics/pkg/routing"
	"github.com/savioruz/turfics/pkg/supabase"
	"github.com/savioruz/turfics/pkg/turfapi"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	Redis      *redis.Redis
	JWT        *jwt.JWT
	Holds      *hold.Registry
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) *jwt.JWT {
	jwt.Initialize(cfg.JWT.Secret)
	return jwt.GetInstance()
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB,
		redis.PoolSize(cfg.Redis.PoolSize),
		redis.DialTimeout(cfg.Redis.DialTimeout),
	)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideGoogleOAuth(cfg *config.Config) oauth.GoogleProviderIface {
	return oauth.NewGoogleProvider(cfg.OAuth.Google.ClientID, cfg.OAuth.Google.ClientSecret, cfg.OAuth.Google.RedirectURL)
}

func provideTurfAPI(cfg *config.Config, l logger.Interface) *turfapi.Client {
	return turfapi.New(cfg.API.BaseURL, cfg.API.Timeout, l)
}

func provideRouting(cfg *config.Config, c redis.IRedisCache, l logger.Interface) routing.Router {
	return routing.New(routing.Config{
		BaseURL:       cfg.Discovery.RoutingURL,
		Timeout:       cfg.Discovery.RefineDeadline,
		CacheDuration: cfg.Cache.RouteDuration,
	}, c, l)
}

func provideGeocoding(cfg *config.Config, c redis.IRedisCache, l logger.Interface) geocoding.Geocoder {
	return geocoding.New(geocoding.Config{
		BaseURL:       cfg.Geocoding.URL,
		UserAgent:     cfg.Geocoding.UserAgent,
		Timeout:       cfg.Discovery.RefineDeadline,
		CacheDuration: cfg.Cache.RouteDuration,
	}, c, l)
}

func provideHoldRegistry(cfg *config.Config, l logger.Interface) (*hold.Registry, error) {
	policy, err := hold.ParsePolicy(cfg.Booking.ConfirmPolicy)
	if err != nil {
		return nil, err
	}

	return hold.NewRegistry(hold.Options{
		Window: cfg.Booking.HoldWindow,
		Tick:   cfg.Booking.HoldTick,
		Policy: policy,
	}, l), nil
}

func provideStorage(cfg *config.Config) (supabase.Storage, error) {
	client, err := supabase.NewClient(context.Background(), supabase.Config{
		AccessKeyID:     cfg.Supabase.AccessKeyID,
		SecretAccessKey: cfg.Supabase.SecretAccessKey,
		EndpointURL:     cfg.Supabase.EndpointURL,
		Region:          cfg.Supabase.Region,
		BucketName:      cfg.Supabase.BucketName,
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

func provideMail(cfg *config.Config) (mail.Service, error) {
	return mail.New(mail.Config{
		SMTPHost:     cfg.Mail.SMTPHost,
		SMTPPort:     cfg.Mail.SMTPPort,
		SMTPUsername: cfg.Mail.SMTPUsername,
		SMTPPassword: cfg.Mail.SMTPPassword,
		FromEmail:    cfg.Mail.FromEmail,
		FromName:     cfg.Mail.FromName,
	})
}

func provideHTTPServer(cfg *config.Config, l logger.Interface, h http.Handlers) *httpserver.Server {
	server := httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.AppName(cfg.App.Name),
		httpserver.ErrorHandler(response.ErrorHandler),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	http.NewRouter(server.App, cfg, l, h)

	return server
}
