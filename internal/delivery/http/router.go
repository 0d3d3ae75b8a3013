package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/savioruz/turfics/config"
	_ "github.com/savioruz/turfics/docs" // Swagger docs
	authHandler "github.com/savioruz/turfics/internal/domains/auth/handler"
	bookingHandler "github.com/savioruz/turfics/internal/domains/bookings/handler"
	matchFinderHandler "github.com/savioruz/turfics/internal/domains/matchfinder/handler"
	oauthHandler "github.com/savioruz/turfics/internal/domains/oauth/handler"
	posterHandler "github.com/savioruz/turfics/internal/domains/posters/handler"
	tournamentHandler "github.com/savioruz/turfics/internal/domains/tournaments/handler"
	userHandler "github.com/savioruz/turfics/internal/domains/users/handler"
	venueHandler "github.com/savioruz/turfics/internal/domains/venues/handler"
	walkInHandler "github.com/savioruz/turfics/internal/domains/walkin/handler"

	"github.com/savioruz/turfics/internal/delivery/http/middleware"
	"github.com/savioruz/turfics/pkg/logger"
)

type Handlers struct {
	Auth        *authHandler.Handler
	OAuth       *oauthHandler.Handler
	User        *userHandler.Handler
	Venue       *venueHandler.Handler
	Booking     *bookingHandler.Handler
	WalkIn      *walkInHandler.Handler
	Tournament  *tournamentHandler.Handler
	MatchFinder *matchFinderHandler.Handler
	Poster      *posterHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title turfics gateway API
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	apiV1Group := app.Group("/v1")
	{
		handlers.Auth.RegisterRoutes(apiV1Group)
		handlers.OAuth.RegisterRoutes(apiV1Group)
		handlers.User.RegisterRoutes(apiV1Group)
		handlers.Venue.RegisterRoutes(apiV1Group)
		handlers.Booking.RegisterRoutes(apiV1Group)
		handlers.WalkIn.RegisterRoutes(apiV1Group)
		handlers.Tournament.RegisterRoutes(apiV1Group)
		handlers.MatchFinder.RegisterRoutes(apiV1Group)
		handlers.Poster.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
