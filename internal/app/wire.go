//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/savioruz/turfics/config"
	"github.com/savioruz/turfics/internal/delivery/http"

	authHandler "github.com/savioruz/turfics/internal/domains/auth/handler"
	authService "github.com/savioruz/turfics/internal/domains/auth/service"

	oauthHandler "github.com/savioruz/turfics/internal/domains/oauth/handler"
	oauthService "github.com/savioruz/turfics/internal/domains/oauth/service"

	userHandler "github.com/savioruz/turfics/internal/domains/users/handler"
	userService "github.com/savioruz/turfics/internal/domains/users/service"

	venueHandler "github.com/savioruz/turfics/internal/domains/venues/handler"
	venueService "github.com/savioruz/turfics/internal/domains/venues/service"

	bookingHandler "github.com/savioruz/turfics/internal/domains/bookings/handler"
	bookingService "github.com/savioruz/turfics/internal/domains/bookings/service"

	walkInHandler "github.com/savioruz/turfics/internal/domains/walkin/handler"
	walkInService "github.com/savioruz/turfics/internal/domains/walkin/service"

	tournamentHandler "github.com/savioruz/turfics/internal/domains/tournaments/handler"
	tournamentService "github.com/savioruz/turfics/internal/domains/tournaments/service"

	matchFinderHandler "github.com/savioruz/turfics/internal/domains/matchfinder/handler"
	matchFinderService "github.com/savioruz/turfics/internal/domains/matchfinder/service"

	posterHandler "github.com/savioruz/turfics/internal/domains/posters/handler"
	posterService "github.com/savioruz/turfics/internal/domains/posters/service"

	"github.com/savioruz/turfics/pkg/turfapi"
)

var turfAPI = wire.NewSet(
	provideTurfAPI,
	wire.Bind(new(turfapi.AuthAPI), new(*turfapi.Client)),
	wire.Bind(new(turfapi.VenueAPI), new(*turfapi.Client)),
	wire.Bind(new(turfapi.BookingAPI), new(*turfapi.Client)),
	wire.Bind(new(turfapi.OwnerAPI), new(*turfapi.Client)),
	wire.Bind(new(turfapi.TournamentAPI), new(*turfapi.Client)),
	wire.Bind(new(turfapi.MatchAPI), new(*turfapi.Client)),
	wire.Bind(new(turfapi.UserAPI), new(*turfapi.Client)),
	wire.Bind(new(turfapi.PosterAPI), new(*turfapi.Client)),
)

var authDomain = wire.NewSet(
	authService.New,
	authHandler.New,
)

var oauthDomain = wire.NewSet(
	oauthService.New,
	oauthHandler.New,
)

var userDomain = wire.NewSet(
	userService.New,
	userHandler.New,
)

var venueDomain = wire.NewSet(
	provideRouting,
	provideGeocoding,
	venueService.New,
	venueHandler.New,
)

var bookingDomain = wire.NewSet(
	provideHoldRegistry,
	bookingService.New,
	bookingHandler.New,
)

var walkInDomain = wire.NewSet(
	walkInService.New,
	walkInHandler.New,
)

var tournamentDomain = wire.NewSet(
	tournamentService.New,
	tournamentHandler.New,
)

var matchFinderDomain = wire.NewSet(
	matchFinderService.New,
	matchFinderHandler.New,
)

var posterDomain = wire.NewSet(
	posterService.New,
	posterHandler.New,
)

var domains = wire.NewSet(
	authDomain,
	oauthDomain,
	userDomain,
	venueDomain,
	bookingDomain,
	walkInDomain,
	tournamentDomain,
	matchFinderDomain,
	posterDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideJWT,
		provideGoogleOAuth,
		provideStorage,
		provideMail,
		turfAPI,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}
