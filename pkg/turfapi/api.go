package turfapi

import (
	"context"

	"github.com/savioruz/turfics/pkg/session"
)

//go:generate go run go.uber.org/mock/mockgen -source=api.go -destination=mock/api_mock.go -package=mock

type AuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (Message, error)
	SendOTP(ctx context.Context, req OTPSendRequest) (Message, error)
	VerifyOTP(ctx context.Context, req OTPVerifyRequest) (LoginResponse, error)
	ExchangeOAuth(ctx context.Context, req OAuthExchangeRequest) (LoginResponse, error)
}

type VenueAPI interface {
	ListTurfs(ctx context.Context, sess *session.Session) ([]Turf, error)
	GetTurf(ctx context.Context, sess *session.Session, id int64) (Turf, error)
	ListGames(ctx context.Context, sess *session.Session, turfID int64) ([]Game, error)
	ListSlots(ctx context.Context, sess *session.Session, unitID int64, date string) ([]Slot, error)
}

type BookingAPI interface {
	CreateBooking(ctx context.Context, sess *session.Session, req CreateBookingRequest) (CreateBookingResponse, error)
	ConfirmBooking(ctx context.Context, sess *session.Session, req ConfirmBookingRequest) (Message, error)
	MyBookings(ctx context.Context, sess *session.Session, filter string) ([]Booking, error)
	CancelBooking(ctx context.Context, sess *session.Session, id int64) (Message, error)
}

type OwnerAPI interface {
	OwnerTurfs(ctx context.Context, sess *session.Session) ([]Turf, error)
	CreateTurf(ctx context.Context, sess *session.Session, req TurfRequest) (Created, error)
	CreateGame(ctx context.Context, sess *session.Session, turfID int64, req GameRequest) (Created, error)
	CreateUnit(ctx context.Context, sess *session.Session, gameID int64, req UnitRequest) (Created, error)
	OwnerBookings(ctx context.Context, sess *session.Session) ([]OwnerBooking, error)
	WalkIn(ctx context.Context, sess *session.Session, req WalkInRequest) (OwnerBookingResponse, error)
	Block(ctx context.Context, sess *session.Session, req BlockRequest) (OwnerBookingResponse, error)
	UpdateOwnerBooking(ctx context.Context, sess *session.Session, id int64, req OwnerBookingUpdate) (Message, error)
	OwnerAnalytics(ctx context.Context, sess *session.Session, q AnalyticsQuery) (OwnerAnalytics, error)
}

type TournamentAPI interface {
	ListTournaments(ctx context.Context, sess *session.Session, filter, sport string) ([]Tournament, error)
	GetTournament(ctx context.Context, sess *session.Session, id int64) (Tournament, error)
	CreateTournament(ctx context.Context, sess *session.Session, req TournamentRequest) (Created, error)
	OrganizerTournaments(ctx context.Context, sess *session.Session) ([]Tournament, error)
	RegisterTeam(ctx context.Context, sess *session.Session, tournamentID int64, req RegisterTeamRequest) (Message, error)
	MyRegistrations(ctx context.Context, sess *session.Session) ([]MyRegistration, error)
	UpdateRegistration(ctx context.Context, sess *session.Session, id int64, req RegistrationUpdate) (Message, error)
	PostAnnouncement(ctx context.Context, sess *session.Session, tournamentID int64, req AnnouncementRequest) (Message, error)
	ScheduleMatch(ctx context.Context, sess *session.Session, tournamentID int64, req ScheduleMatchRequest) (Message, error)
	UpdateScore(ctx context.Context, sess *session.Session, matchID int64, req ScoreUpdate) (Message, error)
}

type MatchAPI interface {
	HostMatch(ctx context.Context, sess *session.Session, req HostMatchRequest) (Created, error)
	ListMatches(ctx context.Context, sess *session.Session, sport string) ([]OpenMatch, error)
	MyMatches(ctx context.Context, sess *session.Session) (MyMatches, error)
	JoinMatch(ctx context.Context, sess *session.Session, id int64) (Message, error)
	ActOnJoinRequest(ctx context.Context, sess *session.Session, requestID int64, action string) (Message, error)
	PayJoinRequest(ctx context.Context, sess *session.Session, requestID int64) (Message, error)
	ListTeams(ctx context.Context, sess *session.Session, skill string) ([]Team, error)
	CreateTeam(ctx context.Context, sess *session.Session, req TeamRequest) (Created, error)
}

type UserAPI interface {
	SearchUsers(ctx context.Context, sess *session.Session, q string) ([]User, error)
}

type PosterAPI interface {
	GeneratePoster(ctx context.Context, sess *session.Session, req PosterRequest) (PosterContent, error)
}

// API is everything the turfics REST API offers.
type API interface {
	AuthAPI
	VenueAPI
	BookingAPI
	OwnerAPI
	TournamentAPI
	MatchAPI
	UserAPI
	PosterAPI
}
