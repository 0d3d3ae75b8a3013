package turfapi

import (
	"encoding/json"

	"github.com/savioruz/turfics/pkg/geo"
)

// Sports decodes the turf sports field, sent either as "A, B" or ["A", "B"].
type Sports []string

func (s *Sports) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*s = geo.ParseSports(raw)

	return nil
}

type Message struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type OTPSendRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type OTPVerifyRequest struct {
	PhoneNumber string `json:"phone_number"`
	OTP         string `json:"otp"`
}

type OAuthExchangeRequest struct {
	Provider    string `json:"provider"`
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	ProviderID  string `json:"provider_id"`
}

type Game struct {
	ID           int64   `json:"id"`
	SportType    string  `json:"sport_type"`
	GameCategory string  `json:"game_category"`
	DefaultPrice float64 `json:"default_price"`
	SlotDuration int     `json:"slot_duration"`
	IsActive     bool    `json:"is_active"`
	UnitsCount   int     `json:"units_count,omitempty"`
	Units        []Unit  `json:"units,omitempty"`
}

type Unit struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	UnitType      string   `json:"unit_type"`
	Capacity      int      `json:"capacity"`
	Size          string   `json:"size"`
	PriceOverride *float64 `json:"price_override"`
	Indoor        bool     `json:"indoor"`
	HasLighting   bool     `json:"has_lighting"`
	Status        string   `json:"status"`
}

type Turf struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	MinPrice     float64  `json:"min_price"`
	PricePerHour float64  `json:"price_per_hour,omitempty"`
	Sports       Sports   `json:"sports"`
	Amenities    string   `json:"amenities"`
	Facilities   string   `json:"facilities,omitempty"`
	Rating       float64  `json:"rating"`
	ImageURL     string   `json:"image_url"`
	OpeningTime  string   `json:"opening_time"`
	ClosingTime  string   `json:"closing_time"`
	SurfaceType  string   `json:"surface_type,omitempty"`
	Description  string   `json:"description,omitempty"`
	Status       string   `json:"status,omitempty"`
	Games        []Game   `json:"games,omitempty"`
}

// Point returns the turf coordinates when both are present.
func (t Turf) Point() (geo.Point, bool) {
	if t.Latitude == nil || t.Longitude == nil {
		return geo.Point{}, false
	}

	p := geo.Point{Lat: *t.Latitude, Lng: *t.Longitude}

	return p, p.Valid()
}

type TurfRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Amenities   string   `json:"amenities,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	OpeningTime string   `json:"opening_time,omitempty"`
	ClosingTime string   `json:"closing_time,omitempty"`
}

type GameRequest struct {
	SportType    string  `json:"sport_type"`
	GameCategory string  `json:"game_category"`
	DefaultPrice float64 `json:"default_price"`
	SlotDuration int     `json:"slot_duration"`
}

type UnitRequest struct {
	Name          string   `json:"name"`
	UnitType      string   `json:"unit_type,omitempty"`
	Capacity      int      `json:"capacity,omitempty"`
	PriceOverride *float64 `json:"price_override,omitempty"`
	Indoor        bool     `json:"indoor"`
	HasLighting   bool     `json:"has_lighting"`
}

// Slot is the wire shape of GET /api/units/{id}/slots.
type Slot struct {
	ID       string  `json:"id"`
	Time     string  `json:"time"`
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
	StartISO string  `json:"start_iso"`
	EndISO   string  `json:"end_iso"`
}

type CreateBookingRequest struct {
	TurfUnitID int64   `json:"turf_unit_id"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	TotalPrice float64 `json:"total_price"`
}

type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
	ExpiresAt string `json:"expires_at"`
}

type ConfirmBookingRequest struct {
	BookingID   int64  `json:"booking_id"`
	PaymentMode string `json:"payment_mode"`
}

type Booking struct {
	ID           int64   `json:"id"`
	Reference    string  `json:"booking_id"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	TurfID       int64   `json:"turf_id"`
	TurfName     string  `json:"turf_name"`
	TurfImage    string  `json:"turf_image"`
	Location     string  `json:"location"`
	Sport        string  `json:"sport"`
	GameCategory string  `json:"game_category"`
	UnitName     string  `json:"unit_name"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	GuestName    string  `json:"guest_name,omitempty"`
	GuestPhone   string  `json:"guest_phone,omitempty"`
}

type WalkInRequest struct {
	TurfID        int64   `json:"turf_id"`
	UnitID        int64   `json:"unit_id"`
	StartTime     string  `json:"start_time"`
	DurationMins  int     `json:"duration_mins"`
	GuestName     string  `json:"guest_name"`
	GuestPhone    string  `json:"guest_phone,omitempty"`
	PaymentMode   string  `json:"payment_mode"`
	PaymentStatus string  `json:"payment_status"`
	Price         float64 `json:"price"`
}

type BlockRequest struct {
	TurfID       int64  `json:"turf_id"`
	UnitID       int64  `json:"unit_id"`
	StartTime    string `json:"start_time"`
	DurationMins int    `json:"duration_mins"`
	Reason       string `json:"reason"`
}

// OwnerBooking is a row of GET /api/owner/bookings.
type OwnerBooking struct {
	Reference  string  `json:"booking_id"`
	TurfName   string  `json:"turf_name"`
	GameType   string  `json:"game_type"`
	UnitName   string  `json:"unit_name"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	UserID     *int64  `json:"user_id"`
	CreatedAt  string  `json:"created_at"`
}

type OwnerBookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id,omitempty"`
}

// AnalyticsQuery selects the window of GET /api/owner/analytics/detailed.
// StartDate and EndDate take precedence over Range when both are set.
type AnalyticsQuery struct {
	Range     string
	StartDate string
	EndDate   string
}

type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ScatterPoint pairs the hour a booking was made (X) with the hour it is
// played (Y). Z is the booking count scaled by 20 for charting.
type ScatterPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

type TournamentParticipants struct {
	Name         string `json:"name"`
	Participants int    `json:"participants"`
}

type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

type OwnerAnalytics struct {
	RevenueBreakdown  []NamedValue             `json:"revenue_breakdown"`
	AdvanceCollected  float64                  `json:"advance_collected"`
	PendingCollection float64                  `json:"pending_collection"`
	BookingScatter    []ScatterPoint           `json:"booking_scatter"`
	UserRetention     []NamedValue             `json:"user_retention"`
	TournamentStats   []TournamentParticipants `json:"tournament_stats"`
	TopRegions        []RegionCount            `json:"top_regions"`
	AvgPaymentTime    string                   `json:"avg_payment_time"`
}

type OwnerBookingUpdate struct {
	Status        string `json:"status,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	GuestName     string `json:"guest_name,omitempty"`
	GuestPhone    string `json:"guest_phone,omitempty"`
}

type Tournament struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Sport           string         `json:"sport"`
	Description     string         `json:"description,omitempty"`
	Rules           string         `json:"rules,omitempty"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	Location        string         `json:"location"`
	EntryFee        float64        `json:"entry_fee"`
	PrizePool       float64        `json:"prize_pool"`
	ImageURL        string         `json:"image_url"`
	Status          string         `json:"status"`
	MaxTeams        int            `json:"max_teams,omitempty"`
	TeamCount       int            `json:"team_count,omitempty"`
	WalletBalance   float64        `json:"wallet_balance,omitempty"`
	RegisteredTeams int            `json:"registered_teams,omitempty"`
	OrganizerID     int64          `json:"organizer_id,omitempty"`
	Matches         []TourneyMatch `json:"matches,omitempty"`
	Announcements   []Announcement `json:"announcements,omitempty"`
	Registrations   []Registration `json:"registrations_list,omitempty"`
}

type TournamentRequest struct {
	Name        string  `json:"name"`
	Sport       string  `json:"sport"`
	Description string  `json:"description,omitempty"`
	Rules       string  `json:"rules,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date,omitempty"`
	Location    string  `json:"location"`
	EntryFee    float64 `json:"entry_fee"`
	PrizePool   float64 `json:"prize_pool,omitempty"`
	MaxTeams    int     `json:"max_teams,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

type TourneyMatch struct {
	ID     int64  `json:"id"`
	Round  string `json:"round"`
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Score1 *int   `json:"score1"`
	Score2 *int   `json:"score2"`
	Status string `json:"status"`
	Winner string `json:"winner,omitempty"`
	Time   string `json:"time"`
}

type Announcement struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type Registration struct {
	ID            int64  `json:"id"`
	TeamName      string `json:"team_name"`
	CaptainName   string `json:"captain_name"`
	ContactNumber string `json:"contact_number"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

type MyRegistration struct {
	ID            int64      `json:"registration_id"`
	TeamName      string     `json:"team_name"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	Tournament    Tournament `json:"tournament"`
}

type RegisterTeamRequest struct {
	TeamName      string `json:"team_name"`
	CaptainName   string `json:"captain_name,omitempty"`
	ContactNumber string `json:"contact_number"`
}

type RegistrationUpdate struct {
	Status        string `json:"status,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

type AnnouncementRequest struct {
	Content string `json:"content"`
}

type ScheduleMatchRequest struct {
	RoundName string `json:"round_name"`
	Team1     string `json:"team1"`
	Team2     string `json:"team2"`
	Time      string `json:"time,omitempty"`
}

type ScoreUpdate struct {
	Score1 int    `json:"score1"`
	Score2 int    `json:"score2"`
	Status string `json:"status,omitempty"`
	Winner string `json:"winner,omitempty"`
}

type HostMatchRequest struct {
	BookingID        int64  `json:"booking_id"`
	Sport            string `json:"sport"`
	PlayersNeeded    int    `json:"players_needed"`
	GenderPreference string `json:"gender_preference,omitempty"`
	SkillLevel       string `json:"skill_level,omitempty"`
	Description      string `json:"description,omitempty"`
}

// OpenMatch covers the public feed, hosted and joined views of a match request.
type OpenMatch struct {
	ID                int64         `json:"id"`
	Sport             string        `json:"sport"`
	CreatorName       string        `json:"creator_name,omitempty"`
	TurfName          string        `json:"turf_name,omitempty"`
	Location          string        `json:"location,omitempty"`
	Time              string        `json:"time,omitempty"`
	PlayersNeeded     int           `json:"players_needed,omitempty"`
	CostPerPlayer     float64       `json:"cost_per_player,omitempty"`
	GenderPreference  string        `json:"gender_preference,omitempty"`
	Description       string        `json:"description,omitempty"`
	Status            string        `json:"status,omitempty"`
	MatchStatus       string        `json:"match_status,omitempty"`
	JoinRequestsCount int           `json:"join_requests_count,omitempty"`
	Requests          []JoinRequest `json:"requests,omitempty"`
}

type JoinRequest struct {
	ID        int64  `json:"id"`
	UserName  string `json:"user_name"`
	Status    string `json:"status"`
	UserSkill string `json:"user_skill,omitempty"`
}

type MyMatches struct {
	Hosted []OpenMatch `json:"hosted"`
	Joined []OpenMatch `json:"joined"`
}

type JoinActionRequest struct {
	Action string `json:"action"`
}

type Team struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	SkillRequired string `json:"skill_required,omitempty"`
	MembersCount  int    `json:"members_count"`
}

type TeamRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	SkillRequired string `json:"skill_required,omitempty"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type PosterRequest struct {
	Name        string  `json:"name"`
	Sport       string  `json:"sport"`
	EntryFee    float64 `json:"entry_fee"`
	PrizePool   float64 `json:"prize_pool"`
	StartDate   string  `json:"start_date"`
	Tone        string  `json:"tone"`
	CustomTone  *string `json:"custom_tone"`
	ImagePrompt *string `json:"image_prompt"`
}

type PosterContent struct {
	Headline        string   `json:"headline"`
	Subheadline     string   `json:"subheadline"`
	Highlights      []string `json:"highlights"`
	CallToAction    string   `json:"call_to_action"`
	BackgroundImage string   `json:"background_image,omitempty"`
}

// Created is the answer of every create endpoint; only the id of the created kind is set.
type Created struct {
	Message      string `json:"message"`
	ID           int64  `json:"id,omitempty"`
	TurfID       int64  `json:"turf_id,omitempty"`
	GameID       int64  `json:"game_id,omitempty"`
	UnitID       int64  `json:"unit_id,omitempty"`
	TournamentID int64  `json:"tournament_id,omitempty"`
	TeamID       int64  `json:"team_id,omitempty"`
}
