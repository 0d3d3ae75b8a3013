package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "turfics-gateway"
)

const (
	RequestParamID = "id"

	RequestValidateID   = "required,numeric"
	RequestValidateUUID = "required,uuid"
)

const (
	FullDateFormat  = time.RFC3339
	NaiveISOFormat  = "2006-01-02T15:04:05"
	NaiveISOMinutes = "2006-01-02T15:04"
	DateFormat      = "2006-01-02"
	HoursFormat     = "15:04"
)

const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"
	SlotStatusBlocked   = "blocked"
)

const (
	PaymentModeFull    = "full"
	PaymentModePartial = "partial"
	PaymentModeCash    = "cash"

	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	WalkInDefaultGuest  = "Walk-In"
	BlockDefaultReason  = "Maintenance"
	RegistrationPending = "pending"
)

const (
	AnalyticsRangeMonth  = "month"
	AnalyticsRangeCustom = "custom"
)

const (
	MatchStatusScheduled = "scheduled"
	MatchStatusLive      = "live"
	MatchStatusCompleted = "completed"
)

const (
	GenderAny = "any"
)

const (
	JoinActionApprove = "approve"
	JoinActionReject  = "reject"
)

const (
	SessionLocalKey = "session"
	LoginPath       = "/login"
	HomePath        = "/"
	OwnerHomePath   = "/owner/dashboard"

	HeaderLoginRedirect = "X-Login-Redirect"
)

const (
	RoleOwner = "owner"
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	MetersPerKilometer = 1000
	EarthRadiusKm      = 6371.0
)

var (
	ErrInvalidContextSessionType = errors.New("invalid session type in context")
)
