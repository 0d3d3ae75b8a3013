package dto

type ListRequest struct {
	Filter string `query:"filter" validate:"omitempty,oneof=all upcoming"`
	Sport  string `query:"sport" validate:"omitempty,max=50"`
}

type CreateRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=120"`
	Sport       string  `json:"sport" validate:"required,max=50" example:"Football"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Rules       string  `json:"rules" validate:"omitempty,max=4000"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02" example:"2026-11-01"`
	EndDate     string  `json:"end_date" validate:"omitempty,datetime=2006-01-02" example:"2026-11-03"`
	Location    string  `json:"location" validate:"required,max=255"`
	EntryFee    float64 `json:"entry_fee" validate:"min=0"`
	PrizePool   float64 `json:"prize_pool" validate:"min=0"`
	MaxTeams    int     `json:"max_teams" validate:"omitempty,min=2,max=256"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

type RegisterRequest struct {
	TeamName      string `json:"team_name" validate:"required,max=100"`
	CaptainName   string `json:"captain_name" validate:"omitempty,max=100"`
	ContactNumber string `json:"contact_number" validate:"required,max=20"`
}

// ManualRegisterRequest is a team entered by the organizer on behalf of its captain.
type ManualRegisterRequest struct {
	TeamName      string `json:"team_name" validate:"required,max=100"`
	CaptainName   string `json:"captain_name" validate:"required,max=100"`
	ContactNumber string `json:"contact_number" validate:"required,max=20"`
}

type RegistrationUpdateRequest struct {
	Status        string `json:"status" validate:"omitempty,oneof=pending confirmed rejected"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=pending paid"`
}

type AnnouncementRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type ScheduleMatchRequest struct {
	RoundName string `json:"round_name" validate:"required,max=50" example:"Quarter Final"`
	Team1     string `json:"team1" validate:"required,max=100"`
	Team2     string `json:"team2" validate:"required,max=100"`
	Time      string `json:"time" validate:"omitempty" example:"2026-11-01T18:00"`
}

type ScoreRequest struct {
	Score1 int    `json:"score1" validate:"min=0"`
	Score2 int    `json:"score2" validate:"min=0"`
	Status string `json:"status" validate:"omitempty,oneof=scheduled live completed"`
	Winner string `json:"winner" validate:"omitempty,max=100"`
}
