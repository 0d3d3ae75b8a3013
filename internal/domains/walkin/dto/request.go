package dto

// SubmitRequest books (walk-in) or blocks the selected slots of one unit.
type SubmitRequest struct {
	TurfID        int64    `json:"turf_id" validate:"required,min=1"`
	UnitID        int64    `json:"unit_id" validate:"required,min=1"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02" example:"2026-10-18"`
	SlotIDs       []string `json:"slot_ids" validate:"required,min=1,max=48,unique,dive,required"`
	Mode          string   `json:"mode" validate:"required,oneof=book block" example:"book"`
	GuestName     string   `json:"guest_name" validate:"omitempty,max=100"`
	GuestPhone    string   `json:"guest_phone" validate:"omitempty,max=20"`
	PaymentMode   string   `json:"payment_mode" validate:"omitempty,oneof=cash upi"`
	PaymentStatus string   `json:"payment_status" validate:"omitempty,oneof=paid pending"`
}

type UpdateBookingRequest struct {
	Status        string `json:"status" validate:"omitempty,oneof=confirmed cancelled blocked completed"`
	PaymentStatus string `json:"payment_status" validate:"omitempty,oneof=paid pending"`
	GuestName     string `json:"guest_name" validate:"omitempty,max=100"`
	GuestPhone    string `json:"guest_phone" validate:"omitempty,max=20"`
}

func (r UpdateBookingRequest) Empty() bool {
	return r.Status == "" && r.PaymentStatus == "" && r.GuestName == "" && r.GuestPhone == ""
}

type OwnerBookingsRequest struct {
	Status string `query:"status" validate:"omitempty,oneof=confirmed cancelled blocked completed held"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// AnalyticsRequest picks the reporting window. A start_date and end_date
// pair selects a custom window and overrides range.
type AnalyticsRequest struct {
	Range     string `query:"range" validate:"omitempty,oneof=day week month year all custom" example:"month"`
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02" example:"2026-10-01"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02" example:"2026-10-18"`
}

type CreateTurfRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=120"`
	Location    string   `json:"location" validate:"required,max=255"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
	Amenities   string   `json:"amenities" validate:"omitempty,max=500"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	OpeningTime string   `json:"opening_time" validate:"omitempty,datetime=15:04" example:"06:00"`
	ClosingTime string   `json:"closing_time" validate:"omitempty,datetime=15:04" example:"23:00"`
}

type CreateGameRequest struct {
	SportType    string  `json:"sport_type" validate:"required,max=50" example:"Football"`
	GameCategory string  `json:"game_category" validate:"omitempty,oneof=team individual"`
	DefaultPrice float64 `json:"default_price" validate:"required,gt=0"`
	SlotDuration int     `json:"slot_duration" validate:"omitempty,min=30,max=240"`
}

type CreateUnitRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	UnitType      string   `json:"unit_type" validate:"omitempty,max=50"`
	Capacity      int      `json:"capacity" validate:"omitempty,min=1,max=100"`
	PriceOverride *float64 `json:"price_override" validate:"omitempty,gt=0"`
	Indoor        bool     `json:"indoor"`
	HasLighting   bool     `json:"has_lighting"`
}
