package dto

type CreateHoldRequest struct {
	UnitID  int64    `json:"unit_id" validate:"required,min=1"`
	Date    string   `json:"date" validate:"required,datetime=2006-01-02" example:"2026-10-18"`
	SlotIDs []string `json:"slot_ids" validate:"required,min=1,max=48,unique,dive,required"`
}

type ConfirmHoldRequest struct {
	PaymentMode string `json:"payment_mode" validate:"required,oneof=full partial" example:"full"`
}

type PaymentSummaryRequest struct {
	PaymentMode string `query:"mode" validate:"omitempty,oneof=full partial"`
	Friends     int    `query:"friends" validate:"omitempty,min=0,max=30"`
}

type MyBookingsRequest struct {
	Filter string `query:"filter" validate:"omitempty,oneof=upcoming history"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type ShareInvoiceRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type HostMatchRequest struct {
	Sport            string `json:"sport" validate:"required,max=50" example:"Football"`
	PlayersNeeded    int    `json:"players_needed" validate:"required,min=1,max=30" example:"4"`
	GenderPreference string `json:"gender_preference" validate:"omitempty,oneof=any male female mixed"`
	SkillLevel       string `json:"skill_level" validate:"omitempty,oneof=any beginner intermediate advanced"`
	Description      string `json:"description" validate:"omitempty,max=500"`
}
