package dto

import (
	"time"

	"github.com/savioruz/turfics/pkg/gdto"
	"github.com/savioruz/turfics/pkg/hold"
	"github.com/savioruz/turfics/pkg/turfapi"
)

type BlockResponse struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationMins int       `json:"duration_mins"`
	Price        float64   `json:"price"`
	SlotIDs      []string  `json:"slot_ids"`
}

type HoldResponse struct {
	hold.Snapshot
	Blocks []BlockResponse `json:"blocks,omitempty"`
}

type PaymentSummaryResponse struct {
	PaymentMode string  `json:"payment_mode"`
	Total       float64 `json:"total"`
	PayNow      float64 `json:"pay_now"`
	Balance     float64 `json:"balance"`
	Friends     int     `json:"friends"`
	PerPerson   float64 `json:"per_person"`
}

type BookingsResponse struct {
	Bookings   []turfapi.Booking       `json:"bookings"`
	Pagination gdto.PaginationResponse `json:"pagination"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ShareInvoiceResponse struct {
	InvoiceURL string `json:"invoice_url"`
	SentTo     string `json:"sent_to"`
}

type HostMatchResponse struct {
	MatchID int64  `json:"match_id"`
	Message string `json:"message"`
}
