package dto

import (
	"time"

	"github.com/savioruz/turfics/pkg/gdto"
	"github.com/savioruz/turfics/pkg/turfapi"
)

type BlockResponse struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationMins int       `json:"duration_mins"`
	Price        float64   `json:"price"`
	SlotIDs      []string  `json:"slot_ids"`
}

type SubmitResponse struct {
	Mode       string          `json:"mode"`
	Message    string          `json:"message"`
	BookingIDs []int64         `json:"booking_ids"`
	TotalPrice float64         `json:"total_price"`
	Blocks     []BlockResponse `json:"blocks"`
}

type OwnerBookingsResponse struct {
	Bookings   []turfapi.OwnerBooking  `json:"bookings"`
	Pagination gdto.PaginationResponse `json:"pagination"`
}

type BookingTime struct {
	BookedHour int `json:"booked_hour"`
	PlayedHour int `json:"played_hour"`
	Bookings   int `json:"bookings"`
}

type AnalyticsResponse struct {
	Range             string                           `json:"range"`
	StartDate         string                           `json:"start_date,omitempty"`
	EndDate           string                           `json:"end_date,omitempty"`
	TotalRevenue      float64                          `json:"total_revenue"`
	AdvanceCollected  float64                          `json:"advance_collected"`
	PendingCollection float64                          `json:"pending_collection"`
	RevenueBreakdown  []turfapi.NamedValue             `json:"revenue_breakdown"`
	TotalBookings     int                              `json:"total_bookings"`
	BookingTimes      []BookingTime                    `json:"booking_times"`
	PeakPlayHour      *int                             `json:"peak_play_hour,omitempty"`
	UserRetention     []turfapi.NamedValue             `json:"user_retention"`
	TournamentStats   []turfapi.TournamentParticipants `json:"tournament_stats"`
	TopRegions        []turfapi.RegionCount            `json:"top_regions"`
	AvgPaymentTime    string                           `json:"avg_payment_time"`
}

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ImageResponse struct {
	URL string `json:"url"`
}
