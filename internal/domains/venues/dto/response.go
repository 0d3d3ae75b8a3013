package dto

import (
	"math"

	"github.com/savioruz/turfics/pkg/geo"
	"github.com/savioruz/turfics/pkg/turfapi"
)

const (
	ModeCity     = "city"
	ModeLocation = "location"
)

type Venue struct {
	turfapi.Turf
	Km        *float64 `json:"distance_km,omitempty"`
	Distance  string   `json:"distance,omitempty"`
	Estimated bool     `json:"estimated"`
}

// DistanceKm orders venues without coordinates last.
func (v Venue) DistanceKm() float64 {
	if v.Km == nil {
		return math.Inf(1)
	}

	return *v.Km
}

// SetDistance records km and whether it is an estimate.
func (v *Venue) SetDistance(km float64, estimated bool) {
	v.Km = &km
	v.Distance = geo.FormatDistance(km)
	v.Estimated = estimated
}

type DiscoverResponse struct {
	Mode    string     `json:"mode"`
	City    string     `json:"city,omitempty"`
	Origin  *geo.Point `json:"origin,omitempty"`
	Refined bool       `json:"refined"`
	Venues  []Venue    `json:"venues"`
}

type SlotsResponse struct {
	UnitID int64          `json:"unit_id"`
	Date   string         `json:"date"`
	Slots  []turfapi.Slot `json:"slots"`
}

type PlaceResponse struct {
	DisplayName string `json:"display_name"`
	Label       string `json:"label"`
}

type CitiesResponse struct {
	Default string   `json:"default"`
	Cities  []string `json:"cities"`
}
