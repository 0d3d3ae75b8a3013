package dto

import "github.com/savioruz/turfics/pkg/geo"

// DiscoverRequest selects either city mode (City set) or location mode (Lat and Lng set).
type DiscoverRequest struct {
	Lat    *float64 `json:"lat" query:"lat" validate:"omitempty,latitude"`
	Lng    *float64 `json:"lng" query:"lng" validate:"omitempty,longitude"`
	City   string   `json:"city" query:"city" validate:"omitempty,max=50"`
	Search string   `json:"search" query:"search" validate:"omitempty,max=100"`
	Sport  string   `json:"sport" query:"sport" validate:"omitempty,max=50"`
	Refine bool     `json:"refine" query:"refine"`
}

// Origin returns the user location when one was given.
func (r DiscoverRequest) Origin() (geo.Point, bool) {
	if r.Lat == nil || r.Lng == nil {
		return geo.Point{}, false
	}

	p := geo.Point{Lat: *r.Lat, Lng: *r.Lng}

	return p, p.Valid()
}

type SlotsRequest struct {
	Date string `query:"date" validate:"required,datetime=2006-01-02" example:"2026-10-18"`
}

type ReverseGeocodeRequest struct {
	Lat float64 `query:"lat" validate:"required,latitude"`
	Lng float64 `query:"lng" validate:"required,longitude"`
}
