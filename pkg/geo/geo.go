// Package geo holds the distance maths and address formatting used by turf discovery.
package geo

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/savioruz/turfics/pkg/constant"
)

const DefaultTortuosity = 1.4

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180 && !(p.Lat == 0 && p.Lng == 0)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance in kilometers.
func Haversine(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return constant.EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// EstimateRoad scales the great-circle distance to approximate road distance.
func EstimateRoad(a, b Point, tortuosity float64) float64 {
	if tortuosity <= 0 {
		tortuosity = DefaultTortuosity
	}

	return Haversine(a, b) * tortuosity
}

// FormatDistance renders meters below one kilometer and kilometers otherwise.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0f m", km*constant.MetersPerKilometer)
	}

	return fmt.Sprintf("%.1f km", km)
}

// Ranked is anything that can be ordered by distance.
type Ranked interface {
	DistanceKm() float64
}

// SortByDistance orders items ascending, keeping input order on ties.
func SortByDistance[T Ranked](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DistanceKm() < items[j].DistanceKm()
	})
}

var cityCenters = map[string]Point{
	"coimbatore": {Lat: 11.0168, Lng: 76.9558},
	"mumbai":     {Lat: 19.0760, Lng: 72.8777},
	"bangalore":  {Lat: 12.9716, Lng: 77.5946},
	"chennai":    {Lat: 13.0827, Lng: 80.2707},
}

// CityCenter returns the configured center of a supported city.
func CityCenter(city string) (Point, bool) {
	p, ok := cityCenters[strings.ToLower(strings.TrimSpace(city))]

	return p, ok
}

func Cities() []string {
	return []string{"Bangalore", "Chennai", "Coimbatore", "Mumbai"}
}

// ParseSports accepts the sports field as either a comma separated string or a list.
func ParseSports(v any) []string {
	var out []string

	switch s := v.(type) {
	case string:
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	case []string:
		for _, p := range s {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	case []any:
		for _, p := range s {
			if str, ok := p.(string); ok && strings.TrimSpace(str) != "" {
				out = append(out, strings.TrimSpace(str))
			}
		}
	}

	return out
}
