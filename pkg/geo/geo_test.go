package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type venue struct {
	name string
	km   float64
}

func (v venue) DistanceKm() float64 {
	return v.km
}

func names(vs []venue) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.name
	}

	return out
}

func TestHaversine(t *testing.T) {
	bangalore, _ := CityCenter("Bangalore")
	chennai, _ := CityCenter("chennai")

	d := Haversine(bangalore, chennai)
	assert.InDelta(t, 290, d, 5)
	assert.InDelta(t, d*1.4, EstimateRoad(bangalore, chennai, 1.4), 0.0001)
	assert.InDelta(t, d*DefaultTortuosity, EstimateRoad(bangalore, chennai, 0), 0.0001)
	assert.InDelta(t, 0, Haversine(bangalore, bangalore), 0.0000001)
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "500 m", FormatDistance(0.5))
	assert.Equal(t, "1.0 km", FormatDistance(1))
	assert.Equal(t, "7.2 km", FormatDistance(7.24))
}

func TestSortByDistance(t *testing.T) {
	venues := []venue{{"a", 3.1}, {"b", 0.5}, {"c", 7.2}}

	SortByDistance(venues)
	assert.Equal(t, []string{"b", "a", "c"}, names(venues))

	venues[1].km = 9.0
	SortByDistance(venues)
	assert.Equal(t, []string{"b", "c", "a"}, names(venues))

	ties := []venue{{"x", 1}, {"y", 1}, {"z", 0.2}, {"w", 1}}
	SortByDistance(ties)
	assert.Equal(t, []string{"z", "x", "y", "w"}, names(ties))
}

func TestCityCenter(t *testing.T) {
	p, ok := CityCenter(" Mumbai ")
	require.True(t, ok)
	assert.InDelta(t, 19.0760, p.Lat, 0.00001)

	_, ok = CityCenter("Atlantis")
	assert.False(t, ok)
}

func TestParseSports(t *testing.T) {
	assert.Equal(t, []string{"Football", "Cricket"}, ParseSports("Football, Cricket"))
	assert.Equal(t, []string{"Tennis"}, ParseSports([]any{"Tennis", 3, " "}))
	assert.Equal(t, []string{"Padel"}, ParseSports([]string{"Padel"}))
	assert.Nil(t, ParseSports(nil))
}

func TestSmartAddress(t *testing.T) {
	cases := map[string]string{
		"12th Main, Koramangala, Bengaluru Urban, Bengaluru, Karnataka, 560034, India": "Koramangala, Bengaluru",
		"Anna Nagar, Chennai, Tamil Nadu, 600 040, India":                             "Anna Nagar, Chennai",
		"Some Road, Springfield, Oregon":                                              "Springfield, Oregon",
		"Mumbai, Maharashtra, India":                                                  "Mumbai",
		"":                                                                            "",
	}

	for in, want := range cases {
		assert.Equal(t, want, SmartAddress(in), in)
	}
}

func TestPointValid(t *testing.T) {
	assert.True(t, Point{Lat: 12.97, Lng: 77.59}.Valid())
	assert.False(t, Point{}.Valid())
	assert.False(t, Point{Lat: 91, Lng: 0}.Valid())
}
