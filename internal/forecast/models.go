package forecast

import (
	"strconv"
	"time"
)

// NotInformed is the placeholder rendered for address fields the lookup
// service left blank.
const NotInformed = "não informado"

// Address holds the fields returned by the CEP lookup service.
// Neighborhood and Street are frequently absent for rural codes.
type Address struct {
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
}

// WithPlaceholders returns a copy of the address with empty optional fields
// replaced by the "not informed" placeholder, ready for display.
func (a Address) WithPlaceholders() Address {
	if a.Neighborhood == "" {
		a.Neighborhood = NotInformed
	}
	if a.Street == "" {
		a.Street = NotInformed
	}
	return a
}

// CityInfo is one entry of the city directory response. Latitude and
// Longitude come back as strings and may be empty; a CityInfo without both
// is not geolocatable.
type CityInfo struct {
	ID        int    `json:"id"`
	Name      string `json:"nome"`
	State     string `json:"estado"`
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}

// Coordinates parses the latitude/longitude pair. ok is false when either
// value is missing or not a number.
func (c CityInfo) Coordinates() (lat, lon float64, ok bool) {
	lat, errLat := strconv.ParseFloat(c.Latitude, 64)
	lon, errLon := strconv.ParseFloat(c.Longitude, 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// ForecastDay is a single day of the forecast horizon. Index 0 is today,
// index 1 tomorrow; tomorrow's entry feeds the reminder notification.
type ForecastDay struct {
	Date          string    `json:"date"`
	ConditionCode string    `json:"conditionCode"`
	Condition     Condition `json:"condition"`
	Description   string    `json:"description"`
	Glyph         string    `json:"glyph,omitempty"`
	Min           int       `json:"min"`
	Max           int       `json:"max"`
	UVIndex       float64   `json:"uvIndex,omitempty"`
}

// CachedLocation is the persisted snapshot of the last successfully resolved
// city. Coordinates are validated before a snapshot is ever written.
type CachedLocation struct {
	CityID     int       `json:"cityId"`
	CityName   string    `json:"cityName"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	ResolvedAt time.Time `json:"resolvedAt"` // always UTC
}

// Result is the aggregate of one pipeline run.
type Result struct {
	CEP        string        `json:"cep"`
	Address    Address       `json:"address"`
	City       *CityInfo     `json:"city,omitempty"`
	Forecast   []ForecastDay `json:"forecast"`
	ResolvedAt time.Time     `json:"resolvedAt"`
}
