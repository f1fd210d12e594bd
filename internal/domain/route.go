package domain

import (
	"math"

	"github.com/paulmach/orb"
)

// RouteStyle selects the geometric bias and score modifier of a candidate
type RouteStyle int

const (
	StyleMain RouteStyle = iota + 1
	StyleShopping
	StyleResidential
)

// AllStyles lists the styles in the order candidates are built
var AllStyles = []RouteStyle{StyleMain, StyleShopping, StyleResidential}

// Label returns the display name of the style
func (s RouteStyle) Label() string {
	switch s {
	case StyleMain:
		return "Main Roads Route"
	case StyleShopping:
		return "Shopping District Route"
	case StyleResidential:
		return "Residential Route"
	default:
		return "Unknown Route"
	}
}

func (s RouteStyle) String() string {
	switch s {
	case StyleMain:
		return "main"
	case StyleShopping:
		return "shopping"
	case StyleResidential:
		return "residential"
	default:
		return "unknown"
	}
}

// RouteRequest is the input of a route calculation
type RouteRequest struct {
	SourceLat float64 `json:"sourceLat"`
	SourceLng float64 `json:"sourceLng"`
	DestLat   float64 `json:"destLat"`
	DestLng   float64 `json:"destLng"`
}

// Validate rejects non-finite coordinates
func (r RouteRequest) Validate() error {
	for _, v := range []float64{r.SourceLat, r.SourceLng, r.DestLat, r.DestLng} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidCoordinate
		}
	}
	return nil
}

// RouteCandidate is a synthesized route proposal. Built per request, never persisted.
type RouteCandidate struct {
	ID                        int            `json:"id"`
	Style                     RouteStyle     `json:"-"`
	Label                     string         `json:"name"`
	SafetyScore               int            `json:"safetyScore"`
	DistanceKm                float64        `json:"distance"`
	DurationMinutes           int            `json:"duration"`
	Polyline                  orb.LineString `json:"coordinates"`
	NearbyFacilityCount       int            `json:"safeLocationsCount"`
	HighSeverityIncidentCount int            `json:"crimeHotspotsCount"`
}

// SavedRoute is a route the user chose to keep
type SavedRoute struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	SourceLat       float64        `json:"sourceLatitude"`
	SourceLng       float64        `json:"sourceLongitude"`
	DestLat         float64        `json:"destLatitude"`
	DestLng         float64        `json:"destLongitude"`
	SafetyScore     int            `json:"safetyScore"`
	DistanceKm      float64        `json:"distance"`
	DurationMinutes int            `json:"duration"`
	Polyline        orb.LineString `json:"coordinates"`
}

// Validate checks the fields a saved route must carry
func (r SavedRoute) Validate() error {
	if r.Name == "" {
		return ErrInvalidRoute
	}
	if r.SafetyScore < MinSafetyScore || r.SafetyScore > MaxSafetyScore {
		return ErrInvalidRoute
	}
	if r.DistanceKm < 0 || r.DurationMinutes < 0 {
		return ErrInvalidRoute
	}
	if len(r.Polyline) < 2 {
		return ErrInvalidRoute
	}
	if err := (RouteRequest{r.SourceLat, r.SourceLng, r.DestLat, r.DestLng}).Validate(); err != nil {
		return err
	}
	return nil
}

// Safety score bounds
const (
	MinSafetyScore = 0
	MaxSafetyScore = 100
)

// SafetyBand is the display bucket of a score
type SafetyBand string

const (
	BandSafe     SafetyBand = "safe"
	BandModerate SafetyBand = "moderate"
	BandRisky    SafetyBand = "risky"
)

// BandForScore maps a score onto its display band (>=85 safe, >=70 moderate)
func BandForScore(score int) SafetyBand {
	switch {
	case score >= 85:
		return BandSafe
	case score >= 70:
		return BandModerate
	default:
		return BandRisky
	}
}

// Color returns the marker color used for the band
func (b SafetyBand) Color() string {
	switch b {
	case BandSafe:
		return "#16a34a"
	case BandModerate:
		return "#d97706"
	default:
		return "#dc2626"
	}
}
