package service

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/saferoute/backend/internal/domain"
	"github.com/saferoute/backend/pkg/utils"
)

// waypoint is an interior point expressed as fractions of the
// longitude and latitude deltas between source and destination
type waypoint struct {
	lng, lat float64
}

// styleProfile holds everything that varies between route styles
type styleProfile struct {
	waypoints      []waypoint
	distanceFactor float64
	minutesPerKm   float64
	scoreModifier  int
	facilityOffset int
	hazards        []domain.Severity
}

var styleProfiles = map[domain.RouteStyle]styleProfile{
	// Near-straight line
	domain.StyleMain: {
		waypoints:      []waypoint{{0.25, 0.25}, {0.50, 0.50}, {0.75, 0.75}},
		distanceFactor: 1.0,
		minutesPerKm:   3.0,
		scoreModifier:  7,
		facilityOffset: 0,
		hazards:        []domain.Severity{domain.SeverityHigh},
	},
	// Mild detour
	domain.StyleShopping: {
		waypoints:      []waypoint{{0.15, 0.35}, {0.40, 0.45}, {0.65, 0.60}, {0.85, 0.85}},
		distanceFactor: 1.1,
		minutesPerKm:   2.8,
		scoreModifier:  -7,
		facilityOffset: -1,
		hazards:        []domain.Severity{domain.SeverityMedium},
	},
	// Longer detour, converges late
	domain.StyleResidential: {
		waypoints:      []waypoint{{0.30, 0.10}, {0.45, 0.40}, {0.60, 0.55}, {0.80, 0.70}, {0.95, 0.90}},
		distanceFactor: 1.25,
		minutesPerKm:   3.2,
		scoreModifier:  -20,
		facilityOffset: -2,
		hazards:        []domain.Severity{domain.SeverityHigh, domain.SeverityMedium},
	},
}

// SynthesizePolyline builds the display path for a style as (lng, lat)
// points running from source to destination. Coincident endpoints give a
// polyline of identical points.
func SynthesizePolyline(style domain.RouteStyle, req domain.RouteRequest) orb.LineString {
	profile := styleProfiles[style]

	line := make(orb.LineString, 0, len(profile.waypoints)+2)
	line = append(line, orb.Point{req.SourceLng, req.SourceLat})
	for _, wp := range profile.waypoints {
		line = append(line, orb.Point{
			utils.Lerp(req.SourceLng, req.DestLng, wp.lng),
			utils.Lerp(req.SourceLat, req.DestLat, wp.lat),
		})
	}
	line = append(line, orb.Point{req.DestLng, req.DestLat})

	return line
}

// EstimateTrip returns the distance in km and duration in minutes for a
// style. The distance scales the direct great-circle distance and ignores
// the synthesized polyline.
func EstimateTrip(style domain.RouteStyle, req domain.RouteRequest) (float64, int) {
	profile := styleProfiles[style]

	base := utils.Haversine(req.SourceLat, req.SourceLng, req.DestLat, req.DestLng)
	distance := base * profile.distanceFactor
	duration := int(math.Round(distance * profile.minutesPerKm))

	return distance, duration
}
