package service

import (
	"github.com/saferoute/backend/internal/domain"
	"github.com/saferoute/backend/pkg/utils"
)

// SearchRadiusKm is the radius around each endpoint used when scoring routes
const SearchRadiusKm = 10.0

// WithinRadius returns the records whose great-circle distance from
// (lat, lng) is at most radiusKm, keeping their original order.
// Records or centers with non-finite coordinates never match.
func WithinRadius[T domain.Located](records []T, lat, lng, radiusKm float64) []T {
	nearby := make([]T, 0)
	if radiusKm <= 0 || !utils.Finite(lat, lng, radiusKm) {
		return nearby
	}

	for _, r := range records {
		rLat, rLng := r.Coordinates()
		if !utils.Finite(rLat, rLng) {
			continue
		}
		if utils.Haversine(lat, lng, rLat, rLng) <= radiusKm {
			nearby = append(nearby, r)
		}
	}

	return nearby
}

// nearBoth pools the records near a and near b. A record close to both
// endpoints appears twice.
func nearBoth[T domain.Located](records []T, aLat, aLng, bLat, bLng, radiusKm float64) []T {
	pooled := WithinRadius(records, aLat, aLng, radiusKm)
	return append(pooled, WithinRadius(records, bLat, bLng, radiusKm)...)
}
