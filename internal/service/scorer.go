package service

import (
	"github.com/saferoute/backend/internal/domain"
	"github.com/saferoute/backend/pkg/utils"
)

const baseSafetyScore = 85

func incidentPenalty(s domain.Severity) int {
	switch s {
	case domain.SeverityHigh:
		return 15
	case domain.SeverityMedium:
		return 8
	default:
		return 3
	}
}

func facilityBonus(k domain.FacilityKind) int {
	switch k {
	case domain.FacilityHospital:
		return 3
	case domain.FacilityPolice:
		return 5
	default:
		return 2
	}
}

// ScoreRoute computes the safety score of a style from the pooled nearby
// incidents and facilities. Always within [0, 100].
func ScoreRoute(style domain.RouteStyle, incidents []domain.Incident, facilities []domain.Facility) int {
	score := baseSafetyScore

	for _, inc := range incidents {
		score -= incidentPenalty(inc.Severity)
	}
	for _, f := range facilities {
		score += facilityBonus(f.Kind)
	}
	score += styleProfiles[style].scoreModifier

	return utils.Clamp(score, domain.MinSafetyScore, domain.MaxSafetyScore)
}

// countEmergencyFacilities counts hospitals and police stations
func countEmergencyFacilities(facilities []domain.Facility) int {
	n := 0
	for _, f := range facilities {
		if f.Kind.IsEmergency() {
			n++
		}
	}
	return n
}

// countSeverities counts incidents whose severity is one of wanted
func countSeverities(incidents []domain.Incident, wanted []domain.Severity) int {
	n := 0
	for _, inc := range incidents {
		for _, s := range wanted {
			if inc.Severity == s {
				n++
				break
			}
		}
	}
	return n
}
