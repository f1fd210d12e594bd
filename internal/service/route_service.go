package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/saferoute/backend/internal/domain"
)

// RouteConfig tunes how candidates are reported
type RouteConfig struct {
	// UnifiedHazardCount counts only high-severity incidents for every
	// style instead of the per-style filters shown by the legacy UI
	UnifiedHazardCount bool
}

// RouteService ranks synthesized routes by their safety score
type RouteService struct {
	records RecordProvider
	cfg     RouteConfig
	logger  log.Logger
}

// NewRouteService creates a new route service
func NewRouteService(records RecordProvider, cfg RouteConfig, logger log.Logger) *RouteService {
	return &RouteService{
		records: records,
		cfg:     cfg,
		logger:  log.With(logger, "component", "route_service"),
	}
}

// CalculateRoutes returns the three route candidates between source and
// destination, safest first
func (s *RouteService) CalculateRoutes(ctx context.Context, req domain.RouteRequest) ([]domain.RouteCandidate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	incidents, facilities, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	nearbyIncidents := nearBoth(incidents, req.SourceLat, req.SourceLng, req.DestLat, req.DestLng, SearchRadiusKm)
	nearbyFacilities := nearBoth(facilities, req.SourceLat, req.SourceLng, req.DestLat, req.DestLng, SearchRadiusKm)

	candidates := RankRoutes(req, nearbyIncidents, nearbyFacilities, s.cfg)

	level.Debug(s.logger).Log(
		"msg", "routes calculated",
		"nearby_incidents", len(nearbyIncidents),
		"nearby_facilities", len(nearbyFacilities),
		"best", candidates[0].Label,
		"best_score", candidates[0].SafetyScore,
	)

	return candidates, nil
}

// IncidentsNear returns the incidents within radiusKm of a point
func (s *RouteService) IncidentsNear(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Incident, error) {
	incidents, err := s.records.ListIncidents(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list incidents: %w", err)
	}
	return WithinRadius(incidents, lat, lng, radiusKm), nil
}

// FacilitiesNear returns the facilities within radiusKm of a point
func (s *RouteService) FacilitiesNear(ctx context.Context, lat, lng, radiusKm float64) ([]domain.Facility, error) {
	facilities, err := s.records.ListFacilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list facilities: %w", err)
	}
	return WithinRadius(facilities, lat, lng, radiusKm), nil
}

// snapshot reads incidents and facilities concurrently
func (s *RouteService) snapshot(ctx context.Context) ([]domain.Incident, []domain.Facility, error) {
	var (
		incidents  []domain.Incident
		facilities []domain.Facility
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incidents, err = s.records.ListIncidents(gctx)
		if err != nil {
			return fmt.Errorf("service: failed to list incidents: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		facilities, err = s.records.ListFacilities(gctx)
		if err != nil {
			return fmt.Errorf("service: failed to list facilities: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		level.Error(s.logger).Log("msg", "record snapshot failed", "err", err)
		return nil, nil, err
	}

	return incidents, facilities, nil
}

// RankRoutes builds one candidate per style from the pooled nearby records
// and sorts them by safety score, highest first. Ties keep style order.
func RankRoutes(req domain.RouteRequest, incidents []domain.Incident, facilities []domain.Facility, cfg RouteConfig) []domain.RouteCandidate {
	emergency := countEmergencyFacilities(facilities)

	candidates := make([]domain.RouteCandidate, 0, len(domain.AllStyles))
	for i, style := range domain.AllStyles {
		profile := styleProfiles[style]
		distance, duration := EstimateTrip(style, req)

		hazards := profile.hazards
		if cfg.UnifiedHazardCount {
			hazards = []domain.Severity{domain.SeverityHigh}
		}

		candidates = append(candidates, domain.RouteCandidate{
			ID:                        i + 1,
			Style:                     style,
			Label:                     style.Label(),
			SafetyScore:               ScoreRoute(style, incidents, facilities),
			DistanceKm:                distance,
			DurationMinutes:           duration,
			Polyline:                  SynthesizePolyline(style, req),
			NearbyFacilityCount:       emergency + profile.facilityOffset,
			HighSeverityIncidentCount: countSeverities(incidents, hazards),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SafetyScore > candidates[j].SafetyScore
	})

	return candidates
}
