package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/saferoute/backend/internal/domain"
	"github.com/saferoute/backend/internal/repository/seed"
)

// Sequence is an IDGenerator counting up from a start value
type Sequence struct {
	next atomic.Int64
}

// NewSequence creates a sequence whose first ID is start
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.next.Store(start)
	return s
}

// NextID implements domain.IDGenerator
func (s *Sequence) NextID() int64 {
	return s.next.Add(1) - 1
}

// Repository implements domain.DataRepository in process memory, used when
// no database is configured and in tests
type Repository struct {
	ids domain.IDGenerator

	mu         sync.RWMutex
	incidents  []domain.Incident
	facilities []domain.Facility
	routes     []domain.SavedRoute
}

// NewRepository creates an empty in-memory repository
func NewRepository(ids domain.IDGenerator) *Repository {
	return &Repository{ids: ids}
}

// NewSeededRepository creates an in-memory repository holding the seed data set
func NewSeededRepository(ids domain.IDGenerator) *Repository {
	r := NewRepository(ids)
	for _, inc := range seed.Incidents() {
		r.AddIncident(inc)
	}
	for _, f := range seed.Facilities() {
		r.AddFacility(f)
	}
	return r
}

// AddIncident stores an incident under a fresh ID
func (r *Repository) AddIncident(inc domain.Incident) domain.Incident {
	inc.ID = r.ids.NextID()

	r.mu.Lock()
	r.incidents = append(r.incidents, inc)
	r.mu.Unlock()

	return inc
}

// AddFacility stores a facility under a fresh ID
func (r *Repository) AddFacility(f domain.Facility) domain.Facility {
	f.ID = r.ids.NextID()

	r.mu.Lock()
	r.facilities = append(r.facilities, f)
	r.mu.Unlock()

	return f
}

// ListIncidents returns a snapshot of all incidents
func (r *Repository) ListIncidents(ctx context.Context) ([]domain.Incident, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("memory: failed to list incidents: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Incident{}, r.incidents...), nil
}

// ListFacilities returns a snapshot of all facilities
func (r *Repository) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("memory: failed to list facilities: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Facility{}, r.facilities...), nil
}

// SaveRoute stores a route under a fresh ID
func (r *Repository) SaveRoute(ctx context.Context, route domain.SavedRoute) (domain.SavedRoute, error) {
	if err := ctx.Err(); err != nil {
		return domain.SavedRoute{}, fmt.Errorf("memory: failed to save route: %w", err)
	}

	route.ID = r.ids.NextID()
	route.Polyline = route.Polyline.Clone()

	r.mu.Lock()
	r.routes = append(r.routes, route)
	r.mu.Unlock()

	return route, nil
}

// ListRoutes returns saved routes in insertion order
func (r *Repository) ListRoutes(ctx context.Context) ([]domain.SavedRoute, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("memory: failed to list routes: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.SavedRoute{}, r.routes...), nil
}

// Health always returns nil in memory mode
func (r *Repository) Health(ctx context.Context) error {
	return nil
}
