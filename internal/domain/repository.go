package domain

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCoordinate is returned for NaN or infinite coordinates
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidRoute is returned when a saved route is missing required fields
	ErrInvalidRoute = errors.New("invalid route")
)

// Located is anything with a latitude/longitude in degrees
type Located interface {
	Coordinates() (lat, lng float64)
}

// RecordProvider supplies the incident and facility sets the scorer reads.
// Implementations must be safe for concurrent use.
type RecordProvider interface {
	// ListIncidents returns every known crime hotspot
	ListIncidents(ctx context.Context) ([]Incident, error)

	// ListFacilities returns every known safe location
	ListFacilities(ctx context.Context) ([]Facility, error)
}

// RouteStore persists routes saved by users
type RouteStore interface {
	SaveRoute(ctx context.Context, route SavedRoute) (SavedRoute, error)
	ListRoutes(ctx context.Context) ([]SavedRoute, error)
}

// DataRepository defines the interface for data persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type DataRepository interface {
	RecordProvider
	RouteStore

	// Health checks storage connectivity
	Health(ctx context.Context) error
}

// IDGenerator hands out identifiers for newly stored records
type IDGenerator interface {
	NextID() int64
}
