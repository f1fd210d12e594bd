package postgres

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"

	"github.com/saferoute/backend/internal/domain"
	"github.com/saferoute/backend/internal/repository/seed"
)

const schema = `
	CREATE TABLE IF NOT EXISTS crime_hotspots (
		id                 BIGSERIAL PRIMARY KEY,
		name               TEXT NOT NULL,
		latitude           DOUBLE PRECISION NOT NULL,
		longitude          DOUBLE PRECISION NOT NULL,
		severity           TEXT NOT NULL,
		crime_type         TEXT NOT NULL,
		city               TEXT NOT NULL,
		state              TEXT NOT NULL,
		reported_incidents INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS safe_locations (
		id        BIGSERIAL PRIMARY KEY,
		name      TEXT NOT NULL,
		latitude  DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		type      TEXT NOT NULL,
		address   TEXT,
		city      TEXT NOT NULL,
		state     TEXT NOT NULL,
		is_active BOOLEAN DEFAULT TRUE
	);

	CREATE TABLE IF NOT EXISTS routes (
		id               BIGSERIAL PRIMARY KEY,
		name             TEXT NOT NULL,
		source_latitude  DOUBLE PRECISION NOT NULL,
		source_longitude DOUBLE PRECISION NOT NULL,
		dest_latitude    DOUBLE PRECISION NOT NULL,
		dest_longitude   DOUBLE PRECISION NOT NULL,
		safety_score     INTEGER NOT NULL,
		distance         DOUBLE PRECISION NOT NULL,
		duration         INTEGER NOT NULL,
		coordinates      BYTEA NOT NULL
	);
`

// PostgresRepository implements domain.DataRepository
type PostgresRepository struct {
	pool   *pgxpool.Pool
	logger log.Logger
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool, logger log.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool:   pool,
		logger: log.With(logger, "component", "postgres"),
	}
}

// EnsureSchema creates the tables if they do not exist yet
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to create schema: %w", err)
	}
	return nil
}

// Seed loads the reference data set when the hotspot table is empty
func (r *PostgresRepository) Seed(ctx context.Context) error {
	var populated bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM crime_hotspots)`).Scan(&populated); err != nil {
		return fmt.Errorf("postgres: failed to check seed state: %w", err)
	}
	if populated {
		level.Info(r.logger).Log("msg", "database already initialized")
		return nil
	}

	incidents, facilities := seed.Incidents(), seed.Facilities()

	batch := &pgx.Batch{}
	for _, inc := range incidents {
		batch.Queue(`
			INSERT INTO crime_hotspots (
				name, latitude, longitude, severity, crime_type, city, state, reported_incidents
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			inc.Name, inc.Latitude, inc.Longitude, string(inc.Severity), inc.Category,
			inc.City, inc.State, inc.ReportedCount,
		)
	}
	for _, f := range facilities {
		batch.Queue(`
			INSERT INTO safe_locations (
				name, latitude, longitude, type, address, city, state, is_active
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			f.Name, f.Latitude, f.Longitude, string(f.Kind), f.Address,
			f.City, f.State, f.Active,
		)
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("postgres: failed to seed data: %w", err)
	}

	level.Info(r.logger).Log("msg", "database seeded", "incidents", len(incidents), "facilities", len(facilities))
	return nil
}

// ListIncidents retrieves all crime hotspots
func (r *PostgresRepository) ListIncidents(ctx context.Context) ([]domain.Incident, error) {
	query := `
		SELECT id, name, latitude, longitude, severity, crime_type,
			   city, state, COALESCE(reported_incidents, 0)
		FROM crime_hotspots
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query crime hotspots: %w", err)
	}
	defer rows.Close()

	results := []domain.Incident{}
	for rows.Next() {
		var inc domain.Incident
		err := rows.Scan(
			&inc.ID, &inc.Name, &inc.Latitude, &inc.Longitude, &inc.Severity, &inc.Category,
			&inc.City, &inc.State, &inc.ReportedCount,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan crime hotspot row: %w", err)
		}
		results = append(results, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read crime hotspots: %w", err)
	}

	return results, nil
}

// ListFacilities retrieves all safe locations
func (r *PostgresRepository) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	query := `
		SELECT id, name, latitude, longitude, type, COALESCE(address, ''),
			   city, state, COALESCE(is_active, TRUE)
		FROM safe_locations
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query safe locations: %w", err)
	}
	defer rows.Close()

	results := []domain.Facility{}
	for rows.Next() {
		var f domain.Facility
		err := rows.Scan(
			&f.ID, &f.Name, &f.Latitude, &f.Longitude, &f.Kind, &f.Address,
			&f.City, &f.State, &f.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan safe location row: %w", err)
		}
		results = append(results, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read safe locations: %w", err)
	}

	return results, nil
}

// SaveRoute persists a route; the ID comes from the table sequence
func (r *PostgresRepository) SaveRoute(ctx context.Context, route domain.SavedRoute) (domain.SavedRoute, error) {
	query := `
		INSERT INTO routes (
			name, source_latitude, source_longitude, dest_latitude, dest_longitude,
			safety_score, distance, duration, coordinates
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	coords, err := wkb.Marshal(route.Polyline)
	if err != nil {
		return domain.SavedRoute{}, fmt.Errorf("postgres: failed to encode route coordinates: %w", err)
	}

	err = r.pool.QueryRow(ctx, query,
		route.Name, route.SourceLat, route.SourceLng, route.DestLat, route.DestLng,
		route.SafetyScore, route.DistanceKm, route.DurationMinutes, coords,
	).Scan(&route.ID)
	if err != nil {
		return domain.SavedRoute{}, fmt.Errorf("postgres: failed to save route: %w", err)
	}

	return route, nil
}

// ListRoutes retrieves saved routes, oldest first
func (r *PostgresRepository) ListRoutes(ctx context.Context) ([]domain.SavedRoute, error) {
	query := `
		SELECT id, name, source_latitude, source_longitude, dest_latitude, dest_longitude,
			   safety_score, distance, duration, coordinates
		FROM routes
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query routes: %w", err)
	}
	defer rows.Close()

	results := []domain.SavedRoute{}
	for rows.Next() {
		var (
			route  domain.SavedRoute
			coords []byte
		)
		err := rows.Scan(
			&route.ID, &route.Name, &route.SourceLat, &route.SourceLng, &route.DestLat, &route.DestLng,
			&route.SafetyScore, &route.DistanceKm, &route.DurationMinutes, &coords,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan route row: %w", err)
		}

		route.Polyline, err = decodePolyline(coords)
		if err != nil {
			return nil, fmt.Errorf("postgres: route %d: %w", route.ID, err)
		}
		results = append(results, route)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: failed to read routes: %w", err)
	}

	return results, nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

func decodePolyline(data []byte) (orb.LineString, error) {
	geom, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode coordinates: %w", err)
	}

	line, ok := geom.(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("unexpected geometry %s in coordinates", geom.GeoJSONType())
	}
	return line, nil
}
