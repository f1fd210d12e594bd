package http

import (
	"errors"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gofiber/fiber/v2"
	"github.com/paulmach/orb/geojson"

	"github.com/saferoute/backend/internal/domain"
	"github.com/saferoute/backend/internal/service"
	"github.com/saferoute/backend/pkg/utils"
)

const invalidRouteParams = "Invalid route calculation parameters"

// Handler contains all HTTP handlers
type Handler struct {
	routeSvc *service.RouteService
	repo     service.DataRepository
	logger   log.Logger
}

// NewHandler creates a new handler
func NewHandler(routeSvc *service.RouteService, repo service.DataRepository, logger log.Logger) *Handler {
	return &Handler{
		routeSvc: routeSvc,
		repo:     repo,
		logger:   log.With(logger, "component", "http"),
	}
}

// calculateRouteBody uses pointers so missing fields can be told apart from zero
type calculateRouteBody struct {
	SourceLat *float64 `json:"sourceLat"`
	SourceLng *float64 `json:"sourceLng"`
	DestLat   *float64 `json:"destLat"`
	DestLng   *float64 `json:"destLng"`
}

func (b calculateRouteBody) toRequest() (domain.RouteRequest, bool) {
	if b.SourceLat == nil || b.SourceLng == nil || b.DestLat == nil || b.DestLng == nil {
		return domain.RouteRequest{}, false
	}
	req := domain.RouteRequest{
		SourceLat: *b.SourceLat,
		SourceLng: *b.SourceLng,
		DestLat:   *b.DestLat,
		DestLng:   *b.DestLng,
	}
	return req, req.Validate() == nil
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	storage := "ok"
	if err := h.repo.Health(c.Context()); err != nil {
		level.Warn(h.logger).Log("msg", "storage health check failed", "err", err)
		storage = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "saferoute-backend",
		"version": "1.0.0",
		"storage": storage,
	})
}

// GetIncidents returns all crime hotspots
func (h *Handler) GetIncidents(c *fiber.Ctx) error {
	incidents, err := h.repo.ListIncidents(c.Context())
	if err != nil {
		level.Error(h.logger).Log("msg", "list incidents", "err", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch crime hotspots")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    incidents,
		"count":   len(incidents),
	})
}

// GetIncidentsByRegion returns crime hotspots within a radius of a point
func (h *Handler) GetIncidentsByRegion(c *fiber.Ctx) error {
	lat, lng, radius, err := parseRegion(c)
	if err != nil {
		return err
	}

	incidents, err := h.routeSvc.IncidentsNear(c.Context(), lat, lng, radius)
	if err != nil {
		level.Error(h.logger).Log("msg", "incidents by region", "err", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch crime hotspots by region")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    incidents,
		"count":   len(incidents),
	})
}

// GetFacilities returns all safe locations
func (h *Handler) GetFacilities(c *fiber.Ctx) error {
	facilities, err := h.repo.ListFacilities(c.Context())
	if err != nil {
		level.Error(h.logger).Log("msg", "list facilities", "err", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch safe locations")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    facilities,
		"count":   len(facilities),
	})
}

// GetFacilitiesByRegion returns safe locations within a radius of a point
func (h *Handler) GetFacilitiesByRegion(c *fiber.Ctx) error {
	lat, lng, radius, err := parseRegion(c)
	if err != nil {
		return err
	}

	facilities, err := h.routeSvc.FacilitiesNear(c.Context(), lat, lng, radius)
	if err != nil {
		level.Error(h.logger).Log("msg", "facilities by region", "err", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch safe locations by region")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    facilities,
		"count":   len(facilities),
	})
}

// CalculateRoutes returns three candidate routes ranked by safety score
func (h *Handler) CalculateRoutes(c *fiber.Ctx) error {
	routes, err := h.calculate(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    routes,
	})
}

// CalculateRoutesGeoJSON returns the ranked candidates as a GeoJSON
// FeatureCollection of LineStrings ready for a map layer
func (h *Handler) CalculateRoutesGeoJSON(c *fiber.Ctx) error {
	routes, err := h.calculate(c)
	if err != nil {
		return err
	}

	body, err := routesFeatureCollection(routes).MarshalJSON()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to encode routes")
	}

	c.Set(fiber.HeaderContentType, "application/geo+json")
	return c.Send(body)
}

func (h *Handler) calculate(c *fiber.Ctx) ([]domain.RouteCandidate, error) {
	var body calculateRouteBody
	if err := c.BodyParser(&body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, invalidRouteParams)
	}
	req, ok := body.toRequest()
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, invalidRouteParams)
	}

	routes, err := h.routeSvc.CalculateRoutes(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCoordinate) {
			return nil, fiber.NewError(fiber.StatusBadRequest, invalidRouteParams)
		}
		level.Error(h.logger).Log("msg", "calculate routes", "err", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to calculate safe routes")
	}

	return routes, nil
}

// GetRoutes returns all saved routes
func (h *Handler) GetRoutes(c *fiber.Ctx) error {
	routes, err := h.repo.ListRoutes(c.Context())
	if err != nil {
		level.Error(h.logger).Log("msg", "list routes", "err", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch routes")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    routes,
		"count":   len(routes),
	})
}

// SaveRoute stores a route picked by the user
func (h *Handler) SaveRoute(c *fiber.Ctx) error {
	var route domain.SavedRoute
	if err := c.BodyParser(&route); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := route.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid route")
	}

	saved, err := h.repo.SaveRoute(c.Context(), route)
	if err != nil {
		level.Error(h.logger).Log("msg", "save route", "err", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save route")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    saved,
	})
}

// parseRegion reads the lat, lng and radius query parameters
func parseRegion(c *fiber.Ctx) (lat, lng, radius float64, err error) {
	rawLat, rawLng, rawRadius := c.Query("lat"), c.Query("lng"), c.Query("radius")
	if rawLat == "" || rawLng == "" || rawRadius == "" {
		return 0, 0, 0, fiber.NewError(fiber.StatusBadRequest, "Missing required parameters: lat, lng, radius")
	}

	values := make([]float64, 0, 3)
	for _, raw := range []string{rawLat, rawLng, rawRadius} {
		v, perr := strconv.ParseFloat(raw, 64)
		if perr != nil || !utils.Finite(v) {
			return 0, 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid region parameters")
		}
		values = append(values, v)
	}

	return values[0], values[1], values[2], nil
}

// routesFeatureCollection converts candidates into GeoJSON features,
// keeping their ranked order
func routesFeatureCollection(routes []domain.RouteCandidate) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for rank, r := range routes {
		band := domain.BandForScore(r.SafetyScore)

		f := geojson.NewFeature(r.Polyline)
		f.ID = r.ID
		f.Properties["name"] = r.Label
		f.Properties["rank"] = rank + 1
		f.Properties["safetyScore"] = r.SafetyScore
		f.Properties["safetyBand"] = string(band)
		f.Properties["stroke"] = band.Color()
		f.Properties["distance"] = r.DistanceKm
		f.Properties["duration"] = r.DurationMinutes
		f.Properties["safeLocationsCount"] = r.NearbyFacilityCount
		f.Properties["crimeHotspotsCount"] = r.HighSeverityIncidentCount
		fc.Append(f)
	}
	return fc
}
