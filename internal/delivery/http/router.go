package http

import (
	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"

	"github.com/saferoute/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, routeSvc *service.RouteService, repo service.DataRepository, logger log.Logger) {
	handler := NewHandler(routeSvc, repo, logger)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Points of interest
		api.Get("/crime-hotspots", handler.GetIncidents)
		api.Get("/crime-hotspots/region", handler.GetIncidentsByRegion)
		api.Get("/safe-locations", handler.GetFacilities)
		api.Get("/safe-locations/region", handler.GetFacilitiesByRegion)

		// Route ranking
		api.Post("/routes/calculate", handler.CalculateRoutes)
		api.Post("/routes/calculate/geojson", handler.CalculateRoutesGeoJSON)

		// Saved routes
		api.Get("/routes", handler.GetRoutes)
		api.Post("/routes", handler.SaveRoute)
	}
}

// ErrorHandler renders errors as {"error": true, "message": ...}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
