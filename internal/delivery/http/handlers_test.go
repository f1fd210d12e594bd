package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/gofiber/fiber/v2"
	"github.com/paulmach/orb/geojson"

	"github.com/saferoute/backend/internal/domain"
	"github.com/saferoute/backend/internal/repository/memory"
	"github.com/saferoute/backend/internal/service"
)

func newTestApp() *fiber.App {
	repo := memory.NewSeededRepository(memory.NewSequence(1))
	svc := service.NewRouteService(repo, service.RouteConfig{}, log.NewNopLogger())

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	SetupRoutes(app, svc, repo, log.NewNopLogger())
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, []byte, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, data, resp.Header.Get(fiber.HeaderContentType)
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Count   int    `json:"count"`
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func decode[T any](t *testing.T, data []byte) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decoding %s: %v", data, err)
	}
	return env
}

const delhiToMumbaiBody = `{"sourceLat": 28.6139, "sourceLng": 77.2090, "destLat": 19.0760, "destLng": 72.8777}`

func TestHealthCheck(t *testing.T) {
	status, body, _ := doRequest(t, newTestApp(), fiber.MethodGet, "/health", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(string(body), `"storage":"ok"`) {
		t.Errorf("unexpected body %s", body)
	}
}

func TestCalculateRoutes(t *testing.T) {
	status, body, _ := doRequest(t, newTestApp(), fiber.MethodPost, "/api/v1/routes/calculate", delhiToMumbaiBody)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	env := decode[[]domain.RouteCandidate](t, body)
	if !env.Success || len(env.Data) != 3 {
		t.Fatalf("expected 3 routes, got %+v", env)
	}

	// the seed data puts a medium and a high hotspot, two hospitals and
	// two police stations within 10 km of the endpoints
	want := []struct {
		name  string
		score int
	}{
		{"Main Roads Route", 85},
		{"Shopping District Route", 71},
		{"Residential Route", 58},
	}
	for i, w := range want {
		got := env.Data[i]
		if got.Label != w.name || got.SafetyScore != w.score {
			t.Errorf("position %d: expected %s/%d, got %s/%d", i, w.name, w.score, got.Label, got.SafetyScore)
		}
		if len(got.Polyline) < 2 {
			t.Errorf("%s: polyline too short", got.Label)
		}
	}

	first := env.Data[0].Polyline[0]
	if first.Lon() != 77.2090 || first.Lat() != 28.6139 {
		t.Errorf("polyline should start at (lng, lat) of the source, got %v", first)
	}
}

func TestCalculateRoutesInvalidInput(t *testing.T) {
	app := newTestApp()

	bodies := map[string]string{
		"missing field": `{"sourceLat": 28.6, "sourceLng": 77.2, "destLat": 19.0}`,
		"non-numeric":   `{"sourceLat": "north", "sourceLng": 77.2, "destLat": 19.0, "destLng": 72.8}`,
		"not json":      `sourceLat=28.6`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			status, data, _ := doRequest(t, app, fiber.MethodPost, "/api/v1/routes/calculate", body)
			if status != fiber.StatusBadRequest {
				t.Fatalf("expected 400, got %d", status)
			}
			env := decode[any](t, data)
			if !env.Error || env.Message != "Invalid route calculation parameters" {
				t.Errorf("unexpected error body %s", data)
			}
		})
	}
}

func TestCalculateRoutesGeoJSON(t *testing.T) {
	status, body, contentType := doRequest(t, newTestApp(), fiber.MethodPost, "/api/v1/routes/calculate/geojson", delhiToMumbaiBody)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	if contentType != "application/geo+json" {
		t.Errorf("expected geo+json content type, got %q", contentType)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		t.Fatalf("decoding feature collection: %v", err)
	}
	if len(fc.Features) != 3 {
		t.Fatalf("expected 3 features, got %d", len(fc.Features))
	}

	bands := []string{"safe", "moderate", "risky"}
	for i, f := range fc.Features {
		if f.Geometry.GeoJSONType() != "LineString" {
			t.Errorf("feature %d: expected LineString, got %s", i, f.Geometry.GeoJSONType())
		}
		if got := f.Properties.MustString("safetyBand", ""); got != bands[i] {
			t.Errorf("feature %d: expected band %s, got %s", i, bands[i], got)
		}
		if got := f.Properties.MustInt("rank", 0); got != i+1 {
			t.Errorf("feature %d: expected rank %d, got %d", i, i+1, got)
		}
	}
}

func TestRegionEndpoints(t *testing.T) {
	app := newTestApp()

	status, body, _ := doRequest(t, app, fiber.MethodGet, "/api/v1/crime-hotspots/region?lat=19.0760&lng=72.8777&radius=10", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	incidents := decode[[]domain.Incident](t, body)
	if incidents.Count != 1 || incidents.Data[0].Severity != domain.SeverityHigh {
		t.Errorf("expected the Dadar hotspot, got %+v", incidents.Data)
	}

	status, body, _ = doRequest(t, app, fiber.MethodGet, "/api/v1/safe-locations/region?lat=19.0760&lng=72.8777&radius=10", "")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if facilities := decode[[]domain.Facility](t, body); facilities.Count != 2 {
		t.Errorf("expected 2 facilities, got %d", facilities.Count)
	}
}

func TestRegionEndpointsBadParams(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		target  string
		message string
	}{
		{"/api/v1/crime-hotspots/region?lat=19.07&lng=72.87", "Missing required parameters: lat, lng, radius"},
		{"/api/v1/safe-locations/region?lat=abc&lng=72.87&radius=10", "Invalid region parameters"},
		{"/api/v1/safe-locations/region?lat=NaN&lng=72.87&radius=10", "Invalid region parameters"},
	}

	for _, tt := range tests {
		status, body, _ := doRequest(t, app, fiber.MethodGet, tt.target, "")
		if status != fiber.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tt.target, status)
			continue
		}
		if env := decode[any](t, body); env.Message != tt.message {
			t.Errorf("%s: expected %q, got %q", tt.target, tt.message, env.Message)
		}
	}
}

func TestListEndpoints(t *testing.T) {
	app := newTestApp()

	_, body, _ := doRequest(t, app, fiber.MethodGet, "/api/v1/crime-hotspots", "")
	if env := decode[[]domain.Incident](t, body); env.Count != 12 {
		t.Errorf("expected 12 hotspots, got %d", env.Count)
	}

	_, body, _ = doRequest(t, app, fiber.MethodGet, "/api/v1/safe-locations", "")
	if env := decode[[]domain.Facility](t, body); env.Count != 16 {
		t.Errorf("expected 16 safe locations, got %d", env.Count)
	}
}

func TestSaveAndListRoutes(t *testing.T) {
	app := newTestApp()

	route := `{
		"name": "Office commute",
		"sourceLatitude": 28.6315, "sourceLongitude": 77.2167,
		"destLatitude": 28.5355, "destLongitude": 77.3910,
		"safetyScore": 89, "distance": 20.09, "duration": 60,
		"coordinates": [[77.2167, 28.6315], [77.3039, 28.5835], [77.3910, 28.5355]]
	}`

	status, body, _ := doRequest(t, app, fiber.MethodPost, "/api/v1/routes", route)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", status, body)
	}
	saved := decode[domain.SavedRoute](t, body)
	if saved.Data.ID == 0 || len(saved.Data.Polyline) != 3 {
		t.Errorf("unexpected saved route %+v", saved.Data)
	}

	_, body, _ = doRequest(t, app, fiber.MethodGet, "/api/v1/routes", "")
	listed := decode[[]domain.SavedRoute](t, body)
	if listed.Count != 1 || listed.Data[0].Name != "Office commute" {
		t.Errorf("expected the saved route, got %+v", listed.Data)
	}
}

func TestSaveRouteInvalid(t *testing.T) {
	app := newTestApp()

	bodies := []string{
		`{"sourceLatitude": 1, "sourceLongitude": 1, "destLatitude": 2, "destLongitude": 2, "safetyScore": 50, "coordinates": [[1, 1], [2, 2]]}`,
		`{"name": "x", "safetyScore": 140, "coordinates": [[1, 1], [2, 2]]}`,
		`{"name": "x", "safetyScore": 50, "coordinates": [[1, 1]]}`,
	}
	for _, body := range bodies {
		if status, data, _ := doRequest(t, app, fiber.MethodPost, "/api/v1/routes", body); status != fiber.StatusBadRequest {
			t.Errorf("expected 400 for %s, got %d: %s", body, status, data)
		}
	}
}
