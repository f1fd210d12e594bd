package service

import (
	"math"
	"testing"

	"github.com/saferoute/backend/internal/domain"
	"github.com/saferoute/backend/internal/repository/seed"
	"github.com/saferoute/backend/pkg/utils"
)

// degreesForKm converts a distance along a meridian into degrees of latitude
func degreesForKm(km float64) float64 {
	return km / utils.EarthRadiusKm * 180 / math.Pi
}

func TestWithinRadiusEmptyInput(t *testing.T) {
	got := WithinRadius([]domain.Incident{}, 28.6, 77.2, 10)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestWithinRadiusNonPositiveRadius(t *testing.T) {
	records := []domain.Incident{{ID: 1, Latitude: 28.6, Longitude: 77.2}}
	for _, radius := range []float64{0, -5} {
		if got := WithinRadius(records, 28.6, 77.2, radius); len(got) != 0 {
			t.Errorf("radius %v: expected no records, got %d", radius, len(got))
		}
	}
}

func TestWithinRadiusPreservesOrder(t *testing.T) {
	records := []domain.Facility{
		{ID: 3, Latitude: 0, Longitude: degreesForKm(3)},
		{ID: 1, Latitude: 0, Longitude: degreesForKm(50)},
		{ID: 7, Latitude: degreesForKm(1), Longitude: 0},
		{ID: 2, Latitude: 0, Longitude: 0},
	}

	got := WithinRadius(records, 0, 0, 10)
	want := []int64{3, 7, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: expected id %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestWithinRadiusBoundaryInclusive(t *testing.T) {
	onEdge := domain.Incident{ID: 1, Latitude: degreesForKm(10), Longitude: 0}
	exact := utils.Haversine(0, 0, onEdge.Latitude, onEdge.Longitude)

	if got := WithinRadius([]domain.Incident{onEdge}, 0, 0, exact); len(got) != 1 {
		t.Errorf("record at exactly the radius should be included")
	}
	if got := WithinRadius([]domain.Incident{onEdge}, 0, 0, math.Nextafter(exact, 0)); len(got) != 0 {
		t.Errorf("record just beyond the radius should be excluded")
	}

	beyond := domain.Incident{ID: 2, Latitude: degreesForKm(10.0000001), Longitude: 0}
	if got := WithinRadius([]domain.Incident{beyond}, 0, 0, 10); len(got) != 0 {
		t.Errorf("record at 10.0000001 km should be excluded from a 10 km radius")
	}
}

func TestWithinRadiusSkipsNonFinite(t *testing.T) {
	records := []domain.Incident{
		{ID: 1, Latitude: math.NaN(), Longitude: 0},
		{ID: 2, Latitude: 0, Longitude: math.Inf(1)},
		{ID: 3, Latitude: 0, Longitude: 0},
	}

	got := WithinRadius(records, 0, 0, 10)
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("expected only the finite record, got %v", got)
	}

	if got := WithinRadius(records, math.NaN(), 0, 10); len(got) != 0 {
		t.Errorf("NaN center should match nothing, got %d", len(got))
	}
}

func TestWithinRadiusMonotonic(t *testing.T) {
	facilities := seed.Facilities()
	for i := range facilities {
		facilities[i].ID = int64(i + 1)
	}

	centers := [][2]float64{
		{28.6139, 77.2090},
		{19.0760, 72.8777},
		{15.0, 78.0},
	}
	radii := []float64{1, 5, 10, 50, 500, 2000, 5000}

	for _, c := range centers {
		prev := map[int64]bool{}
		for _, r := range radii {
			cur := map[int64]bool{}
			for _, f := range WithinRadius(facilities, c[0], c[1], r) {
				cur[f.ID] = true
			}
			for id := range prev {
				if !cur[id] {
					t.Errorf("center %v: record %d dropped when radius grew to %v", c, id, r)
				}
			}
			prev = cur
		}
	}
}

func TestNearBothDoesNotDeduplicate(t *testing.T) {
	records := []domain.Incident{{ID: 1, Latitude: 0, Longitude: 0}}

	got := nearBoth(records, 0, degreesForKm(1), 0, -degreesForKm(1), 10)
	if len(got) != 2 {
		t.Errorf("record near both endpoints should be pooled twice, got %d", len(got))
	}
}
