package domain

// Severity tiers reported for a crime hotspot
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid reports whether s is one of the known tiers
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Incident represents a geotagged crime hotspot
type Incident struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Severity      Severity `json:"severity"`
	Category      string   `json:"crimeType"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ReportedCount int      `json:"reportedIncidents"`
}

// Coordinates implements Located
func (i Incident) Coordinates() (lat, lng float64) {
	return i.Latitude, i.Longitude
}
