package domain

// FacilityKind classifies a safe location. Kinds other than hospital and
// police are accepted and score as "other".
type FacilityKind string

const (
	FacilityHospital    FacilityKind = "hospital"
	FacilityPolice      FacilityKind = "police"
	FacilityFireStation FacilityKind = "fire_station"
	FacilityMall        FacilityKind = "mall"
	FacilitySchool      FacilityKind = "school"
)

// IsEmergency is true for hospitals and police stations
func (k FacilityKind) IsEmergency() bool {
	return k == FacilityHospital || k == FacilityPolice
}

// Facility represents a safe point of interest such as a hospital or police station
type Facility struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Kind      FacilityKind `json:"type"`
	Address   string       `json:"address,omitempty"`
	City      string       `json:"city"`
	State     string       `json:"state"`
	Active    bool         `json:"isActive"`
}

// Coordinates implements Located
func (f Facility) Coordinates() (lat, lng float64) {
	return f.Latitude, f.Longitude
}
