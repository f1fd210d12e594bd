// Package seed holds the reference data set of crime hotspots and safe
// locations for major Indian cities. IDs are left zero; stores assign them.
package seed

import "github.com/saferoute/backend/internal/domain"

var incidents = []domain.Incident{
	{Name: "Delhi - Connaught Place", Latitude: 28.6315, Longitude: 77.2167, Severity: domain.SeverityMedium, Category: "theft", City: "Delhi", State: "Delhi", ReportedCount: 45},
	{Name: "Mumbai - Dadar Station", Latitude: 19.0176, Longitude: 72.8562, Severity: domain.SeverityHigh, Category: "robbery", City: "Mumbai", State: "Maharashtra", ReportedCount: 62},
	{Name: "Bangalore - MG Road", Latitude: 12.9716, Longitude: 77.5946, Severity: domain.SeverityLow, Category: "harassment", City: "Bangalore", State: "Karnataka", ReportedCount: 23},
	{Name: "Chennai - T. Nagar", Latitude: 13.0827, Longitude: 80.2707, Severity: domain.SeverityMedium, Category: "theft", City: "Chennai", State: "Tamil Nadu", ReportedCount: 34},
	{Name: "Hyderabad - Banjara Hills", Latitude: 17.4065, Longitude: 78.4772, Severity: domain.SeverityLow, Category: "harassment", City: "Hyderabad", State: "Telangana", ReportedCount: 18},
	{Name: "Pune - FC Road", Latitude: 18.5204, Longitude: 73.8567, Severity: domain.SeverityMedium, Category: "theft", City: "Pune", State: "Maharashtra", ReportedCount: 29},
	{Name: "Kolkata - Park Street", Latitude: 22.5726, Longitude: 88.3639, Severity: domain.SeverityHigh, Category: "robbery", City: "Kolkata", State: "West Bengal", ReportedCount: 56},
	{Name: "Ahmedabad - Law Garden", Latitude: 23.0225, Longitude: 72.5714, Severity: domain.SeverityLow, Category: "harassment", City: "Ahmedabad", State: "Gujarat", ReportedCount: 21},
	{Name: "Jaipur - Pink City", Latitude: 26.9124, Longitude: 75.7873, Severity: domain.SeverityMedium, Category: "theft", City: "Jaipur", State: "Rajasthan", ReportedCount: 38},
	{Name: "Lucknow - Hazratganj", Latitude: 26.8467, Longitude: 80.9462, Severity: domain.SeverityHigh, Category: "robbery", City: "Lucknow", State: "Uttar Pradesh", ReportedCount: 48},
	{Name: "Gurgaon - Cyber City", Latitude: 28.4595, Longitude: 77.0266, Severity: domain.SeverityMedium, Category: "theft", City: "Gurgaon", State: "Haryana", ReportedCount: 31},
	{Name: "Noida - Sector 18", Latitude: 28.5355, Longitude: 77.3910, Severity: domain.SeverityLow, Category: "harassment", City: "Noida", State: "Uttar Pradesh", ReportedCount: 16},
}

var facilities = []domain.Facility{
	{Name: "AIIMS Delhi", Latitude: 28.5672, Longitude: 77.2100, Kind: domain.FacilityHospital, Address: "Ansari Nagar, New Delhi", City: "Delhi", State: "Delhi", Active: true},
	{Name: "Delhi Police Station - CP", Latitude: 28.6289, Longitude: 77.2065, Kind: domain.FacilityPolice, Address: "Connaught Place, New Delhi", City: "Delhi", State: "Delhi", Active: true},
	{Name: "Lilavati Hospital Mumbai", Latitude: 19.0596, Longitude: 72.8295, Kind: domain.FacilityHospital, Address: "Bandra West, Mumbai", City: "Mumbai", State: "Maharashtra", Active: true},
	{Name: "Mumbai Police Station - Dadar", Latitude: 19.0144, Longitude: 72.8479, Kind: domain.FacilityPolice, Address: "Dadar West, Mumbai", City: "Mumbai", State: "Maharashtra", Active: true},
	{Name: "Manipal Hospital Bangalore", Latitude: 12.9279, Longitude: 77.6271, Kind: domain.FacilityHospital, Address: "HAL Airport Road, Bangalore", City: "Bangalore", State: "Karnataka", Active: true},
	{Name: "Bangalore Police Station - MG Road", Latitude: 12.9698, Longitude: 77.5935, Kind: domain.FacilityPolice, Address: "MG Road, Bangalore", City: "Bangalore", State: "Karnataka", Active: true},
	{Name: "Apollo Hospital Chennai", Latitude: 13.0524, Longitude: 80.2511, Kind: domain.FacilityHospital, Address: "Greams Road, Chennai", City: "Chennai", State: "Tamil Nadu", Active: true},
	{Name: "Chennai Police Station - T. Nagar", Latitude: 13.0826, Longitude: 80.2341, Kind: domain.FacilityPolice, Address: "T. Nagar, Chennai", City: "Chennai", State: "Tamil Nadu", Active: true},
	{Name: "Apollo Hospital Hyderabad", Latitude: 17.4326, Longitude: 78.4071, Kind: domain.FacilityHospital, Address: "Jubilee Hills, Hyderabad", City: "Hyderabad", State: "Telangana", Active: true},
	{Name: "Hyderabad Police Station - Banjara Hills", Latitude: 17.4081, Longitude: 78.4691, Kind: domain.FacilityPolice, Address: "Banjara Hills, Hyderabad", City: "Hyderabad", State: "Telangana", Active: true},
	{Name: "Ruby Hall Clinic Pune", Latitude: 18.5018, Longitude: 73.8636, Kind: domain.FacilityHospital, Address: "Sassoon Road, Pune", City: "Pune", State: "Maharashtra", Active: true},
	{Name: "Pune Police Station - FC Road", Latitude: 18.5196, Longitude: 73.8553, Kind: domain.FacilityPolice, Address: "FC Road, Pune", City: "Pune", State: "Maharashtra", Active: true},
	{Name: "AMRI Hospital Kolkata", Latitude: 22.5448, Longitude: 88.3426, Kind: domain.FacilityHospital, Address: "Salt Lake, Kolkata", City: "Kolkata", State: "West Bengal", Active: true},
	{Name: "Kolkata Police Station - Park Street", Latitude: 22.5726, Longitude: 88.3639, Kind: domain.FacilityPolice, Address: "Park Street, Kolkata", City: "Kolkata", State: "West Bengal", Active: true},
	{Name: "Sterling Hospital Ahmedabad", Latitude: 23.0395, Longitude: 72.5066, Kind: domain.FacilityHospital, Address: "Gurukul Road, Ahmedabad", City: "Ahmedabad", State: "Gujarat", Active: true},
	{Name: "Ahmedabad Police Station - Law Garden", Latitude: 23.0215, Longitude: 72.5709, Kind: domain.FacilityPolice, Address: "Law Garden, Ahmedabad", City: "Ahmedabad", State: "Gujarat", Active: true},
}

// Incidents returns a fresh copy of the seed crime hotspots
func Incidents() []domain.Incident {
	return append([]domain.Incident(nil), incidents...)
}

// Facilities returns a fresh copy of the seed safe locations
func Facilities() []domain.Facility {
	return append([]domain.Facility(nil), facilities...)
}
