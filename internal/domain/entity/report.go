package entity

import "time"

// FlightReportFilter narrows which flights enter a summary. Zero values mean
// no restriction on that dimension.
type FlightReportFilter struct {
	From         *time.Time
	To           *time.Time
	UserID       string
	DroneID      string
	Category     string
	ActivityType string
}

// GroupTotal is a count plus summed duration for one grouping bucket.
type GroupTotal struct {
	Flights         int `json:"flights"`
	DurationMinutes int `json:"durationMinutes"`
}

// FlightSummary aggregates a flight collection along the reporting axes.
type FlightSummary struct {
	TotalFlights         int                   `json:"totalFlights"`
	TotalDurationMinutes int                   `json:"totalDurationMinutes"`
	ByCategory           map[string]GroupTotal `json:"byCategory"`
	ByActivityType       map[string]GroupTotal `json:"byActivityType"`
	ByUser               map[string]GroupTotal `json:"byUser"`
	ByDrone              map[string]GroupTotal `json:"byDrone"`
	ByMonth              map[string]GroupTotal `json:"byMonth"` // keyed YYYY-MM
}

// DroneUsage is the per-drone view of the same aggregation, with the date of
// the most recent flight.
type DroneUsage struct {
	DroneID         string     `json:"droneId"`
	DroneName       string     `json:"droneName"`
	Flights         int        `json:"flights"`
	DurationMinutes int        `json:"durationMinutes"`
	LastFlight      *time.Time `json:"lastFlight,omitempty"`
}
