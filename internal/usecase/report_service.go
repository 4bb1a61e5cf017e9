package usecase

import (
	"time"

	"uavops-service/internal/domain/entity"
)

// ReportService shapes already-fetched collections into summaries. It is
// stateless and performs no authorization: callers obtained the data through
// the service layer, so visibility was already applied.
type ReportService struct{}

// NewReportService creates a new report service
func NewReportService() *ReportService {
	return &ReportService{}
}

// SummarizeFlights filters the flights and aggregates counts and durations
// along the reporting axes. Soft-deleted flights are skipped, so an admin
// (whose listings include them) gets the same totals as everyone else.
// Flights with invalid or negative durations contribute zero minutes rather
// than failing the report.
func (s *ReportService) SummarizeFlights(flights []*entity.Flight, filter entity.FlightReportFilter) *entity.FlightSummary {
	summary := &entity.FlightSummary{
		ByCategory:     make(map[string]entity.GroupTotal),
		ByActivityType: make(map[string]entity.GroupTotal),
		ByUser:         make(map[string]entity.GroupTotal),
		ByDrone:        make(map[string]entity.GroupTotal),
		ByMonth:        make(map[string]entity.GroupTotal),
	}

	for _, flight := range flights {
		if flight.IsDeleted || !matchesFilter(flight, filter) {
			continue
		}

		minutes := FlightDurationMinutes(flight)
		summary.TotalFlights++
		summary.TotalDurationMinutes += minutes

		addTotal(summary.ByCategory, flight.Category, minutes)
		addTotal(summary.ByActivityType, flight.ActivityType, minutes)
		addTotal(summary.ByUser, flight.UserID, minutes)
		addTotal(summary.ByDrone, flight.DroneID, minutes)
		if date := flightDate(flight); date != nil {
			addTotal(summary.ByMonth, date.Format("2006-01"), minutes)
		}
	}

	return summary
}

// SummarizeDrones produces the per-drone usage view, including drones that
// never flew in the filtered window. Soft-deleted drones and flights are
// skipped like in SummarizeFlights.
func (s *ReportService) SummarizeDrones(flights []*entity.Flight, drones []*entity.Drone, filter entity.FlightReportFilter) []*entity.DroneUsage {
	usage := make([]*entity.DroneUsage, 0, len(drones))
	byID := make(map[string]*entity.DroneUsage, len(drones))
	for _, drone := range drones {
		if drone.IsDeleted {
			continue
		}
		u := &entity.DroneUsage{DroneID: drone.ID, DroneName: drone.Name}
		usage = append(usage, u)
		byID[drone.ID] = u
	}

	for _, flight := range flights {
		if flight.IsDeleted || !matchesFilter(flight, filter) {
			continue
		}
		u, ok := byID[flight.DroneID]
		if !ok {
			continue
		}

		u.Flights++
		u.DurationMinutes += FlightDurationMinutes(flight)
		if date := flightDate(flight); date != nil {
			if u.LastFlight == nil || date.After(*u.LastFlight) {
				u.LastFlight = date
			}
		}
	}

	return usage
}

// FlightDurationMinutes derives the flight duration from the recorded start
// and end. Two representations are accepted: full RFC 3339 datetimes, and
// the legacy clock-only "HH:mm" form assumed same-day, with an end before
// the start meaning the flight crossed midnight. Anything unparsable or
// negative counts as zero.
func FlightDurationMinutes(f *entity.Flight) int {
	if start, err := time.Parse(time.RFC3339, f.StartTime); err == nil {
		end, err := time.Parse(time.RFC3339, f.EndTime)
		if err != nil {
			return 0
		}
		minutes := int(end.Sub(start).Minutes())
		if minutes < 0 {
			return 0
		}
		return minutes
	}

	start, err := time.Parse("15:04", f.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", f.EndTime)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return int(end.Sub(start).Minutes())
}

func addTotal(totals map[string]entity.GroupTotal, key string, minutes int) {
	if key == "" {
		key = "unspecified"
	}
	t := totals[key]
	t.Flights++
	t.DurationMinutes += minutes
	totals[key] = t
}

// flightDate resolves the calendar date of a flight: the date field when
// present, otherwise the date part of a full start datetime.
func flightDate(f *entity.Flight) *time.Time {
	if f.Date != "" {
		if d, err := time.Parse("2006-01-02", f.Date); err == nil {
			return &d
		}
	}
	if d, err := time.Parse(time.RFC3339, f.StartTime); err == nil {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		return &day
	}
	return nil
}

func matchesFilter(f *entity.Flight, filter entity.FlightReportFilter) bool {
	if filter.UserID != "" && f.UserID != filter.UserID {
		return false
	}
	if filter.DroneID != "" && f.DroneID != filter.DroneID {
		return false
	}
	if filter.Category != "" && f.Category != filter.Category {
		return false
	}
	if filter.ActivityType != "" && f.ActivityType != filter.ActivityType {
		return false
	}
	if filter.From != nil || filter.To != nil {
		date := flightDate(f)
		if date == nil {
			return false
		}
		if filter.From != nil && date.Before(*filter.From) {
			return false
		}
		if filter.To != nil && date.After(*filter.To) {
			return false
		}
	}
	return true
}
