package usecase

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"uavops-service/internal/domain/entity"
)

// CSV export of report summaries. Column sets are stable: rows are emitted
// dimension by dimension with keys sorted, so repeated exports of the same
// data diff cleanly.

var summaryDimensions = []struct {
	name   string
	totals func(*entity.FlightSummary) map[string]entity.GroupTotal
}{
	{"category", func(s *entity.FlightSummary) map[string]entity.GroupTotal { return s.ByCategory }},
	{"activityType", func(s *entity.FlightSummary) map[string]entity.GroupTotal { return s.ByActivityType }},
	{"user", func(s *entity.FlightSummary) map[string]entity.GroupTotal { return s.ByUser }},
	{"drone", func(s *entity.FlightSummary) map[string]entity.GroupTotal { return s.ByDrone }},
	{"month", func(s *entity.FlightSummary) map[string]entity.GroupTotal { return s.ByMonth }},
}

// WriteFlightSummaryCSV serializes a flight summary as CSV.
func WriteFlightSummaryCSV(w io.Writer, summary *entity.FlightSummary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"dimension", "key", "flights", "durationMinutes"}); err != nil {
		return err
	}
	if err := cw.Write([]string{"total", "", strconv.Itoa(summary.TotalFlights), strconv.Itoa(summary.TotalDurationMinutes)}); err != nil {
		return err
	}

	for _, dim := range summaryDimensions {
		totals := dim.totals(summary)
		for _, key := range sortedKeys(totals) {
			t := totals[key]
			if err := cw.Write([]string{dim.name, key, strconv.Itoa(t.Flights), strconv.Itoa(t.DurationMinutes)}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteDroneUsageCSV serializes the per-drone usage view as CSV.
func WriteDroneUsageCSV(w io.Writer, usage []*entity.DroneUsage) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"droneId", "droneName", "flights", "durationMinutes", "lastFlight"}); err != nil {
		return err
	}

	for _, u := range usage {
		lastFlight := ""
		if u.LastFlight != nil {
			lastFlight = u.LastFlight.Format("2006-01-02")
		}
		if err := cw.Write([]string{u.DroneID, u.DroneName, strconv.Itoa(u.Flights), strconv.Itoa(u.DurationMinutes), lastFlight}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func sortedKeys(totals map[string]entity.GroupTotal) []string {
	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
