package templates

import (
	"fmt"
	"sort"
	"strings"

	"uavops-service/internal/domain/entity"
)

// RenderFlightSummary builds the printable plain-text form of a flight
// summary, section per grouping dimension.
func RenderFlightSummary(summary *entity.FlightSummary, generatedAt string) string {
	var b strings.Builder

	b.WriteString("UAV OPERATIONS - FLIGHT REPORT\n")
	if generatedAt != "" {
		b.WriteString(fmt.Sprintf("Generated: %s\n", generatedAt))
	}
	b.WriteString(fmt.Sprintf("\nTotal flights: %d\n", summary.TotalFlights))
	b.WriteString(fmt.Sprintf("Total airtime: %s\n", formatMinutes(summary.TotalDurationMinutes)))

	writeSection(&b, "By category", summary.ByCategory)
	writeSection(&b, "By activity", summary.ByActivityType)
	writeSection(&b, "By pilot", summary.ByUser)
	writeSection(&b, "By drone", summary.ByDrone)
	writeSection(&b, "By month", summary.ByMonth)

	return b.String()
}

// RenderDroneUsage builds the printable plain-text form of the per-drone
// usage view.
func RenderDroneUsage(usage []*entity.DroneUsage, generatedAt string) string {
	var b strings.Builder

	b.WriteString("UAV OPERATIONS - DRONE USAGE REPORT\n")
	if generatedAt != "" {
		b.WriteString(fmt.Sprintf("Generated: %s\n", generatedAt))
	}
	b.WriteString("\n")

	for _, u := range usage {
		name := u.DroneName
		if name == "" {
			name = u.DroneID
		}
		b.WriteString(fmt.Sprintf("%s\n", name))
		b.WriteString(fmt.Sprintf("  Flights: %d\n", u.Flights))
		b.WriteString(fmt.Sprintf("  Airtime: %s\n", formatMinutes(u.DurationMinutes)))
		if u.LastFlight != nil {
			b.WriteString(fmt.Sprintf("  Last flight: %s\n", u.LastFlight.Format("2006-01-02")))
		} else {
			b.WriteString("  Last flight: never\n")
		}
	}

	return b.String()
}

func writeSection(b *strings.Builder, title string, totals map[string]entity.GroupTotal) {
	if len(totals) == 0 {
		return
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	b.WriteString(fmt.Sprintf("\n%s:\n", title))
	for _, key := range keys {
		t := totals[key]
		b.WriteString(fmt.Sprintf("  %-24s %3d flights  %s\n", key, t.Flights, formatMinutes(t.DurationMinutes)))
	}
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
