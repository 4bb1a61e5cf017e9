package templates

import (
	"testing"
	"time"

	"uavops-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRenderFlightSummary(t *testing.T) {
	summary := &entity.FlightSummary{
		TotalFlights:         3,
		TotalDurationMinutes: 135,
		ByCategory: map[string]entity.GroupTotal{
			"commercial": {Flights: 2, DurationMinutes: 105},
			"training":   {Flights: 1, DurationMinutes: 30},
		},
		ByMonth: map[string]entity.GroupTotal{
			"2026-07": {Flights: 2, DurationMinutes: 105},
		},
	}

	out := RenderFlightSummary(summary, "2026-08-29 12:00")

	assert.Contains(t, out, "UAV OPERATIONS - FLIGHT REPORT")
	assert.Contains(t, out, "Generated: 2026-08-29 12:00")
	assert.Contains(t, out, "Total flights: 3")
	assert.Contains(t, out, "Total airtime: 2h 15m")
	assert.Contains(t, out, "By category:")
	assert.Contains(t, out, "commercial")
	assert.Contains(t, out, "By month:")
	assert.NotContains(t, out, "By pilot:", "empty sections are omitted")
}

func TestRenderDroneUsage(t *testing.T) {
	last := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	usage := []*entity.DroneUsage{
		{DroneID: "d-1", DroneName: "Mavic", Flights: 2, DurationMinutes: 105, LastFlight: &last},
		{DroneID: "d-3"},
	}

	out := RenderDroneUsage(usage, "")

	assert.Contains(t, out, "Mavic\n")
	assert.Contains(t, out, "Last flight: 2026-08-05")
	assert.Contains(t, out, "d-3\n", "unnamed drones fall back to the id")
	assert.Contains(t, out, "Last flight: never")
	assert.NotContains(t, out, "Generated:")
}
