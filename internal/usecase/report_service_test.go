package usecase

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"uavops-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightDurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"rfc3339 two hours", "2026-08-01T10:00:00Z", "2026-08-01T12:00:00Z", 120},
		{"rfc3339 with offsets", "2026-08-01T10:00:00+02:00", "2026-08-01T09:30:00+01:00", 30},
		{"rfc3339 end before start", "2026-08-01T12:00:00Z", "2026-08-01T10:00:00Z", 0},
		{"rfc3339 start with clock end", "2026-08-01T10:00:00Z", "11:00", 0},
		{"clock only same day", "10:15", "11:45", 90},
		{"clock only across midnight", "23:30", "00:15", 45},
		{"empty times", "", "", 0},
		{"garbage", "soon", "later", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &entity.Flight{FlightFields: entity.FlightFields{StartTime: tt.start, EndTime: tt.end}}
			assert.Equal(t, tt.want, FlightDurationMinutes(f))
		})
	}
}

func testFlights() []*entity.Flight {
	return []*entity.Flight{
		{FlightFields: entity.FlightFields{
			UserID: "u-1", DroneID: "d-1", Date: "2026-07-10",
			Category: "commercial", ActivityType: "mapping",
			StartTime: "10:00", EndTime: "11:00",
		}},
		{FlightFields: entity.FlightFields{
			UserID: "u-1", DroneID: "d-2", Date: "2026-07-20",
			Category: "training", ActivityType: "mapping",
			StartTime: "2026-07-20T09:00:00Z", EndTime: "2026-07-20T09:30:00Z",
		}},
		{FlightFields: entity.FlightFields{
			UserID: "u-2", DroneID: "d-1", Date: "2026-08-05",
			Category: "commercial",
			StartTime: "23:30", EndTime: "00:15",
		}},
	}
}

func TestSummarizeFlights(t *testing.T) {
	svc := NewReportService()

	t.Run("unfiltered totals and groupings", func(t *testing.T) {
		summary := svc.SummarizeFlights(testFlights(), entity.FlightReportFilter{})

		assert.Equal(t, 3, summary.TotalFlights)
		assert.Equal(t, 60+30+45, summary.TotalDurationMinutes)

		assert.Equal(t, entity.GroupTotal{Flights: 2, DurationMinutes: 105}, summary.ByCategory["commercial"])
		assert.Equal(t, entity.GroupTotal{Flights: 1, DurationMinutes: 30}, summary.ByCategory["training"])
		assert.Equal(t, entity.GroupTotal{Flights: 2, DurationMinutes: 90}, summary.ByActivityType["mapping"])
		assert.Equal(t, entity.GroupTotal{Flights: 1, DurationMinutes: 45}, summary.ByActivityType["unspecified"])
		assert.Equal(t, entity.GroupTotal{Flights: 2, DurationMinutes: 90}, summary.ByUser["u-1"])
		assert.Equal(t, entity.GroupTotal{Flights: 2, DurationMinutes: 105}, summary.ByMonth["2026-07"])
		assert.Equal(t, entity.GroupTotal{Flights: 1, DurationMinutes: 45}, summary.ByMonth["2026-08"])
	})

	t.Run("date window is inclusive", func(t *testing.T) {
		from := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
		summary := svc.SummarizeFlights(testFlights(), entity.FlightReportFilter{From: &from, To: &to})

		assert.Equal(t, 2, summary.TotalFlights)
		assert.Equal(t, 30+45, summary.TotalDurationMinutes)
	})

	t.Run("soft-deleted flights never count", func(t *testing.T) {
		flights := testFlights()
		flights = append(flights, &entity.Flight{
			Meta: entity.Meta{ID: "flight-gone", IsDeleted: true},
			FlightFields: entity.FlightFields{
				UserID: "u-1", DroneID: "d-1", Date: "2026-08-10",
				Category:  "commercial",
				StartTime: "10:00", EndTime: "12:00",
			},
		})

		// An admin's listing includes deleted flights; the totals must not
		// differ from what a manager sees.
		summary := svc.SummarizeFlights(flights, entity.FlightReportFilter{})
		assert.Equal(t, 3, summary.TotalFlights)
		assert.Equal(t, 135, summary.TotalDurationMinutes)
		assert.Equal(t, entity.GroupTotal{Flights: 2, DurationMinutes: 105}, summary.ByCategory["commercial"])
	})

	t.Run("dimension filters", func(t *testing.T) {
		summary := svc.SummarizeFlights(testFlights(), entity.FlightReportFilter{UserID: "u-2"})
		assert.Equal(t, 1, summary.TotalFlights)

		summary = svc.SummarizeFlights(testFlights(), entity.FlightReportFilter{Category: "training", DroneID: "d-2"})
		assert.Equal(t, 1, summary.TotalFlights)

		summary = svc.SummarizeFlights(testFlights(), entity.FlightReportFilter{Category: "training", DroneID: "d-1"})
		assert.Equal(t, 0, summary.TotalFlights)
	})
}

func TestSummarizeDrones(t *testing.T) {
	svc := NewReportService()
	drones := []*entity.Drone{
		{Meta: entity.Meta{ID: "d-1"}, DroneFields: entity.DroneFields{Name: "Mavic"}},
		{Meta: entity.Meta{ID: "d-2"}, DroneFields: entity.DroneFields{Name: "Anafi"}},
		{Meta: entity.Meta{ID: "d-3"}, DroneFields: entity.DroneFields{Name: "Idle"}},
	}

	usage := svc.SummarizeDrones(testFlights(), drones, entity.FlightReportFilter{})
	require.Len(t, usage, 3)

	byID := map[string]*entity.DroneUsage{}
	for _, u := range usage {
		byID[u.DroneID] = u
	}

	assert.Equal(t, 2, byID["d-1"].Flights)
	assert.Equal(t, 105, byID["d-1"].DurationMinutes)
	require.NotNil(t, byID["d-1"].LastFlight)
	assert.Equal(t, "2026-08-05", byID["d-1"].LastFlight.Format("2006-01-02"))

	assert.Equal(t, 1, byID["d-2"].Flights)

	assert.Equal(t, 0, byID["d-3"].Flights, "idle drones stay in the report")
	assert.Nil(t, byID["d-3"].LastFlight)
}

func TestSummarizeDronesSkipsDeletedRecords(t *testing.T) {
	svc := NewReportService()
	drones := []*entity.Drone{
		{Meta: entity.Meta{ID: "d-1"}, DroneFields: entity.DroneFields{Name: "Mavic"}},
		{Meta: entity.Meta{ID: "d-9", IsDeleted: true}, DroneFields: entity.DroneFields{Name: "Retired"}},
	}
	flights := append(testFlights(), &entity.Flight{
		Meta: entity.Meta{ID: "flight-gone", IsDeleted: true},
		FlightFields: entity.FlightFields{
			DroneID: "d-1", Date: "2026-08-20",
			StartTime: "10:00", EndTime: "12:00",
		},
	})

	usage := svc.SummarizeDrones(flights, drones, entity.FlightReportFilter{})
	require.Len(t, usage, 1, "retired drones stay out of the usage report")

	assert.Equal(t, "d-1", usage[0].DroneID)
	assert.Equal(t, 2, usage[0].Flights)
	assert.Equal(t, 105, usage[0].DurationMinutes)
	require.NotNil(t, usage[0].LastFlight)
	assert.Equal(t, "2026-08-05", usage[0].LastFlight.Format("2006-01-02"),
		"a deleted flight must not move the last-flight date")
}

func TestWriteFlightSummaryCSV(t *testing.T) {
	svc := NewReportService()
	summary := svc.SummarizeFlights(testFlights(), entity.FlightReportFilter{})

	var buf bytes.Buffer
	require.NoError(t, WriteFlightSummaryCSV(&buf, summary))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "dimension,key,flights,durationMinutes", lines[0])
	assert.Equal(t, "total,,3,135", lines[1])
	assert.Contains(t, lines, "category,commercial,2,105")
	assert.Contains(t, lines, "month,2026-07,2,105")
}

func TestWriteDroneUsageCSV(t *testing.T) {
	last := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	usage := []*entity.DroneUsage{
		{DroneID: "d-1", DroneName: "Mavic", Flights: 2, DurationMinutes: 105, LastFlight: &last},
		{DroneID: "d-3", DroneName: "Idle"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDroneUsageCSV(&buf, usage))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "droneId,droneName,flights,durationMinutes,lastFlight", lines[0])
	assert.Equal(t, "d-1,Mavic,2,105,2026-08-05", lines[1])
	assert.Equal(t, "d-3,Idle,0,0,", lines[2])
}
