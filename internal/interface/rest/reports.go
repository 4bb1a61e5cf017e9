package rest

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"uavops-service/internal/domain/entity"
	"uavops-service/internal/usecase"
	"uavops-service/templates"

	"github.com/labstack/echo/v4"
)

// ReportController derives summaries from the flight log. Data is fetched
// through the entity services, so per-actor visibility is already applied
// before aggregation.
type ReportController struct {
	flights *usecase.FlightService
	drones  *usecase.DroneService
	reports *usecase.ReportService
}

// RegisterReportRoutes mounts the report endpoints on the authenticated group.
func RegisterReportRoutes(g *echo.Group, flights *usecase.FlightService, drones *usecase.DroneService, reports *usecase.ReportService) {
	c := &ReportController{flights: flights, drones: drones, reports: reports}
	g.GET("/reports/flights", c.FlightSummary)
	g.GET("/reports/drones", c.DroneUsage)
}

func (ctl *ReportController) FlightSummary(c echo.Context) error {
	filter, err := reportFilter(c)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	flights, err := ctl.flights.List(c.Request().Context(), actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	summary := ctl.reports.SummarizeFlights(flights, filter)

	switch c.QueryParam("format") {
	case "", "json":
		return writeSuccess(c, summary)
	case "csv":
		var buf bytes.Buffer
		if err := usecase.WriteFlightSummaryCSV(&buf, summary); err != nil {
			return writeError(c, err)
		}
		return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
	case "text":
		report := templates.RenderFlightSummary(summary, time.Now().UTC().Format("2006-01-02 15:04"))
		return c.String(http.StatusOK, report)
	default:
		return writeBadRequest(c, "unknown format")
	}
}

func (ctl *ReportController) DroneUsage(c echo.Context) error {
	filter, err := reportFilter(c)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	ctx := c.Request().Context()
	actor := actorFrom(c)

	flights, err := ctl.flights.List(ctx, actor)
	if err != nil {
		return writeError(c, err)
	}
	drones, err := ctl.drones.List(ctx, actor)
	if err != nil {
		return writeError(c, err)
	}

	usageRows := ctl.reports.SummarizeDrones(flights, drones, filter)

	switch c.QueryParam("format") {
	case "", "json":
		return writeSuccess(c, usageRows)
	case "csv":
		var buf bytes.Buffer
		if err := usecase.WriteDroneUsageCSV(&buf, usageRows); err != nil {
			return writeError(c, err)
		}
		return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
	case "text":
		report := templates.RenderDroneUsage(usageRows, time.Now().UTC().Format("2006-01-02 15:04"))
		return c.String(http.StatusOK, report)
	default:
		return writeBadRequest(c, "unknown format")
	}
}

func reportFilter(c echo.Context) (entity.FlightReportFilter, error) {
	filter := entity.FlightReportFilter{
		UserID:       c.QueryParam("userId"),
		DroneID:      c.QueryParam("droneId"),
		Category:     c.QueryParam("category"),
		ActivityType: c.QueryParam("activityType"),
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errors.New("invalid from date, expected YYYY-MM-DD")
		}
		filter.From = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, errors.New("invalid to date, expected YYYY-MM-DD")
		}
		filter.To = &to
	}

	return filter, nil
}
