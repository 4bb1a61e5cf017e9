package rest

import (
	"uavops-service/internal/domain/entity"
	"uavops-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

// FlightController exposes the flight log.
type FlightController struct {
	flights *usecase.FlightService
}

// RegisterFlightRoutes mounts the flight endpoints on the authenticated group.
func RegisterFlightRoutes(g *echo.Group, flights *usecase.FlightService) {
	c := &FlightController{flights: flights}
	g.GET("/flights", c.List)
	g.GET("/flights/:id", c.Get)
	g.POST("/flights", c.Create)
	g.PUT("/flights/:id", c.Update)
	g.DELETE("/flights/:id", c.Delete)
	g.POST("/flights/:id/restore", c.Restore)
}

func (ctl *FlightController) List(c echo.Context) error {
	flights, err := ctl.flights.List(c.Request().Context(), actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, flights)
}

func (ctl *FlightController) Get(c echo.Context) error {
	flight, err := ctl.flights.GetByID(c.Request().Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	if flight == nil {
		return writeNotFound(c)
	}
	return writeSuccess(c, flight)
}

func (ctl *FlightController) Create(c echo.Context) error {
	var fields entity.FlightFields
	if err := c.Bind(&fields); err != nil {
		return writeBadRequest(c, "invalid flight payload")
	}

	flight, err := ctl.flights.Create(c.Request().Context(), fields, actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, flight)
}

func (ctl *FlightController) Update(c echo.Context) error {
	var fields entity.FlightFields
	if err := c.Bind(&fields); err != nil {
		return writeBadRequest(c, "invalid flight payload")
	}

	if err := ctl.flights.Update(c.Request().Context(), c.Param("id"), fields, actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "flight updated")
}

func (ctl *FlightController) Delete(c echo.Context) error {
	if err := ctl.flights.Delete(c.Request().Context(), c.Param("id"), actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "flight deleted")
}

func (ctl *FlightController) Restore(c echo.Context) error {
	if err := ctl.flights.Restore(c.Request().Context(), c.Param("id"), actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "flight restored")
}
