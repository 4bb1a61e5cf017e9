package rest

import (
	"uavops-service/internal/domain/entity"
	"uavops-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DroneController exposes the drone inventory.
type DroneController struct {
	drones *usecase.DroneService
}

// RegisterDroneRoutes mounts the drone endpoints on the authenticated group.
func RegisterDroneRoutes(g *echo.Group, drones *usecase.DroneService) {
	c := &DroneController{drones: drones}
	g.GET("/drones", c.List)
	g.GET("/drones/:id", c.Get)
	g.POST("/drones", c.Create)
	g.PUT("/drones/:id", c.Update)
	g.DELETE("/drones/:id", c.Delete)
	g.POST("/drones/:id/restore", c.Restore)
}

func (ctl *DroneController) List(c echo.Context) error {
	drones, err := ctl.drones.List(c.Request().Context(), actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, drones)
}

func (ctl *DroneController) Get(c echo.Context) error {
	drone, err := ctl.drones.GetByID(c.Request().Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	if drone == nil {
		return writeNotFound(c)
	}
	return writeSuccess(c, drone)
}

func (ctl *DroneController) Create(c echo.Context) error {
	var fields entity.DroneFields
	if err := c.Bind(&fields); err != nil {
		return writeBadRequest(c, "invalid drone payload")
	}

	drone, err := ctl.drones.Create(c.Request().Context(), fields, actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, drone)
}

func (ctl *DroneController) Update(c echo.Context) error {
	var fields entity.DroneFields
	if err := c.Bind(&fields); err != nil {
		return writeBadRequest(c, "invalid drone payload")
	}

	if err := ctl.drones.Update(c.Request().Context(), c.Param("id"), fields, actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "drone updated")
}

func (ctl *DroneController) Delete(c echo.Context) error {
	if err := ctl.drones.Delete(c.Request().Context(), c.Param("id"), actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "drone deleted")
}

func (ctl *DroneController) Restore(c echo.Context) error {
	if err := ctl.drones.Restore(c.Request().Context(), c.Param("id"), actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "drone restored")
}
