package rest

import (
	"uavops-service/internal/domain/entity"
	"uavops-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ChecklistController exposes the procedure checklists.
type ChecklistController struct {
	checklists *usecase.ChecklistService
}

// RegisterChecklistRoutes mounts the checklist endpoints on the
// authenticated group.
func RegisterChecklistRoutes(g *echo.Group, checklists *usecase.ChecklistService) {
	c := &ChecklistController{checklists: checklists}
	g.GET("/checklists", c.List)
	g.GET("/checklists/:id", c.Get)
	g.POST("/checklists", c.Create)
	g.PUT("/checklists/:id", c.Update)
	g.DELETE("/checklists/:id", c.Delete)
	g.POST("/checklists/:id/restore", c.Restore)
}

func (ctl *ChecklistController) List(c echo.Context) error {
	checklists, err := ctl.checklists.List(c.Request().Context(), actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, checklists)
}

func (ctl *ChecklistController) Get(c echo.Context) error {
	checklist, err := ctl.checklists.GetByID(c.Request().Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	if checklist == nil {
		return writeNotFound(c)
	}
	return writeSuccess(c, checklist)
}

func (ctl *ChecklistController) Create(c echo.Context) error {
	var fields entity.ChecklistFields
	if err := c.Bind(&fields); err != nil {
		return writeBadRequest(c, "invalid checklist payload")
	}

	checklist, err := ctl.checklists.Create(c.Request().Context(), fields, actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, checklist)
}

func (ctl *ChecklistController) Update(c echo.Context) error {
	var fields entity.ChecklistFields
	if err := c.Bind(&fields); err != nil {
		return writeBadRequest(c, "invalid checklist payload")
	}

	if err := ctl.checklists.Update(c.Request().Context(), c.Param("id"), fields, actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "checklist updated")
}

func (ctl *ChecklistController) Delete(c echo.Context) error {
	if err := ctl.checklists.Delete(c.Request().Context(), c.Param("id"), actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "checklist deleted")
}

func (ctl *ChecklistController) Restore(c echo.Context) error {
	if err := ctl.checklists.Restore(c.Request().Context(), c.Param("id"), actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "checklist restored")
}
