package rest

import (
	"uavops-service/internal/domain/entity"
	"uavops-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserController exposes team member profiles.
type UserController struct {
	users *usecase.UserService
}

// RoleRequest is the payload for role changes.
type RoleRequest struct {
	Role string `json:"role"`
}

// RegisterUserRoutes mounts the user endpoints on the authenticated group.
func RegisterUserRoutes(g *echo.Group, users *usecase.UserService) {
	c := &UserController{users: users}
	g.GET("/users", c.List)
	g.GET("/users/me", c.Me)
	g.GET("/users/:id", c.Get)
	g.PUT("/users/:id", c.Update)
	g.PUT("/users/:id/role", c.ChangeRole)
}

func (ctl *UserController) List(c echo.Context) error {
	users, err := ctl.users.List(c.Request().Context(), actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, users)
}

func (ctl *UserController) Me(c echo.Context) error {
	actor := actorFrom(c)
	user, err := ctl.users.GetByID(c.Request().Context(), actor.ID, actor)
	if err != nil {
		return writeError(c, err)
	}
	if user == nil {
		return writeNotFound(c)
	}
	return writeSuccess(c, user)
}

func (ctl *UserController) Get(c echo.Context) error {
	user, err := ctl.users.GetByID(c.Request().Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	if user == nil {
		return writeNotFound(c)
	}
	return writeSuccess(c, user)
}

func (ctl *UserController) Update(c echo.Context) error {
	var fields entity.UserFields
	if err := c.Bind(&fields); err != nil {
		return writeBadRequest(c, "invalid profile payload")
	}

	if err := ctl.users.UpdateProfile(c.Request().Context(), c.Param("id"), fields, actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "profile updated")
}

func (ctl *UserController) ChangeRole(c echo.Context) error {
	var payload RoleRequest
	if err := c.Bind(&payload); err != nil {
		return writeBadRequest(c, "invalid role payload")
	}
	role := entity.Role(payload.Role)
	if !role.Valid() {
		return writeBadRequest(c, "unknown role")
	}

	if err := ctl.users.ChangeRole(c.Request().Context(), c.Param("id"), role, actorFrom(c)); err != nil {
		return writeError(c, err)
	}
	return writeMessage(c, "role updated")
}
