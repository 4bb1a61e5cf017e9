package rest

import (
	"strconv"

	"uavops-service/internal/domain/repository"
	"uavops-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuditController exposes the audit history viewer.
type AuditController struct {
	audit *usecase.AuditLogService
}

// RegisterAuditRoutes mounts the audit endpoints on the authenticated group.
func RegisterAuditRoutes(g *echo.Group, audit *usecase.AuditLogService) {
	c := &AuditController{audit: audit}
	g.GET("/audit-logs", c.List)
}

func (ctl *AuditController) List(c echo.Context) error {
	filter := repository.AuditLogFilter{
		EntityType: c.QueryParam("entityType"),
		EntityID:   c.QueryParam("entityId"),
		UserID:     c.QueryParam("userId"),
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return writeBadRequest(c, "invalid limit")
		}
		filter.Limit = limit
	}

	entries, err := ctl.audit.List(c.Request().Context(), filter, actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return writeSuccess(c, entries)
}
