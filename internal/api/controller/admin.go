package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
)

func (c *Controller) AdminDashboard(ctx echo.Context) error {
	dashboard, err := c.admin.Dashboard(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(dashboard))
}

func (c *Controller) SystemAnalytics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.OK(c.admin.SystemAnalytics(ctx.Request().Context())))
}

func (c *Controller) AIModels(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.OK(c.admin.AIModels()))
}

func (c *Controller) AdminNotificationTemplates(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.OK(c.admin.NotificationTemplates()))
}

func (c *Controller) AdminLogs(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.OK(c.admin.Logs()))
}
