package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
)

func (c *Controller) ListNotifications(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}

	unreadOnly := ctx.QueryParam("unread_only") == "true"
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	notifs, err := c.notifications.List(ctx.Request().Context(), cl.UserID(), unreadOnly, limit)
	if err != nil {
		return err
	}

	views := make([]*domain.NotificationView, 0, len(notifs))
	for _, n := range notifs {
		views = append(views, n.View())
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) NotificationStats(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}

	stats, err := c.notifications.Stats(ctx.Request().Context(), cl.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(stats))
}

func (c *Controller) GetNotification(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	notif, err := c.notifications.Get(ctx.Request().Context(), id, cl.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(notif.View()))
}

func (c *Controller) CreateNotification(ctx echo.Context) error {
	req := new(dto.CreateNotificationRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	notif, err := c.notifications.Create(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, domain.OKMessage(notif.View(), "notification created"))
}

func (c *Controller) Broadcast(ctx echo.Context) error {
	req := new(dto.BroadcastRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	sent, err := c.notifications.Broadcast(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, domain.OKMessage(map[string]int{"sent": sent}, "broadcast sent"))
}

func (c *Controller) MarkNotificationRead(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	notif, err := c.notifications.MarkRead(ctx.Request().Context(), id, cl.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(notif.View()))
}

func (c *Controller) MarkAllNotificationsRead(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}

	updated, err := c.notifications.MarkAllRead(ctx.Request().Context(), cl.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(map[string]int{"updated": updated}, "all notifications marked read"))
}

func (c *Controller) DeleteNotification(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.notifications.Delete(ctx.Request().Context(), id, cl.UserID()); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "notification deleted"))
}
