package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/access"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
)

func (c *Controller) ListUsers(ctx echo.Context) error {
	filter := new(dto.ListUsersFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	users, err := c.users.List(ctx.Request().Context(), filter)
	if err != nil {
		return err
	}

	views := make([]*domain.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, u.View(true))
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) ListResidents(ctx echo.Context) error {
	users, err := c.users.Residents(ctx.Request().Context())
	if err != nil {
		return err
	}

	views := make([]*domain.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, u.View(false))
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) UserStats(ctx echo.Context) error {
	stats, err := c.users.Stats(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(stats))
}

// GetUser serves staff plus the owner of the record.
func (c *Controller) GetUser(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if !access.OwnerOr(cl.Role, cl.UserID(), id, domain.RoleAdmin, domain.RoleEmergency) {
		return constants.ErrForbidden
	}

	user, err := c.users.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(user.View(access.IsStaff(cl.Role) || cl.UserID() == id)))
}

func (c *Controller) CreateUser(ctx echo.Context) error {
	req := new(dto.CreateUserRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	user, err := c.users.Create(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, domain.OKMessage(user.View(true), "user created"))
}

func (c *Controller) UpdateUser(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if !access.OwnerOr(cl.Role, cl.UserID(), id, domain.RoleAdmin, domain.RoleEmergency) {
		return constants.ErrForbidden
	}

	req := new(dto.UpdateUserRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	user, err := c.users.Update(ctx.Request().Context(), id, cl.Role, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(user.View(true), "user updated"))
}

func (c *Controller) DeleteUser(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.users.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "user deactivated"))
}
