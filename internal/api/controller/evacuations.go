package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/access"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/pkg/logger"
)

// ListEvacuations is owner-scoped for residents and experts; staff see all
// records with the embedded user block.
func (c *Controller) ListEvacuations(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}

	filter := new(dto.ListEvacuationsFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	var ownerID *int64
	if !access.IsStaff(cl.Role) {
		id := cl.UserID()
		ownerID = &id
	}

	evacs, err := c.evacuations.List(ctx.Request().Context(), ownerID, filter)
	if err != nil {
		return err
	}

	if access.IsStaff(cl.Role) {
		views, err := c.evacuations.WithUsers(ctx.Request().Context(), evacs)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
	}

	views := make([]*domain.EvacuationView, 0, len(evacs))
	for _, e := range evacs {
		views = append(views, e.View())
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) EvacuationStats(ctx echo.Context) error {
	stats, err := c.evacuations.Stats(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(stats))
}

func (c *Controller) GetEvacuation(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	evac, err := c.evacuations.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	if !access.OwnerOr(cl.Role, cl.UserID(), evac.UserID, domain.RoleAdmin, domain.RoleEmergency) {
		return constants.ErrForbidden
	}

	view := evac.View()
	if access.IsStaff(cl.Role) {
		views, err := c.evacuations.WithUsers(ctx.Request().Context(), []*domain.Evacuation{evac})
		if err != nil {
			logger.Warnf(ctx.Request().Context(), "evacuation [%d]: attach user: %s", evac.ID, err)
		} else if len(views) == 1 {
			view = views[0]
		}
	}
	return ctx.JSON(http.StatusOK, domain.OK(view))
}

// CreateEvacuation assigns an evacuation to a resident. The route is staff
// only; residents see their own records through the read endpoints.
func (c *Controller) CreateEvacuation(ctx echo.Context) error {
	req := new(dto.CreateEvacuationRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	evac, err := c.evacuations.Create(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, domain.OKMessage(evac.View(), "evacuation request created"))
}

func (c *Controller) UpdateEvacuation(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.UpdateEvacuationRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	evac, err := c.evacuations.Update(ctx.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(evac.View(), "evacuation updated"))
}

func (c *Controller) DeleteEvacuation(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.evacuations.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "evacuation deleted"))
}
