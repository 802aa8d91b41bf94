package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
)

func (c *Controller) ListFacilities(ctx echo.Context) error {
	filter := new(dto.ListFacilitiesFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	facilities, err := c.facilities.List(ctx.Request().Context(), filter)
	if err != nil {
		return err
	}

	nowYear := time.Now().Year()
	views := make([]*domain.HydroFacilityView, 0, len(facilities))
	for _, f := range facilities {
		views = append(views, f.View(nowYear))
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) FacilityPriorityStats(ctx echo.Context) error {
	stats, err := c.facilities.PriorityStats(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(stats))
}

func (c *Controller) GetFacility(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	f, err := c.facilities.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(f.View(time.Now().Year())))
}

func (c *Controller) CreateFacility(ctx echo.Context) error {
	req := new(dto.CreateFacilityRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	f, err := c.facilities.Create(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, domain.OKMessage(f.View(time.Now().Year()), "facility created"))
}

func (c *Controller) UpdateFacility(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.UpdateFacilityRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	f, err := c.facilities.Update(ctx.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(f.View(time.Now().Year()), "facility updated"))
}

func (c *Controller) DeleteFacility(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.facilities.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "facility deactivated"))
}

func (c *Controller) ListWaterBodies(ctx echo.Context) error {
	bodies, err := c.facilities.ListWaterBodies(ctx.Request().Context(),
		ctx.QueryParam("region"), ctx.QueryParam("type"))
	if err != nil {
		return err
	}

	nowYear := time.Now().Year()
	views := make([]*domain.WaterBodyView, 0, len(bodies))
	for _, wb := range bodies {
		views = append(views, wb.View(nowYear))
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) GetWaterBody(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	wb, err := c.facilities.GetWaterBody(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(wb.View(time.Now().Year())))
}
