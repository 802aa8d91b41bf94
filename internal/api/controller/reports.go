package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/service/report"
)

func (c *Controller) ListReports(ctx echo.Context) error {
	filter := new(dto.ListReportsFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	reports, err := c.reports.List(ctx.Request().Context(), filter)
	if err != nil {
		return err
	}

	views := make([]*domain.ReportView, 0, len(reports))
	for _, r := range reports {
		views = append(views, r.View())
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) ReportStats(ctx echo.Context) error {
	stats, err := c.reports.Stats(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(stats))
}

func (c *Controller) ReportTemplates(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, domain.OK(report.Templates()))
}

func (c *Controller) GetReport(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	r, err := c.reports.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(r.View()))
}

func (c *Controller) CreateReport(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}

	author, err := c.auth.GetUser(ctx.Request().Context(), cl.UserID())
	if err != nil {
		return err
	}

	req := new(dto.CreateReportRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	r, err := c.reports.Create(ctx.Request().Context(), author, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, domain.OKMessage(r.View(), "report created"))
}

func (c *Controller) UpdateReport(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.UpdateReportRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	r, err := c.reports.Update(ctx.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(r.View(), "report updated"))
}

func (c *Controller) DeleteReport(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.reports.Delete(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "report deleted"))
}
