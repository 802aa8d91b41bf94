package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
)

func (c *Controller) ListSensors(ctx echo.Context) error {
	filter := new(dto.ListSensorsFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	sensors, err := c.monitoring.ListSensors(ctx.Request().Context(), filter)
	if err != nil {
		return err
	}

	views := make([]*domain.SensorView, 0, len(sensors))
	for _, s := range sensors {
		views = append(views, s.View())
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) CriticalSensors(ctx echo.Context) error {
	sensors, err := c.monitoring.CriticalSensors(ctx.Request().Context())
	if err != nil {
		return err
	}

	views := make([]*domain.SensorView, 0, len(sensors))
	for _, s := range sensors {
		views = append(views, s.View())
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) AverageWaterLevel(ctx echo.Context) error {
	avg, err := c.monitoring.AverageWaterLevel(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(avg))
}

func (c *Controller) GetSensor(ctx echo.Context) error {
	sensor, err := c.monitoring.GetSensor(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(sensor.View()))
}

func (c *Controller) CreateSensor(ctx echo.Context) error {
	req := new(dto.CreateSensorRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	sensor, err := c.monitoring.CreateSensor(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, domain.OKMessage(sensor.View(), "sensor created"))
}

func (c *Controller) UpdateSensor(ctx echo.Context) error {
	req := new(dto.UpdateSensorRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	sensor, err := c.monitoring.UpdateSensor(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(sensor.View(), "sensor updated"))
}

func (c *Controller) DeleteSensor(ctx echo.Context) error {
	if err := c.monitoring.DeleteSensor(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "sensor deactivated"))
}

func (c *Controller) AddReading(ctx echo.Context) error {
	req := new(dto.AddReadingRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	reading, err := c.monitoring.AddReading(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, domain.OKMessage(reading.View(), "reading recorded"))
}

func (c *Controller) ListReadings(ctx echo.Context) error {
	hours, _ := strconv.Atoi(ctx.QueryParam("hours"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	readings, err := c.monitoring.Readings(ctx.Request().Context(), ctx.Param("id"), hours, limit)
	if err != nil {
		return err
	}

	views := make([]*domain.SensorReadingView, 0, len(readings))
	for _, r := range readings {
		views = append(views, r.View())
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) ListZones(ctx echo.Context) error {
	zones, err := c.monitoring.ListZones(ctx.Request().Context(), ctx.QueryParam("type"))
	if err != nil {
		return err
	}

	views := make([]*domain.RiskZoneView, 0, len(zones))
	for _, z := range zones {
		views = append(views, z.View())
	}
	return ctx.JSON(http.StatusOK, domain.OKList(views, len(views)))
}

func (c *Controller) GetZone(ctx echo.Context) error {
	zone, err := c.monitoring.GetZone(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(zone.View()))
}

func (c *Controller) CreateZone(ctx echo.Context) error {
	req := new(dto.CreateZoneRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	zone, err := c.monitoring.CreateZone(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, domain.OKMessage(zone.View(), "zone created"))
}

func (c *Controller) UpdateZone(ctx echo.Context) error {
	req := new(dto.UpdateZoneRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	zone, err := c.monitoring.UpdateZone(ctx.Request().Context(), ctx.Param("id"), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(zone.View(), "zone updated"))
}

func (c *Controller) DeleteZone(ctx echo.Context) error {
	if err := c.monitoring.DeleteZone(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "zone deleted"))
}
