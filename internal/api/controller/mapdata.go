package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
)

// Flattened projections for the dashboard map: coordinates are exploded into
// lat/lng and only the fields the map layer renders are kept.

type mapWaterBody struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Region      *string  `json:"region"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Condition   int      `json:"condition"`
	Priority    string   `json:"priority"`
	Description *string  `json:"description"`
}

func toMapWaterBody(wb *domain.WaterBody, nowYear int) *mapWaterBody {
	m := &mapWaterBody{
		ID:          wb.ID,
		Name:        wb.Name,
		Type:        wb.Type,
		Region:      wb.Region,
		Condition:   wb.TechnicalCondition,
		Priority:    wb.Priority(nowYear).Level,
		Description: wb.Description,
	}
	if wb.Coordinates != nil {
		m.Lat, m.Lng = &wb.Coordinates.Lat, &wb.Coordinates.Lng
	}
	return m
}

type mapFacility struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Region    *string  `json:"region"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Status    string   `json:"status"`
	Condition int      `json:"condition"`
	RiskLevel string   `json:"risk_level"`
	Priority  string   `json:"priority"`
}

func toMapFacility(f *domain.HydroFacility, nowYear int) *mapFacility {
	m := &mapFacility{
		ID:        f.ID,
		Name:      f.Name,
		Type:      f.Type,
		Region:    f.Region,
		Status:    f.Status,
		Condition: f.TechnicalCondition,
		RiskLevel: f.RiskLevel,
		Priority:  f.Priority(nowYear).Level,
	}
	if f.Coordinates != nil {
		m.Lat, m.Lng = &f.Coordinates.Lat, &f.Coordinates.Lng
	}
	return m
}

type mapSensor struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	WaterLevel  float64 `json:"water_level"`
	Status      string  `json:"status"`
	DangerLevel string  `json:"danger_level"`
}

func (c *Controller) MapWaterBodies(ctx echo.Context) error {
	bodies, err := c.facilities.ListWaterBodies(ctx.Request().Context(),
		ctx.QueryParam("region"), ctx.QueryParam("type"))
	if err != nil {
		return err
	}

	nowYear := time.Now().Year()
	out := make([]*mapWaterBody, 0, len(bodies))
	for _, wb := range bodies {
		out = append(out, toMapWaterBody(wb, nowYear))
	}
	return ctx.JSON(http.StatusOK, domain.OKList(out, len(out)))
}

func (c *Controller) MapWaterBody(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	wb, err := c.facilities.GetWaterBody(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(toMapWaterBody(wb, time.Now().Year())))
}

func (c *Controller) MapFacilities(ctx echo.Context) error {
	filter := new(dto.ListFacilitiesFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}

	facilities, err := c.facilities.List(ctx.Request().Context(), filter)
	if err != nil {
		return err
	}

	nowYear := time.Now().Year()
	out := make([]*mapFacility, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, toMapFacility(f, nowYear))
	}
	return ctx.JSON(http.StatusOK, domain.OKList(out, len(out)))
}

func (c *Controller) MapFacility(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	f, err := c.facilities.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(toMapFacility(f, time.Now().Year())))
}

func (c *Controller) MapSensors(ctx echo.Context) error {
	sensors, err := c.monitoring.ListSensors(ctx.Request().Context(), &dto.ListSensorsFilter{})
	if err != nil {
		return err
	}

	out := make([]*mapSensor, 0, len(sensors))
	for _, s := range sensors {
		out = append(out, &mapSensor{
			ID:          s.ID,
			Name:        s.Name,
			Lat:         s.Latitude,
			Lng:         s.Longitude,
			WaterLevel:  s.WaterLevel,
			Status:      s.Status,
			DangerLevel: s.DangerLevel(),
		})
	}
	return ctx.JSON(http.StatusOK, domain.OKList(out, len(out)))
}

// MapCriticalZones returns zones whose recomputed status is critical or
// warning, ready for the alert layer.
func (c *Controller) MapCriticalZones(ctx echo.Context) error {
	zones, err := c.monitoring.ListZones(ctx.Request().Context(), "")
	if err != nil {
		return err
	}

	out := make([]*domain.RiskZoneView, 0, len(zones))
	for _, z := range zones {
		if z.Status == "critical" || z.Status == "warning" {
			out = append(out, z.View())
		}
	}
	return ctx.JSON(http.StatusOK, domain.OKList(out, len(out)))
}

func (c *Controller) MapStats(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	sensors, err := c.monitoring.ListSensors(reqCtx, &dto.ListSensorsFilter{})
	if err != nil {
		return err
	}
	zones, err := c.monitoring.ListZones(reqCtx, "")
	if err != nil {
		return err
	}

	critical := 0
	for _, s := range sensors {
		if s.DangerLevel() == domain.DangerCritical {
			critical++
		}
	}
	criticalZones := 0
	for _, z := range zones {
		if z.Status == "critical" {
			criticalZones++
		}
	}

	return ctx.JSON(http.StatusOK, domain.OK(map[string]int{
		"sensors":         len(sensors),
		"criticalSensors": critical,
		"zones":           len(zones),
		"criticalZones":   criticalZones,
	}))
}

func (c *Controller) MapCreateWaterBody(ctx echo.Context) error {
	req := new(dto.MapWaterBodyRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	wb, err := c.facilities.CreateWaterBody(ctx.Request().Context(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, domain.OKMessage(toMapWaterBody(wb, time.Now().Year()), "water body created"))
}

func (c *Controller) MapUpdateWaterBody(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	req := new(dto.MapWaterBodyUpdateRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	wb, err := c.facilities.UpdateWaterBody(ctx.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(toMapWaterBody(wb, time.Now().Year()), "water body updated"))
}

func (c *Controller) MapDeleteWaterBody(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return err
	}

	if err := c.facilities.DeleteWaterBody(ctx.Request().Context(), id); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "water body deleted"))
}
