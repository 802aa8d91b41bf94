// Package monitoring owns sensors, their readings and the flood risk zones
// derived from them.
package monitoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/random"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/logger"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"github.com/shopspring/decimal"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// newSensorID builds a readable default id when the client does not provide
// one: a short slug from the name plus a random suffix.
func newSensorID(name string) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	if len(slug) > 16 {
		slug = slug[:16]
	}
	return fmt.Sprintf("%s-%s", slug, strings.ToLower(random.String(6)))
}

func (svc *Service) CreateSensor(ctx context.Context, req *dto.CreateSensorRequest) (*domain.Sensor, error) {
	sensor := &domain.Sensor{
		Name:        req.Name,
		Location:    req.Location,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Status:      domain.SensorActive,
		Temperature: req.Temperature,
		Description: req.Description,
		IsActive:    true,
	}
	if req.ID != nil && *req.ID != "" {
		sensor.ID = *req.ID
	} else {
		sensor.ID = newSensorID(req.Name)
	}
	if req.WaterLevel != nil {
		sensor.WaterLevel = *req.WaterLevel
	}
	if req.Status != nil {
		sensor.Status = *req.Status
	}

	if err := svc.store.CreateSensor(ctx, sensor); err != nil {
		return nil, err
	}
	return sensor, nil
}

func (svc *Service) GetSensor(ctx context.Context, id string) (*domain.Sensor, error) {
	return svc.store.GetSensor(ctx, id, true)
}

func (svc *Service) UpdateSensor(ctx context.Context, id string, req *dto.UpdateSensorRequest) (*domain.Sensor, error) {
	sensor, err := svc.store.GetSensor(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sensor.Name = *req.Name
	}
	if req.Location != nil {
		sensor.Location = *req.Location
	}
	if req.Latitude != nil {
		sensor.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		sensor.Longitude = *req.Longitude
	}
	if req.WaterLevel != nil {
		sensor.WaterLevel = *req.WaterLevel
		now := time.Now()
		sensor.LastUpdate = &now
	}
	if req.Temperature != nil {
		sensor.Temperature = req.Temperature
	}
	if req.Status != nil {
		sensor.Status = *req.Status
	}
	if req.Description != nil {
		sensor.Description = req.Description
	}
	if req.IsActive != nil {
		sensor.IsActive = *req.IsActive
	}

	if err := svc.store.UpdateSensor(ctx, sensor); err != nil {
		return nil, err
	}
	return sensor, nil
}

// DeleteSensor is a soft delete: the row stays so readings keep their parent.
func (svc *Service) DeleteSensor(ctx context.Context, id string) error {
	sensor, err := svc.store.GetSensor(ctx, id, false)
	if err != nil {
		return err
	}
	sensor.IsActive = false
	return svc.store.UpdateSensor(ctx, sensor)
}

// ListSensors filters status in SQL; the derived danger level is filtered
// in memory after the rows come back.
func (svc *Service) ListSensors(ctx context.Context, filter *dto.ListSensorsFilter) ([]*domain.Sensor, error) {
	opts := store.ListSensorsOpts{OnlyActive: true}
	if filter.Status != "" {
		opts.Status = &filter.Status
	}

	sensors, err := svc.store.ListSensors(ctx, opts)
	if err != nil {
		return nil, err
	}

	if filter.DangerLevel != "" {
		filtered := sensors[:0]
		for _, s := range sensors {
			if s.DangerLevel() == filter.DangerLevel {
				filtered = append(filtered, s)
			}
		}
		sensors = filtered
	}
	return sensors, nil
}

// CriticalSensors returns active sensors at danger level danger or critical.
func (svc *Service) CriticalSensors(ctx context.Context) ([]*domain.Sensor, error) {
	sensors, err := svc.store.ListSensors(ctx, store.ListSensorsOpts{OnlyActive: true})
	if err != nil {
		return nil, err
	}

	critical := make([]*domain.Sensor, 0, len(sensors))
	for _, s := range sensors {
		switch s.DangerLevel() {
		case domain.DangerDanger, domain.DangerCritical:
			critical = append(critical, s)
		}
	}
	return critical, nil
}

type AverageLevel struct {
	AverageWaterLevel float64 `json:"average_water_level"`
	SensorsCount      int     `json:"sensors_count"`
}

func (svc *Service) AverageWaterLevel(ctx context.Context) (*AverageLevel, error) {
	avg, count, err := svc.store.AverageWaterLevel(ctx)
	if err != nil {
		return nil, err
	}
	rounded := decimal.NewFromFloat(avg).Round(2).InexactFloat64()
	return &AverageLevel{AverageWaterLevel: rounded, SensorsCount: count}, nil
}

func (svc *Service) AddReading(ctx context.Context, sensorID string, req *dto.AddReadingRequest) (*domain.SensorReading, error) {
	sensor, err := svc.store.GetSensor(ctx, sensorID, true)
	if err != nil {
		return nil, err
	}

	ts := time.Now()
	if req.Timestamp != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Timestamp)
		if err == nil {
			ts = parsed
		}
	}

	reading := &domain.SensorReading{
		SensorID:    sensor.ID,
		WaterLevel:  *req.WaterLevel,
		Temperature: req.Temperature,
		Timestamp:   ts,
	}
	reading, err = svc.store.AddReading(ctx, sensor, reading)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "reading added: sensor [%s] level [%.2f]", sensor.ID, reading.WaterLevel)
	return reading, nil
}

// Readings returns the history for the last `hours` hours, oldest first.
func (svc *Service) Readings(ctx context.Context, sensorID string, hours, limit int) ([]*domain.SensorReading, error) {
	if _, err := svc.store.GetSensor(ctx, sensorID, true); err != nil {
		return nil, err
	}
	if hours <= 0 {
		hours = 24
	}
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}
	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	return svc.store.ListReadings(ctx, sensorID, since, limit)
}

func (svc *Service) CreateZone(ctx context.Context, req *dto.CreateZoneRequest) (*domain.RiskZone, error) {
	zone := &domain.RiskZone{
		Name:             req.Name,
		Type:             req.Type,
		Location:         req.Location,
		Region:           req.Region,
		Coordinates:      req.Coordinates,
		Trend:            "stable",
		RelatedSensorIDs: req.RelatedSensorIDs,
		Status:           "monitoring",
		Description:      req.Description,
		IsActive:         true,
	}
	if req.ID != nil && *req.ID != "" {
		zone.ID = *req.ID
	} else {
		zone.ID = "zone-" + uuid.NewString()[:8]
	}
	if req.WaterLevel != nil {
		zone.WaterLevel = *req.WaterLevel
	}
	if req.Threshold != nil {
		zone.Threshold = *req.Threshold
	}
	if req.Trend != nil {
		zone.Trend = *req.Trend
	}
	if req.ResidentsCount != nil {
		zone.ResidentsCount = *req.ResidentsCount
	}
	if req.AffectedPop != nil {
		zone.AffectedPopulation = *req.AffectedPop
	}
	if req.EvacuatedCount != nil {
		zone.EvacuatedCount = *req.EvacuatedCount
	}
	if req.Status != nil {
		zone.Status = *req.Status
	}

	if err := svc.store.CreateZone(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

// GetZone refreshes the derived status/trend from the zone's sensors before
// returning it.
func (svc *Service) GetZone(ctx context.Context, id string) (*domain.RiskZone, error) {
	zone, err := svc.store.GetZone(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := svc.recompute(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (svc *Service) recompute(ctx context.Context, zone *domain.RiskZone) error {
	if len(zone.RelatedSensorIDs) == 0 {
		return nil
	}
	sensors, err := svc.store.ListSensorsByIDs(ctx, zone.RelatedSensorIDs)
	if err != nil {
		return err
	}
	zone.Recompute(sensors)
	return nil
}

func (svc *Service) ListZones(ctx context.Context, zoneType string) ([]*domain.RiskZone, error) {
	opts := store.ListZonesOpts{OnlyActive: true}
	if zoneType != "" {
		opts.Type = &zoneType
	}

	zones, err := svc.store.ListZones(ctx, opts)
	if err != nil {
		return nil, err
	}
	for _, zone := range zones {
		if err := svc.recompute(ctx, zone); err != nil {
			return nil, err
		}
	}
	return zones, nil
}

func (svc *Service) UpdateZone(ctx context.Context, id string, req *dto.UpdateZoneRequest) (*domain.RiskZone, error) {
	zone, err := svc.store.GetZone(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Type != nil {
		zone.Type = *req.Type
	}
	if req.Location != nil {
		zone.Location = req.Location
	}
	if req.Region != nil {
		zone.Region = req.Region
	}
	if req.Coordinates != nil {
		zone.Coordinates = req.Coordinates
	}
	if req.WaterLevel != nil {
		zone.WaterLevel = *req.WaterLevel
	}
	if req.Threshold != nil {
		zone.Threshold = *req.Threshold
	}
	if req.Trend != nil {
		zone.Trend = *req.Trend
	}
	if req.ResidentsCount != nil {
		zone.ResidentsCount = *req.ResidentsCount
	}
	if req.AffectedPop != nil {
		zone.AffectedPopulation = *req.AffectedPop
	}
	if req.EvacuatedCount != nil {
		zone.EvacuatedCount = *req.EvacuatedCount
	}
	if req.RelatedSensorIDs != nil {
		zone.RelatedSensorIDs = req.RelatedSensorIDs
	}
	if req.Status != nil {
		zone.Status = *req.Status
	}
	if req.Description != nil {
		zone.Description = req.Description
	}

	if err := svc.store.UpdateZone(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (svc *Service) DeleteZone(ctx context.Context, id string) error {
	return svc.store.DeleteZone(ctx, id)
}
