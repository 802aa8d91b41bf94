package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
)

var zoneColumns = []string{
	"id", "name", "type", "location", "region", "coordinates", "water_level",
	"threshold", "trend", "residents_count", "affected_population",
	"evacuated_count", "related_sensor_ids", "status", "description",
	"is_active", "created_at", "updated_at",
}

func (s *store) CreateZone(ctx context.Context, zone *domain.RiskZone) error {
	query := builder().Insert(tableRiskZones).
		Columns("id", "name", "type", "location", "region", "coordinates",
			"water_level", "threshold", "trend", "residents_count",
			"affected_population", "evacuated_count", "related_sensor_ids",
			"status", "description", "is_active").
		Values(zone.ID, zone.Name, zone.Type, zone.Location, zone.Region, zone.Coordinates,
			zone.WaterLevel, zone.Threshold, zone.Trend, zone.ResidentsCount,
			zone.AffectedPopulation, zone.EvacuatedCount, zone.RelatedSensorIDs,
			zone.Status, zone.Description, zone.IsActive).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&zone.CreatedAt, &zone.UpdatedAt); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (s *store) GetZone(ctx context.Context, id string) (*domain.RiskZone, error) {
	query := builder().Select(zoneColumns...).
		From(tableRiskZones).
		Where(sq.Eq{"id": id, "is_active": true})

	zone, err := xpgx.Getx[domain.RiskZone](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return zone, nil
}

func (s *store) UpdateZone(ctx context.Context, zone *domain.RiskZone) error {
	query := builder().Update(tableRiskZones).
		Set("name", zone.Name).
		Set("type", zone.Type).
		Set("location", zone.Location).
		Set("region", zone.Region).
		Set("coordinates", zone.Coordinates).
		Set("water_level", zone.WaterLevel).
		Set("threshold", zone.Threshold).
		Set("trend", zone.Trend).
		Set("residents_count", zone.ResidentsCount).
		Set("affected_population", zone.AffectedPopulation).
		Set("evacuated_count", zone.EvacuatedCount).
		Set("related_sensor_ids", zone.RelatedSensorIDs).
		Set("status", zone.Status).
		Set("description", zone.Description).
		Set("is_active", zone.IsActive).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": zone.ID})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

func (s *store) DeleteZone(ctx context.Context, id string) error {
	query := builder().Delete(tableRiskZones).Where(sq.Eq{"id": id})
	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

func (s *store) ListZones(ctx context.Context, opts ListZonesOpts) ([]*domain.RiskZone, error) {
	query := builder().Select(zoneColumns...).
		From(tableRiskZones).
		OrderBy("id")

	if opts.OnlyActive {
		query = query.Where(sq.Eq{"is_active": true})
	}
	if opts.Type != nil {
		query = query.Where(sq.Eq{"type": *opts.Type})
	}

	zones, err := xpgx.Selectx[domain.RiskZone](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return zones, nil
}
