package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
)

var waterBodyColumns = []string{
	"id", "name", "type", "region", "water_type", "has_fauna", "passport_year",
	"technical_condition", "coordinates", "area", "max_depth", "average_depth",
	"volume", "length", "related_sensor_ids", "related_facility_ids",
	"description", "created_at", "updated_at",
}

func (s *store) CreateWaterBody(ctx context.Context, wb *domain.WaterBody) (*domain.WaterBody, error) {
	query := builder().Insert(tableWaterBodies).
		Columns("name", "type", "region", "water_type", "has_fauna",
			"passport_year", "technical_condition", "coordinates", "area",
			"max_depth", "average_depth", "volume", "length",
			"related_sensor_ids", "related_facility_ids", "description").
		Values(wb.Name, wb.Type, wb.Region, wb.WaterType, wb.HasFauna,
			wb.PassportYear, wb.TechnicalCondition, wb.Coordinates, wb.Area,
			wb.MaxDepth, wb.AverageDepth, wb.Volume, wb.Length,
			wb.RelatedSensorIDs, wb.RelatedFacilityIDs, wb.Description).
		Suffix("RETURNING id, created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&wb.ID, &wb.CreatedAt, &wb.UpdatedAt); err != nil {
		return nil, wrapErr(err)
	}
	return wb, nil
}

func (s *store) GetWaterBody(ctx context.Context, id int64) (*domain.WaterBody, error) {
	query := builder().Select(waterBodyColumns...).
		From(tableWaterBodies).
		Where(sq.Eq{"id": id})

	wb, err := xpgx.Getx[domain.WaterBody](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return wb, nil
}

func (s *store) UpdateWaterBody(ctx context.Context, wb *domain.WaterBody) error {
	query := builder().Update(tableWaterBodies).
		Set("name", wb.Name).
		Set("type", wb.Type).
		Set("region", wb.Region).
		Set("water_type", wb.WaterType).
		Set("has_fauna", wb.HasFauna).
		Set("passport_year", wb.PassportYear).
		Set("technical_condition", wb.TechnicalCondition).
		Set("coordinates", wb.Coordinates).
		Set("area", wb.Area).
		Set("max_depth", wb.MaxDepth).
		Set("average_depth", wb.AverageDepth).
		Set("volume", wb.Volume).
		Set("length", wb.Length).
		Set("related_sensor_ids", wb.RelatedSensorIDs).
		Set("related_facility_ids", wb.RelatedFacilityIDs).
		Set("description", wb.Description).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": wb.ID})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

func (s *store) DeleteWaterBody(ctx context.Context, id int64) error {
	query := builder().Delete(tableWaterBodies).Where(sq.Eq{"id": id})
	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

func (s *store) ListWaterBodies(ctx context.Context, opts ListWaterBodiesOpts) ([]*domain.WaterBody, error) {
	query := builder().Select(waterBodyColumns...).
		From(tableWaterBodies).
		OrderBy("id")

	if opts.Region != nil {
		query = query.Where(sq.Eq{"region": *opts.Region})
	}
	if opts.RegionLike != nil && *opts.RegionLike != "" {
		query = query.Where(sq.ILike{"region": "%" + *opts.RegionLike + "%"})
	}
	if opts.Type != nil {
		query = query.Where(sq.Eq{"type": *opts.Type})
	}

	bodies, err := xpgx.Selectx[domain.WaterBody](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return bodies, nil
}

func (s *store) CountWaterBodies(ctx context.Context, minCondition *int) (int, error) {
	conds := []sq.Sqlizer{}
	if minCondition != nil {
		conds = append(conds, sq.GtOrEq{"technical_condition": *minCondition})
	}
	return s.count(ctx, tableWaterBodies, conds...)
}
