package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
)

var facilityColumns = []string{
	"id", "name", "type", "region", "water_body", "water_body_id", "capacity",
	"year_built", "passport_year", "status", "technical_condition", "risk_score",
	"risk_level", "last_inspection", "next_inspection", "issues", "alerts",
	"coordinates", "related_sensor_ids", "description", "created_at", "updated_at",
}

func (s *store) CreateFacility(ctx context.Context, f *domain.HydroFacility) (*domain.HydroFacility, error) {
	query := builder().Insert(tableHydroFacilities).
		Columns("name", "type", "region", "water_body", "water_body_id", "capacity",
			"year_built", "passport_year", "status", "technical_condition",
			"risk_score", "risk_level", "last_inspection", "next_inspection",
			"issues", "alerts", "coordinates", "related_sensor_ids", "description").
		Values(f.Name, f.Type, f.Region, f.WaterBody, f.WaterBodyID, f.Capacity,
			f.YearBuilt, f.PassportYear, f.Status, f.TechnicalCondition,
			f.RiskScore, f.RiskLevel, f.LastInspection, f.NextInspection,
			f.Issues, f.Alerts, f.Coordinates, f.RelatedSensorIDs, f.Description).
		Suffix("RETURNING id, created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, wrapErr(err)
	}
	return f, nil
}

func (s *store) GetFacility(ctx context.Context, id int64) (*domain.HydroFacility, error) {
	query := builder().Select(facilityColumns...).
		From(tableHydroFacilities).
		Where(sq.Eq{"id": id})

	f, err := xpgx.Getx[domain.HydroFacility](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return f, nil
}

func (s *store) UpdateFacility(ctx context.Context, f *domain.HydroFacility) error {
	query := builder().Update(tableHydroFacilities).
		Set("name", f.Name).
		Set("type", f.Type).
		Set("region", f.Region).
		Set("water_body", f.WaterBody).
		Set("water_body_id", f.WaterBodyID).
		Set("capacity", f.Capacity).
		Set("year_built", f.YearBuilt).
		Set("passport_year", f.PassportYear).
		Set("status", f.Status).
		Set("technical_condition", f.TechnicalCondition).
		Set("risk_score", f.RiskScore).
		Set("risk_level", f.RiskLevel).
		Set("last_inspection", f.LastInspection).
		Set("next_inspection", f.NextInspection).
		Set("issues", f.Issues).
		Set("alerts", f.Alerts).
		Set("coordinates", f.Coordinates).
		Set("related_sensor_ids", f.RelatedSensorIDs).
		Set("description", f.Description).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": f.ID})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

func (s *store) ListFacilities(ctx context.Context, opts ListFacilitiesOpts) ([]*domain.HydroFacility, error) {
	query := builder().Select(facilityColumns...).
		From(tableHydroFacilities).
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
	if opts.Status != nil {
		query = query.Where(sq.Eq{"status": *opts.Status})
	}
	if opts.MinRisk != nil {
		query = query.Where(sq.GtOrEq{"risk_score": *opts.MinRisk})
	}
	if opts.MaxRisk != nil {
		query = query.Where(sq.LtOrEq{"risk_score": *opts.MaxRisk})
	}
	if opts.Condition != nil {
		query = query.Where(sq.Eq{"technical_condition": *opts.Condition})
	}

	facilities, err := xpgx.Selectx[domain.HydroFacility](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return facilities, nil
}

func (s *store) CountFacilities(ctx context.Context, opts CountFacilitiesOpts) (int, error) {
	conds := []sq.Sqlizer{}
	if opts.Status != nil {
		conds = append(conds, sq.Eq{"status": *opts.Status})
	}
	if opts.MinCondition != nil {
		conds = append(conds, sq.GtOrEq{"technical_condition": *opts.MinCondition})
	}
	if opts.MaxCondition != nil {
		conds = append(conds, sq.LtOrEq{"technical_condition": *opts.MaxCondition})
	}
	return s.count(ctx, tableHydroFacilities, conds...)
}
