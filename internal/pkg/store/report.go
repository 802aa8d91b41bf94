package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
)

var reportColumns = []string{
	"id", "title", "period", "period_start", "period_end", "type", "status",
	"author_id", "author_name", "stats", "content", "file_size",
	"related_sensor_ids", "related_evacuation_ids", "related_zone_ids",
	"completed_at", "created_at", "updated_at",
}

func (s *store) CreateReport(ctx context.Context, r *domain.Report) (*domain.Report, error) {
	query := builder().Insert(tableReports).
		Columns("title", "period", "period_start", "period_end", "type", "status",
			"author_id", "author_name", "stats", "content", "file_size",
			"related_sensor_ids", "related_evacuation_ids", "related_zone_ids",
			"completed_at").
		Values(r.Title, r.Period, r.PeriodStart, r.PeriodEnd, r.Type, r.Status,
			r.AuthorID, r.AuthorName, r.Stats, r.Content, r.FileSize,
			r.RelatedSensorIDs, r.RelatedEvacuationIDs, r.RelatedZoneIDs,
			r.CompletedAt).
		Suffix("RETURNING id, created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, wrapErr(err)
	}
	return r, nil
}

func (s *store) GetReport(ctx context.Context, id int64) (*domain.Report, error) {
	query := builder().Select(reportColumns...).
		From(tableReports).
		Where(sq.Eq{"id": id})

	r, err := xpgx.Getx[domain.Report](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return r, nil
}

func (s *store) UpdateReport(ctx context.Context, r *domain.Report) error {
	query := builder().Update(tableReports).
		Set("title", r.Title).
		Set("period", r.Period).
		Set("period_start", r.PeriodStart).
		Set("period_end", r.PeriodEnd).
		Set("type", r.Type).
		Set("status", r.Status).
		Set("stats", r.Stats).
		Set("content", r.Content).
		Set("file_size", r.FileSize).
		Set("related_sensor_ids", r.RelatedSensorIDs).
		Set("related_evacuation_ids", r.RelatedEvacuationIDs).
		Set("related_zone_ids", r.RelatedZoneIDs).
		Set("completed_at", r.CompletedAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": r.ID})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

func (s *store) DeleteReport(ctx context.Context, id int64) error {
	query := builder().Delete(tableReports).Where(sq.Eq{"id": id})
	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

func (s *store) ListReports(ctx context.Context, opts ListReportsOpts) ([]*domain.Report, error) {
	query := builder().Select(reportColumns...).
		From(tableReports).
		OrderBy("created_at desc")

	if opts.Type != nil {
		query = query.Where(sq.Eq{"type": *opts.Type})
	}
	if opts.Status != nil {
		query = query.Where(sq.Eq{"status": *opts.Status})
	}

	reports, err := xpgx.Selectx[domain.Report](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return reports, nil
}

func (s *store) CountReports(ctx context.Context, opts ListReportsOpts) (int, error) {
	conds := []sq.Sqlizer{}
	if opts.Type != nil {
		conds = append(conds, sq.Eq{"type": *opts.Type})
	}
	if opts.Status != nil {
		conds = append(conds, sq.Eq{"status": *opts.Status})
	}
	return s.count(ctx, tableReports, conds...)
}
