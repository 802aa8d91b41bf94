package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
)

var evacuationColumns = []string{
	"id", "user_id", "status", "priority", "evacuation_point", "assigned_team",
	"family_members", "has_disabilities", "has_pets", "special_needs", "notes",
	"completed_at", "created_at", "updated_at",
}

func insertNotificationTx(ctx context.Context, tx pgx.Tx, notif *domain.Notification) error {
	insert := builder().Insert(tableNotifications).
		Columns("user_id", "type", "title", "message", "sensor_id",
			"evacuation_id", "is_important").
		Values(notif.UserID, notif.Type, notif.Title, notif.Message, notif.SensorID,
			notif.EvacuationID, notif.IsImportant).
		Suffix("RETURNING id, created_at")

	sql, args, err := insert.ToSql()
	if err != nil {
		return err
	}
	return tx.QueryRow(ctx, sql, args...).Scan(&notif.ID, &notif.CreatedAt)
}

// CreateEvacuation persists the request and its kickoff notification in the
// same transaction so a failed insert never leaves a dangling alert.
func (s *store) CreateEvacuation(ctx context.Context, evac *domain.Evacuation, notif *domain.Notification) (*domain.Evacuation, error) {
	err := s.pool.WithTx(ctx, func(tx pgx.Tx) error {
		insert := builder().Insert(tableEvacuations).
			Columns("user_id", "status", "priority", "evacuation_point",
				"assigned_team", "family_members", "has_disabilities", "has_pets",
				"special_needs", "notes").
			Values(evac.UserID, evac.Status, evac.Priority, evac.EvacuationPoint,
				evac.AssignedTeam, evac.FamilyMembers, evac.HasDisabilities, evac.HasPets,
				evac.SpecialNeeds, evac.Notes).
			Suffix("RETURNING id, created_at, updated_at")

		sql, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&evac.ID, &evac.CreatedAt, &evac.UpdatedAt); err != nil {
			return err
		}

		if notif == nil {
			return nil
		}
		notif.EvacuationID = &evac.ID
		return insertNotificationTx(ctx, tx, notif)
	})
	if err != nil {
		return nil, wrapErr(err)
	}
	return evac, nil
}

func (s *store) GetEvacuation(ctx context.Context, id int64) (*domain.Evacuation, error) {
	query := builder().Select(evacuationColumns...).
		From(tableEvacuations).
		Where(sq.Eq{"id": id})

	evac, err := xpgx.Getx[domain.Evacuation](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return evac, nil
}

func (s *store) UpdateEvacuation(ctx context.Context, evac *domain.Evacuation, notif *domain.Notification) error {
	err := s.pool.WithTx(ctx, func(tx pgx.Tx) error {
		update := builder().Update(tableEvacuations).
			Set("status", evac.Status).
			Set("priority", evac.Priority).
			Set("evacuation_point", evac.EvacuationPoint).
			Set("assigned_team", evac.AssignedTeam).
			Set("family_members", evac.FamilyMembers).
			Set("has_disabilities", evac.HasDisabilities).
			Set("has_pets", evac.HasPets).
			Set("special_needs", evac.SpecialNeeds).
			Set("notes", evac.Notes).
			Set("completed_at", evac.CompletedAt).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": evac.ID})

		tag, err := xpgx.Execx(ctx, tx, update)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errNoRows()
		}

		if notif == nil {
			return nil
		}
		notif.EvacuationID = &evac.ID
		return insertNotificationTx(ctx, tx, notif)
	})
	return wrapErr(err)
}

func (s *store) DeleteEvacuation(ctx context.Context, id int64) error {
	query := builder().Delete(tableEvacuations).Where(sq.Eq{"id": id})
	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

func (s *store) ListEvacuations(ctx context.Context, opts ListEvacuationsOpts) ([]*domain.Evacuation, error) {
	query := builder().Select(evacuationColumns...).
		From(tableEvacuations).
		OrderBy("created_at desc")

	if opts.UserID != nil {
		query = query.Where(sq.Eq{"user_id": *opts.UserID})
	}
	if opts.Status != nil {
		query = query.Where(sq.Eq{"status": *opts.Status})
	}
	if opts.Priority != nil {
		query = query.Where(sq.Eq{"priority": *opts.Priority})
	}

	evacs, err := xpgx.Selectx[domain.Evacuation](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return evacs, nil
}

func (s *store) CountEvacuations(ctx context.Context, opts CountEvacuationsOpts) (int, error) {
	conds := []sq.Sqlizer{}
	if opts.Status != nil {
		conds = append(conds, sq.Eq{"status": *opts.Status})
	}
	if opts.Priority != nil {
		conds = append(conds, sq.Eq{"priority": *opts.Priority})
	}
	if opts.HasDisabilities != nil {
		conds = append(conds, sq.Eq{"has_disabilities": *opts.HasDisabilities})
	}
	if opts.HasPets != nil {
		conds = append(conds, sq.Eq{"has_pets": *opts.HasPets})
	}
	return s.count(ctx, tableEvacuations, conds...)
}
