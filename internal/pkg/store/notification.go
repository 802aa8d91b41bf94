package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
)

var notificationColumns = []string{
	"id", "user_id", "type", "title", "message", "sensor_id", "evacuation_id",
	"is_read", "is_important", "read_at", "created_at",
}

func (s *store) CreateNotification(ctx context.Context, notif *domain.Notification) (*domain.Notification, error) {
	query := builder().Insert(tableNotifications).
		Columns("user_id", "type", "title", "message", "sensor_id",
			"evacuation_id", "is_important").
		Values(notif.UserID, notif.Type, notif.Title, notif.Message, notif.SensorID,
			notif.EvacuationID, notif.IsImportant).
		Suffix("RETURNING id, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&notif.ID, &notif.CreatedAt); err != nil {
		return nil, wrapErr(err)
	}
	return notif, nil
}

// CreateNotifications batches a broadcast into one multi-row insert.
func (s *store) CreateNotifications(ctx context.Context, notifs []*domain.Notification) (int, error) {
	if len(notifs) == 0 {
		return 0, nil
	}

	query := builder().Insert(tableNotifications).
		Columns("user_id", "type", "title", "message", "sensor_id",
			"evacuation_id", "is_important")
	for _, n := range notifs {
		query = query.Values(n.UserID, n.Type, n.Title, n.Message, n.SensorID,
			n.EvacuationID, n.IsImportant)
	}

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}
	return int(tag.RowsAffected()), nil
}

func (s *store) GetNotification(ctx context.Context, id, userID int64) (*domain.Notification, error) {
	query := builder().Select(notificationColumns...).
		From(tableNotifications).
		Where(sq.Eq{"id": id, "user_id": userID})

	notif, err := xpgx.Getx[domain.Notification](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return notif, nil
}

func (s *store) ListNotifications(ctx context.Context, opts ListNotificationsOpts) ([]*domain.Notification, error) {
	query := builder().Select(notificationColumns...).
		From(tableNotifications).
		Where(sq.Eq{"user_id": opts.UserID}).
		OrderBy("created_at desc")

	if opts.UnreadOnly {
		query = query.Where(sq.Eq{"is_read": false})
	}
	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit))
	}

	notifs, err := xpgx.Selectx[domain.Notification](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return notifs, nil
}

// MarkNotificationRead sets read_at once; re-reading keeps the first timestamp.
func (s *store) MarkNotificationRead(ctx context.Context, id, userID int64) (*domain.Notification, error) {
	query := builder().Update(tableNotifications).
		Set("is_read", true).
		Set("read_at", sq.Expr("coalesce(read_at, now())")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + joinColumns(notificationColumns))

	notif, err := xpgx.Getx[domain.Notification](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return notif, nil
}

func (s *store) MarkAllNotificationsRead(ctx context.Context, userID int64) (int, error) {
	query := builder().Update(tableNotifications).
		Set("is_read", true).
		Set("read_at", sq.Expr("coalesce(read_at, now())")).
		Where(sq.Eq{"user_id": userID, "is_read": false})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}
	return int(tag.RowsAffected()), nil
}

func (s *store) DeleteNotification(ctx context.Context, id, userID int64) error {
	query := builder().Delete(tableNotifications).
		Where(sq.Eq{"id": id, "user_id": userID})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

func (s *store) CountNotifications(ctx context.Context, userID int64, unreadOnly, importantOnly bool) (int, error) {
	conds := []sq.Sqlizer{sq.Eq{"user_id": userID}}
	if unreadOnly {
		conds = append(conds, sq.Eq{"is_read": false})
	}
	if importantOnly {
		conds = append(conds, sq.Eq{"is_important": true})
	}
	return s.count(ctx, tableNotifications, conds...)
}

func (s *store) NotificationTypeCounts(ctx context.Context, userID int64) (map[string]int, error) {
	query := builder().Select("type", "count(*)").
		From(tableNotifications).
		Where(sq.Eq{"user_id": userID}).
		GroupBy("type")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var typ string
		var n int
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, wrapErr(err)
		}
		counts[typ] = n
	}
	return counts, rows.Err()
}
