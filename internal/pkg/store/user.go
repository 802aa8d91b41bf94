package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
)

var userColumns = []string{
	"id", "email", "password_hash", "full_name", "role", "phone", "address",
	"is_active", "is_verified", "reset_token", "reset_token_expires",
	"verification_token", "last_login", "created_at",
}

func (s *store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := builder().Insert(tableUsers).
		Columns("email", "password_hash", "full_name", "role", "phone", "address",
			"is_active", "is_verified", "last_login").
		Values(user.Email, user.PasswordHash, user.FullName, user.Role, user.Phone,
			user.Address, user.IsActive, user.IsVerified, user.LastLogin).
		Suffix("RETURNING id, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
		return nil, wrapErr(err)
	}
	return user, nil
}

func (s *store) getUserWhere(ctx context.Context, conds ...sq.Sqlizer) (*domain.User, error) {
	query := builder().Select(userColumns...).From(tableUsers)
	for _, c := range conds {
		query = query.Where(c)
	}

	user, err := xpgx.Getx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return user, nil
}

func (s *store) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getUserWhere(ctx, sq.Eq{"id": id})
}

func (s *store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getUserWhere(ctx, sq.Eq{"email": email})
}

func (s *store) GetUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return s.getUserWhere(ctx, sq.Eq{"reset_token": token})
}

func (s *store) GetUserByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	return s.getUserWhere(ctx, sq.Eq{"verification_token": token})
}

func (s *store) UpdateUser(ctx context.Context, user *domain.User) error {
	query := builder().Update(tableUsers).
		Set("email", user.Email).
		Set("password_hash", user.PasswordHash).
		Set("full_name", user.FullName).
		Set("role", user.Role).
		Set("phone", user.Phone).
		Set("address", user.Address).
		Set("is_active", user.IsActive).
		Set("is_verified", user.IsVerified).
		Set("reset_token", user.ResetToken).
		Set("reset_token_expires", user.ResetTokenExpires).
		Set("verification_token", user.VerificationToken).
		Set("last_login", user.LastLogin).
		Where(sq.Eq{"id": user.ID})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

// DeleteUser removes the account together with every row that still
// references it. The dependent tables carry plain foreign keys, so the
// deletes must run in one transaction.
func (s *store) DeleteUser(ctx context.Context, id int64) error {
	err := s.pool.WithTx(ctx, func(tx pgx.Tx) error {
		dependents := []sq.DeleteBuilder{
			builder().Delete(tableNotifications).Where(sq.Eq{"user_id": id}),
			builder().Delete(tableEvacuations).Where(sq.Eq{"user_id": id}),
			builder().Delete(tableReports).Where(sq.Eq{"author_id": id}),
		}
		for _, q := range dependents {
			if _, err := xpgx.Execx(ctx, tx, q); err != nil {
				return err
			}
		}

		tag, err := xpgx.Execx(ctx, tx, builder().Delete(tableUsers).Where(sq.Eq{"id": id}))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errNoRows()
		}
		return nil
	})
	return wrapErr(err)
}

func (s *store) ListUsers(ctx context.Context, opts ListUsersOpts) ([]*domain.User, error) {
	query := builder().Select(userColumns...).
		From(tableUsers).
		OrderBy("created_at desc")

	if opts.OnlyActive {
		query = query.Where(sq.Eq{"is_active": true})
	}
	if opts.Role != nil {
		query = query.Where(sq.Eq{"role": *opts.Role})
	}
	if opts.Search != nil && *opts.Search != "" {
		pattern := "%" + *opts.Search + "%"
		query = query.Where(sq.Or{
			sq.ILike{"email": pattern},
			sq.ILike{"full_name": pattern},
			sq.ILike{"address": pattern},
		})
	}

	users, err := xpgx.Selectx[domain.User](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return users, nil
}

func (s *store) CountUsers(ctx context.Context, opts CountUsersOpts) (int, error) {
	conds := []sq.Sqlizer{}
	if opts.OnlyActive {
		conds = append(conds, sq.Eq{"is_active": true})
	}
	if opts.Role != nil {
		conds = append(conds, sq.Eq{"role": *opts.Role})
	}
	if opts.OnlyVerified {
		conds = append(conds, sq.Eq{"is_verified": true})
	}
	if opts.LoginSince != nil {
		conds = append(conds, sq.GtOrEq{"last_login": *opts.LoginSince})
	}
	if opts.CreatedSince != nil {
		conds = append(conds, sq.GtOrEq{"created_at": *opts.CreatedSince})
	}
	return s.count(ctx, tableUsers, conds...)
}
