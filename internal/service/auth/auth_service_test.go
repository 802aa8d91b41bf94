package auth

import (
	"context"
	"testing"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	store.Store

	users   map[int64]*domain.User
	deleted []int64
}

func (f *fakeStore) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return u, nil
}

func (f *fakeStore) DeleteUser(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return constants.ErrDBNotFound
	}
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func TestDeleteAccount(t *testing.T) {
	hash, err := hashPassword("correct-horse")
	require.NoError(t, err)

	fs := &fakeStore{users: map[int64]*domain.User{
		10: {ID: 10, Email: "petr@example.com", PasswordHash: hash, Role: domain.RoleResident, IsActive: true},
	}}
	svc := NewService(fs)

	t.Run("wrong password keeps the row", func(t *testing.T) {
		err := svc.DeleteAccount(context.Background(), 10, "guess")
		assert.ErrorIs(t, err, constants.ErrBadCredentials)
		assert.Empty(t, fs.deleted)
	})

	t.Run("correct password removes the account", func(t *testing.T) {
		err := svc.DeleteAccount(context.Background(), 10, "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, []int64{10}, fs.deleted)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.DeleteAccount(context.Background(), 77, "correct-horse")
		assert.ErrorIs(t, err, constants.ErrUserNotFound)
	})
}
