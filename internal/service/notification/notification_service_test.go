package notification

import (
	"context"
	"testing"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	store.Store

	users   []*domain.User
	created []*domain.Notification
}

func (f *fakeStore) ListUsers(_ context.Context, opts store.ListUsersOpts) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		if opts.OnlyActive && !u.IsActive {
			continue
		}
		if opts.Role != nil && u.Role != *opts.Role {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeStore) CreateNotifications(_ context.Context, notifs []*domain.Notification) (int, error) {
	f.created = append(f.created, notifs...)
	return len(notifs), nil
}

func TestBroadcastRoleFilter(t *testing.T) {
	fs := &fakeStore{users: []*domain.User{
		{ID: 1, Role: domain.RoleResident, IsActive: true},
		{ID: 2, Role: domain.RoleResident, IsActive: true},
		{ID: 3, Role: domain.RoleExpert, IsActive: true},
		{ID: 4, Role: domain.RoleResident, IsActive: false},
	}}
	svc := NewService(fs)

	role := "resident"
	sent, err := svc.Broadcast(context.Background(), &dto.BroadcastRequest{
		Type:       "warning",
		Title:      "Паводок",
		Message:    "Ожидается подъём воды",
		RoleFilter: &role,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	for _, n := range fs.created {
		assert.Equal(t, "Паводок", n.Title)
	}
}

func TestBroadcastAll(t *testing.T) {
	fs := &fakeStore{users: []*domain.User{
		{ID: 1, Role: domain.RoleResident, IsActive: true},
		{ID: 3, Role: domain.RoleExpert, IsActive: true},
	}}
	svc := NewService(fs)

	all := "all"
	important := true
	sent, err := svc.Broadcast(context.Background(), &dto.BroadcastRequest{
		Type:        "info",
		Title:       "Учения",
		Message:     "Плановые учения в субботу",
		RoleFilter:  &all,
		IsImportant: &important,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	require.Len(t, fs.created, 2)
	assert.True(t, fs.created[0].IsImportant)
}
