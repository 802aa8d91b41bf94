package evacuation

import (
	"context"
	"testing"
	"time"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore overrides just the methods this service touches; the embedded
// interface panics on anything else, which is exactly what we want in a test.
type fakeStore struct {
	store.Store

	evacs  map[int64]*domain.Evacuation
	notifs []*domain.Notification
	nextID int64
	users  map[int64]*domain.User
}

func newFakeStore() *fakeStore {
	name := "Пётр Иванов"
	return &fakeStore{
		evacs:  make(map[int64]*domain.Evacuation),
		nextID: 1,
		users: map[int64]*domain.User{
			10: {ID: 10, Email: "petr@example.com", FullName: &name, Role: domain.RoleResident, IsActive: true},
		},
	}
}

func (f *fakeStore) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, assert.AnError
	}
	return u, nil
}

func (f *fakeStore) CreateEvacuation(_ context.Context, evac *domain.Evacuation, notif *domain.Notification) (*domain.Evacuation, error) {
	evac.ID = f.nextID
	f.nextID++
	evac.CreatedAt = time.Now()
	f.evacs[evac.ID] = evac
	if notif != nil {
		f.notifs = append(f.notifs, notif)
	}
	return evac, nil
}

func (f *fakeStore) GetEvacuation(_ context.Context, id int64) (*domain.Evacuation, error) {
	e, ok := f.evacs[id]
	if !ok {
		return nil, assert.AnError
	}
	cp := *e
	return &cp, nil
}

func (f *fakeStore) UpdateEvacuation(_ context.Context, evac *domain.Evacuation, notif *domain.Notification) error {
	f.evacs[evac.ID] = evac
	if notif != nil {
		f.notifs = append(f.notifs, notif)
	}
	return nil
}

func createPending(t *testing.T, svc *Service) *domain.Evacuation {
	t.Helper()
	userID := int64(10)
	evac, err := svc.Create(context.Background(), &dto.CreateEvacuationRequest{UserID: &userID})
	require.NoError(t, err)
	return evac
}

func TestCreateDefaultsAndNotifies(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	evac := createPending(t, svc)
	assert.Equal(t, domain.EvacuationPending, evac.Status)
	assert.Equal(t, domain.PriorityMedium, evac.Priority)
	assert.Equal(t, 1, evac.FamilyMembers)

	require.Len(t, fs.notifs, 1)
	assert.Equal(t, int64(10), fs.notifs[0].UserID)
	assert.Equal(t, "Назначена эвакуация", fs.notifs[0].Title)
	assert.True(t, fs.notifs[0].IsImportant)
}

func TestStatusChangeEmitsOneNotification(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)
	evac := createPending(t, svc)

	status := domain.EvacuationInProgress
	_, err := svc.Update(context.Background(), evac.ID, &dto.UpdateEvacuationRequest{Status: &status})
	require.NoError(t, err)
	assert.Len(t, fs.notifs, 2) // create + transition

	// patch without status change must not notify
	team := "Team A"
	_, err = svc.Update(context.Background(), evac.ID, &dto.UpdateEvacuationRequest{AssignedTeam: &team})
	require.NoError(t, err)
	assert.Len(t, fs.notifs, 2)

	// setting the same status again is not a change
	_, err = svc.Update(context.Background(), evac.ID, &dto.UpdateEvacuationRequest{Status: &status})
	require.NoError(t, err)
	assert.Len(t, fs.notifs, 2)
}

func TestCompletedAtSetOnce(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)
	evac := createPending(t, svc)

	completed := domain.EvacuationCompleted
	updated, err := svc.Update(context.Background(), evac.ID, &dto.UpdateEvacuationRequest{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	first := *updated.CompletedAt

	// leave and re-enter completed; the timestamp must survive
	pending := domain.EvacuationPending
	_, err = svc.Update(context.Background(), evac.ID, &dto.UpdateEvacuationRequest{Status: &pending})
	require.NoError(t, err)

	updated, err = svc.Update(context.Background(), evac.ID, &dto.UpdateEvacuationRequest{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, first, *updated.CompletedAt)
}

func TestUnknownStatusFallbackNotice(t *testing.T) {
	n := noticeFor(10, "archived")
	assert.Equal(t, "Обновление статуса эвакуации", n.Title)
	assert.Contains(t, n.Message, "archived")
}
