package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"github.com/ospanovk/hydromon/internal/service/auth"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	store.Store

	evacs map[int64]*domain.Evacuation
	users map[int64]*domain.User
}

func (f *fakeStore) GetEvacuation(_ context.Context, id int64) (*domain.Evacuation, error) {
	e, ok := f.evacs[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return e, nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return u, nil
}

func (f *fakeStore) CreateEvacuation(_ context.Context, evac *domain.Evacuation, _ *domain.Notification) (*domain.Evacuation, error) {
	evac.ID = int64(len(f.evacs) + 1)
	f.evacs[evac.ID] = evac
	return evac, nil
}

func newTestAPI(t *testing.T) (*APIService, *fakeStore) {
	t.Helper()
	viper.Set(constants.ViperJWTSecret, "test-secret")
	viper.Set(constants.ViperCORSOrigins, []string{"http://localhost:3000"})

	fs := &fakeStore{
		evacs: map[int64]*domain.Evacuation{
			1: {ID: 1, UserID: 10, Status: domain.EvacuationPending, Priority: domain.PriorityMedium},
			2: {ID: 2, UserID: 99, Status: domain.EvacuationInProgress, Priority: domain.PriorityHigh},
		},
		users: map[int64]*domain.User{
			10: {ID: 10, Email: "owner@example.com", Role: domain.RoleResident, IsActive: true},
			11: {ID: 11, Email: "other@example.com", Role: domain.RoleResident, IsActive: true},
			12: {ID: 12, Email: "ops@example.com", Role: domain.RoleEmergency, IsActive: true},
		},
	}

	svc, err := NewAPIService(fs)
	require.NoError(t, err)
	return svc, fs
}

func tokenFor(t *testing.T, user *domain.User) string {
	t.Helper()
	access, _, err := auth.IssueTokens(user)
	require.NoError(t, err)
	return access
}

func do(svc *APIService, method, path, token, body string) *httptest.ResponseRecorder {
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	svc.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var resp domain.ErrorResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestEvacuationOwnership(t *testing.T) {
	svc, fs := newTestAPI(t)

	t.Run("owner can read", func(t *testing.T) {
		rec := do(svc, http.MethodGet, "/api/evacuations/1", tokenFor(t, fs.users[10]), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other resident gets 403", func(t *testing.T) {
		rec := do(svc, http.MethodGet, "/api/evacuations/1", tokenFor(t, fs.users[11]), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		resp := decodeError(t, rec)
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("emergency staff can read", func(t *testing.T) {
		rec := do(svc, http.MethodGet, "/api/evacuations/1", tokenFor(t, fs.users[12]), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("staff read survives a vanished owner", func(t *testing.T) {
		rec := do(svc, http.MethodGet, "/api/evacuations/2", tokenFor(t, fs.users[12]), "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestEvacuationCreateIsStaffOnly(t *testing.T) {
	svc, fs := newTestAPI(t)

	t.Run("resident gets 403", func(t *testing.T) {
		rec := do(svc, http.MethodPost, "/api/evacuations", tokenFor(t, fs.users[10]), `{}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("resident cannot file for themselves either", func(t *testing.T) {
		rec := do(svc, http.MethodPost, "/api/evacuations", tokenFor(t, fs.users[10]), `{"user_id":10}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff must name the user", func(t *testing.T) {
		rec := do(svc, http.MethodPost, "/api/evacuations", tokenFor(t, fs.users[12]), `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("staff creates for a resident", func(t *testing.T) {
		rec := do(svc, http.MethodPost, "/api/evacuations", tokenFor(t, fs.users[12]), `{"user_id":10}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestAuthRequired(t *testing.T) {
	svc, _ := newTestAPI(t)

	rec := do(svc, http.MethodGet, "/api/evacuations/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(svc, http.MethodGet, "/api/evacuations/1", "garbage-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGuard(t *testing.T) {
	svc, fs := newTestAPI(t)

	body := `{"name":"Пост 1","location":"Атырау","latitude":43.2,"longitude":76.9}`
	rec := do(svc, http.MethodPost, "/api/sensors", tokenFor(t, fs.users[10]), body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestValidationRejectsBadCoordinates(t *testing.T) {
	svc, fs := newTestAPI(t)

	body := `{"name":"Пост 1","location":"Атырау","latitude":95.0,"longitude":76.9}`
	rec := do(svc, http.MethodPost, "/api/sensors", tokenFor(t, fs.users[12]), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.False(t, resp.Success)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestAPI(t)

	rec := do(svc, http.MethodPost, "/api/auth/register", "", `{"email":"not-an-email","password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
