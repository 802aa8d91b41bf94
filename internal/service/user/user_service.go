package user

import (
	"context"
	"errors"
	"time"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) List(ctx context.Context, filter *dto.ListUsersFilter) ([]*domain.User, error) {
	opts := store.ListUsersOpts{OnlyActive: true}
	if filter.Role != "" {
		role := domain.NormalizeRole(filter.Role)
		opts.Role = &role
	}
	if filter.Search != "" {
		opts.Search = &filter.Search
	}
	return svc.store.ListUsers(ctx, opts)
}

// Residents returns the audience for evacuation planning.
func (svc *Service) Residents(ctx context.Context) ([]*domain.User, error) {
	role := domain.RoleResident
	return svc.store.ListUsers(ctx, store.ListUsersOpts{OnlyActive: true, Role: &role})
}

func (svc *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := svc.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (svc *Service) Create(ctx context.Context, req *dto.CreateUserRequest) (*domain.User, error) {
	if _, err := svc.store.GetUserByEmail(ctx, req.Email); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrEmailTaken
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleResident
	if req.Role != nil {
		role = domain.NormalizeRole(*req.Role)
	}
	verified := false
	if req.IsVerified != nil {
		verified = *req.IsVerified
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     &req.FullName,
		Role:         role,
		Phone:        req.Phone,
		Address:      req.Address,
		IsActive:     true,
		IsVerified:   verified,
	}
	return svc.store.CreateUser(ctx, user)
}

// Update patches the record. Role changes are accepted only from an admin
// actor; other fields follow the usual ownership rules checked by the handler.
func (svc *Service) Update(ctx context.Context, id int64, actorRole string, req *dto.UpdateUserRequest) (*domain.User, error) {
	user, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.Role != nil {
		if domain.NormalizeRole(actorRole) != domain.RoleAdmin {
			return nil, constants.ErrAdminRequired
		}
		user.Role = domain.NormalizeRole(*req.Role)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := svc.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete deactivates the account; the row stays for audit history.
func (svc *Service) Delete(ctx context.Context, id int64) error {
	user, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = false
	return svc.store.UpdateUser(ctx, user)
}

type Stats struct {
	Total      int            `json:"total"`
	Active     int            `json:"active"`
	Verified   int            `json:"verified"`
	ByRole     map[string]int `json:"byRole"`
	NewLast30d int            `json:"newLast30Days"`
	ActiveWeek int            `json:"activeLastWeek"`
}

// Stats fans the count queries out concurrently; each count is an independent
// read so the group just collects them.
func (svc *Service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByRole: make(map[string]int)}
	roles := []string{domain.RoleResident, domain.RoleExpert, domain.RoleEmergency, domain.RoleAdmin}
	byRole := make([]int, len(roles))

	weekAgo := time.Now().AddDate(0, 0, -7)
	monthAgo := time.Now().AddDate(0, 0, -30)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		stats.Total, err = svc.store.CountUsers(egCtx, store.CountUsersOpts{})
		return
	})
	eg.Go(func() (err error) {
		stats.Active, err = svc.store.CountUsers(egCtx, store.CountUsersOpts{OnlyActive: true})
		return
	})
	eg.Go(func() (err error) {
		stats.Verified, err = svc.store.CountUsers(egCtx, store.CountUsersOpts{OnlyVerified: true})
		return
	})
	eg.Go(func() (err error) {
		stats.NewLast30d, err = svc.store.CountUsers(egCtx, store.CountUsersOpts{CreatedSince: &monthAgo})
		return
	})
	eg.Go(func() (err error) {
		stats.ActiveWeek, err = svc.store.CountUsers(egCtx, store.CountUsersOpts{LoginSince: &weekAgo})
		return
	})
	for i, role := range roles {
		i, role := i, role
		eg.Go(func() (err error) {
			byRole[i], err = svc.store.CountUsers(egCtx, store.CountUsersOpts{Role: &role, OnlyActive: true})
			return
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for i, role := range roles {
		stats.ByRole[role] = byRole[i]
	}
	return stats, nil
}
