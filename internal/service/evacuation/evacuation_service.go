// Package evacuation manages evacuation requests. Every status change emits
// exactly one notification to the owning user inside the same transaction as
// the row update.
package evacuation

import (
	"context"
	"fmt"
	"time"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/logger"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// statusNotice holds the fixed title/message per target status. Statuses
// outside the table fall back to a generic text.
var statusNotice = map[string][2]string{
	domain.EvacuationPending:    {"Назначена эвакуация", "Вам назначена эвакуация. Ожидайте прибытия бригады."},
	domain.EvacuationInProgress: {"Эвакуация началась", "Бригада эвакуации направляется к вам. Будьте готовы."},
	domain.EvacuationCompleted:  {"Эвакуация завершена", "Вы успешно эвакуированы. Спасибо за сотрудничество."},
	domain.EvacuationCancelled:  {"Эвакуация отменена", "Эвакуация отменена. Вы можете оставаться дома."},
}

func noticeFor(userID int64, status string) *domain.Notification {
	title, message := "Обновление статуса эвакуации", fmt.Sprintf("Статус эвакуации изменен на: %s", status)
	if n, ok := statusNotice[status]; ok {
		title, message = n[0], n[1]
	}
	return &domain.Notification{
		UserID:      userID,
		Type:        "evacuation",
		Title:       title,
		Message:     message,
		IsImportant: true,
	}
}

func (svc *Service) Create(ctx context.Context, req *dto.CreateEvacuationRequest) (*domain.Evacuation, error) {
	if _, err := svc.store.GetUserByID(ctx, *req.UserID); err != nil {
		return nil, err
	}

	evac := &domain.Evacuation{
		UserID:          *req.UserID,
		Status:          domain.EvacuationPending,
		Priority:        domain.PriorityMedium,
		EvacuationPoint: req.EvacuationPoint,
		AssignedTeam:    req.AssignedTeam,
		FamilyMembers:   1,
		SpecialNeeds:    req.SpecialNeeds,
		Notes:           req.Notes,
	}
	if req.Priority != nil {
		evac.Priority = *req.Priority
	}
	if req.FamilyMembers != nil {
		evac.FamilyMembers = *req.FamilyMembers
	}
	if req.HasDisabilities != nil {
		evac.HasDisabilities = *req.HasDisabilities
	}
	if req.HasPets != nil {
		evac.HasPets = *req.HasPets
	}

	evac, err := svc.store.CreateEvacuation(ctx, evac, noticeFor(evac.UserID, evac.Status))
	if err != nil {
		return nil, err
	}
	logger.Infof(ctx, "evacuation created: id [%d] user [%d]", evac.ID, evac.UserID)
	return evac, nil
}

func (svc *Service) Get(ctx context.Context, id int64) (*domain.Evacuation, error) {
	return svc.store.GetEvacuation(ctx, id)
}

// Update applies the patch. Transitions between statuses are unrestricted;
// the first arrival at completed pins completed_at and later transitions do
// not touch it.
func (svc *Service) Update(ctx context.Context, id int64, req *dto.UpdateEvacuationRequest) (*domain.Evacuation, error) {
	evac, err := svc.store.GetEvacuation(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := evac.Status
	if req.Status != nil {
		evac.Status = *req.Status
	}
	if req.EvacuationPoint != nil {
		evac.EvacuationPoint = req.EvacuationPoint
	}
	if req.AssignedTeam != nil {
		evac.AssignedTeam = req.AssignedTeam
	}
	if req.Priority != nil {
		evac.Priority = *req.Priority
	}
	if req.FamilyMembers != nil {
		evac.FamilyMembers = *req.FamilyMembers
	}
	if req.HasDisabilities != nil {
		evac.HasDisabilities = *req.HasDisabilities
	}
	if req.HasPets != nil {
		evac.HasPets = *req.HasPets
	}
	if req.SpecialNeeds != nil {
		evac.SpecialNeeds = req.SpecialNeeds
	}
	if req.Notes != nil {
		evac.Notes = req.Notes
	}

	if evac.Status == domain.EvacuationCompleted && evac.CompletedAt == nil {
		now := time.Now()
		evac.CompletedAt = &now
	}

	var notice *domain.Notification
	if evac.Status != oldStatus {
		notice = noticeFor(evac.UserID, evac.Status)
	}

	if err := svc.store.UpdateEvacuation(ctx, evac, notice); err != nil {
		return nil, err
	}
	if notice != nil {
		logger.Infof(ctx, "evacuation [%d]: %s -> %s", evac.ID, oldStatus, evac.Status)
	}
	return evac, nil
}

func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.store.DeleteEvacuation(ctx, id)
}

func (svc *Service) List(ctx context.Context, userID *int64, filter *dto.ListEvacuationsFilter) ([]*domain.Evacuation, error) {
	opts := store.ListEvacuationsOpts{UserID: userID}
	if filter.Status != "" {
		opts.Status = &filter.Status
	}
	if filter.Priority != "" {
		opts.Priority = &filter.Priority
	}
	return svc.store.ListEvacuations(ctx, opts)
}

// WithUsers attaches the owner block to each evacuation for staff listings.
func (svc *Service) WithUsers(ctx context.Context, evacs []*domain.Evacuation) ([]*domain.EvacuationView, error) {
	views := make([]*domain.EvacuationView, 0, len(evacs))
	users := make(map[int64]*domain.User)
	for _, e := range evacs {
		v := e.View()
		u, ok := users[e.UserID]
		if !ok {
			var err error
			u, err = svc.store.GetUserByID(ctx, e.UserID)
			if err != nil {
				u = nil
			}
			users[e.UserID] = u
		}
		if u != nil {
			v.User = &domain.EvacuationUser{ID: u.ID, FullName: u.FullName, Phone: u.Phone, Address: u.Address}
		}
		views = append(views, v)
	}
	return views, nil
}

type Stats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"byStatus"`
	ByPriority   map[string]int `json:"byPriority"`
	SpecialCases map[string]int `json:"specialCases"`
}

func (svc *Service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ByStatus:     make(map[string]int),
		ByPriority:   make(map[string]int),
		SpecialCases: make(map[string]int),
	}

	statuses := []string{domain.EvacuationPending, domain.EvacuationInProgress, domain.EvacuationCompleted, domain.EvacuationCancelled}
	priorities := []string{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityCritical}
	byStatus := make([]int, len(statuses))
	byPriority := make([]int, len(priorities))
	var disabilities, pets int

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		stats.Total, err = svc.store.CountEvacuations(egCtx, store.CountEvacuationsOpts{})
		return
	})
	for i, status := range statuses {
		i, status := i, status
		eg.Go(func() (err error) {
			byStatus[i], err = svc.store.CountEvacuations(egCtx, store.CountEvacuationsOpts{Status: &status})
			return
		})
	}
	for i, priority := range priorities {
		i, priority := i, priority
		eg.Go(func() (err error) {
			byPriority[i], err = svc.store.CountEvacuations(egCtx, store.CountEvacuationsOpts{Priority: &priority})
			return
		})
	}
	yes := true
	eg.Go(func() (err error) {
		disabilities, err = svc.store.CountEvacuations(egCtx, store.CountEvacuationsOpts{HasDisabilities: &yes})
		return
	})
	eg.Go(func() (err error) {
		pets, err = svc.store.CountEvacuations(egCtx, store.CountEvacuationsOpts{HasPets: &yes})
		return
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for i, status := range statuses {
		stats.ByStatus[status] = byStatus[i]
	}
	for i, priority := range priorities {
		stats.ByPriority[priority] = byPriority[i]
	}
	stats.SpecialCases["withDisabilities"] = disabilities
	stats.SpecialCases["withPets"] = pets
	return stats, nil
}
