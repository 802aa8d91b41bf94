package notification

import (
	"context"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/logger"
	"github.com/ospanovk/hydromon/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*domain.Notification, error) {
	if _, err := svc.store.GetUserByID(ctx, *req.UserID); err != nil {
		return nil, err
	}

	notif := &domain.Notification{
		UserID:       *req.UserID,
		Type:         req.Type,
		Title:        req.Title,
		Message:      req.Message,
		SensorID:     req.SensorID,
		EvacuationID: req.EvacuationID,
	}
	if req.IsImportant != nil {
		notif.IsImportant = *req.IsImportant
	}
	return svc.store.CreateNotification(ctx, notif)
}

// Broadcast fans one message out to every active user matching the role
// filter. The inserts go in a single batched statement.
func (svc *Service) Broadcast(ctx context.Context, req *dto.BroadcastRequest) (int, error) {
	opts := store.ListUsersOpts{OnlyActive: true}
	if req.RoleFilter != nil && *req.RoleFilter != "all" {
		role := domain.NormalizeRole(*req.RoleFilter)
		opts.Role = &role
	}

	users, err := svc.store.ListUsers(ctx, opts)
	if err != nil {
		return 0, err
	}

	important := false
	if req.IsImportant != nil {
		important = *req.IsImportant
	}

	notifs := make([]*domain.Notification, 0, len(users))
	for _, u := range users {
		notifs = append(notifs, &domain.Notification{
			UserID:      u.ID,
			Type:        req.Type,
			Title:       req.Title,
			Message:     req.Message,
			SensorID:    req.SensorID,
			IsImportant: important,
		})
	}

	sent, err := svc.store.CreateNotifications(ctx, notifs)
	if err != nil {
		return 0, err
	}
	logger.Infof(ctx, "broadcast: sent [%d] notifications", sent)
	return sent, nil
}

func (svc *Service) Get(ctx context.Context, id, userID int64) (*domain.Notification, error) {
	return svc.store.GetNotification(ctx, id, userID)
}

func (svc *Service) List(ctx context.Context, userID int64, unreadOnly bool, limit int) ([]*domain.Notification, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return svc.store.ListNotifications(ctx, store.ListNotificationsOpts{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		Limit:      limit,
	})
}

func (svc *Service) MarkRead(ctx context.Context, id, userID int64) (*domain.Notification, error) {
	return svc.store.MarkNotificationRead(ctx, id, userID)
}

func (svc *Service) MarkAllRead(ctx context.Context, userID int64) (int, error) {
	return svc.store.MarkAllNotificationsRead(ctx, userID)
}

func (svc *Service) Delete(ctx context.Context, id, userID int64) error {
	return svc.store.DeleteNotification(ctx, id, userID)
}

type Stats struct {
	Total     int            `json:"total"`
	Unread    int            `json:"unread"`
	Important int            `json:"important"`
	ByType    map[string]int `json:"byType"`
}

func (svc *Service) Stats(ctx context.Context, userID int64) (*Stats, error) {
	total, err := svc.store.CountNotifications(ctx, userID, false, false)
	if err != nil {
		return nil, err
	}
	unread, err := svc.store.CountNotifications(ctx, userID, true, false)
	if err != nil {
		return nil, err
	}
	important, err := svc.store.CountNotifications(ctx, userID, false, true)
	if err != nil {
		return nil, err
	}
	byType, err := svc.store.NotificationTypeCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Stats{Total: total, Unread: unread, Important: important, ByType: byType}, nil
}
