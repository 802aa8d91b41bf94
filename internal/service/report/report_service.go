package report

import (
	"context"
	"time"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, author *domain.User, req *dto.CreateReportRequest) (*domain.Report, error) {
	r := &domain.Report{
		Title:                req.Title,
		Period:               req.Period,
		PeriodStart:          parseDate(req.PeriodStart),
		PeriodEnd:            parseDate(req.PeriodEnd),
		Type:                 req.Type,
		Status:               domain.ReportDraft,
		AuthorID:             author.ID,
		AuthorName:           author.DisplayName(),
		Stats:                req.Stats,
		Content:              req.Content,
		FileSize:             req.FileSize,
		RelatedSensorIDs:     req.RelatedSensorIDs,
		RelatedEvacuationIDs: req.RelatedEvacuationIDs,
		RelatedZoneIDs:       req.RelatedZoneIDs,
	}
	if req.Status != nil {
		r.Status = *req.Status
	}
	if r.Status == domain.ReportCompleted {
		now := time.Now()
		r.CompletedAt = &now
	}
	return svc.store.CreateReport(ctx, r)
}

func (svc *Service) Get(ctx context.Context, id int64) (*domain.Report, error) {
	return svc.store.GetReport(ctx, id)
}

// Update patches the report. completed_at is pinned on the first transition
// to completed and survives later edits.
func (svc *Service) Update(ctx context.Context, id int64, req *dto.UpdateReportRequest) (*domain.Report, error) {
	r, err := svc.store.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		r.Title = *req.Title
	}
	if req.Period != nil {
		r.Period = *req.Period
	}
	if req.PeriodStart != nil {
		r.PeriodStart = parseDate(req.PeriodStart)
	}
	if req.PeriodEnd != nil {
		r.PeriodEnd = parseDate(req.PeriodEnd)
	}
	if req.Type != nil {
		r.Type = *req.Type
	}
	if req.Status != nil {
		r.Status = *req.Status
	}
	if req.Stats != nil {
		r.Stats = req.Stats
	}
	if req.Content != nil {
		r.Content = req.Content
	}
	if req.FileSize != nil {
		r.FileSize = req.FileSize
	}
	if req.RelatedSensorIDs != nil {
		r.RelatedSensorIDs = req.RelatedSensorIDs
	}
	if req.RelatedEvacuationIDs != nil {
		r.RelatedEvacuationIDs = req.RelatedEvacuationIDs
	}
	if req.RelatedZoneIDs != nil {
		r.RelatedZoneIDs = req.RelatedZoneIDs
	}

	if r.Status == domain.ReportCompleted && r.CompletedAt == nil {
		now := time.Now()
		r.CompletedAt = &now
	}

	if err := svc.store.UpdateReport(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (svc *Service) Delete(ctx context.Context, id int64) error {
	return svc.store.DeleteReport(ctx, id)
}

func (svc *Service) List(ctx context.Context, filter *dto.ListReportsFilter) ([]*domain.Report, error) {
	opts := store.ListReportsOpts{}
	if filter.Type != "" {
		opts.Type = &filter.Type
	}
	if filter.Status != "" {
		opts.Status = &filter.Status
	}
	return svc.store.ListReports(ctx, opts)
}

type Stats struct {
	Total    int            `json:"total"`
	ByType   map[string]int `json:"byType"`
	ByStatus map[string]int `json:"byStatus"`
}

func (svc *Service) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByType: make(map[string]int), ByStatus: make(map[string]int)}

	total, err := svc.store.CountReports(ctx, store.ListReportsOpts{})
	if err != nil {
		return nil, err
	}
	stats.Total = total

	for _, t := range []string{domain.ReportWeekly, domain.ReportMonthly, domain.ReportIncident, domain.ReportEvacuation} {
		t := t
		n, err := svc.store.CountReports(ctx, store.ListReportsOpts{Type: &t})
		if err != nil {
			return nil, err
		}
		stats.ByType[t] = n
	}
	for _, s := range []string{domain.ReportDraft, domain.ReportCompleted} {
		s := s
		n, err := svc.store.CountReports(ctx, store.ListReportsOpts{Status: &s})
		if err != nil {
			return nil, err
		}
		stats.ByStatus[s] = n
	}
	return stats, nil
}

// Template describes a canned report layout offered to the dashboard. The
// list is fixed; there is no template storage.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func Templates() []Template {
	return []Template{
		{ID: "weekly-summary", Name: "Еженедельная сводка", Type: domain.ReportWeekly, Description: "Сводка показаний датчиков и инцидентов за неделю"},
		{ID: "monthly-summary", Name: "Ежемесячный отчёт", Type: domain.ReportMonthly, Description: "Полный отчёт о мониторинге за месяц"},
		{ID: "incident", Name: "Отчёт об инциденте", Type: domain.ReportIncident, Description: "Разбор отдельного инцидента"},
		{ID: "evacuation", Name: "Отчёт об эвакуации", Type: domain.ReportEvacuation, Description: "Итоги эвакуационных мероприятий"},
	}
}
