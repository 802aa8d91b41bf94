// Package admin aggregates the operator dashboard and the stubbed provider
// endpoints (AI model list, notification templates, logs).
package admin

import (
	"context"
	"time"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/metrics"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

type Dashboard struct {
	Users       DashboardUsers  `json:"users"`
	Sensors     DashboardCounts `json:"sensors"`
	Evacuations DashboardCounts `json:"evacuations"`
	Facilities  DashboardCounts `json:"facilities"`
	WaterBodies DashboardCounts `json:"waterBodies"`
	Reports     DashboardCounts `json:"reports"`
	System      *metrics.System `json:"system"`
	GeneratedAt string          `json:"generated_at"`
}

type DashboardUsers struct {
	Total  int            `json:"total"`
	Active int            `json:"active"`
	ByRole map[string]int `json:"byRole"`
}

type DashboardCounts struct {
	Total    int `json:"total"`
	Critical int `json:"critical,omitempty"`
	Pending  int `json:"pending,omitempty"`
	Poor     int `json:"poor,omitempty"`
}

// Dashboard gathers the headline counts concurrently; they are independent
// reads so the errgroup just fans them out.
func (svc *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{
		Users:       DashboardUsers{ByRole: make(map[string]int)},
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	roles := []string{domain.RoleResident, domain.RoleExpert, domain.RoleEmergency, domain.RoleAdmin}
	byRole := make([]int, len(roles))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		d.Users.Total, err = svc.store.CountUsers(egCtx, store.CountUsersOpts{})
		return
	})
	eg.Go(func() (err error) {
		d.Users.Active, err = svc.store.CountUsers(egCtx, store.CountUsersOpts{OnlyActive: true})
		return
	})
	for i, role := range roles {
		i, role := i, role
		eg.Go(func() (err error) {
			byRole[i], err = svc.store.CountUsers(egCtx, store.CountUsersOpts{Role: &role, OnlyActive: true})
			return
		})
	}
	eg.Go(func() (err error) {
		d.Sensors.Total, err = svc.store.CountSensors(egCtx, nil)
		return
	})
	eg.Go(func() (err error) {
		status := domain.SensorError
		d.Sensors.Critical, err = svc.store.CountSensors(egCtx, &status)
		return
	})
	eg.Go(func() (err error) {
		d.Evacuations.Total, err = svc.store.CountEvacuations(egCtx, store.CountEvacuationsOpts{})
		return
	})
	eg.Go(func() (err error) {
		status := domain.EvacuationPending
		d.Evacuations.Pending, err = svc.store.CountEvacuations(egCtx, store.CountEvacuationsOpts{Status: &status})
		return
	})
	eg.Go(func() (err error) {
		d.Facilities.Total, err = svc.store.CountFacilities(egCtx, store.CountFacilitiesOpts{})
		return
	})
	eg.Go(func() (err error) {
		min := 4
		d.Facilities.Poor, err = svc.store.CountFacilities(egCtx, store.CountFacilitiesOpts{MinCondition: &min})
		return
	})
	eg.Go(func() (err error) {
		d.WaterBodies.Total, err = svc.store.CountWaterBodies(egCtx, nil)
		return
	})
	eg.Go(func() (err error) {
		min := 4
		d.WaterBodies.Poor, err = svc.store.CountWaterBodies(egCtx, &min)
		return
	})
	eg.Go(func() (err error) {
		d.Reports.Total, err = svc.store.CountReports(egCtx, store.ListReportsOpts{})
		return
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for i, role := range roles {
		d.Users.ByRole[role] = byRole[i]
	}
	d.System = metrics.Probe()
	return d, nil
}

type SystemAnalytics struct {
	System    *metrics.System `json:"system"`
	Timestamp string          `json:"timestamp"`
}

func (svc *Service) SystemAnalytics(ctx context.Context) *SystemAnalytics {
	return &SystemAnalytics{
		System:    metrics.Probe(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

type AIModel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	Accuracy float64 `json:"accuracy"`
}

// AIModels is a stub: model execution is out of scope, the dashboard only
// renders the list.
func (svc *Service) AIModels() []AIModel {
	return []AIModel{
		{ID: "flood-lstm-v2", Name: "Flood Level Forecast (LSTM)", Status: "ready", Accuracy: 0.91},
		{ID: "risk-gbdt-v1", Name: "Zone Risk Classifier", Status: "ready", Accuracy: 0.87},
		{ID: "anomaly-if-v1", Name: "Sensor Anomaly Detector", Status: "training", Accuracy: 0.78},
	}
}

type NotificationTemplate struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (svc *Service) NotificationTemplates() []NotificationTemplate {
	return []NotificationTemplate{
		{ID: "flood-warning", Type: "warning", Title: "Предупреждение о наводнении", Message: "Уровень воды в вашем районе приближается к критическому."},
		{ID: "evacuation-order", Type: "evacuation", Title: "Приказ об эвакуации", Message: "Объявлена эвакуация вашего района. Следуйте к пункту сбора."},
		{ID: "all-clear", Type: "info", Title: "Отбой тревоги", Message: "Угроза наводнения миновала. Можно возвращаться домой."},
	}
}

type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// Logs is a stub; there is no log storage behind it.
func (svc *Service) Logs() []LogEntry {
	now := time.Now().UTC()
	return []LogEntry{
		{Timestamp: now.Add(-2 * time.Minute).Format(time.RFC3339), Level: "info", Message: "sensor readings batch processed"},
		{Timestamp: now.Add(-10 * time.Minute).Format(time.RFC3339), Level: "warn", Message: "sensor offline longer than 1h"},
		{Timestamp: now.Add(-30 * time.Minute).Format(time.RFC3339), Level: "info", Message: "daily report generation finished"},
	}
}
