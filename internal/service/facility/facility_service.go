// Package facility owns hydro facilities and water bodies, including the
// flattened projections the dashboard map consumes.
package facility

import (
	"context"
	"sort"
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
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, req *dto.CreateFacilityRequest) (*domain.HydroFacility, error) {
	f := &domain.HydroFacility{
		Name:               req.Name,
		Type:               req.Type,
		Region:             req.Region,
		WaterBody:          req.WaterBody,
		WaterBodyID:        req.WaterBodyID,
		PassportYear:       req.PassportYear,
		Status:             "operational",
		TechnicalCondition: 3,
		RiskLevel:          "medium",
		YearBuilt:          req.YearBuilt,
		LastInspection:     parseDate(req.LastInspection),
		NextInspection:     parseDate(req.NextInspection),
		Coordinates:        req.Coordinates,
		RelatedSensorIDs:   req.RelatedSensorIDs,
		Description:        req.Description,
	}
	if req.Capacity != nil {
		f.Capacity = *req.Capacity
	}
	if req.Status != nil {
		f.Status = *req.Status
	}
	if req.TechnicalCondition != nil {
		f.TechnicalCondition = *req.TechnicalCondition
	}
	if req.RiskScore != nil {
		f.RiskScore = *req.RiskScore
	}
	if req.RiskLevel != nil {
		f.RiskLevel = *req.RiskLevel
	}
	if req.Issues != nil {
		f.Issues = *req.Issues
	}
	if req.Alerts != nil {
		f.Alerts = *req.Alerts
	}
	return svc.store.CreateFacility(ctx, f)
}

func (svc *Service) Get(ctx context.Context, id int64) (*domain.HydroFacility, error) {
	return svc.store.GetFacility(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id int64, req *dto.UpdateFacilityRequest) (*domain.HydroFacility, error) {
	f, err := svc.store.GetFacility(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Type != nil {
		f.Type = *req.Type
	}
	if req.Region != nil {
		f.Region = req.Region
	}
	if req.WaterBody != nil {
		f.WaterBody = req.WaterBody
	}
	if req.WaterBodyID != nil {
		f.WaterBodyID = req.WaterBodyID
	}
	if req.Capacity != nil {
		f.Capacity = *req.Capacity
	}
	if req.YearBuilt != nil {
		f.YearBuilt = req.YearBuilt
	}
	if req.PassportYear != nil {
		f.PassportYear = req.PassportYear
	}
	if req.Status != nil {
		f.Status = *req.Status
	}
	if req.TechnicalCondition != nil {
		f.TechnicalCondition = *req.TechnicalCondition
	}
	if req.RiskScore != nil {
		f.RiskScore = *req.RiskScore
	}
	if req.RiskLevel != nil {
		f.RiskLevel = *req.RiskLevel
	}
	if req.LastInspection != nil {
		f.LastInspection = parseDate(req.LastInspection)
	}
	if req.NextInspection != nil {
		f.NextInspection = parseDate(req.NextInspection)
	}
	if req.Issues != nil {
		f.Issues = *req.Issues
	}
	if req.Alerts != nil {
		f.Alerts = *req.Alerts
	}
	if req.Coordinates != nil {
		f.Coordinates = req.Coordinates
	}
	if req.RelatedSensorIDs != nil {
		f.RelatedSensorIDs = req.RelatedSensorIDs
	}
	if req.Description != nil {
		f.Description = req.Description
	}

	if err := svc.store.UpdateFacility(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete marks the facility inactive; inspection history stays queryable.
func (svc *Service) Delete(ctx context.Context, id int64) error {
	f, err := svc.store.GetFacility(ctx, id)
	if err != nil {
		return err
	}
	f.Status = "inactive"
	return svc.store.UpdateFacility(ctx, f)
}

// List pushes plain filters to SQL and applies the derived priority filter
// and sorts in memory.
func (svc *Service) List(ctx context.Context, filter *dto.ListFacilitiesFilter) ([]*domain.HydroFacility, error) {
	opts := store.ListFacilitiesOpts{}
	if filter.Region != "" {
		opts.RegionLike = &filter.Region
	}
	if filter.Type != "" {
		opts.Type = &filter.Type
	}
	if filter.Status != "" {
		opts.Status = &filter.Status
	}
	opts.MinRisk = filter.MinRisk
	opts.MaxRisk = filter.MaxRisk

	facilities, err := svc.store.ListFacilities(ctx, opts)
	if err != nil {
		return nil, err
	}

	nowYear := time.Now().Year()
	if filter.Priority != "" {
		filtered := facilities[:0]
		for _, f := range facilities {
			if f.Priority(nowYear).Level == filter.Priority {
				filtered = append(filtered, f)
			}
		}
		facilities = filtered
	}

	switch filter.SortBy {
	case "priority":
		sort.SliceStable(facilities, func(i, j int) bool {
			return facilities[i].Priority(nowYear).Score > facilities[j].Priority(nowYear).Score
		})
	case "risk":
		sort.SliceStable(facilities, func(i, j int) bool {
			return facilities[i].RiskScore > facilities[j].RiskScore
		})
	case "condition":
		sort.SliceStable(facilities, func(i, j int) bool {
			return facilities[i].TechnicalCondition > facilities[j].TechnicalCondition
		})
	}
	return facilities, nil
}

type PriorityStats struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// PriorityStats classifies all facilities by derived survey priority.
func (svc *Service) PriorityStats(ctx context.Context) (*PriorityStats, error) {
	facilities, err := svc.store.ListFacilities(ctx, store.ListFacilitiesOpts{})
	if err != nil {
		return nil, err
	}

	nowYear := time.Now().Year()
	stats := &PriorityStats{Total: len(facilities)}
	for _, f := range facilities {
		switch f.Priority(nowYear).Level {
		case "high":
			stats.High++
		case "medium":
			stats.Medium++
		default:
			stats.Low++
		}
	}
	return stats, nil
}

func (svc *Service) CreateWaterBody(ctx context.Context, req *dto.MapWaterBodyRequest) (*domain.WaterBody, error) {
	wb := &domain.WaterBody{
		Name:               req.Name,
		Type:               "river",
		Region:             &req.Region,
		TechnicalCondition: 3,
		Description:        req.Description,
	}
	if req.Type != nil {
		wb.Type = *req.Type
	}
	if req.Condition != nil {
		wb.TechnicalCondition = *req.Condition
	}
	if req.Lat != nil && req.Lng != nil {
		wb.Coordinates = &domain.LatLng{Lat: *req.Lat, Lng: *req.Lng}
	}
	return svc.store.CreateWaterBody(ctx, wb)
}

func (svc *Service) GetWaterBody(ctx context.Context, id int64) (*domain.WaterBody, error) {
	return svc.store.GetWaterBody(ctx, id)
}

func (svc *Service) UpdateWaterBody(ctx context.Context, id int64, req *dto.MapWaterBodyUpdateRequest) (*domain.WaterBody, error) {
	wb, err := svc.store.GetWaterBody(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		wb.Name = *req.Name
	}
	if req.Type != nil {
		wb.Type = *req.Type
	}
	if req.Region != nil {
		wb.Region = req.Region
	}
	if req.Condition != nil {
		wb.TechnicalCondition = *req.Condition
	}
	if req.Lat != nil && req.Lng != nil {
		wb.Coordinates = &domain.LatLng{Lat: *req.Lat, Lng: *req.Lng}
	}
	if req.Description != nil {
		wb.Description = req.Description
	}

	if err := svc.store.UpdateWaterBody(ctx, wb); err != nil {
		return nil, err
	}
	return wb, nil
}

func (svc *Service) DeleteWaterBody(ctx context.Context, id int64) error {
	return svc.store.DeleteWaterBody(ctx, id)
}

func (svc *Service) ListWaterBodies(ctx context.Context, region, wbType string) ([]*domain.WaterBody, error) {
	opts := store.ListWaterBodiesOpts{}
	if region != "" {
		opts.RegionLike = &region
	}
	if wbType != "" {
		opts.Type = &wbType
	}
	return svc.store.ListWaterBodies(ctx, opts)
}
