package dto

import "github.com/ospanovk/hydromon/internal/domain"

type CreateReportRequest struct {
	Title                string              `json:"title" validate:"required"`
	Period               string              `json:"period" validate:"required"`
	PeriodStart          *string             `json:"period_start"`
	PeriodEnd            *string             `json:"period_end"`
	Type                 string              `json:"type" validate:"required,oneof=weekly monthly incident evacuation"`
	Status               *string             `json:"status" validate:"omitempty,oneof=draft completed"`
	Stats                *domain.ReportStats `json:"stats"`
	Content              *string             `json:"content"`
	FileSize             *string             `json:"file_size"`
	RelatedSensorIDs     []string            `json:"related_sensor_ids"`
	RelatedEvacuationIDs []int64             `json:"related_evacuation_ids"`
	RelatedZoneIDs       []string            `json:"related_zone_ids"`
}

type UpdateReportRequest struct {
	Title                *string             `json:"title"`
	Period               *string             `json:"period"`
	PeriodStart          *string             `json:"period_start"`
	PeriodEnd            *string             `json:"period_end"`
	Type                 *string             `json:"type" validate:"omitempty,oneof=weekly monthly incident evacuation"`
	Status               *string             `json:"status" validate:"omitempty,oneof=draft completed"`
	Stats                *domain.ReportStats `json:"stats"`
	Content              *string             `json:"content"`
	FileSize             *string             `json:"file_size"`
	RelatedSensorIDs     []string            `json:"related_sensor_ids"`
	RelatedEvacuationIDs []int64             `json:"related_evacuation_ids"`
	RelatedZoneIDs       []string            `json:"related_zone_ids"`
}

type ListReportsFilter struct {
	Type   string `query:"type"`
	Status string `query:"status"`
}
