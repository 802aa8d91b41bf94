package domain

import "time"

type ReportType = string

const (
	ReportWeekly     ReportType = "weekly"
	ReportMonthly    ReportType = "monthly"
	ReportIncident   ReportType = "incident"
	ReportEvacuation ReportType = "evacuation"
)

func ValidReportType(t string) bool {
	switch t {
	case ReportWeekly, ReportMonthly, ReportIncident, ReportEvacuation:
		return true
	}
	return false
}

type ReportStatus = string

const (
	ReportDraft     ReportStatus = "draft"
	ReportCompleted ReportStatus = "completed"
)

type ReportStats struct {
	Incidents   int `json:"incidents"`
	Critical    int `json:"critical"`
	Evacuations int `json:"evacuations"`
}

type Report struct {
	ID                   int64        `db:"id"`
	Title                string       `db:"title"`
	Period               string       `db:"period"`
	PeriodStart          *time.Time   `db:"period_start"`
	PeriodEnd            *time.Time   `db:"period_end"`
	Type                 ReportType   `db:"type"`
	Status               ReportStatus `db:"status"`
	AuthorID             int64        `db:"author_id"`
	AuthorName           string       `db:"author_name"`
	Stats                *ReportStats `db:"stats"`
	Content              *string      `db:"content"`
	FileSize             *string      `db:"file_size"`
	RelatedSensorIDs     []string     `db:"related_sensor_ids"`
	RelatedEvacuationIDs []int64      `db:"related_evacuation_ids"`
	RelatedZoneIDs       []string     `db:"related_zone_ids"`
	CompletedAt          *time.Time   `db:"completed_at"`
	CreatedAt            time.Time    `db:"created_at"`
	UpdatedAt            time.Time    `db:"updated_at"`
}

type ReportView struct {
	ID                   int64        `json:"id"`
	Title                string       `json:"title"`
	Period               string       `json:"period"`
	PeriodStart          *string      `json:"period_start"`
	PeriodEnd            *string      `json:"period_end"`
	Type                 string       `json:"type"`
	Status               string       `json:"status"`
	AuthorID             int64        `json:"author_id"`
	AuthorName           string       `json:"author_name"`
	Stats                *ReportStats `json:"stats"`
	Content              *string      `json:"content"`
	FileSize             *string      `json:"file_size"`
	RelatedSensorIDs     []string     `json:"related_sensor_ids"`
	RelatedEvacuationIDs []int64      `json:"related_evacuation_ids"`
	RelatedZoneIDs       []string     `json:"related_zone_ids"`
	CompletedAt          *string      `json:"completed_at"`
	CreatedAt            string       `json:"created_at"`
}

func (r *Report) View() *ReportView {
	v := &ReportView{
		ID:                   r.ID,
		Title:                r.Title,
		Period:               r.Period,
		Type:                 r.Type,
		Status:               r.Status,
		AuthorID:             r.AuthorID,
		AuthorName:           r.AuthorName,
		Stats:                r.Stats,
		Content:              r.Content,
		FileSize:             r.FileSize,
		RelatedSensorIDs:     r.RelatedSensorIDs,
		RelatedEvacuationIDs: r.RelatedEvacuationIDs,
		RelatedZoneIDs:       r.RelatedZoneIDs,
		CreatedAt:            r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.PeriodStart != nil {
		t := r.PeriodStart.UTC().Format("2006-01-02")
		v.PeriodStart = &t
	}
	if r.PeriodEnd != nil {
		t := r.PeriodEnd.UTC().Format("2006-01-02")
		v.PeriodEnd = &t
	}
	if r.CompletedAt != nil {
		t := r.CompletedAt.UTC().Format(time.RFC3339)
		v.CompletedAt = &t
	}
	return v
}
