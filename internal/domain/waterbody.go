package domain

import "time"

type WaterBody struct {
	ID                 int64     `db:"id"`
	Name               string    `db:"name"`
	Type               string    `db:"type"`
	Region             *string   `db:"region"`
	WaterType          *string   `db:"water_type"`
	HasFauna           bool      `db:"has_fauna"`
	PassportYear       *int      `db:"passport_year"`
	TechnicalCondition int       `db:"technical_condition"`
	Coordinates        *LatLng   `db:"coordinates"`
	Area               *float64  `db:"area"`
	MaxDepth           *float64  `db:"max_depth"`
	AverageDepth       *float64  `db:"average_depth"`
	Volume             *float64  `db:"volume"`
	Length             *float64  `db:"length"`
	RelatedSensorIDs   []string  `db:"related_sensor_ids"`
	RelatedFacilityIDs []int64   `db:"related_facility_ids"`
	Description        *string   `db:"description"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// Priority uses the same formula as hydro facilities.
func (w *WaterBody) Priority(nowYear int) Priority {
	return CalculatePriority(w.TechnicalCondition, w.PassportYear, nowYear)
}

type WaterBodyView struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Region             *string  `json:"region"`
	WaterType          *string  `json:"waterType"`
	HasFauna           bool     `json:"hasFauna"`
	PassportYear       *int     `json:"passportYear"`
	TechnicalCondition int      `json:"technical_condition"`
	Priority           Priority `json:"priority"`
	Coordinates        *LatLng  `json:"coordinates"`
	Area               *float64 `json:"area"`
	MaxDepth           *float64 `json:"maxDepth"`
	AverageDepth       *float64 `json:"averageDepth"`
	Volume             *float64 `json:"volume"`
	Length             *float64 `json:"length"`
	RelatedSensorIDs   []string `json:"relatedSensors"`
	RelatedFacilityIDs []int64  `json:"relatedFacilities"`
	Description        *string  `json:"description"`
	UpdatedAt          string   `json:"updated_at"`
}

func (w *WaterBody) View(nowYear int) *WaterBodyView {
	return &WaterBodyView{
		ID:                 w.ID,
		Name:               w.Name,
		Type:               w.Type,
		Region:             w.Region,
		WaterType:          w.WaterType,
		HasFauna:           w.HasFauna,
		PassportYear:       w.PassportYear,
		TechnicalCondition: w.TechnicalCondition,
		Priority:           w.Priority(nowYear),
		Coordinates:        w.Coordinates,
		Area:               w.Area,
		MaxDepth:           w.MaxDepth,
		AverageDepth:       w.AverageDepth,
		Volume:             w.Volume,
		Length:             w.Length,
		RelatedSensorIDs:   w.RelatedSensorIDs,
		RelatedFacilityIDs: w.RelatedFacilityIDs,
		Description:        w.Description,
		UpdatedAt:          w.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
