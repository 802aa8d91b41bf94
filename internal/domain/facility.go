package domain

import "time"

// Priority is the derived urgency of a facility or water body survey.
type Priority struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// CalculatePriority derives the survey priority from the technical condition
// (1 best .. 5 worst) and the age of the passport:
//
//	score = (6 - condition)*3 + (nowYear - passportYear)
//
// score >= 12 is high, >= 6 medium, otherwise low. Without a passport year the
// score is 0 and the level is low.
func CalculatePriority(condition int, passportYear *int, nowYear int) Priority {
	if passportYear == nil || *passportYear == 0 {
		return Priority{Score: 0, Level: "low"}
	}

	score := (6-condition)*3 + (nowYear - *passportYear)
	level := "low"
	switch {
	case score >= 12:
		level = "high"
	case score >= 6:
		level = "medium"
	}
	return Priority{Score: score, Level: level}
}

type HydroFacility struct {
	ID                 int64      `db:"id"`
	Name               string     `db:"name"`
	Type               string     `db:"type"`
	Region             *string    `db:"region"`
	WaterBody          *string    `db:"water_body"`
	WaterBodyID        *int64     `db:"water_body_id"`
	Capacity           float64    `db:"capacity"`
	YearBuilt          *int       `db:"year_built"`
	PassportYear       *int       `db:"passport_year"`
	Status             string     `db:"status"`
	TechnicalCondition int        `db:"technical_condition"`
	RiskScore          float64    `db:"risk_score"`
	RiskLevel          string     `db:"risk_level"`
	LastInspection     *time.Time `db:"last_inspection"`
	NextInspection     *time.Time `db:"next_inspection"`
	Issues             int        `db:"issues"`
	Alerts             int        `db:"alerts"`
	Coordinates        *LatLng    `db:"coordinates"`
	RelatedSensorIDs   []string   `db:"related_sensor_ids"`
	Description        *string    `db:"description"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (f *HydroFacility) Priority(nowYear int) Priority {
	return CalculatePriority(f.TechnicalCondition, f.PassportYear, nowYear)
}

type HydroFacilityView struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Region             *string  `json:"region"`
	WaterBody          *string  `json:"waterBody"`
	WaterBodyID        *int64   `json:"waterBodyId"`
	Capacity           float64  `json:"capacity"`
	YearBuilt          *int     `json:"yearBuilt"`
	PassportYear       *int     `json:"passportYear"`
	Status             string   `json:"status"`
	TechnicalCondition int      `json:"technical_condition"`
	RiskScore          float64  `json:"risk_score"`
	RiskLevel          string   `json:"risk_level"`
	Priority           Priority `json:"priority"`
	LastInspection     *string  `json:"lastInspection"`
	NextInspection     *string  `json:"nextInspection"`
	Issues             int      `json:"issues"`
	Alerts             int      `json:"alerts"`
	Coordinates        *LatLng  `json:"coordinates"`
	RelatedSensorIDs   []string `json:"relatedSensors"`
	Description        *string  `json:"description"`
	UpdatedAt          string   `json:"updated_at"`
}

func (f *HydroFacility) View(nowYear int) *HydroFacilityView {
	v := &HydroFacilityView{
		ID:                 f.ID,
		Name:               f.Name,
		Type:               f.Type,
		Region:             f.Region,
		WaterBody:          f.WaterBody,
		WaterBodyID:        f.WaterBodyID,
		Capacity:           f.Capacity,
		YearBuilt:          f.YearBuilt,
		PassportYear:       f.PassportYear,
		Status:             f.Status,
		TechnicalCondition: f.TechnicalCondition,
		RiskScore:          f.RiskScore,
		RiskLevel:          f.RiskLevel,
		Priority:           f.Priority(nowYear),
		Issues:             f.Issues,
		Alerts:             f.Alerts,
		Coordinates:        f.Coordinates,
		RelatedSensorIDs:   f.RelatedSensorIDs,
		Description:        f.Description,
		UpdatedAt:          f.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if f.LastInspection != nil {
		t := f.LastInspection.UTC().Format(time.RFC3339)
		v.LastInspection = &t
	}
	if f.NextInspection != nil {
		t := f.NextInspection.UTC().Format(time.RFC3339)
		v.NextInspection = &t
	}
	return v
}
