package dto

import "github.com/ospanovk/hydromon/internal/domain"

type CreateFacilityRequest struct {
	Name               string         `json:"name" validate:"required"`
	Type               string         `json:"type" validate:"required"`
	Region             *string        `json:"region"`
	WaterBody          *string        `json:"waterBody"`
	WaterBodyID        *int64         `json:"waterBodyId"`
	Capacity           *float64       `json:"capacity"`
	YearBuilt          *int           `json:"yearBuilt"`
	PassportYear       *int           `json:"passportYear"`
	Status             *string        `json:"status"`
	TechnicalCondition *int           `json:"technical_condition" validate:"omitempty,gte=1,lte=5"`
	RiskScore          *float64       `json:"risk_score" validate:"omitempty,gte=0,lte=100"`
	RiskLevel          *string        `json:"risk_level"`
	LastInspection     *string        `json:"lastInspection"`
	NextInspection     *string        `json:"nextInspection"`
	Issues             *int           `json:"issues"`
	Alerts             *int           `json:"alerts"`
	Coordinates        *domain.LatLng `json:"coordinates"`
	RelatedSensorIDs   []string       `json:"relatedSensors"`
	Description        *string        `json:"description"`
}

type UpdateFacilityRequest struct {
	Name               *string        `json:"name"`
	Type               *string        `json:"type"`
	Region             *string        `json:"region"`
	WaterBody          *string        `json:"waterBody"`
	WaterBodyID        *int64         `json:"waterBodyId"`
	Capacity           *float64       `json:"capacity"`
	YearBuilt          *int           `json:"yearBuilt"`
	PassportYear       *int           `json:"passportYear"`
	Status             *string        `json:"status"`
	TechnicalCondition *int           `json:"technical_condition" validate:"omitempty,gte=1,lte=5"`
	RiskScore          *float64       `json:"risk_score" validate:"omitempty,gte=0,lte=100"`
	RiskLevel          *string        `json:"risk_level"`
	LastInspection     *string        `json:"lastInspection"`
	NextInspection     *string        `json:"nextInspection"`
	Issues             *int           `json:"issues"`
	Alerts             *int           `json:"alerts"`
	Coordinates        *domain.LatLng `json:"coordinates"`
	RelatedSensorIDs   []string       `json:"relatedSensors"`
	Description        *string        `json:"description"`
}

type ListFacilitiesFilter struct {
	Region   string `query:"region"`
	Type     string `query:"type"`
	Status   string `query:"status"`
	MinRisk  *int   `query:"minRisk"`
	MaxRisk  *int   `query:"maxRisk"`
	Priority string `query:"priority"`
	SortBy   string `query:"sortBy"`
}

// Map admin endpoints accept the flat lat/lng form the dashboard map sends.
type MapWaterBodyRequest struct {
	Name        string   `json:"name" validate:"required"`
	Type        *string  `json:"type"`
	Region      string   `json:"region" validate:"required"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Condition   *int     `json:"condition" validate:"omitempty,gte=1,lte=5"`
	Description *string  `json:"description"`
}

type MapWaterBodyUpdateRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Region      *string  `json:"region"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Condition   *int     `json:"condition" validate:"omitempty,gte=1,lte=5"`
	Description *string  `json:"description"`
}
