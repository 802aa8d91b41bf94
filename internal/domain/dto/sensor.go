package dto

import "github.com/ospanovk/hydromon/internal/domain"

type CreateSensorRequest struct {
	ID          *string  `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	WaterLevel  *float64 `json:"water_level" validate:"omitempty,gte=0"`
	Temperature *float64 `json:"temperature"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active inactive maintenance error"`
	Description *string  `json:"description"`
}

type UpdateSensorRequest struct {
	Name        *string  `json:"name"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	WaterLevel  *float64 `json:"water_level" validate:"omitempty,gte=0"`
	Temperature *float64 `json:"temperature"`
	Status      *string  `json:"status" validate:"omitempty,oneof=active inactive maintenance error"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"is_active"`
}

type AddReadingRequest struct {
	WaterLevel  *float64 `json:"water_level" validate:"required,gte=0"`
	Temperature *float64 `json:"temperature"`
	Timestamp   *string  `json:"timestamp"`
}

type ListSensorsFilter struct {
	Status      string `query:"status"`
	DangerLevel string `query:"danger_level"`
}

type CreateZoneRequest struct {
	ID               *string         `json:"id"`
	Name             string          `json:"name" validate:"required"`
	Type             string          `json:"type" validate:"required,oneof=low medium high"`
	Location         *string         `json:"location"`
	Region           *string         `json:"region"`
	Coordinates      []domain.LatLng `json:"coordinates" validate:"required,min=3"`
	WaterLevel       *float64        `json:"water_level"`
	Threshold        *float64        `json:"threshold"`
	Trend            *string         `json:"trend"`
	ResidentsCount   *int            `json:"residents_count"`
	AffectedPop      *int            `json:"affected_population"`
	EvacuatedCount   *int            `json:"evacuated_count"`
	RelatedSensorIDs []string        `json:"related_sensor_ids"`
	Status           *string         `json:"status"`
	Description      *string         `json:"description"`
}

type UpdateZoneRequest struct {
	Name             *string         `json:"name"`
	Type             *string         `json:"type" validate:"omitempty,oneof=low medium high"`
	Location         *string         `json:"location"`
	Region           *string         `json:"region"`
	Coordinates      []domain.LatLng `json:"coordinates" validate:"omitempty,min=3"`
	WaterLevel       *float64        `json:"water_level"`
	Threshold        *float64        `json:"threshold"`
	Trend            *string         `json:"trend"`
	ResidentsCount   *int            `json:"residents_count"`
	AffectedPop      *int            `json:"affected_population"`
	EvacuatedCount   *int            `json:"evacuated_count"`
	RelatedSensorIDs []string        `json:"related_sensor_ids"`
	Status           *string         `json:"status"`
	Description      *string         `json:"description"`
}
