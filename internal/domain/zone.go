package domain

import "time"

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ZoneType = string

const (
	ZoneLow    ZoneType = "low"
	ZoneMedium ZoneType = "medium"
	ZoneHigh   ZoneType = "high"
)

func ValidZoneType(t string) bool {
	return t == ZoneLow || t == ZoneMedium || t == ZoneHigh
}

// RiskZone is a polygon of flood risk tied to one or more sensors. The stored
// water_level/trend/status columns are opportunistic caches; Recompute derives
// the current values from the related sensors.
type RiskZone struct {
	ID                 string    `db:"id"`
	Name               string    `db:"name"`
	Type               ZoneType  `db:"type"`
	Location           *string   `db:"location"`
	Region             *string   `db:"region"`
	Coordinates        []LatLng  `db:"coordinates"`
	WaterLevel         float64   `db:"water_level"`
	Threshold          float64   `db:"threshold"`
	Trend              string    `db:"trend"`
	ResidentsCount     int       `db:"residents_count"`
	AffectedPopulation int       `db:"affected_population"`
	EvacuatedCount     int       `db:"evacuated_count"`
	RelatedSensorIDs   []string  `db:"related_sensor_ids"`
	Status             string    `db:"status"`
	Description        *string   `db:"description"`
	IsActive           bool      `db:"is_active"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// Recompute refreshes the cached water level, trend and status from the
// related sensors' current readings. The worst danger level among the sensors
// drives the zone status; the trend compares the max level to the threshold.
func (z *RiskZone) Recompute(sensors []*Sensor) {
	if len(sensors) == 0 {
		return
	}

	maxLevel := 0.0
	worst := DangerSafe
	for _, s := range sensors {
		if s.WaterLevel > maxLevel {
			maxLevel = s.WaterLevel
		}
		if dangerRank(s.DangerLevel()) > dangerRank(worst) {
			worst = s.DangerLevel()
		}
	}

	z.WaterLevel = maxLevel
	switch worst {
	case DangerCritical:
		z.Status = "critical"
	case DangerDanger:
		z.Status = "warning"
	default:
		z.Status = "monitoring"
	}

	switch {
	case z.Threshold > 0 && maxLevel >= z.Threshold:
		z.Trend = "rising"
	case z.Threshold > 0 && maxLevel < z.Threshold*0.8:
		z.Trend = "falling"
	default:
		z.Trend = "stable"
	}
}

func dangerRank(level string) int {
	switch level {
	case DangerCritical:
		return 3
	case DangerDanger:
		return 2
	case DangerAttention:
		return 1
	default:
		return 0
	}
}

type RiskZoneView struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Location           *string  `json:"location"`
	Region             *string  `json:"region"`
	Coordinates        []LatLng `json:"coordinates"`
	WaterLevel         float64  `json:"water_level"`
	Threshold          float64  `json:"threshold"`
	Trend              string   `json:"trend"`
	ResidentsCount     int      `json:"residents_count"`
	AffectedPopulation int      `json:"affected_population"`
	EvacuatedCount     int      `json:"evacuated_count"`
	RelatedSensorIDs   []string `json:"related_sensor_ids"`
	Status             string   `json:"status"`
	Description        *string  `json:"description"`
	UpdatedAt          string   `json:"updated_at"`
}

func (z *RiskZone) View() *RiskZoneView {
	return &RiskZoneView{
		ID:                 z.ID,
		Name:               z.Name,
		Type:               z.Type,
		Location:           z.Location,
		Region:             z.Region,
		Coordinates:        z.Coordinates,
		WaterLevel:         z.WaterLevel,
		Threshold:          z.Threshold,
		Trend:              z.Trend,
		ResidentsCount:     z.ResidentsCount,
		AffectedPopulation: z.AffectedPopulation,
		EvacuatedCount:     z.EvacuatedCount,
		RelatedSensorIDs:   z.RelatedSensorIDs,
		Status:             z.Status,
		Description:        z.Description,
		UpdatedAt:          z.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
