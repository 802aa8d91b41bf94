package domain

import "time"

type SensorStatus = string

const (
	SensorActive      SensorStatus = "active"
	SensorInactive    SensorStatus = "inactive"
	SensorMaintenance SensorStatus = "maintenance"
	SensorError       SensorStatus = "error"
)

func ValidSensorStatus(s string) bool {
	switch s {
	case SensorActive, SensorInactive, SensorMaintenance, SensorError:
		return true
	}
	return false
}

// Danger classification of a water level against fixed thresholds.
const (
	DangerSafe      = "safe"
	DangerAttention = "attention"
	DangerDanger    = "danger"
	DangerCritical  = "critical"
)

// DangerLevel classifies a water level: >=6 critical, >=5 danger,
// >=4 attention, otherwise safe.
func DangerLevel(waterLevel float64) string {
	switch {
	case waterLevel >= 6.0:
		return DangerCritical
	case waterLevel >= 5.0:
		return DangerDanger
	case waterLevel >= 4.0:
		return DangerAttention
	default:
		return DangerSafe
	}
}

type Sensor struct {
	ID          string       `db:"id"`
	Name        string       `db:"name"`
	Location    string       `db:"location"`
	Latitude    float64      `db:"latitude"`
	Longitude   float64      `db:"longitude"`
	WaterLevel  float64      `db:"water_level"`
	Temperature *float64     `db:"temperature"`
	Status      SensorStatus `db:"status"`
	Description *string      `db:"description"`
	IsActive    bool         `db:"is_active"`
	LastUpdate  *time.Time   `db:"last_update"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

func (s *Sensor) DangerLevel() string {
	return DangerLevel(s.WaterLevel)
}

type SensorView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	WaterLevel  float64  `json:"water_level"`
	Temperature *float64 `json:"temperature"`
	Status      string   `json:"status"`
	DangerLevel string   `json:"danger_level"`
	Description *string  `json:"description"`
	LastUpdate  *string  `json:"last_update"`
	CreatedAt   string   `json:"created_at"`
}

func (s *Sensor) View() *SensorView {
	v := &SensorView{
		ID:          s.ID,
		Name:        s.Name,
		Location:    s.Location,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		WaterLevel:  s.WaterLevel,
		Temperature: s.Temperature,
		Status:      s.Status,
		DangerLevel: s.DangerLevel(),
		Description: s.Description,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
	}
	if s.LastUpdate != nil {
		t := s.LastUpdate.UTC().Format(time.RFC3339)
		v.LastUpdate = &t
	}
	return v
}

// SensorReading is immutable once created; the parent sensor mirrors the
// latest reading in its current fields.
type SensorReading struct {
	ID          int64     `db:"id"`
	SensorID    string    `db:"sensor_id"`
	WaterLevel  float64   `db:"water_level"`
	Temperature *float64  `db:"temperature"`
	Timestamp   time.Time `db:"timestamp"`
}

type SensorReadingView struct {
	ID          int64    `json:"id"`
	SensorID    string   `json:"sensor_id"`
	WaterLevel  float64  `json:"water_level"`
	Temperature *float64 `json:"temperature"`
	Timestamp   string   `json:"timestamp"`
}

func (r *SensorReading) View() *SensorReadingView {
	return &SensorReadingView{
		ID:          r.ID,
		SensorID:    r.SensorID,
		WaterLevel:  r.WaterLevel,
		Temperature: r.Temperature,
		Timestamp:   r.Timestamp.UTC().Format(time.RFC3339),
	}
}
