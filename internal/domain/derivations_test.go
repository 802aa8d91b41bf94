package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDangerLevel(t *testing.T) {
	tests := []struct {
		level float64
		want  string
	}{
		{0, DangerSafe},
		{3.99, DangerSafe},
		{4.0, DangerAttention},
		{4.99, DangerAttention},
		{5.0, DangerDanger},
		{5.99, DangerDanger},
		{6.0, DangerCritical},
		{12.5, DangerCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DangerLevel(tt.level), "level %.2f", tt.level)
	}
}

func TestCalculatePriority(t *testing.T) {
	year := 2025

	t.Run("no passport year", func(t *testing.T) {
		p := CalculatePriority(5, nil, year)
		assert.Equal(t, Priority{Score: 0, Level: "low"}, p)

		zero := 0
		p = CalculatePriority(5, &zero, year)
		assert.Equal(t, Priority{Score: 0, Level: "low"}, p)
	})

	t.Run("levels", func(t *testing.T) {
		py := 2020 // 5 years old
		// (6-5)*3 + 5 = 8 -> medium
		assert.Equal(t, Priority{Score: 8, Level: "medium"}, CalculatePriority(5, &py, year))
		// (6-1)*3 + 5 = 20 -> high
		assert.Equal(t, Priority{Score: 20, Level: "high"}, CalculatePriority(1, &py, year))

		recent := 2024
		// (6-5)*3 + 1 = 4 -> low
		assert.Equal(t, Priority{Score: 4, Level: "low"}, CalculatePriority(5, &recent, year))
		// (6-3)*3 + 1 = 10 -> medium
		assert.Equal(t, Priority{Score: 10, Level: "medium"}, CalculatePriority(3, &recent, year))
	})
}

func TestZoneRecompute(t *testing.T) {
	zone := &RiskZone{Threshold: 5.0, Status: "monitoring", Trend: "stable"}

	t.Run("no sensors keeps cached values", func(t *testing.T) {
		z := *zone
		z.Recompute(nil)
		assert.Equal(t, "monitoring", z.Status)
	})

	t.Run("critical sensor drives status", func(t *testing.T) {
		z := *zone
		z.Recompute([]*Sensor{
			{WaterLevel: 2.0},
			{WaterLevel: 6.5},
		})
		assert.Equal(t, "critical", z.Status)
		assert.Equal(t, 6.5, z.WaterLevel)
		assert.Equal(t, "rising", z.Trend)
	})

	t.Run("danger maps to warning", func(t *testing.T) {
		z := *zone
		z.Recompute([]*Sensor{{WaterLevel: 5.2}})
		assert.Equal(t, "warning", z.Status)
	})

	t.Run("low level falls", func(t *testing.T) {
		z := *zone
		z.Recompute([]*Sensor{{WaterLevel: 1.0}})
		assert.Equal(t, "monitoring", z.Status)
		assert.Equal(t, "falling", z.Trend)
	})

	t.Run("between 80 percent and threshold is stable", func(t *testing.T) {
		z := *zone
		z.Recompute([]*Sensor{{WaterLevel: 4.5}})
		assert.Equal(t, "stable", z.Trend)
	})
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleResident, NormalizeRole("user"))
	assert.Equal(t, RoleEmergency, NormalizeRole("mchs"))
	assert.Equal(t, RoleAdmin, NormalizeRole("admin"))
	assert.Equal(t, RoleExpert, NormalizeRole("expert"))
}
