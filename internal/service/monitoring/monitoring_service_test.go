package monitoring

import (
	"context"
	"strings"
	"testing"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	store.Store

	sensors map[string]*domain.Sensor
	zones   map[string]*domain.RiskZone
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sensors: make(map[string]*domain.Sensor),
		zones:   make(map[string]*domain.RiskZone),
	}
}

func (f *fakeStore) CreateSensor(_ context.Context, s *domain.Sensor) error {
	f.sensors[s.ID] = s
	return nil
}

func (f *fakeStore) ListSensors(_ context.Context, opts store.ListSensorsOpts) ([]*domain.Sensor, error) {
	out := make([]*domain.Sensor, 0, len(f.sensors))
	for _, s := range f.sensors {
		if opts.OnlyActive && !s.IsActive {
			continue
		}
		if opts.Status != nil && s.Status != *opts.Status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStore) ListSensorsByIDs(_ context.Context, ids []string) ([]*domain.Sensor, error) {
	out := make([]*domain.Sensor, 0, len(ids))
	for _, id := range ids {
		if s, ok := f.sensors[id]; ok && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) GetZone(_ context.Context, id string) (*domain.RiskZone, error) {
	z, ok := f.zones[id]
	if !ok {
		return nil, assert.AnError
	}
	return z, nil
}

func addSensor(f *fakeStore, id string, level float64) {
	f.sensors[id] = &domain.Sensor{ID: id, Name: id, WaterLevel: level, Status: domain.SensorActive, IsActive: true}
}

func TestCreateSensorGeneratesID(t *testing.T) {
	fs := newFakeStore()
	svc := NewService(fs)

	lat, lng := 43.25, 76.95
	sensor, err := svc.CreateSensor(context.Background(), &dto.CreateSensorRequest{
		Name:      "Река Урал пост 1",
		Location:  "Атырау",
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sensor.ID)
	assert.True(t, sensor.IsActive)
	assert.Equal(t, domain.SensorActive, sensor.Status)

	// explicit id wins
	id := "custom-01"
	sensor2, err := svc.CreateSensor(context.Background(), &dto.CreateSensorRequest{
		ID:        &id,
		Name:      "Пост 2",
		Location:  "Атырау",
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-01", sensor2.ID)
}

func TestNewSensorIDIsSluggedAndUnique(t *testing.T) {
	a := newSensorID("Upper Dam Gauge")
	b := newSensorID("Upper Dam Gauge")
	assert.True(t, strings.HasPrefix(a, "upper-dam-gauge-"))
	assert.NotEqual(t, a, b)
}

func TestListSensorsDangerFilter(t *testing.T) {
	fs := newFakeStore()
	addSensor(fs, "s1", 2.0)
	addSensor(fs, "s2", 4.5)
	addSensor(fs, "s3", 6.2)
	svc := NewService(fs)

	sensors, err := svc.ListSensors(context.Background(), &dto.ListSensorsFilter{DangerLevel: domain.DangerCritical})
	require.NoError(t, err)
	require.Len(t, sensors, 1)
	assert.Equal(t, "s3", sensors[0].ID)
}

func TestCriticalSensors(t *testing.T) {
	fs := newFakeStore()
	addSensor(fs, "safe", 1.0)
	addSensor(fs, "attention", 4.2)
	addSensor(fs, "danger", 5.4)
	addSensor(fs, "critical", 7.0)
	svc := NewService(fs)

	sensors, err := svc.CriticalSensors(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(sensors))
	for _, s := range sensors {
		ids = append(ids, s.ID)
	}
	assert.ElementsMatch(t, []string{"danger", "critical"}, ids)
}

func TestGetZoneRecomputes(t *testing.T) {
	fs := newFakeStore()
	addSensor(fs, "s1", 6.5)
	fs.zones["z1"] = &domain.RiskZone{
		ID:               "z1",
		Threshold:        5.0,
		Status:           "monitoring",
		Trend:            "stable",
		RelatedSensorIDs: []string{"s1"},
		IsActive:         true,
	}
	svc := NewService(fs)

	zone, err := svc.GetZone(context.Background(), "z1")
	require.NoError(t, err)
	assert.Equal(t, "critical", zone.Status)
	assert.Equal(t, "rising", zone.Trend)
	assert.Equal(t, 6.5, zone.WaterLevel)
}
