package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
)

var sensorColumns = []string{
	"id", "name", "location", "latitude", "longitude", "water_level",
	"temperature", "status", "description", "is_active", "last_update",
	"created_at", "updated_at",
}

var readingColumns = []string{"id", "sensor_id", "water_level", "temperature", "timestamp"}

func (s *store) CreateSensor(ctx context.Context, sensor *domain.Sensor) error {
	query := builder().Insert(tableSensors).
		Columns("id", "name", "location", "latitude", "longitude", "water_level",
			"temperature", "status", "description", "is_active").
		Values(sensor.ID, sensor.Name, sensor.Location, sensor.Latitude, sensor.Longitude,
			sensor.WaterLevel, sensor.Temperature, sensor.Status, sensor.Description, sensor.IsActive).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&sensor.CreatedAt, &sensor.UpdatedAt); err != nil {
		return wrapErr(err)
	}
	return nil
}

func (s *store) GetSensor(ctx context.Context, id string, onlyActive bool) (*domain.Sensor, error) {
	query := builder().Select(sensorColumns...).
		From(tableSensors).
		Where(sq.Eq{"id": id})
	if onlyActive {
		query = query.Where(sq.Eq{"is_active": true})
	}

	sensor, err := xpgx.Getx[domain.Sensor](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return sensor, nil
}

func (s *store) UpdateSensor(ctx context.Context, sensor *domain.Sensor) error {
	query := builder().Update(tableSensors).
		Set("name", sensor.Name).
		Set("location", sensor.Location).
		Set("latitude", sensor.Latitude).
		Set("longitude", sensor.Longitude).
		Set("water_level", sensor.WaterLevel).
		Set("temperature", sensor.Temperature).
		Set("status", sensor.Status).
		Set("description", sensor.Description).
		Set("is_active", sensor.IsActive).
		Set("last_update", sensor.LastUpdate).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": sensor.ID})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr(errNoRows())
	}
	return nil
}

func (s *store) ListSensors(ctx context.Context, opts ListSensorsOpts) ([]*domain.Sensor, error) {
	query := builder().Select(sensorColumns...).
		From(tableSensors).
		OrderBy("id")

	if opts.OnlyActive {
		query = query.Where(sq.Eq{"is_active": true})
	}
	if opts.Status != nil {
		query = query.Where(sq.Eq{"status": *opts.Status})
	}
	if opts.LocationLike != nil && *opts.LocationLike != "" {
		query = query.Where(sq.ILike{"location": "%" + *opts.LocationLike + "%"})
	}

	sensors, err := xpgx.Selectx[domain.Sensor](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return sensors, nil
}

func (s *store) ListSensorsByIDs(ctx context.Context, ids []string) ([]*domain.Sensor, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := builder().Select(sensorColumns...).
		From(tableSensors).
		Where(sq.Eq{"id": ids, "is_active": true})

	sensors, err := xpgx.Selectx[domain.Sensor](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return sensors, nil
}

// AverageWaterLevel aggregates over active working sensors only.
func (s *store) AverageWaterLevel(ctx context.Context) (float64, int, error) {
	query := builder().Select("coalesce(avg(water_level), 0)", "count(*)").
		From(tableSensors).
		Where(sq.Eq{"is_active": true, "status": domain.SensorActive})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, 0, err
	}

	var avg float64
	var total int
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&avg, &total); err != nil {
		return 0, 0, wrapErr(err)
	}
	return avg, total, nil
}

func (s *store) CountSensors(ctx context.Context, status *string) (int, error) {
	conds := []sq.Sqlizer{sq.Eq{"is_active": true}}
	if status != nil {
		conds = append(conds, sq.Eq{"status": *status})
	}
	return s.count(ctx, tableSensors, conds...)
}

// AddReading inserts the reading and mirrors it into the sensor's current
// fields in one transaction.
func (s *store) AddReading(ctx context.Context, sensor *domain.Sensor, reading *domain.SensorReading) (*domain.SensorReading, error) {
	err := s.pool.WithTx(ctx, func(tx pgx.Tx) error {
		insert := builder().Insert(tableSensorReadings).
			Columns("sensor_id", "water_level", "temperature", "timestamp").
			Values(reading.SensorID, reading.WaterLevel, reading.Temperature, reading.Timestamp).
			Suffix("RETURNING id")

		sql, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&reading.ID); err != nil {
			return err
		}

		update := builder().Update(tableSensors).
			Set("water_level", reading.WaterLevel).
			Set("temperature", reading.Temperature).
			Set("last_update", reading.Timestamp).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": sensor.ID})

		_, err = xpgx.Execx(ctx, tx, update)
		return err
	})
	if err != nil {
		return nil, wrapErr(err)
	}
	return reading, nil
}

func (s *store) ListReadings(ctx context.Context, sensorID string, since time.Time, limit int) ([]*domain.SensorReading, error) {
	query := builder().Select(readingColumns...).
		From(tableSensorReadings).
		Where(sq.Eq{"sensor_id": sensorID}).
		Where(sq.GtOrEq{"timestamp": since}).
		OrderBy("timestamp asc").
		Limit(uint64(limit))

	readings, err := xpgx.Selectx[domain.SensorReading](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return readings, nil
}
