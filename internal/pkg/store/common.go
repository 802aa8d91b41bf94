package store

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
	"github.com/ospanovk/hydromon/migrations"
)

const (
	tableUsers           = "users"
	tableSensors         = "sensors"
	tableSensorReadings  = "sensor_readings"
	tableRiskZones       = "risk_zones"
	tableEvacuations     = "evacuations"
	tableNotifications   = "notifications"
	tableHydroFacilities = "hydro_facilities"
	tableWaterBodies     = "water_bodies"
	tableReports         = "reports"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

// errNoRows lets mutation paths report a missing row the same way reads do.
func errNoRows() error { return pgx.ErrNoRows }

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// builder returns a squirrel builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (s *store) count(ctx context.Context, table string, conds ...squirrel.Sqlizer) (int, error) {
	query := builder().Select("count(*)").From(table)
	for _, c := range conds {
		query = query.Where(c)
	}
	n, err := xpgx.Scalarx[int](ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}
	return n, nil
}

// Migrate applies the embedded schema files in lexical order.
func (s *store) Migrate(ctx context.Context) error {
	entries, err := migrations.FS.ReadDir(".")
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		raw, err := migrations.FS.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := s.pool.Exec(ctx, string(raw)); err != nil {
			return err
		}
	}
	return nil
}
