package store

import (
	"context"
	"time"

	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type ListUsersOpts struct {
	Role       *string
	Search     *string
	OnlyActive bool
}

type CountUsersOpts struct {
	Role         *string
	OnlyActive   bool
	OnlyVerified bool
	LoginSince   *time.Time
	CreatedSince *time.Time
}

type ListSensorsOpts struct {
	Status       *string
	OnlyActive   bool
	LocationLike *string
}

type ListZonesOpts struct {
	Type       *string
	OnlyActive bool
}

type ListEvacuationsOpts struct {
	UserID   *int64
	Status   *string
	Priority *string
}

type CountEvacuationsOpts struct {
	Status          *string
	Priority        *string
	HasDisabilities *bool
	HasPets         *bool
}

type ListNotificationsOpts struct {
	UserID     int64
	UnreadOnly bool
	Limit      int
}

type ListFacilitiesOpts struct {
	Region     *string
	RegionLike *string
	Type       *string
	Status     *string
	MinRisk    *int
	MaxRisk    *int
	Condition  *int
}

type CountFacilitiesOpts struct {
	Status       *string
	MinCondition *int
	MaxCondition *int
}

type ListWaterBodiesOpts struct {
	Region     *string
	RegionLike *string
	Type       *string
}

type ListReportsOpts struct {
	Type   *string
	Status *string
}

type Store interface {
	Migrate(ctx context.Context) error

	// users
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByResetToken(ctx context.Context, token string) (*domain.User, error)
	GetUserByVerificationToken(ctx context.Context, token string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context, opts ListUsersOpts) ([]*domain.User, error)
	CountUsers(ctx context.Context, opts CountUsersOpts) (int, error)

	// sensors and readings
	CreateSensor(ctx context.Context, sensor *domain.Sensor) error
	GetSensor(ctx context.Context, id string, onlyActive bool) (*domain.Sensor, error)
	UpdateSensor(ctx context.Context, sensor *domain.Sensor) error
	ListSensors(ctx context.Context, opts ListSensorsOpts) ([]*domain.Sensor, error)
	ListSensorsByIDs(ctx context.Context, ids []string) ([]*domain.Sensor, error)
	AverageWaterLevel(ctx context.Context) (float64, int, error)
	CountSensors(ctx context.Context, status *string) (int, error)
	AddReading(ctx context.Context, sensor *domain.Sensor, reading *domain.SensorReading) (*domain.SensorReading, error)
	ListReadings(ctx context.Context, sensorID string, since time.Time, limit int) ([]*domain.SensorReading, error)

	// risk zones
	CreateZone(ctx context.Context, zone *domain.RiskZone) error
	GetZone(ctx context.Context, id string) (*domain.RiskZone, error)
	UpdateZone(ctx context.Context, zone *domain.RiskZone) error
	DeleteZone(ctx context.Context, id string) error
	ListZones(ctx context.Context, opts ListZonesOpts) ([]*domain.RiskZone, error)

	// evacuations; status-change notifications ride the same transaction
	CreateEvacuation(ctx context.Context, evac *domain.Evacuation, notif *domain.Notification) (*domain.Evacuation, error)
	GetEvacuation(ctx context.Context, id int64) (*domain.Evacuation, error)
	UpdateEvacuation(ctx context.Context, evac *domain.Evacuation, notif *domain.Notification) error
	DeleteEvacuation(ctx context.Context, id int64) error
	ListEvacuations(ctx context.Context, opts ListEvacuationsOpts) ([]*domain.Evacuation, error)
	CountEvacuations(ctx context.Context, opts CountEvacuationsOpts) (int, error)

	// notifications
	CreateNotification(ctx context.Context, notif *domain.Notification) (*domain.Notification, error)
	CreateNotifications(ctx context.Context, notifs []*domain.Notification) (int, error)
	GetNotification(ctx context.Context, id, userID int64) (*domain.Notification, error)
	ListNotifications(ctx context.Context, opts ListNotificationsOpts) ([]*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID int64) (*domain.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, userID int64) (int, error)
	DeleteNotification(ctx context.Context, id, userID int64) error
	CountNotifications(ctx context.Context, userID int64, unreadOnly, importantOnly bool) (int, error)
	NotificationTypeCounts(ctx context.Context, userID int64) (map[string]int, error)

	// hydro facilities
	CreateFacility(ctx context.Context, f *domain.HydroFacility) (*domain.HydroFacility, error)
	GetFacility(ctx context.Context, id int64) (*domain.HydroFacility, error)
	UpdateFacility(ctx context.Context, f *domain.HydroFacility) error
	ListFacilities(ctx context.Context, opts ListFacilitiesOpts) ([]*domain.HydroFacility, error)
	CountFacilities(ctx context.Context, opts CountFacilitiesOpts) (int, error)

	// water bodies
	CreateWaterBody(ctx context.Context, wb *domain.WaterBody) (*domain.WaterBody, error)
	GetWaterBody(ctx context.Context, id int64) (*domain.WaterBody, error)
	UpdateWaterBody(ctx context.Context, wb *domain.WaterBody) error
	DeleteWaterBody(ctx context.Context, id int64) error
	ListWaterBodies(ctx context.Context, opts ListWaterBodiesOpts) ([]*domain.WaterBody, error)
	CountWaterBodies(ctx context.Context, minCondition *int) (int, error)

	// reports
	CreateReport(ctx context.Context, r *domain.Report) (*domain.Report, error)
	GetReport(ctx context.Context, id int64) (*domain.Report, error)
	UpdateReport(ctx context.Context, r *domain.Report) error
	DeleteReport(ctx context.Context, id int64) error
	ListReports(ctx context.Context, opts ListReportsOpts) ([]*domain.Report, error)
	CountReports(ctx context.Context, opts ListReportsOpts) (int, error)
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
