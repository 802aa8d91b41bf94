package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ospanovk/hydromon/internal/api/controller"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/pkg/logger"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"github.com/ospanovk/hydromon/internal/service/admin"
	"github.com/ospanovk/hydromon/internal/service/auth"
	"github.com/ospanovk/hydromon/internal/service/evacuation"
	"github.com/ospanovk/hydromon/internal/service/facility"
	"github.com/ospanovk/hydromon/internal/service/monitoring"
	"github.com/ospanovk/hydromon/internal/service/notification"
	"github.com/ospanovk/hydromon/internal/service/report"
	"github.com/ospanovk/hydromon/internal/service/user"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Router is exposed for handler tests.
func (svc *APIService) Router() *echo.Echo {
	return svc.router
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOrigins),
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	cntrl := controller.NewController(
		auth.NewService(st),
		user.NewService(st),
		monitoring.NewService(st),
		evacuation.NewService(st),
		notification.NewService(st),
		facility.NewService(st),
		report.NewService(st),
		admin.NewService(st),
	)

	staff := RequireRoles(domain.RoleAdmin, domain.RoleEmergency)
	adminOnly := RequireRoles(domain.RoleAdmin)

	api := svc.router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", cntrl.Register)
	authGroup.POST("/login", cntrl.Login)
	authGroup.POST("/refresh", cntrl.Refresh)
	authGroup.POST("/forgot-password", cntrl.ForgotPassword)
	authGroup.POST("/reset-password", cntrl.ResetPassword)
	authGroup.POST("/verify-email", cntrl.VerifyEmail)
	authGroup.GET("/me", cntrl.Me, svc.AuthMiddleware)
	authGroup.PUT("/profile", cntrl.UpdateProfile, svc.AuthMiddleware)
	authGroup.POST("/change-password", cntrl.ChangePassword, svc.AuthMiddleware)
	authGroup.POST("/deactivate", cntrl.Deactivate, svc.AuthMiddleware)
	authGroup.DELETE("/deactivate", cntrl.DeleteAccount, svc.AuthMiddleware)

	sensors := api.Group("/sensors")
	// zones are registered before /:id so the static segment wins
	sensors.GET("/zones", cntrl.ListZones)
	sensors.GET("/zones/:id", cntrl.GetZone)
	sensors.POST("/zones", cntrl.CreateZone, svc.AuthMiddleware, adminOnly)
	sensors.PUT("/zones/:id", cntrl.UpdateZone, svc.AuthMiddleware, staff)
	sensors.DELETE("/zones/:id", cntrl.DeleteZone, svc.AuthMiddleware, adminOnly)
	sensors.GET("", cntrl.ListSensors)
	sensors.GET("/critical", cntrl.CriticalSensors)
	sensors.GET("/average", cntrl.AverageWaterLevel)
	sensors.GET("/:id", cntrl.GetSensor)
	sensors.GET("/:id/readings", cntrl.ListReadings)
	sensors.POST("", cntrl.CreateSensor, svc.AuthMiddleware, staff)
	sensors.PUT("/:id", cntrl.UpdateSensor, svc.AuthMiddleware, staff)
	sensors.POST("/:id/readings", cntrl.AddReading, svc.AuthMiddleware, staff)
	sensors.DELETE("/:id", cntrl.DeleteSensor, svc.AuthMiddleware, adminOnly)

	users := api.Group("/users", svc.AuthMiddleware)
	users.GET("", cntrl.ListUsers, staff)
	users.GET("/stats", cntrl.UserStats, staff)
	users.GET("/residents", cntrl.ListResidents, staff)
	users.POST("", cntrl.CreateUser, adminOnly)
	users.GET("/:id", cntrl.GetUser)
	users.PUT("/:id", cntrl.UpdateUser)
	users.DELETE("/:id", cntrl.DeleteUser, adminOnly)

	notifications := api.Group("/notifications", svc.AuthMiddleware)
	notifications.GET("", cntrl.ListNotifications)
	notifications.GET("/stats", cntrl.NotificationStats)
	notifications.PUT("/mark-all-read", cntrl.MarkAllNotificationsRead)
	notifications.POST("", cntrl.CreateNotification, staff)
	notifications.POST("/broadcast", cntrl.Broadcast, staff)
	notifications.GET("/:id", cntrl.GetNotification)
	notifications.PUT("/:id/read", cntrl.MarkNotificationRead)
	notifications.DELETE("/:id", cntrl.DeleteNotification)

	evacuations := api.Group("/evacuations", svc.AuthMiddleware)
	evacuations.GET("", cntrl.ListEvacuations)
	evacuations.GET("/stats", cntrl.EvacuationStats, staff)
	evacuations.GET("/:id", cntrl.GetEvacuation)
	evacuations.POST("", cntrl.CreateEvacuation, staff)
	evacuations.PUT("/:id", cntrl.UpdateEvacuation, staff)
	evacuations.DELETE("/:id", cntrl.DeleteEvacuation, adminOnly)

	facilities := api.Group("/facilities")
	facilities.GET("/water-bodies", cntrl.ListWaterBodies)
	facilities.GET("/water-bodies/:id", cntrl.GetWaterBody)
	facilities.GET("/priority-stats", cntrl.FacilityPriorityStats)
	facilities.GET("", cntrl.ListFacilities)
	facilities.GET("/:id", cntrl.GetFacility)
	facilities.POST("", cntrl.CreateFacility, svc.AuthMiddleware, staff)
	facilities.PUT("/:id", cntrl.UpdateFacility, svc.AuthMiddleware, staff)
	facilities.DELETE("/:id", cntrl.DeleteFacility, svc.AuthMiddleware, adminOnly)

	mapGroup := api.Group("/map")
	mapGroup.GET("/waterbodies", cntrl.MapWaterBodies)
	mapGroup.GET("/waterbodies/:id", cntrl.MapWaterBody)
	mapGroup.GET("/facilities", cntrl.MapFacilities)
	mapGroup.GET("/facilities/:id", cntrl.MapFacility)
	mapGroup.GET("/sensors", cntrl.MapSensors)
	mapGroup.GET("/critical-zones", cntrl.MapCriticalZones)
	mapGroup.GET("/stats", cntrl.MapStats)

	mapAdmin := mapGroup.Group("/admin", svc.AuthMiddleware)
	mapAdmin.POST("/waterbodies", cntrl.MapCreateWaterBody, staff)
	mapAdmin.PUT("/waterbodies/:id", cntrl.MapUpdateWaterBody, staff)
	mapAdmin.DELETE("/waterbodies/:id", cntrl.MapDeleteWaterBody, adminOnly)
	mapAdmin.POST("/facilities", cntrl.CreateFacility, staff)
	mapAdmin.PUT("/facilities/:id", cntrl.UpdateFacility, staff)
	mapAdmin.DELETE("/facilities/:id", cntrl.DeleteFacility, adminOnly)

	reports := api.Group("/reports", svc.AuthMiddleware, staff)
	reports.GET("", cntrl.ListReports)
	reports.GET("/stats", cntrl.ReportStats)
	reports.GET("/templates", cntrl.ReportTemplates)
	reports.GET("/:id", cntrl.GetReport)
	reports.POST("", cntrl.CreateReport)
	reports.PUT("/:id", cntrl.UpdateReport)
	reports.DELETE("/:id", cntrl.DeleteReport, adminOnly)

	adminGroup := api.Group("/admin", svc.AuthMiddleware, staff)
	adminGroup.GET("/dashboard", cntrl.AdminDashboard)
	adminGroup.GET("/analytics/system", cntrl.SystemAnalytics)
	adminGroup.GET("/ai/models", cntrl.AIModels)
	adminGroup.GET("/notifications/templates", cntrl.AdminNotificationTemplates)
	adminGroup.GET("/logs", cntrl.AdminLogs)

	return svc, nil
}
