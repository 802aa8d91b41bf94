package controller

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/service/admin"
	"github.com/ospanovk/hydromon/internal/service/auth"
	"github.com/ospanovk/hydromon/internal/service/evacuation"
	"github.com/ospanovk/hydromon/internal/service/facility"
	"github.com/ospanovk/hydromon/internal/service/monitoring"
	"github.com/ospanovk/hydromon/internal/service/notification"
	"github.com/ospanovk/hydromon/internal/service/report"
	"github.com/ospanovk/hydromon/internal/service/user"
)

type Controller struct {
	auth          *auth.Service
	users         *user.Service
	monitoring    *monitoring.Service
	evacuations   *evacuation.Service
	notifications *notification.Service
	facilities    *facility.Service
	reports       *report.Service
	admin         *admin.Service
}

func NewController(
	authSvc *auth.Service,
	userSvc *user.Service,
	monitoringSvc *monitoring.Service,
	evacuationSvc *evacuation.Service,
	notificationSvc *notification.Service,
	facilitySvc *facility.Service,
	reportSvc *report.Service,
	adminSvc *admin.Service,
) *Controller {
	return &Controller{
		auth:          authSvc,
		users:         userSvc,
		monitoring:    monitoringSvc,
		evacuations:   evacuationSvc,
		notifications: notificationSvc,
		facilities:    facilitySvc,
		reports:       reportSvc,
		admin:         adminSvc,
	}
}

func claims(ctx echo.Context) (*auth.Claims, error) {
	c, _ := ctx.Get(constants.CtxKeyClaims).(*auth.Claims)
	if c == nil {
		return nil, constants.ErrMissingToken
	}
	return c, nil
}

func paramID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, constants.NewValidationError("invalid id")
	}
	return id, nil
}

func bindAndValidate(ctx echo.Context, req interface{}) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}
