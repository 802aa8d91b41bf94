package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/service/auth"
)

// AuthMiddleware parses the bearer token and stores the claims in the echo
// context for handlers to read.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return constants.ErrMissingToken
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == header || raw == "" {
			return constants.ErrMissingToken
		}

		claims, err := auth.ParseAccessToken(raw)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyClaims, claims)
		return next(ctx)
	}
}

// RequireRoles rejects callers whose normalized role is not in the list.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims := Claims(ctx)
			if claims == nil {
				return constants.ErrMissingToken
			}
			role := domain.NormalizeRole(claims.Role)
			for _, r := range roles {
				if role == r {
					return next(ctx)
				}
			}
			return constants.ErrForbidden
		}
	}
}

// Claims returns the parsed token claims, or nil outside authenticated routes.
func Claims(ctx echo.Context) *auth.Claims {
	claims, _ := ctx.Get(constants.CtxKeyClaims).(*auth.Claims)
	return claims
}
