package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
)

type authPayload struct {
	User         *domain.UserView `json:"user"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
}

func (c *Controller) Register(ctx echo.Context) error {
	req := new(dto.RegisterRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	user, tokens, err := c.auth.Register(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, domain.OKMessage(authPayload{
		User:         user.View(true),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "registration successful"))
}

func (c *Controller) Login(ctx echo.Context) error {
	req := new(dto.LoginRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	user, tokens, err := c.auth.Login(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.OK(authPayload{
		User:         user.View(true),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}))
}

func (c *Controller) Refresh(ctx echo.Context) error {
	req := new(dto.RefreshRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	tokens, err := c.auth.Refresh(ctx.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(tokens))
}

func (c *Controller) Me(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}

	user, err := c.auth.GetUser(ctx.Request().Context(), cl.UserID())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OK(user.View(true)))
}

func (c *Controller) UpdateProfile(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}

	req := new(dto.UpdateProfileRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	user, err := c.auth.UpdateProfile(ctx.Request().Context(), cl.UserID(), req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(user.View(true), "profile updated"))
}

func (c *Controller) ChangePassword(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}

	req := new(dto.ChangePasswordRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	if err := c.auth.ChangePassword(ctx.Request().Context(), cl.UserID(), req); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "password changed"))
}

func (c *Controller) ForgotPassword(ctx echo.Context) error {
	req := new(dto.ForgotPasswordRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	token, err := c.auth.ForgotPassword(ctx.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	// The token is included because no mailer is wired; the response message
	// is identical whether or not the email exists.
	var data interface{}
	if token != "" {
		data = map[string]string{"reset_token": token}
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(data, "if the email is registered, a reset link has been sent"))
}

func (c *Controller) ResetPassword(ctx echo.Context) error {
	req := new(dto.ResetPasswordRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	if err := c.auth.ResetPassword(ctx.Request().Context(), req); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "password reset"))
}

func (c *Controller) VerifyEmail(ctx echo.Context) error {
	req := new(dto.VerifyEmailRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	if err := c.auth.VerifyEmail(ctx.Request().Context(), req.Token); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "email verified"))
}

func (c *Controller) Deactivate(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}

	req := new(dto.DeactivateRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	if err := c.auth.Deactivate(ctx.Request().Context(), cl.UserID(), req.Password); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "account deactivated"))
}

func (c *Controller) DeleteAccount(ctx echo.Context) error {
	cl, err := claims(ctx)
	if err != nil {
		return err
	}

	req := new(dto.DeactivateRequest)
	if err := bindAndValidate(ctx, req); err != nil {
		return err
	}

	if err := c.auth.DeleteAccount(ctx.Request().Context(), cl.UserID(), req.Password); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, domain.OKMessage(nil, "account deleted"))
}
