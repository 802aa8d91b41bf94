package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/domain/dto"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/ospanovk/hydromon/internal/pkg/logger"
	"github.com/ospanovk/hydromon/internal/pkg/store"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (svc *Service) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, *TokenPair, error) {
	if _, err := svc.store.GetUserByEmail(ctx, req.Email); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, nil, constants.ErrEmailTaken
		}
		return nil, nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	role := domain.RoleResident
	if req.Role != "" {
		role = domain.NormalizeRole(req.Role)
	}

	now := time.Now()
	verification := uuid.NewString()
	user := &domain.User{
		Email:             req.Email,
		PasswordHash:      hash,
		FullName:          req.FullName,
		Role:              role,
		Phone:             req.Phone,
		Address:           req.Address,
		IsActive:          true,
		LastLogin:         &now,
		VerificationToken: &verification,
	}

	if _, err := svc.store.CreateUser(ctx, user); err != nil {
		return nil, nil, err
	}
	logger.Debugf(ctx, "register: userID [%d]", user.ID)

	access, refresh, err := IssueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (svc *Service) Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, *TokenPair, error) {
	user, err := svc.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, nil, constants.ErrBadCredentials
		}
		return nil, nil, err
	}

	if !user.IsActive || !checkPassword(user.PasswordHash, req.Password) {
		return nil, nil, constants.ErrBadCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := svc.store.UpdateUser(ctx, user); err != nil {
		return nil, nil, err
	}
	logger.Debugf(ctx, "login: userID [%d]", user.ID)

	access, refresh, err := IssueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh trades a valid refresh token for a fresh pair. The user must still
// exist and be active.
func (svc *Service) Refresh(ctx context.Context, rawToken string) (*TokenPair, error) {
	userID, err := ParseRefreshToken(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := svc.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrTokenInvalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, constants.ErrTokenInvalid
	}

	access, refresh, err := IssueTokens(user)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (svc *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := svc.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (svc *Service) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := svc.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Address != nil {
		user.Address = req.Address
	}

	if err := svc.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (svc *Service) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := svc.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if !checkPassword(user.PasswordHash, req.CurrentPassword) {
		return constants.NewValidationError("current password is incorrect")
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return svc.store.UpdateUser(ctx, user)
}

// ForgotPassword stores a one-hour single-use reset token. The token is
// returned to the caller because there is no mail delivery here; a real
// deployment hands it to the mailer instead.
func (svc *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := svc.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			// do not reveal whether the email is registered
			return "", nil
		}
		return "", err
	}

	token := uuid.NewString()
	expires := time.Now().Add(time.Hour)
	user.ResetToken = &token
	user.ResetTokenExpires = &expires
	if err := svc.store.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return token, nil
}

func (svc *Service) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	user, err := svc.store.GetUserByResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return constants.ErrResetToken
		}
		return err
	}
	if user.ResetTokenExpires == nil || time.Now().After(*user.ResetTokenExpires) {
		return constants.ErrResetToken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ResetToken = nil
	user.ResetTokenExpires = nil
	return svc.store.UpdateUser(ctx, user)
}

func (svc *Service) VerifyEmail(ctx context.Context, token string) error {
	user, err := svc.store.GetUserByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return constants.ErrResetToken
		}
		return err
	}

	user.IsVerified = true
	user.VerificationToken = nil
	return svc.store.UpdateUser(ctx, user)
}

// Deactivate soft-disables the account after re-checking the password.
func (svc *Service) Deactivate(ctx context.Context, userID int64, password string) error {
	user, err := svc.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !checkPassword(user.PasswordHash, password) {
		return constants.ErrBadCredentials
	}

	user.IsActive = false
	return svc.store.UpdateUser(ctx, user)
}

// DeleteAccount removes the account row entirely.
func (svc *Service) DeleteAccount(ctx context.Context, userID int64, password string) error {
	user, err := svc.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if !checkPassword(user.PasswordHash, password) {
		return constants.ErrBadCredentials
	}
	return svc.store.DeleteUser(ctx, userID)
}
