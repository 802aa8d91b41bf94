package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/spf13/viper"
)

const (
	accessTTL  = 24 * time.Hour
	refreshTTL = 30 * 24 * time.Hour

	tokenTypeRefresh = "refresh"
)

// Claims carried by the access token. Refresh tokens carry only the subject
// and TokenType.
type Claims struct {
	jwt.StandardClaims
	Role      string `json:"role,omitempty"`
	Email     string `json:"email,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	TokenType string `json:"typ,omitempty"`
}

func (c *Claims) UserID() int64 {
	id, _ := strconv.ParseInt(c.Subject, 10, 64)
	return id
}

func secret() []byte {
	return []byte(viper.GetString(constants.ViperJWTSecret))
}

func signedToken(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// IssueTokens returns the access/refresh pair for a freshly authenticated
// user. There is no revocation list; a refresh token stays valid until it
// expires.
func IssueTokens(user *domain.User) (access string, refresh string, err error) {
	now := time.Now()

	access, err = signedToken(&Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   formatID(user.ID),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(accessTTL).Unix(),
		},
		Role:     user.Role,
		Email:    user.Email,
		FullName: user.DisplayName(),
	})
	if err != nil {
		return "", "", err
	}

	refresh, err = signedToken(&Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   formatID(user.ID),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(refreshTTL).Unix(),
		},
		TokenType: tokenTypeRefresh,
	})
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func parseToken(raw string) (*Claims, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.ErrTokenInvalid
		}
		return secret(), nil
	})
	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, constants.ErrTokenExpired
		}
		return nil, constants.ErrTokenInvalid
	}
	return claims, nil
}

// ParseAccessToken rejects refresh tokens presented as access tokens.
func ParseAccessToken(raw string) (*Claims, error) {
	claims, err := parseToken(raw)
	if err != nil {
		return nil, err
	}
	if claims.TokenType == tokenTypeRefresh {
		return nil, constants.ErrTokenInvalid
	}
	return claims, nil
}

// ParseRefreshToken returns the subject user id of a valid refresh token.
func ParseRefreshToken(raw string) (int64, error) {
	claims, err := parseToken(raw)
	if err != nil {
		return 0, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return 0, constants.ErrTokenInvalid
	}
	return claims.UserID(), nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
