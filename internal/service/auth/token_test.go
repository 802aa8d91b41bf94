package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ospanovk/hydromon/internal/domain"
	"github.com/ospanovk/hydromon/internal/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *domain.User {
	name := "Анна Смирнова"
	return &domain.User{
		ID:       42,
		Email:    "anna@example.com",
		FullName: &name,
		Role:     domain.RoleExpert,
	}
}

func TestIssueAndParse(t *testing.T) {
	viper.Set(constants.ViperJWTSecret, "test-secret")

	access, refresh, err := IssueTokens(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID())
	assert.Equal(t, domain.RoleExpert, claims.Role)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, "Анна Смирнова", claims.FullName)
	assert.Empty(t, claims.TokenType)

	userID, err := ParseRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestParseRejectsWrongKind(t *testing.T) {
	viper.Set(constants.ViperJWTSecret, "test-secret")

	access, refresh, err := IssueTokens(testUser())
	require.NoError(t, err)

	_, err = ParseAccessToken(refresh)
	assert.ErrorIs(t, err, constants.ErrTokenInvalid)

	_, err = ParseRefreshToken(access)
	assert.ErrorIs(t, err, constants.ErrTokenInvalid)
}

func TestParseExpired(t *testing.T) {
	viper.Set(constants.ViperJWTSecret, "test-secret")

	raw, err := signedToken(&Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "42",
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	})
	require.NoError(t, err)

	_, err = ParseAccessToken(raw)
	assert.ErrorIs(t, err, constants.ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	viper.Set(constants.ViperJWTSecret, "test-secret")
	access, _, err := IssueTokens(testUser())
	require.NoError(t, err)

	viper.Set(constants.ViperJWTSecret, "other-secret")
	defer viper.Set(constants.ViperJWTSecret, "test-secret")

	_, err = ParseAccessToken(access)
	assert.ErrorIs(t, err, constants.ErrTokenInvalid)
}

func TestParseGarbage(t *testing.T) {
	viper.Set(constants.ViperJWTSecret, "test-secret")

	_, err := ParseAccessToken("not-a-token")
	assert.ErrorIs(t, err, constants.ErrTokenInvalid)
}
