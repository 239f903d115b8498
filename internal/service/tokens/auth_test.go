package tokens

import (
	"testing"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJWT(t *testing.T) {
	key := []byte("secret")
	user := &domain.User{ID: 42, Role: domain.RoleAdmin, KYCStatus: domain.KYCStatusApproved}

	token, err := GenerateUserJWT(user, time.Hour, key)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, domain.Actor{ID: 42, Role: domain.RoleAdmin}, claims.Actor())
	assert.Equal(t, domain.KYCStatusApproved, claims.KYCStatus)

	_, err = ValidateUserJWT(token, []byte("other"))
	require.Error(t, err)
}

func TestUserJWT_Expired(t *testing.T) {
	key := []byte("secret")
	token, err := GenerateUserJWT(&domain.User{ID: 1, Role: domain.RoleUser}, -time.Minute, key)
	require.NoError(t, err)

	_, err = ValidateUserJWT(token, key)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestUserJWT_ForeignIssuer(t *testing.T) {
	key := []byte("secret")
	token, err := generateJWT(UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		ID:   1,
		Role: domain.RoleAdmin,
	}, key)
	require.NoError(t, err)

	_, err = ValidateUserJWT(token, key)
	require.Error(t, err)
}

func TestUserJWT_EmptyClaims(t *testing.T) {
	key := []byte("secret")
	token, err := generateJWT(UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, key)
	require.NoError(t, err)

	_, err = ValidateUserJWT(token, key)
	require.ErrorIs(t, err, ErrInvalidClaims)
}
