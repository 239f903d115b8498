package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-estate/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "groph-estate"

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrInvalidClaims = errors.New("invalid claims")
)

// UserClaims контекст аутентификации запроса. KYCStatus актуален на момент выдачи токена и служит только
// подсказкой клиенту, сервисы всегда перечитывают статус из базы.
type UserClaims struct {
	jwt.RegisteredClaims
	ID        int64                `json:"actorId"`
	Role      domain.RoleType      `json:"role"`
	KYCStatus domain.KYCStatusType `json:"kycStatus"`
}

// Actor возвращает участника запроса для сервисного слоя.
func (c *UserClaims) Actor() domain.Actor {
	return domain.Actor{ID: c.ID, Role: c.Role}
}

func GenerateUserJWT(user *domain.User, expire time.Duration, key []byte) (string, error) {
	now := time.Now()
	userClaims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
		ID:        user.ID,
		Role:      user.Role,
		KYCStatus: user.KYCStatus,
	}
	token, err := generateJWT(userClaims, key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateUserJWT(tokenString string, key []byte) (*UserClaims, error) {
	token, err := validateJWT(tokenString, new(UserClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating user jwt token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || claims.ID <= 0 || claims.Role == "" {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(Issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
