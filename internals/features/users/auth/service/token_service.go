// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"acex_backend/internals/configs"
	"acex_backend/internals/features/users/user/model"
)

var ErrMissingJWTSecret = errors.New("JWT secret is not configured")

// CreateToken menerbitkan access token HS256 berisi user id, identifier, role.
func CreateToken(user *model.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", ErrMissingJWTSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.UserID.String(),
		"username": user.UserUsername,
		"role":     user.UserRole,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(configs.JWTExpireMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
