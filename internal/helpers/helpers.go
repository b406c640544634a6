package helpers

import (
	"context"
	"fmt"

	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// GetUserID - извлекает идентификатор пользователя из контекста JWT токена
func GetUserID(ctx context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(ctx)
	userID, ok := claims["user_id"].(string)
	if !ok {
		logger.Warn("Undefined user id from token")
		return "", fmt.Errorf("undefined user id")
	}
	return userID, nil
}

// GetUsername - извлекает имя пользователя из контекста JWT токена
func GetUsername(ctx context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(ctx)
	username, ok := claims["username"].(string)
	if !ok {
		logger.Warn("Undefined username from token")
		return "", fmt.Errorf("undefined username")
	}
	return username, nil
}
