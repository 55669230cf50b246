package helpers

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
)

// claim - извлекает строковое значение claim из JWT токена в контексте
func claim(ctx context.Context, name string) (string, error) {
	_, claims, _ := jwtauth.FromContext(ctx)
	value, ok := claims[name].(string)
	if !ok {
		return "", fmt.Errorf("undefined %s", name)
	}
	return value, nil
}

// GetUsername - имя пользователя из JWT токена
func GetUsername(ctx context.Context) (string, error) {
	return claim(ctx, "username")
}

// GetRole - роль пользователя из JWT токена
func GetRole(ctx context.Context) (string, error) {
	return claim(ctx, "role")
}
