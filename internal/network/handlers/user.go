package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/services"
	"go.uber.org/zap"
)

// issueToken - генерация JWT и выдача его в заголовке ответа
func issueToken(w http.ResponseWriter, i services.IdentityService, login string) {
	token, err := i.GenerateJWT(login)
	if err != nil {
		logger.Error("Failed to generate token:", zap.Error(err))
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

// RegisterUserHandler — регистрация нового пользователя.
// Успешная регистрация сразу авторизует пользователя.
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := i.RegisterUser(r.Context(), user); err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				http.Error(w, "login already exist", http.StatusConflict)
				return
			}
			logger.Error("Failed to register user:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		logger.Info("User registered", user.Login)
		issueToken(w, i, user.Login)
	})
}

// AuthenticateUserHandle — аутентификация пользователя
func AuthenticateUserHandle(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		authenticated, err := i.AuthenticateUser(r.Context(), user)
		if err != nil {
			logger.Error("Failed to authenticate user:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if !authenticated {
			http.Error(w, "Invalid login/password", http.StatusUnauthorized)
			return
		}

		issueToken(w, i, user.Login)
	})
}
