package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/storecore/loyalty/internal/config"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) error
	AuthenticateUser(ctx context.Context, user models.UserRequest) (bool, error)
	GenerateJWT(login string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Users   storage.UsersStorage
}

// Создание сервиса
func NewIdentity(cfg config.Config, users storage.UsersStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Users: users}
}

// RegisterUser - регистрация нового пользователя.
// Роль всегда user: административные учётки назначаются вне сервиса.
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) error {
	logger.Info("Register user:", user.Login)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return err
	}

	err = i.Users.AddUser(ctx, user.Login, string(hashedPassword), models.RoleUser)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist", user.Login)
			return ErrUserAlreadyExists
		}
		logger.Error("Error registering user", user.Login, err)
		return err
	}
	return nil
}

// AuthenticateUser - аутентификация пользователя
func (i *Identity) AuthenticateUser(ctx context.Context, user models.UserRequest) (bool, error) {
	logger.Info("Authenticate user", user.Login)

	userData, err := i.Users.GetUser(ctx, user.Login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("User not found", user.Login)
			return false, nil
		}
		logger.Error("Error getting user", err)
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(user.Password))
	if err != nil {
		logger.Warn("Invalid password", user.Login)
		return false, nil
	}

	logger.Info("User authenticated", user.Login)
	return true, nil
}

// GenerateJWT - создание строки JWT токена с ролью пользователя в claims
func (i *Identity) GenerateJWT(login string) (string, error) {
	role := models.RoleUser
	if user, err := i.Users.GetUser(context.Background(), login); err == nil {
		role = user.Role
	}

	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"username": login,
		"role":     role,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// GetTokenAuth - возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
