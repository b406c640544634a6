package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/crypto-assets/internal/config"
	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/denmor86/crypto-assets/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type IdentityService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (string, error)
	AuthenticateUser(ctx context.Context, request models.LoginRequest) (*models.UserData, error)
	GenerateJWT(userID string, username string) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Storage storage.IStorage
}

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
	// единый ответ для неизвестного логина и неверного пароля,
	// чтобы не раскрывать существование пользователя
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// Создание сервиса
func NewIdentity(cfg config.Config, storage storage.IStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Storage: storage}
}

// Регистрация нового пользователя. Возвращает идентификатор созданного пользователя.
func (i *Identity) RegisterUser(ctx context.Context, request models.RegisterRequest) (string, error) {
	logger.Info("Register user:", request.Username)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password1), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return "", err
	}

	userID, err := i.Storage.AddUser(ctx, request.Username, string(hashedPassword), request.Email)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUsernameExists):
			logger.Warn("Username already taken", request.Username)
			return "", ErrUsernameTaken
		case errors.Is(err, storage.ErrEmailExists):
			logger.Warn("Email already taken", request.Email)
			return "", ErrEmailTaken
		default:
			logger.Error("Error registering user", request.Username, err)
			return "", err
		}
	}
	return userID, nil
}

// Аутентификация пользователя
func (i *Identity) AuthenticateUser(ctx context.Context, request models.LoginRequest) (*models.UserData, error) {
	logger.Info("Authenticate user", request.Username)

	user, err := i.Storage.GetUser(ctx, request.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("Unknown username", request.Username)
			return nil, ErrInvalidCredentials
		}
		logger.Error("Error getting user", err)
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		logger.Warn("Invalid password", request.Username)
		return nil, ErrInvalidCredentials
	}

	logger.Info("User authenticated", request.Username)
	return user, nil
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(userID string, username string) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"user_id":  userID,
		"username": username,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
