package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/crypto-assets/internal/helpers"
	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/denmor86/crypto-assets/internal/services"
	"github.com/denmor86/crypto-assets/internal/validators"
)

// имя cookie, из которого jwtauth.Verifier читает токен
const SessionCookieName = "jwt"

// RegisterUserHandler — регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var request models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			helpers.WriteError(w, http.StatusBadRequest, "Invalid JSON data in request body")
			return
		}

		// проверка данных регистрации
		fieldErrors := validators.ValidateRegistration(request)
		if !fieldErrors.Empty() {
			logger.Warn("Invalid registration data", request.Username)
			helpers.WriteFieldErrors(w, http.StatusBadRequest, fieldErrors)
			return
		}

		// регистрация в Identity
		if _, err := i.RegisterUser(r.Context(), request); err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				fieldErrors.Add("username", "A user with that username already exists.")
				helpers.WriteFieldErrors(w, http.StatusBadRequest, fieldErrors)
			case errors.Is(err, services.ErrEmailTaken):
				fieldErrors.Add("email", "Email address already exists.")
				helpers.WriteFieldErrors(w, http.StatusBadRequest, fieldErrors)
			default:
				// ошибка регистрации
				logger.Error("Error register user", err)
				helpers.WriteError(w, http.StatusInternalServerError, "Server error")
			}
			return
		}

		logger.Info("User registered", request.Username)
		helpers.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Successfully created user"})
	})
}

// AuthenticateUserHandler — аутентификация пользователя, выдаёт сессионную cookie
func AuthenticateUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var request models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			helpers.WriteError(w, http.StatusBadRequest, "Invalid JSON data in request body")
			return
		}
		// аутентификация в Identity
		user, err := i.AuthenticateUser(r.Context(), request)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				logger.Warn("Authentication failed", request.Username)
				helpers.WriteError(w, http.StatusBadRequest, "Invalid username or password")
				return
			}
			logger.Error("Error authenticate user", err)
			helpers.WriteError(w, http.StatusInternalServerError, "Server error")
			return
		}
		// генерация токена
		token, err := i.GenerateJWT(user.UserID, user.Username)
		if err != nil {
			logger.Error("Failed to generate token", err)
			helpers.WriteError(w, http.StatusInternalServerError, "Server error")
			return
		}

		// пользователь прошел авторизацию
		logger.Info("User authenticated", request.Username)
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(services.TokenExpirationTime),
			HttpOnly: true,
		})
		helpers.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Successfully logged in",
			"user_id": user.UserID,
		})
	})
}

// LogoutUserHandler — завершение сессии. Всегда успешен,
// в том числе без активной сессии.
func LogoutUserHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
		})
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
	})
}
