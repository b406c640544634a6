package middleware

import (
	"net/http"

	"github.com/denmor86/crypto-assets/internal/helpers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// Authenticator — проверка JWT из запроса (заголовок или cookie).
// При невалидном токене отвечает JSON 401 до выполнения бизнес-логики,
// в отличие от jwtauth.Authenticator, который пишет text/plain.
func Authenticator(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				helpers.WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// OwnResources — пользователь может выполнять операции только над
// собственными ресурсами: {userID} из пути должен совпадать с токеном.
// Проверка выполняется до валидации тела и поиска ресурсов.
func OwnResources(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			helpers.WriteError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if chi.URLParam(r, "userID") != userID {
			helpers.WriteError(w, http.StatusForbidden,
				"User has no permissions to perform operations on resources of other users")
			return
		}
		next.ServeHTTP(w, r)
	})
}
