package helpers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/crypto-assets/internal/logger"
	"go.uber.org/zap"
)

// Все ответы сервиса, включая ошибки, отдаются как application/json

// WriteJSON - сериализует значение в тело ответа с указанным статусом
func WriteJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

// WriteError - формирует ответ с ошибкой вида {"error": ...}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteFieldErrors - формирует ответ с ошибками валидации по полям {"errors": ...}
func WriteFieldErrors(w http.ResponseWriter, status int, errors map[string][]string) {
	WriteJSON(w, status, map[string]map[string][]string{"errors": errors})
}
