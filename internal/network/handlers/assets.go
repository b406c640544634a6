package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/denmor86/crypto-assets/internal/helpers"
	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/denmor86/crypto-assets/internal/services"
	"github.com/denmor86/crypto-assets/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GetUserAssetsHandler — получение списка активов пользователя
func GetUserAssetsHandler(a services.AssetsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		assets, err := a.GetAssets(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get user assets:", zap.Error(err))
			helpers.WriteError(w, http.StatusInternalServerError, "Server Error")
			return
		}

		// пользователь без активов получает [], а не null
		response := make([]models.AssetResponse, 0, len(assets))
		for _, asset := range assets {
			floatAmount, _ := asset.Amount.Float64()
			response = append(response, models.AssetResponse{
				CryptoName: asset.CryptoName,
				UserID:     asset.UserID,
				Amount:     floatAmount,
			})
		}

		helpers.WriteJSON(w, http.StatusOK, map[string][]models.AssetResponse{"assets": response})
	})
}

// AddAssetHandler — увеличение количества криптовалюты пользователя (POST)
func AddAssetHandler(a services.AssetsService) http.HandlerFunc {
	return changeAssetHandler(a.AddAssetAmount)
}

// SetAssetHandler — перезапись количества криптовалюты пользователя (PUT)
func SetAssetHandler(a services.AssetsService) http.HandlerFunc {
	return changeAssetHandler(a.SetAssetAmount)
}

type assetMutation func(ctx context.Context, userID string, cryptoName string, amount decimal.Decimal) (decimal.Decimal, error)

// Общий обработчик добавления и перезаписи: различие только
// в операции над хранимым количеством
func changeAssetHandler(mutate assetMutation) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		cryptoName := chi.URLParam(r, "crypto")

		var request models.AssetRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			helpers.WriteError(w, http.StatusBadRequest, "Invalid JSON data in request body")
			return
		}
		if request.Amount == nil {
			helpers.WriteError(w, http.StatusBadRequest, "Amount is required and must be a number")
			return
		}

		newAmount, err := mutate(r.Context(), userID, cryptoName, decimal.NewFromFloat(*request.Amount))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				helpers.WriteError(w, http.StatusBadRequest, "Amount must not be negative")
			case errors.Is(err, storage.ErrCryptoNotFound):
				helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("Unsupported crypto: %s", cryptoName))
			default:
				logger.Error("Failed to change asset:", zap.Error(err))
				helpers.WriteError(w, http.StatusInternalServerError, "Server Error")
			}
			return
		}

		total, _ := newAmount.Float64()
		helpers.WriteJSON(w, http.StatusOK, models.AssetChangedResponse{
			Message:   fmt.Sprintf("Successfully added %s %s to assets", strconv.FormatFloat(*request.Amount, 'f', -1, 64), cryptoName),
			Crypto:    cryptoName,
			NewAmount: total,
		})
	})
}

// DeleteAssetHandler — удаление актива пользователя
func DeleteAssetHandler(a services.AssetsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		cryptoName := chi.URLParam(r, "crypto")

		if err := a.DeleteAsset(r.Context(), userID, cryptoName); err != nil {
			if errors.Is(err, storage.ErrAssetNotFound) {
				helpers.WriteError(w, http.StatusNotFound, "Asset not found")
				return
			}
			logger.Error("Failed to delete asset:", zap.Error(err))
			helpers.WriteError(w, http.StatusInternalServerError, "Server Error")
			return
		}

		helpers.WriteJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Successfully removed %s from assets", cryptoName),
		})
	})
}
