package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/denmor86/crypto-assets/internal/client"
	"github.com/denmor86/crypto-assets/internal/helpers"
	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/denmor86/crypto-assets/internal/services"
	"github.com/denmor86/crypto-assets/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetCryptosHandler — получение каталога поддерживаемых криптовалют
func GetCryptosHandler(c services.CatalogService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cryptos, err := c.GetCryptos(r.Context())
		if err != nil {
			logger.Error("Failed to get cryptos:", zap.Error(err))
			helpers.WriteError(w, http.StatusInternalServerError, "Server Error")
			return
		}

		// пустой каталог отдаётся как [], а не null
		response := make([]models.CryptoResponse, 0, len(cryptos))
		for _, crypto := range cryptos {
			response = append(response, models.CryptoResponse{
				Name:         crypto.Name,
				Abbreviation: crypto.Abbreviation,
				IconURL:      crypto.IconURL,
			})
		}

		helpers.WriteJSON(w, http.StatusOK, map[string][]models.CryptoResponse{"cryptos": response})
	})
}

// GetPriceHandler — получение котировки криптовалюты с внешней биржи
func GetPriceHandler(p services.PriceService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cryptoName := chi.URLParam(r, "crypto")

		price, err := p.GetPrice(r.Context(), cryptoName)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrCryptoNotFound):
				helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("Unsupported crypto: %s", cryptoName))
			case errors.Is(err, client.ErrExchangeTimeout):
				helpers.WriteError(w, http.StatusGatewayTimeout, "Request to exchange timed out")
			case errors.Is(err, client.ErrExchangeUnavailable):
				helpers.WriteError(w, http.StatusInternalServerError, err.Error())
			default:
				logger.Error("Failed to get price:", zap.Error(err))
				helpers.WriteError(w, http.StatusInternalServerError, "Server Error")
			}
			return
		}

		helpers.WriteJSON(w, http.StatusOK, price)
	})
}
