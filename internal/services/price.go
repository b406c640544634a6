package services

import (
	"context"
	"errors"

	"github.com/denmor86/crypto-assets/internal/client"
	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/denmor86/crypto-assets/internal/storage"
	"go.uber.org/zap"
)

// Котировки запрашиваются в евро
const PriceUnit = "EUR"

type PriceService interface {
	GetPrice(ctx context.Context, cryptoName string) (*models.PriceResponse, error)
}

type Price struct {
	Storage  storage.IStorage
	Exchange client.ExchangeService
}

// Создание сервиса
func NewPrice(storage storage.IStorage, exchange client.ExchangeService) PriceService {
	return &Price{Storage: storage, Exchange: exchange}
}

// GetPrice возвращает текущую котировку криптовалюты.
// Для неизвестной криптовалюты запрос к бирже не выполняется.
func (s *Price) GetPrice(ctx context.Context, cryptoName string) (*models.PriceResponse, error) {
	crypto, err := s.Storage.GetCrypto(ctx, cryptoName)
	if err != nil {
		if errors.Is(err, storage.ErrCryptoNotFound) {
			logger.Warn("Unsupported crypto", cryptoName)
			return nil, storage.ErrCryptoNotFound
		}
		logger.Error("Failed to get crypto", zap.Error(err))
		return nil, err
	}

	price, err := s.Exchange.GetTickerPrice(ctx, crypto.Abbreviation+PriceUnit)
	if err != nil {
		logger.Warn("Failed to get ticker price", crypto.Name, zap.Error(err))
		return nil, err
	}

	return &models.PriceResponse{
		CryptoName: crypto.Name,
		Price:      price,
		Unit:       PriceUnit,
	}, nil
}
