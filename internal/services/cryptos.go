package services

import (
	"context"

	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/denmor86/crypto-assets/internal/storage"
	"go.uber.org/zap"
)

type CatalogService interface {
	GetCryptos(ctx context.Context) ([]models.CryptoData, error)
}

type Catalog struct {
	Storage storage.IStorage
}

// Создание сервиса
func NewCatalog(storage storage.IStorage) CatalogService {
	return &Catalog{Storage: storage}
}

// GetCryptos возвращает каталог поддерживаемых криптовалют
func (s *Catalog) GetCryptos(ctx context.Context) ([]models.CryptoData, error) {
	cryptos, err := s.Storage.GetCryptos(ctx)
	if err != nil {
		logger.Error("Failed to get cryptos", zap.Error(err))
		return nil, err
	}
	return cryptos, nil
}
