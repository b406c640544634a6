package services

import (
	"context"
	"errors"

	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/denmor86/crypto-assets/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
)

type AssetsService interface {
	GetAssets(ctx context.Context, userID string) ([]models.AssetData, error)
	AddAssetAmount(ctx context.Context, userID string, cryptoName string, amount decimal.Decimal) (decimal.Decimal, error)
	SetAssetAmount(ctx context.Context, userID string, cryptoName string, amount decimal.Decimal) (decimal.Decimal, error)
	DeleteAsset(ctx context.Context, userID string, cryptoName string) error
}

type Assets struct {
	Storage storage.IStorage
}

// Создание сервиса
func NewAssets(storage storage.IStorage) AssetsService {
	return &Assets{Storage: storage}
}

// GetAssets возвращает все активы пользователя
func (s *Assets) GetAssets(ctx context.Context, userID string) ([]models.AssetData, error) {
	assets, err := s.Storage.GetAssets(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user assets", zap.Error(err))
		return nil, err
	}
	return assets, nil
}

// AddAssetAmount - увеличивает количество криптовалюты пользователя на amount,
// при отсутствии актива создаёт его. Возвращает итоговое количество.
func (s *Assets) AddAssetAmount(ctx context.Context, userID string, cryptoName string, amount decimal.Decimal) (decimal.Decimal, error) {
	crypto, err := s.resolveCrypto(ctx, cryptoName, amount)
	if err != nil {
		return decimal.Zero, err
	}
	return s.Storage.AddAssetAmount(ctx, userID, crypto.ID, amount)
}

// SetAssetAmount - устанавливает количество криптовалюты пользователя в amount,
// при отсутствии актива создаёт его. Возвращает итоговое количество.
func (s *Assets) SetAssetAmount(ctx context.Context, userID string, cryptoName string, amount decimal.Decimal) (decimal.Decimal, error) {
	crypto, err := s.resolveCrypto(ctx, cryptoName, amount)
	if err != nil {
		return decimal.Zero, err
	}
	return s.Storage.SetAssetAmount(ctx, userID, crypto.ID, amount)
}

// DeleteAsset - удаляет актив пользователя
func (s *Assets) DeleteAsset(ctx context.Context, userID string, cryptoName string) error {
	crypto, err := s.Storage.GetCrypto(ctx, cryptoName)
	if err != nil {
		if errors.Is(err, storage.ErrCryptoNotFound) {
			// неизвестная криптовалюта означает и отсутствие актива
			return storage.ErrAssetNotFound
		}
		return err
	}
	return s.Storage.DeleteAsset(ctx, userID, crypto.ID)
}

// Общая для добавления и перезаписи часть: проверка количества
// и поиск криптовалюты в каталоге. Отрицательные количества запрещены.
func (s *Assets) resolveCrypto(ctx context.Context, cryptoName string, amount decimal.Decimal) (*models.CryptoData, error) {
	if amount.LessThan(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	crypto, err := s.Storage.GetCrypto(ctx, cryptoName)
	if err != nil {
		if errors.Is(err, storage.ErrCryptoNotFound) {
			logger.Warn("Unsupported crypto", cryptoName)
			return nil, storage.ErrCryptoNotFound
		}
		logger.Error("Failed to get crypto", zap.Error(err))
		return nil, err
	}
	return crypto, nil
}
