package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/shopspring/decimal"
)

const (
	GetAssets = `SELECT CRYPTOS.name, ASSETS.user_id, ASSETS.amount
					FROM ASSETS
					JOIN CRYPTOS ON ASSETS.crypto_id = CRYPTOS.id
					WHERE ASSETS.user_id=$1
					ORDER BY ASSETS.created_at;`
	// Атомарное накопление: при конкурентных запросах на одну пару
	// (user_id, crypto_id) инкременты не теряются
	AddAssetAmount = `INSERT INTO ASSETS (user_id, crypto_id, amount, created_at)
						VALUES ($1, $2, $3, $4)
						ON CONFLICT (user_id, crypto_id)
						DO UPDATE SET amount = ASSETS.amount + EXCLUDED.amount
						RETURNING amount;`
	// Атомарная перезапись значения
	SetAssetAmount = `INSERT INTO ASSETS (user_id, crypto_id, amount, created_at)
						VALUES ($1, $2, $3, $4)
						ON CONFLICT (user_id, crypto_id)
						DO UPDATE SET amount = EXCLUDED.amount
						RETURNING amount;`
	DeleteAsset = `DELETE FROM ASSETS WHERE user_id=$1 AND crypto_id=$2;`
)

type AssetDatabase struct {
	DB *Database
}

// Создание хранилища
func NewAssetsStorage(db *Database) AssetsStorage {
	return &AssetDatabase{DB: db}
}

// GetAssets - получение активов пользователя с наименованиями криптовалют
func (s *AssetDatabase) GetAssets(ctx context.Context, userID string) ([]models.AssetData, error) {
	var assets []models.AssetData
	rows, err := s.DB.Pool.Query(ctx, GetAssets, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assets: %w", err)
	}
	for rows.Next() {
		var (
			cryptoName string
			userID     string
			amount     decimal.Decimal
		)
		err := rows.Scan(
			&cryptoName,
			&userID,
			&amount,
		)
		if err != nil {
			return assets, fmt.Errorf("failed scan asset data: %w", err)
		}
		assets = append(assets, models.AssetData{
			CryptoName: cryptoName,
			UserID:     userID,
			Amount:     amount,
		})
	}
	return assets, err
}

// AddAssetAmount - увеличение количества криптовалюты пользователя,
// при отсутствии записи создаёт новую. Возвращает итоговое количество.
func (s *AssetDatabase) AddAssetAmount(ctx context.Context, userID string, cryptoID int, amount decimal.Decimal) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.DB.Pool.QueryRow(ctx, AddAssetAmount, userID, cryptoID, amount, time.Now()).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to add asset amount: %w", err)
	}
	return total, nil
}

// SetAssetAmount - установка количества криптовалюты пользователя,
// при отсутствии записи создаёт новую. Возвращает итоговое количество.
func (s *AssetDatabase) SetAssetAmount(ctx context.Context, userID string, cryptoID int, amount decimal.Decimal) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.DB.Pool.QueryRow(ctx, SetAssetAmount, userID, cryptoID, amount, time.Now()).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to set asset amount: %w", err)
	}
	return total, nil
}

// DeleteAsset - удаление актива пользователя
func (s *AssetDatabase) DeleteAsset(ctx context.Context, userID string, cryptoID int) error {
	tag, err := s.DB.Pool.Exec(ctx, DeleteAsset, userID, cryptoID)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAssetNotFound
	}
	return nil
}
