package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	GetCryptos = `SELECT id, name, abbreviation, iconurl FROM CRYPTOS ORDER BY id;`
	GetCrypto  = `SELECT id, name, abbreviation, iconurl FROM CRYPTOS WHERE name=$1;`
)

type CryptoDatabase struct {
	DB *Database
}

// Создание хранилища
func NewCryptosStorage(db *Database) CryptosStorage {
	return &CryptoDatabase{DB: db}
}

// GetCryptos - получение каталога поддерживаемых криптовалют
func (s *CryptoDatabase) GetCryptos(ctx context.Context) ([]models.CryptoData, error) {
	var cryptos []models.CryptoData
	rows, err := s.DB.Pool.Query(ctx, GetCryptos)
	if err != nil {
		return nil, fmt.Errorf("failed to get cryptos: %w", err)
	}
	for rows.Next() {
		var (
			id           int
			name         string
			abbreviation string
			iconURL      string
		)
		err := rows.Scan(
			&id,
			&name,
			&abbreviation,
			&iconURL,
		)
		if err != nil {
			return cryptos, fmt.Errorf("failed scan crypto data: %w", err)
		}
		cryptos = append(cryptos, models.CryptoData{
			ID:           id,
			Name:         name,
			Abbreviation: abbreviation,
			IconURL:      iconURL,
		})
	}
	return cryptos, err
}

func (s *CryptoDatabase) GetCrypto(ctx context.Context, name string) (*models.CryptoData, error) {
	var (
		id           int
		dbName       string
		abbreviation string
		iconURL      string
	)

	err := s.DB.Pool.QueryRow(ctx, GetCrypto, name).Scan(
		&id,
		&dbName,
		&abbreviation,
		&iconURL,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCryptoNotFound
		}
		return nil, fmt.Errorf("failed to get crypto: %w", err)
	}

	return &models.CryptoData{
		ID:           id,
		Name:         dbName,
		Abbreviation: abbreviation,
		IconURL:      iconURL,
	}, nil
}
