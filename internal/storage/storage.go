package storage

import (
	"context"
	"errors"

	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/shopspring/decimal"
)

type UsersStorage interface {
	AddUser(ctx context.Context, username string, passwordHash string, email string) (string, error)
	GetUser(ctx context.Context, username string) (*models.UserData, error)
}

type CryptosStorage interface {
	GetCryptos(ctx context.Context) ([]models.CryptoData, error)
	GetCrypto(ctx context.Context, name string) (*models.CryptoData, error)
}

type AssetsStorage interface {
	GetAssets(ctx context.Context, userID string) ([]models.AssetData, error)
	AddAssetAmount(ctx context.Context, userID string, cryptoID int, amount decimal.Decimal) (decimal.Decimal, error)
	SetAssetAmount(ctx context.Context, userID string, cryptoID int, amount decimal.Decimal) (decimal.Decimal, error)
	DeleteAsset(ctx context.Context, userID string, cryptoID int) error
}

// IStorage - общий интерфейс хранилища сервиса
type IStorage interface {
	UsersStorage
	CryptosStorage
	AssetsStorage
}

type Storage struct {
	UsersStorage
	CryptosStorage
	AssetsStorage
}

// Создание хранилища
func NewStorage(db *Database) IStorage {
	return &Storage{
		UsersStorage:   NewUsersStorage(db),
		CryptosStorage: NewCryptosStorage(db),
		AssetsStorage:  NewAssetsStorage(db),
	}
}

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrCryptoNotFound = errors.New("crypto not found")
	ErrAssetNotFound  = errors.New("asset not found")

	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)
