package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/crypto-assets/internal/config"
	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/denmor86/crypto-assets/internal/models"
	"github.com/denmor86/crypto-assets/internal/storage"
	"github.com/denmor86/crypto-assets/internal/storage/mocks"
	"github.com/shopspring/decimal"

	"go.uber.org/mock/gomock"
)

var testBitcoin = models.CryptoData{ID: 1, Name: "bitcoin", Abbreviation: "BTC", IconURL: "https://test.com/btc.png"}

func TestAddAssetAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name           string
		setupMocks     func()
		cryptoName     string
		amount         decimal.Decimal
		expectedAmount decimal.Decimal
		expectedError  error
	}{
		{
			name: "Add asset: creates new row #1",
			setupMocks: func() {
				mockStorage.EXPECT().GetCrypto(gomock.Any(), "bitcoin").Return(&testBitcoin, nil)
				mockStorage.EXPECT().AddAssetAmount(gomock.Any(), "user-1", 1, decimal.NewFromFloat(1.5)).Return(decimal.NewFromFloat(1.5), nil)
			},
			cryptoName:     "bitcoin",
			amount:         decimal.NewFromFloat(1.5),
			expectedAmount: decimal.NewFromFloat(1.5),
			expectedError:  nil,
		},
		{
			name: "Add asset: accumulates existing amount #2",
			setupMocks: func() {
				mockStorage.EXPECT().GetCrypto(gomock.Any(), "bitcoin").Return(&testBitcoin, nil)
				mockStorage.EXPECT().AddAssetAmount(gomock.Any(), "user-1", 1, decimal.NewFromFloat(1.5)).Return(decimal.NewFromFloat(2.5), nil)
			},
			cryptoName:     "bitcoin",
			amount:         decimal.NewFromFloat(1.5),
			expectedAmount: decimal.NewFromFloat(2.5),
			expectedError:  nil,
		},
		{
			// при отрицательном количестве до хранилища не доходим
			name:          "Add asset: negative amount #3",
			setupMocks:    func() {},
			cryptoName:    "bitcoin",
			amount:        decimal.NewFromFloat(-1),
			expectedError: ErrInvalidAmount,
		},
		{
			name: "Add asset: unsupported crypto #4",
			setupMocks: func() {
				mockStorage.EXPECT().GetCrypto(gomock.Any(), "dogecoin").Return(nil, storage.ErrCryptoNotFound)
			},
			cryptoName:    "dogecoin",
			amount:        decimal.NewFromFloat(1),
			expectedError: storage.ErrCryptoNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			assets := NewAssets(mockStorage)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			total, err := assets.AddAssetAmount(ctx, "user-1", tc.cryptoName, tc.amount)

			if tc.expectedError != nil {
				if !errors.Is(err, tc.expectedError) {
					t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if !total.Equal(tc.expectedAmount) {
				t.Errorf("Expected amount %s, got %s", tc.expectedAmount, total)
			}
		})
	}
}

func TestSetAssetAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name           string
		setupMocks     func()
		cryptoName     string
		amount         decimal.Decimal
		expectedAmount decimal.Decimal
		expectedError  error
	}{
		{
			// перезапись, а не накопление
			name: "Set asset: overwrites amount #1",
			setupMocks: func() {
				mockStorage.EXPECT().GetCrypto(gomock.Any(), "bitcoin").Return(&testBitcoin, nil)
				mockStorage.EXPECT().SetAssetAmount(gomock.Any(), "user-1", 1, decimal.NewFromFloat(1.2)).Return(decimal.NewFromFloat(1.2), nil)
			},
			cryptoName:     "bitcoin",
			amount:         decimal.NewFromFloat(1.2),
			expectedAmount: decimal.NewFromFloat(1.2),
			expectedError:  nil,
		},
		{
			name:          "Set asset: negative amount #2",
			setupMocks:    func() {},
			cryptoName:    "bitcoin",
			amount:        decimal.NewFromFloat(-0.1),
			expectedError: ErrInvalidAmount,
		},
		{
			name: "Set asset: unsupported crypto #3",
			setupMocks: func() {
				mockStorage.EXPECT().GetCrypto(gomock.Any(), "dogecoin").Return(nil, storage.ErrCryptoNotFound)
			},
			cryptoName:    "dogecoin",
			amount:        decimal.NewFromFloat(1),
			expectedError: storage.ErrCryptoNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			assets := NewAssets(mockStorage)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			total, err := assets.SetAssetAmount(ctx, "user-1", tc.cryptoName, tc.amount)

			if tc.expectedError != nil {
				if !errors.Is(err, tc.expectedError) {
					t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if !total.Equal(tc.expectedAmount) {
				t.Errorf("Expected amount %s, got %s", tc.expectedAmount, total)
			}
		})
	}
}

func TestDeleteAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name          string
		setupMocks    func()
		cryptoName    string
		expectedError error
	}{
		{
			name: "Delete asset: Success #1",
			setupMocks: func() {
				mockStorage.EXPECT().GetCrypto(gomock.Any(), "bitcoin").Return(&testBitcoin, nil)
				mockStorage.EXPECT().DeleteAsset(gomock.Any(), "user-1", 1).Return(nil)
			},
			cryptoName:    "bitcoin",
			expectedError: nil,
		},
		{
			name: "Delete asset: no asset row #2",
			setupMocks: func() {
				mockStorage.EXPECT().GetCrypto(gomock.Any(), "bitcoin").Return(&testBitcoin, nil)
				mockStorage.EXPECT().DeleteAsset(gomock.Any(), "user-1", 1).Return(storage.ErrAssetNotFound)
			},
			cryptoName:    "bitcoin",
			expectedError: storage.ErrAssetNotFound,
		},
		{
			// неизвестная криптовалюта равнозначна отсутствию актива
			name: "Delete asset: unsupported crypto #3",
			setupMocks: func() {
				mockStorage.EXPECT().GetCrypto(gomock.Any(), "dogecoin").Return(nil, storage.ErrCryptoNotFound)
			},
			cryptoName:    "dogecoin",
			expectedError: storage.ErrAssetNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			assets := NewAssets(mockStorage)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := assets.DeleteAsset(ctx, "user-1", tc.cryptoName)

			if tc.expectedError != nil {
				if !errors.Is(err, tc.expectedError) {
					t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			}
		})
	}
}

func TestGetAssets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	stored := []models.AssetData{
		{CryptoName: "bitcoin", UserID: "user-1", Amount: decimal.NewFromFloat(1.5)},
		{CryptoName: "ethereum", UserID: "user-1", Amount: decimal.NewFromFloat(10)},
	}
	mockStorage.EXPECT().GetAssets(gomock.Any(), "user-1").Return(stored, nil)

	assets := NewAssets(mockStorage)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := assets.GetAssets(ctx, "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if len(result) != 2 {
		t.Fatalf("Expected 2 assets, got %d", len(result))
	}
	if result[0].CryptoName != "bitcoin" || result[1].CryptoName != "ethereum" {
		t.Errorf("Expected assets in insertion order, got %v", result)
	}
}
