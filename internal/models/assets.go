package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetRequest - модель запроса изменения количества криптовалюты
type AssetRequest struct {
	Amount *float64 `json:"amount"`
}

// AssetData - модель хранения актива пользователя
type AssetData struct {
	UserID     string
	CryptoName string
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

// AssetResponse - модель актива пользователя для выдачи
type AssetResponse struct {
	CryptoName string  `json:"crypto_name"`
	UserID     string  `json:"user_id"`
	Amount     float64 `json:"amount"`
}

// AssetChangedResponse — структура ответа об изменении актива
type AssetChangedResponse struct {
	Message   string  `json:"message"`
	Crypto    string  `json:"crypto"`
	NewAmount float64 `json:"new_amount"`
}
