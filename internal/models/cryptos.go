package models

import "encoding/json"

// CryptoData - модель криптовалюты из каталога
type CryptoData struct {
	ID           int
	Name         string
	Abbreviation string
	IconURL      string
}

// CryptoResponse - модель криптовалюты для выдачи
type CryptoResponse struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	IconURL      string `json:"iconurl"`
}

// PriceResponse - модель ответа с котировкой.
// Цена отдаётся в том виде, в котором пришла от биржи, без нормализации.
type PriceResponse struct {
	CryptoName string          `json:"crypto_name"`
	Price      json.RawMessage `json:"price"`
	Unit       string          `json:"unit"`
}
