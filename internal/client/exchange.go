package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// TickerResponse - модель ответа биржи с котировкой инструмента.
// Цена не нормализуется и передаётся дальше как есть.
type TickerResponse struct {
	Symbol string          `json:"symbol"`
	Price  json.RawMessage `json:"price"`
}

type ExchangeService interface {
	GetTickerPrice(ctx context.Context, symbol string) (json.RawMessage, error)
}

var (
	ErrExchangeUnavailable = errors.New("exchange service unavailable")
	ErrExchangeTimeout     = errors.New("exchange request timed out")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
