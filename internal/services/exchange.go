package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/denmor86/crypto-assets/internal/client"
	"github.com/denmor86/crypto-assets/internal/config"
	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "exchange-service",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// Exchange - сервис запроса котировок у внешней биржи.
// Повторов нет: любая ошибка сразу возвращается вызывающему.
type Exchange struct {
	Client  *client.Client
	Limiter *client.RateLimiter
	Breaker *gobreaker.CircuitBreaker
	Timeout time.Duration
}

func NewExchangeService(cfg config.ExchangeConfig) client.ExchangeService {
	return &Exchange{
		Client:  client.NewClient(cfg.ExchangeAddr, &http.Client{Timeout: cfg.RequestTimeout}),
		Limiter: client.NewRateLimiter(),
		Breaker: InitCircuitBreaker(),
		Timeout: cfg.RequestTimeout,
	}
}

func (s *Exchange) GetTickerPrice(ctx context.Context, symbol string) (json.RawMessage, error) {
	// ограничиваем весь вызов, включая ожидание лимитера
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, client.ClassifyTransportError(err)
	}

	result, err := s.Breaker.Execute(func() (interface{}, error) {
		resp, err := s.Client.GetTickerPrice(ctx, symbol)
		if err != nil {
			// проверка большого количества запросов
			if rateLimitErr, ok := err.(*client.RateLimitError); ok {
				logger.Warn("Too many requests to exchange service:", symbol)
				s.Limiter.BlockFor(rateLimitErr.RetryAfter)
				return nil, client.ErrExchangeUnavailable
			}
			return nil, err
		}
		return resp.Price, nil
	})
	if err != nil {
		// открытый предохранитель — сервис недоступен, без повторов
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, client.ErrExchangeUnavailable
		}
		return nil, err
	}
	return result.(json.RawMessage), nil
}
