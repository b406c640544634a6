package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// GetTickerPrice - запрос текущей котировки инструмента у биржи
func (c *Client) GetTickerPrice(ctx context.Context, symbol string) (*TickerResponse, error) {
	endpoint := c.baseURL + "/api/v3/ticker/price?symbol=" + url.QueryEscape(symbol)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ClassifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, HandleErrorResponse(resp)
	}

	var result TickerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: malformed ticker response", ErrExchangeUnavailable)
	}

	return &result, nil
}

// ClassifyTransportError - разделяет таймаут и прочие ошибки передачи
func ClassifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrExchangeTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrExchangeTimeout
	}
	return fmt.Errorf("%w: %s", ErrExchangeUnavailable, err.Error())
}

func HandleErrorResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return NewRateLimitError(resp.Header)
	default:
		return ErrExchangeUnavailable
	}
}
