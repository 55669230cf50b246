package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - HTTP-клиент платёжного шлюза
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

func NewClient(baseURL string, httpClient HTTPClient) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// GetOrder - запрос состояния заказа у платёжного шлюза
func (c *Client) GetOrder(ctx context.Context, orderNumber string) (*OrderStatusResponse, error) {
	url := fmt.Sprintf("%s/api/orders/%s", c.baseURL, orderNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var result OrderStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// responseError - трактовка неуспешных ответов шлюза
func responseError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return NewRateLimitError(resp.Header)
	case http.StatusNoContent:
		return ErrOrderNotRegistered
	default:
		return ErrServiceUnavailable
	}
}
