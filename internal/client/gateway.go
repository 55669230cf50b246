package client

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// OrderStatusResponse - ответ платёжного шлюза о состоянии заказа
type OrderStatusResponse struct {
	Order  string `json:"order"`
	Status string `json:"status"`
}

// GatewayService - источник событий о заказах: опрос платёжного шлюза
// о переходе заказа в оплаченное состояние
type GatewayService interface {
	GetOrderStatus(ctx context.Context, orderNumber string) (string, error)
}

var (
	ErrServiceUnavailable = errors.New("payment gateway unavailable")
	ErrOrderNotRegistered = errors.New("order not registered in payment gateway")
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
