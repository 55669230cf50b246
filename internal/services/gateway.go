package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/storecore/loyalty/internal/client"
	"github.com/storecore/loyalty/internal/config"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"golang.org/x/time/rate"
)

const (
	GatewayRetryBase       = 500 * time.Millisecond
	GatewayRetryMaxRetries = 3
)

// GatewayService - опрос платёжного шлюза о состоянии заказа.
// Сетевые ошибки и пятисотки шлюза ретраятся с экспоненциальной
// задержкой; доменные ответы (не зарегистрирован, не оплачен)
// не ретраятся никогда.
type GatewayService struct {
	Client     *client.Client
	Limiter    *client.RateLimiter
	RetryBase  time.Duration
	MaxRetries uint64
}

func NewGatewayService(cfg config.GatewayConfig) client.GatewayService {
	limiter := client.NewRateLimiter()
	if cfg.RequestRate > 0 {
		limiter.Throttle(rate.Limit(cfg.RequestRate), 1)
	}
	return &GatewayService{
		Client:     client.NewClient(cfg.GatewayAddr, &http.Client{}),
		Limiter:    limiter,
		RetryBase:  GatewayRetryBase,
		MaxRetries: GatewayRetryMaxRetries,
	}
}

func (s *GatewayService) GetOrderStatus(ctx context.Context, orderNumber string) (string, error) {
	if err := s.Limiter.Wait(ctx); err != nil {
		return "", err
	}

	var resp *client.OrderStatusResponse
	backoff := retry.WithMaxRetries(s.MaxRetries, retry.NewExponential(s.RetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var reqErr error
		resp, reqErr = s.Client.GetOrder(ctx, orderNumber)
		if reqErr == nil {
			return nil
		}
		// временная недоступность шлюза - повторяемая ошибка
		if errors.Is(reqErr, client.ErrServiceUnavailable) {
			return retry.RetryableError(reqErr)
		}
		return reqErr
	})
	if err != nil {
		// проверка большого количества запросов
		var rateLimitErr *client.RateLimitError
		if errors.As(err, &rateLimitErr) {
			logger.Warn("Too many requests to payment gateway:", orderNumber)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
			return models.OrderStatusProcessing, nil
		}
		return "", err
	}
	// проверяем возможные статусы
	if resp.Status != models.OrderStatusRegistered &&
		resp.Status != models.OrderStatusProcessing &&
		resp.Status != models.OrderStatusInvalid &&
		resp.Status != models.OrderStatusProcessed {
		logger.Error("Undefined status request:", resp.Status)
		return "", fmt.Errorf("undefined status request %s", resp.Status)
	}
	return resp.Status, nil
}
