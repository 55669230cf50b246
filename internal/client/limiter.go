package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - ограничитель исходящих запросов к платёжному шлюзу.
// Держит общий темп опроса и, получив 429 с Retry-After, полностью
// блокирует запросы до истечения срока.
type RateLimiter struct {
	limiter      *rate.Limiter
	mu           sync.Mutex
	blockedUntil time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

// Wait - ожидание снятия блокировки и слота ограничителя
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	wait := time.Until(rl.blockedUntil)
	rl.mu.Unlock()

	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return rl.limiter.Wait(ctx)
}

// Throttle - установка постоянного темпа запросов к шлюзу
func (rl *RateLimiter) Throttle(limit rate.Limit, burst int) {
	rl.limiter.SetLimit(limit)
	rl.limiter.SetBurst(burst)
}

// BlockFor - полная блокировка запросов на указанный срок
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	until := time.Now().Add(duration)
	if until.After(rl.blockedUntil) {
		rl.blockedUntil = until
	}
}

// ParseRetryAfter - разбор заголовка Retry-After (секунды или HTTP-дата)
func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute
}
