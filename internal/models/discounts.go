package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountCode - одноразовый промокод, выданный за списание баллов.
// Жизненный цикл: issued -> used, обратного перехода нет.
type DiscountCode struct {
	Code           string
	UserID         string
	PointsCost     int64
	DiscountAmount decimal.Decimal
	IssuedAt       time.Time
	ExpiresAt      time.Time
	UsedAt         *time.Time
}

// Used - промокод уже применён
func (d *DiscountCode) Used() bool {
	return d.UsedAt != nil
}

// Expired - срок действия промокода истёк к моменту now
func (d *DiscountCode) Expired(now time.Time) bool {
	return !d.ExpiresAt.After(now)
}

// RedemptionRequest - модель запроса обмена баллов на промокод, приходит извне
type RedemptionRequest struct {
	Points int64 `json:"points"`
}

// DiscountRequest - модель запроса проверки/применения промокода
type DiscountRequest struct {
	Code string `json:"code"`
}

// DiscountResponse - модель промокода для выдачи
type DiscountResponse struct {
	Code           string  `json:"code"`
	PointsCost     int64   `json:"points_cost"`
	DiscountAmount float64 `json:"discount_amount"`
	IssuedAt       string  `json:"issued_at"`
	ExpiresAt      string  `json:"expires_at"`
	Used           bool    `json:"used"`
}
