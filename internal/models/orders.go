package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заказов
const (
	OrderStatusInvalid    = "INVALID"
	OrderStatusNew        = "NEW"
	OrderStatusProcessed  = "PROCESSED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusRegistered = "REGISTERED"
)

// OrderRequest - модель регистрации покупки, приходит извне
type OrderRequest struct {
	Number string  `json:"order"`
	Amount float64 `json:"amount"`
}

// OrderResponse - модель заказа пользователя для выдачи
type OrderResponse struct {
	Number        string  `json:"number"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	PointsAwarded int64   `json:"points_awarded,omitempty"`
	UploadedAt    string  `json:"uploaded_at"`
}

// OrderData - модель заказа пользователя
type OrderData struct {
	Number        string
	UserID        string
	Status        string
	Amount        decimal.Decimal
	PointsAwarded int64
	UploadedAt    time.Time
}
