package models

import (
	"time"
)

// Типы транзакций начисления и списания баллов
const (
	TransactionPurchase    = "purchase"
	TransactionAdminAdd    = "admin_add"
	TransactionAdminDeduct = "admin_deduct"
	TransactionRedemption  = "redemption"
	TransactionBonus       = "bonus"
)

// PointsAccount - модель накопительного счёта пользователя.
// Balance - доступные для списания баллы, TotalEarned - баллы, накопленные
// за всё время. TotalEarned только растёт: списание баллов его не уменьшает,
// поэтому уровень лояльности, вычисляемый по TotalEarned, не понижается.
type PointsAccount struct {
	UserID      string
	Balance     int64
	TotalEarned int64
	UpdatedAt   time.Time
}

// PointsTransaction - неизменяемая запись журнала операций со счётом.
// Инвариант: BalanceAfter == BalanceBefore + SignedAmount().
type PointsTransaction struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	OrderID       string    `json:"order_id,omitempty"`
	Type          string    `json:"type"`
	Amount        int64     `json:"amount"`
	BalanceBefore int64     `json:"balance_before"`
	BalanceAfter  int64     `json:"balance_after"`
	Description   string    `json:"description,omitempty"`
	AdminID       string    `json:"admin_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// SignedAmount - величина изменения баланса с учётом типа транзакции.
// Amount хранится по модулю, знак определяется типом.
func (t *PointsTransaction) SignedAmount() int64 {
	switch t.Type {
	case TransactionAdminDeduct, TransactionRedemption:
		return -t.Amount
	default:
		return t.Amount
	}
}

// EarnedAmount - прирост накопленных за всё время баллов.
// Списания (redemption, admin_deduct) не затрагивают TotalEarned.
func (t *PointsTransaction) EarnedAmount() int64 {
	switch t.Type {
	case TransactionPurchase, TransactionAdminAdd, TransactionBonus:
		return t.Amount
	default:
		return 0
	}
}

// BalanceResponse - модель баланса пользователя для выдачи
type BalanceResponse struct {
	Balance     int64        `json:"balance"`
	TotalEarned int64        `json:"total_earned"`
	Tier        TierResponse `json:"tier"`
}

// TierResponse - модель уровня лояльности для выдачи
type TierResponse struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Benefits TierBenefits `json:"benefits"`
}

// HistoryResponse - модель записи журнала операций для выдачи
type HistoryResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Balance     int64  `json:"balance"`
	Description string `json:"description,omitempty"`
	ProcessedAt string `json:"processed_at"`
}

// AdjustmentRequest - модель запроса ручной корректировки баллов администратором
type AdjustmentRequest struct {
	Login  string `json:"login"`
	Delta  int64  `json:"delta"`
	Reason string `json:"reason"`
}
