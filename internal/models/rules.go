package models

import (
	"github.com/shopspring/decimal"
)

// TierBenefits - привилегии уровня лояльности
type TierBenefits struct {
	DiscountPercentage    float64         `json:"discount_percentage"`
	EarningMultiplier     decimal.Decimal `json:"earning_multiplier"`
	FreeShippingThreshold decimal.Decimal `json:"free_shipping_threshold"`
	ExclusiveAccess       bool            `json:"exclusive_access"`
	PrioritySupport       bool            `json:"priority_support"`
}

// TierConfig - конфигурация уровня лояльности.
// PointsRequired - нижняя граница накопленных баллов (включительно).
type TierConfig struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	PointsRequired int64        `json:"points_required"`
	Benefits       TierBenefits `json:"benefits"`
}

// RedemptionOption - вариант обмена баллов на скидку
type RedemptionOption struct {
	PointsRequired int64           `json:"points_required"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// RulesConfig - конфигурация программы лояльности. Хранится как данные,
// а не код: администратор может менять ставки и пороги на лету,
// изменения видны всем пользователям сразу (версионирования нет).
// Уровни упорядочены по возрастанию PointsRequired, первый уровень
// обязан иметь порог 0 - он назначается по умолчанию.
type RulesConfig struct {
	PointsPerUnit     decimal.Decimal    `json:"points_per_unit"`
	Tiers             []TierConfig       `json:"tiers"`
	RedemptionOptions []RedemptionOption `json:"redemption_options"`
}
