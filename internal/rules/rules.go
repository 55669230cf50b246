// Package rules - чистые вычисления программы лояльности: начисление баллов
// за покупку, определение уровня по накопленным баллам, подбор варианта
// обмена. Функции не имеют побочных эффектов и работают поверх изменяемой
// конфигурации RulesConfig.
package rules

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/storecore/loyalty/internal/models"
)

var (
	ErrInvalidConfig = errors.New("invalid loyalty rules configuration")
)

// Validate - проверка корректности конфигурации правил.
// Требования: ненулевой список уровней, первый уровень с порогом 0,
// пороги строго возрастают, ставка и множители неотрицательные,
// варианты обмена со строго положительной стоимостью.
func Validate(cfg *models.RulesConfig) error {
	if cfg.PointsPerUnit.IsNegative() {
		return fmt.Errorf("%w: negative points per unit", ErrInvalidConfig)
	}
	if len(cfg.Tiers) == 0 {
		return fmt.Errorf("%w: no tiers defined", ErrInvalidConfig)
	}
	if cfg.Tiers[0].PointsRequired != 0 {
		return fmt.Errorf("%w: first tier must start at zero points", ErrInvalidConfig)
	}
	for i, tier := range cfg.Tiers {
		if tier.ID == "" {
			return fmt.Errorf("%w: tier without id", ErrInvalidConfig)
		}
		if i > 0 && tier.PointsRequired <= cfg.Tiers[i-1].PointsRequired {
			return fmt.Errorf("%w: tier thresholds must be strictly ascending", ErrInvalidConfig)
		}
		if tier.Benefits.EarningMultiplier.IsNegative() {
			return fmt.Errorf("%w: negative earning multiplier for tier %s", ErrInvalidConfig, tier.ID)
		}
	}
	for _, option := range cfg.RedemptionOptions {
		if option.PointsRequired <= 0 {
			return fmt.Errorf("%w: redemption option with non-positive cost", ErrInvalidConfig)
		}
		if option.DiscountAmount.IsNegative() {
			return fmt.Errorf("%w: redemption option with negative discount", ErrInvalidConfig)
		}
	}
	return nil
}

// CalculatePointsEarned - расчёт баллов за покупку.
// base = floor(amount * ставка), результат = floor(base * множитель уровня).
// Отрицательная сумма даёт 0 баллов. Неизвестный уровень использует
// множитель первого (базового) уровня - контракт совместимости с
// исходной программой, см. DESIGN.md.
func CalculatePointsEarned(cfg *models.RulesConfig, amount decimal.Decimal, tierID string) int64 {
	if amount.IsNegative() {
		return 0
	}
	base := amount.Mul(cfg.PointsPerUnit).Floor()

	tier, ok := FindTier(cfg, tierID)
	if !ok {
		tier = cfg.Tiers[0]
	}
	return base.Mul(tier.Benefits.EarningMultiplier).Floor().IntPart()
}

// CalculateTier - определение уровня по накопленным за всё время баллам.
// Возвращается последний уровень, порог которого не превышает totalEarned.
// Первый уровень имеет порог 0, поэтому результат определён всегда.
func CalculateTier(cfg *models.RulesConfig, totalEarned int64) models.TierConfig {
	if totalEarned < 0 {
		totalEarned = 0
	}
	current := cfg.Tiers[0]
	for _, tier := range cfg.Tiers {
		if tier.PointsRequired > totalEarned {
			break
		}
		current = tier
	}
	return current
}

// FindTier - поиск уровня по идентификатору
func FindTier(cfg *models.RulesConfig, tierID string) (models.TierConfig, bool) {
	for _, tier := range cfg.Tiers {
		if tier.ID == tierID {
			return tier, true
		}
	}
	return models.TierConfig{}, false
}

// FindOption - поиск варианта обмена по стоимости в баллах
func FindOption(cfg *models.RulesConfig, pointsCost int64) (models.RedemptionOption, bool) {
	for _, option := range cfg.RedemptionOptions {
		if option.PointsRequired == pointsCost {
			return option, true
		}
	}
	return models.RedemptionOption{}, false
}

// DefaultRules - конфигурация правил по умолчанию: 1 балл за 10 единиц
// валюты, четыре уровня и таблица обмена баллов на скидки.
func DefaultRules() models.RulesConfig {
	return models.RulesConfig{
		PointsPerUnit: decimal.NewFromFloat(0.1),
		Tiers: []models.TierConfig{
			{
				ID:             "bronze",
				Name:           "Bronze",
				PointsRequired: 0,
				Benefits: models.TierBenefits{
					DiscountPercentage:    0,
					EarningMultiplier:     decimal.NewFromInt(1),
					FreeShippingThreshold: decimal.NewFromInt(1000),
				},
			},
			{
				ID:             "silver",
				Name:           "Silver",
				PointsRequired: 500,
				Benefits: models.TierBenefits{
					DiscountPercentage:    5,
					EarningMultiplier:     decimal.NewFromFloat(1.25),
					FreeShippingThreshold: decimal.NewFromInt(750),
				},
			},
			{
				ID:             "gold",
				Name:           "Gold",
				PointsRequired: 1500,
				Benefits: models.TierBenefits{
					DiscountPercentage:    10,
					EarningMultiplier:     decimal.NewFromFloat(1.5),
					FreeShippingThreshold: decimal.NewFromInt(500),
					PrioritySupport:       true,
				},
			},
			{
				ID:             "platinum",
				Name:           "Platinum",
				PointsRequired: 3000,
				Benefits: models.TierBenefits{
					DiscountPercentage:    15,
					EarningMultiplier:     decimal.NewFromInt(2),
					FreeShippingThreshold: decimal.Zero,
					ExclusiveAccess:       true,
					PrioritySupport:       true,
				},
			},
		},
		RedemptionOptions: []models.RedemptionOption{
			{PointsRequired: 250, DiscountAmount: decimal.NewFromInt(150)},
			{PointsRequired: 500, DiscountAmount: decimal.NewFromInt(325)},
			{PointsRequired: 1000, DiscountAmount: decimal.NewFromInt(700)},
		},
	}
}
