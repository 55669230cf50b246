package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/rules"
	"github.com/storecore/loyalty/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrUnknownOption   = errors.New("unknown redemption option")
	ErrCodeNotFound    = errors.New("discount code not found")
	ErrCodeAlreadyUsed = errors.New("discount code already used")
	ErrCodeExpired     = errors.New("discount code expired")
	ErrCodeNotOwned    = errors.New("discount code belongs to another user")
)

// DiscountValidityPeriod - срок действия промокода с момента выдачи
const DiscountValidityPeriod = 30 * 24 * time.Hour

type RedemptionService interface {
	Redeem(ctx context.Context, login string, pointsCost int64) (*models.DiscountCode, error)
	GetDiscounts(ctx context.Context, login string) ([]models.DiscountCode, error)
	ValidateDiscountCode(ctx context.Context, code string, login string) (*models.DiscountCode, error)
	ApplyDiscountCode(ctx context.Context, code string, login string) (*models.DiscountCode, error)
}

type Redemption struct {
	Accounts  storage.AccountsStorage
	Discounts storage.DiscountsStorage
	Users     storage.UsersStorage
	Rules     RulesService
}

// Создание сервиса
func NewRedemption(accounts storage.AccountsStorage, discounts storage.DiscountsStorage, users storage.UsersStorage, rulesService RulesService) RedemptionService {
	return &Redemption{Accounts: accounts, Discounts: discounts, Users: users, Rules: rulesService}
}

// Redeem - обмен баллов на одноразовый промокод.
// Стоимость должна совпадать с одним из настроенных вариантов обмена.
// Списываются только доступные баллы: накопленные за всё время не
// уменьшаются, поэтому уровень после обмена остаётся прежним.
func (s *Redemption) Redeem(ctx context.Context, login string, pointsCost int64) (*models.DiscountCode, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	cfg, err := s.Rules.GetRules(ctx)
	if err != nil {
		return nil, err
	}

	option, ok := rules.FindOption(cfg, pointsCost)
	if !ok {
		return nil, ErrUnknownOption
	}

	transaction := models.PointsTransaction{
		ID:          uuid.New().String(),
		UserID:      user.UserID,
		Type:        models.TransactionRedemption,
		Amount:      option.PointsRequired,
		Description: fmt.Sprintf("redeemed %d points", option.PointsRequired),
		CreatedAt:   time.Now(),
	}

	account, err := s.Accounts.ApplyTransaction(ctx, transaction)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientFunds) || errors.Is(err, storage.ErrAccountNotFound) {
			return nil, ErrInsufficientPoints
		}
		logger.Error("Failed to redeem points", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	discount := models.DiscountCode{
		Code:           GenerateDiscountCode(),
		UserID:         user.UserID,
		PointsCost:     option.PointsRequired,
		DiscountAmount: option.DiscountAmount,
		IssuedAt:       now,
		ExpiresAt:      now.Add(DiscountValidityPeriod),
	}

	if err := s.Discounts.AddDiscount(ctx, discount); err != nil {
		logger.Error("Failed to save discount code", zap.Error(err))
		return nil, err
	}

	// уровень пересчитывается по неизменённому TotalEarned: пороги могли
	// поменяться параллельно, само списание уровень не трогает
	tier := rules.CalculateTier(cfg, account.TotalEarned)
	logger.Info("Points redeemed", "login", login, "cost", option.PointsRequired, "tier", tier.ID)

	return &discount, nil
}

// GetDiscounts - список промокодов пользователя
func (s *Redemption) GetDiscounts(ctx context.Context, login string) ([]models.DiscountCode, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	discounts, err := s.Discounts.GetDiscounts(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to get discounts", zap.Error(err))
		return nil, err
	}
	return discounts, nil
}

// ValidateDiscountCode - проверка промокода перед применением:
// существует, не применён, не просрочен, принадлежит пользователю
func (s *Redemption) ValidateDiscountCode(ctx context.Context, code string, login string) (*models.DiscountCode, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	discount, err := s.Discounts.GetDiscount(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrDiscountNotFound) {
			return nil, ErrCodeNotFound
		}
		logger.Error("Failed to get discount", zap.Error(err))
		return nil, err
	}

	if discount.UserID != user.UserID {
		return nil, ErrCodeNotOwned
	}
	if discount.Used() {
		return nil, ErrCodeAlreadyUsed
	}
	if discount.Expired(time.Now()) {
		return nil, ErrCodeExpired
	}

	return discount, nil
}

// ApplyDiscountCode - применение промокода на оформлении заказа.
// Переход issued -> used, обратного пути нет.
func (s *Redemption) ApplyDiscountCode(ctx context.Context, code string, login string) (*models.DiscountCode, error) {
	discount, err := s.ValidateDiscountCode(ctx, code, login)
	if err != nil {
		return nil, err
	}

	usedAt := time.Now()
	if err := s.Discounts.MarkDiscountUsed(ctx, code, usedAt); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrCodeAlreadyUsed
		}
		logger.Error("Failed to mark discount used", zap.Error(err))
		return nil, err
	}

	discount.UsedAt = &usedAt
	logger.Info("Discount code applied", "code", code, "login", login)
	return discount, nil
}

// GenerateDiscountCode - генерация уникального кода промокода
func GenerateDiscountCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "LOYAL-" + raw[:12]
}
