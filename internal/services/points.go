package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/rules"
	"github.com/storecore/loyalty/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrInsufficientPoints    = errors.New("insufficient points")
	ErrInvalidAdjustment     = errors.New("invalid adjustment delta")
	ErrOrderAlreadyProcessed = errors.New("order already awarded points")
)

type PointsService interface {
	GetBalance(ctx context.Context, login string) (*models.BalanceResponse, error)
	GetHistory(ctx context.Context, login string) ([]models.PointsTransaction, error)
	AwardPurchasePoints(ctx context.Context, userID string, amount decimal.Decimal, orderID string) (int64, error)
	AdminAdjustPoints(ctx context.Context, login string, delta int64, reason string, adminID string) (*models.PointsAccount, error)
}

type Points struct {
	Accounts storage.AccountsStorage
	Users    storage.UsersStorage
	Rules    RulesService
}

// Создание сервиса
func NewPoints(accounts storage.AccountsStorage, users storage.UsersStorage, rulesService RulesService) PointsService {
	return &Points{Accounts: accounts, Users: users, Rules: rulesService}
}

// GetBalance - баланс, накопленные за всё время баллы и текущий уровень.
// Счёт создаётся лениво, поэтому его отсутствие - нулевой баланс
// на базовом уровне, а не ошибка.
func (s *Points) GetBalance(ctx context.Context, login string) (*models.BalanceResponse, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	cfg, err := s.Rules.GetRules(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.Accounts.GetAccount(ctx, user.UserID)
	if err != nil {
		if !errors.Is(err, storage.ErrAccountNotFound) {
			logger.Error("Failed to get account", zap.Error(err))
			return nil, err
		}
		account = &models.PointsAccount{UserID: user.UserID}
	}

	tier := rules.CalculateTier(cfg, account.TotalEarned)
	return &models.BalanceResponse{
		Balance:     account.Balance,
		TotalEarned: account.TotalEarned,
		Tier: models.TierResponse{
			ID:       tier.ID,
			Name:     tier.Name,
			Benefits: tier.Benefits,
		},
	}, nil
}

// GetHistory - журнал операций со счётом пользователя
func (s *Points) GetHistory(ctx context.Context, login string) ([]models.PointsTransaction, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	transactions, err := s.Accounts.GetTransactions(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to get transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// AwardPurchasePoints - начисление баллов за оплаченный заказ.
// Множитель берётся по уровню, действовавшему до покупки. Начисление
// идемпотентно по номеру заказа: повтор даёт ErrOrderAlreadyProcessed,
// баланс не меняется.
func (s *Points) AwardPurchasePoints(ctx context.Context, userID string, amount decimal.Decimal, orderID string) (int64, error) {
	cfg, err := s.Rules.GetRules(ctx)
	if err != nil {
		return 0, err
	}

	account, err := s.Accounts.GetAccount(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrAccountNotFound) {
			logger.Error("Failed to get account", zap.Error(err))
			return 0, err
		}
		// первый контакт с программой лояльности - создаём счёт
		if err := s.Accounts.CreateAccount(ctx, userID); err != nil {
			logger.Error("Failed to create account", zap.Error(err))
			return 0, err
		}
		account = &models.PointsAccount{UserID: userID}
	}

	tier := rules.CalculateTier(cfg, account.TotalEarned)
	award := rules.CalculatePointsEarned(cfg, amount, tier.ID)
	if award == 0 {
		logger.Info("No points for order", orderID)
		return 0, nil
	}

	transaction := models.PointsTransaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		OrderID:     orderID,
		Type:        models.TransactionPurchase,
		Amount:      award,
		Description: fmt.Sprintf("purchase %s", orderID),
		CreatedAt:   time.Now(),
	}

	if _, err := s.Accounts.ApplyTransaction(ctx, transaction); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("Order already awarded", orderID)
			return 0, ErrOrderAlreadyProcessed
		}
		logger.Error("Failed to apply transaction", zap.Error(err))
		return 0, err
	}

	logger.Info("Awarded points", "order", orderID, "points", award)
	return award, nil
}

// AdminAdjustPoints - ручная корректировка баллов администратором.
// Отрицательная дельта не может увести баланс ниже нуля и не уменьшает
// накопленные за всё время баллы (уровень не понижается).
func (s *Points) AdminAdjustPoints(ctx context.Context, login string, delta int64, reason string, adminID string) (*models.PointsAccount, error) {
	if delta == 0 {
		return nil, ErrInvalidAdjustment
	}

	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		logger.Error("Failed to get user", zap.Error(err))
		return nil, err
	}

	// счёт мог ещё не существовать
	if err := s.Accounts.CreateAccount(ctx, user.UserID); err != nil {
		logger.Error("Failed to create account", zap.Error(err))
		return nil, err
	}

	transactionType := models.TransactionAdminAdd
	amount := delta
	if delta < 0 {
		transactionType = models.TransactionAdminDeduct
		amount = -delta
	}

	transaction := models.PointsTransaction{
		ID:          uuid.New().String(),
		UserID:      user.UserID,
		Type:        transactionType,
		Amount:      amount,
		Description: reason,
		AdminID:     adminID,
		CreatedAt:   time.Now(),
	}

	account, err := s.Accounts.ApplyTransaction(ctx, transaction)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientFunds) {
			return nil, ErrInsufficientPoints
		}
		logger.Error("Failed to apply adjustment", zap.Error(err))
		return nil, err
	}

	logger.Info("Adjusted points", "login", login, "delta", delta, "admin", adminID)
	return account, nil
}
