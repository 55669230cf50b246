package storage

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storecore/loyalty/internal/models"
)

type UsersStorage interface {
	AddUser(ctx context.Context, login string, password string, role string) error
	GetUser(ctx context.Context, login string) (*models.UserData, error)
}

type AccountsStorage interface {
	GetAccount(ctx context.Context, userID string) (*models.PointsAccount, error)
	CreateAccount(ctx context.Context, userID string) error
	ApplyTransaction(ctx context.Context, transaction models.PointsTransaction) (*models.PointsAccount, error)
	GetTransactions(ctx context.Context, userID string) ([]models.PointsTransaction, error)
}

type OrdersStorage interface {
	GetOrder(ctx context.Context, number string) (*models.OrderData, error)
	GetOrders(ctx context.Context, userID string) ([]models.OrderData, error)
	ClaimOrdersForProcessing(ctx context.Context, count int) ([]string, error)
	AddOrder(ctx context.Context, number string, userID string, amount decimal.Decimal, createdAt time.Time) error
	UpdateOrderStatus(ctx context.Context, number string, status string, pointsAwarded int64) error
}

type DiscountsStorage interface {
	AddDiscount(ctx context.Context, discount models.DiscountCode) error
	GetDiscount(ctx context.Context, code string) (*models.DiscountCode, error)
	GetDiscounts(ctx context.Context, userID string) ([]models.DiscountCode, error)
	MarkDiscountUsed(ctx context.Context, code string, usedAt time.Time) error
}

type RulesStorage interface {
	GetRules(ctx context.Context) (*models.RulesConfig, error)
	UpdateRules(ctx context.Context, cfg models.RulesConfig) error
}

type Storage struct {
	Users     UsersStorage
	Accounts  AccountsStorage
	Orders    OrdersStorage
	Discounts DiscountsStorage
	Rules     RulesStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Users:     NewUsersStorage(db),
		Accounts:  NewAccountsStorage(db),
		Orders:    NewOrdersStorage(db),
		Discounts: NewDiscountsStorage(db),
		Rules:     NewRulesStorage(db),
	}
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrAccountNotFound  = errors.New("points account not found")
	ErrDiscountNotFound = errors.New("discount code not found")
	ErrRulesNotFound    = errors.New("loyalty rules not found")

	ErrAlreadyExists     = errors.New("already exists")
	ErrInsufficientFunds = errors.New("insufficient points balance")
)
