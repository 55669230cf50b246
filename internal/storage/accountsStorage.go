package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"go.uber.org/zap"
)

const (
	GetAccount = `SELECT user_id, balance, total_earned, updated_at FROM ACCOUNTS WHERE user_id=$1;`

	InsertAccount = `INSERT INTO ACCOUNTS (user_id, balance, total_earned)
						VALUES ($1, 0, 0)
						ON CONFLICT (user_id) DO NOTHING;`

	// Условное атомарное обновление: баланс меняется одним оператором,
	// уход в минус отсекается предикатом, а не проверкой после чтения
	UpdateAccountBalance = `UPDATE ACCOUNTS
						SET balance = balance + $1,
						    total_earned = total_earned + $2,
						    updated_at = NOW()
						WHERE user_id = $3 AND balance + $1 >= 0
						RETURNING balance, total_earned, updated_at;`

	InsertTransaction = `INSERT INTO TRANSACTIONS (id, user_id, order_id, type, amount, balance_before, balance_after, description, admin_id, created_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	GetTransactions = `SELECT id, user_id, COALESCE(order_id, ''), type, amount, balance_before, balance_after, description, admin_id, created_at
						FROM TRANSACTIONS WHERE user_id=$1 ORDER BY created_at DESC;`
)

type AccountDatabase struct {
	DB *Database
}

// Создание хранилища
func NewAccountsStorage(db *Database) AccountsStorage {
	return &AccountDatabase{DB: db}
}

func (s *AccountDatabase) GetAccount(ctx context.Context, userID string) (*models.PointsAccount, error) {
	var account models.PointsAccount
	err := s.DB.Pool.QueryRow(ctx, GetAccount, userID).Scan(
		&account.UserID,
		&account.Balance,
		&account.TotalEarned,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// CreateAccount - ленивое создание счёта с нулевыми балансами.
// Повторный вызов для существующего счёта безвреден.
func (s *AccountDatabase) CreateAccount(ctx context.Context, userID string) error {
	if _, err := s.DB.Pool.Exec(ctx, InsertAccount, userID); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// ApplyTransaction - изменение баланса и запись в журнал в одной транзакции БД.
// Баланс по итогам операции не может стать отрицательным (ErrInsufficientFunds),
// повторное начисление за тот же заказ отклоняется уникальным индексом
// журнала (ErrAlreadyExists). BalanceBefore/BalanceAfter заполняются здесь
// из фактического состояния счёта.
func (s *AccountDatabase) ApplyTransaction(ctx context.Context, transaction models.PointsTransaction) (*models.PointsAccount, error) {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("ApplyTransaction. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	delta := transaction.SignedAmount()
	earned := transaction.EarnedAmount()

	// 1. Атомарно меняем баланс счёта
	var account models.PointsAccount
	account.UserID = transaction.UserID
	err = tx.QueryRow(ctx, UpdateAccountBalance, delta, earned, transaction.UserID).Scan(
		&account.Balance,
		&account.TotalEarned,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// строка не обновилась: либо счёта нет, либо не хватило баллов
			var exists bool
			if checkErr := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ACCOUNTS WHERE user_id=$1)`, transaction.UserID).Scan(&exists); checkErr != nil {
				err = checkErr
				return nil, fmt.Errorf("failed to check account: %w", checkErr)
			}
			if exists {
				return nil, ErrInsufficientFunds
			}
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	transaction.BalanceAfter = account.Balance
	transaction.BalanceBefore = account.Balance - delta

	// 2. Добавляем запись в журнал операций
	var orderID any
	if transaction.OrderID != "" {
		orderID = transaction.OrderID
	}
	_, err = tx.Exec(ctx, InsertTransaction,
		transaction.ID,
		transaction.UserID,
		orderID,
		transaction.Type,
		transaction.Amount,
		transaction.BalanceBefore,
		transaction.BalanceAfter,
		transaction.Description,
		transaction.AdminID,
		transaction.CreatedAt,
	)
	if err != nil {
		// Нарушение уникальности order_id - повторная обработка заказа
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	// Если всё успешно - коммитим
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return &account, nil
}

func (s *AccountDatabase) GetTransactions(ctx context.Context, userID string) ([]models.PointsTransaction, error) {
	var transactions []models.PointsTransaction
	rows, err := s.DB.Pool.Query(ctx, GetTransactions, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	for rows.Next() {
		var transaction models.PointsTransaction
		err := rows.Scan(
			&transaction.ID,
			&transaction.UserID,
			&transaction.OrderID,
			&transaction.Type,
			&transaction.Amount,
			&transaction.BalanceBefore,
			&transaction.BalanceAfter,
			&transaction.Description,
			&transaction.AdminID,
			&transaction.CreatedAt,
		)
		if err != nil {
			return transactions, fmt.Errorf("failed scan transaction data: %w", err)
		}
		transactions = append(transactions, transaction)
	}
	return transactions, err
}
