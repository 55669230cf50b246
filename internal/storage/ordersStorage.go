package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/storecore/loyalty/internal/models"
)

const (
	GetOrder    = `SELECT number, user_id, status, amount, points_awarded, created_at FROM ORDERS WHERE number=$1;`
	InsertOrder = `INSERT INTO ORDERS (number, user_id, status, amount, points_awarded, retry_count, created_at, updated_at)
						VALUES ($1, $2, $3, $4, 0, 0, $5, $5)
						ON CONFLICT (number) DO NOTHING
						RETURNING number;`
	GetOrders                = `SELECT number, user_id, status, amount, points_awarded, created_at FROM ORDERS WHERE user_id=$1 ORDER BY created_at;`
	ClaimOrdersForProcessing = `UPDATE ORDERS
								SET status = 'PROCESSING',
								    retry_count = retry_count + 1,
								    updated_at = NOW()
								WHERE number IN (
								    SELECT number FROM ORDERS
								    WHERE status = 'NEW' OR status = 'REGISTERED' OR (status = 'PROCESSING' AND retry_count < 3)
								    ORDER BY created_at
								    LIMIT $1
								    FOR UPDATE SKIP LOCKED
								)
								RETURNING number;`

	UpdateOrdersStatus = `UPDATE ORDERS
						  SET
						      status = $1,
						      points_awarded = $2,
						      retry_count = retry_count + 1,
						      updated_at = NOW()
						  WHERE number = $3;`
)

type OrderDatabase struct {
	DB *Database
}

// Создание хранилища
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{DB: db}
}

func (s *OrderDatabase) GetOrder(ctx context.Context, number string) (*models.OrderData, error) {
	order, err := scanOrder(s.DB.Pool.QueryRow(ctx, GetOrder, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *OrderDatabase) GetOrders(ctx context.Context, userID string) ([]models.OrderData, error) {
	var orders []models.OrderData
	rows, err := s.DB.Pool.Query(ctx, GetOrders, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return orders, fmt.Errorf("failed scan order data: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, err
}

// ClaimOrdersForProcessing - выборка пачки заказов на обработку.
// FOR UPDATE SKIP LOCKED позволяет нескольким экземплярам сервиса
// не забирать одни и те же заказы.
func (s *OrderDatabase) ClaimOrdersForProcessing(ctx context.Context, count int) ([]string, error) {

	var numbers []string
	rows, err := s.DB.Pool.Query(ctx, ClaimOrdersForProcessing, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get processing orders: %w", err)
	}
	for rows.Next() {

		var orderNumber string
		err := rows.Scan(&orderNumber)
		if err != nil {
			return numbers, fmt.Errorf("failed scan number for processing numbers: %w", err)
		}
		numbers = append(numbers, orderNumber)
	}
	return numbers, err
}

func (s *OrderDatabase) AddOrder(ctx context.Context, number string, userID string, amount decimal.Decimal, createdAt time.Time) error {
	var prevNumber string
	err := s.DB.Pool.QueryRow(ctx, InsertOrder, number, userID, models.OrderStatusNew, amount, createdAt).Scan(&prevNumber)

	if err == nil {
		return nil
	}

	// Заказ с таким номером уже зарегистрирован
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrAlreadyExists
	}

	// Проверяем именно нарушение уникальности
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	// Все остальные ошибки
	return fmt.Errorf("failed to add order: %w", err)
}

// UpdateOrderStatus - обновление статуса заказа и количества начисленных баллов.
// Сами баллы проводятся через журнал счёта (ApplyTransaction), здесь только
// денормализованное значение для выдачи списка заказов.
func (s *OrderDatabase) UpdateOrderStatus(ctx context.Context, number string, status string, pointsAwarded int64) error {
	if _, err := s.DB.Pool.Exec(ctx, UpdateOrdersStatus, status, pointsAwarded, number); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func scanOrder(row pgx.Row) (*models.OrderData, error) {
	var order models.OrderData
	err := row.Scan(
		&order.Number,
		&order.UserID,
		&order.Status,
		&order.Amount,
		&order.PointsAwarded,
		&order.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
