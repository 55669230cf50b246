package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/storecore/loyalty/internal/models"
)

const (
	InsertDiscount = `INSERT INTO DISCOUNTS (code, user_id, points_cost, discount_amount, issued_at, expires_at)
						VALUES ($1, $2, $3, $4, $5, $6);`
	GetDiscount  = `SELECT code, user_id, points_cost, discount_amount, issued_at, expires_at, used_at FROM DISCOUNTS WHERE code=$1;`
	GetDiscounts = `SELECT code, user_id, points_cost, discount_amount, issued_at, expires_at, used_at FROM DISCOUNTS WHERE user_id=$1 ORDER BY issued_at DESC;`

	// Одноразовость кода обеспечивается предикатом used_at IS NULL
	MarkDiscountUsed = `UPDATE DISCOUNTS
						SET used_at = $2
						WHERE code = $1 AND used_at IS NULL
						RETURNING code;`
)

type DiscountDatabase struct {
	DB *Database
}

// Создание хранилища
func NewDiscountsStorage(db *Database) DiscountsStorage {
	return &DiscountDatabase{DB: db}
}

func (s *DiscountDatabase) AddDiscount(ctx context.Context, discount models.DiscountCode) error {
	_, err := s.DB.Pool.Exec(ctx, InsertDiscount,
		discount.Code,
		discount.UserID,
		discount.PointsCost,
		discount.DiscountAmount,
		discount.IssuedAt,
		discount.ExpiresAt,
	)
	if err == nil {
		return nil
	}

	// Коллизия кода - нарушение уникальности
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrAlreadyExists
	}

	return fmt.Errorf("failed to add discount: %w", err)
}

func (s *DiscountDatabase) GetDiscount(ctx context.Context, code string) (*models.DiscountCode, error) {
	discount, err := scanDiscount(s.DB.Pool.QueryRow(ctx, GetDiscount, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDiscountNotFound
		}
		return nil, fmt.Errorf("failed to get discount: %w", err)
	}
	return discount, nil
}

func (s *DiscountDatabase) GetDiscounts(ctx context.Context, userID string) ([]models.DiscountCode, error) {
	var discounts []models.DiscountCode
	rows, err := s.DB.Pool.Query(ctx, GetDiscounts, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get discounts: %w", err)
	}
	for rows.Next() {
		discount, err := scanDiscount(rows)
		if err != nil {
			return discounts, fmt.Errorf("failed scan discount data: %w", err)
		}
		discounts = append(discounts, *discount)
	}
	return discounts, err
}

// MarkDiscountUsed - перевод кода в состояние used. Повторное применение
// не затирает первую отметку и возвращает ErrAlreadyExists.
func (s *DiscountDatabase) MarkDiscountUsed(ctx context.Context, code string, usedAt time.Time) error {
	var updated string
	err := s.DB.Pool.QueryRow(ctx, MarkDiscountUsed, code, usedAt).Scan(&updated)
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		// строки нет либо код уже применён
		if _, getErr := s.GetDiscount(ctx, code); getErr != nil {
			return getErr
		}
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to mark discount used: %w", err)
}

func scanDiscount(row pgx.Row) (*models.DiscountCode, error) {
	var discount models.DiscountCode
	err := row.Scan(
		&discount.Code,
		&discount.UserID,
		&discount.PointsCost,
		&discount.DiscountAmount,
		&discount.IssuedAt,
		&discount.ExpiresAt,
		&discount.UsedAt,
	)
	if err != nil {
		return nil, err
	}
	return &discount, nil
}
