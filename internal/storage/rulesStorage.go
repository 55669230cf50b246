package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/storecore/loyalty/internal/models"
)

const (
	GetRules = `SELECT config FROM RULES WHERE id=1;`

	// Конфигурация правил - единственный документ, запись целиком (merge-семантики нет)
	UpsertRules = `INSERT INTO RULES (id, config, updated_at)
						VALUES (1, $1, NOW())
						ON CONFLICT (id) DO UPDATE SET config = EXCLUDED.config, updated_at = NOW();`
)

type RulesDatabase struct {
	DB *Database
}

// Создание хранилища
func NewRulesStorage(db *Database) RulesStorage {
	return &RulesDatabase{DB: db}
}

func (s *RulesDatabase) GetRules(ctx context.Context) (*models.RulesConfig, error) {
	var raw []byte
	err := s.DB.Pool.QueryRow(ctx, GetRules).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRulesNotFound
		}
		return nil, fmt.Errorf("failed to get rules: %w", err)
	}

	var cfg models.RulesConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode rules config: %w", err)
	}
	return &cfg, nil
}

func (s *RulesDatabase) UpdateRules(ctx context.Context, cfg models.RulesConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode rules config: %w", err)
	}
	if _, err := s.DB.Pool.Exec(ctx, UpsertRules, raw); err != nil {
		return fmt.Errorf("failed to update rules: %w", err)
	}
	return nil
}
