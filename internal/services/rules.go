package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/rules"
	"github.com/storecore/loyalty/internal/storage"
	"go.uber.org/zap"
)

type RulesService interface {
	GetRules(ctx context.Context) (*models.RulesConfig, error)
	UpdateRules(ctx context.Context, cfg models.RulesConfig) error
}

// Rules - сервис конфигурации правил лояльности со сквозным чтением
// через кэш с TTL. Значение проверяется на свежесть лениво при чтении,
// запись инвалидирует кэш, так что изменения видны всем сразу после
// истечения TTL у остальных экземпляров.
type Rules struct {
	Storage storage.RulesStorage
	TTL     time.Duration

	mu       sync.Mutex
	cached   *models.RulesConfig
	cachedAt time.Time
}

// Создание сервиса
func NewRules(storage storage.RulesStorage, ttl time.Duration) RulesService {
	return &Rules{Storage: storage, TTL: ttl}
}

// GetRules - возвращает действующую конфигурацию правил.
// Если конфигурация ещё не сохранялась, действует конфигурация по умолчанию.
func (s *Rules) GetRules(ctx context.Context) (*models.RulesConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.cachedAt) < s.TTL {
		return s.cached, nil
	}

	cfg, err := s.Storage.GetRules(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrRulesNotFound) {
			defaults := rules.DefaultRules()
			cfg = &defaults
		} else {
			logger.Error("Failed to get loyalty rules", zap.Error(err))
			// при недоступности хранилища отдаём устаревшую копию, если она есть
			if s.cached != nil {
				return s.cached, nil
			}
			return nil, err
		}
	}

	s.cached = cfg
	s.cachedAt = time.Now()
	return cfg, nil
}

// UpdateRules - валидация и сохранение новой конфигурации правил
func (s *Rules) UpdateRules(ctx context.Context, cfg models.RulesConfig) error {
	if err := rules.Validate(&cfg); err != nil {
		return err
	}

	if err := s.Storage.UpdateRules(ctx, cfg); err != nil {
		logger.Error("Failed to update loyalty rules", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.cached = &cfg
	s.cachedAt = time.Now()
	s.mu.Unlock()

	logger.Info("Loyalty rules updated")
	return nil
}
