package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/rules"
	"github.com/storecore/loyalty/internal/services"
	"go.uber.org/zap"
)

// GetRulesHandler — получение действующей конфигурации правил лояльности
func GetRulesHandler(s services.RulesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg, err := s.GetRules(r.Context())
		if err != nil {
			logger.Error("Failed to get rules:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(cfg)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// UpdateRulesHandler — замена конфигурации правил лояльности.
// Новая конфигурация действует для всех пользователей сразу.
func UpdateRulesHandler(s services.RulesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cfg models.RulesConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := s.UpdateRules(r.Context(), cfg); err != nil {
			if errors.Is(err, rules.ErrInvalidConfig) {
				logger.Warn("Invalid rules configuration:", zap.Error(err))
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			logger.Error("Failed to update rules:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
