package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/storecore/loyalty/internal/helpers"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/services"
	"github.com/storecore/loyalty/internal/storage"
	"go.uber.org/zap"
)

// GetBalanceHandler — получение баланса баллов и уровня пользователя
func GetBalanceHandler(p services.PointsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		balance, err := p.GetBalance(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get user balance:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(balance)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetHistoryHandler — получение журнала операций с баллами пользователя
func GetHistoryHandler(p services.PointsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		transactions, err := p.GetHistory(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get points history:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(transactions) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.HistoryResponse
		for _, transaction := range transactions {
			item := models.HistoryResponse{
				ID:          transaction.ID,
				Type:        transaction.Type,
				Amount:      transaction.SignedAmount(),
				Balance:     transaction.BalanceAfter,
				Description: transaction.Description,
				ProcessedAt: transaction.CreatedAt.Format(time.RFC3339),
			}
			response = append(response, item)
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// AdjustPointsHandler — ручная корректировка баллов администратором
func AdjustPointsHandler(p services.PointsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// администратор, выполняющий корректировку
		adminLogin, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.AdjustmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		account, err := p.AdminAdjustPoints(r.Context(), req.Login, req.Delta, req.Reason, adminLogin)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientPoints):
				http.Error(w, "Insufficient points", http.StatusPaymentRequired)
			case errors.Is(err, services.ErrInvalidAdjustment):
				http.Error(w, "Invalid adjustment delta", http.StatusUnprocessableEntity)
			case errors.Is(err, storage.ErrUserNotFound):
				http.Error(w, "User not found", http.StatusNotFound)
			default:
				logger.Error("Failed to adjust points:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(map[string]int64{
			"balance":      account.Balance,
			"total_earned": account.TotalEarned,
		})
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
