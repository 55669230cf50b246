package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storecore/loyalty/internal/helpers"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/services"
	"github.com/storecore/loyalty/internal/validators"
	"go.uber.org/zap"
)

// OrdersHandler — регистрация покупки пользователем
func OrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if !validators.CheckNumber(req.Number) {
			logger.Warn("Invalid order number format", req.Number)
			http.Error(w, "Invalid order number format", http.StatusUnprocessableEntity)
			return
		}

		err = s.AddOrder(r.Context(), username, req.Number, decimal.NewFromFloat(req.Amount))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOrderAlreadyUploaded):
				w.WriteHeader(http.StatusOK)
				return
			case errors.Is(err, services.ErrOrderUploadedByAnother):
				http.Error(w, "Order number already uploaded by another user", http.StatusConflict)
				return
			case errors.Is(err, services.ErrInvalidOrderAmount):
				http.Error(w, "Invalid order amount", http.StatusUnprocessableEntity)
				return
			default:
				logger.Error("Failed to add order:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusAccepted)
	})
}

// GetOrdersHandler — получение списка покупок пользователя
func GetOrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		orders, err := s.GetOrders(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get order:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.OrderResponse
		for _, order := range orders {
			amount, _ := order.Amount.Float64()
			item := models.OrderResponse{
				Number:     order.Number,
				Status:     order.Status,
				Amount:     amount,
				UploadedAt: order.UploadedAt.Format(time.RFC3339),
			}
			if order.Status == models.OrderStatusProcessed {
				item.PointsAwarded = order.PointsAwarded
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
