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
	"go.uber.org/zap"
)

func toDiscountResponse(discount *models.DiscountCode) models.DiscountResponse {
	amount, _ := discount.DiscountAmount.Float64()
	return models.DiscountResponse{
		Code:           discount.Code,
		PointsCost:     discount.PointsCost,
		DiscountAmount: amount,
		IssuedAt:       discount.IssuedAt.Format(time.RFC3339),
		ExpiresAt:      discount.ExpiresAt.Format(time.RFC3339),
		Used:           discount.Used(),
	}
}

// RedeemHandler — обмен баллов на одноразовый промокод
func RedeemHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.RedemptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		discount, err := s.Redeem(r.Context(), username, req.Points)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientPoints):
				http.Error(w, "Insufficient points", http.StatusPaymentRequired)
			case errors.Is(err, services.ErrUnknownOption):
				http.Error(w, "Unknown redemption option", http.StatusUnprocessableEntity)
			default:
				logger.Error("Failed to redeem points:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(toDiscountResponse(discount))
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetDiscountsHandler — получение списка промокодов пользователя
func GetDiscountsHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		discounts, err := s.GetDiscounts(r.Context(), username)
		if err != nil {
			logger.Error("Failed to get discounts:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(discounts) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.DiscountResponse
		for _, discount := range discounts {
			response = append(response, toDiscountResponse(&discount))
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

// discountError - отображение ошибок проверки промокода в HTTP статусы
func discountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCodeNotFound):
		http.Error(w, "Discount code not found", http.StatusNotFound)
	case errors.Is(err, services.ErrCodeAlreadyUsed):
		http.Error(w, "Discount code already used", http.StatusConflict)
	case errors.Is(err, services.ErrCodeExpired):
		http.Error(w, "Discount code expired", http.StatusGone)
	case errors.Is(err, services.ErrCodeNotOwned):
		http.Error(w, "Discount code belongs to another user", http.StatusForbidden)
	default:
		logger.Error("Failed to validate discount code:", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ValidateDiscountHandler — проверка промокода без применения
func ValidateDiscountHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.DiscountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		discount, err := s.ValidateDiscountCode(r.Context(), req.Code, username)
		if err != nil {
			discountError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(toDiscountResponse(discount))
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// ApplyDiscountHandler — применение промокода при оформлении заказа
func ApplyDiscountHandler(s services.RedemptionService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.DiscountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		discount, err := s.ApplyDiscountCode(r.Context(), req.Code, username)
		if err != nil {
			discountError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(toDiscountResponse(discount))
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}
