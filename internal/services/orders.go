package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storecore/loyalty/internal/client"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/models"
	"github.com/storecore/loyalty/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrOrderAlreadyUploaded   = errors.New("order already uploaded by this user")
	ErrOrderUploadedByAnother = errors.New("order already uploaded by another user")
	ErrInvalidOrderAmount     = errors.New("invalid order amount")
)

type OrdersService interface {
	AddOrder(ctx context.Context, login string, number string, amount decimal.Decimal) error
	GetOrders(ctx context.Context, login string) ([]models.OrderData, error)
	GetProcessingOrders(ctx context.Context, count int) ([]string, error)
	ProcessOrder(ctx context.Context, number string) error
}

type Orders struct {
	Orders  storage.OrdersStorage
	Users   storage.UsersStorage
	Points  PointsService
	Gateway client.GatewayService
}

// Создание сервиса
func NewOrders(orders storage.OrdersStorage, users storage.UsersStorage, points PointsService, gateway client.GatewayService) OrdersService {
	return &Orders{Orders: orders, Users: users, Points: points, Gateway: gateway}
}

// AddOrder - регистрация покупки, проверяя, не была ли она уже добавлена другим пользователем.
func (s *Orders) AddOrder(ctx context.Context, login string, number string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidOrderAmount
	}

	// Получаем пользователя по логину
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		return err
	}

	// Проверяем, был ли уже добавлен заказ с таким номером
	existingOrder, err := s.Orders.GetOrder(ctx, number)
	if err != nil && !errors.Is(err, storage.ErrOrderNotFound) {
		return err
	}

	if existingOrder != nil {
		// Если заказ добавлен текущим пользователем
		if existingOrder.UserID == user.UserID {
			return ErrOrderAlreadyUploaded
		}
		// Если заказ добавлен другим пользователем
		return ErrOrderUploadedByAnother
	}

	return s.Orders.AddOrder(ctx, number, user.UserID, amount, time.Now())
}

// GetOrders - список покупок пользователя
func (s *Orders) GetOrders(ctx context.Context, login string) ([]models.OrderData, error) {
	user, err := s.Users.GetUser(ctx, login)
	if err != nil {
		return nil, err
	}

	orders, err := s.Orders.GetOrders(ctx, user.UserID)
	if err != nil {
		logger.Error("Failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// GetProcessingOrders - выборка заказов для обработки воркером
func (s *Orders) GetProcessingOrders(ctx context.Context, count int) ([]string, error) {
	return s.Orders.ClaimOrdersForProcessing(ctx, count)
}

// ProcessOrder - обработка одного заказа: опрос платёжного шлюза и,
// при подтверждённой оплате, начисление баллов. Начисление идемпотентно
// по номеру заказа, поэтому повторная обработка после сбоя безопасна.
func (s *Orders) ProcessOrder(ctx context.Context, number string) error {
	status, err := s.Gateway.GetOrderStatus(ctx, number)
	if err != nil {
		if errors.Is(err, client.ErrOrderNotRegistered) {
			logger.Warn("Order not known to gateway", number)
			return s.Orders.UpdateOrderStatus(ctx, number, models.OrderStatusInvalid, 0)
		}
		return err
	}

	switch status {
	case models.OrderStatusProcessed:
		order, err := s.Orders.GetOrder(ctx, number)
		if err != nil {
			return err
		}
		award, err := s.Points.AwardPurchasePoints(ctx, order.UserID, order.Amount, number)
		if err != nil && !errors.Is(err, ErrOrderAlreadyProcessed) {
			return err
		}
		return s.Orders.UpdateOrderStatus(ctx, number, models.OrderStatusProcessed, award)
	case models.OrderStatusInvalid:
		return s.Orders.UpdateOrderStatus(ctx, number, models.OrderStatusInvalid, 0)
	default:
		// REGISTERED/PROCESSING - заказ ещё не оплачен, вернётся в выборку
		return nil
	}
}
