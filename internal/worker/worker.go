package worker

import (
	"context"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"github.com/storecore/loyalty/internal/config"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/services"
)

const (
	breakerRecoveryTimeout  = 30 * time.Second
	breakerFailureThreshold = 5
)

// newGatewayBreaker - предохранитель опроса платёжного шлюза: после
// нескольких подряд неудачных обращений опрос приостанавливается,
// чтобы не заваливать шлюз запросами во время его недоступности
func newGatewayBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: breakerRecoveryTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Get().Infof("Circuit Breaker '%s': %s -> %s", name, from, to)
		},
	})
}

// OrderWorker - воркер обработки заказов: забирает пачку зарегистрированных
// покупок, опрашивает платёжный шлюз и начисляет баллы за оплаченные
type OrderWorker struct {
	Orders       services.OrdersService
	Breaker      *gobreaker.CircuitBreaker
	BatchSize    int
	PollInterval time.Duration

	wg   sync.WaitGroup
	quit chan struct{}
}

// Создание воркера
func NewOrderWorker(orders services.OrdersService, cfg config.GatewayConfig) *OrderWorker {
	return &OrderWorker{
		Orders:       orders,
		Breaker:      newGatewayBreaker(),
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
		quit:         make(chan struct{}),
	}
}

// Start - запускает воркер в фоне
func (w *OrderWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

// Stop - корректно останавливает воркер
func (w *OrderWorker) Stop() {
	close(w.quit)
	w.wg.Wait()
}

func (w *OrderWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.quit:
			logger.Info("OrderWorker signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ProcessOrders(ctx)
		}
	}
}

// ProcessOrders - обработка пачки заказов под защитой предохранителя
func (w *OrderWorker) ProcessOrders(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("Payment gateway unavailable. Waiting...")
		return
	}

	orderNumbers, err := w.Orders.GetProcessingOrders(ctx, w.BatchSize)
	if err != nil {
		logger.Error("error get orders for processing", err)
		return
	}

	for _, orderNumber := range orderNumbers {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Orders.ProcessOrder(ctx, orderNumber)
		})
		if err != nil {
			logger.Error("Error order processing", err)
		}
	}
}
