package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/storecore/loyalty/internal/config"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/network/router"
	"github.com/storecore/loyalty/internal/storage"
	"github.com/storecore/loyalty/internal/worker"
)

const shutdownTimeout = 5 * time.Second

// Run - запуск HTTP-сервера и воркера обработки заказов.
// Блокируется до сигнала завершения, после чего останавливает воркер
// и корректно гасит сервер.
func Run(config config.Config, storage storage.Storage) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := router.NewRouter(config, storage)
	server := &http.Server{
		Addr:              config.Server.ListenAddr,
		Handler:           router.HandleRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	orderWorker := worker.NewOrderWorker(router.Orders, config.Gateway)
	orderWorker.Start(ctx)

	go func() {
		logger.Info("Starting server:", config.Server.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown server")
	orderWorker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
