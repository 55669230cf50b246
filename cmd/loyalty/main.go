package main

import (
	"context"
	"fmt"

	"github.com/storecore/loyalty/internal/app"
	"github.com/storecore/loyalty/internal/config"
	"github.com/storecore/loyalty/internal/logger"
	"github.com/storecore/loyalty/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// инициализация хранилища
	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database: ", err.Error())
	}
	defer db.Close()
	if err := db.Initialize(context.Background()); err != nil {
		logger.Panic("can't initialize database: ", err.Error())
	}
	// запуск сервиса
	app.Run(config, storage.NewStorage(db))
}
