package main

import (
	"fmt"

	"github.com/denmor86/crypto-assets/internal/app"
	"github.com/denmor86/crypto-assets/internal/config"
	"github.com/denmor86/crypto-assets/internal/logger"
	"github.com/denmor86/crypto-assets/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// инициализация хранилища (создание БД, миграция)
	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	if err := db.Initialize(); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}
	defer db.Close()
	// создание маршутизатора и запуск сервера
	app.Run(config, storage.NewStorage(db))
}
