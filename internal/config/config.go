package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr      string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN     string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"secret"`
	ExchangeAddr    string        `env:"EXCHANGE_ADDRESS" envDefault:"https://api.binance.com"`
	ExchangeTimeout time.Duration `env:"EXCHANGE_TIMEOUT" envDefault:"5s"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// ExchangeConfig модель настроек работы с внешним сервисом котировок
type ExchangeConfig struct {
	ExchangeAddr   string
	RequestTimeout time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server   ServerConfig
	Exchange ExchangeConfig
}

func NewConfig() Config {
	// .env необязателен, при отсутствии используются переменные окружения
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		exchange = pflag.StringP("exchange", "e", args.ExchangeAddr, "Exchange API base URL.")
		timeout  = pflag.DurationP("timeout", "t", args.ExchangeTimeout, "Exchange request timeout.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Exchange: ExchangeConfig{
			ExchangeAddr:   *exchange,
			RequestTimeout: *timeout,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Exchange: ExchangeConfig{
			ExchangeAddr:   "https://api.binance.com",
			RequestTimeout: 5 * time.Second,
		},
	}
}
