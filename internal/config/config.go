package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr    string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN   string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret     string        `env:"JWT_SECRET" envDefault:"secret"`
	GatewayAddr   string        `env:"PAYMENT_GATEWAY_ADDRESS" envDefault:"http://localhost:8081"`
	GatewayRPS    float64       `env:"PAYMENT_GATEWAY_RPS" envDefault:"10"`
	RulesCacheTTL time.Duration `env:"RULES_CACHE_TTL" envDefault:"30s"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// GatewayConfig модель настроек опроса платёжного шлюза (источника событий о заказах)
type GatewayConfig struct {
	GatewayAddr  string
	RequestRate  float64
	BatchSize    int
	PollInterval time.Duration
}

// LoyaltyConfig модель настроек программы лояльности
type LoyaltyConfig struct {
	RulesCacheTTL time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Loyalty LoyaltyConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		gateway  = pflag.StringP("gateway", "g", args.GatewayAddr, "Payment gateway address in a form host:port.")
		rps      = pflag.Float64P("gateway_rps", "r", args.GatewayRPS, "Payment gateway request rate limit.")
		cacheTTL = pflag.DurationP("rules_ttl", "t", args.RulesCacheTTL, "Loyalty rules cache TTL.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Gateway: GatewayConfig{
			GatewayAddr:  *gateway,
			RequestRate:  *rps,
			BatchSize:    10,
			PollInterval: 5 * time.Second,
		},
		Loyalty: LoyaltyConfig{
			RulesCacheTTL: *cacheTTL,
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
		Gateway: GatewayConfig{
			GatewayAddr:  ":8081",
			RequestRate:  10,
			BatchSize:    10,
			PollInterval: 5 * time.Second,
		},
		Loyalty: LoyaltyConfig{
			RulesCacheTTL: 30 * time.Second,
		},
	}
}
