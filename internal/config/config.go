// Package config загружает конфигурацию сервиса из YAML-файла
// с дефолтами и переопределением отдельных значений из окружения.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultShutdownTimeout = 5 * time.Second
)

// Config описывает полную конфигурацию приложения.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Client   ClientConfig   `yaml:"client"`
}

// HTTPConfig — настройки HTTP-сервера.
type HTTPConfig struct {
	Addr string `yaml:"addr"`

	// CORSAllowedOrigins — список origin'ов браузерного фронтенда.
	// Пустой список означает «разрешить все».
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig — настройки подключения к PostgreSQL.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// ClientConfig — настройки клиентской части (консольного фронтенда).
type ClientConfig struct {
	// BaseURL — базовый адрес API. Пустая строка означает
	// «адрес сервера из этой же конфигурации».
	BaseURL string `yaml:"base_url"`
}

// Load читает конфигурацию из файла path (если путь непустой),
// применяет дефолты и переопределения из переменных окружения.
// Переменная DB_DSN имеет приоритет над database.dsn из файла.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = defaultHTTPAddr
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = defaultShutdownTimeout
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	return cfg, nil
}
