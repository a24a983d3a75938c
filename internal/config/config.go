// config предоставляет структуру конфигурации oura-scraper
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env     string        `yaml:"env"     env:"ENV" env-default:"local"`
	HTTP    HTTPConfig    `yaml:"http"`
	DB      DBConfig      `yaml:"db"`
	Oura    OuraConfig    `yaml:"oura"`
	Scraper ScraperConfig `yaml:"scraper"`
}

// HTTPConfig — сетевые настройки служебного HTTP-сервера (/livez, /metrics).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50083"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// OuraConfig — OAuth2-настройки Oura и bootstrap-учётные данные.
//
// AccessToken/RefreshToken — стартовая пара для самого первого запуска:
// после первого успешного refresh она заведомо устаревает (refresh-токен
// одноразовый) и приоритет всегда у пары из БД.
type OuraConfig struct {
	ClientID     string `yaml:"client_id"     env:"OURA_CLIENT_ID"     env-required:"true"`
	ClientSecret string `yaml:"client_secret" env:"OURA_CLIENT_SECRET" env-required:"true"`

	AuthURL  string `yaml:"auth_url"  env:"OURA_AUTH_URL"  env-default:"https://cloud.ouraring.com/oauth/authorize"`
	TokenURL string `yaml:"token_url" env:"OURA_TOKEN_URL" env-default:"https://api.ouraring.com/oauth/token"`
	BaseURL  string `yaml:"base_url"  env:"OURA_BASE_URL"  env-default:"https://api.ouraring.com/v2/usercollection"`

	AccessToken  string `yaml:"access_token"  env:"OURA_ACCESS_TOKEN"`
	RefreshToken string `yaml:"refresh_token" env:"OURA_REFRESH_TOKEN"`

	// Ключ шифрования токенов в БД: 64 hex-символа (32 байта) либо пусто —
	// тогда токены хранятся открытым текстом.
	EncryptionKey string `yaml:"encryption_key" env:"OURA_ENCRYPTION_KEY"`

	// Запас до истечения access-токена, при котором уже выполняется refresh.
	SafetyMargin time.Duration `yaml:"safety_margin" env:"OURA_SAFETY_MARGIN" env-default:"1m"`

	Scopes []string `yaml:"scopes" env:"OURA_SCOPES" env-separator:"," env-default:"email,personal,daily,heartrate,workout,tag,session,spo2"`
}

// ScraperConfig — параметры окна выгрузки и периодического запуска.
type ScraperConfig struct {
	// Глубина окна в днях (для полной первичной выгрузки — до 1825).
	Days     int           `yaml:"days"     env:"OURA_SCRAPE_DAYS" env-default:"7"`
	Interval time.Duration `yaml:"interval" env:"SCRAPE_INTERVAL"  env-default:"6h"`
	// Таймаут HTTP-запросов к Oura API.
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"HTTP_TIMEOUT" env-default:"30s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate проверяет согласованность конфигурации.
func (c *Config) validate() error {
	if n := len(c.Oura.EncryptionKey); n != 0 && n != 64 {
		return fmt.Errorf("oura.encryption_key: expected 64 hex chars (32 bytes), got %d chars", n)
	}

	if c.Scraper.Days <= 0 {
		return fmt.Errorf("scraper.days: must be positive, got %d", c.Scraper.Days)
	}

	if c.Scraper.Interval <= 0 {
		return fmt.Errorf("scraper.interval: must be positive, got %s", c.Scraper.Interval)
	}

	if c.Oura.SafetyMargin < 0 {
		return fmt.Errorf("oura.safety_margin: must be non-negative, got %s", c.Oura.SafetyMargin)
	}

	return nil
}
