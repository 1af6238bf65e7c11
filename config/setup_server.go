package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type AppConfig struct {
	Env            string         `yaml:"env" env:"APP_ENV"`
	ServerAddr     string         `yaml:"serverAddr" env:"SERVER_ADDR"`
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	S3Config       S3Config       `yaml:"s3Config"`
	RabbitMQ       RabbitMQConfig `yaml:"rabbitMQ"`
	JWT            JWTConfig      `yaml:"jwt"`
	CORS           CORSConfig     `yaml:"cors"`
	Realtime       RealtimeConfig `yaml:"realtime"`
	Cookie         CookieConfig   `yaml:"cookie"`
}

// LoadConfig : читает YAML, накладывает переменные окружения и проставляет значения по умолчанию.
// Отсутствующий файл не ошибка, если всё задано через окружение.
func LoadConfig(path string) (*AppConfig, error) {
	var cfg AppConfig

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *AppConfig) applyDefaults() {
	if c.Env == "" {
		c.Env = EnvLocal
	}
	if c.ServerAddr == "" {
		c.ServerAddr = ":8080"
	}
	if c.JWT.AccessTokenTTL == 0 {
		c.JWT.AccessTokenTTL = 15 * time.Minute
	}
	if c.JWT.RefreshTokenTTL == 0 {
		c.JWT.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if c.RedisConfig.UnreadTTL == 0 {
		c.RedisConfig.UnreadTTL = 10 * time.Minute
	}
	if c.S3Config.PresignTTL == 0 {
		c.S3Config.PresignTTL = 15 * time.Minute
	}
	if c.RabbitMQ.Queue == "" {
		c.RabbitMQ.Queue = "order_events"
	}
	if c.Realtime.PingTimeout == 0 {
		c.Realtime.PingTimeout = 30 * time.Second
	}
	if c.Realtime.WriteTimeout == 0 {
		c.Realtime.WriteTimeout = 10 * time.Second
	}
	if c.Realtime.SendBuffer <= 0 {
		c.Realtime.SendBuffer = 16
	}
	if c.Cookie.Name == "" {
		c.Cookie.Name = "refreshToken"
	}
	if c.Cookie.Path == "" {
		c.Cookie.Path = "/api/auth"
	}
	if c.Cookie.SameSite == "" {
		c.Cookie.SameSite = "lax"
	}
	c.Cookie.Secure = c.Env == EnvProd
}

// Validate : проверяет обязательные параметры
func (c *AppConfig) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("неизвестное окружение %q", c.Env)
	}
	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		return errors.New("jwt: accessSecret и refreshSecret обязательны")
	}
	if c.JWT.AccessSecret == c.JWT.RefreshSecret {
		return errors.New("jwt: accessSecret и refreshSecret должны различаться")
	}
	if c.DatabaseConfig.DSN == "" {
		return errors.New("databaseConfig.dsn обязателен")
	}
	return nil
}

// SameSiteMode : переводит строковое значение из конфига в http.SameSite
func (c CookieConfig) SameSiteMode() http.SameSite {
	switch c.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
