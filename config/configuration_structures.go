package config

import "time"

type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_URL"`
}

type RedisConfig struct {
	Addr      string        `yaml:"addr" env:"REDIS_ADDR"`
	Password  string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB        int           `yaml:"db" env:"REDIS_DB"`
	UnreadTTL time.Duration `yaml:"unreadTTL" env:"REDIS_UNREAD_TTL"`
}

// S3Config : пустой Bucket отключает хранилище изображений
type S3Config struct {
	Bucket     string        `yaml:"bucket" env:"S3_BUCKET"`
	Region     string        `yaml:"region" env:"S3_REGION"`
	Endpoint   string        `yaml:"endpoint" env:"S3_ENDPOINT"`
	Local      bool          `yaml:"local" env:"S3_LOCAL"`
	PresignTTL time.Duration `yaml:"presignTTL" env:"S3_PRESIGN_TTL"`
}

// RabbitMQConfig : пустой URL отключает публикацию событий заказов
type RabbitMQConfig struct {
	URL   string `yaml:"url" env:"RABBITMQ_URL"`
	Queue string `yaml:"queue" env:"RABBITMQ_QUEUE"`
}

type JWTConfig struct {
	AccessSecret    string        `yaml:"accessSecret" env:"JWT_SECRET"`
	RefreshSecret   string        `yaml:"refreshSecret" env:"REFRESH_SECRET"`
	AccessTokenTTL  time.Duration `yaml:"accessTokenTTL" env:"JWT_EXPIRES_IN"`
	RefreshTokenTTL time.Duration `yaml:"refreshTokenTTL" env:"REFRESH_EXPIRES_IN"`
}

type CORSConfig struct {
	AllowedOrigin string `yaml:"allowedOrigin" env:"FRONTEND_URL"`
}

type RealtimeConfig struct {
	PingTimeout  time.Duration `yaml:"pingTimeout" env:"WS_PING_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"writeTimeout" env:"WS_WRITE_TIMEOUT"`
	SendBuffer   int           `yaml:"sendBuffer" env:"WS_SEND_BUFFER"`
}

// CookieConfig : параметры cookie с refresh токеном
type CookieConfig struct {
	Name     string `yaml:"name" env:"REFRESH_COOKIE_NAME"`
	Path     string `yaml:"path" env:"REFRESH_COOKIE_PATH"`
	SameSite string `yaml:"sameSite" env:"REFRESH_COOKIE_SAMESITE"`
	Secure   bool   `yaml:"-"`
}
