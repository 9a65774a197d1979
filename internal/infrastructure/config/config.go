package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Upload    UploadConfig
	Hash      HashConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ecommerce"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// UploadConfig configures the image upload gateway. Endpoint and the key
// pair point at any S3-compatible asset host.
type UploadConfig struct {
	Bucket       string `env:"UPLOAD_BUCKET,        default=user-avatars"`
	Endpoint     string `env:"UPLOAD_ENDPOINT,      default=http://localhost:9000"`
	Region       string `env:"UPLOAD_REGION,        default=us-east-1"`
	AccessKey    string `env:"UPLOAD_ACCESS_KEY"`
	SecretKey    string `env:"UPLOAD_SECRET_KEY"`
	Folder       string `env:"UPLOAD_FOLDER,        default=avatars"`
	MaxFileSize  int64  `env:"UPLOAD_MAX_FILE_SIZE, default=6291456"`
	Required     bool   `env:"UPLOAD_REQUIRED,      default=false"`
	UsePathStyle bool   `env:"UPLOAD_USE_PATH_STYLE, default=true"`
}

type HashConfig struct {
	Cost int `env:"HASH_COST, default=10"`
}

type RateLimitConfig struct {
	SignupLimit  int64         `env:"SIGNUP_RATE_LIMIT,  default=10"`
	SignupWindow time.Duration `env:"SIGNUP_RATE_WINDOW, default=1m"`
}

// IsDevelopment reports whether internal error detail may reach clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
