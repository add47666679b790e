package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config is the server configuration read from the environment.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	DefaultLang     string        `env:"DEFAULT_LANG" envDefault:"az" validate:"oneof=az en ru"`

	Auth    AuthConfig
	Storage StorageConfig
	Redis   RedisConfig
	Games   GamesConfig
	CORS    CORSConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET,required" validate:"min=8"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"1h" validate:"gt=0"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10" validate:"min=4,max=31"`
}

type StorageConfig struct {
	UserStore  string `env:"USER_STORE" envDefault:"sqlite" validate:"oneof=sqlite mongo"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"greenify.db" validate:"required_if=UserStore sqlite"`
	MongoURI   string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017" validate:"required_if=UserStore mongo"`
	MongoDB    string `env:"MONGO_DB" envDefault:"greenify" validate:"required_if=UserStore mongo"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_URI" envDefault:"localhost:6379" validate:"required"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0" validate:"min=0"`
}

type GamesConfig struct {
	QuizAttemptTTL time.Duration `env:"QUIZ_ATTEMPT_TTL" envDefault:"24h" validate:"gt=0"`
	SortingTick    time.Duration `env:"SORTING_TICK" envDefault:"1s" validate:"gt=0"`
}

type CORSConfig struct {
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	AllowedMethods string `env:"CORS_ALLOWED_METHODS" envDefault:"GET, POST, PUT, DELETE, OPTIONS"`
	AllowedHeaders string `env:"CORS_ALLOWED_HEADERS" envDefault:"Content-Type, Authorization, Accept-Language"`
}

// Load parses and validates the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.Redis.Addr = strings.TrimPrefix(cfg.Redis.Addr, "redis://")
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate validates a struct using validator tags.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
