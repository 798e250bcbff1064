package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Session store backends.
const (
	SessionStoreRedis  = "redis"
	SessionStoreCookie = "cookie"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Session   SessionConfig
	Log       LogConfig
	Bootstrap BootstrapConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" env-default:"8080"`
	GinMode         string        `env:"GIN_MODE" env-default:"debug"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// DBConfig holds the store options. Host, User, Password, Name and
// ConnectTimeout are the options every deployment must provide.
type DBConfig struct {
	Driver          string        `env:"DB_DRIVER" env-default:"mysql"`
	Host            string        `env:"DB_HOST" env-default:"localhost"`
	Port            string        `env:"DB_PORT" env-default:"3306"`
	User            string        `env:"DB_USER" env-default:"taskuser"`
	Password        string        `env:"DB_PASSWORD" env-default:"taskpassword"`
	Name            string        `env:"DB_NAME" env-default:"task_management"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"10s"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`
	LogLevel        string        `env:"DB_LOG_LEVEL" env-default:"warn"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" env-default:"localhost"`
	Port     string `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"10"`
}

type SessionConfig struct {
	Store  string        `env:"SESSION_STORE" env-default:"redis"`
	Secret string        `env:"SESSION_SECRET"`
	MaxAge time.Duration `env:"SESSION_MAX_AGE" env-default:"168h"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// BootstrapConfig seeds the first admin account when both fields are set.
type BootstrapConfig struct {
	AdminUserName string `env:"BOOTSTRAP_ADMIN_USER_NAME" env-default:"admin"`
	AdminName     string `env:"BOOTSTRAP_ADMIN_NAME" env-default:"Administrator"`
	AdminEmail    string `env:"BOOTSTRAP_ADMIN_EMAIL"`
	AdminPassword string `env:"BOOTSTRAP_ADMIN_PASSWORD"`
}

// Enabled reports whether an admin account should be seeded.
func (b BootstrapConfig) Enabled() bool {
	return b.AdminEmail != "" && b.AdminPassword != ""
}

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks option combinations that defaults cannot fix.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "mysql", "postgres":
		if c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "" {
			return errors.New("db host, user and name are required")
		}
	case "sqlite":
		if c.DB.Name == "" {
			return errors.New("db name is required")
		}
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}

	if c.DB.ConnectTimeout <= 0 {
		return errors.New("db connect timeout must be positive")
	}

	switch c.Session.Store {
	case SessionStoreRedis, SessionStoreCookie:
	default:
		return fmt.Errorf("unsupported session store %q", c.Session.Store)
	}

	if c.IsProduction() && c.Session.Secret == "" {
		return errors.New("session secret is required in release mode")
	}

	return nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.Server.GinMode == "release"
}
