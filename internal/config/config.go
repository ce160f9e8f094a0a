package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env              string `yaml:"env" env:"ENV" env-default:"local"`
	Storage          string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	ReviewerPicker   string `yaml:"reviewer_picker" env:"REVIEWER_PICKER" env-default:"random"`
	HTTPServerConfig `yaml:"http_server"`
	PostgresConfig   `yaml:"postgres"`
	AuthConfig       `yaml:"auth"`
	MigrationsPath   string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"file://./migrations"`
}

type HTTPServerConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout         time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

func (c HTTPServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type PostgresConfig struct {
	Host        string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port        int    `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User        string `yaml:"user" env:"POSTGRES_USER"`
	Password    string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName      string `yaml:"dbname" env:"POSTGRES_DB"`
	SSLMode     string `yaml:"ssl_mode" env:"POSTGRES_SSL_MODE" env-default:"disable"`
	AutoMigrate bool   `yaml:"auto_migrate" env:"POSTGRES_AUTO_MIGRATE" env-default:"false"`
}

// DSN is a postgres:// URL accepted by both lib/pq and golang-migrate.
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

type AuthConfig struct {
	AdminSecret string `yaml:"admin_jwt_secret" env:"ADMIN_JWT_SECRET" env-required:"true"`
	UserSecret  string `yaml:"user_jwt_secret" env:"USER_JWT_SECRET" env-required:"true"`
}

// MustLoad reads the config or exits.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load reads the YAML file at configPath with environment overrides.
// An empty path means environment only. A .env file in the working directory is loaded first.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
	} else {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file doesn't exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.PostgresConfig.User == "" || c.PostgresConfig.DBName == "" {
			return errors.New("postgres storage requires user and dbname")
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}

	if c.AdminSecret == c.UserSecret {
		return errors.New("admin and user JWT secrets must differ")
	}

	return nil
}
