package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port      string   `yaml:"port" env:"PORT" env-default:"8080"`
	JWTSecret string   `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	Database  Database `yaml:"database"`
	Redis     Redis    `yaml:"redis"`
	Kafka     Kafka    `yaml:"kafka"`
	Booking   Booking  `yaml:"booking"`
	Admin     Admin    `yaml:"admin"`
	Worker    Worker   `yaml:"worker"`
}

// Booking holds the venue's reservation policy. Pricing tiers and the add-on
// catalog live in the pricing package's default config; only the knobs that
// differ between deployments are configurable here.
type Booking struct {
	MinHours               float64 `yaml:"min_hours" env:"BOOKING_MIN_HOURS" env-default:"3"`
	MaxHours               float64 `yaml:"max_hours" env:"BOOKING_MAX_HOURS" env-default:"24"`
	Currency               string  `yaml:"currency" env:"BOOKING_CURRENCY" env-default:"INR"`
	AvailabilityTTLSeconds int     `yaml:"availability_ttl_seconds" env:"BOOKING_AVAILABILITY_TTL" env-default:"60"`
}

// Admin optionally seeds a dashboard account on startup.
type Admin struct {
	Email    string `yaml:"email" env:"ADMIN_EMAIL" env-default:""`
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-default:""`
	Name     string `yaml:"name" env:"ADMIN_NAME" env-default:"Administrator"`
}

type Worker struct {
	MaxWorkers int `yaml:"max_workers" env:"WORKER_MAX_WORKERS" env-default:"4"`
}

type Database struct {
	User         string `yaml:"user" env:"DB_USER" env-required:"true"`
	Password     string `yaml:"password" env:"DB_PASSWORD" env-required:"true"`
	DatabaseName string `yaml:"database_name" env:"DB_NAME" env-required:"true"`
	Host         string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port         string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	SSLMode      string `yaml:"ssl_mode" env:"DB_SSL_MODE" env-default:"disable"`

	// Connection Pool Settings
	MaxOpenConns    int `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	ConnMaxLifetime int `yaml:"conn_max_lifetime_minutes" env:"DB_CONN_MAX_LIFETIME" env-default:"30"`
}

func (d *Database) GetDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DatabaseName, d.SSLMode)
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

func (r *Redis) GetRedisURL() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type Kafka struct {
	Brokers           []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092" env-separator:","`
	NotificationTopic string   `yaml:"notification_topic" env:"KAFKA_NOTIFICATION_TOPIC" env-default:"notification-requests"`
	ConsumerGroup     string   `yaml:"consumer_group" env:"KAFKA_CONSUMER_GROUP" env-default:"venue-booking"`
}

func Initialise(configPath string, useEnv bool) (*Config, error) {
	cfg := &Config{}

	if useEnv {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment variables: %w", err)
		}
		return cfg, nil
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
			}
			return cfg, nil
		}
	}

	// Fallback to environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment variables: %w", err)
	}

	return cfg, nil
}
