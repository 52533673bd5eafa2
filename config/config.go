package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig    `envconfig:"HTTP"`
	Database      DatabaseConfig      `envconfig:"DB"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	HttpClient    HttpClientConfig    `envconfig:"HTTP_CLIENT"`
	UserService   UserServiceConfig   `envconfig:"USER_SERVICE"`
	MessageStream MessageStreamConfig `envconfig:"AMQP"`
	Scheduler     SchedulerConfig     `envconfig:"SCHEDULER"`
	Booking       BookingConfig       `envconfig:"BOOKING"`
	Log           LogConfig           `envconfig:"LOG"`
}

type HttpServerConfig struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"20s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"20s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"booking"`
	Password        string        `envconfig:"PASSWORD" default:"booking"`
	Name            string        `envconfig:"NAME" default:"travel_booking"`
	SSLMode         string        `envconfig:"SSLMODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

type HttpClientConfig struct {
	Type             string        `envconfig:"TYPE" default:"consecutive"`
	Timeout          time.Duration `envconfig:"TIMEOUT" default:"5s"`
	ConsecutiveFails int64         `envconfig:"CONSECUTIVE_FAILS" default:"5"`
	ErrorRate        float64       `envconfig:"ERROR_RATE" default:"0.5"`
	MinSamples       int64         `envconfig:"MIN_SAMPLES" default:"20"`
}

type UserServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8081"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

type SchedulerConfig struct {
	Concurrency       int    `envconfig:"CONCURRENCY" default:"10"`
	MonitoringPort    string `envconfig:"MONITORING_PORT" default:"8090"`
	ReconcileCronSpec string `envconfig:"RECONCILE_CRON" default:"@every 1h"`
}

type BookingConfig struct {
	// PendingTTL is how long a booking may stay PENDING before it is expired.
	PendingTTL      time.Duration `envconfig:"PENDING_TTL" default:"24h"`
	MutationLockTTL time.Duration `envconfig:"MUTATION_LOCK_TTL" default:"10s"`
	Currency        string        `envconfig:"CURRENCY" default:"USD"`
}

type LogConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

func InitConfig() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
