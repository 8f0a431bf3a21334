package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service  Service
	Postgres Postgres
	Logger   Logger
	Metrics  Metrics
	Kafka    Kafka
	JWT      JWT
	Platform Platform
}

type Service struct {
	Port string `env:"ACCESS_SERVICE_PORT" env-default:"8080"`
	Name string `env:"ACCESS_SERVICE_NAME" env-default:"access-service"`
}

type Postgres struct {
	User     string `env:"ACCESS_SERVICE_POSTGRES_USER"`
	Password string `env:"ACCESS_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"ACCESS_SERVICE_POSTGRES_DB"`
	Host     string `env:"ACCESS_SERVICE_POSTGRES_HOST"`
	Port     string `env:"ACCESS_SERVICE_POSTGRES_PORT"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Kafka struct {
	Host      string `env:"KAFKA_HOST"`
	Port      string `env:"KAFKA_PORT"`
	UserTopic string `env:"KAFKA_USER_TOPIC" env-default:"user_updates"`
}

type JWT struct {
	Secret string `env:"ACCESS_SERVICE_JWT_SECRET"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env variables: %v", err)
	}

	return cfg
}
