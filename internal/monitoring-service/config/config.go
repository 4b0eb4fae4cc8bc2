package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server   ServerConfig
	Monitor  MonitorConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type MonitorConfig struct {
	CheckSchedule         string        `envconfig:"MONITOR_CHECK_SCHEDULE" default:"*/5 * * * *"`
	ReportSchedule        string        `envconfig:"MONITOR_REPORT_SCHEDULE" default:"0 0 * * *"`
	ProbeTimeout          time.Duration `envconfig:"MONITOR_PROBE_TIMEOUT" default:"10s"`
	PacingDelay           time.Duration `envconfig:"MONITOR_PACING_DELAY" default:"1s"`
	UptimeWindow          time.Duration `envconfig:"MONITOR_UPTIME_WINDOW" default:"24h"`
	AlertOnTransitionOnly bool          `envconfig:"ALERT_ON_TRANSITION_ONLY" default:"false"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
}

type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST" required:"true"`
	Port     int           `envconfig:"REDIS_PORT" required:"true"`
	CacheTTL time.Duration `envconfig:"REDIS_CACHE_TTL" default:"5m"`
}

type KafkaConfig struct {
	Brokers    []string `envconfig:"KAFKA_BROKERS" required:"true"`
	AlertTopic string   `envconfig:"KAFKA_ALERT_TOPIC" required:"true"`
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL" required:"true"`
	Password         string `envconfig:"MAIL_PASSWORD" required:"true"`
	Host             string `envconfig:"MAIL_HOST" required:"true"`
	Port             int    `envconfig:"MAIL_PORT" required:"true"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL" required:"true"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
