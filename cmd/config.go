package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	RedisAddr              string
	RedisPassword          string
	RedisDB                int
	KafkaHost              string
	KafkaOrderChangedTopic string
	OutboxBatchSize        int
	StoreTimezone          string
	LogLevel               string
}

// LoadConfig reads .env when present, then environment variables, then an
// optional config.yaml. Environment wins over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/storefront")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_port", "8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "storefront")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("kafka_host", "localhost:9092")
	v.SetDefault("kafka_order_changed_topic", "order-changed")
	v.SetDefault("outbox_batch_size", 100)
	v.SetDefault("store_timezone", "America/Sao_Paulo")
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		HTTPPort:               v.GetString("http_port"),
		DBHost:                 v.GetString("db_host"),
		DBPort:                 v.GetString("db_port"),
		DBUser:                 v.GetString("db_user"),
		DBPassword:             v.GetString("db_password"),
		DBName:                 v.GetString("db_name"),
		DBSslMode:              v.GetString("db_sslmode"),
		RedisAddr:              v.GetString("redis_addr"),
		RedisPassword:          v.GetString("redis_password"),
		RedisDB:                v.GetInt("redis_db"),
		KafkaHost:              v.GetString("kafka_host"),
		KafkaOrderChangedTopic: v.GetString("kafka_order_changed_topic"),
		OutboxBatchSize:        v.GetInt("outbox_batch_size"),
		StoreTimezone:          v.GetString("store_timezone"),
		LogLevel:               v.GetString("log_level"),
	}, nil
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits the comma separated broker list.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Clock returns the current time in the store's timezone, which is what
// working hours are written in.
func (c Config) Clock() (func() time.Time, error) {
	loc, err := time.LoadLocation(c.StoreTimezone)
	if err != nil {
		return nil, fmt.Errorf("store timezone %q: %w", c.StoreTimezone, err)
	}
	return func() time.Time { return time.Now().In(loc) }, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
