package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"fooddelivery/internal/adapters/out/auth"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is read from the environment, optionally seeded from a .env file.
// Keys are the upper-case environment variable names.
type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSslMode  string `mapstructure:"DB_SSLMODE"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	KafkaHost              string `mapstructure:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `mapstructure:"KAFKA_ORDER_CHANGED_TOPIC"`

	S3Bucket   string `mapstructure:"S3_BUCKET"`
	S3Region   string `mapstructure:"S3_REGION"`
	S3Endpoint string `mapstructure:"S3_ENDPOINT"`
	S3Prefix   string `mapstructure:"S3_PREFIX"`

	CatalogPath       string        `mapstructure:"CATALOG_PATH"`
	DeliveryFee       int           `mapstructure:"DELIVERY_FEE"`
	DeliveryETA       time.Duration `mapstructure:"DELIVERY_ETA"`
	OfferWindow       time.Duration `mapstructure:"OFFER_WINDOW"`
	BroadcastSchedule string        `mapstructure:"BROADCAST_SCHEDULE"`
	ExpirySchedule    string        `mapstructure:"EXPIRY_SCHEDULE"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "fooddelivery")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", auth.DefaultTTL)

	v.SetDefault("KAFKA_HOST", "")
	v.SetDefault("KAFKA_ORDER_CHANGED_TOPIC", kafka.DefaultTopic)

	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_REGION", "ap-south-1")
	v.SetDefault("S3_ENDPOINT", "")
	v.SetDefault("S3_PREFIX", "payment-proofs")

	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("DELIVERY_FEE", services.DefaultDeliveryFee)
	v.SetDefault("DELIVERY_ETA", order.DefaultETA)
	v.SetDefault("OFFER_WINDOW", services.DefaultOfferWindow)
	v.SetDefault("BROADCAST_SCHEDULE", jobs.DefaultBroadcastSchedule)
	v.SetDefault("EXPIRY_SCHEDULE", jobs.DefaultExpirySchedule)
}

// LoadConfig applies envFile (when it exists) to the process environment
// and reads the configuration from it.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty means Kafka is disabled.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
