package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Kafka  KafkaConfig
	Observ ObservabilityConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type KafkaConfig struct {
	Enabled       bool
	Brokers       []string
	TopicOrder    string
	ConsumerGroup string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	tokenTTLMin, _ := strconv.Atoi(getEnv("TOKEN_TTL_MINUTES", "60"))
	kafkaEnabled, _ := strconv.ParseBool(getEnv("KAFKA_ENABLED", "false"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "5000"),
			Env:  getEnv("ENV", "development"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "adaptNXT_secret_key"),
			TokenTTL:  time.Duration(tokenTTLMin) * time.Minute,
		},
		Kafka: KafkaConfig{
			Enabled:       kafkaEnabled,
			Brokers:       strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			TopicOrder:    getEnv("KAFKA_TOPIC_ORDER_EVENTS", "shop-order-events"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "shop-service-group"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
