package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	ESAddresses []string
	ESUsername  string
	ESPassword  string

	SubmissionsIndex string
	PaymentsIndex    string
	AuditIndex       string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	JWTSecret string

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	// Local .env is optional; real deployments set the environment directly.
	godotenv.Load()

	return &Config{
		HTTPAddr: getEnv("REVIEW_ADDR", ":8080"),

		ESAddresses: strings.Split(getEnv("ES_ADDRESSES", "http://127.0.0.1:9200"), ","),
		ESUsername:  getEnv("ES_USERNAME", ""),
		ESPassword:  getEnv("ES_PASSWORD", ""),

		SubmissionsIndex: getEnv("REVIEW_SUBMISSIONS_INDEX", "manpower-submissions"),
		PaymentsIndex:    getEnv("REVIEW_PAYMENTS_INDEX", "manpower-payments"),
		AuditIndex:       getEnv("REVIEW_AUDIT_INDEX", "manpower-audit"),

		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "manpower-review"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "review-events"),

		JWTSecret: getEnv("REVIEW_JWT_SECRET", "review-dev-secret-change-me"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// Validate rejects configurations that can only fail at first use.
func (c *Config) Validate() error {
	var problems []string

	if len(c.ESAddresses) == 0 || c.ESAddresses[0] == "" {
		problems = append(problems, "ES_ADDRESSES cannot be empty")
	}
	if c.JWTSecret == "" {
		problems = append(problems, "REVIEW_JWT_SECRET cannot be empty")
	}
	if c.AMQPURL != "" && c.AMQPExchange == "" {
		problems = append(problems, "AMQP_EXCHANGE cannot be empty when AMQP_URL is set")
	}
	if !strings.HasPrefix(c.HTTPAddr, ":") && !strings.Contains(c.HTTPAddr, ":") {
		problems = append(problems, fmt.Sprintf("invalid listen address %q", c.HTTPAddr))
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
