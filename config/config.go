package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Remote backend reached for inventory, coupon validation,
	// availability checks, booking persistence and email dispatch.
	BackendBaseURL   string `mapstructure:"BACKEND_BASE_URL"`
	BackendTimeoutMS int    `mapstructure:"BACKEND_TIMEOUT_MS"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisDraftDB     int    `mapstructure:"REDIS_DRAFT_DB"`
	RedisTaskQueueDB int    `mapstructure:"REDIS_TASK_QUEUE_DB"`

	// Booking policy.
	OpenHour             int    `mapstructure:"OPEN_HOUR"`
	CloseHour            int    `mapstructure:"CLOSE_HOUR"`
	DraftTTLMinutes      int    `mapstructure:"DRAFT_TTL_MIN"`
	AllowPastStart       bool   `mapstructure:"ALLOW_PAST_START"`
	FallbackCouponCode   string `mapstructure:"FALLBACK_COUPON_CODE"`
	FallbackCouponAmount int    `mapstructure:"FALLBACK_COUPON_AMOUNT"`

	// Payment gateway.
	StripeKey string `mapstructure:"STRIPE_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost/vayuhu_backend")
	viper.SetDefault("BACKEND_TIMEOUT_MS", 10000)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DRAFT_DB", 0)
	viper.SetDefault("REDIS_TASK_QUEUE_DB", 3)
	viper.SetDefault("OPEN_HOUR", 8)
	viper.SetDefault("CLOSE_HOUR", 20)
	viper.SetDefault("DRAFT_TTL_MIN", 30)
	viper.SetDefault("ALLOW_PAST_START", false)
	viper.SetDefault("FALLBACK_COUPON_CODE", "VAYUHU10")
	viper.SetDefault("FALLBACK_COUPON_AMOUNT", 10)
	viper.SetDefault("STRIPE_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
