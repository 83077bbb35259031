package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ram-fashion/storefront/internal/domain"
)

// Config carries everything the server reads from the environment. Gateway
// credentials and the admin phone number live here and nowhere else; they are
// never compiled into source or sent to a client.
type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	RazorpayBaseURL   string
	RazorpayKeyID     string
	RazorpayKeySecret string
	GatewayTimeout    time.Duration

	FreeShippingThreshold int64
	FlatShippingFee       int64
	TaxRate               decimal.Decimal

	OrderIDPrefix   string
	ProcessingDelay time.Duration

	AdminPhone     string
	SMSNotifyTypes map[domain.NotificationType]bool
	SMSDelay       time.Duration

	NotificationLogCap int
	RecentViewTTL      time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	MongoURI      string
	MongoDatabase string
	RedisAddr     string

	SeedDemoUser     bool
	DemoUserEmail    string
	DemoUserPassword string
}

func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		AllowedOrigins:  splitCSV(getEnv("ALLOWED_ORIGINS", "*")),

		RazorpayBaseURL:   getEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		GatewayTimeout:    getEnvDuration("GATEWAY_TIMEOUT", 10*time.Second),

		FreeShippingThreshold: getEnvInt64("FREE_SHIPPING_THRESHOLD", 1500),
		FlatShippingFee:       getEnvInt64("FLAT_SHIPPING_FEE", 99),
		TaxRate:               getEnvDecimal("TAX_RATE", "0.18"),

		OrderIDPrefix:   getEnv("ORDER_ID_PREFIX", "RAM-"),
		ProcessingDelay: getEnvDuration("PROCESSING_DELAY", 3*time.Second),

		AdminPhone:     getEnv("ADMIN_PHONE", ""),
		SMSNotifyTypes: parseNotifyTypes(getEnv("SMS_NOTIFY_TYPES", "cart_add,order_placed")),
		SMSDelay:       getEnvDuration("SMS_DELAY", time.Second),

		NotificationLogCap: int(getEnvInt64("NOTIFICATION_LOG_CAP", 50)),
		RecentViewTTL:      getEnvDuration("RECENT_VIEW_TTL", 5*time.Second),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 24*time.Hour),

		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDatabase: getEnv("MONGO_DATABASE", "storefront"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),

		SeedDemoUser:     getEnvBool("SEED_DEMO_USER", true),
		DemoUserEmail:    getEnv("DEMO_USER_EMAIL", "demo@ram.com"),
		DemoUserPassword: getEnv("DEMO_USER_PASSWORD", "password123"),
	}
}

// Pricing returns the pricing knobs as the domain type.
func (c *Config) Pricing() domain.Pricing {
	return domain.Pricing{
		FreeShippingThreshold: c.FreeShippingThreshold,
		FlatShippingFee:       c.FlatShippingFee,
		TaxRate:               c.TaxRate,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvDecimal(key, defaultValue string) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return decimal.RequireFromString(defaultValue)
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseNotifyTypes(value string) map[domain.NotificationType]bool {
	eligible := make(map[domain.NotificationType]bool)
	for _, part := range splitCSV(value) {
		t := domain.NotificationType(part)
		if t.Valid() {
			eligible[t] = true
		}
	}
	return eligible
}
