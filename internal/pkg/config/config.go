package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	Shopify     ShopifyConfig
	Cron        CronConfig
	TempProduct TempProductConfig
	Scheduler   SchedulerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true" validate:"required,numeric"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost" validate:"required"`
	Port     string `envconfig:"DB_PORT" default:"5432" validate:"required,numeric"`
	User     string `envconfig:"DB_USER" required:"true" validate:"required"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true" validate:"required"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20" validate:"gte=1"`
}

// CORSConfig applies to the storefront app-proxy routes.
type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type ShopifyConfig struct {
	APIKey         string        `envconfig:"SHOPIFY_API_KEY" required:"true" validate:"required"`
	APISecret      string        `envconfig:"SHOPIFY_API_SECRET" required:"true" validate:"required"`
	APIVersion     string        `envconfig:"SHOPIFY_API_VERSION" default:"2025-01" validate:"required"`
	RequestsPerSec float64       `envconfig:"SHOPIFY_REQUESTS_PER_SECOND" default:"2" validate:"gt=0"`
	Burst          int           `envconfig:"SHOPIFY_REQUEST_BURST" default:"4" validate:"gte=1"`
	Timeout        time.Duration `envconfig:"SHOPIFY_TIMEOUT" default:"15s"`
}

type CronConfig struct {
	Secret string `envconfig:"CRON_SECRET"`
}

type TempProductConfig struct {
	TTL time.Duration `envconfig:"TEMP_PRODUCT_TTL" default:"2h" validate:"gt=0"`
}

type SchedulerConfig struct {
	Enabled     bool          `envconfig:"SCHEDULER_ENABLED" default:"false"`
	RedisURL    string        `envconfig:"REDIS_URL" validate:"required_if=Enabled true"`
	Queue       string        `envconfig:"SCHEDULER_QUEUE" default:"default"`
	Concurrency int           `envconfig:"SCHEDULER_CONCURRENCY" default:"2" validate:"gte=1"`
	SweepSpec   string        `envconfig:"SCHEDULER_SWEEP_SPEC" default:"@every 10m"`
	LockTTL     time.Duration `envconfig:"SCHEDULER_LOCK_TTL" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Shopify: ShopifyConfig{
			APIKey:         "test-api-key",
			APISecret:      "test-api-secret",
			APIVersion:     "2025-01",
			RequestsPerSec: 100,
			Burst:          100,
			Timeout:        5 * time.Second,
		},
		Cron: CronConfig{
			Secret: "test-cron-secret",
		},
		TempProduct: TempProductConfig{
			TTL: 2 * time.Hour,
		},
		Scheduler: SchedulerConfig{
			Enabled:     false,
			Queue:       "default",
			Concurrency: 1,
			SweepSpec:   "@every 10m",
			LockTTL:     time.Minute,
		},
	}
}
