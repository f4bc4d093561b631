package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration, read from environment variables named after the
// fields in upper snake case (HTTP_PORT, DB_HOST, REDIS_ADDR, ...).
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   slog.Level

	// Packaging and workload tuning.
	EarlyAssignWarningHours      int
	MinutesPerFiveOrders         int
	DefaultMinutesToMove         int
	DefaultMinutesToWaitCustomer int

	// Travel estimate cache. REDIS_ADDR is required only when the cache is enabled.
	RedisEnabled   bool
	RedisAddr      string
	TravelCacheTTL time.Duration

	// Notifier picks the transport: log, servicebus or rabbitmq.
	Notifier                   string
	ServiceBusConnectionString string
	ServiceBusQueue            string
	RabbitMQURL                string
	RabbitMQExchange           string

	MessageLocale        string
	StaffReleaseSchedule string
}

// DSN is the libpq keyword/value connection string of the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// EarlyAssignWarningWindow is how long before a slot starts packaging stops needing
// confirmation.
func (c Config) EarlyAssignWarningWindow() time.Duration {
	return time.Duration(c.EarlyAssignWarningHours) * time.Hour
}

// LoadConfig reads the environment, after loading envFile into it when the file exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg := Config{
		HTTPPort:   v.GetString("HTTP_PORT"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSslMode:  v.GetString("DB_SSLMODE"),
		LogLevel:   level,

		EarlyAssignWarningHours:      v.GetInt("EARLY_ASSIGN_WARNING_HOURS"),
		MinutesPerFiveOrders:         v.GetInt("MINUTES_PER_FIVE_ORDERS"),
		DefaultMinutesToMove:         v.GetInt("DEFAULT_MINUTES_TO_MOVE"),
		DefaultMinutesToWaitCustomer: v.GetInt("DEFAULT_MINUTES_TO_WAIT_CUSTOMER"),

		RedisEnabled:   v.GetBool("REDIS_ENABLED"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		TravelCacheTTL: v.GetDuration("TRAVEL_CACHE_TTL"),

		Notifier:                   v.GetString("NOTIFIER"),
		ServiceBusConnectionString: v.GetString("SERVICEBUS_CONNECTION_STRING"),
		ServiceBusQueue:            v.GetString("SERVICEBUS_QUEUE"),
		RabbitMQURL:                v.GetString("RABBITMQ_URL"),
		RabbitMQExchange:           v.GetString("RABBITMQ_EXCHANGE"),

		MessageLocale:        v.GetString("MESSAGE_LOCALE"),
		StaffReleaseSchedule: v.GetString("STAFF_RELEASE_SCHEDULE"),
	}

	if cfg.RedisEnabled && cfg.RedisAddr == "" {
		return Config{}, errors.New("REDIS_ADDR is required when REDIS_ENABLED is set")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8082")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "shopdelivery")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("EARLY_ASSIGN_WARNING_HOURS", 2)
	v.SetDefault("MINUTES_PER_FIVE_ORDERS", 5)
	v.SetDefault("DEFAULT_MINUTES_TO_MOVE", 10)
	v.SetDefault("DEFAULT_MINUTES_TO_WAIT_CUSTOMER", 5)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("TRAVEL_CACHE_TTL", "10m")

	v.SetDefault("NOTIFIER", "log")
	v.SetDefault("SERVICEBUS_CONNECTION_STRING", "")
	v.SetDefault("SERVICEBUS_QUEUE", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "")

	v.SetDefault("MESSAGE_LOCALE", "en")
	v.SetDefault("STAFF_RELEASE_SCHEDULE", "0 */5 * * * *")
}
