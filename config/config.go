package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Route detail modes for users assigned to more than one route
const (
	RouteDetailFirst = "first"
	RouteDetailAll   = "all"
)

// Config holds the service configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Routes     RoutesConfig
	Redis      RedisConfig
	ServiceBus ServiceBusConfig
	NewRelic   NewRelicConfig
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Port         int
	Mode         string // debug, release, test
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds the database configuration.
// URL takes precedence over the individual connection fields.
type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogQueries      bool
}

// AuthConfig holds credential issuing settings
type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// RoutesConfig holds route assignment behavior settings
type RoutesConfig struct {
	DetailMode string
}

// RedisConfig holds the Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

// ServiceBusConfig holds the Azure Service Bus configuration
type ServiceBusConfig struct {
	ConnectionString string
	QueueName        string
}

// NewRelicConfig holds the New Relic configuration
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// InitConfig initializes the configuration using Viper
func InitConfig(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/impulso")
		viper.SetConfigName("config")
	}

	// IMPULSO_SERVER_PORT overrides server.port
	viper.SetEnvPrefix("IMPULSO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Variable names used by the existing deployment
	_ = viper.BindEnv("auth.jwt_secret", "IMPULSO_AUTH_JWT_SECRET", "JWT_SECRET")
	_ = viper.BindEnv("database.url", "IMPULSO_DATABASE_URL", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("No config file found, using defaults and environment variables")
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	return nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "30s")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.password", "postgres")
	viper.SetDefault("database.dbname", "impulso")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "30m")
	viper.SetDefault("database.log_queries", false)

	// Auth defaults - no default secret
	viper.SetDefault("auth.token_ttl", "1h")
	viper.SetDefault("auth.bcrypt_cost", 10)

	viper.SetDefault("routes.detail_mode", RouteDetailFirst)

	// Redis defaults
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttl", "5m")

	// Service Bus defaults - no default connection string for security
	viper.SetDefault("servicebus.queuename", "impulso-events")

	// New Relic defaults
	viper.SetDefault("newrelic.appname", "Impulso API Local")
	viper.SetDefault("newrelic.enabled", false)
}

// Load loads the configuration
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			Mode:         viper.GetString("server.mode"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
		},
		Database: DatabaseConfig{
			URL:             viper.GetString("database.url"),
			Host:            viper.GetString("database.host"),
			Port:            viper.GetInt("database.port"),
			User:            viper.GetString("database.user"),
			Password:        viper.GetString("database.password"),
			DBName:          viper.GetString("database.dbname"),
			SSLMode:         viper.GetString("database.sslmode"),
			MaxOpenConns:    viper.GetInt("database.max_open_conns"),
			MaxIdleConns:    viper.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: viper.GetDuration("database.conn_max_lifetime"),
			LogQueries:      viper.GetBool("database.log_queries"),
		},
		Auth: AuthConfig{
			JWTSecret:  viper.GetString("auth.jwt_secret"),
			TokenTTL:   viper.GetDuration("auth.token_ttl"),
			BcryptCost: viper.GetInt("auth.bcrypt_cost"),
		},
		Routes: RoutesConfig{
			DetailMode: strings.ToLower(viper.GetString("routes.detail_mode")),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("redis.enabled"),
			Host:     viper.GetString("redis.host"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			TTL:      viper.GetDuration("redis.ttl"),
		},
		ServiceBus: ServiceBusConfig{
			ConnectionString: viper.GetString("servicebus.connectionstring"),
			QueueName:        viper.GetString("servicebus.queuename"),
		},
		NewRelic: NewRelicConfig{
			AppName:    viper.GetString("newrelic.appname"),
			LicenseKey: viper.GetString("newrelic.licensekey"),
			Enabled:    viper.GetBool("newrelic.enabled"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks settings that have a closed set of values
func (c *Config) Validate() error {
	switch c.Routes.DetailMode {
	case RouteDetailFirst, RouteDetailAll:
	default:
		return fmt.Errorf("invalid routes.detail_mode %q: expected %q or %q",
			c.Routes.DetailMode, RouteDetailFirst, RouteDetailAll)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	return nil
}

// DSN returns the postgres connection string
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
