package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server  ServerConfig
	App     AppConfig
	Storage StorageConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"bakery-pos-api"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// StorageConfig holds storage tier settings. Tier "auto" probes the ranked
// tier list (database, data directory, Redis, memory) and keeps the first
// one that initializes.
type StorageConfig struct {
	// Tier forces a specific tier: sqlite, mysql, file, redis or memory.
	Tier string `envconfig:"STORAGE_TIER" default:"auto"`

	// SQLitePath is the database file for the sqlite tier.
	SQLitePath string `envconfig:"STORAGE_SQLITE_PATH" default:"./data/pos.db"`

	// DataDir is where the file tier keeps one <key>.json per record.
	DataDir string `envconfig:"STORAGE_DATA_DIR" default:"./data/records"`

	// MySQL settings. Leaving the host empty disables the mysql tier.
	MySQLHost     string `envconfig:"STORAGE_MYSQL_HOST" default:""`
	MySQLPort     int    `envconfig:"STORAGE_MYSQL_PORT" default:"3306"`
	MySQLName     string `envconfig:"STORAGE_MYSQL_NAME" default:"bakery_pos"`
	MySQLUser     string `envconfig:"STORAGE_MYSQL_USER" default:"root"`
	MySQLPassword string `envconfig:"STORAGE_MYSQL_PASS" default:""`

	// Redis settings. Leaving the host empty disables the redis tier.
	RedisHost     string `envconfig:"STORAGE_REDIS_HOST" default:""`
	RedisPort     int    `envconfig:"STORAGE_REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"STORAGE_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"STORAGE_REDIS_DB" default:"0"`
	RedisPrefix   string `envconfig:"STORAGE_REDIS_PREFIX" default:"bakery:records"`
}

// MySQLDSN returns the MySQL data source name, or "" when MySQL is not
// configured.
func (s *StorageConfig) MySQLDSN() string {
	if s.MySQLHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		s.MySQLUser, s.MySQLPassword, s.MySQLHost, s.MySQLPort, s.MySQLName)
}

// RedisAddress returns the Redis address in host:port format, or "" when
// Redis is not configured.
func (s *StorageConfig) RedisAddress() string {
	if s.RedisHost == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", s.RedisHost, s.RedisPort)
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
