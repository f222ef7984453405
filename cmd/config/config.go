package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Auth        AuthConfig
	RabbitMQ    RabbitMQConfig
	Internal    InternalConfig
	Mailer      MailerConfig
	DevLink     DevLinkConfig
	Cache       CacheConfig
	Valuation   ValuationConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
	MagicLinkTTL   time.Duration
	// MagicLinkBaseURL is where the verify page lives; the token is appended as ?token=.
	MagicLinkBaseURL string
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type InternalConfig struct {
	APIKey string
}

type MailerConfig struct {
	APIURL string
	APIKey string
	From   string
}

type DevLinkConfig struct {
	Enabled bool
	Size    int
	TTL     time.Duration
}

type CacheConfig struct {
	CatalogTTL time.Duration
}

type ValuationConfig struct {
	// CompWindow bounds how far back sold listings are loaded as comps.
	CompWindow time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "development")

	return &Config{
		Environment: env,
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "humidor_club"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:    getDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime:   getDuration("SESSION_EXPIRATION", 24*time.Hour),
			MagicLinkTTL:     getDuration("AUTH_MAGIC_LINK_TTL", 15*time.Minute),
			MagicLinkBaseURL: getEnv("AUTH_MAGIC_LINK_BASE_URL", "http://localhost:3000/auth/verify"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Internal: InternalConfig{
			APIKey: getEnv("INTERNAL_API_KEY", ""),
		},
		Mailer: MailerConfig{
			APIURL: getEnv("MAILER_API_URL", "http://localhost:8025/api/send"),
			APIKey: getEnv("MAILER_API_KEY", ""),
			From:   getEnv("MAILER_FROM", "no-reply@humidor.club"),
		},
		DevLink: DevLinkConfig{
			// never on in production unless explicitly forced
			Enabled: getBool("DEV_LINK_STORE_ENABLED", env != "production"),
			Size:    getInt("DEV_LINK_STORE_SIZE", 1024),
			TTL:     getDuration("DEV_LINK_STORE_TTL", 24*time.Hour),
		},
		Cache: CacheConfig{
			CatalogTTL: getDuration("CACHE_CATALOG_TTL", 5*time.Minute),
		},
		Valuation: ValuationConfig{
			CompWindow: getDuration("VALUATION_COMP_WINDOW", 180*24*time.Hour),
		},
	}
}

// GetDSN builds the MySQL DSN. clientFoundRows makes RowsAffected report
// matched rows, so conditional updates that write identical values still
// count as applied.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&clientFoundRows=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}
