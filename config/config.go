package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config is built once in main and passed down by reference; nothing in the
// application reads the environment after startup.
type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string
	Port       string
	GinMode    string
	JWTSecret  string

	// RateLimit is requests per second per client IP; 0 disables the limiter.
	RateLimit int
}

func Load() *Config {
	return &Config{
		DBDriver:   getenv("DB_DRIVER", "postgres"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "dine_in_db"),
		SQLitePath: getenv("SQLITE_PATH", "dine_in.db"),
		Port:       getenv("PORT", "8080"),
		GinMode:    os.Getenv("GIN_MODE"),
		JWTSecret:  getenv("JWT_SECRET", "dev-secret-change-me"),
		RateLimit:  50,
	}
}

// OpenDB connects with the driver named by DB_DRIVER. Postgres is the
// production default; sqlite covers embedded and test setups.
func (c *Config) OpenDB() (*gorm.DB, error) {
	switch c.DBDriver {
	case "postgres":
		if c.DBPassword == "" {
			return nil, fmt.Errorf("DB_PASSWORD environment variable not set")
		}
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(c.SQLitePath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
