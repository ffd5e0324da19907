package configs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cardcatalog.app/configs/configslog"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// AppConfig uygulamanın çalışma zamanı ayarlarını tutar.
type AppConfig struct {
	Env               string
	Port              string
	LogLevel          string
	SessionExpiration time.Duration
	Database          DatabaseConfig
}

// DatabaseConfig veritabanı bağlantı ayarları.
// DSN doluysa diğer alanlar yok sayılır.
type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// LoadConfig .env dosyasını (varsa) yükler ve ortam değişkenlerinden ayarları okur.
func LoadConfig() AppConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		configslog.Log.Warn(".env file could not be loaded", zap.Error(err))
	}

	return AppConfig{
		Env:               getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", "3000"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SessionExpiration: getEnvDuration("SESSION_EXPIRATION", 24*time.Hour),
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			DSN:      getEnv("DB_DSN", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "cardcatalog"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: getEnv("DB_TIMEZONE", "UTC"),
		},
	}
}

// IsProduction ortamın production olup olmadığını döndürür.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// ConnectionString sürücüye uygun bağlantı cümlesini üretir.
func (d DatabaseConfig) ConnectionString() string {
	if d.DSN != "" {
		return d.DSN
	}
	if d.Driver == DriverSQLite {
		return d.Name + ".db"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode, d.TimeZone)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		configslog.Log.Warn("Invalid duration in environment, using default",
			zap.String("key", key), zap.String("value", raw), zap.Error(err))
		return fallback
	}
	return d
}
