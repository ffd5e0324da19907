package configsdatabase

import (
	"errors"
	"fmt"
	"time"

	"cardcatalog.app/configs"
	"cardcatalog.app/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB ayarlara göre veritabanı bağlantısını açar.
// Dönen *gorm.DB uygulama boyunca parametre olarak taşınır.
func InitDB(cfg configs.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		configslog.Log.Error("Database connection failed", zap.String("driver", cfg.Driver), zap.Error(err))
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Driver == configs.DriverSQLite {
		// SQLite tek yazıcıya izin verir; FK kontrolü bağlantı bazında açılır
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	configslog.SLog.Infof("Database connection established (driver: %s)", cfg.Driver)
	return db, nil
}

// CloseDB alttaki bağlantı havuzunu kapatır.
func CloseDB(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Could not get sql.DB for closing", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Database connection could not be closed", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database connection closed")
}

func openDialector(cfg configs.DatabaseConfig) (gorm.Dialector, error) {
	dsn := cfg.ConnectionString()
	switch cfg.Driver {
	case configs.DriverPostgres, "postgresql", "":
		return postgres.Open(dsn), nil
	case configs.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, errors.New("desteklenmeyen veritabanı sürücüsü: " + cfg.Driver)
	}
}

// zapWriter gorm logger çıktısını zap'e yönlendirir.
type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	configslog.SLog.Infof(format, args...)
}

func newGormLogger() logger.Interface {
	return logger.New(zapWriter{}, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
