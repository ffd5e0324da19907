package database

import (
	"errors"
	"fmt"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/database/migrations"
	"cardcatalog.app/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyonları ve seeder'ları tek transaction içinde çalıştırır.
// Herhangi bir adım başarısız olursa tüm işlem geri alınır.
func Initialize(db *gorm.DB, migrate bool, seed bool) (err error) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, nothing to do.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Error("Could not begin database transaction", zap.Error(tx.Error))
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Error("Database initialization panicked", zap.Any("panic_info", r))
			err = fmt.Errorf("database initialization panicked: %v", r)
			return
		}
		if err != nil {
			configslog.Log.Warn("Rolling back database initialization", zap.Error(err))
			if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
				configslog.Log.Error("Rollback failed", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		if err = RunMigrationsInOrder(tx); err != nil {
			return err
		}
	} else {
		configslog.SLog.Info("Migrate not requested, skipping migrations.")
	}

	if seed {
		if err = CheckAndRunSeeders(tx); err != nil {
			return err
		}
	} else {
		configslog.SLog.Info("Seed not requested, skipping seeders.")
	}

	if err = tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Database initialization completed successfully")
	return nil
}

// RunMigrationsInOrder tabloları bağımlılık sırasıyla oluşturur.
func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Running migrations in order...")

	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"element_types", migrations.MigrateElementTypesTable},
		{"cards", migrations.MigrateCardsTables},
		{"card_instances", migrations.MigrateCardInstancesTable},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			configslog.Log.Error("Migration failed", zap.String("step", step.name), zap.Error(err))
			return fmt.Errorf("%s migration: %w", step.name, err)
		}
	}

	configslog.SLog.Info("All migrations completed.")
	return nil
}

// CheckAndRunSeeders element türlerini, kartları ve kopyaları bu sırayla seed eder.
func CheckAndRunSeeders(db *gorm.DB) error {
	elementTypes, err := seeders.SeedElementTypes(db)
	if err != nil {
		configslog.Log.Error("Element types could not be seeded", zap.Error(err))
		return err
	}

	cards, err := seeders.SeedCards(db, elementTypes)
	if err != nil {
		configslog.Log.Error("Cards could not be seeded", zap.Error(err))
		return err
	}

	if err := seeders.SeedCardInstances(db, cards); err != nil {
		configslog.Log.Error("Card instances could not be seeded", zap.Error(err))
		return err
	}

	configslog.SLog.Info("All seeders completed.")
	return nil
}
