package migrations

import (
	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateElementTypesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating element_types table...")
	if err := db.AutoMigrate(&models.ElementType{}); err != nil {
		configslog.Log.Error("Failed to migrate element_types table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Element_types table migrated successfully")
	return nil
}
