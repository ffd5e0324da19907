package migrations

import (
	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateCardInstancesTable durum CHECK kısıtıyla birlikte card_instances tablosunu oluşturur.
func MigrateCardInstancesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating card_instances table...")
	if err := db.AutoMigrate(&models.CardInstance{}); err != nil {
		configslog.Log.Error("Failed to migrate card_instances table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Card_instances table migrated successfully")
	return nil
}
