package migrations

import (
	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateCardsTables kartları ve sıralı element türü bağlantı tablosunu oluşturur.
// element_types tablosu önceden migrate edilmiş olmalıdır.
func MigrateCardsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cards & card_element_types tables...")
	err := db.AutoMigrate(&models.Card{}, &models.CardElementType{})
	if err != nil {
		configslog.Log.Error("Failed to migrate cards & card_element_types tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cards & card_element_types tables migrated successfully")
	return nil
}
