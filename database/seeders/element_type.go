package seeders

import (
	"errors"
	"fmt"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ElementTypeNames seed edilen element türleri. Kart seed'leri bu sıraya indeksle başvurur.
var ElementTypeNames = []string{"Fire", "Water", "Grass"}

// SeedElementTypes element türlerini sırayla oluşturur; var olanları atlar.
// Dönen dilim ElementTypeNames ile aynı sıradadır.
func SeedElementTypes(db *gorm.DB) ([]models.ElementType, error) {
	configslog.SLog.Info("Seeding element types...")

	seeded := make([]models.ElementType, 0, len(ElementTypeNames))
	var errs error
	var createdCount int

	for _, name := range ElementTypeNames {
		var elementType models.ElementType
		result := db.Where("name = ?", name).First(&elementType)

		if result.Error == nil {
			configslog.SLog.Debugf("Element type '%s' already exists, skipping.", name)
			seeded = append(seeded, elementType)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Element type lookup failed", zap.String("name", name), zap.Error(result.Error))
			errs = multierr.Append(errs, fmt.Errorf("element type %q: %w", name, result.Error))
			continue
		}

		elementType = models.ElementType{Name: name}
		if err := db.Create(&elementType).Error; err != nil {
			configslog.Log.Error("Element type could not be created", zap.String("name", name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("element type %q: %w", name, err))
			continue
		}

		configslog.SLog.Infof("New Element_Type: ID %d, name %q", elementType.ID, elementType.Name)
		seeded = append(seeded, elementType)
		createdCount++
	}

	if errs != nil {
		return seeded, errs
	}
	configslog.SLog.Infof("Element types seeded (%d new).", createdCount)
	return seeded, nil
}
