package seeders

import (
	"fmt"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type cardInstanceSeed struct {
	Card   int // cardSeeds indeksi
	Prices []float64
}

var cardInstanceSeeds = []cardInstanceSeed{
	{Card: 0, Prices: []float64{25}},
	{Card: 1, Prices: []float64{15}},
	{Card: 2, Prices: []float64{20}},
	{Card: 3, Prices: []float64{25, 18, 40}},
	{Card: 4, Prices: []float64{30, 50, 45}},
	{Card: 5, Prices: []float64{25}},
	{Card: 6, Prices: []float64{20}},
}

// SeedCardInstances her kart için kopyaları oluşturur.
// Zaten kopyası olan kart atlanır; böylece tekrar çalıştırmak kopya çoğaltmaz.
func SeedCardInstances(db *gorm.DB, cards []models.Card) error {
	configslog.SLog.Info("Seeding card instances...")

	var errs error
	var createdCount int

	for _, seed := range cardInstanceSeeds {
		if seed.Card >= len(cards) || cards[seed.Card].ID == 0 {
			errs = multierr.Append(errs, fmt.Errorf("card instance: card #%d was not seeded", seed.Card))
			continue
		}
		card := cards[seed.Card]

		var existing int64
		if err := db.Model(&models.CardInstance{}).Where("card_id = ?", card.ID).Count(&existing).Error; err != nil {
			errs = multierr.Append(errs, fmt.Errorf("card instance for %q: %w", card.Title, err))
			continue
		}
		if existing > 0 {
			configslog.SLog.Debugf("Card '%s' already has %d instances, skipping.", card.Title, existing)
			continue
		}

		for _, price := range seed.Prices {
			instance := models.CardInstance{
				CardID:    card.ID,
				CardPrice: price,
				Status:    models.CardInstanceStatusAvailable,
			}
			if err := db.Omit("Card").Create(&instance).Error; err != nil {
				configslog.Log.Error("Card instance could not be created", zap.Uint("card_id", card.ID), zap.Error(err))
				errs = multierr.Append(errs, fmt.Errorf("card instance for %q: %w", card.Title, err))
				continue
			}
			configslog.SLog.Infof("New CardInstance: ID %d, card %q, price %.2f, status %s",
				instance.ID, card.Title, instance.CardPrice, instance.Status)
			createdCount++
		}
	}

	if errs != nil {
		return errs
	}
	configslog.SLog.Infof("Card instances seeded (%d new).", createdCount)
	return nil
}
