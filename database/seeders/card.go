package seeders

import (
	"context"
	"errors"
	"fmt"

	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/models"
	"cardcatalog.app/repositories"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type cardSeed struct {
	Title        string
	Summary      string
	ElementTypes []int // ElementTypeNames indeksleri, sıralı
}

var cardSeeds = []cardSeed{
	{"Bulbasaur", "There is a plant seed on its back right from the day this Pokémon is born. The seed slowly grows larger.", []int{2}},
	{"Squirtle", "When it retracts its long neck into its shell, it squirts out water with vigorous force.", []int{1}},
	{"Charmander", "It has a preference for hot things. When it rains, steam is said to spout from the tip of its tail.", []int{0}},
	{"Volcanion", "It lets out billows of steam and disappears into the dense fog. It’s said to live in mountains where humans do not tread.", []int{1, 0}},
	{"Ludicolo", "The rhythm of bright, festive music activates Ludicolo’s cells, making it more powerful.", []int{1, 2}},
	{"Piplup", "It doesn’t like to be taken care of. It’s difficult to bond with since it won’t listen to its Trainer.", []int{1}},
	{"Chimchar", "Its fiery rear end is fueled by gas made in its belly. Even rain can’t extinguish the fire.", []int{0}},
}

// SeedCards kartları sırayla oluşturur; aynı başlıklı kart varsa atlar.
// Dönen dilim cardSeeds ile aynı sıradadır; oluşturulamayan kartın yerinde sıfır değer bulunur.
func SeedCards(db *gorm.DB, elementTypes []models.ElementType) ([]models.Card, error) {
	configslog.SLog.Info("Seeding cards...")

	ctx := repositories.ContextWithTx(context.Background(), db)
	cardRepo := repositories.NewCardRepository(db)

	seeded := make([]models.Card, len(cardSeeds))
	var errs error
	var createdCount int

	for i, seed := range cardSeeds {
		var card models.Card
		result := db.Where("title = ?", seed.Title).First(&card)
		if result.Error == nil {
			configslog.SLog.Debugf("Card '%s' already exists, skipping.", seed.Title)
			seeded[i] = card
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Card lookup failed", zap.String("title", seed.Title), zap.Error(result.Error))
			errs = multierr.Append(errs, fmt.Errorf("card %q: %w", seed.Title, result.Error))
			continue
		}

		ids, err := resolveElementTypeIDs(seed.ElementTypes, elementTypes)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("card %q: %w", seed.Title, err))
			continue
		}

		card = models.Card{Title: seed.Title, Summary: seed.Summary}
		card.SetElementTypeIDs(ids)
		if err := cardRepo.CreateWithElementTypes(ctx, &card); err != nil {
			configslog.Log.Error("Card could not be created", zap.String("title", seed.Title), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("card %q: %w", seed.Title, err))
			continue
		}

		configslog.SLog.Infof("New Card: ID %d, title %q, element types %v", card.ID, card.Title, ids)
		seeded[i] = card
		createdCount++
	}

	if errs != nil {
		return seeded, errs
	}
	configslog.SLog.Infof("Cards seeded (%d new).", createdCount)
	return seeded, nil
}

func resolveElementTypeIDs(indexes []int, elementTypes []models.ElementType) ([]uint, error) {
	ids := make([]uint, 0, len(indexes))
	for _, idx := range indexes {
		if idx >= len(elementTypes) || elementTypes[idx].ID == 0 {
			return nil, fmt.Errorf("element type #%d was not seeded", idx)
		}
		ids = append(ids, elementTypes[idx].ID)
	}
	return ids, nil
}
