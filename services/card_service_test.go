package services_test

import (
	"context"
	"fmt"
	"testing"

	"cardcatalog.app/models"
	"cardcatalog.app/pkg/testdb"
	"cardcatalog.app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedElementTypes(t *testing.T, db *gorm.DB, names ...string) []models.ElementType {
	t.Helper()
	svc := services.NewElementTypeService(db)
	out := make([]models.ElementType, 0, len(names))
	for _, name := range names {
		et, _, err := svc.FindOrCreateElementType(context.Background(), models.ElementType{Name: name})
		require.NoError(t, err)
		out = append(out, *et)
	}
	return out
}

func TestPrepareCard(t *testing.T) {
	t.Run("required fields", func(t *testing.T) {
		_, _, errs := services.PrepareCard(services.CardInput{Title: "   ", Summary: ""})
		require.Len(t, errs, 2)
		assert.Equal(t, "Title must not be empty.", errs[0].Message)
		assert.Equal(t, "Summary must not be empty.", errs[1].Message)
	})

	t.Run("absent element types become empty", func(t *testing.T) {
		sanitized, card, errs := services.PrepareCard(services.CardInput{Title: "Pikachu", Summary: "Mouse"})
		assert.Empty(t, errs)
		assert.NotNil(t, sanitized.ElementTypes)
		assert.Empty(t, card.ElementTypeIDs())
	})

	t.Run("order kept and duplicates dropped", func(t *testing.T) {
		_, card, errs := services.PrepareCard(services.CardInput{
			Title: "Volcanion", Summary: "Steam", ElementTypes: []string{"2", "1", "2"},
		})
		assert.Empty(t, errs)
		assert.Equal(t, []uint{2, 1}, card.ElementTypeIDs())
	})

	t.Run("non numeric id is rejected", func(t *testing.T) {
		_, _, errs := services.PrepareCard(services.CardInput{
			Title: "Ditto", Summary: "Blob", ElementTypes: []string{"abc"},
		})
		require.Len(t, errs, 1)
		assert.Equal(t, services.ElementTypeSelectionField, errs[0].Field)
	})

	t.Run("text escaped after validation", func(t *testing.T) {
		sanitized, card, errs := services.PrepareCard(services.CardInput{Title: " <Mew> ", Summary: "Tom & Jerry"})
		assert.Empty(t, errs)
		assert.Equal(t, "&lt;Mew&gt;", card.Title)
		assert.Equal(t, "Tom &amp; Jerry", sanitized.Summary)
	})
}

func TestCreateCard(t *testing.T) {
	db := testdb.New(t)
	svc := services.NewCardService(db)
	ctx := context.Background()
	types := seedElementTypes(t, db, "Electric", "Fire")

	_, card, errs := services.PrepareCard(services.CardInput{
		Title:        "Pikachu",
		Summary:      "An Electric-type Pokémon.",
		ElementTypes: []string{fmt.Sprint(types[0].ID)},
	})
	require.Empty(t, errs)
	require.NoError(t, svc.CreateCard(ctx, &card))
	assert.Equal(t, fmt.Sprintf("/catalog/card/%d", card.ID), card.URL())

	stored, err := svc.GetCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", stored.Title)
	assert.Equal(t, "An Electric-type Pokémon.", stored.Summary)
	assert.Equal(t, []uint{types[0].ID}, stored.ElementTypeIDs())
}

func TestCreateCardUnknownElementType(t *testing.T) {
	db := testdb.New(t)
	svc := services.NewCardService(db)
	ctx := context.Background()
	types := seedElementTypes(t, db, "Fire")

	card := models.Card{Title: "Ghost", Summary: "Boo"}
	card.SetElementTypeIDs([]uint{types[0].ID, 999})
	assert.ErrorIs(t, svc.CreateCard(ctx, &card), services.ErrUnknownElementType)

	cards, err := svc.ListCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards, "nothing is written when an element type is stale")
}

func TestUpdateCard(t *testing.T) {
	db := testdb.New(t)
	svc := services.NewCardService(db)
	ctx := context.Background()
	types := seedElementTypes(t, db, "Fire", "Water")

	card := models.Card{Title: "Charmander", Summary: "Hot"}
	card.SetElementTypeIDs([]uint{types[0].ID})
	require.NoError(t, svc.CreateCard(ctx, &card))
	originalID := card.ID

	update := models.Card{Title: "Charmeleon", Summary: "Hotter"}
	update.SetElementTypeIDs([]uint{types[1].ID, types[0].ID})
	require.NoError(t, svc.UpdateCard(ctx, originalID, &update))
	assert.Equal(t, originalID, update.ID)

	stored, err := svc.GetCard(ctx, originalID)
	require.NoError(t, err)
	assert.Equal(t, "Charmeleon", stored.Title)
	assert.Equal(t, []uint{types[1].ID, types[0].ID}, stored.ElementTypeIDs())

	missing := models.Card{Title: "x", Summary: "y"}
	assert.ErrorIs(t, svc.UpdateCard(ctx, originalID+100, &missing), services.ErrCardNotFound)

	stale := models.Card{Title: "x", Summary: "y"}
	stale.SetElementTypeIDs([]uint{999})
	assert.ErrorIs(t, svc.UpdateCard(ctx, originalID, &stale), services.ErrUnknownElementType)
}

func TestElementTypeOptions(t *testing.T) {
	db := testdb.New(t)
	svc := services.NewCardService(db)
	types := seedElementTypes(t, db, "Water", "Fire")

	options, err := svc.ElementTypeOptions(context.Background(), []uint{types[0].ID})
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "Fire", options[0].ElementType.Name)
	assert.False(t, options[0].Checked)
	assert.Equal(t, "Water", options[1].ElementType.Name)
	assert.True(t, options[1].Checked)
}

func TestDeleteCard(t *testing.T) {
	db := testdb.Seeded(t)
	svc := services.NewCardService(db)
	ctx := context.Background()

	cards, err := svc.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 7)
	assert.Equal(t, "Bulbasaur", cards[0].Title)

	var volcanion models.Card
	for _, c := range cards {
		if c.Title == "Volcanion" {
			volcanion = c
		}
	}
	require.NotZero(t, volcanion.ID)

	detail, err := svc.DeleteCard(ctx, volcanion.ID)
	assert.ErrorIs(t, err, services.ErrCardInUse)
	require.NotNil(t, detail)
	assert.Len(t, detail.Instances, 3)

	fresh := models.Card{Title: "Mew", Summary: "Rare"}
	require.NoError(t, svc.CreateCard(ctx, &fresh))
	_, err = svc.DeleteCard(ctx, fresh.ID)
	require.NoError(t, err)
	_, err = svc.GetCard(ctx, fresh.ID)
	assert.ErrorIs(t, err, services.ErrCardNotFound)

	_, err = svc.DeleteCard(ctx, fresh.ID)
	assert.ErrorIs(t, err, services.ErrCardNotFound)
}

func TestGetCardDetail(t *testing.T) {
	db := testdb.Seeded(t)
	svc := services.NewCardService(db)
	ctx := context.Background()

	cards, err := svc.ListCards(ctx)
	require.NoError(t, err)
	for _, c := range cards {
		if c.Title != "Ludicolo" {
			continue
		}
		detail, err := svc.GetCardDetail(ctx, c.ID)
		require.NoError(t, err)
		ets := detail.Card.ElementTypes()
		require.Len(t, ets, 2)
		assert.Equal(t, "Water", ets[0].Name)
		assert.Equal(t, "Grass", ets[1].Name)
		assert.Len(t, detail.Instances, 3)
	}

	_, err = svc.GetCardDetail(ctx, 9999)
	assert.ErrorIs(t, err, services.ErrCardNotFound)
}
