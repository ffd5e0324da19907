package repositories_test

import (
	"context"
	"testing"

	"cardcatalog.app/models"
	"cardcatalog.app/pkg/testdb"
	"cardcatalog.app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createElementTypes(t *testing.T, db *gorm.DB, names ...string) []models.ElementType {
	t.Helper()
	repo := repositories.NewElementTypeRepository(db)
	out := make([]models.ElementType, 0, len(names))
	for _, name := range names {
		et := models.ElementType{Name: name}
		require.NoError(t, repo.Create(context.Background(), &et))
		out = append(out, et)
	}
	return out
}

func TestBaseRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := repositories.NewElementTypeRepository(db)

	et := models.ElementType{Name: "Fire"}
	require.NoError(t, repo.Create(ctx, &et))
	require.NotZero(t, et.ID)

	found, err := repo.FindByID(ctx, et.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fire", found.Name)

	_, err = repo.FindByID(ctx, et.ID+100)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	_, err = repo.FindByID(ctx, 0)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	exists, err := repo.Exists(ctx, et.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Update(ctx, et.ID, map[string]interface{}{"name": "Flame"}))
	assert.ErrorIs(t, repo.Update(ctx, et.ID+100, map[string]interface{}{"name": "x"}), repositories.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.Delete(ctx, et.ID))
	assert.ErrorIs(t, repo.Delete(ctx, et.ID), repositories.ErrNotFound)
}

func TestElementTypeRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := repositories.NewElementTypeRepository(db)
	types := createElementTypes(t, db, "Water", "Fire", "Grass")

	all, err := repo.FindAllByName(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"Fire", "Grass", "Water"}, []string{all[0].Name, all[1].Name, all[2].Name})

	byName, err := repo.FindByName(ctx, "Grass")
	require.NoError(t, err)
	assert.Equal(t, types[2].ID, byName.ID)

	_, err = repo.FindByName(ctx, "Electric")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	taken, err := repo.NameTakenByOther(ctx, "Fire", types[0].ID)
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = repo.NameTakenByOther(ctx, "Fire", types[1].ID)
	require.NoError(t, err)
	assert.False(t, taken)

	n, err := repo.CountExisting(ctx, []uint{types[0].ID, types[1].ID, 9999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	dup := models.ElementType{Name: "Fire"}
	assert.ErrorIs(t, repo.Create(ctx, &dup), gorm.ErrDuplicatedKey)
}

func TestCardRepositoryElementTypeOrder(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := repositories.NewCardRepository(db)
	types := createElementTypes(t, db, "Fire", "Water", "Grass")

	card := models.Card{Title: "Volcanion", Summary: "Steam"}
	card.SetElementTypeIDs([]uint{types[1].ID, types[0].ID})
	require.NoError(t, repo.CreateWithElementTypes(ctx, &card))
	require.NotZero(t, card.ID)

	loaded, err := repo.FindWithElementTypes(ctx, card.ID)
	require.NoError(t, err)
	ets := loaded.ElementTypes()
	require.Len(t, ets, 2)
	assert.Equal(t, "Water", ets[0].Name)
	assert.Equal(t, "Fire", ets[1].Name)

	byType, err := repo.FindByElementType(ctx, types[0].ID)
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "Volcanion", byType[0].Title)

	n, err := repo.CountByElementType(ctx, types[2].ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Güncelleme bağlantıları yeni sırayla baştan yazar
	loaded.Title = "Volcanion EX"
	loaded.SetElementTypeIDs([]uint{types[2].ID, types[1].ID})
	require.NoError(t, repo.UpdateWithElementTypes(ctx, loaded))

	reloaded, err := repo.FindWithElementTypes(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Volcanion EX", reloaded.Title)
	assert.Equal(t, []uint{types[2].ID, types[1].ID}, reloaded.ElementTypeIDs())

	require.NoError(t, repo.DeleteWithLinks(ctx, card.ID))
	_, err = repo.FindWithElementTypes(ctx, card.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestForeignKeysRestrictDeletes(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	types := createElementTypes(t, db, "Fire")

	cardRepo := repositories.NewCardRepository(db)
	card := models.Card{Title: "Charmander", Summary: "Hot"}
	card.SetElementTypeIDs([]uint{types[0].ID})
	require.NoError(t, cardRepo.CreateWithElementTypes(ctx, &card))

	instanceRepo := repositories.NewCardInstanceRepository(db)
	instance := models.CardInstance{CardID: card.ID, CardPrice: 20, Status: models.CardInstanceStatusAvailable}
	require.NoError(t, instanceRepo.Create(ctx, &instance))

	err := repositories.NewElementTypeRepository(db).Delete(ctx, types[0].ID)
	assert.Error(t, err)
	_, err = repositories.NewElementTypeRepository(db).FindByID(ctx, types[0].ID)
	assert.NoError(t, err)

	err = cardRepo.Delete(ctx, card.ID)
	assert.Error(t, err)
}

func TestCardInstanceRepository(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	cardRepo := repositories.NewCardRepository(db)
	card := models.Card{Title: "Piplup", Summary: "Penguin"}
	require.NoError(t, cardRepo.CreateWithElementTypes(ctx, &card))

	repo := repositories.NewCardInstanceRepository(db)
	for _, status := range []models.CardInstanceStatus{
		models.CardInstanceStatusAvailable,
		models.CardInstanceStatusNotAvailable,
		models.CardInstanceStatusAvailable,
	} {
		ci := models.CardInstance{CardID: card.ID, CardPrice: 10, Status: status}
		require.NoError(t, repo.Create(ctx, &ci))
	}

	all, err := repo.FindAllWithCard(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Piplup", all[0].Card.Title)

	available, err := repo.CountByStatus(ctx, models.CardInstanceStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, int64(2), available)

	_, err = repo.CountByStatus(ctx, models.CardInstanceStatus("Lost"))
	assert.Error(t, err)

	byCard, err := repo.CountByCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), byCard)

	// CHECK kısıtı tanımsız durumu reddeder
	bad := models.CardInstance{CardID: card.ID, CardPrice: 1, Status: "Lost"}
	assert.Error(t, repo.Create(ctx, &bad))
}

func TestTransactionFromContext(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	repo := repositories.NewElementTypeRepository(db)

	err := db.Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		et := models.ElementType{Name: "Ghost"}
		require.NoError(t, repo.Create(txCtx, &et))
		n, err := repo.Count(txCtx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
