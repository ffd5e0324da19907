package database_test

import (
	"testing"

	"cardcatalog.app/database"
	"cardcatalog.app/models"
	"cardcatalog.app/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestInitializeMigratesAndSeeds(t *testing.T) {
	db := testdb.New(t)

	require.NoError(t, database.Initialize(db, true, true))
	assert.Equal(t, int64(3), countRows(t, db, &models.ElementType{}))
	assert.Equal(t, int64(7), countRows(t, db, &models.Card{}))
	assert.Equal(t, int64(11), countRows(t, db, &models.CardInstance{}))

	var squirtle models.Card
	require.NoError(t, db.Preload("ElementTypeLinks.ElementType").Where("title = ?", "Squirtle").First(&squirtle).Error)
	require.Len(t, squirtle.ElementTypes(), 1)
	assert.Equal(t, "Water", squirtle.ElementTypes()[0].Name)
}

func TestInitializeIsIdempotent(t *testing.T) {
	db := testdb.New(t)

	require.NoError(t, database.Initialize(db, true, true))
	require.NoError(t, database.Initialize(db, false, true))
	assert.Equal(t, int64(3), countRows(t, db, &models.ElementType{}))
	assert.Equal(t, int64(7), countRows(t, db, &models.Card{}))
	assert.Equal(t, int64(11), countRows(t, db, &models.CardInstance{}))
}

func TestInitializeWithoutFlagsDoesNothing(t *testing.T) {
	db := testdb.New(t)

	require.NoError(t, database.Initialize(db, false, false))
	assert.Zero(t, countRows(t, db, &models.Card{}))
}

func TestInitializeMigrateOnly(t *testing.T) {
	db := testdb.New(t)

	require.NoError(t, database.Initialize(db, true, false))
	assert.True(t, db.Migrator().HasTable(&models.CardInstance{}))
	assert.Zero(t, countRows(t, db, &models.ElementType{}))
}
