package services_test

import (
	"context"
	"testing"

	"cardcatalog.app/pkg/testdb"
	"cardcatalog.app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCountsAfterSeeding(t *testing.T) {
	db := testdb.Seeded(t)

	counts, err := services.NewCatalogService(db).GetCounts(context.Background())
	require.NoError(t, err)
	require.NotNil(t, counts.Cards)
	require.NotNil(t, counts.CardInstances)
	require.NotNil(t, counts.AvailableInstances)
	require.NotNil(t, counts.ElementTypes)
	assert.Equal(t, int64(7), *counts.Cards)
	assert.Equal(t, int64(11), *counts.CardInstances)
	assert.Equal(t, int64(11), *counts.AvailableInstances)
	assert.Equal(t, int64(3), *counts.ElementTypes)
}

func TestGetCountsEmpty(t *testing.T) {
	counts, err := services.NewCatalogService(testdb.New(t)).GetCounts(context.Background())
	require.NoError(t, err)
	require.NotNil(t, counts.Cards)
	assert.Zero(t, *counts.Cards)
}

func TestGetCountsPartialFailure(t *testing.T) {
	db := testdb.Seeded(t)
	require.NoError(t, db.Migrator().DropTable("card_instances"))

	counts, err := services.NewCatalogService(db).GetCounts(context.Background())
	assert.Error(t, err)
	assert.Nil(t, counts.CardInstances)
	assert.Nil(t, counts.AvailableInstances)
	require.NotNil(t, counts.Cards)
	assert.Equal(t, int64(7), *counts.Cards)
	require.NotNil(t, counts.ElementTypes)
	assert.Equal(t, int64(3), *counts.ElementTypes)

}
