// Package testdb testler için migrate edilmiş, bellek içi SQLite veritabanı sağlar.
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"cardcatalog.app/configs"
	"cardcatalog.app/configs/configsdatabase"
	"cardcatalog.app/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var counter atomic.Uint64

// New her çağrıda ayrı bir bellek içi veritabanı açar ve tabloları oluşturur.
// Bağlantı test bitince kapanır.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := configs.DatabaseConfig{
		Driver: configs.DriverSQLite,
		DSN:    fmt.Sprintf("file:catalog_test_%d?mode=memory&cache=shared&_foreign_keys=1", counter.Add(1)),
	}
	db, err := configsdatabase.InitDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { configsdatabase.CloseDB(db) })

	require.NoError(t, database.RunMigrationsInOrder(db))
	return db
}

// Seeded New ile açılan veritabanına örnek katalog verisini yükler.
func Seeded(t testing.TB) *gorm.DB {
	t.Helper()
	db := New(t)
	require.NoError(t, database.CheckAndRunSeeders(db))
	return db
}
