package persistence

import (
	"testing"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testToday = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

// newTestDB opens a migrated in-memory sqlite database. A single
// connection keeps every statement on the same in-memory schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func day(offset int) *time.Time {
	d := testToday.AddDate(0, 0, offset)
	return &d
}

func seedProfile(t *testing.T, db *gorm.DB, name string) models.ProfileModel {
	t.Helper()
	p := models.ProfileModel{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedIngredient(t *testing.T, db *gorm.DB, name, category string) models.IngredientModel {
	t.Helper()
	i := models.IngredientModel{Name: name, NameNormalized: name, Category: category, Unit: "g"}
	i.ID = uuid.New()
	require.NoError(t, db.Create(&i).Error)
	return i
}

func seedPantryItem(t *testing.T, db *gorm.DB, owner uuid.UUID, ingredient uuid.UUID, expiry *time.Time) models.PantryItemModel {
	t.Helper()
	item := models.PantryItemModel{
		ProfileID:    owner,
		IngredientID: ingredient,
		Quantity:     decimal.NewFromInt(1),
		Unit:         "piece",
		ExpiryDate:   expiry,
	}
	item.ID = uuid.New()
	require.NoError(t, db.Create(&item).Error)
	return item
}

// pantryScenario seeds Milk (-1), Eggs (0), Spinach (+2), Cheese (+5) and
// Rice (no expiry) for one owner.
func pantryScenario(t *testing.T, db *gorm.DB) (models.ProfileModel, map[string]models.PantryItemModel) {
	t.Helper()
	owner := seedProfile(t, db, "Lan")
	offsets := []struct {
		name   string
		cat    string
		expiry *time.Time
	}{
		{"Milk", "dairy", day(-1)},
		{"Eggs", "other", day(0)},
		{"Spinach", "vegetable", day(2)},
		{"Cheese", "dairy", day(5)},
		{"Rice", "grain", nil},
	}
	items := make(map[string]models.PantryItemModel, len(offsets))
	for _, o := range offsets {
		ing := seedIngredient(t, db, o.name, o.cat)
		items[o.name] = seedPantryItem(t, db, owner.ID, ing.ID, o.expiry)
	}
	return owner, items
}
