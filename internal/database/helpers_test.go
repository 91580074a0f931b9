package database

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"shop-backoffice/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupTestDB: отдельная in-memory база SQLite на каждый тест, с включёнными внешними ключами.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on"

	db, err := Open(sqlite.Open(dsn), discardLogger(), false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

type fixture struct {
	category     models.Category
	supplier     models.Supplier
	manufacturer models.Manufacturer
	product      models.Product
	pickup       models.PickupPoint
	role         models.Role
	client       *models.Client
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		category:     models.Category{Name: "Обувь"},
		supplier:     models.Supplier{Name: "Kari"},
		manufacturer: models.Manufacturer{Name: "Marco Tozzi"},
		pickup:       models.PickupPoint{Address: "г. Лесной, ул. Чехова, 1"},
		role:         models.Role{Name: "client"},
	}
	require.NoError(t, db.Create(&f.category).Error)
	require.NoError(t, db.Create(&f.supplier).Error)
	require.NoError(t, db.Create(&f.manufacturer).Error)
	require.NoError(t, db.Create(&f.pickup).Error)
	require.NoError(t, db.Create(&f.role).Error)

	f.product = newProduct(f, "A112T4")
	require.NoError(t, CreateProduct(db, &f.product))

	client, err := CreateClient(db, "Степанов Михаил Артёмович", "stepanov", "secret", f.role.ID)
	require.NoError(t, err)
	f.client = client
	return f
}

func newProduct(f fixture, article string) models.Product {
	return models.Product{
		Article:        article,
		Name:           "Ботинки",
		Unit:           "шт.",
		Price:          decimal.RequireFromString("4990.00"),
		Discount:       3,
		Stock:          6,
		SupplierID:     f.supplier.ID,
		ManufacturerID: f.manufacturer.ID,
		CategoryID:     f.category.ID,
	}
}

func newOrder(f fixture, qty uint) *models.Order {
	return &models.Order{
		PickupPointID: f.pickup.ID,
		ClientID:      f.client.ID,
		Code:          "901",
		Lines:         []models.OrderLine{{ProductID: f.product.ID, Quantity: qty}},
	}
}
