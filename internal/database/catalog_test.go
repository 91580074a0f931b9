package database

import (
	"testing"

	"shop-backoffice/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_Defaults(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	stored, err := GetProduct(db, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultImagePath, stored.ImagePath)
	assert.True(t, stored.Price.Equal(decimal.RequireFromString("4990")))
	assert.Equal(t, "Обувь", stored.Category.Name)
	assert.Equal(t, "Kari", stored.Supplier.Name)
}

func TestCreateProduct_RejectsNegativePrice(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	p := newProduct(f, "NEG-1")
	p.Price = decimal.RequireFromString("-0.01")
	err := CreateProduct(db, &p)
	require.ErrorIs(t, err, models.ErrValidation)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "Price")
}

func TestCreateProduct_RejectsSubCentPrice(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	p := newProduct(f, "CENT-1")
	p.Price = decimal.RequireFromString("0.005")
	err := CreateProduct(db, &p)
	require.ErrorIs(t, err, models.ErrValidation)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Price"}, verr.Fields)

	var count int64
	db.Model(&models.Product{}).Where("article = ?", "CENT-1").Count(&count)
	assert.Zero(t, count)

	// лишние нули после запятой не меняют значение
	p.Price = decimal.RequireFromString("12.500")
	require.NoError(t, CreateProduct(db, &p))
}

func TestProductCheckConstraints(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	assert.Error(t, db.Exec("UPDATE products SET price = -1 WHERE id = ?", f.product.ID).Error)
	assert.Error(t, db.Exec("UPDATE products SET stock = -1 WHERE id = ?", f.product.ID).Error)
	assert.Error(t, db.Exec("UPDATE products SET discount = 101 WHERE id = ?", f.product.ID).Error)
}

func TestCreateProduct_DiscountOverHundred(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	p := newProduct(f, "DSC-1")
	p.Discount = 150
	assert.ErrorIs(t, CreateProduct(db, &p), models.ErrValidation)
}

func TestCreateProduct_DuplicateArticle(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	p := newProduct(f, f.product.Article)
	assert.ErrorIs(t, CreateProduct(db, &p), ErrDuplicate)
}

func TestCreateProduct_UnknownSupplier(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	p := newProduct(f, "FK-1")
	p.SupplierID = 9999
	assert.ErrorIs(t, CreateProduct(db, &p), ErrInvalidReference)
}

func TestUpdateProduct(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	p, err := GetProduct(db, f.product.ID)
	require.NoError(t, err)
	p.Stock = 0
	p.Name = "Ботинки зимние"
	require.NoError(t, UpdateProduct(db, p))

	stored, err := GetProduct(db, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ботинки зимние", stored.Name)
	assert.Zero(t, stored.Stock)
}

func TestDeleteProduct(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	require.NoError(t, CreateOrder(db, newOrder(f, 2)))

	_, err := DeleteProduct(db, f.product.ID)
	assert.ErrorIs(t, err, ErrInUse)

	spare := newProduct(f, "SPARE")
	require.NoError(t, CreateProduct(db, &spare))
	deleted, err := DeleteProduct(db, spare.ID)
	require.NoError(t, err)
	assert.Equal(t, "SPARE", deleted.Article)

	_, err = DeleteProduct(db, spare.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestForeignKeysEnforcedByDatabase(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	require.NoError(t, CreateOrder(db, newOrder(f, 1)))

	// прямой DELETE минует проверки пакета, срабатывает ON DELETE RESTRICT
	assert.Error(t, db.Exec("DELETE FROM products WHERE id = ?", f.product.ID).Error)
	assert.Error(t, db.Exec("DELETE FROM pickup_points WHERE id = ?", f.pickup.ID).Error)
}

func TestDictionaries(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	_, ok := LookupDictionary("warehouses")
	assert.False(t, ok)

	suppliers, ok := LookupDictionary("suppliers")
	require.True(t, ok)

	created, err := suppliers.Create(db, "  Обувь для вас ")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Обувь для вас", created.Value)
	id := created.ID

	_, err = suppliers.Create(db, "Kari")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = suppliers.Create(db, "")
	assert.ErrorIs(t, err, models.ErrValidation)

	entries, err := suppliers.List(db)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Kari", entries[0].Value)
	assert.Equal(t, "Обувь для вас", entries[1].Value)

	_, err = suppliers.Delete(db, f.supplier.ID)
	assert.ErrorIs(t, err, ErrInUse)

	deleted, err := suppliers.Delete(db, id)
	require.NoError(t, err)
	assert.Equal(t, "Обувь для вас", deleted.Value)

	_, err = suppliers.Delete(db, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePickupPoint_ProtectedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	points, _ := LookupDictionary("pickup-points")

	order := newOrder(f, 1)
	require.NoError(t, CreateOrder(db, order))

	_, err := points.Delete(db, f.pickup.ID)
	assert.ErrorIs(t, err, ErrInUse)

	_, err = DeleteOrder(db, order.ID)
	require.NoError(t, err)
	_, err = points.Delete(db, f.pickup.ID)
	assert.NoError(t, err)
}

func TestDeleteRole_ProtectedWhileClientsExist(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	roles, _ := LookupDictionary("roles")

	_, err := roles.Delete(db, f.role.ID)
	assert.ErrorIs(t, err, ErrInUse)
}
