package database

import (
	"testing"

	"shop-backoffice/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	_, err := CreateUser(db, "manager@shop.local", "Manager123!", models.RoleManager)
	require.NoError(t, err)

	user, err := Authenticate(db, " manager@shop.local ", "Manager123!")
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)

	_, err = Authenticate(db, "manager@shop.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate(db, "nobody", "Manager123!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUser_RoleDefaultsToAdmin(t *testing.T) {
	db := setupTestDB(t)

	user, err := CreateUser(db, "root", "Admin123!", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, models.RoleAdmin, stored.Role)
	assert.NotEqual(t, "Admin123!", stored.PasswordHash)
}

func TestCreateUser_RejectsUnknownRoleAndDuplicates(t *testing.T) {
	db := setupTestDB(t)

	_, err := CreateUser(db, "x", "pw", models.UserRole("superuser"))
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = CreateUser(db, "dup", "pw", models.RoleClient)
	require.NoError(t, err)
	_, err = CreateUser(db, "dup", "pw", models.RoleClient)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUserRoleCheckConstraint(t *testing.T) {
	db := setupTestDB(t)
	user, err := CreateUser(db, "m", "pw", models.RoleManager)
	require.NoError(t, err)

	// в обход хуков: ограничение CHECK в самой таблице
	err = db.Exec("UPDATE users SET role = ? WHERE id = ?", "superuser", user.ID).Error
	assert.Error(t, err)
}

func TestSeedIdempotent(t *testing.T) {
	db := setupTestDB(t)
	opts := SeedOptions{AdminUsername: "admin@shop.local", AdminPassword: "Admin123!", Demo: true}

	require.NoError(t, Seed(db, opts, discardLogger()))
	require.NoError(t, Seed(db, opts, discardLogger()))

	var users, roles int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Role{}).Count(&roles)
	assert.EqualValues(t, 3, users)
	assert.EqualValues(t, len(models.AllRoles), roles)

	admin, err := Authenticate(db, "admin@shop.local", "Admin123!")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestSeed_SkipsAdminWhenOneExists(t *testing.T) {
	db := setupTestDB(t)
	_, err := CreateUser(db, "owner", "Owner123!", models.RoleAdmin)
	require.NoError(t, err)

	require.NoError(t, Seed(db, SeedOptions{AdminUsername: "admin@shop.local", AdminPassword: "x"}, discardLogger()))

	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin@shop.local").Count(&count)
	assert.Zero(t, count)
}
