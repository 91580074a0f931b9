package database

import (
	"log/slog"

	"shop-backoffice/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SeedOptions struct {
	AdminUsername string
	AdminPassword string
	Demo          bool // тестовые менеджер и клиент
}

// Seed заполняет справочник ролей и создаёт администратора по умолчанию.
// Повторный вызов ничего не дублирует.
func Seed(db *gorm.DB, opts SeedOptions, log *slog.Logger) error {
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := createDefaultAdmin(db, opts, log); err != nil {
		return err
	}
	if opts.Demo {
		return seedDemoUsers(db, log)
	}
	return nil
}

func seedRoles(db *gorm.DB) error {
	for _, r := range models.AllRoles {
		role := models.Role{Name: string(r)}
		if err := db.Where(models.Role{Name: role.Name}).FirstOrCreate(&role).Error; err != nil {
			return errors.Wrapf(translate(err), "seed role %s", r)
		}
	}
	return nil
}

// администратор создаётся только если в системе нет ни одного
func createDefaultAdmin(db *gorm.DB, opts SeedOptions, log *slog.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "count admin users")
	}
	if count > 0 {
		return nil
	}

	if _, err := CreateUser(db, opts.AdminUsername, opts.AdminPassword, models.RoleAdmin); err != nil {
		return errors.Wrap(err, "create default admin")
	}
	log.Info("created default admin user", slog.String("username", opts.AdminUsername))
	return nil
}

func seedDemoUsers(db *gorm.DB, log *slog.Logger) error {
	users := []struct {
		Username string
		Password string
		Role     models.UserRole
	}{
		{Username: "manager@shop.local", Password: "Manager123!", Role: models.RoleManager},
		{Username: "client@shop.local", Password: "Client123!", Role: models.RoleClient},
	}

	for _, u := range users {
		var count int64
		if err := db.Model(&models.User{}).
			Where("username = ?", u.Username).
			Count(&count).Error; err != nil {
			return errors.Wrapf(err, "check demo user %s", u.Username)
		}
		if count > 0 {
			continue
		}

		if _, err := CreateUser(db, u.Username, u.Password, u.Role); err != nil {
			return errors.Wrapf(err, "create demo user %s", u.Username)
		}
		log.Info("created demo user", slog.String("username", u.Username), slog.String("role", string(u.Role)))
	}
	return nil
}
