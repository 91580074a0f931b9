package database

import (
	"log/slog"
	"time"

	"shop-backoffice/internal/config"
	"shop-backoffice/internal/models"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Models возвращает все таблицы приложения в порядке зависимостей.
func Models() []any {
	return []any{
		&models.User{},
		&models.Role{},
		&models.Client{},
		&models.Category{},
		&models.Supplier{},
		&models.Manufacturer{},
		&models.Product{},
		&models.PickupPoint{},
		&models.Order{},
		&models.OrderLine{},
		&models.AuditLog{},
	}
}

// Open подключается через переданный диалект. Ошибки драйвера переводятся
// в gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated (TranslateError).
func Open(dialector gorm.Dialector, log *slog.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormSlogLogger(log, debug),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	return db, nil
}

// Migrate создаёт схему через AutoMigrate.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "automigrate")
	}
	return nil
}

// Init подключается к PostgreSQL с повторами, применяет миграции и заполняет
// начальные данные. Результат сохраняется в DB.
func Init(cfg *config.Config, log *slog.Logger) error {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Info("connecting to database", slog.Int("attempt", i), slog.Int("max_attempts", maxAttempts))

		db, err = Open(postgres.Open(cfg.DBDSN), log, cfg.LogLevel == "debug")
		if err == nil {
			err = db.Exec("SELECT 1").Error
		}
		if err == nil {
			log.Info("connected to database")
			break
		}

		log.Warn("failed to connect to database", slog.Any("error", err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return errors.Wrapf(err, "connect to database after %d attempts", maxAttempts)
	}

	if cfg.Migrations {
		if err := RunSQLMigrations(cfg.DBDSN, log); err != nil {
			return err
		}
	} else if err := Migrate(db); err != nil {
		return err
	}

	if err := Seed(db, SeedOptions{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		Demo:          cfg.SeedDemo,
	}, log); err != nil {
		return err
	}

	DB = db
	return nil
}
