package database

import (
	"strings"

	"shop-backoffice/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("duplicate value")
	ErrInUse              = errors.New("record is referenced by other records")
	ErrInvalidReference   = errors.New("referenced record does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// translate приводит ошибки gorm и драйверов к ошибкам пакета.
// Ошибки валидации моделей возвращаются как есть.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrValidation):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Wrap(ErrNotFound, err.Error())
	case isUniqueConstraintViolation(err):
		return errors.Wrap(ErrDuplicate, err.Error())
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(ErrInvalidReference, err.Error())
	case isCheckConstraintViolation(err):
		return &models.ValidationError{Fields: []string{"check"}}
	}
	return err
}

// translateDelete работает как translate, но для DELETE нарушение внешнего ключа означает,
// что на запись ещё ссылаются.
func translateDelete(err error) error {
	if err != nil && isForeignKeyConstraintViolation(err) {
		return errors.Wrap(ErrInUse, err.Error())
	}
	return translate(err)
}

func isConstraintViolation(err error) bool {
	return isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err) ||
		isCheckConstraintViolation(err)
}

// Текстовые проверки нужны для драйверов без перевода ошибок (SQLite CHECK).

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key constraint failed") ||
		strings.Contains(msg, "violates foreign key constraint")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "check constraint failed") ||
		strings.Contains(msg, "violates check constraint")
}
