package database

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reference: таблица, строки которой ссылаются на удаляемую запись.
type reference struct {
	model  any
	column string
}

// ensureUnreferenced возвращает ErrInUse, если на запись id есть ссылки.
// Проверка дублирует ограничение ON DELETE RESTRICT в БД и даёт
// одинаковое поведение на всех драйверах.
func ensureUnreferenced(tx *gorm.DB, id uint, refs ...reference) error {
	for _, ref := range refs {
		var count int64
		if err := tx.Model(ref.model).Where(ref.column+" = ?", id).Count(&count).Error; err != nil {
			return errors.Wrap(err, "count references")
		}
		if count > 0 {
			return errors.Wrapf(ErrInUse, "%d references via %s", count, ref.column)
		}
	}
	return nil
}
