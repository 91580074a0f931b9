package models

import (
	"time"

	"gorm.io/gorm"
)

// Role: справочник ролей клиентов магазина.
type Role struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Role) BeforeSave(tx *gorm.DB) error {
	return Validate(r)
}

func (r Role) String() string {
	return r.Name
}
