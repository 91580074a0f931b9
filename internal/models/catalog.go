package models

import (
	"time"

	"gorm.io/gorm"
)

// Справочники, на которые ссылается товар.

type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Supplier struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Manufacturer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PickupPoint: пункт выдачи заказов.
type PickupPoint struct {
	ID        uint   `gorm:"primaryKey"`
	Address   string `gorm:"size:255;not null;uniqueIndex" validate:"required,max=255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Category) BeforeSave(tx *gorm.DB) error     { return Validate(c) }
func (s *Supplier) BeforeSave(tx *gorm.DB) error     { return Validate(s) }
func (m *Manufacturer) BeforeSave(tx *gorm.DB) error { return Validate(m) }
func (p *PickupPoint) BeforeSave(tx *gorm.DB) error  { return Validate(p) }

func (c Category) String() string     { return c.Name }
func (s Supplier) String() string     { return s.Name }
func (m Manufacturer) String() string { return m.Name }
func (p PickupPoint) String() string  { return p.Address }
