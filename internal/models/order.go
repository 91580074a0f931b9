package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultOrderStatus: статус нового заказа, если менеджер его не указал.
const DefaultOrderStatus = "Новый"

type Order struct {
	ID           uint       `gorm:"primaryKey"`
	OrderNumber  string     `gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	OrderDate    time.Time  `gorm:"autoCreateTime"`
	DeliveryDate *time.Time // nil: дата доставки ещё не назначена

	PickupPointID uint        `gorm:"not null;index" validate:"required"`
	PickupPoint   PickupPoint `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
	ClientID      uint        `gorm:"not null;index" validate:"required"`
	Client        Client      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" validate:"-"`

	Code   string `gorm:"size:10;not null" validate:"required,max=10"` // код для получения
	Status string `gorm:"size:50;not null" validate:"required,max=50"` // свободный текст

	Lines []OrderLine `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" validate:"-"`
}

func (o *Order) BeforeSave(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = DefaultOrderStatus
	}
	return Validate(o)
}

func (o Order) String() string {
	return fmt.Sprintf("Заказ №%s от %s", o.OrderNumber, o.Client.FullName)
}

// OrderLine: позиция (состав) заказа.
type OrderLine struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null;index" validate:"required"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
	Quantity  uint    `gorm:"not null;check:quantity >= 1" validate:"min=1"`
}

func (l *OrderLine) BeforeSave(tx *gorm.DB) error {
	return Validate(l)
}

func (l OrderLine) String() string {
	return fmt.Sprintf("%s × %d", l.Product.Name, l.Quantity)
}
