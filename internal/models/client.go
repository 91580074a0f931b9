package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Client struct {
	ID       uint   `gorm:"primaryKey"`
	FullName string `gorm:"size:150;not null" validate:"required,max=150"` // ФИО
	Login    string `gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	Password string `gorm:"size:128;not null" validate:"required" json:"-"` // bcrypt-хэш, не открытый пароль

	RoleID uint `gorm:"not null;index" validate:"required"`
	Role   Role `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Client) BeforeSave(tx *gorm.DB) error {
	return Validate(c)
}

func (c Client) String() string {
	return fmt.Sprintf("%s (%s)", c.FullName, c.Login)
}
