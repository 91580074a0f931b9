package models

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleClient  UserRole = "client"
)

// ErrUnknownRole: значение роли вне {admin, manager, client}.
var ErrUnknownRole = errors.New("unknown user role")

// AllRoles: порядок совпадает с выпадающим списком в формах.
var AllRoles = []UserRole{RoleAdmin, RoleManager, RoleClient}

func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.Valid() {
		return "", errors.Wrapf(ErrUnknownRole, "%q", s)
	}
	return role, nil
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleClient:
		return true
	}
	return false
}

// Title: подпись роли для интерфейса.
func (r UserRole) Title() string {
	switch r {
	case RoleAdmin:
		return "Администратор"
	case RoleManager:
		return "Менеджер"
	case RoleClient:
		return "Авторизованный клиент"
	}
	return string(r)
}

// User: учётная запись для входа в систему.
type User struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"uniqueIndex;size:150;not null" validate:"required,max=150"`
	PasswordHash string   `gorm:"size:255;not null" validate:"required"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'admin';check:role IN ('admin','manager','client')" validate:"oneof=admin manager client"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	// роль по умолчанию: администратор
	if u.Role == "" {
		u.Role = RoleAdmin
	}
	return Validate(u)
}
