package database

import (
	"strings"

	"shop-backoffice/internal/models"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func ListClients(db *gorm.DB) ([]models.Client, error) {
	var clients []models.Client
	err := db.Preload("Role").Order("full_name asc").Find(&clients).Error
	return clients, translate(err)
}

// CreateClient сохраняет клиента, пароль хранится в виде bcrypt-хэша.
func CreateClient(db *gorm.DB, fullName, login, password string, roleID uint) (*models.Client, error) {
	if password == "" {
		return nil, &models.ValidationError{Fields: []string{"Password"}}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash client password")
	}

	client := models.Client{
		FullName: strings.TrimSpace(fullName),
		Login:    strings.TrimSpace(login),
		Password: string(hash),
		RoleID:   roleID,
	}
	if err := db.Omit(clause.Associations).Create(&client).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

// DeleteClient удаляет клиента вместе с его заказами и их составом.
// Возвращает число удалённых заказов.
func DeleteClient(db *gorm.DB, id uint) (*models.Client, int64, error) {
	var (
		client  models.Client
		deleted int64
	)
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&client, id).Error; err != nil {
			return err
		}

		orderIDs := tx.Model(&models.Order{}).Select("id").Where("client_id = ?", id)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		res := tx.Where("client_id = ?", id).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected

		return tx.Delete(&client).Error
	})
	if err != nil {
		return nil, 0, translateDelete(err)
	}
	return &client, deleted, nil
}
