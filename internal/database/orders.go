package database

import (
	"strings"
	"time"

	"shop-backoffice/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const orderNumberLen = 10

// NewOrderNumber генерирует номер заказа из uuid.
func NewOrderNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:orderNumberLen])
}

func ListOrders(db *gorm.DB, limit int) ([]models.Order, error) {
	var orders []models.Order
	q := db.Preload("Client").Preload("PickupPoint").Order("order_date desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&orders).Error
	return orders, translate(err)
}

func GetOrder(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := db.Preload("Client").Preload("PickupPoint").Preload("Lines.Product").
		First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// CreateOrder сохраняет заказ и его состав в одной транзакции.
// Пустой номер заменяется сгенерированным.
func CreateOrder(db *gorm.DB, order *models.Order) error {
	if len(order.Lines) == 0 {
		return &models.ValidationError{Fields: []string{"Lines"}}
	}
	if strings.TrimSpace(order.OrderNumber) == "" {
		order.OrderNumber = NewOrderNumber()
	}

	return translate(db.Transaction(func(tx *gorm.DB) error {
		lines := order.Lines
		order.Lines = nil
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			order.Lines = lines
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
		}
		order.Lines = lines
		return tx.Omit(clause.Associations).Create(&order.Lines).Error
	}))
}

// UpdateOrderStatus меняет статус и дату доставки. Статус: свободный текст.
func UpdateOrderStatus(db *gorm.DB, id uint, status string, deliveryDate *time.Time) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	order.Status = strings.TrimSpace(status)
	order.DeliveryDate = deliveryDate
	if err := db.Omit(clause.Associations).Save(&order).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// DeleteOrder удаляет заказ вместе с составом.
func DeleteOrder(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return nil, translateDelete(err)
	}
	return &order, nil
}

// Counts: количество записей для главной страницы администратора.
type Counts struct {
	Products     int64
	Orders       int64
	Clients      int64
	PickupPoints int64
}

func CountAll(db *gorm.DB) (Counts, error) {
	var c Counts
	for _, item := range []struct {
		model any
		dst   *int64
	}{
		{&models.Product{}, &c.Products},
		{&models.Order{}, &c.Orders},
		{&models.Client{}, &c.Clients},
		{&models.PickupPoint{}, &c.PickupPoints},
	} {
		if err := db.Model(item.model).Count(item.dst).Error; err != nil {
			return Counts{}, translate(err)
		}
	}
	return c, nil
}
