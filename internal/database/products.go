package database

import (
	"shop-backoffice/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func ListProducts(db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	err := db.Preload("Category").Preload("Supplier").Preload("Manufacturer").
		Order("article asc").
		Find(&products).Error
	return products, translate(err)
}

func GetProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.Preload("Category").Preload("Supplier").Preload("Manufacturer").
		First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func CreateProduct(db *gorm.DB, product *models.Product) error {
	return translate(db.Omit(clause.Associations).Create(product).Error)
}

func UpdateProduct(db *gorm.DB, product *models.Product) error {
	return translate(db.Omit(clause.Associations).Save(product).Error)
}

// DeleteProduct удаляет товар, если он не входит ни в один заказ.
func DeleteProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}
		if err := ensureUnreferenced(tx, id, reference{model: &models.OrderLine{}, column: "product_id"}); err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		return nil, translateDelete(err)
	}
	return &product, nil
}
