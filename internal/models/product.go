package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultImagePath = "picture.png"

// PriceScale: знаков после запятой в цене, как в колонке decimal(10,2).
const PriceScale = 2

type Product struct {
	ID      uint   `gorm:"primaryKey"`
	Article string `gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"` // артикул
	Name    string `gorm:"size:200;not null" validate:"required,max=200"`
	Unit    string `gorm:"size:20;not null" validate:"required,max=20"` // шт., кг, упак.

	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null;check:price >= 0" validate:"gte=0,lt=100000000"`
	Discount uint8           `gorm:"not null;default:0;check:discount <= 100" validate:"lte=100"` // скидка, %
	Stock    uint            `gorm:"not null;check:stock >= 0"`                                    // остаток на складе

	Description string `gorm:"type:text"`
	ImagePath   string `gorm:"size:255;not null;default:'picture.png'" validate:"max=255"`

	SupplierID     uint         `gorm:"not null;index" validate:"required"`
	Supplier       Supplier     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
	ManufacturerID uint         `gorm:"not null;index" validate:"required"`
	Manufacturer   Manufacturer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
	CategoryID     uint         `gorm:"not null;index" validate:"required"`
	Category       Category     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.ImagePath == "" {
		p.ImagePath = DefaultImagePath
	}
	err := Validate(p)
	if p.Price.Equal(p.Price.Truncate(PriceScale)) {
		return err
	}

	// больше двух знаков после запятой: decimal(10,2) округлил бы молча
	var verr *ValidationError
	if errors.As(err, &verr) {
		if !slices.Contains(verr.Fields, "Price") {
			verr.Fields = append(verr.Fields, "Price")
		}
		return verr
	}
	if err != nil {
		return err
	}
	return &ValidationError{Fields: []string{"Price"}}
}

// FinalPrice: цена с учётом скидки, округлённая до копеек.
func (p Product) FinalPrice() decimal.Decimal {
	if p.Discount == 0 {
		return p.Price
	}
	factor := decimal.NewFromInt(100 - int64(p.Discount)).Div(decimal.NewFromInt(100))
	return p.Price.Mul(factor).Round(2)
}

func (p Product) String() string {
	return fmt.Sprintf("%s – %s", p.Article, p.Name)
}
