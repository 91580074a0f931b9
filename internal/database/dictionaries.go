package database

import (
	"strings"

	"shop-backoffice/internal/models"

	"gorm.io/gorm"
)

// DictionaryEntry: строка справочника для списков и выпадающих меню.
type DictionaryEntry struct {
	ID    uint
	Value string
}

// Dictionary описывает простой справочник из одного текстового поля.
type Dictionary struct {
	Kind   string // сегмент URL
	Title  string
	Label  string // подпись поля в форме
	Entity string // имя сущности в журнале аудита

	model  func() any
	column string
	create func(tx *gorm.DB, value string) (uint, error)
	refs   []reference
}

var dictionaries = []Dictionary{
	{
		Kind: "categories", Title: "Категории", Label: "Категория", Entity: "category",
		model: func() any { return &models.Category{} }, column: "name",
		create: func(tx *gorm.DB, v string) (uint, error) {
			c := models.Category{Name: v}
			err := tx.Create(&c).Error
			return c.ID, err
		},
		refs: []reference{{model: &models.Product{}, column: "category_id"}},
	},
	{
		Kind: "suppliers", Title: "Поставщики", Label: "Поставщик", Entity: "supplier",
		model: func() any { return &models.Supplier{} }, column: "name",
		create: func(tx *gorm.DB, v string) (uint, error) {
			s := models.Supplier{Name: v}
			err := tx.Create(&s).Error
			return s.ID, err
		},
		refs: []reference{{model: &models.Product{}, column: "supplier_id"}},
	},
	{
		Kind: "manufacturers", Title: "Производители", Label: "Производитель", Entity: "manufacturer",
		model: func() any { return &models.Manufacturer{} }, column: "name",
		create: func(tx *gorm.DB, v string) (uint, error) {
			m := models.Manufacturer{Name: v}
			err := tx.Create(&m).Error
			return m.ID, err
		},
		refs: []reference{{model: &models.Product{}, column: "manufacturer_id"}},
	},
	{
		Kind: "pickup-points", Title: "Пункты выдачи", Label: "Адрес пункта выдачи", Entity: "pickup_point",
		model: func() any { return &models.PickupPoint{} }, column: "address",
		create: func(tx *gorm.DB, v string) (uint, error) {
			p := models.PickupPoint{Address: v}
			err := tx.Create(&p).Error
			return p.ID, err
		},
		refs: []reference{{model: &models.Order{}, column: "pickup_point_id"}},
	},
	{
		Kind: "roles", Title: "Роли клиентов", Label: "Роль", Entity: "role",
		model: func() any { return &models.Role{} }, column: "name",
		create: func(tx *gorm.DB, v string) (uint, error) {
			r := models.Role{Name: v}
			err := tx.Create(&r).Error
			return r.ID, err
		},
		refs: []reference{{model: &models.Client{}, column: "role_id"}},
	},
}

func Dictionaries() []Dictionary {
	return dictionaries
}

func LookupDictionary(kind string) (Dictionary, bool) {
	for _, d := range dictionaries {
		if d.Kind == kind {
			return d, true
		}
	}
	return Dictionary{}, false
}

func (d Dictionary) List(db *gorm.DB) ([]DictionaryEntry, error) {
	var entries []DictionaryEntry
	err := db.Model(d.model()).
		Select("id, " + d.column + " AS value").
		Order(d.column + " asc").
		Scan(&entries).Error
	return entries, translate(err)
}

// Create сохраняет запись и возвращает её в том виде, в каком она записана в БД.
func (d Dictionary) Create(db *gorm.DB, value string) (DictionaryEntry, error) {
	entry := DictionaryEntry{Value: strings.TrimSpace(value)}
	id, err := d.create(db, entry.Value)
	if err != nil {
		return DictionaryEntry{}, translate(err)
	}
	entry.ID = id
	return entry, nil
}

// Delete удаляет запись, если на неё никто не ссылается.
func (d Dictionary) Delete(db *gorm.DB, id uint) (DictionaryEntry, error) {
	var entry DictionaryEntry
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(d.model()).Select("id, "+d.column+" AS value").Where("id = ?", id).Scan(&entry)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := ensureUnreferenced(tx, id, d.refs...); err != nil {
			return err
		}
		return tx.Delete(d.model(), id).Error
	})
	return entry, translateDelete(err)
}
