package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"shop-backoffice/internal/database"
	"shop-backoffice/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const productInUseMsg = "Товар используется в заказах, удаление запрещено"

type productForm struct {
	Article        string `form:"article"`
	Name           string `form:"name"`
	Unit           string `form:"unit"`
	Price          string `form:"price"`
	Discount       uint8  `form:"discount" binding:"lte=100"`
	Stock          uint   `form:"stock"`
	Description    string `form:"description"`
	ImagePath      string `form:"image_path"`
	SupplierID     uint   `form:"supplier_id"`
	ManufacturerID uint   `form:"manufacturer_id"`
	CategoryID     uint   `form:"category_id"`
}

// apply переносит поля формы в товар. Цена принимается и с запятой.
func (f productForm) apply(p *models.Product) bool {
	price, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(f.Price), ",", "."))
	if err != nil {
		return false
	}
	p.Article = strings.TrimSpace(f.Article)
	p.Name = strings.TrimSpace(f.Name)
	p.Unit = strings.TrimSpace(f.Unit)
	p.Price = price
	p.Discount = f.Discount
	p.Stock = f.Stock
	p.Description = strings.TrimSpace(f.Description)
	p.ImagePath = strings.TrimSpace(f.ImagePath)
	p.SupplierID = f.SupplierID
	p.ManufacturerID = f.ManufacturerID
	p.CategoryID = f.CategoryID
	return true
}

func ListProducts(c *gin.Context) {
	renderProductList(c, http.StatusOK, "")
}

func renderProductList(c *gin.Context, status int, errMsg string) {
	products, err := database.ListProducts(database.DB.WithContext(c.Request.Context()))
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки товаров")
		return
	}
	render(c, status, "products_list.html", gin.H{
		"products": products,
		"error":    errMsg,
	})
}

func ShowNewProduct(c *gin.Context) {
	renderProductForm(c, http.StatusOK, &models.Product{}, "")
}

func CreateProduct(c *gin.Context) {
	var form productForm
	product := models.Product{}
	if err := c.ShouldBind(&form); err != nil || !form.apply(&product) {
		renderProductForm(c, http.StatusBadRequest, &product, "Некорректные данные: проверьте цену, скидку (0–100) и остаток")
		return
	}

	if err := database.CreateProduct(database.DB.WithContext(c.Request.Context()), &product); err != nil {
		status, msg := errorStatus(err, "")
		renderProductForm(c, status, &product, msg)
		return
	}

	audit(c, "product", product.ID, "create", "Создан товар: "+product.String())
	c.Redirect(http.StatusFound, "/products")
}

func ShowEditProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	product, err := database.GetProduct(database.DB.WithContext(c.Request.Context()), id)
	if err != nil {
		c.String(http.StatusNotFound, "Товар не найден")
		return
	}
	renderProductForm(c, http.StatusOK, product, "")
}

func UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	db := database.DB.WithContext(c.Request.Context())

	product, err := database.GetProduct(db, id)
	if err != nil {
		c.String(http.StatusNotFound, "Товар не найден")
		return
	}

	var form productForm
	if err := c.ShouldBind(&form); err != nil || !form.apply(product) {
		renderProductForm(c, http.StatusBadRequest, product, "Некорректные данные: проверьте цену, скидку (0–100) и остаток")
		return
	}

	if err := database.UpdateProduct(db, product); err != nil {
		status, msg := errorStatus(err, "")
		renderProductForm(c, status, product, msg)
		return
	}

	audit(c, "product", product.ID, "update", "Изменён товар: "+product.String())
	c.Redirect(http.StatusFound, "/products")
}

func DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := database.DeleteProduct(database.DB.WithContext(c.Request.Context()), id)
	if err != nil {
		status, msg := errorStatus(err, productInUseMsg)
		renderProductList(c, status, msg)
		return
	}

	audit(c, "product", product.ID, "delete", "Удалён товар: "+product.String())
	c.Redirect(http.StatusFound, "/products")
}

// renderProductForm: форма создания (ID == 0) или редактирования товара.
func renderProductForm(c *gin.Context, status int, product *models.Product, errMsg string) {
	db := database.DB.WithContext(c.Request.Context())
	data := gin.H{
		"product": product,
		"error":   errMsg,
		"action":  "/products/new",
	}
	if product.ID != 0 {
		data["action"] = "/products/" + strconv.FormatUint(uint64(product.ID), 10) + "/edit"
	}
	for key, kind := range map[string]string{
		"categories":    "categories",
		"suppliers":     "suppliers",
		"manufacturers": "manufacturers",
	} {
		dict, _ := database.LookupDictionary(kind)
		entries, err := dict.List(db)
		if err != nil {
			c.String(http.StatusInternalServerError, "Ошибка загрузки справочников")
			return
		}
		data[key] = entries
	}
	render(c, status, "product_form.html", data)
}
