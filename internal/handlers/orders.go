package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"shop-backoffice/internal/database"
	"shop-backoffice/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	dateLayout       = "2006-01-02"
	orderFormRows    = 5 // пустых строк состава в форме нового заказа
	ordersPageLimit  = 200
	orderLinesErrMsg = "Состав заказа заполнен некорректно"
)

type orderForm struct {
	OrderNumber   string `form:"order_number" binding:"max=50"`
	ClientID      uint   `form:"client_id" binding:"required"`
	PickupPointID uint   `form:"pickup_point_id" binding:"required"`
	Code          string `form:"code" binding:"required,max=10"`
	Status        string `form:"status" binding:"max=50"`
	DeliveryDate  string `form:"delivery_date"`
	ProductIDs    []uint `form:"product_id"`
	Quantities    []uint `form:"quantity"`
}

// parseDate разбирает дату из <input type="date">; пустая строка: nil.
func parseDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// lines собирает позиции; строки без выбранного товара пропускаются.
func (f orderForm) lines() ([]models.OrderLine, bool) {
	if len(f.ProductIDs) != len(f.Quantities) {
		return nil, false
	}
	var lines []models.OrderLine
	for i, pid := range f.ProductIDs {
		if pid == 0 {
			continue
		}
		lines = append(lines, models.OrderLine{ProductID: pid, Quantity: f.Quantities[i]})
	}
	return lines, true
}

func ListOrders(c *gin.Context) {
	orders, err := database.ListOrders(database.DB.WithContext(c.Request.Context()), ordersPageLimit)
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки заказов")
		return
	}
	render(c, http.StatusOK, "orders_list.html", gin.H{
		"orders": orders,
	})
}

func ShowOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	renderOrder(c, http.StatusOK, id, "")
}

func renderOrder(c *gin.Context, status int, id uint, errMsg string) {
	order, err := database.GetOrder(database.DB.WithContext(c.Request.Context()), id)
	if err != nil {
		c.String(http.StatusNotFound, "Заказ не найден")
		return
	}
	render(c, status, "order_detail.html", gin.H{
		"order": order,
		"error": errMsg,
	})
}

func ShowNewOrder(c *gin.Context) {
	renderOrderForm(c, http.StatusOK, "")
}

func CreateOrder(c *gin.Context) {
	var form orderForm
	if err := c.ShouldBind(&form); err != nil {
		renderOrderForm(c, http.StatusBadRequest, "Укажите клиента, пункт выдачи и код получения")
		return
	}
	delivery, ok := parseDate(form.DeliveryDate)
	if !ok {
		renderOrderForm(c, http.StatusBadRequest, "Некорректная дата доставки")
		return
	}
	lines, ok := form.lines()
	if !ok {
		renderOrderForm(c, http.StatusBadRequest, orderLinesErrMsg)
		return
	}

	order := models.Order{
		OrderNumber:   strings.TrimSpace(form.OrderNumber),
		ClientID:      form.ClientID,
		PickupPointID: form.PickupPointID,
		Code:          strings.TrimSpace(form.Code),
		Status:        strings.TrimSpace(form.Status),
		DeliveryDate:  delivery,
		Lines:         lines,
	}
	if err := database.CreateOrder(database.DB.WithContext(c.Request.Context()), &order); err != nil {
		status, msg := errorStatus(err, "")
		renderOrderForm(c, status, msg)
		return
	}

	audit(c, "order", order.ID, "create", "Создан заказ №"+order.OrderNumber)
	c.Redirect(http.StatusFound, "/orders/"+strconv.FormatUint(uint64(order.ID), 10))
}

type orderStatusForm struct {
	Status       string `form:"status" binding:"required,max=50"`
	DeliveryDate string `form:"delivery_date"`
}

func UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form orderStatusForm
	if err := c.ShouldBind(&form); err != nil {
		renderOrder(c, http.StatusBadRequest, id, "Укажите статус заказа")
		return
	}
	delivery, ok := parseDate(form.DeliveryDate)
	if !ok {
		renderOrder(c, http.StatusBadRequest, id, "Некорректная дата доставки")
		return
	}

	order, err := database.UpdateOrderStatus(database.DB.WithContext(c.Request.Context()), id, form.Status, delivery)
	if err != nil {
		status, msg := errorStatus(err, "")
		renderOrder(c, status, id, msg)
		return
	}

	audit(c, "order", order.ID, "update", "Статус заказа №"+order.OrderNumber+": "+order.Status)
	c.Redirect(http.StatusFound, "/orders/"+strconv.FormatUint(uint64(order.ID), 10))
}

func DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := database.DeleteOrder(database.DB.WithContext(c.Request.Context()), id)
	if err != nil {
		status, msg := errorStatus(err, "")
		c.String(status, msg)
		return
	}

	audit(c, "order", order.ID, "delete", "Удалён заказ №"+order.OrderNumber)
	c.Redirect(http.StatusFound, "/orders")
}

func renderOrderForm(c *gin.Context, status int, errMsg string) {
	db := database.DB.WithContext(c.Request.Context())

	clients, err := database.ListClients(db)
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки клиентов")
		return
	}
	products, err := database.ListProducts(db)
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки товаров")
		return
	}
	points, _ := database.LookupDictionary("pickup-points")
	pickupPoints, err := points.List(db)
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки пунктов выдачи")
		return
	}

	render(c, status, "order_form.html", gin.H{
		"clients":      clients,
		"products":     products,
		"pickupPoints": pickupPoints,
		"rows":         make([]struct{}, orderFormRows),
		"error":        errMsg,
	})
}
