package handlers

import (
	"log/slog"
	"net/http"

	"shop-backoffice/internal/database"

	"github.com/gin-gonic/gin"
)

const recentOrdersLimit = 10

func AdminDashboard(c *gin.Context) {
	db := database.DB.WithContext(c.Request.Context())

	counts, err := database.CountAll(db)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "count entities", slog.Any("error", err))
	}
	orders, err := database.ListOrders(db, recentOrdersLimit)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "list recent orders", slog.Any("error", err))
	}

	render(c, http.StatusOK, "dashboard_admin.html", gin.H{
		"counts":       counts,
		"orders":       orders,
		"dictionaries": database.Dictionaries(),
	})
}

func ManagerDashboard(c *gin.Context) {
	orders, err := database.ListOrders(database.DB.WithContext(c.Request.Context()), recentOrdersLimit)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "list recent orders", slog.Any("error", err))
	}
	render(c, http.StatusOK, "dashboard_manager.html", gin.H{
		"orders": orders,
	})
}

func ClientDashboard(c *gin.Context) {
	products, err := database.ListProducts(database.DB.WithContext(c.Request.Context()))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "list products", slog.Any("error", err))
	}
	render(c, http.StatusOK, "dashboard_client.html", gin.H{
		"products": products,
	})
}
