package handlers

import (
	"fmt"
	"net/http"

	"shop-backoffice/internal/database"

	"github.com/gin-gonic/gin"
)

type clientForm struct {
	FullName string `form:"full_name" binding:"required,max=150"`
	Login    string `form:"login" binding:"required,max=50"`
	Password string `form:"password" binding:"required"`
	RoleID   uint   `form:"role_id" binding:"required"`
}

func ListClients(c *gin.Context) {
	renderClients(c, http.StatusOK, "")
}

func CreateClient(c *gin.Context) {
	var form clientForm
	if err := c.ShouldBind(&form); err != nil {
		renderClients(c, http.StatusBadRequest, "Заполните ФИО, логин, пароль и роль")
		return
	}

	client, err := database.CreateClient(database.DB.WithContext(c.Request.Context()),
		form.FullName, form.Login, form.Password, form.RoleID)
	if err != nil {
		status, msg := errorStatus(err, "")
		if status == http.StatusConflict {
			msg = "Клиент с таким логином уже существует"
		}
		renderClients(c, status, msg)
		return
	}

	audit(c, "client", client.ID, "create", "Создан клиент: "+client.String())
	c.Redirect(http.StatusFound, "/clients")
}

// DeleteClient удаляет клиента вместе с его заказами.
func DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	client, orders, err := database.DeleteClient(database.DB.WithContext(c.Request.Context()), id)
	if err != nil {
		status, msg := errorStatus(err, "")
		renderClients(c, status, msg)
		return
	}

	audit(c, "client", client.ID, "delete",
		fmt.Sprintf("Удалён клиент: %s, удалено заказов: %d", client.String(), orders))
	c.Redirect(http.StatusFound, "/clients")
}

func renderClients(c *gin.Context, status int, errMsg string) {
	db := database.DB.WithContext(c.Request.Context())
	clients, err := database.ListClients(db)
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки клиентов")
		return
	}
	roles, _ := database.LookupDictionary("roles")
	roleEntries, err := roles.List(db)
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки ролей")
		return
	}
	render(c, status, "clients_list.html", gin.H{
		"clients": clients,
		"roles":   roleEntries,
		"error":   errMsg,
	})
}
