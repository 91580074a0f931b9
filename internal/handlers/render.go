package handlers

import (
	"net/http"

	"shop-backoffice/internal/database"
	"shop-backoffice/internal/middleware"
	"shop-backoffice/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// render: обёртка над c.HTML, которая во все шаблоны прокидывает CurrentUser.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if u, ok := currentUser(c); ok {
		data["CurrentUser"] = u
		data["CurrentUsername"] = u.Username
		data["CurrentUserRole"] = u.Role
		if path, err := DashboardPath(u.Role); err == nil {
			data["DashboardPath"] = path
		}
	}

	c.HTML(status, tmpl, data)
}

func currentUser(c *gin.Context) (*models.User, bool) {
	return middleware.CurrentUser(c)
}

func currentUserID(c *gin.Context) uint {
	uid, _ := sessions.Default(c).Get(middleware.SessionUserID).(uint)
	return uid
}

func audit(c *gin.Context, entity string, entityID uint, action, details string) {
	database.CreateAuditLog(currentUserID(c), entity, entityID, action, details)
}

// errorStatus подбирает HTTP-код и сообщение для ошибки слоя БД.
func errorStatus(err error, inUse string) (int, string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, "Проверьте поля: " + fieldList(verr.Fields)
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, "Запись не найдена"
	case errors.Is(err, database.ErrDuplicate):
		return http.StatusConflict, "Запись с таким значением уже существует"
	case errors.Is(err, database.ErrInUse):
		return http.StatusConflict, inUse
	case errors.Is(err, database.ErrInvalidReference):
		return http.StatusBadRequest, "Связанная запись не найдена"
	}
	return http.StatusInternalServerError, "Ошибка сохранения в БД"
}

var fieldTitles = map[string]string{
	"Article":     "артикул",
	"Name":        "наименование",
	"Unit":        "единица измерения",
	"Price":       "цена",
	"Discount":    "скидка",
	"ImagePath":   "путь к фото",
	"Address":     "адрес",
	"FullName":    "ФИО",
	"Login":       "логин",
	"Password":    "пароль",
	"OrderNumber": "номер заказа",
	"Code":        "код получения",
	"Status":      "статус",
	"Lines":       "состав заказа",
	"Quantity":    "количество",
	"check":       "ограничения БД",
}

func fieldList(fields []string) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += ", "
		}
		if t, ok := fieldTitles[f]; ok {
			out += t
		} else {
			out += f
		}
	}
	return out
}

func parseID(c *gin.Context) (uint, bool) {
	var uri struct {
		ID uint `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		c.String(http.StatusBadRequest, "Некорректный ID")
		return 0, false
	}
	return uri.ID, true
}
