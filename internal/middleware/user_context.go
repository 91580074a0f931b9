package middleware

import (
	"log/slog"
	"net/http"

	"shop-backoffice/internal/database"
	"shop-backoffice/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CurrentUserKey: ключ gin.Context с *models.User текущего пользователя.
const CurrentUserKey = "CurrentUser"

// InjectUser загружает пользователя сессии. Если записи больше нет,
// пользователь не выставляется и RequireAuth сбросит сессию.
func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uid, ok := sess.Get(SessionUserID).(uint); ok && uid > 0 {
			var user models.User
			err := database.DB.WithContext(c.Request.Context()).First(&user, uid).Error
			switch {
			case err == nil:
				c.Set(CurrentUserKey, &user)
			case !errors.Is(err, gorm.ErrRecordNotFound):
				slog.ErrorContext(c.Request.Context(), "load session user",
					slog.Uint64("user_id", uint64(uid)), slog.Any("error", err))
				c.String(http.StatusInternalServerError, "Ошибка сервера, попробуйте позже")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
