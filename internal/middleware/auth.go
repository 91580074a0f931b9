package middleware

import (
	"net/http"

	"shop-backoffice/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Ключи сессии.
const (
	SessionUserID = "user_id"
	SessionRole   = "role"
)

func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

// RequireAuth пропускает только запросы, для которых InjectUser нашёл
// пользователя. Сессия удалённого пользователя сбрасывается.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if _, ok := sess.Get(SessionUserID).(uint); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if _, ok := CurrentUser(c); !ok {
			sess.Clear()
			sess.Options(sessions.Options{Path: "/", MaxAge: -1})
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole сверяет роль из БД, а не из cookie: смена роли действует сразу.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		role, err := models.ParseUserRole(string(user.Role))
		if err != nil {
			c.String(http.StatusForbidden, "Недостаточно прав")
			c.Abort()
			return
		}
		if _, ok := roleSet[role]; !ok {
			c.String(http.StatusForbidden, "Недостаточно прав")
			c.Abort()
			return
		}
		c.Next()
	}
}
