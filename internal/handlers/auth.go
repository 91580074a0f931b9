package handlers

import (
	"log/slog"
	"net/http"

	"shop-backoffice/internal/database"
	"shop-backoffice/internal/middleware"
	"shop-backoffice/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const invalidCredentialsMsg = "Неверный логин или пароль"

// DashboardPath: страница, на которую попадает пользователь после входа.
// Для неизвестной роли возвращается ошибка, а не клиентская страница.
func DashboardPath(role models.UserRole) (string, error) {
	switch role {
	case models.RoleAdmin:
		return "/dashboard/admin", nil
	case models.RoleManager:
		return "/dashboard/manager", nil
	case models.RoleClient:
		return "/dashboard/client", nil
	}
	return "", errors.Wrapf(models.ErrUnknownRole, "%q", role)
}

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": invalidCredentialsMsg})
		return
	}

	user, err := database.Authenticate(database.DB.WithContext(c.Request.Context()), form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, database.ErrInvalidCredentials) {
			slog.ErrorContext(c.Request.Context(), "login failed", slog.Any("error", err))
			render(c, http.StatusInternalServerError, "login.html", gin.H{"error": "Ошибка входа, попробуйте позже"})
			return
		}
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"error":    invalidCredentialsMsg,
			"username": form.Username,
		})
		return
	}

	target, err := DashboardPath(user.Role)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "user has unknown role",
			slog.Uint64("user_id", uint64(user.ID)), slog.String("role", string(user.Role)))
		render(c, http.StatusForbidden, "login.html", gin.H{"error": "Роль пользователя не распознана"})
		return
	}

	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(middleware.SessionUserID, user.ID)
	sess.Set(middleware.SessionRole, string(user.Role))
	if err := sess.Save(); err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to save session", slog.Any("error", err))
		render(c, http.StatusInternalServerError, "login.html", gin.H{"error": "Ошибка входа, попробуйте позже"})
		return
	}

	c.Redirect(http.StatusFound, target)
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
