package handlers

import (
	"net/http"

	"shop-backoffice/internal/database"

	"github.com/gin-gonic/gin"
)

const auditPageSize = 200

func ListAuditLogs(c *gin.Context) {
	logs, err := database.RecentAuditLogs(database.DB.WithContext(c.Request.Context()), auditPageSize)
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки журнала")
		return
	}

	render(c, http.StatusOK, "audit_list.html", gin.H{
		"logs": logs,
	})
}
