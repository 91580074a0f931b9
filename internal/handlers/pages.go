package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HomePage(c *gin.Context) {
	_, ok := currentUser(c)
	render(c, http.StatusOK, "home.html", gin.H{
		"isAuthed": ok,
	})
}

func Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
