package handlers

import (
	"net/http"

	"shop-backoffice/internal/database"

	"github.com/gin-gonic/gin"
)

// Справочники: категории, поставщики, производители, пункты выдачи, роли.

func lookupDictionary(c *gin.Context) (database.Dictionary, bool) {
	dict, ok := database.LookupDictionary(c.Param("kind"))
	if !ok {
		c.String(http.StatusNotFound, "Справочник не найден")
	}
	return dict, ok
}

func ListDictionary(c *gin.Context) {
	dict, ok := lookupDictionary(c)
	if !ok {
		return
	}
	renderDictionary(c, http.StatusOK, dict, "")
}

func CreateDictionaryEntry(c *gin.Context) {
	dict, ok := lookupDictionary(c)
	if !ok {
		return
	}

	entry, err := dict.Create(database.DB.WithContext(c.Request.Context()), c.PostForm("value"))
	if err != nil {
		status, msg := errorStatus(err, "")
		renderDictionary(c, status, dict, msg)
		return
	}

	audit(c, dict.Entity, entry.ID, "create", dict.Label+": "+entry.Value)
	c.Redirect(http.StatusFound, "/dictionaries/"+dict.Kind)
}

func DeleteDictionaryEntry(c *gin.Context) {
	dict, ok := lookupDictionary(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	entry, err := dict.Delete(database.DB.WithContext(c.Request.Context()), id)
	if err != nil {
		status, msg := errorStatus(err, "Запись используется, удаление запрещено")
		renderDictionary(c, status, dict, msg)
		return
	}

	audit(c, dict.Entity, entry.ID, "delete", dict.Label+": "+entry.Value)
	c.Redirect(http.StatusFound, "/dictionaries/"+dict.Kind)
}

func renderDictionary(c *gin.Context, status int, dict database.Dictionary, errMsg string) {
	entries, err := dict.List(database.DB.WithContext(c.Request.Context()))
	if err != nil {
		c.String(http.StatusInternalServerError, "Ошибка загрузки справочника")
		return
	}
	render(c, status, "dictionary.html", gin.H{
		"dict":         dict,
		"entries":      entries,
		"dictionaries": database.Dictionaries(),
		"error":        errMsg,
	})
}
