package server

import (
	"html/template"
	"time"

	"shop-backoffice/internal/models"
	"shop-backoffice/web"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	displayDateLayout = "02.01.2006"
	inputDateLayout   = "2006-01-02"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatDate принимает time.Time или *time.Time; nil выводится прочерком.
func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return "—"
		}
		return t.Format(displayDateLayout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return "—"
		}
		return t.Format(displayDateLayout)
	}
	return "—"
}

func dateInput(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(inputDateLayout)
}

func roleTitle(r models.UserRole) string {
	return r.Title()
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"money":     money,
		"date":      formatDate,
		"dateInput": dateInput,
		"roleTitle": roleTitle,
	}
}

func loadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return tmpl, nil
}
