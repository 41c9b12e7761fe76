// internal/web/templates.go
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// formatDate renders server-assigned timestamps; it accepts both the value
// and pointer forms used by the domain types.
func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Local().Format("02/01/2006 15:04")
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Local().Format("02/01/2006 15:04")
	default:
		return fmt.Sprint(v)
	}
}

// parseTemplates builds one template set per screen, each paired with the
// shared layout.
func parseTemplates() map[string]*template.Template {
	funcs := template.FuncMap{"formatDate": formatDate}

	pages := []string{
		"home.html",
		"books_list.html",
		"book_form.html",
		"loans_list.html",
		"loan_form.html",
	}

	tmpl := make(map[string]*template.Template, len(pages)+1)
	for _, page := range pages {
		tmpl[page] = template.Must(template.New(page).Funcs(funcs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+page))
	}
	tmpl["login.html"] = template.Must(template.New("login.html").Funcs(funcs).
		ParseFS(templateFS, "templates/login.html"))

	return tmpl
}

func (s *Server) render(w http.ResponseWriter, page, root string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl[page].ExecuteTemplate(w, root, data); err != nil {
		log.Printf("template %s: %v", page, err)
	}
}
