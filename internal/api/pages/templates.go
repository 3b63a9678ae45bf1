package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageHome         = "home.html"
	pageNewEventType = "new_event_type.html"
	pageBookings     = "bookings.html"
	pageBookingPage  = "booking_page.html"
	pageNotFound     = "not_found.html"
	pageError        = "error.html"
)

var pageNames = []string{pageHome, pageNewEventType, pageBookings, pageBookingPage, pageNotFound, pageError}

// Renderer набор страниц, каждая собрана вместе с layout.html
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer(location *time.Location) (*Renderer, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string {
			return t.In(location).Format("Mon, Jan 2, 2006")
		},
		"clock": func(t time.Time) string {
			return t.In(location).Format("15:04")
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render рендерит страницу в буфер и только после успеха пишет ответ
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
