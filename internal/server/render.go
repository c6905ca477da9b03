package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/iwvelando/finance-calculator/pkg/calculator"
	"go.uber.org/zap"
)

var pageNames = []string{"standard", "interest", "installment", "error"}

// page is the view model shared by every template.
type page struct {
	Title       string
	Path        string
	Error       string
	Result      interface{}
	ValidRates  []int64
	ValidMonths []int
}

func (p *page) setError(err error) {
	if err != nil {
		p.Error = calculator.Message(err)
	}
}

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(assets, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}
	return pages, nil
}

func (h *handler) render(w http.ResponseWriter, status int, name string, p page) {
	tmpl, ok := h.pages[name]
	if !ok {
		h.logger.Error("unknown template", zap.String("op", "server.render"), zap.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		h.logger.Error("failed to render template",
			zap.String("op", "server.render"),
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write page", zap.String("op", "server.render"), zap.Error(err))
	}
}
