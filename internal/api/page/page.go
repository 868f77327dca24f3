package page

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"wheel_backend/internal/service/wheel"

	"go.uber.org/zap"
)

//go:embed templates/index.html
var templates embed.FS

//go:embed static
var static embed.FS

type pageData struct {
	MinSegments     int
	MaxSegments     int
	DefaultSegments int
}

type HandlerDeps struct {
	Log *zap.Logger
}

type Handler struct {
	log    *zap.Logger
	tmpl   *template.Template
	static http.Handler
}

func NewHandler(deps HandlerDeps) *Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic("failed to open embedded static files: " + err.Error())
	}

	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &Handler{
		log:    log,
		tmpl:   template.Must(template.ParseFS(templates, "templates/index.html")),
		static: http.StripPrefix("/static/", http.FileServer(http.FS(sub))),
	}
}

// Index Страница с колесом
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	err := h.tmpl.Execute(&buf, pageData{
		MinSegments:     wheel.MinSegments,
		MaxSegments:     wheel.MaxSegments,
		DefaultSegments: wheel.DefaultSegments,
	})
	if err != nil {
		h.log.Error("render index", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// Static JS и CSS страницы
func (h *Handler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}
