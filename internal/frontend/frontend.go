// Package frontend hosts the static chat page and its status endpoints.
// It carries no proxying logic: the page talks to the proxy service directly.
package frontend

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	proxyhttp "github.com/davidbz/vibeproxy/internal/http"
	"github.com/davidbz/vibeproxy/internal/http/middleware"
	"github.com/davidbz/vibeproxy/internal/observability"
)

const indexFile = "index.html"

//go:embed static
var staticFS embed.FS

// Page serves the embedded index page.
type Page struct {
	content []byte
}

// NewPage loads the embedded index page.
func NewPage() (*Page, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(sub, indexFile)
	if err != nil {
		return nil, err
	}

	return &Page{content: content}, nil
}

// HandleIndex writes the index page.
func (p *Page) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(p.content); err != nil {
		observability.FromContext(r.Context()).Warn("failed to write index page", observability.Error(err))
	}
}

// NewRouter builds the route table of the front-end host.
func NewRouter(page *Page, info *proxyhttp.InfoHandler, middlewares middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares)

	r.Get("/", page.HandleIndex)
	r.Get("/api/status", info.HandleStatus)
	info.Mount(r)

	return r
}
