package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/davidbz/vibeproxy/internal/domain"
)

type healthResponse struct {
	Status    string  `json:"status"`
	Timestamp float64 `json:"timestamp"`
}

type modelsResponse struct {
	Models []domain.ModelInfo `json:"models"`
}

// InfoHandler serves the informational endpoints shared by both services.
// None of them call the upstream gateway.
type InfoHandler struct {
	now func() time.Time
}

// NewInfoHandler creates the shared informational handler set.
func NewInfoHandler() *InfoHandler {
	return &InfoHandler{now: time.Now}
}

// Mount registers the endpoints every service exposes.
func (h *InfoHandler) Mount(r chi.Router) {
	r.Get("/api/health", h.HandleHealth)
}

// HandleBanner returns the service banner.
func (h *InfoHandler) HandleBanner(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, domain.NewBanner())
}

// HandleModels returns the model catalog.
func (h *InfoHandler) HandleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, modelsResponse{Models: domain.Models()})
}

// HandleStatus returns the front-end status descriptor.
func (h *InfoHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, domain.NewStatus())
}

// HandleHealth handles health check requests.
func (h *InfoHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: float64(h.now().UnixNano()) / float64(time.Second),
	})
}
