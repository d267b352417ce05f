package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/davidbz/vibeproxy/internal/domain"
	"github.com/davidbz/vibeproxy/internal/observability"
)

const (
	modeChat   = "chat"
	modeStream = "stream"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Handler handles chat relay requests.
type Handler struct {
	relay   *domain.RelayService
	metrics *observability.Metrics
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(relay *domain.RelayService, metrics *observability.Metrics) *Handler {
	return &Handler{
		relay:   relay,
		metrics: metrics,
	}
}

// HandleChat relays a blocking chat request.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decodeChatRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	// Inject model into context for downstream logging.
	ctx = observability.WithModel(ctx, h.relay.ResolveModel(req))

	logger := observability.FromContext(ctx)
	logger.Info("chat request received", observability.Int("prompt_length", len(req.Prompt)))

	start := time.Now()
	response, err := h.relay.Chat(ctx, req)
	h.observeUpstream(modeChat, err, time.Since(start))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	logger.Info("chat succeeded", observability.Int("response_length", len(response.Response)))

	writeJSON(ctx, w, http.StatusOK, response)
}

// HandleChatStream relays a streaming chat request as an event stream.
func (h *Handler) HandleChatStream(w http.ResponseWriter, r *http.Request) {
	// Cancelling releases the upstream connection on every exit path.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	req, err := decodeChatRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	ctx = observability.WithModel(ctx, h.relay.ResolveModel(req))
	logger := observability.FromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("streaming not supported")
		writeError(ctx, w, domain.NewInternalError("streaming not supported", nil))
		return
	}

	logger.Info("stream request received", observability.Int("prompt_length", len(req.Prompt)))

	start := time.Now()
	lines, err := h.relay.Stream(ctx, req)
	h.observeUpstream(modeStream, err, time.Since(start))
	if err != nil && domain.KindOf(err) != domain.KindInternal {
		writeError(ctx, w, err)
		return
	}

	h.metrics.StreamStarted()
	defer h.metrics.StreamEnded()

	startEventStream(w)

	// Internal failures opening the upstream end the stream with one error frame.
	if err != nil {
		logger.Error("stream failed before first frame", observability.Error(err))
		writeErrorFrame(w, err)
		flusher.Flush()
		return
	}
	flusher.Flush()

	frames := 0
	for {
		select {
		case <-ctx.Done():
			// Client disconnected.
			logger.Info("stream context done",
				observability.Int("frames", frames),
				observability.Error(ctx.Err()))
			return

		case line, lineOk := <-lines:
			if !lineOk {
				logger.Info("stream completed", observability.Int("frames", frames))
				return
			}

			if line.Err != nil {
				logger.Error("stream failed after start",
					observability.Int("frames", frames),
					observability.Error(line.Err))
				writeErrorFrame(w, line.Err)
				flusher.Flush()
				return
			}

			fmt.Fprintf(w, "data: %s\n\n", line.Data)
			flusher.Flush()
			h.metrics.FrameRelayed()
			frames++
		}
	}
}

func (h *Handler) observeUpstream(mode string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		kind := domain.KindOf(err)
		if kind == domain.KindValidation {
			return
		}
		outcome = kind.String()
	}
	h.metrics.ObserveUpstream(mode, outcome, elapsed)
}

func decodeChatRequest(r *http.Request) (*domain.ChatRequest, error) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &domain.Error{
			Kind:    domain.KindValidation,
			Message: fmt.Sprintf("invalid request body: %v", err),
		}
	}
	return &req, nil
}

// writeError renders err as error JSON with the status derived from its kind.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := domain.StatusCode(err)
	body := errorResponse{
		Success: false,
		Error:   err.Error(),
	}

	var relayErr *domain.Error
	if errors.As(err, &relayErr) && relayErr.Kind == domain.KindUpstream {
		body.Details = relayErr.Details
	}

	logger := observability.FromContext(ctx)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			observability.String("kind", domain.KindOf(err).String()),
			observability.Int("status", status),
			observability.Error(err))
	} else {
		logger.Warn("request rejected",
			observability.String("kind", domain.KindOf(err).String()),
			observability.Int("status", status),
			observability.Error(err))
	}

	writeJSON(ctx, w, status, body)
}

// startEventStream commits the event-stream headers and a 200 status.
func startEventStream(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
}

// writeErrorFrame emits the single terminal frame of a broken stream.
func writeErrorFrame(w http.ResponseWriter, err error) {
	data, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
	if marshalErr != nil {
		data = []byte(`{"error":"stream failed"}`)
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(ctx).Error("failed to encode response", observability.Error(err))
	}
}
