package domain

import (
	"context"
	"errors"
	"time"

	"github.com/davidbz/vibeproxy/internal/observability"
)

// RelayConfig contains relay settings.
type RelayConfig struct {
	DefaultModel string `env:"RELAY_DEFAULT_MODEL" envDefault:"claude-sonnet-4-5"`
}

// RelayService forwards chat requests to the upstream gateway.
type RelayService struct {
	gateway      Gateway
	defaultModel string
	now          func() time.Time
}

// NewRelayService creates a new relay service (DI constructor).
func NewRelayService(gateway Gateway, cfg *RelayConfig) *RelayService {
	defaultModel := DefaultModel
	if cfg != nil && cfg.DefaultModel != "" {
		defaultModel = cfg.DefaultModel
	}

	return &RelayService{
		gateway:      gateway,
		defaultModel: defaultModel,
		now:          time.Now,
	}
}

// DefaultModel returns the model used when a request names none.
func (s *RelayService) DefaultModel() string {
	return s.defaultModel
}

// Chat relays a blocking chat request.
func (s *RelayService) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	args, err := s.buildArgs(req, false)
	if err != nil {
		return nil, err
	}

	logger := observability.FromContext(ctx)
	logger.Debug("forwarding chat request", observability.String("model", args.Model))

	completion, err := s.gateway.Complete(ctx, args)
	if err != nil {
		return nil, err
	}

	usage := completion.Usage
	if usage == nil {
		usage = map[string]any{}
	}

	return &ChatResponse{
		Success:   true,
		Model:     args.Model,
		Response:  completion.Text,
		Usage:     usage,
		Timestamp: unixSeconds(s.now()),
	}, nil
}

// Stream relays a streaming chat request. The returned channel is finite and
// cannot be restarted; cancelling ctx releases the upstream connection.
func (s *RelayService) Stream(ctx context.Context, req *ChatRequest) (<-chan StreamLine, error) {
	args, err := s.buildArgs(req, true)
	if err != nil {
		return nil, err
	}

	logger := observability.FromContext(ctx)
	logger.Debug("forwarding stream request", observability.String("model", args.Model))

	return s.gateway.Stream(ctx, args)
}

// ResolveModel returns the model a request will be forwarded with.
func (s *RelayService) ResolveModel(req *ChatRequest) string {
	if req == nil || req.Model == "" {
		return s.defaultModel
	}
	return req.Model
}

func (s *RelayService) buildArgs(req *ChatRequest, stream bool) (*CompletionArgs, error) {
	if req == nil {
		return nil, NewInternalError("invalid request", errors.New("request cannot be nil"))
	}

	if req.Prompt == "" {
		return nil, ErrPromptRequired
	}

	return &CompletionArgs{
		Messages: []Message{
			{Role: "user", Content: req.Prompt},
		},
		Model:  s.ResolveModel(req),
		Stream: stream,
	}, nil
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
