// Package puter implements domain.Gateway on top of the hosted driver-call API.
// Every request is wrapped in an envelope naming the interface, driver and
// method to invoke; replies are either a single JSON document or, when
// streaming, a chunked body of newline-delimited JSON fragments.
package puter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/davidbz/vibeproxy/internal/domain"
	"github.com/davidbz/vibeproxy/internal/observability"
)

// Envelope is the request body the gateway expects.
type Envelope struct {
	Interface string                 `json:"interface"`
	Driver    string                 `json:"driver"`
	Method    string                 `json:"method"`
	Args      *domain.CompletionArgs `json:"args"`
}

type reply struct {
	Message struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
	Usage map[string]any `json:"usage"`
}

// Client implements domain.Gateway for the hosted driver-call API.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new gateway client.
func NewClient(config Config) (*Client, error) {
	if config.URL == "" {
		return nil, errors.New("upstream URL is required")
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}, nil
}

// Complete sends a blocking completion call.
func (c *Client) Complete(ctx context.Context, args *domain.CompletionArgs) (*domain.Completion, error) {
	if args == nil {
		return nil, domain.NewInternalError("invalid upstream call", errors.New("args cannot be nil"))
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling upstream gateway")

	resp, err := c.post(ctx, args)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, domain.NewUpstreamError(resp.StatusCode, string(body))
	}

	var out reply
	if decodeErr := json.NewDecoder(resp.Body).Decode(&out); decodeErr != nil {
		return nil, domain.NewInternalError("failed to decode upstream response", decodeErr)
	}

	text := ""
	if len(out.Message.Content) > 0 {
		text = out.Message.Content[0].Text
	}

	return &domain.Completion{
		Text:  text,
		Usage: out.Usage,
	}, nil
}

// Stream opens a streaming completion call and relays the body line by line.
func (c *Client) Stream(ctx context.Context, args *domain.CompletionArgs) (<-chan domain.StreamLine, error) {
	if args == nil {
		return nil, domain.NewInternalError("invalid upstream call", errors.New("args cannot be nil"))
	}

	streamArgs := *args
	streamArgs.Stream = true

	logger := observability.FromContext(ctx)
	logger.Debug("calling upstream gateway in streaming mode")

	//nolint:bodyclose // Response body is closed in readLines goroutine
	resp, err := c.post(ctx, &streamArgs)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		return nil, domain.NewUpstreamError(resp.StatusCode, string(body))
	}

	lines := make(chan domain.StreamLine)
	go c.readLines(ctx, resp.Body, lines)

	return lines, nil
}

// post marshals the envelope and executes the call.
func (c *Client) post(ctx context.Context, args *domain.CompletionArgs) (*http.Response, error) {
	reqBody, err := json.Marshal(c.envelope(args))
	if err != nil {
		return nil, domain.NewInternalError("failed to marshal envelope", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.config.URL,
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return nil, domain.NewInternalError("failed to create upstream request", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewInternalError("upstream request failed", err)
	}

	return resp, nil
}

func (c *Client) envelope(args *domain.CompletionArgs) *Envelope {
	return &Envelope{
		Interface: c.config.Interface,
		Driver:    c.config.Driver,
		Method:    c.config.Method,
		Args:      args,
	}
}

// readLines forwards each non-empty line of body until EOF, a read error or
// cancellation of ctx. Lines have no size limit.
func (c *Client) readLines(ctx context.Context, body io.ReadCloser, lines chan<- domain.StreamLine) {
	defer close(lines)
	defer body.Close()

	logger := observability.FromContext(ctx)
	reader := bufio.NewReader(body)

	for {
		raw, err := reader.ReadBytes('\n')
		if data := bytes.TrimRight(raw, "\r\n"); len(data) > 0 {
			select {
			case <-ctx.Done():
				logger.Debug("stream consumer went away, releasing upstream")
				return
			case lines <- domain.StreamLine{Data: data, Err: nil}:
			}
		}

		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			logger.Debug("upstream stream completed")
			return
		}

		select {
		case <-ctx.Done():
		case lines <- domain.StreamLine{Data: nil, Err: domain.NewInternalError("upstream stream read failed", err)}:
		}
		return
	}
}
