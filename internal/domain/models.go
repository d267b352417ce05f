package domain

// ChatRequest is the caller-facing chat request.
type ChatRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model,omitempty"`
}

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"` // user, assistant, system
	Content string `json:"content"`
}

// CompletionArgs is the argument block forwarded to the upstream gateway.
type CompletionArgs struct {
	Messages []Message `json:"messages"`
	Model    string    `json:"model"`
	Stream   bool      `json:"stream,omitempty"`
}

// Completion is the part of an upstream reply the proxy relays.
type Completion struct {
	Text  string
	Usage map[string]any
}

// ChatResponse is the caller-facing synchronous chat response.
type ChatResponse struct {
	Success   bool           `json:"success"`
	Model     string         `json:"model"`
	Response  string         `json:"response"`
	Usage     map[string]any `json:"usage"`
	Timestamp float64        `json:"timestamp"`
}

// StreamLine is a single non-empty line of an upstream stream, or the error that ended it.
type StreamLine struct {
	Data []byte
	Err  error
}

// ModelInfo describes a model offered through the proxy.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
