package domain

// DefaultModel is used when a chat request does not name a model.
const DefaultModel = "claude-sonnet-4-5"

const serviceName = "AI Vibe Coder API Proxy"

// Models returns the catalog of models offered through the proxy.
func Models() []ModelInfo {
	return []ModelInfo{
		{ID: "claude-sonnet-4-5", Name: "Claude Sonnet 4.5", Description: "Smart and efficient for everyday tasks"},
		{ID: "claude-opus-4-5", Name: "Claude Opus 4.5", Description: "The most capable model for complex tasks"},
		{ID: "claude-haiku-4-5", Name: "Claude Haiku 4.5", Description: "Fast and lightweight model"},
		{ID: "claude-sonnet-4", Name: "Claude Sonnet 4", Description: "Previous generation Sonnet"},
		{ID: "claude-opus-4", Name: "Claude Opus 4", Description: "Previous generation Opus"},
		{ID: "claude-opus-4-1", Name: "Claude Opus 4.1", Description: "Improved version of Opus 4"},
	}
}

// ModelIDs returns the identifiers of the catalog, in catalog order.
func ModelIDs() []string {
	models := Models()
	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}
	return ids
}

// Banner describes the proxy service and its endpoints.
type Banner struct {
	Status          string            `json:"status"`
	Service         string            `json:"service"`
	Message         string            `json:"message"`
	Endpoints       map[string]string `json:"endpoints"`
	AvailableModels []string          `json:"available_models"`
}

// NewBanner returns the proxy service banner.
func NewBanner() Banner {
	return Banner{
		Status:  "online",
		Service: serviceName,
		Message: "Free access to Claude models through the hosted gateway",
		Endpoints: map[string]string{
			"/api/chat":        "POST - send a message (blocking)",
			"/api/chat/stream": "POST - send a message (event stream)",
			"/api/models":      "GET - list available models",
			"/api/health":      "GET - health probe",
		},
		AvailableModels: ModelIDs(),
	}
}

// Status describes the static front-end host.
type Status struct {
	Status   string   `json:"status"`
	Service  string   `json:"service"`
	Features []string `json:"features"`
	Models   []string `json:"models"`
}

// NewStatus returns the front-end host status descriptor.
func NewStatus() Status {
	return Status{
		Status:   "online",
		Service:  serviceName,
		Features: []string{"chat", "streaming", "model-selection"},
		Models:   ModelIDs(),
	}
}
