package puter

// Config contains upstream gateway settings.
//   - URL: the driver-call endpoint every envelope is posted to
//   - Interface, Driver, Method: the fixed envelope routing fields
//   - Timeout: whole-request timeout in seconds, 0 leaves the HTTP client default (none)
type Config struct {
	URL       string `env:"UPSTREAM_URL"       envDefault:"https://api.puter.com/drivers/call"`
	Interface string `env:"UPSTREAM_INTERFACE" envDefault:"puter-chat-completion"`
	Driver    string `env:"UPSTREAM_DRIVER"    envDefault:"anthropic"`
	Method    string `env:"UPSTREAM_METHOD"    envDefault:"complete"`
	Timeout   int    `env:"UPSTREAM_TIMEOUT"   envDefault:"0"`
}
