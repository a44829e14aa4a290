package completion

import (
	"nl-task-parser/internal/parser"
	"nl-task-parser/pkg/llmprovider"
	pkgLog "nl-task-parser/pkg/log"
)

// Config holds generation settings for parse requests.
type Config struct {
	MaxTokens   int
	Temperature float64
	JSONMode    bool
}

// Client is the parser.Completer backed by an LLM provider.
type Client struct {
	l        pkgLog.Logger
	provider llmprovider.Provider
	cfg      Config
}

var _ parser.Completer = (*Client)(nil)

// New creates a completion client.
func New(l pkgLog.Logger, provider llmprovider.Provider, cfg Config) *Client {
	return &Client{
		l:        l,
		provider: provider,
		cfg:      cfg,
	}
}
