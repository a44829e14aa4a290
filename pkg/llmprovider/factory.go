package llmprovider

import (
	"fmt"
	"strings"
)

// New creates a Provider from cfg, filling base URL and model from the
// named provider's preset when they are empty.
func New(cfg OpenAIConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	cfg.Name = strings.ToLower(strings.TrimSpace(cfg.Name))
	if cfg.Name == "" {
		cfg.Name = ProviderOpenAI
	}

	switch cfg.Name {
	case ProviderOpenAI:
		if cfg.Model == "" {
			cfg.Model = DefaultOpenAIModel
		}

	case ProviderDeepSeek:
		if cfg.BaseURL == "" {
			cfg.BaseURL = DefaultDeepSeekBaseURL
		}
		if cfg.Model == "" {
			cfg.Model = DefaultDeepSeekModel
		}

	case ProviderQwen, "alibaba":
		cfg.Name = ProviderQwen
		if cfg.BaseURL == "" {
			cfg.BaseURL = DefaultQwenBaseURL
		}
		if cfg.Model == "" {
			cfg.Model = DefaultQwenModel
		}

	case ProviderOpenRouter:
		if cfg.BaseURL == "" {
			cfg.BaseURL = DefaultOpenRouterBaseURL
		}
		if cfg.Model == "" {
			return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}

	return NewOpenAIAdapter(cfg), nil
}
