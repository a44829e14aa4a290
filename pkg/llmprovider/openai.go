package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

var _ Provider = (*OpenAIAdapter)(nil)

// OpenAIConfig configures an OpenAI-compatible chat-completions client.
type OpenAIConfig struct {
	Name    string
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration

	// HTTPClient overrides the transport; Timeout is ignored when set.
	HTTPClient *http.Client
}

// OpenAIAdapter adapts go-openai to the Provider interface.
type OpenAIAdapter struct {
	client *openai.Client
	name   string
	model  string
}

// NewOpenAIAdapter creates a new adapter. An empty BaseURL keeps the
// library default (api.openai.com).
func NewOpenAIAdapter(cfg OpenAIConfig) *OpenAIAdapter {
	oaCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oaCfg.BaseURL = cfg.BaseURL
	}
	switch {
	case cfg.HTTPClient != nil:
		oaCfg.HTTPClient = cfg.HTTPClient
	case cfg.Timeout > 0:
		oaCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	name := cfg.Name
	if name == "" {
		name = ProviderOpenAI
	}

	return &OpenAIAdapter{
		client: openai.NewClientWithConfig(oaCfg),
		name:   name,
		model:  cfg.Model,
	}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, &ProviderError{Provider: a.name, Kind: ErrInvalidRequest, Err: errors.New("no messages")}
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    convertToOpenAIMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, a.wrapError(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: a.name, Kind: ErrEmptyResponse, Err: errors.New("no choices in response")}
	}

	choice := resp.Choices[0]
	return &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{{Text: choice.Message.Content}},
		},
		ProviderName: a.name,
		ModelName:    resp.Model,
		FinishReason: string(choice.FinishReason),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

// wrapError classifies go-openai errors into ProviderError kinds.
func (a *OpenAIAdapter) wrapError(ctx context.Context, err error) error {
	pErr := &ProviderError{Provider: a.name, Err: fmt.Errorf("chat completion failed: %w", err)}

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		pErr.StatusCode = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		pErr.StatusCode = reqErr.HTTPStatusCode
	}

	switch {
	case pErr.StatusCode == http.StatusUnauthorized || pErr.StatusCode == http.StatusForbidden:
		pErr.Kind = ErrProviderUnauthorized
	case pErr.StatusCode == http.StatusTooManyRequests:
		pErr.Kind = ErrProviderRateLimited
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		pErr.Kind = ErrProviderTimeout
	}

	return pErr
}

func convertToOpenAIMessages(req *Request) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil && len(req.SystemInstruction.Parts) > 0 {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: joinParts(req.SystemInstruction.Parts),
		})
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: joinParts(msg.Parts),
		})
	}
	return messages
}

func joinParts(parts []Part) string {
	if len(parts) == 1 {
		return parts[0].Text
	}
	var out string
	for _, p := range parts {
		out += p.Text
	}
	return out
}
