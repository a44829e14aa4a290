package completion

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"nl-task-parser/internal/parser"
	"nl-task-parser/pkg/llmprovider"
)

// Complete sends the prompt once and returns the schema-valid tasks of the reply.
func (c *Client) Complete(ctx context.Context, prompt string) ([]parser.RawTask, error) {
	resp, err := c.provider.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: llmprovider.SystemMessage(SystemPrompt),
		Messages:          []llmprovider.Message{llmprovider.UserMessage(prompt)},
		Temperature:       c.cfg.Temperature,
		MaxTokens:         c.cfg.MaxTokens,
		JSONMode:          c.cfg.JSONMode,
	})
	if err != nil {
		c.l.Errorf(ctx, "internal.parser.completion.Complete: provider=%s: %v", c.provider.Name(), err)
		return nil, fmt.Errorf("%w: %w", parser.ErrUpstream, err)
	}

	content := strings.TrimSpace(resp.Text())
	c.l.Infof(ctx, "internal.parser.completion.Complete: provider=%s model=%s reply=%q",
		resp.ProviderName, resp.ModelName, preview(content))

	doc, err := decodeDocument(content)
	if err != nil {
		c.l.Errorf(ctx, "internal.parser.completion.Complete: %v", err)
		return nil, err
	}

	tasks, err := c.validateDocument(ctx, doc)
	if err != nil {
		c.l.Errorf(ctx, "internal.parser.completion.Complete: %v", err)
		return nil, err
	}

	c.l.Infof(ctx, "internal.parser.completion.Complete: parsed %d tasks", len(tasks))
	return tasks, nil
}

// Probe sends a minimal request and reports whether it succeeded.
func (c *Client) Probe(ctx context.Context) bool {
	_, err := c.provider.GenerateContent(ctx, &llmprovider.Request{
		Messages:  []llmprovider.Message{llmprovider.UserMessage(ProbePrompt)},
		MaxTokens: llmprovider.ProbeMaxTokens,
	})
	if err != nil {
		c.l.Errorf(ctx, "internal.parser.completion.Probe: connection test failed: %v", err)
		return false
	}
	return true
}

func preview(s string) string {
	if len(s) <= logPreviewLen {
		return s
	}
	n := logPreviewLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
