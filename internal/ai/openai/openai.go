// Package openai implements ai.CompletionProvider against any
// OpenAI-compatible chat-completions endpoint.
package openai

import (
	"context"
	"net/http"
	"time"

	gopenai "github.com/sashabaranov/go-openai"
)

// Config carries the provider settings. All values are injected explicitly;
// the provider never reads ambient process state.
type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type Provider struct {
	client    *gopenai.Client
	model     string
	maxTokens int
}

// New builds a provider from explicit configuration. A missing API key is not
// rejected here: the first Complete call will fail at the transport and the
// caller maps that to its enrichment failure.
func New(cfg Config) *Provider {
	clientCfg := gopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Provider{
		client:    gopenai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// Complete posts a single user message and returns the first choice's text.
// No choices means an empty result, not an error.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// HealthPing implements health.HealthPinger by listing models, a cheap
// reachability probe that never consumes completion tokens.
func (p *Provider) HealthPing(ctx context.Context) error {
	_, err := p.client.ListModels(ctx)
	return err
}
