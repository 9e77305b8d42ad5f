package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fleetlab/ocmr/internal/model"
)

const systemPrompt = `You are a marine engineering assistant writing one-line
maintenance recommendations for ship lubricating-oil analysis records.
Respond with a single short sentence, no markdown, no preamble.`

// openAIProvider calls an OpenAI-compatible Chat Completions endpoint
type openAIProvider struct {
	client *openai.Client
	model  string
}

func newOpenAIProvider(cfg model.LLMConfig) *openAIProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	m := cfg.Model
	if m == "" {
		m = openai.GPT4oMini
	}

	return &openAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  m,
	}
}

// Name returns the provider name
func (p *openAIProvider) Name() string {
	return "openai"
}

// Recommend asks the model for one recommendation sentence
func (p *openAIProvider) Recommend(ctx context.Context, status string, summary string) (string, error) {
	prompt := fmt.Sprintf("Assessment status: %s.\nKey readings: %s.\nWrite the recommendation.", status, summary)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     p.model,
		MaxTokens: 60,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("chat completion: blank recommendation")
	}
	return text, nil
}
