package translate

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient calls any OpenAI-compatible chat completions endpoint
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float64
}

// NewOpenAIClient creates a client for an OpenAI-compatible API
func NewOpenAIClient(opts GeneratorOpts) *OpenAIClient {
	clientConfig := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		clientConfig.BaseURL = opts.BaseURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}

	model := opts.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		temperature: opts.Temperature,
	}
}

// Generate sends the prompt as a user message and returns the first choice
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: float32(c.temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	return resp.Choices[0].Message.Content, nil
}
