package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// TextGenerator drafts free text from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{client: openai.NewClient(apiKey), model: model}
}

func (c *OpenAIClient) Generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
		MaxTokens:   800,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
