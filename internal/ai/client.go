package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Kuldeep-Sharmaa/remindrai-sub000/internal/models"
)

type Client struct {
	client *openai.Client
	model  string
}

func New(apiKey, baseURL, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *Client) SetModel(model string) {
	c.model = model
}

const systemPromptTemplate = `You are a content writer drafting a post on behalf of a user.
Write exactly one draft, ready to publish as-is. No preamble, no commentary, no markdown fences.%s%s%s`

// Generate produces draft text for the given generation parameters. Any
// API failure is returned as-is; callers do not branch on error kinds.
func (c *Client) Generate(ctx context.Context, content models.Content) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt(content),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: content.Prompt,
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to call AI API: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty response from AI")
	}
	return text, nil
}

func systemPrompt(content models.Content) string {
	var role, tone, platform string
	if content.Role != "" {
		role = fmt.Sprintf("\nWrite as: %s.", content.Role)
	}
	if content.Tone != "" {
		tone = fmt.Sprintf("\nTone: %s.", content.Tone)
	}
	if content.Platform != "" {
		platform = fmt.Sprintf("\nTarget platform: %s. Respect its conventions and length norms.", content.Platform)
	}
	return fmt.Sprintf(systemPromptTemplate, role, tone, platform)
}
