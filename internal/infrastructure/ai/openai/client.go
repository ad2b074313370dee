// Package openai implements the recipe suggestion port on the OpenAI
// chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/pantrychef/v1/internal/infrastructure/config"
	"github.com/pantrychef/v1/internal/ports/outbound"
	apperrors "github.com/pantrychef/v1/pkg/errors"
)

const systemPrompt = `You are a cooking assistant. Given a list of pantry items,
suggest dishes that use as many of them as possible. Respond with a JSON array
only, no prose. Each element has the fields "title", "description", "uses"
(pantry items the dish consumes) and "missing" (ingredients the user still
needs to buy).`

// Client implements outbound.AIService.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	logger      *zap.Logger
}

// NewClient creates an OpenAI-backed suggestion client.
func NewClient(cfg config.AIConfig, logger *zap.Logger) outbound.AIService {
	return &Client{
		api:         openai.NewClient(cfg.APIKey),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: float32(cfg.Temperature),
		logger:      logger.Named("openai"),
	}
}

// SuggestRecipes asks the model for dishes cookable from the pantry.
func (c *Client) SuggestRecipes(ctx context.Context, pantry []string, preferences []string, limit int) ([]outbound.AISuggestion, error) {
	if limit <= 0 {
		limit = 5
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Pantry: %s.\n", strings.Join(pantry, ", "))
	if len(preferences) > 0 {
		fmt.Fprintf(&prompt, "Dietary preferences: %s.\n", strings.Join(preferences, ", "))
	}
	fmt.Fprintf(&prompt, "Suggest up to %d dishes.", limit)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt.String()},
		},
	})
	if err != nil {
		c.logger.Warn("Chat completion failed", zap.Error(err))
		return nil, apperrors.NewExternalService("OpenAI", err)
	}
	if len(resp.Choices) == 0 {
		return nil, apperrors.NewExternalService("OpenAI", fmt.Errorf("empty completion"))
	}

	suggestions, err := parseSuggestions(resp.Choices[0].Message.Content)
	if err != nil {
		c.logger.Warn("Unparseable completion",
			zap.String("model", c.model),
			zap.Error(err),
		)
		return nil, apperrors.NewExternalService("OpenAI", err)
	}
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	c.logger.Debug("Suggestions generated",
		zap.Int("pantry_items", len(pantry)),
		zap.Int("suggestions", len(suggestions)),
	)
	return suggestions, nil
}

// parseSuggestions tolerates models that wrap the JSON array in a
// markdown code fence.
func parseSuggestions(content string) ([]outbound.AISuggestion, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	var suggestions []outbound.AISuggestion
	if err := json.Unmarshal([]byte(content), &suggestions); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	return suggestions, nil
}
