package clients

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqRankingClient implements RankingClientInterface against Groq's
// OpenAI-compatible chat completion endpoint.
type GroqRankingClient struct {
	client *openai.Client
	model  string
}

func NewGroqRankingClient(apiKey, model string) *GroqRankingClient {
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL

	return &GroqRankingClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *GroqRankingClient) RankCatalog(ctx context.Context, profile StudentProfile, entries []CatalogEntry, targetNoun string) ([]RankedItem, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a vocational guidance counselor. Answer with JSON only.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildRankingPrompt(profile, entries, targetNoun),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("groq: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("groq: no choices returned")
	}

	return parseRankedItems(resp.Choices[0].Message.Content)
}
