package clients

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiRankingClient implements RankingClientInterface using Google's Gemini models
type GeminiRankingClient struct {
	client *genai.Client
	model  string
}

func NewGeminiRankingClient(apiKey, model string) (*GeminiRankingClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRankingClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiRankingClient) RankCatalog(ctx context.Context, profile StudentProfile, entries []CatalogEntry, targetNoun string) ([]RankedItem, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.2)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(buildRankingPrompt(profile, entries, targetNoun)))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("gemini: not valid json")
	}
	return parseRankedItems(content)
}

func (c *GeminiRankingClient) Close() error {
	return c.client.Close()
}
