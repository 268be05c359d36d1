package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// StudentProfile is the flattened evaluation picture sent to the ranking
// model. Summaries are pre-rendered so both providers share one prompt.
type StudentProfile struct {
	VocationalSummary  string
	CognitiveSummary   string
	PersonalitySummary string
	Skills             map[string]int
}

// CatalogEntry is one rankable career or specialization.
type CatalogEntry struct {
	Name        string
	Description string
}

// RankedItem is one model pick, matched back to the catalog by name.
type RankedItem struct {
	Name     string  `json:"name"`
	Affinity float64 `json:"affinity"`
	Reason   string  `json:"reason"`
}

// RankingClientInterface ranks a catalog against a student profile and
// returns at most ten items with affinity in [0,100].
type RankingClientInterface interface {
	RankCatalog(ctx context.Context, profile StudentProfile, entries []CatalogEntry, targetNoun string) ([]RankedItem, error)
}

const maxRankedItems = 10

// NewRankingClient Factory function to create either Groq or Gemini client based on config
func NewRankingClient(provider, apiKey, model string) (RankingClientInterface, error) {
	switch strings.ToLower(provider) {
	case "groq", "":
		return NewGroqRankingClient(apiKey, model), nil
	case "gemini":
		return NewGeminiRankingClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported ranking provider: %s", provider)
	}
}

func buildRankingPrompt(profile StudentProfile, entries []CatalogEntry, targetNoun string) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "You are a vocational guidance counselor. Rank the %s below for this student.\n\n", targetNoun)

	prompt.WriteString("Student profile:\n")
	if profile.VocationalSummary != "" {
		prompt.WriteString("Vocational interests: " + profile.VocationalSummary + "\n")
	}
	if profile.CognitiveSummary != "" {
		prompt.WriteString("Cognitive skills: " + profile.CognitiveSummary + "\n")
	}
	if profile.PersonalitySummary != "" {
		prompt.WriteString("Personality: " + profile.PersonalitySummary + "\n")
	}
	if len(profile.Skills) > 0 {
		prompt.WriteString("Self-reported skills (proficiency 1-5):")
		for name, level := range profile.Skills {
			fmt.Fprintf(&prompt, " %s=%d", name, level)
		}
		prompt.WriteString("\n")
	}

	fmt.Fprintf(&prompt, "\nAvailable %s:\n", targetNoun)
	for _, entry := range entries {
		description := entry.Description
		if len(description) > 200 {
			description = description[:197] + "..."
		}
		fmt.Fprintf(&prompt, "- Name:%s | Description:%s\n", entry.Name, description)
	}

	fmt.Fprintf(&prompt, `
Return JSON only, no markdown, exactly this shape:
{"recommendations":[{"name":"<name from the list>","affinity":87.5,"reason":"one sentence"}]}

Hard constraints:
- At most %d recommendations, best first.
- "name" must be copied verbatim from the list above.
- "affinity" is a number between 0 and 100.
`, maxRankedItems)

	return prompt.String()
}

// parseRankedItems decodes the model output, capping the list and clamping
// affinities so a misbehaving model cannot corrupt stored scores.
func parseRankedItems(content string) ([]RankedItem, error) {
	var parsed struct {
		Recommendations []RankedItem `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("decode ranking response: %w", err)
	}
	if len(parsed.Recommendations) == 0 {
		return nil, fmt.Errorf("ranking response contains no recommendations")
	}

	items := parsed.Recommendations
	if len(items) > maxRankedItems {
		items = items[:maxRankedItems]
	}
	for i := range items {
		if items[i].Affinity < 0 {
			items[i].Affinity = 0
		}
		if items[i].Affinity > 100 {
			items[i].Affinity = 100
		}
	}
	return items, nil
}
