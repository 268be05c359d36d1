package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"careercompass/internal/scoring"
)

// TextAnalysisClientInterface resolves free text into sentiment and key
// phrases. Implementations must degrade to the neutral analysis instead of
// failing, so personality scoring always completes.
type TextAnalysisClientInterface interface {
	AnalyzeText(ctx context.Context, text string) scoring.TextAnalysis
}

// AzureLanguageClient calls the Azure AI Language analyze-text REST API.
type AzureLanguageClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewAzureLanguageClient(endpoint, apiKey string) *AzureLanguageClient {
	return &AzureLanguageClient{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type azureAnalyzeRequest struct {
	Kind          string `json:"kind"`
	AnalysisInput struct {
		Documents []azureDocument `json:"documents"`
	} `json:"analysisInput"`
}

type azureDocument struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

type azureAnalyzeResponse struct {
	Results struct {
		Documents []struct {
			ConfidenceScores struct {
				Positive float64 `json:"positive"`
				Neutral  float64 `json:"neutral"`
				Negative float64 `json:"negative"`
			} `json:"confidenceScores"`
			KeyPhrases []string `json:"keyPhrases"`
		} `json:"documents"`
	} `json:"results"`
}

// AnalyzeText runs sentiment analysis and key phrase extraction. Any
// transport or payload failure falls back to the neutral analysis.
func (c *AzureLanguageClient) AnalyzeText(ctx context.Context, text string) scoring.TextAnalysis {
	if strings.TrimSpace(text) == "" || c.endpoint == "" || c.apiKey == "" {
		return scoring.NeutralTextAnalysis()
	}

	sentiment, err := c.analyze(ctx, "SentimentAnalysis", text)
	if err != nil {
		log.Printf("azure sentiment analysis failed, using neutral default: %v", err)
		return scoring.NeutralTextAnalysis()
	}

	phrases, err := c.analyze(ctx, "KeyPhraseExtraction", text)
	if err != nil {
		log.Printf("azure key phrase extraction failed, using neutral default: %v", err)
		return scoring.NeutralTextAnalysis()
	}

	doc := sentiment.Results.Documents[0]
	return scoring.TextAnalysis{
		SentimentPositive: doc.ConfidenceScores.Positive,
		SentimentNeutral:  doc.ConfidenceScores.Neutral,
		SentimentNegative: doc.ConfidenceScores.Negative,
		KeyPhrases:        phrases.Results.Documents[0].KeyPhrases,
	}
}

func (c *AzureLanguageClient) analyze(ctx context.Context, kind, text string) (*azureAnalyzeResponse, error) {
	reqBody := azureAnalyzeRequest{Kind: kind}
	reqBody.AnalysisInput.Documents = []azureDocument{{ID: "1", Language: "en", Text: text}}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", kind, err)
	}

	url := c.endpoint + "/language/:analyze-text?api-version=2023-04-01"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", kind, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s call: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", kind, resp.StatusCode)
	}

	var parsed azureAnalyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", kind, err)
	}
	if len(parsed.Results.Documents) == 0 {
		return nil, fmt.Errorf("%s returned no documents", kind)
	}
	return &parsed, nil
}
