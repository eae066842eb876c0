package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jumptake/backend/config"
	"github.com/jumptake/backend/utils"
)

const defaultModel = "gemini-2.0-flash"

// APIClient calls the Gemini API with an API key.
type APIClient struct {
	client    *genai.Client
	modelName string
	config    *genai.GenerateContentConfig
}

// NewAPIClient creates a client for the Gemini API backend.
func NewAPIClient(ctx context.Context, cfg *config.Config) (*APIClient, error) {
	apiKey := strings.TrimSpace(cfg.GeminiAPIKey)
	if apiKey == "" {
		return nil, &config.ConfigError{Field: "GEMINI_API_KEY", Message: "Gemini API key not configured. Please set GEMINI_API_KEY environment variable."}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: utils.NewHTTPClient(cfg.AITimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.GeminiModel)
	if model == "" {
		model = defaultModel
	}

	return &APIClient{
		client:    client,
		modelName: model,
		config: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](0.2),
			MaxOutputTokens: 8192,
		},
	}, nil
}

// GenerateText sends the prompt and returns the text of the first candidate.
func (c *APIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("gemini client is not initialized")
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), c.config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return "", errors.New("unexpected response format from Gemini API")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		sb.WriteString(part.Text)
	}

	output := strings.TrimSpace(sb.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}

// Model returns the configured model name.
func (c *APIClient) Model() string {
	return c.modelName
}
