package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/jumptake/backend/config"
)

// VertexClient wraps the Vertex AI Gemini client
type VertexClient struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewVertexClient creates a new Vertex AI Gemini client
func NewVertexClient(ctx context.Context, cfg *config.Config) (*VertexClient, error) {
	if cfg.ProjectID == "" {
		return nil, &config.ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Vertex AI"}
	}

	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)

	// Configure model parameters
	model.SetTemperature(0.2) // Lower temperature for more consistent outputs
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)

	return &VertexClient{
		client:    client,
		model:     model,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *VertexClient) Close() error {
	return c.client.Close()
}

// GenerateText sends a single text prompt to the model.
func (c *VertexClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini")
	}

	return extractText(resp), nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
