package tools

import (
	"context"
	"encoding/json"

	"github.com/jumptake/backend/models"
)

// ResumeExtractor is satisfied by *gemini.ResumeExtractor.
type ResumeExtractor interface {
	Extract(ctx context.Context, resumeText string) (*models.ResumeExtraction, error)
}

// ParseResumeTool extracts structured candidate data from resume text
// without storing it.
type ParseResumeTool struct {
	extractor ResumeExtractor
}

// NewParseResumeTool creates a new resume parsing tool
func NewParseResumeTool(extractor ResumeExtractor) *ParseResumeTool {
	return &ParseResumeTool{
		extractor: extractor,
	}
}

func (t *ParseResumeTool) Name() string {
	return "parse_resume"
}

func (t *ParseResumeTool) Description() string {
	return `Parse resume text into structured candidate data using AI.
Returns name, email, education, degrees, experience, skills, achievements, interests and hobbies.
Fields the model could not read are returned as "Could not parse". Nothing is stored.`
}

func (t *ParseResumeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"resume_text": map[string]interface{}{
				"type":        "string",
				"description": "The resume text content to parse",
			},
		},
		"required": []string{"resume_text"},
	}
}

// ParseResumeInput represents the input for resume parsing
type ParseResumeInput struct {
	ResumeText string `json:"resume_text"`
}

func (t *ParseResumeTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var parseInput ParseResumeInput
	if err := json.Unmarshal(input, &parseInput); err != nil {
		return Failure("invalid input: %v", err)
	}

	extraction, err := t.extractor.Extract(ctx, parseInput.ResumeText)
	if err != nil {
		return Failure("resume parsing failed: %v", err)
	}

	return Success(extraction)
}
