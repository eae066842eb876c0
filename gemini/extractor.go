package gemini

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/logger"
	"github.com/jumptake/backend/models"
)

//go:embed prompt.md
var promptTemplate string

//go:embed extraction.schema.json
var extractionSchema string

const (
	defaultTimeout = 30 * time.Second
	maxLogLength   = 200
)

var (
	jsonFence = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n?```")
	anyFence  = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\\n(.*?)\\n?```")
)

// ResumeExtractor turns resume text into the nine-field extraction.
type ResumeExtractor struct {
	oracle  Oracle
	timeout time.Duration
	schema  *gojsonschema.Schema
	logger  *zap.Logger
}

// NewResumeExtractor creates an extractor. A zero timeout uses the default.
func NewResumeExtractor(oracle Oracle, timeout time.Duration, log *zap.Logger) (*ResumeExtractor, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(extractionSchema))
	if err != nil {
		return nil, fmt.Errorf("load extraction schema: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ResumeExtractor{
		oracle:  oracle,
		timeout: timeout,
		schema:  schema,
		logger:  log.Named("extractor"),
	}, nil
}

// Extract never fails on model problems: anything other than missing
// configuration or empty input yields the sentinel extraction.
func (e *ResumeExtractor) Extract(ctx context.Context, resumeText string) (*models.ResumeExtraction, error) {
	ext, err := e.ExtractStrict(ctx, resumeText)
	if err == nil {
		return ext, nil
	}

	switch apperror.KindOf(err) {
	case apperror.Configuration, apperror.Validation:
		return nil, err
	}

	e.logger.Warn("resume extraction failed, using placeholder", zap.Error(err))
	return models.NewSentinelExtraction(), nil
}

// ExtractStrict performs one model call and reports every failure.
func (e *ResumeExtractor) ExtractStrict(ctx context.Context, resumeText string) (*models.ResumeExtraction, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, apperror.New(apperror.Validation, "No resume text provided")
	}

	prompt := buildPrompt(resumeText)

	e.logger.Debug("resume extraction request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("resume_preview", logger.TruncateForLog(resumeText, maxLogLength)),
	)

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.oracle.GenerateText(callCtx, prompt)
	if err != nil {
		if apperror.Is(err, apperror.Configuration) {
			return nil, err
		}
		return nil, apperror.Wrap(apperror.ExtractionFailure, err, "model call failed")
	}

	e.logger.Debug("resume extraction response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, maxLogLength)),
	)

	return e.parseResponse(raw)
}

func (e *ResumeExtractor) parseResponse(raw string) (*models.ResumeExtraction, error) {
	candidate := extractJSON(raw)
	if candidate == "" {
		return nil, apperror.New(apperror.ExtractionFailure, "no JSON object in model response")
	}

	var doc any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, apperror.Wrap(apperror.ExtractionFailure, err, "Failed to parse Gemini API response as JSON")
	}

	result, err := e.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, apperror.Wrap(apperror.ExtractionFailure, err, "schema validation error")
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			msgs = append(msgs, re.String())
		}
		return nil, apperror.Newf(apperror.ExtractionFailure, "schema validation failed: %s", strings.Join(msgs, "; "))
	}

	var ext models.ResumeExtraction
	if err := json.Unmarshal([]byte(candidate), &ext); err != nil {
		return nil, apperror.Wrap(apperror.ExtractionFailure, err, "decode extraction")
	}
	return &ext, nil
}

func buildPrompt(resumeText string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Extract name, email, education, degrees, experience, skills, achievements, interests, hobbies as JSON.\n\nResume text:\n{{RESUME_TEXT}}"
	}
	return strings.ReplaceAll(template, "{{RESUME_TEXT}}", resumeText)
}

// extractJSON locates the JSON payload of a model response: a json fenced
// block, then any fenced block, then the first balanced object. A response
// that is none of these is returned trimmed.
func extractJSON(raw string) string {
	if m := jsonFence.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := anyFence.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if obj := firstObject(raw); obj != "" {
		return obj
	}
	return strings.TrimSpace(raw)
}

// firstObject returns the first balanced {...} in s that is valid JSON.
// Braces inside JSON strings are ignored.
func firstObject(s string) string {
	for start := strings.IndexByte(s, '{'); start >= 0; {
		if end := matchBrace(s, start); end > 0 {
			if obj := s[start : end+1]; json.Valid([]byte(obj)) {
				return obj
			}
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start += 1 + next
	}
	return ""
}

// matchBrace returns the index of the brace closing the one at start, or -1.
func matchBrace(s string, start int) int {
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
