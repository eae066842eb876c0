package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jumptake/backend/apperror"
	"github.com/jumptake/backend/config"
	"github.com/jumptake/backend/models"
)

const janeJSON = `{"name":"Jane Doe","email":"jane@example.com","education":[{"institution":"MIT","degree":"BSc"}],` +
	`"degrees":["BSc"],"experience":"Acme 2019-2024","skills":["Python","SQL"],"achievements":[],"interests":null,"hobbies":"chess"}`

func newTestExtractor(t *testing.T, oracle Oracle) *ResumeExtractor {
	t.Helper()
	e, err := NewResumeExtractor(oracle, time.Second, zap.NewNop())
	require.NoError(t, err)
	return e
}

func staticOracle(response string) Oracle {
	return OracleFunc(func(context.Context, string) (string, error) {
		return response, nil
	})
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "json fence", raw: "Here you go:\n```json\n{\"a\":1}\n```\nDone", want: `{"a":1}`},
		{name: "plain fence", raw: "```\n{\"a\":2}\n```", want: `{"a":2}`},
		{name: "json fence wins over plain", raw: "```\n{\"a\":1}\n```\n```json\n{\"b\":2}\n```", want: `{"b":2}`},
		{name: "bare object", raw: `Sure! {"a":{"b":"}"}} trailing {"c":3}`, want: `{"a":{"b":"}"}}`},
		{name: "skips invalid brace run", raw: `{not json} then {"a":1}`, want: `{"a":1}`},
		{name: "no object", raw: "  nothing here  ", want: "nothing here"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.raw))
		})
	}
}

func TestExtractStrictFencedAndUnfenced(t *testing.T) {
	for name, response := range map[string]string{
		"fenced":   "```json\n" + janeJSON + "\n```",
		"unfenced": "Here is the data: " + janeJSON,
	} {
		t.Run(name, func(t *testing.T) {
			ext, err := newTestExtractor(t, staticOracle(response)).ExtractStrict(context.Background(), "Jane Doe resume")
			require.NoError(t, err)

			var skills []string
			require.NoError(t, json.Unmarshal(ext.Skills, &skills))
			assert.Equal(t, []string{"Python", "SQL"}, skills)
			assert.JSONEq(t, `"chess"`, string(ext.Hobbies))
		})
	}
}

func TestExtractStrictAcceptsLooselyTypedIdentity(t *testing.T) {
	response := `{"name":["Jane","Doe"],"email":{"work":"jane@acme.com"},"education":"BSc","degrees":[],` +
		`"experience":null,"skills":["Python","SQL"],"achievements":[],"interests":null,"hobbies":null}`

	ext, err := newTestExtractor(t, staticOracle(response)).ExtractStrict(context.Background(), "Jane Doe resume")
	require.NoError(t, err)

	var skills []string
	require.NoError(t, json.Unmarshal(ext.Skills, &skills))
	assert.Equal(t, []string{"Python", "SQL"}, skills)
	assert.JSONEq(t, `["Jane","Doe"]`, string(ext.Name))

	profile := models.ProfileFromExtraction(ext, "Jane Doe resume")
	assert.Equal(t, []string{"Python", "SQL"}, profile.Skills.Values())
	assert.Equal(t, "Jane, Doe", profile.Name)
	assert.Equal(t, "jane@acme.com", profile.Email)
}

func TestExtractStrictPromptCarriesResume(t *testing.T) {
	var prompt string
	oracle := OracleFunc(func(_ context.Context, p string) (string, error) {
		prompt = p
		return janeJSON, nil
	})

	_, err := newTestExtractor(t, oracle).ExtractStrict(context.Background(), "UNIQUE-RESUME-MARKER")

	require.NoError(t, err)
	assert.Contains(t, prompt, "UNIQUE-RESUME-MARKER")
	for _, field := range models.ExtractionFields {
		assert.Contains(t, prompt, field)
	}
}

func TestExtractStrictFailures(t *testing.T) {
	cases := map[string]Oracle{
		"network":        OracleFunc(func(context.Context, string) (string, error) { return "", errors.New("connection refused") }),
		"not json":       staticOracle("I cannot help with that"),
		"missing fields": staticOracle(`{"name":"Jane"}`),
		"array":          staticOracle(`["Jane"]`),
	}

	for name, oracle := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := newTestExtractor(t, oracle).ExtractStrict(context.Background(), "resume")
			assert.Equal(t, apperror.ExtractionFailure, apperror.KindOf(err))
		})
	}
}

func TestExtractReturnsSentinelOnFailure(t *testing.T) {
	oracle := OracleFunc(func(context.Context, string) (string, error) {
		return "", errors.New("dial tcp: i/o timeout")
	})

	ext, err := newTestExtractor(t, oracle).Extract(context.Background(), "resume")

	require.NoError(t, err)
	assert.True(t, ext.IsSentinel())
}

func TestExtractPropagatesConfigurationAndValidation(t *testing.T) {
	cfgErr := &config.ConfigError{Field: "GEMINI_API_KEY", Message: "missing"}
	e := newTestExtractor(t, Unconfigured{Err: cfgErr})

	_, err := e.Extract(context.Background(), "resume")
	assert.Equal(t, apperror.Configuration, apperror.KindOf(err))

	_, err = e.Extract(context.Background(), "   ")
	assert.Equal(t, apperror.Validation, apperror.KindOf(err))
}

func TestExtractAppliesTimeout(t *testing.T) {
	oracle := OracleFunc(func(ctx context.Context, _ string) (string, error) {
		deadline, ok := ctx.Deadline()
		if !ok || time.Until(deadline) > time.Second {
			return "", errors.New("expected a bounded deadline")
		}
		return janeJSON, nil
	})

	ext, err := newTestExtractor(t, oracle).Extract(context.Background(), "resume")

	require.NoError(t, err)
	assert.False(t, ext.IsSentinel())
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("my resume")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "my resume"))
}
