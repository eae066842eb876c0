package tools

import (
	"context"
	"encoding/json"

	"github.com/jumptake/backend/matching"
)

// ScoreSkillsTool counts the candidate skills a job asks for.
type ScoreSkillsTool struct{}

// NewScoreSkillsTool creates a new skill scoring tool
func NewScoreSkillsTool() *ScoreSkillsTool {
	return &ScoreSkillsTool{}
}

func (t *ScoreSkillsTool) Name() string {
	return "score_skills"
}

func (t *ScoreSkillsTool) Description() string {
	return `Score a candidate against a job by counting the candidate skills that appear in the job's skills.
Matching is exact after trimming and lower-casing. Duplicate candidate skills count once.`
}

func (t *ScoreSkillsTool) InputSchema() map[string]interface{} {
	list := func(desc string) map[string]interface{} {
		return map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": desc,
		}
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"candidate_skills": list("Skills of the candidate"),
			"job_skills":       list("Skills required by the job"),
		},
		"required": []string{"candidate_skills", "job_skills"},
	}
}

// ScoreSkillsInput represents the input for skill scoring
type ScoreSkillsInput struct {
	CandidateSkills []string `json:"candidate_skills"`
	JobSkills       []string `json:"job_skills"`
}

// ScoreSkillsOutput is the tool result payload.
type ScoreSkillsOutput struct {
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
}

func (t *ScoreSkillsTool) Execute(_ context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ScoreSkillsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return Failure("invalid input: %v", err)
	}

	matched := matching.MatchedSkills(in.CandidateSkills, in.JobSkills)
	return Success(ScoreSkillsOutput{Score: len(matched), MatchedSkills: matched})
}
