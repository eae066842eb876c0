package tools

import (
	"context"
	"encoding/json"

	"github.com/jumptake/backend/models"
)

// JobRecommender is satisfied by *matching.Recommender.
type JobRecommender interface {
	RecommendJobs(ctx context.Context, profileID string, limit int) ([]models.RankedJob, error)
}

// RecommendJobsTool ranks active jobs for a stored candidate profile.
type RecommendJobsTool struct {
	recommender JobRecommender
}

// NewRecommendJobsTool creates a new recommendation tool
func NewRecommendJobsTool(recommender JobRecommender) *RecommendJobsTool {
	return &RecommendJobsTool{recommender: recommender}
}

func (t *RecommendJobsTool) Name() string {
	return "recommend_jobs"
}

func (t *RecommendJobsTool) Description() string {
	return `Recommend active jobs for a job seeker profile, ranked by the number of matching skills.
Jobs with no matching skill are left out.`
}

func (t *RecommendJobsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"job_seeker_id": map[string]interface{}{
				"type":        "string",
				"description": "Id of the stored job seeker profile",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of jobs to return (0 for all)",
				"default":     10,
			},
		},
		"required": []string{"job_seeker_id"},
	}
}

// RecommendJobsInput represents the input for job recommendation
type RecommendJobsInput struct {
	JobSeekerID string `json:"job_seeker_id"`
	Limit       int    `json:"limit"`
}

func (t *RecommendJobsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	in := RecommendJobsInput{Limit: 10}
	if err := json.Unmarshal(input, &in); err != nil {
		return Failure("invalid input: %v", err)
	}
	if in.JobSeekerID == "" {
		return Failure("job_seeker_id is required")
	}

	ranked, err := t.recommender.RecommendJobs(ctx, in.JobSeekerID, in.Limit)
	if err != nil {
		return Failure("recommendation failed: %v", err)
	}

	return Success(models.RecommendationsResponse{Results: ranked, TotalResults: len(ranked)})
}
