package matching

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/jumptake/backend/models"
	"github.com/jumptake/backend/storage"
)

// Recommender ranks jobs for a candidate and candidates for a job.
type Recommender struct {
	profiles storage.ProfileStore
	jobs     storage.JobStore
	maxLimit int
	logger   *zap.Logger
}

// NewRecommender creates a recommender. maxLimit caps every result list
// when positive.
func NewRecommender(profiles storage.ProfileStore, jobs storage.JobStore, maxLimit int, log *zap.Logger) *Recommender {
	return &Recommender{
		profiles: profiles,
		jobs:     jobs,
		maxLimit: maxLimit,
		logger:   log.Named("matching"),
	}
}

// RecommendJobs scores every active job against the candidate's skills.
// Jobs without a matching skill are dropped; ties keep store order.
func (r *Recommender) RecommendJobs(ctx context.Context, profileID string, limit int) ([]models.RankedJob, error) {
	profile, err := r.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	skills := CandidateSkills(profile.Skills)
	if len(skills) == 0 {
		return []models.RankedJob{}, nil
	}

	jobs, err := r.jobs.ListActiveJobs(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]models.RankedJob, 0, len(jobs))
	for _, job := range jobs {
		matched := MatchedSkills(skills, job.Skills)
		if len(matched) == 0 {
			continue
		}
		ranked = append(ranked, models.RankedJob{Job: *job, MatchScore: len(matched), MatchedSkills: matched})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	ranked = ranked[:r.cut(len(ranked), limit)]

	r.logger.Debug("jobs recommended",
		zap.String("job_seeker_id", profileID),
		zap.Int("candidate_skills", len(skills)),
		zap.Int("active_jobs", len(jobs)),
		zap.Int("results", len(ranked)),
	)
	return ranked, nil
}

// RankCandidates scores every profile's skills against the job's skills.
func (r *Recommender) RankCandidates(ctx context.Context, jobID string, limit int) ([]models.RankedCandidate, error) {
	job, err := r.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if len(job.Skills) == 0 {
		return []models.RankedCandidate{}, nil
	}

	profiles, err := r.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]models.RankedCandidate, 0, len(profiles))
	for _, p := range profiles {
		matched := MatchedSkills(CandidateSkills(p.Skills), job.Skills)
		if len(matched) == 0 {
			continue
		}
		ranked = append(ranked, models.RankedCandidate{Profile: p.Summary(), MatchScore: len(matched), MatchedSkills: matched})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	return ranked[:r.cut(len(ranked), limit)], nil
}

// cut returns how many of n results to keep.
func (r *Recommender) cut(n, limit int) int {
	if r.maxLimit > 0 && (limit <= 0 || limit > r.maxLimit) {
		limit = r.maxLimit
	}
	if limit > 0 && limit < n {
		return limit
	}
	return n
}
