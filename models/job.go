package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jumptake/backend/apperror"
)

// FlexibleStringSlice can unmarshal from either a comma separated string or []string
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = compact(arr)
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = splitComma(str)
		if *f == nil {
			*f = []string{}
		}
		return nil
	}

	// If both fail, return empty slice
	*f = []string{}
	return nil
}

// JobType is the employment type of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
	JobTypeRemote     JobType = "Remote"
)

// ParseJobType normalizes various job type strings to standard values. An
// empty value defaults to Full-time.
func ParseJobType(raw string) (JobType, error) {
	switch strings.ToLower(strings.NewReplacer("_", "-", " ", "-").Replace(strings.TrimSpace(raw))) {
	case "", "full-time", "fulltime":
		return JobTypeFullTime, nil
	case "part-time", "parttime":
		return JobTypePartTime, nil
	case "contract", "contractor":
		return JobTypeContract, nil
	case "internship", "intern":
		return JobTypeInternship, nil
	case "remote", "wfh":
		return JobTypeRemote, nil
	default:
		return "", apperror.Newf(apperror.Validation, "invalid job type %q", raw)
	}
}

// Job represents a job posting
// @Description Job posting
type Job struct {
	ID               string    `json:"id" firestore:"-" example:"6a1f0d3c-9b2e-4f7a-8c5d-1e2f3a4b5c6d"`
	Title            string    `json:"title" firestore:"title" example:"Backend Engineer"`
	Description      string    `json:"description" firestore:"description"`
	CompanyID        string    `json:"companyId" firestore:"companyId"`
	Location         string    `json:"location" firestore:"location" example:"Jakarta"`
	Salary           string    `json:"salary,omitempty" firestore:"salary" example:"IDR 20-30jt"`
	JobType          JobType   `json:"jobType" firestore:"jobType" example:"Full-time"`
	Requirements     []string  `json:"requirements" firestore:"requirements"`
	Responsibilities []string  `json:"responsibilities" firestore:"responsibilities"`
	Skills           []string  `json:"skills" firestore:"skills"`
	Active           bool      `json:"active" firestore:"active" example:"true"`
	CreatedAt        time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// JobRequest is the body of a job creation
// @Description Job creation request
type JobRequest struct {
	Title            string              `json:"title" binding:"required" example:"Backend Engineer"`
	Description      string              `json:"description" binding:"required"`
	CompanyID        string              `json:"companyId" binding:"required"`
	Location         string              `json:"location" binding:"required" example:"Jakarta"`
	Salary           string              `json:"salary,omitempty"`
	JobType          string              `json:"jobType,omitempty" example:"Full-time"`
	Requirements     FlexibleStringSlice `json:"requirements,omitempty" swaggertype:"array,string"`
	Responsibilities FlexibleStringSlice `json:"responsibilities,omitempty" swaggertype:"array,string"`
	Skills           FlexibleStringSlice `json:"skills,omitempty" swaggertype:"array,string"`
}

// ToJob validates the request and builds an active job.
func (r JobRequest) ToJob() (*Job, error) {
	jobType, err := ParseJobType(r.JobType)
	if err != nil {
		return nil, err
	}
	return &Job{
		Title:            strings.TrimSpace(r.Title),
		Description:      r.Description,
		CompanyID:        r.CompanyID,
		Location:         r.Location,
		Salary:           r.Salary,
		JobType:          jobType,
		Requirements:     nonNil(r.Requirements),
		Responsibilities: nonNil(r.Responsibilities),
		Skills:           nonNil(r.Skills),
		Active:           true,
	}, nil
}

// JobUpdate is a partial job update. Nil fields are left untouched.
// @Description Job update request
type JobUpdate struct {
	Title            *string              `json:"title,omitempty"`
	Description      *string              `json:"description,omitempty"`
	Location         *string              `json:"location,omitempty"`
	Salary           *string              `json:"salary,omitempty"`
	JobType          *string              `json:"jobType,omitempty"`
	Requirements     *FlexibleStringSlice `json:"requirements,omitempty" swaggertype:"array,string"`
	Responsibilities *FlexibleStringSlice `json:"responsibilities,omitempty" swaggertype:"array,string"`
	Skills           *FlexibleStringSlice `json:"skills,omitempty" swaggertype:"array,string"`
	Active           *bool                `json:"active,omitempty"`
}

// Apply copies the set fields onto job.
func (u JobUpdate) Apply(job *Job) error {
	if u.JobType != nil {
		jobType, err := ParseJobType(*u.JobType)
		if err != nil {
			return err
		}
		job.JobType = jobType
	}
	if u.Title != nil {
		job.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		job.Description = *u.Description
	}
	if u.Location != nil {
		job.Location = *u.Location
	}
	if u.Salary != nil {
		job.Salary = *u.Salary
	}
	if u.Requirements != nil {
		job.Requirements = nonNil(*u.Requirements)
	}
	if u.Responsibilities != nil {
		job.Responsibilities = nonNil(*u.Responsibilities)
	}
	if u.Skills != nil {
		job.Skills = nonNil(*u.Skills)
	}
	if u.Active != nil {
		job.Active = *u.Active
	}
	return nil
}

// RankedJob is a Job with match scoring
type RankedJob struct {
	Job
	MatchScore    int      `json:"matchScore" example:"2"`
	MatchedSkills []string `json:"matchedSkills"`
}

// RankedCandidate is a candidate profile with match scoring
type RankedCandidate struct {
	Profile       *CandidateProfile `json:"jobSeeker"`
	MatchScore    int               `json:"matchScore" example:"2"`
	MatchedSkills []string          `json:"matchedSkills"`
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
