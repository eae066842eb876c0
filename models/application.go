package models

import (
	"strings"
	"time"
)

// ApplicationStatus tracks an application through review.
type ApplicationStatus string

const (
	StatusSubmitted   ApplicationStatus = "Submitted"
	StatusUnderReview ApplicationStatus = "Under Review"
	StatusAccepted    ApplicationStatus = "Accepted"
	StatusRejected    ApplicationStatus = "Rejected"
	StatusWithdrawn   ApplicationStatus = "Withdrawn"
)

var applicationStatuses = []ApplicationStatus{
	StatusSubmitted, StatusUnderReview, StatusAccepted, StatusRejected, StatusWithdrawn,
}

// ParseApplicationStatus matches a status case-insensitively.
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	raw = strings.TrimSpace(raw)
	for _, s := range applicationStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s, true
		}
	}
	return "", false
}

// Application is an account's application to a job. There is at most one
// per (job, account) pair.
// @Description Job application
type Application struct {
	ID        string            `json:"id" firestore:"-"`
	JobID     string            `json:"jobId" firestore:"jobId"`
	AccountID string            `json:"userId" firestore:"accountId"`
	Message   string            `json:"message,omitempty" firestore:"message"`
	Status    ApplicationStatus `json:"status" firestore:"status" example:"Submitted"`
	CreatedAt time.Time         `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt" firestore:"updatedAt"`
}

// ApplicationID derives the deterministic id of the (job, account) pair.
func ApplicationID(jobID, accountID string) string {
	return jobID + "_" + accountID
}

// ApplicationRequest is the body of a job application
// @Description Job application request
type ApplicationRequest struct {
	JobID   string `json:"jobId" binding:"required"`
	Message string `json:"message,omitempty"`
}

// ApplicationStatusRequest changes an application's status
// @Description Application status update
type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Under Review"`
}
