package models

import (
	"strings"
	"time"
)

// Role separates job seekers from employers.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

// ParseRole defaults an empty role to jobseeker.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case "", RoleJobSeeker:
		return RoleJobSeeker, true
	case RoleEmployer:
		return RoleEmployer, true
	default:
		return "", false
	}
}

// Auth providers
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// RecommendationFrequency controls how often job recommendations are sent.
type RecommendationFrequency string

const (
	FrequencyDaily   RecommendationFrequency = "daily"
	FrequencyWeekly  RecommendationFrequency = "weekly"
	FrequencyMonthly RecommendationFrequency = "monthly"
)

// Valid reports whether f is a known frequency.
func (f RecommendationFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// NotificationPreferences are per-account notification switches
// @Description Notification preferences
type NotificationPreferences struct {
	JobRecommendations      bool                    `json:"jobRecommendations" firestore:"jobRecommendations" example:"true"`
	RecommendationFrequency RecommendationFrequency `json:"recommendationFrequency" firestore:"recommendationFrequency" example:"weekly"`
	ApplicationUpdates      bool                    `json:"applicationUpdates" firestore:"applicationUpdates" example:"true"`
	SecurityAlerts          bool                    `json:"securityAlerts" firestore:"securityAlerts" example:"true"`
	MarketingEmails         bool                    `json:"marketingEmails" firestore:"marketingEmails" example:"false"`
}

// DefaultNotificationPreferences returns the preferences of a new account.
func DefaultNotificationPreferences() NotificationPreferences {
	return NotificationPreferences{
		JobRecommendations:      true,
		RecommendationFrequency: FrequencyWeekly,
		ApplicationUpdates:      true,
		SecurityAlerts:          true,
		MarketingEmails:         false,
	}
}

// Account represents a login identity
// @Description User account information
type Account struct {
	ID                      string                  `json:"id" firestore:"-" example:"8d6c0f7e-2b1a-4c3d-9e8f-7a6b5c4d3e2f"`
	Email                   string                  `json:"email" firestore:"email" example:"user@example.com"`
	Password                string                  `json:"-" firestore:"password"` // Hashed password, never sent to client
	Role                    Role                    `json:"role" firestore:"role" example:"jobseeker"`
	Provider                string                  `json:"provider" firestore:"provider" example:"email"` // "email" or "google"
	GoogleID                string                  `json:"-" firestore:"googleId,omitempty"`
	JobSeekerID             *string                 `json:"jobSeekerId" firestore:"jobSeekerId"`
	NotificationPreferences NotificationPreferences `json:"notificationPreferences" firestore:"notificationPreferences"`
	CreatedAt               time.Time               `json:"createdAt" firestore:"createdAt"`
	UpdatedAt               time.Time               `json:"updatedAt" firestore:"updatedAt"`
}

// NormalizeEmail lower-cases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterRequest represents registration request
// @Description User registration request
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email" example:"user@example.com"`
	Password    string `json:"password" binding:"required,min=6" example:"password123"`
	Role        string `json:"role,omitempty" example:"jobseeker"`
	JobSeekerID string `json:"jobSeekerId,omitempty" example:"3f2b8c1e-4a57-4d0e-9a53-6f1d2f0c7b11"`
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleAuthRequest represents Google SSO authentication request
// @Description Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required" example:"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Role    string `json:"role,omitempty" example:"jobseeker"`
}

// AuthResponse represents authentication response
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token       string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User        *Account `json:"user"`
	JobSeekerID string   `json:"jobSeekerId,omitempty"`
	Message     string   `json:"message,omitempty" example:"Login successful"`
}

// ProfileResponse represents account profile response
// @Description Account profile response
type ProfileResponse struct {
	User    *Account `json:"user"`
	Message string   `json:"message,omitempty"`
}

// NotificationPreferencesRequest is a partial preferences update
// @Description Notification preferences update
type NotificationPreferencesRequest struct {
	JobRecommendations      *bool   `json:"jobRecommendations,omitempty"`
	RecommendationFrequency *string `json:"recommendationFrequency,omitempty" example:"daily"`
	ApplicationUpdates      *bool   `json:"applicationUpdates,omitempty"`
	SecurityAlerts          *bool   `json:"securityAlerts,omitempty"`
	MarketingEmails         *bool   `json:"marketingEmails,omitempty"`
}

// Apply merges the request into prefs. It reports false when the frequency
// is not a known value.
func (r NotificationPreferencesRequest) Apply(prefs NotificationPreferences) (NotificationPreferences, bool) {
	if r.JobRecommendations != nil {
		prefs.JobRecommendations = *r.JobRecommendations
	}
	if r.RecommendationFrequency != nil {
		f := RecommendationFrequency(strings.ToLower(*r.RecommendationFrequency))
		if !f.Valid() {
			return prefs, false
		}
		prefs.RecommendationFrequency = f
	}
	if r.ApplicationUpdates != nil {
		prefs.ApplicationUpdates = *r.ApplicationUpdates
	}
	if r.SecurityAlerts != nil {
		prefs.SecurityAlerts = *r.SecurityAlerts
	}
	if r.MarketingEmails != nil {
		prefs.MarketingEmails = *r.MarketingEmails
	}
	return prefs, true
}

// NotificationPreferencesResponse wraps an account's preferences
// @Description Notification preferences response
type NotificationPreferencesResponse struct {
	Message                 string                  `json:"message,omitempty"`
	NotificationPreferences NotificationPreferences `json:"notificationPreferences"`
}
