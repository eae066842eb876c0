package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/jumptake/backend/apperror"
)

// SentinelValue fills every extraction field when a resume could not be parsed.
const SentinelValue = "Could not parse"

// CandidateProfile represents a job seeker built from a parsed resume
// @Description Candidate profile extracted from a resume
type CandidateProfile struct {
	ID           string    `json:"id" firestore:"-" example:"3f2b8c1e-4a57-4d0e-9a53-6f1d2f0c7b11"`
	AccountID    *string   `json:"accountId" firestore:"accountId"`
	Name         string    `json:"name" firestore:"name" example:"Jane Doe"`
	Email        string    `json:"email" firestore:"email" example:"jane@example.com"`
	Education    EntryList `json:"education" firestore:"education" swaggertype:"object"`
	Degrees      TextList  `json:"degrees" firestore:"degrees" swaggertype:"object"`
	Experience   EntryList `json:"experience" firestore:"experience" swaggertype:"object"`
	Skills       TextList  `json:"skills" firestore:"skills" swaggertype:"object"`
	Achievements TextList  `json:"achievements" firestore:"achievements" swaggertype:"object"`
	Interests    TextList  `json:"interests" firestore:"interests" swaggertype:"object"`
	Hobbies      TextList  `json:"hobbies" firestore:"hobbies" swaggertype:"object"`
	ResumeText   string    `json:"resumeText,omitempty" firestore:"resumeText"`
	ResumeURL    string    `json:"resumeUrl,omitempty" firestore:"resumeUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Summary returns a copy without the verbatim resume text, for listings.
func (p *CandidateProfile) Summary() *CandidateProfile {
	cp := *p
	cp.ResumeText = ""
	return &cp
}

// IsLinked reports whether an account owns the profile.
func (p *CandidateProfile) IsLinked() bool {
	return p.AccountID != nil && *p.AccountID != ""
}

// ResumeExtraction is the nine-field object returned by the extraction model.
// Values are kept exactly as returned; coercion into profile fields happens
// when a profile is built.
// @Description Structured resume extraction
type ResumeExtraction struct {
	Name         json.RawMessage `json:"name" swaggertype:"string" example:"Jane Doe"`
	Email        json.RawMessage `json:"email" swaggertype:"string" example:"jane@example.com"`
	Education    json.RawMessage `json:"education" swaggertype:"object"`
	Degrees      json.RawMessage `json:"degrees" swaggertype:"object"`
	Experience   json.RawMessage `json:"experience" swaggertype:"object"`
	Skills       json.RawMessage `json:"skills" swaggertype:"object"`
	Achievements json.RawMessage `json:"achievements" swaggertype:"object"`
	Interests    json.RawMessage `json:"interests" swaggertype:"object"`
	Hobbies      json.RawMessage `json:"hobbies" swaggertype:"object"`
}

// ExtractionFields lists the keys every extraction must carry.
var ExtractionFields = []string{
	"name", "email", "education", "degrees", "experience",
	"skills", "achievements", "interests", "hobbies",
}

// NewSentinelExtraction returns the extraction used when parsing fails.
func NewSentinelExtraction() *ResumeExtraction {
	v := json.RawMessage(`"` + SentinelValue + `"`)
	return &ResumeExtraction{
		Name:         v,
		Email:        v,
		Education:    v,
		Degrees:      v,
		Experience:   v,
		Skills:       v,
		Achievements: v,
		Interests:    v,
		Hobbies:      v,
	}
}

// IsSentinel reports whether every field holds the sentinel value.
func (e *ResumeExtraction) IsSentinel() bool {
	for _, raw := range e.fields() {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s != SentinelValue {
			return false
		}
	}
	return true
}

func (e *ResumeExtraction) fields() []json.RawMessage {
	return []json.RawMessage{
		e.Name, e.Email, e.Education, e.Degrees, e.Experience,
		e.Skills, e.Achievements, e.Interests, e.Hobbies,
	}
}

// ProfileFromExtraction builds an unlinked profile from an extraction.
func ProfileFromExtraction(ext *ResumeExtraction, resumeText string) *CandidateProfile {
	return &CandidateProfile{
		Name:         strings.TrimSpace(coerceText(ext.Name)),
		Email:        strings.TrimSpace(coerceText(ext.Email)),
		Education:    EntryListFromJSON(ext.Education),
		Degrees:      TextListFromJSON(ext.Degrees),
		Experience:   EntryListFromJSON(ext.Experience),
		Skills:       TextListFromJSON(ext.Skills),
		Achievements: TextListFromJSON(ext.Achievements),
		Interests:    TextListFromJSON(ext.Interests),
		Hobbies:      TextListFromJSON(ext.Hobbies),
		ResumeText:   resumeText,
	}
}

// UpdatableProfileFields lists the keys accepted by a profile update.
var UpdatableProfileFields = []string{
	"name", "email", "skills", "interests", "hobbies",
	"education", "experience", "achievements",
}

// ProfileUpdate is a partial update of a candidate profile. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Name         *string
	Email        *string
	Skills       *TextList
	Interests    *TextList
	Hobbies      *TextList
	Achievements *TextList
	Education    *EntryList
	Experience   *EntryList
}

// ParseProfileUpdate decodes an update body. Keys outside
// UpdatableProfileFields are rejected.
func ParseProfileUpdate(body []byte) (ProfileUpdate, error) {
	var update ProfileUpdate

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(body), &raw); err != nil || raw == nil {
		return update, apperror.New(apperror.Validation, "Invalid request body")
	}

	allowed := make(map[string]bool, len(UpdatableProfileFields))
	for _, f := range UpdatableProfileFields {
		allowed[f] = true
	}

	var rejected []string
	for key := range raw {
		if !allowed[key] {
			rejected = append(rejected, key)
		}
	}
	if len(rejected) > 0 {
		sort.Strings(rejected)
		return update, apperror.Newf(apperror.Validation, "field(s) not updatable: %s", strings.Join(rejected, ", "))
	}
	if len(raw) == 0 {
		return update, apperror.New(apperror.Validation, "no updatable fields supplied")
	}

	text := func(key string) *string {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		s := strings.TrimSpace(coerceText(v))
		return &s
	}
	list := func(key string) *TextList {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		t := TextListFromJSON(v)
		return &t
	}
	entries := func(key string) *EntryList {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		l := EntryListFromJSON(v)
		return &l
	}

	update.Name = text("name")
	update.Email = text("email")
	update.Skills = list("skills")
	update.Interests = list("interests")
	update.Hobbies = list("hobbies")
	update.Achievements = list("achievements")
	update.Education = entries("education")
	update.Experience = entries("experience")
	return update, nil
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Skills == nil && u.Interests == nil &&
		u.Hobbies == nil && u.Achievements == nil && u.Education == nil && u.Experience == nil
}

// Apply copies the set fields onto p.
func (u ProfileUpdate) Apply(p *CandidateProfile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Skills != nil {
		p.Skills = *u.Skills
	}
	if u.Interests != nil {
		p.Interests = *u.Interests
	}
	if u.Hobbies != nil {
		p.Hobbies = *u.Hobbies
	}
	if u.Achievements != nil {
		p.Achievements = *u.Achievements
	}
	if u.Education != nil {
		p.Education = *u.Education
	}
	if u.Experience != nil {
		p.Experience = *u.Experience
	}
}
