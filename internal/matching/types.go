// Package matching computes compatibility scores between engineer profiles and
// job posts from four weighted factors: skill overlap, budget fit,
// availability fit, and remote-work fit.
package matching

import (
	"github.com/google/uuid"
)

// CandidateSkill is one skill on an engineer profile.
type CandidateSkill struct {
	SkillID         string `json:"skill_id"`
	Level           int    `json:"level"` // proficiency, 1-5
	YearsExperience int    `json:"years_experience,omitempty"`
}

// CandidateProfile holds the engineer-side inputs to scoring. All optional
// fields are pointers; nil means the engineer left the field unset, which
// never causes an error (the affected factor falls back to a neutral score).
type CandidateProfile struct {
	ID                    uuid.UUID        `json:"id"`
	Skills                []CandidateSkill `json:"skills"`
	DesiredMonthlyMin     *int64           `json:"desired_monthly_min,omitempty"` // smallest currency unit
	AvailableHoursPerWeek *int             `json:"available_hours_per_week,omitempty"`
	RemoteOnly            bool             `json:"remote_only"`
}

// SkillRequirement is one required or desired skill on a job post, with its
// relative importance to that job.
type SkillRequirement struct {
	SkillID string  `json:"skill_id"`
	Weight  float64 `json:"weight"` // >= 0
}

// JobProfile holds the job-side inputs to scoring.
type JobProfile struct {
	ID           uuid.UUID          `json:"id"`
	Requirements []SkillRequirement `json:"requirements"`
	BudgetMin    *int64             `json:"budget_min,omitempty"` // smallest currency unit
	BudgetMax    *int64             `json:"budget_max,omitempty"`
	HoursMin     *int               `json:"hours_min,omitempty"` // required hours per week
	HoursMax     *int               `json:"hours_max,omitempty"`
	RemoteOK     bool               `json:"remote_ok"`
}

// Breakdown carries the four unweighted sub-scores, each in [0, 1].
type Breakdown struct {
	SkillOverlap    float64 `json:"skill_overlap"`
	BudgetFit       float64 `json:"budget_fit"`
	AvailabilityFit float64 `json:"availability_fit"`
	RemoteFit       float64 `json:"remote_fit"`
}

// MatchScore is the engine output: an integer score in [0, 100] plus the
// per-factor breakdown it was combined from.
type MatchScore struct {
	Score     int       `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}
