package db

import (
	"time"

	"github.com/google/uuid"
)

// Engineer represents an engineer profile row joined with its skills
type Engineer struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	Email                 string          `json:"email"`
	DesiredMonthlyMin     *int64          `json:"desired_monthly_min,omitempty"`
	AvailableHoursPerWeek *int            `json:"available_hours_per_week,omitempty"`
	RemoteOnly            bool            `json:"remote_only"`
	Skills                []EngineerSkill `json:"skills"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// EngineerSkill represents one skill row on an engineer profile
type EngineerSkill struct {
	SkillID          string `json:"skill_id"`
	ProficiencyLevel int    `json:"proficiency_level"` // 1-5
	YearsExperience  int    `json:"years_experience,omitempty"`
}

// JobPost represents a job post row joined with its skill requirements
type JobPost struct {
	ID           uuid.UUID             `json:"id"`
	CompanyName  string                `json:"company_name"`
	Title        string                `json:"title"`
	Status       string                `json:"status"`
	BudgetMin    *int64                `json:"budget_min,omitempty"`
	BudgetMax    *int64                `json:"budget_max,omitempty"`
	HoursMin     *int                  `json:"hours_min,omitempty"`
	HoursMax     *int                  `json:"hours_max,omitempty"`
	RemoteOK     bool                  `json:"remote_ok"`
	Requirements []JobSkillRequirement `json:"requirements"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// JobSkillRequirement represents one required skill row on a job post
type JobSkillRequirement struct {
	SkillID string  `json:"skill_id"`
	Weight  float64 `json:"weight"`
}

// Application represents an engineer-initiated application record. The match
// score and breakdown are written once at creation and never recomputed.
type Application struct {
	ID             uuid.UUID          `json:"id"`
	EngineerID     uuid.UUID          `json:"engineer_id"`
	JobID          uuid.UUID          `json:"job_id"`
	Message        string             `json:"message,omitempty"`
	MatchScore     int                `json:"match_score"`
	ScoreBreakdown map[string]float64 `json:"score_breakdown"`
	CreatedAt      time.Time          `json:"created_at"`
}

// Scout represents a company-initiated scout record, scored the same way as
// an application
type Scout struct {
	ID             uuid.UUID          `json:"id"`
	JobID          uuid.UUID          `json:"job_id"`
	EngineerID     uuid.UUID          `json:"engineer_id"`
	Message        string             `json:"message,omitempty"`
	MatchScore     int                `json:"match_score"`
	ScoreBreakdown map[string]float64 `json:"score_breakdown"`
	CreatedAt      time.Time          `json:"created_at"`
}

// Job post status values
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)
