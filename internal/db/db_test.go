package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJobStatusConstants(t *testing.T) {
	assert.Equal(t, "open", JobStatusOpen)
	assert.Equal(t, "closed", JobStatusClosed)
}

func TestEngineerType(t *testing.T) {
	hours := 30
	e := Engineer{
		Name:                  "Test Engineer",
		Email:                 "engineer@example.com",
		AvailableHoursPerWeek: &hours,
		RemoteOnly:            true,
		Skills: []EngineerSkill{
			{SkillID: "go", ProficiencyLevel: 4, YearsExperience: 3},
		},
	}

	assert.Equal(t, "Test Engineer", e.Name)
	assert.Nil(t, e.DesiredMonthlyMin)
	assert.Equal(t, 30, *e.AvailableHoursPerWeek)
	assert.Len(t, e.Skills, 1)
}

func TestApplicationType(t *testing.T) {
	a := Application{
		EngineerID: uuid.New(),
		JobID:      uuid.New(),
		MatchScore: 68,
		ScoreBreakdown: map[string]float64{
			"skill_overlap": 0.4,
			"budget_fit":    0.875,
		},
	}

	assert.Equal(t, 68, a.MatchScore)
	assert.InDelta(t, 0.4, a.ScoreBreakdown["skill_overlap"], 1e-9)
}
