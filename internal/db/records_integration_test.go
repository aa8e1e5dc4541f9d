package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end round trip for engineer and job records against a real database.
func TestEngineerAndJobPost_RoundTrip_Integration(t *testing.T) {
	database := setupIntegrationDB(t)
	defer database.Close()

	ctx := context.Background()

	desiredMin := int64(900_000)
	hours := 25
	engineerID, err := database.CreateEngineer(ctx, &Engineer{
		Name:                  "Integration Engineer",
		Email:                 "integration-engineer@example.com",
		DesiredMonthlyMin:     &desiredMin,
		AvailableHoursPerWeek: &hours,
		Skills: []EngineerSkill{
			{SkillID: "go", ProficiencyLevel: 4, YearsExperience: 5},
			{SkillID: "postgres", ProficiencyLevel: 3},
		},
	})
	require.NoError(t, err)

	engineer, err := database.GetEngineer(ctx, engineerID)
	require.NoError(t, err)
	require.NotNil(t, engineer)
	assert.Equal(t, "Integration Engineer", engineer.Name)
	assert.Len(t, engineer.Skills, 2)
	require.NotNil(t, engineer.DesiredMonthlyMin)
	assert.Equal(t, desiredMin, *engineer.DesiredMonthlyMin)

	// Skill replace is all-or-nothing; the old set must not survive.
	err = database.ReplaceEngineerSkills(ctx, engineerID, []EngineerSkill{
		{SkillID: "go", ProficiencyLevel: 5, YearsExperience: 6},
	})
	require.NoError(t, err)

	engineer, err = database.GetEngineer(ctx, engineerID)
	require.NoError(t, err)
	require.Len(t, engineer.Skills, 1)
	assert.Equal(t, 5, engineer.Skills[0].ProficiencyLevel)

	budgetMax := int64(1_200_000)
	jobID, err := database.CreateJobPost(ctx, &JobPost{
		CompanyName: "Integration Co",
		Title:       "Backend Engineer",
		BudgetMax:   &budgetMax,
		RemoteOK:    true,
		Requirements: []JobSkillRequirement{
			{SkillID: "go", Weight: 2.0},
		},
	})
	require.NoError(t, err)

	job, err := database.GetJobPost(ctx, jobID)
	require.NoError(t, err)
	require.NotNil(t, job)
	// Status defaults to open when the caller leaves it empty.
	assert.Equal(t, JobStatusOpen, job.Status)
	require.Len(t, job.Requirements, 1)
	assert.Equal(t, 2.0, job.Requirements[0].Weight)

	appID, err := database.CreateApplication(ctx, &Application{
		EngineerID:     engineerID,
		JobID:          jobID,
		Message:        "integration round trip",
		MatchScore:     87,
		ScoreBreakdown: map[string]float64{"skill_overlap": 1.0, "budget_fit": 1.0, "availability_fit": 1.0, "remote_fit": 1.0},
	})
	require.NoError(t, err)

	app, err := database.GetApplication(ctx, appID)
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, 87, app.MatchScore)
	assert.Equal(t, 1.0, app.ScoreBreakdown["skill_overlap"])
}
