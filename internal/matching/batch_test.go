package matching

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAgainst_RanksByScoreDescending(t *testing.T) {
	candidate := testCandidate()
	candidate.Skills = []CandidateSkill{{SkillID: "go", Level: 5}}

	perfect := testJob()
	perfect.Requirements = []SkillRequirement{{SkillID: "go", Weight: 1}}

	partial := testJob()
	partial.Requirements = []SkillRequirement{
		{SkillID: "go", Weight: 1},
		{SkillID: "rust", Weight: 1},
	}

	miss := testJob()
	miss.Requirements = []SkillRequirement{{SkillID: "rust", Weight: 1}}

	ranked, err := ScoreAgainst(context.Background(), candidate, []JobProfile{miss, perfect, partial}, nil, 2)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, perfect.ID, ranked[0].Job.ID)
	assert.Equal(t, partial.ID, ranked[1].Job.ID)
	assert.Equal(t, miss.ID, ranked[2].Job.ID)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Result.Score, ranked[i].Result.Score)
	}
}

func TestScoreAgainst_EmptyJobList(t *testing.T) {
	ranked, err := ScoreAgainst(context.Background(), testCandidate(), nil, nil, 4)

	require.NoError(t, err)
	assert.Nil(t, ranked)
}

func TestScoreAgainst_PropagatesScoringError(t *testing.T) {
	jobs := []JobProfile{testJob(), {}} // second job has no ID

	_, err := ScoreAgainst(context.Background(), testCandidate(), jobs, nil, 4)

	var missing *ErrMissingReference
	require.ErrorAs(t, err, &missing)
}

func TestScoreAgainst_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := make([]JobProfile, 64)
	for i := range jobs {
		jobs[i] = JobProfile{ID: uuid.New()}
	}

	_, err := ScoreAgainst(ctx, testCandidate(), jobs, nil, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoreAgainst_DefaultConcurrency(t *testing.T) {
	jobs := []JobProfile{testJob(), testJob()}

	ranked, err := ScoreAgainst(context.Background(), testCandidate(), jobs, nil, 0)

	require.NoError(t, err)
	assert.Len(t, ranked, 2)
}
