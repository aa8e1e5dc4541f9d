package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds the batch scorer when the caller passes 0.
const defaultConcurrency = 8

// RankedJob pairs a job with the candidate's score against it.
type RankedJob struct {
	Job    JobProfile `json:"job"`
	Result MatchScore `json:"result"`
}

// ScoreAgainst scores one candidate against every job in jobs and returns the
// results sorted by score, highest first. Jobs are scored concurrently with
// at most concurrency workers. The first scoring error cancels the batch.
func ScoreAgainst(ctx context.Context, candidate CandidateProfile, jobs []JobProfile, weights FactorWeights, concurrency int) ([]RankedJob, error) {
	if len(jobs) == 0 {
		return nil, nil
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	ranked := make([]RankedJob, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := ComputeMatchScore(candidate, job, weights)
			if err != nil {
				return err
			}
			ranked[i] = RankedJob{Job: job, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.Score > ranked[j].Result.Score
	})
	return ranked, nil
}
