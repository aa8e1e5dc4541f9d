package matching

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

const maxProficiencyLevel = 5

// ErrMissingReference indicates a candidate or job without an ID. This is the
// engine's only failure mode; incomplete optional data degrades to neutral
// sub-scores instead of failing.
type ErrMissingReference struct {
	Field string
}

func (e *ErrMissingReference) Error() string {
	return fmt.Sprintf("missing reference: %s", e.Field)
}

// skillOverlapScore returns the fraction of the job's weighted skill
// requirements satisfied by the candidate, scaled by proficiency.
// A job with no requirements is a full match: nothing was asked for,
// so nothing is unmet.
func skillOverlapScore(candidate CandidateProfile, job JobProfile) float64 {
	bySkill := make(map[string]CandidateSkill, len(candidate.Skills))
	for _, s := range candidate.Skills {
		bySkill[s.SkillID] = s
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	for _, req := range job.Requirements {
		if req.Weight < 0 {
			continue
		}
		totalWeight += req.Weight
		s, ok := bySkill[req.SkillID]
		if !ok {
			continue
		}
		level := s.Level
		if level < 0 {
			level = 0
		}
		if level > maxProficiencyLevel {
			level = maxProficiencyLevel
		}
		matchedWeight += float64(level) / maxProficiencyLevel * req.Weight
	}

	if totalWeight == 0 {
		return 1.0
	}
	return matchedWeight / totalWeight
}

// budgetFitScore compares the candidate's desired minimum monthly amount
// against the job's budget range. Asking for less than offered is never
// penalized; asking above the max degrades linearly with the excess relative
// to the max, floored at 0. Either side missing its constraint is neutral.
func budgetFitScore(candidate CandidateProfile, job JobProfile) float64 {
	if candidate.DesiredMonthlyMin == nil || job.BudgetMax == nil {
		return 1.0
	}
	desired := *candidate.DesiredMonthlyMin
	max := *job.BudgetMax
	if desired <= max {
		return 1.0
	}
	if max <= 0 {
		return 0.0
	}
	fit := 1.0 - float64(desired-max)/float64(max)
	if fit < 0 {
		return 0.0
	}
	return fit
}

// availabilityFitScore compares the candidate's available weekly hours
// against the job's required range. Availability above the max is not
// penalized (the candidate can always work less); below the min it degrades
// proportionally. Either side missing its constraint is neutral.
func availabilityFitScore(candidate CandidateProfile, job JobProfile) float64 {
	if candidate.AvailableHoursPerWeek == nil || job.HoursMin == nil {
		return 1.0
	}
	hours := *candidate.AvailableHoursPerWeek
	min := *job.HoursMin
	if min <= 0 || hours >= min {
		return 1.0
	}
	if hours <= 0 {
		return 0.0
	}
	return float64(hours) / float64(min)
}

// remoteFitScore is binary: the single mismatch is an on-site job against a
// remote-only candidate. Every other combination is a full match.
func remoteFitScore(candidate CandidateProfile, job JobProfile) float64 {
	if !job.RemoteOK && candidate.RemoteOnly {
		return 0.0
	}
	return 1.0
}

// ComputeMatchScore scores a candidate against a job under the given weight
// configuration. Missing weight keys fall back to the documented defaults,
// and the result is invariant to uniformly scaling all weights: the weighted
// sum is divided by the sum of applied weights before scaling to [0, 100].
//
// The computation is pure and side-effect free; identical inputs always
// produce identical output, so callers may safely retry or recompute.
func ComputeMatchScore(candidate CandidateProfile, job JobProfile, weights FactorWeights) (MatchScore, error) {
	if candidate.ID == uuid.Nil {
		return MatchScore{}, &ErrMissingReference{Field: "candidate ID"}
	}
	if job.ID == uuid.Nil {
		return MatchScore{}, &ErrMissingReference{Field: "job ID"}
	}

	breakdown := Breakdown{
		SkillOverlap:    skillOverlapScore(candidate, job),
		BudgetFit:       budgetFitScore(candidate, job),
		AvailabilityFit: availabilityFitScore(candidate, job),
		RemoteFit:       remoteFitScore(candidate, job),
	}

	resolved := weights.Resolve()
	weighted := resolved[FactorSkillOverlap]*breakdown.SkillOverlap +
		resolved[FactorBudgetFit]*breakdown.BudgetFit +
		resolved[FactorAvailabilityFit]*breakdown.AvailabilityFit +
		resolved[FactorRemoteFit]*breakdown.RemoteFit

	totalWeight := 0.0
	for _, factor := range Factors() {
		totalWeight += resolved[factor]
	}

	// All-zero weights give nothing to combine; score 0 rather than divide
	// by zero. The breakdown is still reported.
	combined := 0.0
	if totalWeight > 0 {
		combined = weighted / totalWeight
	}
	if combined < 0 {
		combined = 0
	}
	if combined > 1 {
		combined = 1
	}

	return MatchScore{
		Score:     int(math.Round(combined * 100)),
		Breakdown: breakdown,
	}, nil
}
