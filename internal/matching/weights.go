package matching

import (
	"fmt"
	"math"
)

// Factor keys recognized by the engine.
const (
	FactorSkillOverlap    = "skill_overlap"
	FactorBudgetFit       = "budget_fit"
	FactorAvailabilityFit = "availability_fit"
	FactorRemoteFit       = "remote_fit"
)

// Default weight for each factor, applied when no stored value exists.
const (
	defaultSkillOverlapWeight    = 1.5
	defaultBudgetFitWeight       = 1.0
	defaultAvailabilityFitWeight = 1.0
	defaultRemoteFitWeight       = 0.5
)

// FactorWeights maps a factor key to its non-negative weight. A FactorWeights
// value may be partial; Resolve fills in defaults for missing keys.
type FactorWeights map[string]float64

// Factors lists the recognized factor keys in display order.
func Factors() []string {
	return []string{FactorSkillOverlap, FactorBudgetFit, FactorAvailabilityFit, FactorRemoteFit}
}

// DefaultWeights returns the documented default weight for every factor.
func DefaultWeights() FactorWeights {
	return FactorWeights{
		FactorSkillOverlap:    defaultSkillOverlapWeight,
		FactorBudgetFit:       defaultBudgetFitWeight,
		FactorAvailabilityFit: defaultAvailabilityFitWeight,
		FactorRemoteFit:       defaultRemoteFitWeight,
	}
}

// Resolve returns a complete configuration: every recognized factor gets its
// value from w when present, the documented default otherwise. Unknown keys
// in w are dropped.
func (w FactorWeights) Resolve() FactorWeights {
	resolved := DefaultWeights()
	for _, factor := range Factors() {
		if v, ok := w[factor]; ok {
			resolved[factor] = v
		}
	}
	return resolved
}

// ErrInvalidWeight indicates a weight value that is negative or not finite.
type ErrInvalidWeight struct {
	Factor string
	Value  float64
}

func (e *ErrInvalidWeight) Error() string {
	return fmt.Sprintf("invalid weight for %s: %v (must be a finite number >= 0)", e.Factor, e.Value)
}

// Validate checks every recognized entry in w for a finite, non-negative
// value. Unknown keys are ignored, matching the engine's read behavior.
func (w FactorWeights) Validate() error {
	for _, factor := range Factors() {
		v, ok := w[factor]
		if !ok {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return &ErrInvalidWeight{Factor: factor, Value: v}
		}
	}
	return nil
}
