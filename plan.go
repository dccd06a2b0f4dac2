package trimesh

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MaxLevel is the level normalized to a threshold of 1.
const MaxLevel = 256

// Default plan: coarse levels refine once, dark levels a few times more.
var (
	DefaultLevels = []int{224, 192, 160, 128, 96, 64, 48, 32}
	DefaultCounts = []int{1, 1, 1, 1, 2, 2, 2, 3}
)

// Step refines Repeat times every cell darker than Threshold.
type Step struct {
	Threshold float64
	Repeat    int
}

// RefinementPlan is a coarse-to-fine sequence of refinement steps.
type RefinementPlan []Step

// planFile is the YAML layout accepted by LoadPlan.
type planFile struct {
	Levels []int `yaml:"levels"`
	Counts []int `yaml:"counts"`
}

// NewPlan pairs levels in [1, MaxLevel] with repeat counts.
// Levels are normalized by MaxLevel and must be strictly decreasing.
func NewPlan(levels, counts []int) (RefinementPlan, error) {
	if len(levels) != len(counts) {
		return nil, fmt.Errorf("%w: %d levels but %d counts", ErrConfiguration, len(levels), len(counts))
	}
	plan := make(RefinementPlan, len(levels))
	for i, l := range levels {
		if l <= 0 || l > MaxLevel {
			return nil, fmt.Errorf("%w: level %d at position %d outside [1, %d]", ErrConfiguration, l, i, MaxLevel)
		}
		plan[i] = Step{Threshold: float64(l) / MaxLevel, Repeat: counts[i]}
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

// DefaultPlan returns the plan built from DefaultLevels and DefaultCounts.
func DefaultPlan() RefinementPlan {
	plan, err := NewPlan(DefaultLevels, DefaultCounts)
	if err != nil {
		panic(err)
	}
	return plan
}

// LoadPlan reads a plan from YAML with parallel "levels" and "counts" lists.
func LoadPlan(r io.Reader) (RefinementPlan, error) {
	var f planFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decoding plan: %v", ErrConfiguration, err)
	}
	return NewPlan(f.Levels, f.Counts)
}

// Validate checks thresholds lie in (0, 1], strictly decrease and every step repeats at least once.
func (p RefinementPlan) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty refinement plan", ErrConfiguration)
	}
	for i, s := range p {
		if !(s.Threshold > 0 && s.Threshold <= 1) {
			return fmt.Errorf("%w: threshold %g at step %d outside (0, 1]", ErrConfiguration, s.Threshold, i)
		}
		if s.Repeat <= 0 {
			return fmt.Errorf("%w: repeat count %d at step %d must be positive", ErrConfiguration, s.Repeat, i)
		}
		if i > 0 && s.Threshold >= p[i-1].Threshold {
			return fmt.Errorf("%w: threshold %g at step %d does not decrease from %g", ErrConfiguration, s.Threshold, i, p[i-1].Threshold)
		}
	}
	return nil
}

// Passes returns the total number of refinement passes in the plan.
func (p RefinementPlan) Passes() int {
	var n int
	for _, s := range p {
		n += s.Repeat
	}
	return n
}
