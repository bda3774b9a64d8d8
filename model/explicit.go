package model

import (
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Explicit is a dense, slice-backed Model + Rewards pair. It is built via
// Builder, mirroring the teacher's core.Graph/builder split: mutation
// happens behind a write lock while the Builder is live, and the frozen
// Explicit returned by Build is read-only and safe for concurrent use
// without further locking (spec §5: a built quotient's collaborators are
// immutable).
type Explicit struct {
	choices     [][][]Successor // choices[s][c] = successor distribution
	stateRew    []float64
	transRew    [][]float64 // transRew[s][c]
	reachable   *BitSet
	hasTransRew bool
}

var _ Model = (*Explicit)(nil)
var _ Rewards = (*Explicit)(nil)

// NumStates implements Model.
func (e *Explicit) NumStates() int { return len(e.choices) }

// NumChoices implements Model.
func (e *Explicit) NumChoices(s int) int { return len(e.choices[s]) }

// Successors implements Model.
func (e *Explicit) Successors(s, c int) []Successor { return e.choices[s][c] }

// AllSuccessorsMatch implements Model.
func (e *Explicit) AllSuccessorsMatch(s, c int, pred func(target int) bool) bool {
	for _, succ := range e.choices[s][c] {
		if !pred(succ.Target) {
			return false
		}
	}

	return true
}

// SomeSuccessorInSet implements Model.
func (e *Explicit) SomeSuccessorInSet(s, c int, set StateSet) bool {
	for _, succ := range e.choices[s][c] {
		if set.Contains(succ.Target) {
			return true
		}
	}

	return false
}

// ReachableStates implements Model.
func (e *Explicit) ReachableStates() StateSet { return e.reachable }

// StateReward implements Rewards.
func (e *Explicit) StateReward(s int) float64 { return e.stateRew[s] }

// TransitionReward implements Rewards.
func (e *Explicit) TransitionReward(s, c int) float64 { return e.transRew[s][c] }

// HasTransitionRewards implements Rewards.
func (e *Explicit) HasTransitionRewards() bool { return e.hasTransRew }

// Builder assembles an Explicit MDP one choice at a time. Not safe for
// concurrent use by multiple goroutines without external synchronization
// beyond what mu provides for the read side; intended usage is
// single-goroutine construction followed by Build.
type Builder struct {
	mu          sync.RWMutex
	choices     [][][]Successor
	stateRew    []float64
	transRew    [][]float64
	initialSet  bool
	initial     int
	hasTransRew bool
}

// NewBuilder returns a Builder for an MDP with n states, all initially
// choiceless (traps) with zero reward.
func NewBuilder(n int) *Builder {
	return &Builder{
		choices:  make([][][]Successor, n),
		stateRew: make([]float64, n),
		transRew: make([][]float64, n),
	}
}

// BuilderOption configures Build's derived fields.
type BuilderOption func(*Builder)

// WithInitialState records s as the MDP's initial state so Build can
// compute ReachableStates via forward BFS from it. Without this option,
// every state is considered reachable (the caller is expected to restrict
// explicitly where that matters).
func WithInitialState(s int) BuilderOption {
	return func(b *Builder) {
		b.initialSet = true
		b.initial = s
	}
}

// AddChoice appends a new choice at state s with the given successor
// distribution and returns its choice index. Successor probabilities are
// not validated here; validation happens once in Build so partially built
// graphs never panic mid-construction.
func (b *Builder) AddChoice(s int, successors ...Successor) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := len(b.choices[s])
	b.choices[s] = append(b.choices[s], successors)
	b.transRew[s] = append(b.transRew[s], 0)

	return c
}

// SetStateReward sets stateRew(s).
func (b *Builder) SetStateReward(s int, r float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stateRew[s] = r
}

// SetTransitionReward sets transRew(s, c).
func (b *Builder) SetTransitionReward(s, c int, r float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.transRew[s][c] = r
	if r > 0 {
		b.hasTransRew = true
	}
}

// Build validates and freezes the Builder into an Explicit. Returns
// ErrStructuralInconsistency (wrapped with state/choice context) for any
// successor probability outside (0, 1], any distribution not summing to
// one within Epsilon, or a duplicate-target distribution (two successors
// sharing one target, which makes "sums to one" ambiguous to restate
// after a merge the caller did not ask for).
func (b *Builder) Build(opts ...BuilderOption) (*Explicit, error) {
	b.mu.Lock()
	for _, opt := range opts {
		opt(b)
	}
	b.mu.Unlock()

	b.mu.RLock()
	defer b.mu.RUnlock()

	n := len(b.choices)
	for s := 0; s < n; s++ {
		for c, succs := range b.choices[s] {
			if err := validateDistribution(s, c, succs, n); err != nil {
				return nil, err
			}
		}
	}

	reachable := FullBitSet(n)
	if b.initialSet {
		reachable = forwardReachable(b.choices, n, b.initial)
	}

	choices := make([][][]Successor, n)
	transRew := make([][]float64, n)
	for s := 0; s < n; s++ {
		choices[s] = append([][]Successor(nil), b.choices[s]...)
		transRew[s] = append([]float64(nil), b.transRew[s]...)
	}

	return &Explicit{
		choices:     choices,
		stateRew:    append([]float64(nil), b.stateRew...),
		transRew:    transRew,
		reachable:   reachable,
		hasTransRew: b.hasTransRew,
	}, nil
}

func validateDistribution(s, c int, succs []Successor, n int) error {
	if len(succs) == 0 {
		return errorf(ErrStructuralInconsistency, s, c, "choice has no successors")
	}

	probs := make([]float64, 0, len(succs))
	seen := make(map[int]struct{}, len(succs))
	for _, succ := range succs {
		if succ.Target < 0 || succ.Target >= n {
			return errorf(ErrStructuralInconsistency, s, c, "successor target %d out of range", succ.Target)
		}
		if succ.Probability <= 0 || succ.Probability > 1 {
			return errorf(ErrStructuralInconsistency, s, c, "successor probability %g out of (0,1]", succ.Probability)
		}
		if _, dup := seen[succ.Target]; dup {
			return errorf(ErrStructuralInconsistency, s, c, "duplicate successor target %d", succ.Target)
		}
		seen[succ.Target] = struct{}{}
		probs = append(probs, succ.Probability)
	}

	if total := floats.Sum(probs); total < 1-Epsilon || total > 1+Epsilon {
		return errorf(ErrStructuralInconsistency, s, c, "successor probabilities sum to %g, not 1", total)
	}

	return nil
}

func forwardReachable(choices [][][]Successor, n, initial int) *BitSet {
	reached := NewBitSet(n)
	reached.Set(initial)
	queue := []int{initial}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, succs := range choices[s] {
			for _, succ := range succs {
				if !reached.Contains(succ.Target) {
					reached.Set(succ.Target)
					queue = append(queue, succ.Target)
				}
			}
		}
	}

	return reached
}
