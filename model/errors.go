package model

import (
	"errors"
	"fmt"
)

// ErrStructuralInconsistency indicates the input MDP violates the Model
// capability contract: a successor probability outside (0, 1], a
// distribution that does not sum to one within Epsilon, a successor target
// out of range, a duplicate successor target, or a choice with no successors.
// Classification: fatal, abort construction.
// Usage: if errors.Is(err, ErrStructuralInconsistency) { ... }.
var ErrStructuralInconsistency = errors.New("model: structural inconsistency")

// ErrNonUniformReward indicates a transition reward that differs across
// the successors of a single (state, choice) pair, which this module's
// reward shape (one scalar per choice) cannot represent.
// Classification: fatal, abort construction.
var ErrNonUniformReward = errors.New("model: non-uniform transition reward")

// errorf wraps ErrStructuralInconsistency (or any other sentinel) with
// positional context: state index, choice index, and a short message.
// Matches the teacher's builderErrorf convention: sentinel preserved via
// %w, human context prefixed, no string-matching required by callers.
func errorf(sentinel error, state, choice int, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if choice < 0 {
		return fmt.Errorf("model: state %d: %s: %w", state, msg, sentinel)
	}
	return fmt.Errorf("model: state %d, choice %d: %s: %w", state, choice, msg, sentinel)
}
