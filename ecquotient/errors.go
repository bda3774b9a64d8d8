package ecquotient

import "errors"

// ErrProb1ECertificationFailed is returned by (*Quotient).LiftStrategy
// when an end component's members fail to certify probability-one
// reachability of the class's chosen target state — an internal
// consistency violation, since every end-component member is guaranteed
// to reach every other by definition.
var ErrProb1ECertificationFailed = errors.New("ecquotient: prob1e certification of end-component target failed")
