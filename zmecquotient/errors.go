package zmecquotient

import "errors"

// ErrProb1ECertificationFailed is returned by (*Quotient).LiftStrategy
// when the probability-one-reachability certification of every
// zero-reward end component member reaching some chosen target state
// fails — an internal consistency violation, since every member of an
// end component is guaranteed reachable from every other (spec §4.4,
// §7's "numerical edge" fatal-error case).
var ErrProb1ECertificationFailed = errors.New("zmecquotient: prob1e certification of end-component targets failed")
