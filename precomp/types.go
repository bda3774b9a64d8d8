package precomp

import "log"

// Options configures the logging verbosity of Prob0E/Prob1E. The zero
// value logs every fixed-point round to log.Default(); set Quiet to
// silence it, the way the original's MDPModelChecker silenced
// precomputations with setSilentPrecomputations/PrismDevNullLog (see
// SPEC_FULL.md §4).
type Options struct {
	Quiet  bool
	Logger *log.Logger
}

func (o Options) logf(format string, args ...interface{}) {
	if o.Quiet {
		return
	}
	logger := o.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf(format, args...)
}
