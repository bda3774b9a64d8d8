// Package ecquotient implements the maximal end-component quotient of an
// MDP (spec §4.6's sibling construction, grounded on PRISM's MECQuotient):
// every maximal end component is collapsed to a single representative
// state, and two additional sets — 'yes' and 'no' — are each collapsed to
// their own single representative. This is the standard reduction used
// before solving reachability/expected-reward linear programs, so that
// no end component can inflate the optimum with probability-zero-net
// cycling.
//
// Unlike package zmecquotient, which partitions only the zero-reward
// maximal end components found after dropping positive-reward choices,
// this package computes every maximal end component of the unfiltered
// model restricted to the states that are neither 'yes' nor 'no', then
// adds 'yes' and 'no' themselves as two further classes.
package ecquotient
