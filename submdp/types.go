package submdp

// DropPredicate decides whether choice c at state s should be hidden from
// a Dropped view. It is evaluated exactly once per (s, c) at construction.
type DropPredicate func(s, c int) bool
