package partition

import "sort"

// Partition represents a disjoint partition of a subset of 0..N-1 into
// classes, each with a representative chosen as its smallest index (spec
// §3, §4.2). Classes are stored ordered ascending by representative so
// ClassAt/RepresentativeAt iteration is itself a deterministic, testable
// ascending-index contract (spec §5).
type Partition struct {
	n        int
	classOf  []int // per state: index into classes, or NoClass
	classes  [][]int
	reps     []int
}

// New builds a Partition over universe 0..n-1 from the given list of
// nonempty, pairwise-disjoint class sets. States not mentioned in any
// class belong to no class (ClassOf returns NoClass for them).
//
// New panics if any class is empty or if two classes share a state: both
// are invariant violations from a trusted internal caller (package ec's
// MEC output is guaranteed disjoint by construction), never from
// untrusted input.
func New(n int, classes [][]int) *Partition {
	return build(n, classes, false)
}

// KeepSingletons builds a Partition exactly like New, except every state
// not mentioned in any supplied class becomes its own singleton class
// (spec §4.2's "keep singletons" variant, used by the ZMEC quotient driver
// so every state — not just those inside a ZMEC — has a well-defined
// representative).
func KeepSingletons(n int, classes [][]int) *Partition {
	return build(n, classes, true)
}

func build(n int, classes [][]int, keepSingletons bool) *Partition {
	classOf := make([]int, n)
	for i := range classOf {
		classOf[i] = NoClass
	}

	normalized := make([][]int, 0, len(classes)+n)
	for _, class := range classes {
		if len(class) == 0 {
			panic("partition: empty class")
		}
		cp := append([]int(nil), class...)
		sort.Ints(cp)
		idx := len(normalized)
		for _, s := range cp {
			if classOf[s] != NoClass {
				panic("partition: overlapping classes")
			}
			classOf[s] = idx
		}
		normalized = append(normalized, cp)
	}

	if keepSingletons {
		for s := 0; s < n; s++ {
			if classOf[s] == NoClass {
				classOf[s] = len(normalized)
				normalized = append(normalized, []int{s})
			}
		}
	}

	// Order classes ascending by representative (= smallest member, since
	// each class slice is already sorted) for a deterministic ClassAt/
	// RepresentativeAt iteration order.
	order := make([]int, len(normalized))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return normalized[order[i]][0] < normalized[order[j]][0]
	})

	classes2 := make([][]int, len(normalized))
	reps := make([]int, len(normalized))
	remap := make([]int, len(normalized))
	for newIdx, oldIdx := range order {
		classes2[newIdx] = normalized[oldIdx]
		reps[newIdx] = normalized[oldIdx][0]
		remap[oldIdx] = newIdx
	}
	for s, old := range classOf {
		if old != NoClass {
			classOf[s] = remap[old]
		}
	}

	return &Partition{n: n, classOf: classOf, classes: classes2, reps: reps}
}

// NumClasses returns the number of classes.
func (p *Partition) NumClasses() int { return len(p.classes) }

// ClassAt returns the ascending member list of the i-th class.
func (p *Partition) ClassAt(i int) []int { return p.classes[i] }

// RepresentativeAt returns the representative (smallest member) of the
// i-th class.
func (p *Partition) RepresentativeAt(i int) int { return p.reps[i] }

// ClassOf returns the class index of s, or NoClass if s belongs to none.
func (p *Partition) ClassOf(s int) int { return p.classOf[s] }

// SameClass reports whether s and t belong to the same class. Two states
// that both belong to no class are not considered the same class.
func (p *Partition) SameClass(s, t int) bool {
	cs := p.classOf[s]

	return cs != NoClass && cs == p.classOf[t]
}

// MapToRepresentative returns the representative of s's class, or s
// itself if s belongs to no class.
func (p *Partition) MapToRepresentative(s int) int {
	if c := p.classOf[s]; c != NoClass {
		return p.reps[c]
	}

	return s
}

// IsRepresentative reports whether s is the representative of its own
// class (true for every state outside any class, by the convention above).
func (p *Partition) IsRepresentative(s int) bool {
	return p.MapToRepresentative(s) == s
}
