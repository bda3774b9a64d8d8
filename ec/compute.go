package ec

import (
	"sort"

	"github.com/katalvlaran/zmec/model"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Compute returns the maximal end components of m restricted to restrict.
// If restrict is nil, every reachable state of m is used (spec §4.6 step
// 2's default). The returned slices are each sorted ascending; the outer
// slice's order is not significant (spec §4.4: "unordered list").
func Compute(m model.Model, restrict *model.BitSet) [][]int {
	if restrict == nil {
		restrict = asBitSet(m.ReachableStates(), m.NumStates())
	}

	active := restrict.Clone()
	avail := make(map[int][]int, active.Cardinality())
	for _, s := range active.Slice() {
		avail[s] = choiceRange(m.NumChoices(s))
	}

	for {
		sccOf, components := stronglyConnectedComponents(m, active, avail)

		changed := false
		for s, choices := range avail {
			component := sccOf[s]
			kept := choices[:0:0]
			for _, c := range choices {
				if m.AllSuccessorsMatch(s, c, func(t int) bool {
					tc, ok := sccOf[t]
					return ok && tc == component
				}) {
					kept = append(kept, c)
				}
			}
			if len(kept) != len(choices) {
				changed = true
			}
			avail[s] = kept
		}

		for s := range avail {
			if len(avail[s]) == 0 {
				delete(avail, s)
				active.Clear(s)
				changed = true
			}
		}

		if !changed {
			return finalMECs(components, avail)
		}
	}
}

func choiceRange(k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = i
	}

	return out
}

func asBitSet(set model.StateSet, n int) *model.BitSet {
	if bs, ok := set.(*model.BitSet); ok {
		return bs
	}
	out := model.NewBitSet(n)
	for s := 0; s < n; s++ {
		if set.Contains(s) {
			out.Set(s)
		}
	}

	return out
}

// stronglyConnectedComponents builds the graph induced by active's members
// with an edge s->t for every t that is a successor (under some currently
// available choice of s) and also a member of active, then decomposes it
// with Tarjan's algorithm. Self-loop edges are omitted: gonum's simple
// graph rejects them outright, and a single-node SCC is reported by
// Tarjan whether or not it has a self-loop, so omitting them changes
// nothing about component membership.
//
// It returns, per state, its component id, and the components themselves
// as ascending-sorted member lists, the outer slice ordered by each
// component's smallest member for determinism (spec §5).
func stronglyConnectedComponents(m model.Model, active *model.BitSet, avail map[int][]int) (map[int]int, [][]int) {
	g := simple.NewDirectedGraph()
	for _, s := range active.Slice() {
		g.AddNode(simple.Node(int64(s)))
	}
	for s, choices := range avail {
		for _, c := range choices {
			for _, succ := range m.Successors(s, c) {
				t := succ.Target
				if t == s || !active.Contains(t) {
					continue
				}
				if g.HasEdgeFromTo(int64(s), int64(t)) {
					continue
				}
				g.SetEdge(simple.Edge{F: simple.Node(int64(s)), T: simple.Node(int64(t))})
			}
		}
	}

	raw := topo.TarjanSCC(g)
	components := make([][]int, len(raw))
	for i, comp := range raw {
		members := make([]int, len(comp))
		for j, node := range comp {
			members[j] = int(node.ID())
		}
		sort.Ints(members)
		components[i] = members
	}
	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })

	sccOf := make(map[int]int, active.Cardinality())
	for i, comp := range components {
		for _, s := range comp {
			sccOf[s] = i
		}
	}

	return sccOf, components
}

func finalMECs(components [][]int, avail map[int][]int) [][]int {
	mecs := make([][]int, 0, len(components))
	for _, comp := range components {
		alive := comp[:0:0]
		for _, s := range comp {
			if len(avail[s]) > 0 {
				alive = append(alive, s)
			}
		}
		if len(alive) > 0 {
			mecs = append(mecs, alive)
		}
	}

	return mecs
}
