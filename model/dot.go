package model

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// WriteDot renders the choice graph of m restricted to restrict (nil
// meaning every reachable state) as Graphviz dot to w, under the given
// graph name. One edge is drawn per (state, choice, successor) triple,
// except that self-loops and successors outside restrict are not drawn;
// parallel edges between the same pair of states collapse to one, since
// the dot rendering is for visual inspection, not an exact transition
// diagram (spec §9's "debug flag... export of intermediate .dot files").
func WriteDot(w io.Writer, m Model, restrict *BitSet, name string) error {
	if restrict == nil {
		restrict = fullFromStateSet(m.ReachableStates(), m.NumStates())
	}

	g := simple.NewDirectedGraph()
	for _, s := range restrict.Slice() {
		g.AddNode(simple.Node(int64(s)))
	}
	for _, s := range restrict.Slice() {
		for c := 0; c < m.NumChoices(s); c++ {
			for _, succ := range m.Successors(s, c) {
				t := succ.Target
				if t == s || !restrict.Contains(t) {
					continue
				}
				if g.HasEdgeFromTo(int64(s), int64(t)) {
					continue
				}
				g.SetEdge(simple.Edge{F: simple.Node(int64(s)), T: simple.Node(int64(t))})
			}
		}
	}

	data, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		return fmt.Errorf("model: dot export of %q: %w", name, err)
	}

	_, err = w.Write(data)

	return err
}

func fullFromStateSet(set StateSet, n int) *BitSet {
	if bs, ok := set.(*BitSet); ok {
		return bs
	}
	out := NewBitSet(n)
	for s := 0; s < n; s++ {
		if set.Contains(s) {
			out.Set(s)
		}
	}

	return out
}
