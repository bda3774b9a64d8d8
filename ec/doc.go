// Package ec computes maximal end components (MECs) of a model.Model
// restricted to a given state set (spec §4.4).
//
// What:
//
//   - Compute(m, restrict): returns the unordered list of MECs of the
//     sub-MDP induced by restrict, each as an ascending []int of member
//     states. Implements the classical Chatterjee–Henzinger removal
//     loop: repeatedly compute strongly connected components of the
//     currently-available graph, drop any choice whose image escapes its
//     own component, drop any state left with no choice, and iterate
//     until nothing changes. What remains is, by construction, exactly
//     the set of maximal end components.
//
// Why:
//
//   - Both package zmecquotient (ZMECs of the zero-reward fragment) and
//     package ecquotient (all MECs of the whole model) need this; it is
//     the one graph-theoretic fixed point both drivers share.
//
// Library choice:
//
//   - Strongly-connected-component decomposition is delegated to
//     gonum.org/v1/gonum/graph/topo.TarjanSCC over a per-round
//     gonum.org/v1/gonum/graph/simple.DirectedGraph instead of a
//     hand-rolled Tarjan implementation, since SCC-as-a-fixpoint-loop-step
//     is exactly what this package repeats to convergence.
//
// Complexity:
//
//   - O(|S|·|E|) worst case (spec §4.4): at most |S| rounds, each
//     O(|S|+|E|) to rebuild the graph and run Tarjan.
//
// Errors:
//
//   - None; Compute never fails, it may simply return an empty slice.
package ec
