// Package partition implements an equivalence partition of the dense
// state-index space into disjoint classes, each with a designated
// representative (spec §4.2).
//
// What:
//
//   - Partition: built from a list of nonempty disjoint class sets. By
//     convention the representative of each class is its smallest index.
//     States outside every supplied class are, depending on the
//     constructor used, either left unclassified (NumClasses excludes
//     them) or completed into singleton classes of themselves
//     (KeepSingletons — spec §4.2's "keep singletons" variant).
//   - NumClasses, ClassAt, RepresentativeAt, ClassOf, SameClass,
//     MapToRepresentative: the query surface spec §6 requires.
//
// Why:
//
//   - Both the zero-reward EC quotient (package zmecquotient) and its
//     sibling all-MECs quotient (package ecquotient) build a Partition
//     from a list of end components and hand it to package quotient;
//     factoring the partition out keeps that collapsing logic identical
//     between the two drivers.
//
// Complexity:
//
//   - New/KeepSingletons: O(N) to assign every state to a class.
//   - ClassOf/SameClass/MapToRepresentative: O(1).
//
// Errors:
//
//   - None exposed; overlapping input classes are a programmer error and
//     New panics (constructed once, from trusted internal callers, never
//     from untrusted input — see New).
package partition
