// Package quotient implements the quotient view (spec §4.3): a
// read-through model.Model adapter exposing a partitioned MDP where every
// non-representative state becomes a trap and each representative's
// choices are the union, in deterministic order, of its class members'
// surviving choices.
//
// What:
//
//   - New(m, part): builds the quotient of m under partition.Partition
//     part. m is expected to already have any undesired choices (e.g.
//     zero-reward internal loops) filtered out via package submdp before
//     it reaches here — this package performs no further choice
//     filtering, only regrouping, matching spec §4.3's "possibly
//     already-filtered sub-MDP".
//   - Every state of m — not only those mentioned in part's classes — is
//     grouped by partition.MapToRepresentative, so a state outside any
//     class is simply its own one-member group (consistent with
//     Partition's documented convention, and with how the original MEC
//     quotient is built without the "keep singletons" variant).
//   - MapToOriginal / MapToOriginalOrNull: invert the deterministic
//     iteration that assigned quotient-choice indices.
//
// Why:
//
//   - Both package zmecquotient and package ecquotient collapse a
//     model.Model under a partition.Partition this same way; the only
//     difference between them is which partition (ZMECs vs. all MECs
//     plus yes/no classes) they hand in.
//
// Complexity:
//
//   - New: O(sum of K(s)) to build the per-representative choice tables.
//   - NumChoices/Successors/AllSuccessorsMatch/SomeSuccessorInSet: O(1)
//     dispatch plus the underlying model's cost.
package quotient
