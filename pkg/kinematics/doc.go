// Package kinematics computes world-space poses for mechanism scenes.
//
// It provides the three parts of the kinematics core:
//
//   - the transform composer ([LocalTransform], [JointTransform]), which
//     builds a link's local-to-parent transform from its base offset, static
//     rotation, and joint values;
//   - the forward walker ([Compute]), which derives a [WorldState] of
//     world transforms, origins, and per-joint pivots/axes for a whole scene;
//   - the inverse solver ([Solve]), a cyclic-coordinate-descent iteration
//     that drives a link's origin toward a world-space goal by adjusting the
//     joints on the root-to-target chain, within their limits.
//
// Everything here is pure and synchronous: world state is recomputed from
// scratch on every query rather than cached, and a solve runs to completion
// within a single call, bounded by its sweep budget.
package kinematics
