// Package scene defines the link/joint data model for articulated mechanisms.
//
// A [Scene] holds a tree of rigid [Link] bodies connected by single-DOF
// [Joint] actuators. Links are stored in an id-keyed arena; parent/child
// relationships are kept as ids rather than pointers so the tree can be
// cloned, serialized, and partially copied without aliasing hazards.
//
// The tree invariant (exactly one root, no cycles, children lists agreeing
// with parent references) is checked at mutation boundaries via
// [Scene.Validate], not on every traversal.
package scene
