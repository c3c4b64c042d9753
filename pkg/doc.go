// Package pkg provides the core libraries for the armature kinematics engine.
//
// # Overview
//
// Armature models articulated mechanisms as trees of rigid links connected by
// single-degree-of-freedom joints. The pkg directory is organized into four
// main areas:
//
//  1. [scene] - The mechanism model (links, joints, geometry, tree integrity)
//  2. [kinematics] - Transform composition, forward passes, and IK solving
//  3. [sceneio] - JSON persistence of scenes
//  4. [render/dot] - Graphviz diagrams of the scene structure
//
// # Architecture
//
// The typical data flow through armature:
//
//	Scene File (JSON)
//	         ↓
//	sceneio.ImportJSON → scene.Scene
//	         ↓
//	kinematics.Compute → WorldState (poses per link)
//	         ↓
//	kinematics.Solve   → updated joint values
//	         ↓
//	sceneio.ExportJSON / render/dot
//
// Supporting packages: [errors] for coded errors at the CLI boundary,
// [observability] for solver instrumentation hooks, and [buildinfo] for
// build-time version stamping.
package pkg
