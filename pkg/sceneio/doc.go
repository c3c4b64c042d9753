// Package sceneio reads and writes mechanism scenes as JSON files.
//
// The wire format is a flat list of links carrying their parent reference;
// child lists are rebuilt on import. Import validates at the boundary: limit
// pairs are normalized, values are clamped, duplicate joint names are
// repaired with generated replacements, and the resulting tree must pass
// [scene.Scene.Validate].
package sceneio
