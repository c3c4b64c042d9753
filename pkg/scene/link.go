package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tiendc/go-deepcopy"
)

// LinkID identifies a link within a scene.
type LinkID string

// Link is a rigid body in the mechanism tree.
//
// BaseOffset translates from the parent's local frame (world origin for the
// root) to this link's unjointed local frame. StaticRotation is a fixed XYZ
// Euler orientation in degrees, applied once before any joints. Joints then
// compose in listed order; children attach after the last joint.
//
// Parent and Children are maintained by [Scene.AddLink] and
// [Scene.RemoveLink]; do not edit them directly on links owned by a scene.
type Link struct {
	ID             LinkID
	Name           string
	Geometry       Geometry
	BaseOffset     mgl64.Vec3
	StaticRotation mgl64.Vec3 // XYZ Euler, degrees
	Joints         []*Joint
	Children       []LinkID
	Parent         LinkID // "" for the root
}

// Clone returns a deep copy of the link, including its joints.
func (l *Link) Clone() *Link {
	c := new(Link)
	_ = deepcopy.Copy(c, l) // plain-data struct, copy cannot fail
	return c
}
