package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GeometryKind tags the shape variant carried by a [Geometry].
type GeometryKind int

const (
	KindBox GeometryKind = iota
	KindCylinder
	KindSphere
	KindCone
	KindCapsule
	KindMesh
)

// String returns the wire/display name of the geometry kind.
func (k GeometryKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	case KindSphere:
		return "sphere"
	case KindCone:
		return "cone"
	case KindCapsule:
		return "capsule"
	case KindMesh:
		return "mesh"
	}
	return "unknown"
}

// Geometry describes a link's rigid shape as a tagged union: Kind selects
// which payload pointer is populated. Dimensions are in meters.
type Geometry struct {
	Kind     GeometryKind
	Box      *BoxDims
	Cylinder *RoundDims
	Sphere   *SphereDims
	Cone     *RoundDims
	Capsule  *CapsuleDims
	Mesh     *MeshDims
}

// BoxDims are the extents of an axis-aligned box.
type BoxDims struct {
	Width  float64 // X extent
	Depth  float64 // Y extent
	Height float64 // Z extent
}

// RoundDims describe a cylinder or cone by radius and height.
type RoundDims struct {
	Radius float64
	Height float64
}

// SphereDims describe a sphere by radius.
type SphereDims struct {
	Radius float64
}

// CapsuleDims describe a capsule by the radius of its caps and the length of
// its cylindrical middle section.
type CapsuleDims struct {
	Radius float64
	Length float64
}

// MeshDims describe an imported mesh shape. The bounding envelope is
// precomputed at import time; Scale and UnitScale multiply it uniformly.
type MeshDims struct {
	Source    string     // source mesh payload reference
	Scale     float64    // uniform user scale factor
	UnitScale float64    // unit-conversion scale (e.g. mm-authored meshes)
	Bounds    Bounds     // precomputed envelope at scale 1
	Origin    mgl64.Vec3 // mesh-local origin offset
}

// Bounds is the axis-aligned bounding envelope of a geometry: horizontal
// extents, vertical height, and the radius of the smallest enclosing
// vertical cylinder.
type Bounds struct {
	Width  float64
	Depth  float64
	Height float64
	Radial float64
}

// Shape constructors.

func NewBox(width, depth, height float64) Geometry {
	return Geometry{Kind: KindBox, Box: &BoxDims{Width: width, Depth: depth, Height: height}}
}

func NewCylinder(radius, height float64) Geometry {
	return Geometry{Kind: KindCylinder, Cylinder: &RoundDims{Radius: radius, Height: height}}
}

func NewSphere(radius float64) Geometry {
	return Geometry{Kind: KindSphere, Sphere: &SphereDims{Radius: radius}}
}

func NewCone(radius, height float64) Geometry {
	return Geometry{Kind: KindCone, Cone: &RoundDims{Radius: radius, Height: height}}
}

func NewCapsule(radius, length float64) Geometry {
	return Geometry{Kind: KindCapsule, Capsule: &CapsuleDims{Radius: radius, Length: length}}
}

// fallbackBounds is returned for unknown kinds or missing payloads so that
// downstream placement and indicator sizing never fail on a malformed shape.
var fallbackBounds = Bounds{Width: 0.3, Depth: 0.3, Height: 0.3, Radial: 0.15}

// Bounds returns the axis-aligned bounding envelope of the geometry.
// Unknown kinds and missing payloads fall back to a small fixed box.
func (g Geometry) Bounds() Bounds {
	switch g.Kind {
	case KindBox:
		if g.Box == nil {
			return fallbackBounds
		}
		return Bounds{
			Width:  g.Box.Width,
			Depth:  g.Box.Depth,
			Height: g.Box.Height,
			Radial: math.Max(g.Box.Width, g.Box.Depth) / 2,
		}
	case KindCylinder:
		if g.Cylinder == nil {
			return fallbackBounds
		}
		return roundBounds(g.Cylinder.Radius, g.Cylinder.Height)
	case KindCone:
		if g.Cone == nil {
			return fallbackBounds
		}
		return roundBounds(g.Cone.Radius, g.Cone.Height)
	case KindSphere:
		if g.Sphere == nil {
			return fallbackBounds
		}
		r := g.Sphere.Radius
		return Bounds{Width: 2 * r, Depth: 2 * r, Height: 2 * r, Radial: r}
	case KindCapsule:
		if g.Capsule == nil {
			return fallbackBounds
		}
		r := g.Capsule.Radius
		return Bounds{Width: 2 * r, Depth: 2 * r, Height: g.Capsule.Length + 2*r, Radial: r}
	case KindMesh:
		if g.Mesh == nil {
			return fallbackBounds
		}
		s := g.Mesh.Scale * g.Mesh.UnitScale
		b := g.Mesh.Bounds
		return Bounds{Width: b.Width * s, Depth: b.Depth * s, Height: b.Height * s, Radial: b.Radial * s}
	}
	return fallbackBounds
}

func roundBounds(radius, height float64) Bounds {
	return Bounds{Width: 2 * radius, Depth: 2 * radius, Height: height, Radial: radius}
}
