package sceneio

import "github.com/armlab/armature/pkg/scene"

// Wire structs are kept separate from the domain structs so the file format
// can stay stable while the domain model evolves.

type sceneFile struct {
	Links []link `json:"links"`
}

type link struct {
	ID       string     `json:"id"`
	Name     string     `json:"name,omitempty"`
	Parent   string     `json:"parent,omitempty"`
	Geometry geometry   `json:"geometry"`
	Offset   [3]float64 `json:"offset,omitempty"`
	Rotation [3]float64 `json:"rotation,omitempty"`
	Joints   []joint    `json:"joints,omitempty"`
}

type geometry struct {
	Kind   string  `json:"kind"`
	Width  float64 `json:"width,omitempty"`
	Depth  float64 `json:"depth,omitempty"`
	Height float64 `json:"height,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Length float64 `json:"length,omitempty"`

	// Mesh-only fields.
	Source    string      `json:"source,omitempty"`
	Scale     float64     `json:"scale,omitempty"`
	UnitScale float64     `json:"unit_scale,omitempty"`
	Bounds    *boundsWire `json:"bounds,omitempty"`
	Origin    [3]float64  `json:"origin,omitempty"`
}

type boundsWire struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
	Radial float64 `json:"radial"`
}

type joint struct {
	Name  string     `json:"name,omitempty"`
	Kind  string     `json:"kind,omitempty"` // "rotational" (default) or "linear"
	Axis  string     `json:"axis,omitempty"` // "x", "y", or "z" (default)
	Min   *float64   `json:"min,omitempty"`
	Max   *float64   `json:"max,omitempty"`
	Value *float64   `json:"value,omitempty"`
	Pivot [3]float64 `json:"pivot,omitempty"`
}

var kindToString = map[scene.GeometryKind]string{
	scene.KindBox:      "box",
	scene.KindCylinder: "cylinder",
	scene.KindSphere:   "sphere",
	scene.KindCone:     "cone",
	scene.KindCapsule:  "capsule",
	scene.KindMesh:     "mesh",
}

var kindFromString = map[string]scene.GeometryKind{
	"box":      scene.KindBox,
	"cylinder": scene.KindCylinder,
	"sphere":   scene.KindSphere,
	"cone":     scene.KindCone,
	"capsule":  scene.KindCapsule,
	"mesh":     scene.KindMesh,
}

var axisFromString = map[string]scene.Axis{
	"x": scene.AxisX,
	"y": scene.AxisY,
	"z": scene.AxisZ,
}
