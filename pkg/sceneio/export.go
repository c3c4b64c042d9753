package sceneio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/armlab/armature/pkg/scene"
)

// WriteJSON encodes the scene as JSON and writes it to w.
// Links are sorted by ID for deterministic output, so the format round-trips
// through [ReadJSON] and diffs cleanly under version control.
func WriteJSON(s *scene.Scene, w io.Writer) error {
	out := sceneFile{Links: make([]link, 0, s.LinkCount())}
	for _, l := range s.Links() {
		out.Links = append(out.Links, encodeLink(l))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the scene to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(s *scene.Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}

func encodeLink(l *scene.Link) link {
	w := link{
		ID:       string(l.ID),
		Name:     l.Name,
		Parent:   string(l.Parent),
		Geometry: encodeGeometry(l.Geometry),
		Offset:   l.BaseOffset,
		Rotation: l.StaticRotation,
	}
	for _, j := range l.Joints {
		w.Joints = append(w.Joints, encodeJoint(j))
	}
	return w
}

func encodeGeometry(g scene.Geometry) geometry {
	w := geometry{Kind: kindToString[g.Kind]}
	switch g.Kind {
	case scene.KindBox:
		if g.Box != nil {
			w.Width, w.Depth, w.Height = g.Box.Width, g.Box.Depth, g.Box.Height
		}
	case scene.KindCylinder:
		if g.Cylinder != nil {
			w.Radius, w.Height = g.Cylinder.Radius, g.Cylinder.Height
		}
	case scene.KindSphere:
		if g.Sphere != nil {
			w.Radius = g.Sphere.Radius
		}
	case scene.KindCone:
		if g.Cone != nil {
			w.Radius, w.Height = g.Cone.Radius, g.Cone.Height
		}
	case scene.KindCapsule:
		if g.Capsule != nil {
			w.Radius, w.Length = g.Capsule.Radius, g.Capsule.Length
		}
	case scene.KindMesh:
		if g.Mesh != nil {
			w.Source = g.Mesh.Source
			w.Scale = g.Mesh.Scale
			w.UnitScale = g.Mesh.UnitScale
			w.Origin = g.Mesh.Origin
			w.Bounds = &boundsWire{
				Width:  g.Mesh.Bounds.Width,
				Depth:  g.Mesh.Bounds.Depth,
				Height: g.Mesh.Bounds.Height,
				Radial: g.Mesh.Bounds.Radial,
			}
		}
	}
	return w
}

func encodeJoint(j *scene.Joint) joint {
	min, max, value := j.Min, j.Max, j.Value
	return joint{
		Name:  j.Name,
		Kind:  j.Kind.String(),
		Axis:  j.Axis.String(),
		Min:   &min,
		Max:   &max,
		Value: &value,
		Pivot: j.Pivot,
	}
}
