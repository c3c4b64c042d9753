package sceneio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/armlab/armature/pkg/errors"
	"github.com/armlab/armature/pkg/scene"
)

// ReadJSON decodes a JSON scene from r.
//
// The input must be a JSON object with a "links" array. Each link must have
// an "id" and a "geometry" with a known "kind"; the root link is the one
// without a "parent". Joints default to rotational about Z with the standard
// limits when fields are omitted.
//
// Import applies the boundary policies of the scene layer rather than
// rejecting sloppy input: limit pairs arriving as (max, min) are normalized,
// joint values outside their limits are clamped, and a joint name already
// taken elsewhere in the scene is replaced with a generated one.
//
// ReadJSON returns an error if the JSON is malformed, a link ID is missing
// or duplicated, a parent reference does not resolve, a geometry kind is
// unknown, or the resulting tree fails validation. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*scene.Scene, error) {
	var data sceneFile
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode scene")
	}

	for _, l := range data.Links {
		if err := errors.ValidateLinkID(l.ID); err != nil {
			return nil, err
		}
		for _, j := range l.Joints {
			if err := errors.ValidateJointName(j.Name); err != nil {
				return nil, err
			}
		}
	}

	s := scene.New()
	pending := make([]link, len(data.Links))
	copy(pending, data.Links)

	// Parents must exist before their children; loop until no progress.
	for len(pending) > 0 {
		placed := 0
		rest := pending[:0]
		for _, l := range pending {
			if l.Parent != "" {
				if _, ok := s.Link(scene.LinkID(l.Parent)); !ok {
					rest = append(rest, l)
					continue
				}
			}
			if err := addLink(s, l); err != nil {
				if errors.GetCode(err) != "" {
					return nil, fmt.Errorf("link %s: %w", l.ID, err)
				}
				return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "link %s", l.ID)
			}
			placed++
		}
		if placed == 0 {
			return nil, errors.New(errors.ErrCodeInvalidScene,
				"unresolvable parent references (first: link %q -> %q)", rest[0].ID, rest[0].Parent)
		}
		pending = rest
	}

	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "validate scene")
	}
	return s, nil
}

// ImportJSON reads a JSON scene file at path.
// It returns the same validation errors as [ReadJSON] wrapped with the path.
func ImportJSON(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func addLink(s *scene.Scene, w link) error {
	geom, err := decodeGeometry(w.Geometry)
	if err != nil {
		return err
	}
	l := &scene.Link{
		ID:             scene.LinkID(w.ID),
		Name:           w.Name,
		Geometry:       geom,
		BaseOffset:     mgl64.Vec3(w.Offset),
		StaticRotation: mgl64.Vec3(w.Rotation),
	}
	if err := s.AddLink(scene.LinkID(w.Parent), l); err != nil {
		return err
	}
	for _, jw := range w.Joints {
		if _, err := s.AddJoint(l.ID, decodeJoint(jw)); err != nil {
			return err
		}
	}
	return nil
}

func decodeGeometry(w geometry) (scene.Geometry, error) {
	kind, ok := kindFromString[w.Kind]
	if !ok {
		return scene.Geometry{}, errors.New(errors.ErrCodeInvalidGeometry, "unknown geometry kind %q", w.Kind)
	}
	switch kind {
	case scene.KindBox:
		return scene.NewBox(w.Width, w.Depth, w.Height), nil
	case scene.KindCylinder:
		return scene.NewCylinder(w.Radius, w.Height), nil
	case scene.KindSphere:
		return scene.NewSphere(w.Radius), nil
	case scene.KindCone:
		return scene.NewCone(w.Radius, w.Height), nil
	case scene.KindCapsule:
		return scene.NewCapsule(w.Radius, w.Length), nil
	default:
		mesh := &scene.MeshDims{
			Source:    w.Source,
			Scale:     w.Scale,
			UnitScale: w.UnitScale,
			Origin:    mgl64.Vec3(w.Origin),
		}
		if mesh.Scale == 0 {
			mesh.Scale = 1
		}
		if mesh.UnitScale == 0 {
			mesh.UnitScale = 1
		}
		if w.Bounds != nil {
			mesh.Bounds = scene.Bounds{
				Width:  w.Bounds.Width,
				Depth:  w.Bounds.Depth,
				Height: w.Bounds.Height,
				Radial: w.Bounds.Radial,
			}
		}
		return scene.Geometry{Kind: scene.KindMesh, Mesh: mesh}, nil
	}
}

func decodeJoint(w joint) *scene.Joint {
	var j *scene.Joint
	if w.Kind == "linear" {
		j = scene.NewLinear(w.Name)
	} else {
		j = scene.NewRotational(w.Name)
	}
	if axis, ok := axisFromString[w.Axis]; ok {
		j.Axis = axis
	}
	j.Pivot = mgl64.Vec3(w.Pivot)

	min, max := j.Min, j.Max
	if w.Min != nil {
		min = *w.Min
	}
	if w.Max != nil {
		max = *w.Max
	}
	j.SetLimits(min, max)
	if w.Value != nil {
		j.SetValue(*w.Value)
	}
	return j
}
