package kinematics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/armlab/armature/pkg/observability"
	"github.com/armlab/armature/pkg/scene"
)

// JointFrame is a joint's world-space state at the moment the forward walker
// reaches it: the pivot point and the normalized motion axis, both captured
// before the joint's own contribution is applied. The renderer uses these to
// draw motion-limit indicators (arcs for rotational joints, segments for
// linear ones).
type JointFrame struct {
	Pivot mgl64.Vec3
	Axis  mgl64.Vec3
}

// Pose is a link's derived world-space state: the full world transform after
// all of the link's joints, the link origin under that transform, and one
// frame per joint in the link's joint order.
type Pose struct {
	Transform mgl64.Mat4
	Origin    mgl64.Vec3
	Joints    []JointFrame
}

// WorldState maps link IDs to derived poses. It is recomputed from scratch on
// every call to [Compute]; nothing is cached between calls.
type WorldState map[scene.LinkID]*Pose

// Compute runs a forward-kinematics pass over the whole scene and returns the
// world state. It is a pure function of the scene snapshot: depth-first
// pre-order from the root, carrying the accumulated parent transform.
//
// The root link's base translation is lifted vertically by half its bounding
// height so the rendered base sits on the ground plane instead of straddling
// it; every other link uses its base offset verbatim.
//
// Links referencing a missing child ID are silently skipped. That cannot
// occur for a scene that passes [scene.Scene.Validate].
func Compute(s *scene.Scene) WorldState {
	ws := make(WorldState, s.LinkCount())
	if root := s.Root(); root != "" {
		walk(s, root, mgl64.Ident4(), true, ws)
	}
	observability.Forward().OnForwardPass(len(ws))
	return ws
}

func walk(s *scene.Scene, id scene.LinkID, parent mgl64.Mat4, isRoot bool, ws WorldState) {
	l, ok := s.Link(id)
	if !ok {
		return
	}

	base := l.BaseOffset
	if isRoot {
		base[2] += l.Geometry.Bounds().Height / 2
	}
	m := parent.Mul4(translate(base)).Mul4(eulerXYZ(l.StaticRotation))

	pose := &Pose{Joints: make([]JointFrame, 0, len(l.Joints))}
	for _, j := range l.Joints {
		axis := m.Mat3().Mul3x1(j.Axis.Vec())
		if n := axis.Len(); n > 0 {
			axis = axis.Mul(1 / n)
		}
		pose.Joints = append(pose.Joints, JointFrame{
			Pivot: transformPoint(m, j.Pivot),
			Axis:  axis,
		})
		m = m.Mul4(JointTransform(j))
	}
	pose.Transform = m
	pose.Origin = transformPoint(m, mgl64.Vec3{})
	ws[id] = pose

	for _, c := range l.Children {
		walk(s, c, m, false, ws)
	}
}
