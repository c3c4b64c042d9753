package kinematics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/armlab/armature/pkg/scene"
)

// buildArm constructs a minimal planar arm:
//
//	base (box 0.1 high, at origin) -- waist joint about Z
//	  arm (offset 1m along X from base)
func buildArm(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New()

	base := &scene.Link{ID: "base", Geometry: scene.NewBox(0.1, 0.1, 0.1)}
	if err := s.AddLink("", base); err != nil {
		t.Fatalf("AddLink(base): %v", err)
	}
	waist := scene.NewRotational("waist")
	waist.SetLimits(-180, 180)
	if _, err := s.AddJoint("base", waist); err != nil {
		t.Fatalf("AddJoint(waist): %v", err)
	}

	arm := &scene.Link{
		ID:         "arm",
		Geometry:   scene.NewBox(0.05, 0.05, 0.05),
		BaseOffset: mgl64.Vec3{1, 0, 0},
	}
	if err := s.AddLink("base", arm); err != nil {
		t.Fatalf("AddLink(arm): %v", err)
	}
	return s
}

func TestCompute_RootSitsOnGround(t *testing.T) {
	s := buildArm(t)
	ws := Compute(s)

	// The root's 0.1m-high box is lifted by half its height.
	vecNear(t, ws["base"].Origin, mgl64.Vec3{0, 0, 0.05}, "root origin")
}

func TestCompute_NonRootOffsetVerbatim(t *testing.T) {
	s := buildArm(t)
	ws := Compute(s)

	// The child keeps its full base offset; only the root gets the ground
	// lift, which the child inherits through the parent transform.
	vecNear(t, ws["arm"].Origin, mgl64.Vec3{1, 0, 0.05}, "child origin")
}

func TestCompute_JointValueMovesChildren(t *testing.T) {
	s := buildArm(t)
	if err := s.SetJointValue("waist", 90); err != nil {
		t.Fatalf("SetJointValue: %v", err)
	}
	ws := Compute(s)

	// 90 degrees about +Z carries the child from +X to +Y.
	vecNear(t, ws["arm"].Origin, mgl64.Vec3{0, 1, 0.05}, "child after 90deg waist")
	// The jointed link's own origin is pivot-centered and does not move.
	vecNear(t, ws["base"].Origin, mgl64.Vec3{0, 0, 0.05}, "root after 90deg waist")
}

func TestCompute_Idempotent(t *testing.T) {
	s := buildArm(t)
	if err := s.SetJointValue("waist", 33); err != nil {
		t.Fatalf("SetJointValue: %v", err)
	}

	a := Compute(s)
	b := Compute(s)

	for id, pa := range a {
		pb, ok := b[id]
		if !ok {
			t.Fatalf("link %s missing from second pass", id)
		}
		if pa.Origin.Sub(pb.Origin).Len() > eps {
			t.Errorf("link %s origin drifted: %v vs %v", id, pa.Origin, pb.Origin)
		}
	}
}

func TestCompute_JointFrameCapturedBeforeOwnMotion(t *testing.T) {
	s := buildArm(t)
	if err := s.SetJointValue("waist", 45); err != nil {
		t.Fatalf("SetJointValue: %v", err)
	}
	ws := Compute(s)

	// The waist pivot and axis are independent of the waist's own value.
	frame := ws["base"].Joints[0]
	vecNear(t, frame.Pivot, mgl64.Vec3{0, 0, 0.05}, "waist pivot")
	vecNear(t, frame.Axis, mgl64.Vec3{0, 0, 1}, "waist axis")
}

func TestCompute_EmptyScene(t *testing.T) {
	ws := Compute(scene.New())
	if len(ws) != 0 {
		t.Errorf("len(ws) = %d, want 0", len(ws))
	}
}
