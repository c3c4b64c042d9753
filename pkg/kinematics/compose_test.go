package kinematics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/armlab/armature/pkg/scene"
)

const eps = 1e-9

func vecNear(t *testing.T, got, want mgl64.Vec3, context string) {
	t.Helper()
	if got.Sub(want).Len() > 1e-6 {
		t.Errorf("%s = %v, want %v", context, got, want)
	}
}

func TestJointTransform_PivotStaysFixed(t *testing.T) {
	j := scene.NewRotational("j")
	j.Axis = scene.AxisZ
	j.Pivot = mgl64.Vec3{0.2, -0.1, 0.3}
	j.SetValue(73)

	got := transformPoint(JointTransform(j), j.Pivot)
	vecNear(t, got, j.Pivot, "pivot under own rotation")
}

func TestJointTransform_RotationAboutOffsetPivot(t *testing.T) {
	j := scene.NewRotational("j")
	j.Axis = scene.AxisZ
	j.Pivot = mgl64.Vec3{1, 0, 0}
	j.SetValue(90)

	// The origin sits 1m from the pivot; a 90 degree turn about +Z carries it
	// from (0,0,0) to (1,-1,0).
	got := transformPoint(JointTransform(j), mgl64.Vec3{})
	vecNear(t, got, mgl64.Vec3{1, -1, 0}, "origin after 90deg about offset pivot")
}

func TestJointTransform_LinearMillimetersToMeters(t *testing.T) {
	j := scene.NewLinear("j")
	j.Axis = scene.AxisX
	j.SetLimits(0, 500)
	j.SetValue(250)

	got := transformPoint(JointTransform(j), mgl64.Vec3{})
	vecNear(t, got, mgl64.Vec3{0.25, 0, 0}, "origin after 250mm extension")
}

func TestJointTransform_LinearIgnoresPivot(t *testing.T) {
	// For pure translations the pivot sandwich cancels exactly.
	a := scene.NewLinear("a")
	a.SetValue(100)

	b := scene.NewLinear("b")
	b.Pivot = mgl64.Vec3{3, 2, 1}
	b.SetValue(100)

	pa := transformPoint(JointTransform(a), mgl64.Vec3{})
	pb := transformPoint(JointTransform(b), mgl64.Vec3{})
	vecNear(t, pb, pa, "linear transform with pivot")
}

func TestLocalTransform_ComposesOffsetRotationJoints(t *testing.T) {
	l := &scene.Link{
		ID:             "l",
		BaseOffset:     mgl64.Vec3{0, 0, 1},
		StaticRotation: mgl64.Vec3{0, 0, 90},
	}
	j := scene.NewRotational("j")
	j.Axis = scene.AxisZ
	j.SetValue(-90)
	l.Joints = []*scene.Joint{j}

	// The static +90 and joint -90 about the same axis cancel; only the base
	// offset remains.
	got := transformPoint(LocalTransform(l), mgl64.Vec3{1, 0, 0})
	vecNear(t, got, mgl64.Vec3{1, 0, 1}, "point under cancelling rotations")
}

func TestEulerXYZ_ZeroIsIdentity(t *testing.T) {
	m := eulerXYZ(mgl64.Vec3{})
	if m != mgl64.Ident4() {
		t.Errorf("eulerXYZ(0) = %v, want identity", m)
	}
}

func TestEulerXYZ_AxisOrder(t *testing.T) {
	// 90 about X carries +Y to +Z.
	m := eulerXYZ(mgl64.Vec3{90, 0, 0})
	got := transformPoint(m, mgl64.Vec3{0, 1, 0})
	vecNear(t, got, mgl64.Vec3{0, 0, 1}, "+Y under 90deg about X")

	if math.Abs(got.Len()-1) > eps {
		t.Errorf("rotation changed length: %v", got.Len())
	}
}
