package kinematics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/armlab/armature/pkg/scene"
)

// linearScale converts a linear joint's millimeter value to world meters.
const linearScale = 1.0 / 1000

// JointTransform returns the transform contributed by a single joint at its
// current value: a pivot translation, the joint's motion (rotation about the
// axis for rotational joints, translation along it for linear joints), and
// the inverse pivot translation. The pivot sandwich keeps the pivot point
// fixed under the joint's own motion wherever it sits in the link's frame.
func JointTransform(j *scene.Joint) mgl64.Mat4 {
	pivot := translate(j.Pivot)
	unpivot := translate(j.Pivot.Mul(-1))

	var motion mgl64.Mat4
	switch j.Kind {
	case scene.Rotational:
		motion = mgl64.HomogRotate3D(mgl64.DegToRad(j.Value), j.Axis.Vec())
	case scene.Linear:
		motion = translate(j.Axis.Vec().Mul(j.Value * linearScale))
	default:
		motion = mgl64.Ident4()
	}

	return pivot.Mul4(motion).Mul4(unpivot)
}

// LocalTransform returns the link's full local-to-parent transform: the base
// offset, the static XYZ Euler rotation, then every joint in listed order.
// The root link's ground-placement offset is the walker's concern, not this
// function's; the base offset is used verbatim.
func LocalTransform(l *scene.Link) mgl64.Mat4 {
	m := translate(l.BaseOffset).Mul4(eulerXYZ(l.StaticRotation))
	for _, j := range l.Joints {
		m = m.Mul4(JointTransform(j))
	}
	return m
}

// eulerXYZ builds a rotation from XYZ-order Euler angles in degrees.
// A zero rotation short-circuits to the identity.
func eulerXYZ(deg mgl64.Vec3) mgl64.Mat4 {
	if deg == (mgl64.Vec3{}) {
		return mgl64.Ident4()
	}
	q := mgl64.AnglesToQuat(
		mgl64.DegToRad(deg.X()),
		mgl64.DegToRad(deg.Y()),
		mgl64.DegToRad(deg.Z()),
		mgl64.XYZ,
	)
	return q.Mat4()
}

func translate(v mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(v.X(), v.Y(), v.Z())
}

// transformPoint applies a homogeneous transform to a point.
func transformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
