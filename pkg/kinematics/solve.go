package kinematics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/armlab/armature/pkg/observability"
	"github.com/armlab/armature/pkg/scene"
)

// Solver defaults and numerical thresholds.
const (
	// DefaultMaxIterations bounds the number of full chain sweeps per solve.
	DefaultMaxIterations = 12
	// DefaultTolerance is the acceptable effector-to-goal distance in meters.
	DefaultTolerance = 0.005

	// axisEpsilon is the projection length below which a rotational joint has
	// no well-defined correction and is skipped for the sweep.
	axisEpsilon = 1e-5
	// minRotationDelta suppresses sub-noise rotational corrections (degrees).
	minRotationDelta = 1e-3
	// minLinearDelta suppresses sub-noise linear corrections (millimeters).
	minLinearDelta = 1e-3
)

// Options configures an inverse-kinematics solve. Zero fields fall back to
// the defaults.
type Options struct {
	MaxIterations int     // full sweeps over the joint chain
	Tolerance     float64 // goal distance in meters considered converged
}

// Result is the outcome of a solve. Scene is a copy of the input with the
// chain joints updated; the caller's scene is never mutated and the caller
// decides whether to adopt the copy. Values snapshots every joint value by
// name for broadcasting to external control channels.
type Result struct {
	Scene      *scene.Scene
	Values     map[string]float64
	Converged  bool
	Iterations int     // sweeps actually performed
	Distance   float64 // final effector-to-goal distance in meters
}

// chainJoint addresses one adjustable joint on the root-to-target chain.
type chainJoint struct {
	link  scene.LinkID
	index int // position within the link's joint list
	joint *scene.Joint
}

// Solve drives the target link's world origin toward goal by cyclic
// coordinate descent over the joints on the root-to-target chain, most
// distal joint first. All other joints are frozen. Joint updates are clamped
// into their limits; degenerate geometry (goal or effector on a rotation
// axis) skips that joint for the sweep rather than failing.
//
// The solve stops when the effector is within tolerance of the goal
// (Converged=true), when a full sweep moves no joint above the noise
// threshold, or when the sweep budget is exhausted (Converged=false).
// A chain with no joints returns immediately with Converged=false, the
// values snapshot untouched, and no forward passes performed.
//
// Returns [scene.ErrUnknownLink] if target does not resolve.
func Solve(s *scene.Scene, target scene.LinkID, goal mgl64.Vec3, opts Options) (*Result, error) {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}

	path, err := s.Path(target)
	if err != nil {
		return nil, err
	}
	work := s.CloneAlong(path)

	var chain []chainJoint
	for _, id := range path {
		l, ok := work.Link(id)
		if !ok {
			continue
		}
		for i, j := range l.Joints {
			chain = append(chain, chainJoint{link: id, index: i, joint: j})
		}
	}
	if len(chain) == 0 {
		return &Result{Scene: work, Values: work.JointValues()}, nil
	}

	hooks := observability.Solver()
	hooks.OnSolveStart(string(target))

	var (
		distance  float64
		sweeps    int
		converged bool
	)
	for sweep := 0; sweep < opts.MaxIterations; sweep++ {
		changed := false
		for i := len(chain) - 1; i >= 0; i-- {
			cj := chain[i]
			ws := Compute(work)
			pose, ok := ws[cj.link]
			if !ok || cj.index >= len(pose.Joints) {
				continue
			}
			effector := ws[target].Origin
			if adjust(cj.joint, pose.Joints[cj.index], effector, goal) {
				changed = true
			}
		}

		ws := Compute(work)
		distance = ws[target].Origin.Sub(goal).Len()
		sweeps = sweep + 1
		hooks.OnSweep(string(target), sweeps, distance)

		if distance <= opts.Tolerance {
			converged = true
			break
		}
		if !changed {
			// Local minimum or unreachable goal; further sweeps are no-ops.
			break
		}
	}

	hooks.OnSolveComplete(string(target), sweeps, distance, converged)
	return &Result{
		Scene:      work,
		Values:     work.JointValues(),
		Converged:  converged,
		Iterations: sweeps,
		Distance:   distance,
	}, nil
}

// adjust applies one CCD correction to a joint and reports whether the stored
// value actually moved. Corrections fully absorbed by the limit clamp do not
// count as movement.
func adjust(j *scene.Joint, frame JointFrame, effector, goal mgl64.Vec3) bool {
	switch j.Kind {
	case scene.Rotational:
		return adjustRotational(j, frame, effector, goal)
	case scene.Linear:
		return adjustLinear(j, frame, effector, goal)
	}
	return false
}

func adjustRotational(j *scene.Joint, frame JointFrame, effector, goal mgl64.Vec3) bool {
	toEffector := rejectAxis(effector.Sub(frame.Pivot), frame.Axis)
	toGoal := rejectAxis(goal.Sub(frame.Pivot), frame.Axis)
	if toEffector.Len() < axisEpsilon || toGoal.Len() < axisEpsilon {
		return false
	}
	toEffector = toEffector.Normalize()
	toGoal = toGoal.Normalize()

	dot := clamp(toEffector.Dot(toGoal), -1, 1)
	angle := math.Acos(dot)
	if toEffector.Cross(toGoal).Dot(frame.Axis) < 0 {
		angle = -angle
	}
	delta := mgl64.RadToDeg(angle)
	if math.Abs(delta) < minRotationDelta {
		return false
	}

	before := j.Value
	j.SetValue(before + delta)
	return j.Value != before
}

func adjustLinear(j *scene.Joint, frame JointFrame, effector, goal mgl64.Vec3) bool {
	along := frame.Axis
	delta := (goal.Sub(frame.Pivot).Dot(along) - effector.Sub(frame.Pivot).Dot(along)) / linearScale
	if math.Abs(delta) < minLinearDelta {
		return false
	}

	before := j.Value
	j.SetValue(before + delta)
	return j.Value != before
}

// rejectAxis removes v's component along the (unit) axis, projecting it onto
// the plane orthogonal to the axis.
func rejectAxis(v, axis mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(axis.Mul(v.Dot(axis)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
