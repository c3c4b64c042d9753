package scene

import "github.com/go-gl/mathgl/mgl64"

// JointKind distinguishes the two supported actuator motions.
type JointKind int

const (
	// Rotational joints rotate about their axis; values are in degrees.
	Rotational JointKind = iota
	// Linear joints translate along their axis; values are in millimeters
	// and are applied to the world as meters (1/1000 scale).
	Linear
)

// String returns the wire/display name of the joint kind.
func (k JointKind) String() string {
	switch k {
	case Rotational:
		return "rotational"
	case Linear:
		return "linear"
	}
	return "unknown"
}

// Axis is a unit motion axis in a link's local (pre-joint) frame.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Vec returns the axis as a unit vector.
func (a Axis) Vec() mgl64.Vec3 {
	switch a {
	case AxisX:
		return mgl64.Vec3{1, 0, 0}
	case AxisY:
		return mgl64.Vec3{0, 1, 0}
	}
	return mgl64.Vec3{0, 0, 1}
}

// String returns the lowercase axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return "z"
}

// Default joint limits, matching the values assigned when a joint is created
// without explicit configuration.
const (
	DefaultRotationMin = -90.0 // degrees
	DefaultRotationMax = 90.0  // degrees
	DefaultLinearMin   = 0.0   // millimeters
	DefaultLinearMax   = 150.0 // millimeters
)

// Joint is a single-degree-of-freedom actuator attached to a link's local
// frame. Joints on a link compose in listed order: joint 0 is closest to the
// link's local frame, the last joint is closest to the link's children.
//
// Min/Max and Value carry the invariant Min <= Max and Min <= Value <= Max.
// Mutate them through [Joint.SetLimits] and [Joint.SetValue], which normalize
// and clamp on every write; out-of-range writes are clamped, never rejected.
type Joint struct {
	Name  string     // scene-wide unique key; repaired on collision by Scene
	Kind  JointKind  // rotational (degrees) or linear (millimeters)
	Axis  Axis       // motion axis in the link's pre-joint local frame
	Min   float64    // lower limit
	Max   float64    // upper limit
	Value float64    // current value, clamped into [Min, Max]
	Pivot mgl64.Vec3 // local point about which rotation occurs or from which translation is measured
}

// NewRotational returns a rotational joint with defaults: axis Z,
// limits [-90, 90] degrees, value 0.
func NewRotational(name string) *Joint {
	return &Joint{
		Name: name,
		Kind: Rotational,
		Axis: AxisZ,
		Min:  DefaultRotationMin,
		Max:  DefaultRotationMax,
	}
}

// NewLinear returns a linear joint with defaults: axis Z,
// limits [0, 150] millimeters, value at the lower limit.
func NewLinear(name string) *Joint {
	return &Joint{
		Name:  name,
		Kind:  Linear,
		Axis:  AxisZ,
		Min:   DefaultLinearMin,
		Max:   DefaultLinearMax,
		Value: DefaultLinearMin,
	}
}

// SetLimits stores the limit pair in normalized order (min <= max regardless
// of the argument order) and re-clamps the current value into the new range.
func (j *Joint) SetLimits(min, max float64) {
	if min > max {
		min, max = max, min
	}
	j.Min, j.Max = min, max
	j.Value = clamp(j.Value, j.Min, j.Max)
}

// SetValue stores v clamped into [Min, Max].
func (j *Joint) SetValue(v float64) {
	j.Value = clamp(v, j.Min, j.Max)
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
