// Package transform maintains the per-volume rigid rotation and slice
// selection state used to produce oblique 2D slices from a 3D volume.
//
// A State holds three Euler rotation angles in degrees and an integer
// slice index. The derived 3x3 rotation matrix is recomputed by every
// mutator, so the matrix and the angle fields can never diverge. The
// rotation pivot is fixed at construction to the owning volume's
// physical center and never changes afterwards.
package transform

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"headcirctool/internal/models"
)

// Angle domain in degrees. Values outside this range are rejected by
// the setters, never clamped.
const (
	RotationMin = -90
	RotationMax = 90
)

// ErrOutOfRange is returned when an angle or slice index outside the
// valid domain is passed to a setter.
var ErrOutOfRange = errors.New("value out of range")

// Axis identifies one of the three rotation axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

// State is the mutable slice-selection state for a single volume:
// three rotation angles, a slice index, and the derived rotation
// matrix. Each State belongs to exactly one volume entry and must only
// be mutated through its setters.
type State struct {
	thetaX, thetaY, thetaZ int
	sliceIndex             int

	// depth is the z extent of the owning volume, captured at
	// construction for slice index validation
	depth int

	// pivot is the volume's physical center, fixed at construction
	pivotX, pivotY, pivotZ float64

	// rotation is the derived 3x3 matrix, always recomputed from the
	// current angles by the mutators
	rotation *mat.Dense
}

// NewState creates the slice-transform state for vol with all angles
// and the slice index at zero. The rotation pivot is captured from the
// volume's physical center.
func NewState(vol *models.Volume) *State {
	s := &State{depth: vol.Depth}
	s.pivotX, s.pivotY, s.pivotZ = vol.Center()
	s.recompute()
	return s
}

// ThetaX returns the x rotation angle in degrees.
func (s *State) ThetaX() int { return s.thetaX }

// ThetaY returns the y rotation angle in degrees.
func (s *State) ThetaY() int { return s.thetaY }

// ThetaZ returns the z rotation angle in degrees.
func (s *State) ThetaZ() int { return s.thetaZ }

// SliceIndex returns the current slice index.
func (s *State) SliceIndex() int { return s.sliceIndex }

// Pivot returns the fixed physical rotation center.
func (s *State) Pivot() (x, y, z float64) {
	return s.pivotX, s.pivotY, s.pivotZ
}

// SetAngle sets the rotation angle for one axis in degrees and
// recomputes the rotation matrix from all three current angles.
// Angles outside [RotationMin, RotationMax] fail with ErrOutOfRange
// and leave the state untouched.
func (s *State) SetAngle(axis Axis, degrees int) error {
	if degrees < RotationMin || degrees > RotationMax {
		return fmt.Errorf("angle %d for axis %s outside [%d, %d]: %w",
			degrees, axis, RotationMin, RotationMax, ErrOutOfRange)
	}
	switch axis {
	case AxisX:
		s.thetaX = degrees
	case AxisY:
		s.thetaY = degrees
	case AxisZ:
		s.thetaZ = degrees
	default:
		return fmt.Errorf("unknown axis %d: %w", axis, ErrOutOfRange)
	}
	s.recompute()
	return nil
}

// SetSliceIndex selects the z slice to extract. Indices outside
// [0, depth) fail with ErrOutOfRange and leave the state untouched.
func (s *State) SetSliceIndex(i int) error {
	if i < 0 || i >= s.depth {
		return fmt.Errorf("slice index %d outside [0, %d): %w", i, s.depth, ErrOutOfRange)
	}
	s.sliceIndex = i
	return nil
}

// Reset zeroes all three angles and the slice index and recomputes the
// rotation matrix. The pivot is unchanged.
func (s *State) Reset() {
	s.thetaX = 0
	s.thetaY = 0
	s.thetaZ = 0
	s.sliceIndex = 0
	s.recompute()
}

// Rotation returns the derived rotation matrix R = Rz * Ry * Rx for
// the current angles. The returned matrix is a copy; mutating it does
// not affect the state.
func (s *State) Rotation() *mat.Dense {
	out := mat.NewDense(3, 3, nil)
	out.Copy(s.rotation)
	return out
}

// Apply maps a physical point through the rigid transform: rotation by
// the current angles about the fixed pivot. This is the direction the
// resampler uses, mapping output-space points to source-space points.
func (s *State) Apply(x, y, z float64) (float64, float64, float64) {
	p := mat.NewVecDense(3, []float64{x - s.pivotX, y - s.pivotY, z - s.pivotZ})
	q := mat.NewVecDense(3, nil)
	q.MulVec(s.rotation, p)
	return q.AtVec(0) + s.pivotX, q.AtVec(1) + s.pivotY, q.AtVec(2) + s.pivotZ
}

// recompute rebuilds the rotation matrix from the current angles.
// Composition order is R = Rz * Ry * Rx.
func (s *State) recompute() {
	rx := rotationX(radians(s.thetaX))
	ry := rotationY(radians(s.thetaY))
	rz := rotationZ(radians(s.thetaZ))

	tmp := mat.NewDense(3, 3, nil)
	tmp.Mul(ry, rx)
	r := mat.NewDense(3, 3, nil)
	r.Mul(rz, tmp)
	s.rotation = r
}

func radians(degrees int) float64 {
	return float64(degrees) * math.Pi / 180.0
}

func rotationX(theta float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

func rotationY(theta float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

func rotationZ(theta float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}
