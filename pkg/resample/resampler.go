// Package resample applies a slice-transform state to a volume and
// produces the selected oblique 2D intensity plane.
package resample

import (
	"errors"
	"fmt"
	"math"

	"headcirctool/internal/models"
	"headcirctool/pkg/transform"
)

// ErrIndexOutOfRange is returned when a slice index beyond the volume
// depth reaches the resampler directly, bypassing the state's own
// validation.
var ErrIndexOutOfRange = errors.New("slice index out of range")

// Resampler extracts rotated 2D slices from 3D volumes.
//
// Interpolation is nearest neighbour: it is fully deterministic, keeps
// intensity samples integral, and makes repeated calls on identical
// inputs bit-identical. Source samples outside the volume read as 0.
type Resampler struct {
	smoother *Smoother
}

// NewResampler creates a resampler using the given smoother for the
// optional smoothing pass. A nil smoother selects default smoothing
// parameters.
func NewResampler(smoother *Smoother) *Resampler {
	if smoother == nil {
		smoother = NewDefaultSmoother()
	}
	return &Resampler{smoother: smoother}
}

// Resample produces the 2D plane at state.SliceIndex() along the z
// axis of the volume transformed by state's rotation.
//
// Each output pixel (x, y) of the plane is mapped through the rigid
// transform about the volume's physical center and sampled from the
// source grid by nearest neighbour. Only the requested plane is
// computed; under a rigid map every output voxel is independent, so
// the result is value-identical to transforming the full volume and
// then slicing it.
//
// When smooth is true the plane is passed through an edge-preserving
// gradient anisotropic diffusion filter before being returned. The
// source volume is never mutated.
func (r *Resampler) Resample(vol *models.Volume, state *transform.State, smooth bool) (*models.Slice2D, error) {
	z := state.SliceIndex()
	if z < 0 || z >= vol.Depth {
		return nil, fmt.Errorf("slice %d of volume with depth %d: %w", z, vol.Depth, ErrIndexOutOfRange)
	}

	slice := models.NewSlice2D(vol.Width, vol.Height)

	for y := 0; y < vol.Height; y++ {
		for x := 0; x < vol.Width; x++ {
			// Physical coordinates of the output voxel
			px := float64(x) * vol.VoxelSize.X
			py := float64(y) * vol.VoxelSize.Y
			pz := float64(z) * vol.VoxelSize.Z

			// Map into source space and back to continuous indices
			qx, qy, qz := state.Apply(px, py, pz)
			sx := int(math.Round(qx / vol.VoxelSize.X))
			sy := int(math.Round(qy / vol.VoxelSize.Y))
			sz := int(math.Round(qz / vol.VoxelSize.Z))

			slice.Set(x, y, vol.At(sx, sy, sz))
		}
	}

	if smooth {
		return r.smoother.Smooth(slice), nil
	}
	return slice, nil
}
