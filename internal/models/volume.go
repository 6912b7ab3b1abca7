// Package models defines the shared data carriers for the head
// circumference measurement pipeline: 3D volumes, 2D slices, and contours.
package models

// Volume represents a loaded 3D grayscale MRI volume.
//
// The voxel grid is stored as a flat array in row-major order
// (z-major, then y, then x). Intensity samples are integral values
// stored as float64. A Volume is read-only to the measurement core:
// nothing downstream of loading ever mutates Data.
type Volume struct {
	// Data is the 3D voxel data as a 1D array in row-major order
	Data []float64

	// Width is the number of voxels along the x axis
	Width int

	// Height is the number of voxels along the y axis
	Height int

	// Depth is the number of voxels along the z axis (slice count)
	Depth int

	// VoxelSize is the physical size of each voxel in mm
	VoxelSize struct {
		X, Y, Z float64
	}
}

// NewVolume creates a volume of the given dimensions with all-zero
// intensities and unit voxel spacing.
func NewVolume(width, height, depth int) *Volume {
	v := &Volume{
		Data:   make([]float64, width*height*depth),
		Width:  width,
		Height: height,
		Depth:  depth,
	}
	v.VoxelSize.X = 1.0
	v.VoxelSize.Y = 1.0
	v.VoxelSize.Z = 1.0
	return v
}

// At returns the intensity at voxel (x, y, z). Coordinates outside the
// grid read as 0, matching the resampler's default pixel value.
func (v *Volume) At(x, y, z int) float64 {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height || z < 0 || z >= v.Depth {
		return 0
	}
	return v.Data[z*v.Width*v.Height+y*v.Width+x]
}

// Set writes the intensity at voxel (x, y, z). Out-of-grid coordinates
// are ignored. Intended for loaders and tests only; the measurement
// core never calls it.
func (v *Volume) Set(x, y, z int, value float64) {
	if x < 0 || x >= v.Width || y < 0 || y >= v.Height || z < 0 || z >= v.Depth {
		return
	}
	v.Data[z*v.Width*v.Height+y*v.Width+x] = value
}

// Center returns the physical center of the volume, used as the fixed
// rotation pivot. It is the continuous index (d-1)/2 on each axis
// scaled by the voxel size.
func (v *Volume) Center() (cx, cy, cz float64) {
	cx = float64(v.Width-1) / 2.0 * v.VoxelSize.X
	cy = float64(v.Height-1) / 2.0 * v.VoxelSize.Y
	cz = float64(v.Depth-1) / 2.0 * v.VoxelSize.Z
	return cx, cy, cz
}

// Slice2D is a single 2D intensity plane produced by the resampler.
// Data is stored in row-major order (y, then x), so Data[y*Width+x] is
// the pixel at native coordinates (x, y) of the slice. Each resample
// call produces a fresh Slice2D; slices are never cached or shared.
type Slice2D struct {
	// Data is the 2D intensity data as a 1D array in row-major order
	Data []float64

	// Width is the slice width in pixels
	Width int

	// Height is the slice height in pixels
	Height int
}

// NewSlice2D creates an all-zero slice of the given dimensions.
func NewSlice2D(width, height int) *Slice2D {
	return &Slice2D{
		Data:   make([]float64, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the intensity at pixel (x, y). Out-of-bounds reads are 0.
func (s *Slice2D) At(x, y int) float64 {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0
	}
	return s.Data[y*s.Width+x]
}

// Set writes the intensity at pixel (x, y). Out-of-bounds writes are
// ignored.
func (s *Slice2D) Set(x, y int, value float64) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	s.Data[y*s.Width+x] = value
}

// Point is a 2D pixel coordinate on a slice, in the slice's native
// (x, y) orientation.
type Point struct {
	X, Y int
}

// Contour is an ordered closed sequence of boundary pixels. The first
// point is not duplicated at the end; closure is implicit and the
// perimeter measurement always includes the wrap-around segment.
type Contour struct {
	// Points are the boundary pixels in traversal order
	Points []Point
}

// Len returns the number of points on the contour.
func (c *Contour) Len() int {
	return len(c.Points)
}

// Clone returns a deep copy of the contour.
func (c *Contour) Clone() *Contour {
	points := make([]Point, len(c.Points))
	copy(points, c.Points)
	return &Contour{Points: points}
}
