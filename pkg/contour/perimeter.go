package contour

import (
	"errors"
	"fmt"
	"math"

	"headcirctool/internal/models"
)

// ErrEmptyContour is returned when a contour has too few points to
// enclose anything.
var ErrEmptyContour = errors.New("contour has fewer than 2 points")

// Measure computes the closed-curve arc length of a contour: the sum
// of Euclidean distances between consecutive points plus the
// wrap-around distance from the last point back to the first. The
// contour is always treated as closed.
//
// Distances are in the units of the point coordinates, i.e. pixels;
// converting to physical units with the volume's voxel spacing is the
// caller's concern. Measure is pure and never mutates the contour.
func Measure(c *models.Contour) (float64, error) {
	if c == nil || len(c.Points) < 2 {
		return 0, fmt.Errorf("cannot measure perimeter: %w", ErrEmptyContour)
	}

	length := 0.0
	n := len(c.Points)
	for i := 0; i < n; i++ {
		cur := c.Points[i]
		next := c.Points[(i+1)%n]
		length += math.Hypot(float64(next.X-cur.X), float64(next.Y-cur.Y))
	}
	return length, nil
}
