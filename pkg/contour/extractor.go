// Package contour reduces a 2D intensity slice to a single closed
// boundary contour and measures its perimeter.
//
// The extraction pipeline: normalize intensities to 8 bits, binarize
// with Otsu's method, keep only the largest connected foreground
// component, trace all closed borders with their nesting hierarchy,
// and select the outermost contour. Slices producing too many
// contours are reported as invalid rather than measured.
package contour

import (
	"errors"
	"fmt"

	"headcirctool/internal/models"
)

// DefaultInvalidSliceContours is the contour-count threshold at or
// above which a slice is considered too noisy to be a head
// cross-section.
const DefaultInvalidSliceContours = 10

// ErrInvalidSlice is returned when a slice is not measurable: either
// the border trace found no contours at all (degenerate or constant
// slice) or it found at least the configured threshold (noise, not a
// head cross-section). This is a measurement outcome, not a fault;
// callers should skip the perimeter and retry with other settings.
var ErrInvalidSlice = errors.New("slice is not a valid head cross-section")

// Extractor turns binarized slices into contours.
type Extractor struct {
	maxContours int
}

// NewExtractor creates an extractor that declares a slice invalid when
// the border trace yields maxContours or more contours. Non-positive
// values select DefaultInvalidSliceContours.
func NewExtractor(maxContours int) *Extractor {
	if maxContours <= 0 {
		maxContours = DefaultInvalidSliceContours
	}
	return &Extractor{maxContours: maxContours}
}

// Extract reduces slice to its outermost closed contour.
//
// Steps, in order:
//  1. Linear rescale of the observed min/max to 0..255. A constant
//     slice has no meaningful threshold and yields ErrInvalidSlice.
//  2. Otsu global threshold; pixels at or above it are foreground.
//  3. All foreground components except the largest (by pixel count,
//     ties broken by raster order) are removed.
//  4. All closed borders of the mask are traced with their
//     parent/child nesting hierarchy.
//  5. If the number of contours reaches the configured threshold, or
//     no contour exists, the slice fails with ErrInvalidSlice.
//  6. Otherwise the contour with no parent is returned.
//
// Contour points are in the slice's native (x, y) pixel orientation,
// so they index directly into slice.Data and agree with rendered
// output. The input slice is never mutated.
func (e *Extractor) Extract(slice *models.Slice2D) (*models.Contour, error) {
	if slice == nil || slice.Width == 0 || slice.Height == 0 {
		return nil, fmt.Errorf("empty slice: %w", ErrInvalidSlice)
	}

	gray, ok := normalize(slice)
	if !ok {
		// Constant intensity: no foreground/background separation exists
		return nil, fmt.Errorf("constant-intensity slice: %w", ErrInvalidSlice)
	}

	threshold := otsuThreshold(gray)
	mask := binarize(gray, threshold)
	keepLargestComponent(mask, slice.Width, slice.Height)

	borders := findBorders(mask, slice.Width, slice.Height)
	if len(borders) == 0 {
		return nil, fmt.Errorf("no contours found: %w", ErrInvalidSlice)
	}
	if len(borders) >= e.maxContours {
		return nil, fmt.Errorf("%d contours found (threshold %d): %w",
			len(borders), e.maxContours, ErrInvalidSlice)
	}

	for _, b := range borders {
		if b.parent == frameNBD {
			return &models.Contour{Points: b.points}, nil
		}
	}
	// Unreachable with a non-empty border set: the first traced border
	// always hangs off the frame
	return nil, fmt.Errorf("no parentless contour: %w", ErrInvalidSlice)
}
