package contour

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"headcirctool/internal/models"
)

// grayLevels is the fixed quantization range for thresholding.
const grayLevels = 256

// normalize rescales the slice intensities linearly from the observed
// min/max to 0..255. It reports false for a constant slice, which has
// no observable contrast to threshold.
func normalize(slice *models.Slice2D) ([]int, bool) {
	lo := floats.Min(slice.Data)
	hi := floats.Max(slice.Data)
	if hi <= lo {
		return nil, false
	}

	scale := float64(grayLevels-1) / (hi - lo)
	gray := make([]int, len(slice.Data))
	for i, v := range slice.Data {
		gray[i] = int(math.Round((v - lo) * scale))
	}
	return gray, true
}

// otsuThreshold computes the global threshold minimizing intra-class
// (equivalently, maximizing between-class) intensity variance over a
// 256-bin histogram. Pixels at or above the returned value belong to
// the foreground class. Ties are broken toward the lowest threshold,
// keeping the result deterministic.
//
// The histogram is accumulated manually; the normalized input is
// already integral so binning is exact.
func otsuThreshold(gray []int) int {
	var hist [grayLevels]int
	for _, g := range gray {
		hist[g]++
	}
	total := len(gray)

	// Total intensity mass for the foreground running sums
	sumAll := 0.0
	for g, n := range hist {
		sumAll += float64(g * n)
	}

	best := -1.0
	bestT := 1
	wB := 0.0   // background pixel count (levels < t)
	sumB := 0.0 // background intensity mass

	for t := 1; t < grayLevels; t++ {
		wB += float64(hist[t-1])
		sumB += float64((t - 1) * hist[t-1])
		wF := float64(total) - wB
		if wB == 0 {
			continue
		}
		if wF == 0 {
			break
		}

		meanB := sumB / wB
		meanF := (sumAll - sumB) / wF
		diff := meanB - meanF
		between := wB * wF * diff * diff
		if between > best {
			best = between
			bestT = t
		}
	}
	return bestT
}

// binarize produces a 0/1 mask: pixels at or above the threshold are
// foreground.
func binarize(gray []int, threshold int) []int {
	mask := make([]int, len(gray))
	for i, g := range gray {
		if g >= threshold {
			mask[i] = 1
		}
	}
	return mask
}

// keepLargestComponent zeroes every 8-connected foreground component
// except the largest by pixel count, suppressing noise islands
// disconnected from the head outline. Ties keep the component
// encountered first in raster order. The mask is modified in place.
func keepLargestComponent(mask []int, width, height int) {
	labels := make([]int, len(mask))
	var sizes []int // sizes[label-1] = pixel count
	next := 1

	var stack []int
	for start, v := range mask {
		if v == 0 || labels[start] != 0 {
			continue
		}
		label := next
		next++
		size := 0

		stack = append(stack[:0], start)
		labels[start] = label
		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++

			x := idx % width
			y := idx / width
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					nidx := ny*width + nx
					if mask[nidx] != 0 && labels[nidx] == 0 {
						labels[nidx] = label
						stack = append(stack, nidx)
					}
				}
			}
		}
		sizes = append(sizes, size)
	}

	if len(sizes) <= 1 {
		return
	}

	largest := 1
	for l := 2; l <= len(sizes); l++ {
		if sizes[l-1] > sizes[largest-1] {
			largest = l
		}
	}
	for i := range mask {
		if mask[i] != 0 && labels[i] != largest {
			mask[i] = 0
		}
	}
}
