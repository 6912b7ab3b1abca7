package contour

import "headcirctool/internal/models"

// Border following after Suzuki & Abe, the algorithm behind OpenCV's
// findContours with full hierarchy retrieval. A raster scan starts a
// trace at every outer-border and hole-border pixel; traced pixels are
// relabelled with a signed border id so each border is followed once.
// The frame of the image acts as the root hole border, so a contour
// whose parent is the frame is an outermost boundary.

// frameNBD is the border id of the image frame, the root of the
// nesting hierarchy.
const frameNBD = 1

// border is one traced closed boundary with its position in the
// nesting hierarchy.
type border struct {
	id     int
	points []models.Point
	hole   bool
	parent int // border id of the enclosing border; frameNBD at top level
}

// Clockwise 8-neighbourhood as (dy, dx), starting east, in image
// coordinates (y grows downward).
var clockwise = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// findBorders traces every closed border of the 0/1 mask and returns
// them in trace order with parent links. Trace order is the raster
// order of the border start pixels, so the first returned border of a
// single-component mask is always its outer boundary. The mask
// contents are consumed as the trace's working labels; callers must
// not reuse the mask afterwards.
func findBorders(mask []int, width, height int) []*border {
	get := func(y, x int) int {
		if x < 0 || x >= width || y < 0 || y >= height {
			return 0
		}
		return mask[y*width+x]
	}

	byID := map[int]*border{
		frameNBD: {id: frameNBD, hole: true},
	}
	var traced []*border
	nbd := frameNBD

	for y := 0; y < height; y++ {
		lnbd := frameNBD
		for x := 0; x < width; x++ {
			v := mask[y*width+x]
			if v == 0 {
				continue
			}

			started := false
			var startY, startX int
			var hole bool
			switch {
			case v == 1 && get(y, x-1) == 0:
				// Outer border start: unvisited pixel with background
				// to the left
				nbd++
				startY, startX = y, x-1
				hole = false
				started = true
			case v >= 1 && get(y, x+1) == 0:
				// Hole border start: foreground pixel with background
				// to the right
				nbd++
				startY, startX = y, x+1
				hole = true
				if v > 1 {
					lnbd = v
				}
				started = true
			}

			if started {
				enclosing := byID[lnbd]
				parent := lnbd
				if enclosing.hole == hole {
					// Same border type as the last one met on this
					// row: they are siblings under a common parent
					parent = enclosing.parent
				}

				points := followBorder(mask, width, height, y, x, startY, startX, nbd)
				b := &border{id: nbd, points: points, hole: hole, parent: parent}
				byID[nbd] = b
				traced = append(traced, b)
			}

			if cur := mask[y*width+x]; cur != 1 {
				lnbd = abs(cur)
			}
		}
	}

	return traced
}

// followBorder walks one closed border starting at pixel (y, x), with
// (startY, startX) the background neighbour that triggered the start.
// Visited pixels are relabelled with +nbd or -nbd per the algorithm's
// marking rules. Returns the border pixels in traversal order without
// a duplicated endpoint.
func followBorder(mask []int, width, height, y, x, startY, startX, nbd int) []models.Point {
	get := func(py, px int) int {
		if px < 0 || px >= width || py < 0 || py >= height {
			return 0
		}
		return mask[py*width+px]
	}

	// Clockwise from the triggering background neighbour, find the
	// first foreground pixel around the start
	startDir := dirOf(y, x, startY, startX)
	firstY, firstX := -1, -1
	for k := 0; k < 8; k++ {
		d := clockwise[(startDir+k)%8]
		if get(y+d[0], x+d[1]) != 0 {
			firstY, firstX = y+d[0], x+d[1]
			break
		}
	}
	if firstY < 0 {
		// Isolated single-pixel border
		mask[y*width+x] = -nbd
		return []models.Point{{X: x, Y: y}}
	}

	points := make([]models.Point, 0, 16)
	prevY, prevX := firstY, firstX
	curY, curX := y, x

	for {
		// Counterclockwise from just past the previous pixel, find the
		// next border pixel around the current one
		prevDir := dirOf(curY, curX, prevY, prevX)
		var nextY, nextX int
		examinedRightZero := false
		for k := 1; k <= 8; k++ {
			d := clockwise[((prevDir-k)%8+8)%8]
			ny, nx := curY+d[0], curX+d[1]
			if get(ny, nx) != 0 {
				nextY, nextX = ny, nx
				break
			}
			if d[0] == 0 && d[1] == 1 {
				examinedRightZero = true
			}
		}

		// Marking: a border pixel whose right neighbour was examined
		// and empty closes off against the background on that side
		idx := curY*width + curX
		if examinedRightZero {
			mask[idx] = -nbd
		} else if mask[idx] == 1 {
			mask[idx] = nbd
		}
		points = append(points, models.Point{X: curX, Y: curY})

		// Back at the start in the starting configuration: closed
		if nextY == y && nextX == x && curY == firstY && curX == firstX {
			break
		}
		prevY, prevX = curY, curX
		curY, curX = nextY, nextX
	}

	return points
}

// dirOf returns the clockwise direction index from (cy, cx) to its
// 8-neighbour (ny, nx).
func dirOf(cy, cx, ny, nx int) int {
	for k, d := range clockwise {
		if cy+d[0] == ny && cx+d[1] == nx {
			return k
		}
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
