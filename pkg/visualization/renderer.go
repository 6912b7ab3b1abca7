// Package visualization renders 2D slices and measured contours to
// grayscale images and exports them as PNG files.
package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"headcirctool/internal/models"
)

// namedColors maps the colour names accepted for contour overlays.
var namedColors = map[string]color.RGBA{
	"red":     {R: 0xff, A: 0xff},
	"green":   {G: 0xff, A: 0xff},
	"blue":    {B: 0xff, A: 0xff},
	"yellow":  {R: 0xff, G: 0xff, A: 0xff},
	"cyan":    {G: 0xff, B: 0xff, A: 0xff},
	"magenta": {R: 0xff, B: 0xff, A: 0xff},
	"white":   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"black":   {A: 0xff},
}

// ParseColor converts a contour colour setting to an RGBA colour. It
// accepts a 6-hexit rrggbb string (no leading #) or one of the named
// colours.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want rrggbb or a color name", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Renderer converts slices and contours into displayable images.
type Renderer struct {
	contourColor color.RGBA
}

// NewRenderer creates a renderer that draws contour overlays in the
// given colour.
func NewRenderer(contourColor color.RGBA) *Renderer {
	return &Renderer{contourColor: contourColor}
}

// RenderSlice converts a slice to an 8-bit grayscale image, rescaling
// the observed intensity range to 0..255. A constant slice renders as
// black.
func (r *Renderer) RenderSlice(slice *models.Slice2D) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, slice.Width, slice.Height))

	lo, hi := slice.Data[0], slice.Data[0]
	for _, v := range slice.Data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi <= lo {
		return img
	}

	scale := 255.0 / (hi - lo)
	for y := 0; y < slice.Height; y++ {
		for x := 0; x < slice.Width; x++ {
			value := uint8(math.Round((slice.At(x, y) - lo) * scale))
			img.SetGray(x, y, color.Gray{Y: value})
		}
	}
	return img
}

// RenderWithContour renders the slice and draws the contour points
// over it in the renderer's contour colour. The contour's (x, y)
// points index the slice directly, so the overlay lines up with the
// rendered pixels.
func (r *Renderer) RenderWithContour(slice *models.Slice2D, c *models.Contour) *image.RGBA {
	gray := r.RenderSlice(slice)

	img := image.NewRGBA(gray.Bounds())
	for y := 0; y < slice.Height; y++ {
		for x := 0; x < slice.Width; x++ {
			img.Set(x, y, gray.GrayAt(x, y))
		}
	}

	if c != nil {
		for _, p := range c.Points {
			img.SetRGBA(p.X, p.Y, r.contourColor)
		}
	}
	return img
}

// ExportName builds the export filename for a rendered slice from the
// source name (or the collection index when useIndex is set) plus the
// slice settings, e.g. scan_15_0_0_64.png or 2_15_0_0_64.png.
func ExportName(name string, index int, useIndex bool, thetaX, thetaY, thetaZ, sliceIndex int) string {
	base := name
	if useIndex {
		base = fmt.Sprintf("%d", index)
	}
	return fmt.Sprintf("%s_%d_%d_%d_%d.png", base, thetaX, thetaY, thetaZ, sliceIndex)
}

// SaveImage writes an image as a PNG file, creating the directory if
// needed.
func SaveImage(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
