package visualization

import (
	"image/color"
	"testing"

	"headcirctool/internal/models"
)

// TestParseColor covers hex codes, named colours, and rejects.
func TestParseColor(t *testing.T) {
	c, err := ParseColor("b55162")
	if err != nil {
		t.Fatalf("ParseColor(b55162) failed: %v", err)
	}
	if c.R != 0xb5 || c.G != 0x51 || c.B != 0x62 || c.A != 0xff {
		t.Errorf("Expected #b55162, got %+v", c)
	}

	c, err = ParseColor("red")
	if err != nil {
		t.Fatalf("ParseColor(red) failed: %v", err)
	}
	if c.R != 0xff || c.G != 0 || c.B != 0 {
		t.Errorf("Expected red, got %+v", c)
	}

	for _, bad := range []string{"", "xyz", "12345", "not-a-color"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q): expected error", bad)
		}
	}
}

// TestRenderSliceRescalesRange checks the observed intensity range is
// stretched to the full 8-bit range.
func TestRenderSliceRescalesRange(t *testing.T) {
	slice := models.NewSlice2D(4, 1)
	slice.Set(0, 0, 100)
	slice.Set(1, 0, 150)
	slice.Set(2, 0, 200)
	slice.Set(3, 0, 300)

	img := NewRenderer(color.RGBA{}).RenderSlice(slice)

	if got := img.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("Min intensity: expected 0, got %d", got)
	}
	if got := img.GrayAt(3, 0).Y; got != 255 {
		t.Errorf("Max intensity: expected 255, got %d", got)
	}
	if got := img.GrayAt(1, 0).Y; got != 64 {
		t.Errorf("Quarter intensity: expected 64, got %d", got)
	}
}

// TestRenderWithContourOverlay checks contour pixels take the overlay
// colour and the rest stays grayscale.
func TestRenderWithContourOverlay(t *testing.T) {
	slice := models.NewSlice2D(8, 8)
	slice.Set(7, 7, 255)

	overlay := color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	c := &models.Contour{Points: []models.Point{{X: 2, Y: 3}, {X: 3, Y: 3}}}

	img := NewRenderer(overlay).RenderWithContour(slice, c)

	if got := img.RGBAAt(2, 3); got != overlay {
		t.Errorf("Contour pixel (2, 3): expected overlay colour, got %+v", got)
	}
	if got := img.RGBAAt(0, 0); got.R != got.G || got.G != got.B {
		t.Errorf("Background pixel (0, 0) not grayscale: %+v", got)
	}
}

// TestExportName covers both naming schemes.
func TestExportName(t *testing.T) {
	got := ExportName("MicroBiome_1month_T1w", 2, false, 90, 180, 0, 60)
	if got != "MicroBiome_1month_T1w_90_180_0_60.png" {
		t.Errorf("Unexpected name %q", got)
	}

	got = ExportName("MicroBiome_1month_T1w", 2, true, 0, 0, 0, 0)
	if got != "2_0_0_0_0.png" {
		t.Errorf("Unexpected index-based name %q", got)
	}
}
