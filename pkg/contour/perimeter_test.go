package contour

import (
	"errors"
	"math"
	"testing"

	"headcirctool/internal/models"
)

// TestMeasureSquare computes the perimeter of an axis-aligned square
// given by its four corners.
func TestMeasureSquare(t *testing.T) {
	c := &models.Contour{Points: []models.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}}

	length, err := Measure(c)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	if length != 40 {
		t.Errorf("Expected perimeter 40, got %v", length)
	}
}

// TestMeasureIncludesClosingSegment checks the wrap-around distance
// from the last point back to the first is always included.
func TestMeasureIncludesClosingSegment(t *testing.T) {
	c := &models.Contour{Points: []models.Point{
		{X: 0, Y: 0}, {X: 3, Y: 4},
	}}

	length, err := Measure(c)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	// 5 out plus 5 back
	if math.Abs(length-10) > 1e-12 {
		t.Errorf("Expected closed length 10, got %v", length)
	}
}

// TestMeasureDirectionInvariant verifies that reversing the traversal
// direction does not change the closed-curve length.
func TestMeasureDirectionInvariant(t *testing.T) {
	c := &models.Contour{Points: []models.Point{
		{X: 1, Y: 1}, {X: 7, Y: 2}, {X: 9, Y: 8}, {X: 4, Y: 11}, {X: 0, Y: 6},
	}}

	reversed := c.Clone()
	for i, j := 0, len(reversed.Points)-1; i < j; i, j = i+1, j-1 {
		reversed.Points[i], reversed.Points[j] = reversed.Points[j], reversed.Points[i]
	}

	forward, err := Measure(c)
	if err != nil {
		t.Fatalf("Measure failed: %v", err)
	}
	backward, err := Measure(reversed)
	if err != nil {
		t.Fatalf("Measure of reversed contour failed: %v", err)
	}

	if math.Abs(forward-backward) > 1e-9 {
		t.Errorf("Direction changed the length: %v vs %v", forward, backward)
	}
}

// TestMeasureDoesNotMutate compares the contour against a snapshot
// taken before the call.
func TestMeasureDoesNotMutate(t *testing.T) {
	c := &models.Contour{Points: []models.Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5},
	}}
	snapshot := c.Clone()

	if _, err := Measure(c); err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if len(c.Points) != len(snapshot.Points) {
		t.Fatalf("Measure changed the point count")
	}
	for i := range c.Points {
		if c.Points[i] != snapshot.Points[i] {
			t.Errorf("Measure mutated point %d: %v vs %v", i, c.Points[i], snapshot.Points[i])
		}
	}
}

// TestMeasureEmptyContour covers the guard for degenerate contours.
func TestMeasureEmptyContour(t *testing.T) {
	cases := []*models.Contour{
		nil,
		{},
		{Points: []models.Point{{X: 3, Y: 3}}},
	}

	for i, c := range cases {
		_, err := Measure(c)
		if !errors.Is(err, ErrEmptyContour) {
			t.Errorf("Case %d: expected ErrEmptyContour, got %v", i, err)
		}
	}
}
