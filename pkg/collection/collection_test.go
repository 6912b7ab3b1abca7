package collection

import (
	"errors"
	"fmt"
	"testing"

	"headcirctool/internal/models"
)

func makeEntries(n int) []*Entry {
	entries := make([]*Entry, n)
	for i := range entries {
		entries[i] = NewEntry(fmt.Sprintf("scan%d", i), models.NewVolume(4, 4, 4))
	}
	return entries
}

// TestNewEntryCreatesZeroState checks the paired transform state
// starts at all-zero settings.
func TestNewEntryCreatesZeroState(t *testing.T) {
	e := NewEntry("scan", models.NewVolume(4, 4, 6))

	if e.State == nil {
		t.Fatalf("Entry has no transform state")
	}
	if e.State.ThetaX() != 0 || e.State.ThetaY() != 0 || e.State.ThetaZ() != 0 || e.State.SliceIndex() != 0 {
		t.Errorf("Expected all-zero state, got (%d, %d, %d, %d)",
			e.State.ThetaX(), e.State.ThetaY(), e.State.ThetaZ(), e.State.SliceIndex())
	}
}

// TestAdvanceFullCycleReturnsToStart advances len(collection) times
// and expects the cursor back where it started.
func TestAdvanceFullCycleReturnsToStart(t *testing.T) {
	c := New(makeEntries(3)...)

	start, err := c.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	for i := 0; i < c.Len(); i++ {
		if err := c.Advance(); err != nil {
			t.Fatalf("Advance %d failed: %v", i, err)
		}
	}

	end, err := c.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if start != end {
		t.Errorf("Cursor did not return to the starting entry")
	}
}

// TestAdvanceRetreatWraparound checks both directions wrap at the
// ends.
func TestAdvanceRetreatWraparound(t *testing.T) {
	c := New(makeEntries(3)...)

	if err := c.Retreat(); err != nil {
		t.Fatalf("Retreat failed: %v", err)
	}
	if c.Cursor() != 2 {
		t.Errorf("Expected retreat from 0 to wrap to 2, got %d", c.Cursor())
	}

	if err := c.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if c.Cursor() != 0 {
		t.Errorf("Expected advance from 2 to wrap to 0, got %d", c.Cursor())
	}
}

// TestNavigationSingleEntryIsNoOp verifies advance and retreat leave
// the cursor at 0 on a length-1 collection.
func TestNavigationSingleEntryIsNoOp(t *testing.T) {
	c := New(makeEntries(1)...)

	if err := c.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if c.Cursor() != 0 {
		t.Errorf("Advance moved the cursor to %d on a single entry", c.Cursor())
	}

	if err := c.Retreat(); err != nil {
		t.Fatalf("Retreat failed: %v", err)
	}
	if c.Cursor() != 0 {
		t.Errorf("Retreat moved the cursor to %d on a single entry", c.Cursor())
	}
}

// TestNavigationEmptyCollection checks both directions fail with
// ErrEmptyCollection.
func TestNavigationEmptyCollection(t *testing.T) {
	c := New()

	if err := c.Advance(); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("Advance: expected ErrEmptyCollection, got %v", err)
	}
	if err := c.Retreat(); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("Retreat: expected ErrEmptyCollection, got %v", err)
	}
	if _, err := c.Current(); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("Current: expected ErrEmptyCollection, got %v", err)
	}
}

// TestRemoveGuards covers the empty and single-element removal
// guards; the failed removal must leave the collection unmodified.
func TestRemoveGuards(t *testing.T) {
	empty := New()
	if err := empty.Remove(0); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("Remove on empty: expected ErrEmptyCollection, got %v", err)
	}

	single := New(makeEntries(1)...)
	before, err := single.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	if err := single.Remove(0); !errors.Is(err, ErrSingleElement) {
		t.Errorf("Remove on single: expected ErrSingleElement, got %v", err)
	}
	if single.Len() != 1 {
		t.Errorf("Failed removal changed length to %d", single.Len())
	}
	after, err := single.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if before != after {
		t.Errorf("Failed removal changed the current entry")
	}
}

// TestRemoveKeepsCursorOnEntry removes an earlier entry and expects
// the cursor to follow its entry to the new index.
func TestRemoveKeepsCursorOnEntry(t *testing.T) {
	c := New(makeEntries(3)...)
	if err := c.SetCursor(2); err != nil {
		t.Fatalf("SetCursor failed: %v", err)
	}
	current, _ := c.Current()

	if err := c.Remove(0); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if c.Cursor() != 1 {
		t.Errorf("Expected cursor 1 after removing an earlier entry, got %d", c.Cursor())
	}
	after, _ := c.Current()
	if current != after {
		t.Errorf("Cursor no longer points at the same entry")
	}
}

// TestRemoveLastEntryClampsCursor removes the entry under a cursor at
// the end and expects the cursor to clamp into range.
func TestRemoveLastEntryClampsCursor(t *testing.T) {
	c := New(makeEntries(3)...)
	if err := c.SetCursor(2); err != nil {
		t.Fatalf("SetCursor failed: %v", err)
	}

	if err := c.Remove(2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if c.Cursor() != 1 {
		t.Errorf("Expected cursor clamped to 1, got %d", c.Cursor())
	}
}

// TestInsertKeepsCursorEntry inserts before the cursor and expects
// the cursor to keep pointing at the same entry.
func TestInsertKeepsCursorEntry(t *testing.T) {
	c := New(makeEntries(2)...)
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	current, _ := c.Current()

	extra := NewEntry("inserted", models.NewVolume(4, 4, 4))
	if err := c.Insert(0, extra); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if c.Len() != 3 {
		t.Fatalf("Expected 3 entries, got %d", c.Len())
	}
	after, _ := c.Current()
	if current != after {
		t.Errorf("Insert moved the cursor off its entry")
	}
	first, err := c.At(0)
	if err != nil {
		t.Fatalf("At failed: %v", err)
	}
	if first != extra {
		t.Errorf("Inserted entry is not at index 0")
	}
}

// TestAppendExtendKeepCursor verifies additions at the end never move
// the cursor.
func TestAppendExtendKeepCursor(t *testing.T) {
	c := New(makeEntries(2)...)
	if err := c.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	c.Append(NewEntry("appended", models.NewVolume(4, 4, 4)))
	c.Extend(makeEntries(2))

	if c.Len() != 5 {
		t.Fatalf("Expected 5 entries, got %d", c.Len())
	}
	if c.Cursor() != 1 {
		t.Errorf("Additions moved the cursor to %d", c.Cursor())
	}
}
