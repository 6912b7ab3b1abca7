// Package collection holds the ordered set of loaded volumes and
// their slice-transform states, with a circular cursor for
// next/previous navigation.
//
// The collection is an explicit value passed to whoever needs it;
// there is no package-level current list or current index.
package collection

import (
	"errors"
	"fmt"

	"headcirctool/internal/models"
	"headcirctool/pkg/transform"
)

var (
	// ErrEmptyCollection guards navigation and removal on a
	// collection with no entries.
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrSingleElement guards removal of the last remaining entry:
	// the caller always needs at least one current volume.
	ErrSingleElement = errors.New("collection has a single entry")
)

// Entry pairs one loaded volume with its own slice-transform state.
// The state is created alongside the volume and lives exactly as long
// as the entry.
type Entry struct {
	// Name identifies the entry, typically the source file or
	// directory name; used for export filenames
	Name string

	// Volume is the loaded voxel grid, read-only to the core
	Volume *models.Volume

	// State is the entry's rotation and slice selection state
	State *transform.State
}

// NewEntry creates an entry for vol with a fresh all-zero transform
// state pivoted on the volume's center.
func NewEntry(name string, vol *models.Volume) *Entry {
	return &Entry{
		Name:   name,
		Volume: vol,
		State:  transform.NewState(vol),
	}
}

// Collection is an ordered sequence of entries with a circular
// cursor. Whenever the collection is non-empty the cursor satisfies
// 0 <= cursor < Len(); it is unused while the collection is empty.
type Collection struct {
	entries []*Entry
	cursor  int
}

// New creates a collection over the given entries with the cursor at
// the first entry.
func New(entries ...*Entry) *Collection {
	c := &Collection{}
	c.entries = append(c.entries, entries...)
	return c
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Cursor returns the current cursor position.
func (c *Collection) Cursor() int {
	return c.cursor
}

// Current returns the entry under the cursor, or ErrEmptyCollection.
func (c *Collection) Current() (*Entry, error) {
	if len(c.entries) == 0 {
		return nil, fmt.Errorf("no current entry: %w", ErrEmptyCollection)
	}
	return c.entries[c.cursor], nil
}

// At returns the entry at index i, or ErrEmptyCollection /
// an out-of-range error.
func (c *Collection) At(i int) (*Entry, error) {
	if len(c.entries) == 0 {
		return nil, fmt.Errorf("no entries: %w", ErrEmptyCollection)
	}
	if i < 0 || i >= len(c.entries) {
		return nil, fmt.Errorf("index %d outside [0, %d)", i, len(c.entries))
	}
	return c.entries[i], nil
}

// Advance moves the cursor forward one entry, wrapping from the last
// entry to the first. A no-op on a single-entry collection; fails with
// ErrEmptyCollection when empty.
func (c *Collection) Advance() error {
	if len(c.entries) == 0 {
		return fmt.Errorf("cannot advance: %w", ErrEmptyCollection)
	}
	c.cursor = (c.cursor + 1) % len(c.entries)
	return nil
}

// Retreat moves the cursor back one entry, wrapping from the first
// entry to the last. A no-op on a single-entry collection; fails with
// ErrEmptyCollection when empty.
func (c *Collection) Retreat() error {
	if len(c.entries) == 0 {
		return fmt.Errorf("cannot retreat: %w", ErrEmptyCollection)
	}
	c.cursor = (c.cursor + len(c.entries) - 1) % len(c.entries)
	return nil
}

// Remove deletes the entry at index i. Removing from an empty
// collection fails with ErrEmptyCollection, and the last remaining
// entry can never be removed (ErrSingleElement). The cursor stays on
// the same entry when possible, otherwise clamps to the new last
// entry.
func (c *Collection) Remove(i int) error {
	if len(c.entries) == 0 {
		return fmt.Errorf("cannot remove: %w", ErrEmptyCollection)
	}
	if len(c.entries) == 1 {
		return fmt.Errorf("cannot remove the last entry: %w", ErrSingleElement)
	}
	if i < 0 || i >= len(c.entries) {
		return fmt.Errorf("index %d outside [0, %d)", i, len(c.entries))
	}

	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	if i < c.cursor {
		c.cursor--
	} else if c.cursor >= len(c.entries) {
		c.cursor = len(c.entries) - 1
	}
	return nil
}

// Insert places an entry at index i, shifting later entries. The
// cursor keeps pointing at the same entry it pointed at before. An
// out-of-range index fails; i == Len() appends.
func (c *Collection) Insert(i int, e *Entry) error {
	if i < 0 || i > len(c.entries) {
		return fmt.Errorf("index %d outside [0, %d]", i, len(c.entries))
	}
	c.entries = append(c.entries, nil)
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = e
	if len(c.entries) > 1 && i <= c.cursor {
		c.cursor++
	}
	return nil
}

// Append adds an entry at the end without moving the cursor.
func (c *Collection) Append(e *Entry) {
	c.entries = append(c.entries, e)
}

// Extend appends all entries of other without moving the cursor.
func (c *Collection) Extend(other []*Entry) {
	c.entries = append(c.entries, other...)
}

// SetCursor explicitly re-points the cursor, for callers that want to
// jump to a known entry after inserting.
func (c *Collection) SetCursor(i int) error {
	if len(c.entries) == 0 {
		return fmt.Errorf("cannot set cursor: %w", ErrEmptyCollection)
	}
	if i < 0 || i >= len(c.entries) {
		return fmt.Errorf("index %d outside [0, %d)", i, len(c.entries))
	}
	c.cursor = i
	return nil
}
