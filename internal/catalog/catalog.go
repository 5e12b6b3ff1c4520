// Package catalog holds the fixed roster of playable characters.
//
// The roster is seeded once at process start and is read-only afterwards;
// games reference characters by ID only.
package catalog

import (
	"fmt"

	"github.com/mirrorlake/guesswho/internal/domain"
)

// Catalog is an immutable, ordered set of characters.
type Catalog struct {
	ordered []domain.Character
	byID    map[string]domain.Character
}

// New builds a catalog from the given characters, preserving order.
// Duplicate IDs are rejected.
func New(characters []domain.Character) (*Catalog, error) {
	c := &Catalog{
		ordered: make([]domain.Character, 0, len(characters)),
		byID:    make(map[string]domain.Character, len(characters)),
	}
	for _, ch := range characters {
		if _, exists := c.byID[ch.ID]; exists {
			return nil, fmt.Errorf("duplicate character id %q", ch.ID)
		}
		c.byID[ch.ID] = ch
		c.ordered = append(c.ordered, ch)
	}
	return c, nil
}

// Default returns the standard 20-character roster.
func Default() *Catalog {
	c, err := New(defaultRoster())
	if err != nil {
		// The default roster is a compile-time constant; a duplicate ID here
		// is a programming error.
		panic("catalog: invalid default roster: " + err.Error())
	}
	return c
}

// All returns every character in insertion order. The returned slice is a
// copy; callers may not mutate catalog state through it.
func (c *Catalog) All() []domain.Character {
	out := make([]domain.Character, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Get returns the character with the given ID.
func (c *Catalog) Get(id string) (domain.Character, bool) {
	ch, ok := c.byID[id]
	return ch, ok
}

// Len returns the roster size.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// Remaining returns all characters not present in the eliminated set,
// in insertion order.
func (c *Catalog) Remaining(eliminated []string) []domain.Character {
	gone := make(map[string]struct{}, len(eliminated))
	for _, id := range eliminated {
		gone[id] = struct{}{}
	}
	var out []domain.Character
	for _, ch := range c.ordered {
		if _, ok := gone[ch.ID]; !ok {
			out = append(out, ch)
		}
	}
	return out
}

// ResolveID maps a character reference (ID or display name) to a roster ID.
// Oracle responses are allowed to name characters either way.
func (c *Catalog) ResolveID(ref string) (string, bool) {
	if ch, ok := c.byID[ref]; ok {
		return ch.ID, true
	}
	for _, ch := range c.ordered {
		if ch.Name == ref {
			return ch.ID, true
		}
	}
	return "", false
}
