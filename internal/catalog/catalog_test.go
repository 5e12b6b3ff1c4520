package catalog

import (
	"testing"

	"github.com/mirrorlake/guesswho/internal/domain"
)

func TestDefaultRoster(t *testing.T) {
	c := Default()

	if c.Len() != 20 {
		t.Fatalf("Expected 20 characters, got %d", c.Len())
	}

	all := c.All()
	if all[0].ID != "char_1" || all[0].Name != "Sarah" {
		t.Errorf("Expected char_1/Sarah first, got %s/%s", all[0].ID, all[0].Name)
	}
	if all[19].ID != "char_20" {
		t.Errorf("Expected char_20 last, got %s", all[19].ID)
	}

	// All() must be stable across calls.
	again := c.All()
	for i := range all {
		if all[i].ID != again[i].ID {
			t.Fatalf("Order not stable at index %d: %s vs %s", i, all[i].ID, again[i].ID)
		}
	}
}

func TestGet(t *testing.T) {
	c := Default()

	ch, ok := c.Get("char_2")
	if !ok {
		t.Fatal("Expected char_2 to exist")
	}
	if ch.Name != "Michael" {
		t.Errorf("Expected Michael, got %s", ch.Name)
	}
	if !ch.Attributes.HasGlasses {
		t.Error("Expected Michael to have glasses")
	}

	if _, ok := c.Get("char_99"); ok {
		t.Error("Expected char_99 to be absent")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]domain.Character{
		{ID: "a", Name: "A"},
		{ID: "a", Name: "B"},
	})
	if err == nil {
		t.Fatal("Expected duplicate id error")
	}
}

func TestRemaining(t *testing.T) {
	c := Default()

	remaining := c.Remaining([]string{"char_1", "char_3", "char_3"})
	if len(remaining) != 18 {
		t.Fatalf("Expected 18 remaining, got %d", len(remaining))
	}
	for _, ch := range remaining {
		if ch.ID == "char_1" || ch.ID == "char_3" {
			t.Errorf("Eliminated character %s still remaining", ch.ID)
		}
	}

	if got := c.Remaining(nil); len(got) != 20 {
		t.Errorf("Expected full roster with no eliminations, got %d", len(got))
	}
}

func TestResolveID(t *testing.T) {
	c := Default()

	tests := []struct {
		ref    string
		wantID string
		wantOK bool
	}{
		{"char_5", "char_5", true},
		{"Eleanor", "char_5", true},
		{"Keisha", "char_19", true},
		{"nobody", "", false},
	}

	for _, tt := range tests {
		id, ok := c.ResolveID(tt.ref)
		if ok != tt.wantOK || id != tt.wantID {
			t.Errorf("ResolveID(%q) = %q, %v; want %q, %v", tt.ref, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
