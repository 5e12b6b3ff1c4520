package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mirrorlake/guesswho/internal/domain"
)

func newTestGame(id string) *domain.Game {
	return &domain.Game{
		ID:               id,
		PlayerID:         "p_1",
		HumanCharacterID: "char_1",
		AICharacterID:    "char_2",
		CurrentTurn:      domain.TurnAI,
		Status:           domain.StatusActive,
		Eliminated:       []string{},
		TurnCount:        1,
		CreatedAt:        time.Now().UTC(),
	}
}

func TestMemoryCreateAndGet(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	if err := s.CreateGame(ctx, newTestGame("g1")); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	g, err := s.GetGame(ctx, "g1")
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if g == nil {
		t.Fatal("Expected game, got nil")
	}
	if g.Status != domain.StatusActive || g.CurrentTurn != domain.TurnAI || g.TurnCount != 1 {
		t.Errorf("Unexpected defaults: %+v", g)
	}

	missing, err := s.GetGame(ctx, "nope")
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for missing game")
	}
}

func TestMemoryUpdatePartial(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	if err := s.CreateGame(ctx, newTestGame("g1")); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	turn := domain.TurnHuman
	count := 4
	g, err := s.UpdateGame(ctx, "g1", domain.GameUpdate{CurrentTurn: &turn, TurnCount: &count})
	if err != nil {
		t.Fatalf("UpdateGame failed: %v", err)
	}
	if g.CurrentTurn != domain.TurnHuman || g.TurnCount != 4 {
		t.Errorf("Update not applied: %+v", g)
	}
	// Untouched fields survive the merge.
	if g.Status != domain.StatusActive || g.AICharacterID != "char_2" {
		t.Errorf("Merge clobbered fields: %+v", g)
	}
}

func TestMemoryUpdateNotFound(t *testing.T) {
	s := NewMemory()
	status := domain.StatusDraw

	_, err := s.UpdateGame(context.Background(), "missing", domain.GameUpdate{Status: &status})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryHistoryAppendOrder(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	if err := s.CreateGame(ctx, newTestGame("g1")); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	kinds := []domain.EntryKind{
		domain.EntryAIQuestion,
		domain.EntryHumanResponse,
		domain.EntryAIElimination,
	}
	for _, k := range kinds {
		entry := &domain.HistoryEntry{GameID: "g1", Kind: k, Content: string(k)}
		if err := s.AppendHistory(ctx, entry); err != nil {
			t.Fatalf("AppendHistory failed: %v", err)
		}
		if entry.ID == "" || entry.Seq == 0 || entry.CreatedAt.IsZero() {
			t.Errorf("AppendHistory did not assign ID/Seq/CreatedAt: %+v", entry)
		}
	}

	entries, err := s.GetHistory(ctx, "g1")
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Kind != kinds[i] {
			t.Errorf("Entry %d: expected %s, got %s", i, kinds[i], e.Kind)
		}
		if i > 0 && entries[i].Seq <= entries[i-1].Seq {
			t.Errorf("Seq not strictly increasing: %d then %d", entries[i-1].Seq, entries[i].Seq)
		}
	}
}

func TestMemoryHistoryEmptyGame(t *testing.T) {
	s := NewMemory()

	entries, err := s.GetHistory(context.Background(), "never-created")
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(entries))
	}
}

func TestMemoryListGamesByPlayer(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	older := newTestGame("g1")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := newTestGame("g2")
	other := newTestGame("g3")
	other.PlayerID = "p_2"

	for _, g := range []*domain.Game{older, newer, other} {
		if err := s.CreateGame(ctx, g); err != nil {
			t.Fatalf("CreateGame failed: %v", err)
		}
	}

	games, err := s.ListGamesByPlayer(ctx, "p_1")
	if err != nil {
		t.Fatalf("ListGamesByPlayer failed: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(games))
	}
	if games[0].ID != "g2" || games[1].ID != "g1" {
		t.Errorf("Expected newest first, got %s then %s", games[0].ID, games[1].ID)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	if err := s.CreateGame(ctx, newTestGame("g1")); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}

	g1, _ := s.GetGame(ctx, "g1")
	g1.Status = domain.StatusDraw
	g1.Eliminated = append(g1.Eliminated, "char_9")

	g2, _ := s.GetGame(ctx, "g1")
	if g2.Status != domain.StatusActive || len(g2.Eliminated) != 0 {
		t.Error("Mutating a returned game leaked into the store")
	}
}
