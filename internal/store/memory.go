package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mirrorlake/guesswho/internal/domain"
)

// MemoryStore implements Repository with in-process maps. State is volatile;
// it is the default store when no database path is configured, and the store
// used throughout the tests.
type MemoryStore struct {
	mu      sync.RWMutex
	games   map[string]*domain.Game
	history map[string][]domain.HistoryEntry
	seq     map[string]int64
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		games:   make(map[string]*domain.Game),
		history: make(map[string][]domain.HistoryEntry),
		seq:     make(map[string]int64),
	}
}

// CreateGame persists a new game and initializes its empty history log.
func (s *MemoryStore) CreateGame(_ context.Context, game *domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := cloneGame(game)
	s.games[g.ID] = g
	s.history[g.ID] = nil
	return nil
}

// GetGame retrieves a game by ID, or (nil, nil) if absent.
func (s *MemoryStore) GetGame(_ context.Context, id string) (*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, nil
	}
	return cloneGame(g), nil
}

// UpdateGame merges the non-nil fields of update into the stored game.
func (s *MemoryStore) UpdateGame(_ context.Context, id string, update domain.GameUpdate) (*domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyUpdate(g, update)
	return cloneGame(g), nil
}

// AppendHistory assigns ID, Seq and CreatedAt and appends the entry.
func (s *MemoryStore) AppendHistory(_ context.Context, entry *domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq[entry.GameID]++
	entry.ID = uuid.NewString()
	entry.Seq = s.seq[entry.GameID]
	entry.CreatedAt = time.Now().UTC()
	s.history[entry.GameID] = append(s.history[entry.GameID], *entry)
	return nil
}

// GetHistory returns a game's history in append order.
func (s *MemoryStore) GetHistory(_ context.Context, gameID string) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.history[gameID]
	out := make([]domain.HistoryEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// ListGamesByPlayer returns the games created by a player, newest first.
func (s *MemoryStore) ListGamesByPlayer(_ context.Context, playerID string) ([]*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Game
	for _, g := range s.games {
		if g.PlayerID == playerID {
			out = append(out, cloneGame(g))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(_ context.Context) error { return nil }

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

func cloneGame(g *domain.Game) *domain.Game {
	out := *g
	out.Eliminated = append([]string(nil), g.Eliminated...)
	return &out
}

func applyUpdate(g *domain.Game, update domain.GameUpdate) {
	if update.HumanCharacterID != nil {
		g.HumanCharacterID = *update.HumanCharacterID
	}
	if update.AICharacterID != nil {
		g.AICharacterID = *update.AICharacterID
	}
	if update.CurrentTurn != nil {
		g.CurrentTurn = *update.CurrentTurn
	}
	if update.Status != nil {
		g.Status = *update.Status
	}
	if update.Eliminated != nil {
		g.Eliminated = append([]string(nil), (*update.Eliminated)...)
	}
	if update.TurnCount != nil {
		g.TurnCount = *update.TurnCount
	}
}
