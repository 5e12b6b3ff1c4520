// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/mirrorlake/guesswho/internal/domain"
)

// Repository defines the interface for persisting games and their history.
//
// Lookups return (nil, nil) when the record does not exist; callers decide
// whether absence is an error.
type Repository interface {
	// CreateGame persists a new game and initializes its empty history log.
	CreateGame(ctx context.Context, game *domain.Game) error

	// GetGame retrieves a game by ID.
	GetGame(ctx context.Context, id string) (*domain.Game, error)

	// UpdateGame merges the non-nil fields of update into the stored game and
	// returns the result. Fails with ErrNotFound if the game does not exist.
	// Field validation is the game service's responsibility.
	UpdateGame(ctx context.Context, id string, update domain.GameUpdate) (*domain.Game, error)

	// AppendHistory assigns ID, Seq and CreatedAt to entry and appends it to
	// the end of its game's log. Seq is strictly increasing per game.
	AppendHistory(ctx context.Context, entry *domain.HistoryEntry) error

	// GetHistory returns a game's history ordered by Seq ascending. Returns an
	// empty slice when there is none.
	GetHistory(ctx context.Context, gameID string) ([]domain.HistoryEntry, error)

	// ListGamesByPlayer returns the games created by a player, newest first.
	ListGamesByPlayer(ctx context.Context, playerID string) ([]*domain.Game, error)

	// Ping verifies connectivity to the backing store.
	Ping(ctx context.Context) error

	// Close releases store resources.
	Close() error
}
