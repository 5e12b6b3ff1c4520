package domain

import (
	"time"
)

// Turn identifies whose move is expected next.
type Turn string

// Turn values.
const (
	TurnHuman Turn = "human"
	TurnAI    Turn = "ai"
)

// Valid reports whether t is a known turn owner.
func (t Turn) Valid() bool {
	return t == TurnHuman || t == TurnAI
}

// Status is the lifecycle state of a game. Every status except StatusActive
// is terminal: once a game leaves "active" its status never changes again.
type Status string

// Status values.
const (
	StatusActive    Status = "active"
	StatusHumanWon  Status = "human_won"
	StatusHumanLost Status = "human_lost"
	StatusAIWon     Status = "ai_won"
	StatusDraw      Status = "draw"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusHumanWon, StatusHumanLost, StatusAIWon, StatusDraw:
		return true
	}
	return false
}

// Terminal reports whether s ends the game.
func (s Status) Terminal() bool {
	return s.Valid() && s != StatusActive
}

// Game is one play-through between a human and the AI opponent.
type Game struct {
	ID               string    `json:"id"`
	PlayerID         string    `json:"player_id,omitempty"`
	HumanCharacterID string    `json:"humanCharacterId,omitempty"`
	AICharacterID    string    `json:"aiCharacterId,omitempty"`
	CurrentTurn      Turn      `json:"currentTurn"`
	Status           Status    `json:"status"`
	Eliminated       []string  `json:"eliminatedCharacters"`
	TurnCount        int       `json:"turnCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Finished reports whether the game has reached a terminal status.
func (g *Game) Finished() bool {
	return g.Status.Terminal()
}

// IsEliminated reports whether the given character is already off the board.
func (g *Game) IsEliminated(characterID string) bool {
	for _, id := range g.Eliminated {
		if id == characterID {
			return true
		}
	}
	return false
}

// Eliminate unions characterIDs into the eliminated set, preserving first-seen
// order. The set only ever grows; duplicates collapse.
func (g *Game) Eliminate(characterIDs ...string) {
	for _, id := range characterIDs {
		if !g.IsEliminated(id) {
			g.Eliminated = append(g.Eliminated, id)
		}
	}
}

// GameUpdate carries a partial update for a game. Nil fields are left
// untouched by the store.
type GameUpdate struct {
	HumanCharacterID *string
	AICharacterID    *string
	CurrentTurn      *Turn
	Status           *Status
	Eliminated       *[]string
	TurnCount        *int
}
