package game

import "errors"

// Sentinel errors surfaced by game operations. Oracle failures are never
// among them; those are absorbed by per-operation fallbacks.
var (
	// ErrGameNotFound means the game ID does not resolve.
	ErrGameNotFound = errors.New("game not found")

	// ErrCharacterNotFound means a character ID does not resolve in the catalog.
	ErrCharacterNotFound = errors.New("character not found")

	// ErrGameFinished means the game already reached a terminal status.
	// Finished games are immutable.
	ErrGameFinished = errors.New("game already finished")

	// ErrEmptyQuestion means the human submitted no question text.
	ErrEmptyQuestion = errors.New("question is required")

	// ErrInvalidResponse means the human response was neither "yes" nor "no".
	ErrInvalidResponse = errors.New(`response must be "yes" or "no"`)

	// ErrNoPendingQuestion means there is no AI question to respond to.
	ErrNoPendingQuestion = errors.New("no ai question to respond to")

	// ErrAICharacterNotSet means the game has no AI character assigned yet.
	ErrAICharacterNotSet = errors.New("ai character not set")

	// ErrHumanCharacterNotSet means the game has no human character assigned yet.
	ErrHumanCharacterNotSet = errors.New("human character not set")

	// ErrInvalidUpdate means a partial game update carried an invalid value.
	ErrInvalidUpdate = errors.New("invalid game update")
)
