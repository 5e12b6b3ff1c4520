// Package oracle wraps the external reasoning service the AI opponent
// delegates to. The raw Client contract may fail; Service layers the
// deterministic fallback policy on top so game flow never stalls on the
// external call.
package oracle

import (
	"context"

	"github.com/mirrorlake/guesswho/internal/domain"
)

// Answer is a yes/no verdict about a character attribute.
type Answer string

// Answer values.
const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

// AnswerResult is the oracle's verdict on a human question.
type AnswerResult struct {
	Answer    Answer `json:"answer"`
	Reasoning string `json:"reasoning"`
}

// QuestionResult is a question the AI opponent wants to ask.
type QuestionResult struct {
	Question  string `json:"question"`
	Reasoning string `json:"reasoning"`
}

// EliminationResult lists the characters the AI strikes off its board after a
// human response. Eliminated holds roster character IDs.
type EliminationResult struct {
	Eliminated []string `json:"eliminatedCharacters"`
	Reasoning  string   `json:"reasoning"`
}

// GuessResult is the AI's final guess at the human's character.
type GuessResult struct {
	CharacterID   string `json:"guessedCharacterId"`
	CharacterName string `json:"characterName"`
	Reasoning     string `json:"reasoning"`
}

// ShouldGuessResult is the AI's decision on whether to guess now.
type ShouldGuessResult struct {
	ShouldGuess bool   `json:"shouldGuess"`
	Reasoning   string `json:"reasoning"`
	Confidence  int    `json:"confidence"` // 0-100
}

// Client is the raw request/response contract with the reasoning service.
// Every call is a single round trip with no retry; implementations return an
// error on network failure, timeout or a malformed response.
type Client interface {
	// AnswerQuestion answers a yes/no question about a character's attributes.
	AnswerQuestion(ctx context.Context, question string, attrs domain.CharacterAttributes) (AnswerResult, error)

	// GenerateQuestion proposes the AI's next question given the remaining
	// candidates and the conversation so far. Questions already present in
	// history must not be repeated.
	GenerateQuestion(ctx context.Context, remaining []domain.Character, history []domain.HistoryEntry) (QuestionResult, error)

	// ProcessResponse infers which characters the AI can eliminate after the
	// human answered its latest question.
	ProcessResponse(ctx context.Context, all []domain.Character, question, response string, history []domain.HistoryEntry) (EliminationResult, error)

	// MakeGuess picks the character the AI believes the human holds.
	MakeGuess(ctx context.Context, all []domain.Character, history []domain.HistoryEntry) (GuessResult, error)

	// ShouldMakeGuess decides whether the AI is confident enough to guess.
	ShouldMakeGuess(ctx context.Context, all []domain.Character, history []domain.HistoryEntry, turnCount int) (ShouldGuessResult, error)
}
