// Package game implements the session state machine: turn alternation,
// elimination bookkeeping and endgame resolution. All decision-making is
// delegated to the oracle; this package only enforces the rules around it.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mirrorlake/guesswho/internal/catalog"
	"github.com/mirrorlake/guesswho/internal/domain"
	"github.com/mirrorlake/guesswho/internal/oracle"
	"github.com/mirrorlake/guesswho/internal/store"
)

// Endgame thresholds, counted over question-type history entries (human and
// AI questions combined). They are a backstop guaranteeing termination even
// when both sides play without strategy.
const (
	// drawThreshold ends any game with a wrong final guess in a draw.
	drawThreshold = 15
	// lossThreshold turns a late wrong human guess into a loss.
	lossThreshold = 10
)

// Oracle is the decision surface the state machine consults. Implemented by
// *oracle.Service; methods never fail, they fall back instead.
type Oracle interface {
	AnswerQuestion(ctx context.Context, question string, attrs domain.CharacterAttributes) oracle.AnswerResult
	GenerateQuestion(ctx context.Context, remaining []domain.Character, history []domain.HistoryEntry) oracle.QuestionResult
	ProcessResponse(ctx context.Context, all []domain.Character, question, response string, history []domain.HistoryEntry) oracle.EliminationResult
	MakeGuess(ctx context.Context, all []domain.Character, history []domain.HistoryEntry) oracle.GuessResult
	ShouldMakeGuess(ctx context.Context, all []domain.Character, history []domain.HistoryEntry, turnCount int) oracle.ShouldGuessResult
}

var _ Oracle = (*oracle.Service)(nil)

// Service owns game lifecycle and transitions. Operations on the same game
// are serialized through a per-game mutex; different games proceed in
// parallel.
type Service struct {
	repo   store.Repository
	roster *catalog.Catalog
	oracle Oracle
	events *Broker
	locks  sync.Map // gameID -> *sync.Mutex
}

// NewService creates a game service.
func NewService(repo store.Repository, roster *catalog.Catalog, o Oracle) *Service {
	return &Service{
		repo:   repo,
		roster: roster,
		oracle: o,
		events: NewBroker(),
	}
}

// Events returns the broker delivering live game events.
func (s *Service) Events() *Broker {
	return s.events
}

// Roster returns the character catalog the service plays on.
func (s *Service) Roster() *catalog.Catalog {
	return s.roster
}

// lock serializes operations for one game. The returned func releases it.
func (s *Service) lock(gameID string) func() {
	v, _ := s.locks.LoadOrStore(gameID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// loadActive fetches a game and rejects terminal ones. Callers must hold the
// game lock.
func (s *Service) loadActive(ctx context.Context, gameID string) (*domain.Game, error) {
	g, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	if g.Finished() {
		return nil, ErrGameFinished
	}
	return g, nil
}

func (s *Service) append(ctx context.Context, entry *domain.HistoryEntry) error {
	if err := s.repo.AppendHistory(ctx, entry); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	s.events.Publish(Event{Type: EventHistoryAppended, GameID: entry.GameID, Entry: entry})
	return nil
}

func (s *Service) update(ctx context.Context, gameID string, u domain.GameUpdate) (*domain.Game, error) {
	g, err := s.repo.UpdateGame(ctx, gameID, u)
	if err != nil {
		return nil, fmt.Errorf("update game: %w", err)
	}
	s.events.Publish(Event{Type: EventGameUpdated, GameID: gameID, Game: g})
	return g, nil
}

// CreateParams are the inputs for starting a game. Character assignment is a
// caller concern; either side may be left unset and patched in later.
type CreateParams struct {
	PlayerID         string
	HumanCharacterID string
	AICharacterID    string
}

// Create starts a new game: AI moves first, turn count 1, empty history.
func (s *Service) Create(ctx context.Context, params CreateParams) (*domain.Game, error) {
	for _, id := range []string{params.HumanCharacterID, params.AICharacterID} {
		if id != "" {
			if _, ok := s.roster.Get(id); !ok {
				return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, id)
			}
		}
	}

	g := &domain.Game{
		ID:               uuid.NewString(),
		PlayerID:         params.PlayerID,
		HumanCharacterID: params.HumanCharacterID,
		AICharacterID:    params.AICharacterID,
		CurrentTurn:      domain.TurnAI,
		Status:           domain.StatusActive,
		Eliminated:       []string{},
		TurnCount:        1,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.repo.CreateGame(ctx, g); err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	slog.Info("game created", "game_id", g.ID, "player_id", g.PlayerID)
	return g, nil
}

// Get fetches a game by ID.
func (s *Service) Get(ctx context.Context, gameID string) (*domain.Game, error) {
	g, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// History returns a game's audit log in append order.
func (s *Service) History(ctx context.Context, gameID string) ([]domain.HistoryEntry, error) {
	g, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	entries, err := s.repo.GetHistory(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return entries, nil
}

// ListByPlayer returns the games a player created, newest first.
func (s *Service) ListByPlayer(ctx context.Context, playerID string) ([]*domain.Game, error) {
	games, err := s.repo.ListGamesByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// Update applies a generic partial update. Enum values are validated, and the
// rules invariants hold even through this path: terminal statuses are
// immutable and the eliminated set never shrinks.
func (s *Service) Update(ctx context.Context, gameID string, u domain.GameUpdate) (*domain.Game, error) {
	if u.CurrentTurn != nil && !u.CurrentTurn.Valid() {
		return nil, fmt.Errorf("%w: unknown turn %q", ErrInvalidUpdate, *u.CurrentTurn)
	}
	if u.Status != nil && !u.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidUpdate, *u.Status)
	}
	for _, idp := range []*string{u.HumanCharacterID, u.AICharacterID} {
		if idp != nil && *idp != "" {
			if _, ok := s.roster.Get(*idp); !ok {
				return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, *idp)
			}
		}
	}

	unlock := s.lock(gameID)
	defer unlock()

	g, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	if g.Finished() && u.Status != nil && *u.Status != g.Status {
		return nil, ErrGameFinished
	}
	if u.Eliminated != nil {
		next := make(map[string]struct{}, len(*u.Eliminated))
		for _, id := range *u.Eliminated {
			if _, ok := s.roster.Get(id); !ok {
				return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, id)
			}
			next[id] = struct{}{}
		}
		for _, id := range g.Eliminated {
			if _, ok := next[id]; !ok {
				return nil, fmt.Errorf("%w: eliminated set cannot shrink", ErrInvalidUpdate)
			}
		}
	}

	return s.update(ctx, gameID, u)
}

// AskResult is the outcome of the human asking a question.
type AskResult struct {
	Answer    oracle.Answer `json:"answer"`
	Reasoning string        `json:"reasoning"`
}

// AskQuestion handles the human's question about the AI's character. The
// oracle answers against the AI character's attributes; the turn passes to
// the AI and the turn count advances.
func (s *Service) AskQuestion(ctx context.Context, gameID, question string) (*AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	unlock := s.lock(gameID)
	defer unlock()

	g, err := s.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.AICharacterID == "" {
		return nil, ErrAICharacterNotSet
	}
	aiChar, ok := s.roster.Get(g.AICharacterID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, g.AICharacterID)
	}

	answer := s.oracle.AnswerQuestion(ctx, question, aiChar.Attributes)

	if err := s.append(ctx, &domain.HistoryEntry{
		GameID:   gameID,
		Kind:     domain.EntryHumanQuestion,
		Content:  question,
		Response: string(answer.Answer),
	}); err != nil {
		return nil, err
	}

	turn := domain.TurnAI
	count := g.TurnCount + 1
	if _, err := s.update(ctx, gameID, domain.GameUpdate{CurrentTurn: &turn, TurnCount: &count}); err != nil {
		return nil, err
	}

	return &AskResult{Answer: answer.Answer, Reasoning: answer.Reasoning}, nil
}

// AIQuestion produces the AI's next question over the remaining candidates.
// Turn and status are untouched; the human still has to respond.
func (s *Service) AIQuestion(ctx context.Context, gameID string) (*oracle.QuestionResult, error) {
	unlock := s.lock(gameID)
	defer unlock()

	g, err := s.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.GetHistory(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	remaining := s.roster.Remaining(g.Eliminated)
	question := s.oracle.GenerateQuestion(ctx, remaining, history)

	if err := s.append(ctx, &domain.HistoryEntry{
		GameID:  gameID,
		Kind:    domain.EntryAIQuestion,
		Content: question.Question,
	}); err != nil {
		return nil, err
	}

	return &question, nil
}

// RespondResult reports what the AI did with the human's answer: either it
// eliminated candidates and handed the turn back, or it committed to a guess.
type RespondResult struct {
	AIGuessed        bool          `json:"aiGuessed"`
	GuessedCharacter string        `json:"guessedCharacter,omitempty"`
	Correct          bool          `json:"correct"`
	GameEnded        bool          `json:"gameEnded"`
	Status           domain.Status `json:"status"`
	Eliminated       []string      `json:"aiEliminated,omitempty"`
	Reasoning        string        `json:"reasoning,omitempty"`
}

// Respond handles the human's yes/no answer to the AI's latest question. The
// elimination inference, the guess decision and the guess itself are all
// oracle calls; any of them failing degrades to a safe fallback rather than
// aborting the round.
func (s *Service) Respond(ctx context.Context, gameID, response string) (*RespondResult, error) {
	response = strings.ToLower(strings.TrimSpace(response))
	if response != "yes" && response != "no" {
		return nil, ErrInvalidResponse
	}

	unlock := s.lock(gameID)
	defer unlock()

	g, err := s.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.GetHistory(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	lastQuestion := domain.LastOfKind(history, domain.EntryAIQuestion)
	if lastQuestion == nil {
		return nil, ErrNoPendingQuestion
	}

	responseEntry := &domain.HistoryEntry{
		GameID:  gameID,
		Kind:    domain.EntryHumanResponse,
		Content: response,
	}
	if err := s.append(ctx, responseEntry); err != nil {
		return nil, err
	}
	history = append(history, *responseEntry)

	all := s.roster.All()
	elimination := s.oracle.ProcessResponse(ctx, all, lastQuestion.Content, response, history)

	if len(elimination.Eliminated) > 0 {
		eliminationEntry := &domain.HistoryEntry{
			GameID: gameID,
			Kind:   domain.EntryAIElimination,
			Content: fmt.Sprintf("AI eliminated: %s based on your %q response",
				strings.Join(s.characterNames(elimination.Eliminated), ", "), response),
		}
		if err := s.append(ctx, eliminationEntry); err != nil {
			return nil, err
		}
		history = append(history, *eliminationEntry)

		g.Eliminate(elimination.Eliminated...)
		if _, err := s.update(ctx, gameID, domain.GameUpdate{Eliminated: &g.Eliminated}); err != nil {
			return nil, err
		}
	}

	// The guess decision is gated on how many questions the AI has asked,
	// not on the game's overall turn count.
	aiQuestions := domain.CountKind(history, domain.EntryAIQuestion)
	decision := s.oracle.ShouldMakeGuess(ctx, all, history, aiQuestions)

	if !decision.ShouldGuess {
		turn := domain.TurnHuman
		if _, err := s.update(ctx, gameID, domain.GameUpdate{CurrentTurn: &turn}); err != nil {
			return nil, err
		}
		return &RespondResult{
			Status:     domain.StatusActive,
			Eliminated: elimination.Eliminated,
			Reasoning:  elimination.Reasoning,
		}, nil
	}

	guess := s.oracle.MakeGuess(ctx, all, history)
	guessEntry := &domain.HistoryEntry{
		GameID:  gameID,
		Kind:    domain.EntryAIGuess,
		Content: "AI guessed: " + guess.CharacterName,
	}
	if err := s.append(ctx, guessEntry); err != nil {
		return nil, err
	}
	history = append(history, *guessEntry)

	correct := g.HumanCharacterID != "" && guess.CharacterID == g.HumanCharacterID
	if correct {
		status := domain.StatusAIWon
		if _, err := s.update(ctx, gameID, domain.GameUpdate{Status: &status}); err != nil {
			return nil, err
		}
		return &RespondResult{
			AIGuessed:        true,
			GuessedCharacter: guess.CharacterName,
			Correct:          true,
			GameEnded:        true,
			Status:           status,
			Reasoning:        guess.Reasoning,
		}, nil
	}

	if domain.CountQuestions(history) >= drawThreshold {
		status := domain.StatusDraw
		if _, err := s.update(ctx, gameID, domain.GameUpdate{Status: &status}); err != nil {
			return nil, err
		}
		return &RespondResult{
			AIGuessed:        true,
			GuessedCharacter: guess.CharacterName,
			GameEnded:        true,
			Status:           status,
			Reasoning:        guess.Reasoning,
		}, nil
	}

	// Wrong guess early enough: the game continues on the human's turn.
	turn := domain.TurnHuman
	if _, err := s.update(ctx, gameID, domain.GameUpdate{CurrentTurn: &turn}); err != nil {
		return nil, err
	}
	return &RespondResult{
		AIGuessed:        true,
		GuessedCharacter: guess.CharacterName,
		Status:           domain.StatusActive,
		Reasoning:        guess.Reasoning,
	}, nil
}

// Eliminate unions the given character IDs into the game's eliminated set.
// Board bookkeeping only: no turn or status change, idempotent on duplicates.
func (s *Service) Eliminate(ctx context.Context, gameID string, characterIDs []string) ([]string, error) {
	for _, id := range characterIDs {
		if _, ok := s.roster.Get(id); !ok {
			return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, id)
		}
	}

	unlock := s.lock(gameID)
	defer unlock()

	g, err := s.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	g.Eliminate(characterIDs...)
	updated, err := s.update(ctx, gameID, domain.GameUpdate{Eliminated: &g.Eliminated})
	if err != nil {
		return nil, err
	}
	return updated.Eliminated, nil
}

// HumanGuessResult is the outcome of the human's final guess.
type HumanGuessResult struct {
	Correct       bool          `json:"correct"`
	AICharacterID string        `json:"aiCharacterId"`
	Status        domain.Status `json:"status"`
	ContinueGame  bool          `json:"continueGame,omitempty"`
	Message       string        `json:"message,omitempty"`
}

// HumanGuess resolves the human's final guess against the AI's character.
// A wrong guess late in the game is fatal (loss past 10 question turns, draw
// past 15); early on the game continues with the AI to move.
func (s *Service) HumanGuess(ctx context.Context, gameID, characterID string) (*HumanGuessResult, error) {
	guessed, ok := s.roster.Get(characterID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, characterID)
	}

	unlock := s.lock(gameID)
	defer unlock()

	g, err := s.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}

	guessEntry := &domain.HistoryEntry{
		GameID:  gameID,
		Kind:    domain.EntryHumanGuess,
		Content: "Human guessed: " + guessed.Name,
	}
	if err := s.append(ctx, guessEntry); err != nil {
		return nil, err
	}

	history, err := s.repo.GetHistory(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	questionTurns := domain.CountQuestions(history)

	if g.AICharacterID != "" && characterID == g.AICharacterID {
		status := domain.StatusHumanWon
		if _, err := s.update(ctx, gameID, domain.GameUpdate{Status: &status}); err != nil {
			return nil, err
		}
		return &HumanGuessResult{
			Correct:       true,
			AICharacterID: g.AICharacterID,
			Status:        status,
		}, nil
	}

	switch {
	case questionTurns >= drawThreshold:
		status := domain.StatusDraw
		if _, err := s.update(ctx, gameID, domain.GameUpdate{Status: &status}); err != nil {
			return nil, err
		}
		return &HumanGuessResult{
			AICharacterID: g.AICharacterID,
			Status:        status,
			Message:       "Game ended in a draw due to turn limit",
		}, nil
	case questionTurns >= lossThreshold:
		status := domain.StatusHumanLost
		if _, err := s.update(ctx, gameID, domain.GameUpdate{Status: &status}); err != nil {
			return nil, err
		}
		return &HumanGuessResult{
			AICharacterID: g.AICharacterID,
			Status:        status,
		}, nil
	default:
		turn := domain.TurnAI
		if _, err := s.update(ctx, gameID, domain.GameUpdate{CurrentTurn: &turn}); err != nil {
			return nil, err
		}
		return &HumanGuessResult{
			AICharacterID: g.AICharacterID,
			Status:        domain.StatusActive,
			ContinueGame:  true,
		}, nil
	}
}

// AIGuessResult is the outcome of the AI's on-demand final guess.
type AIGuessResult struct {
	Correct       bool          `json:"correct"`
	CharacterID   string        `json:"guessedCharacterId"`
	CharacterName string        `json:"characterName"`
	Reasoning     string        `json:"reasoning"`
	Status        domain.Status `json:"status"`
}

// AIGuess has the AI commit to a final guess at the human's character. A
// correct guess wins the game for the AI; a wrong one changes nothing. The
// AI's wrong guesses here are free, unlike the human's in HumanGuess; that
// asymmetry is part of the rules.
func (s *Service) AIGuess(ctx context.Context, gameID string) (*AIGuessResult, error) {
	unlock := s.lock(gameID)
	defer unlock()

	g, err := s.loadActive(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.HumanCharacterID == "" {
		return nil, ErrHumanCharacterNotSet
	}

	history, err := s.repo.GetHistory(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	guess := s.oracle.MakeGuess(ctx, s.roster.All(), history)
	correct := guess.CharacterID == g.HumanCharacterID

	verdict := "incorrect"
	if correct {
		verdict = "correct"
	}
	if err := s.append(ctx, &domain.HistoryEntry{
		GameID:   gameID,
		Kind:     domain.EntryAIResponse,
		Content:  "I guess your character is: " + guess.CharacterName,
		Response: verdict,
	}); err != nil {
		return nil, err
	}

	status := g.Status
	if correct {
		status = domain.StatusAIWon
		if _, err := s.update(ctx, gameID, domain.GameUpdate{Status: &status}); err != nil {
			return nil, err
		}
	}

	return &AIGuessResult{
		Correct:       correct,
		CharacterID:   guess.CharacterID,
		CharacterName: guess.CharacterName,
		Reasoning:     guess.Reasoning,
		Status:        status,
	}, nil
}

func (s *Service) characterNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if ch, ok := s.roster.Get(id); ok {
			names = append(names, ch.Name)
		} else {
			names = append(names, id)
		}
	}
	return names
}
