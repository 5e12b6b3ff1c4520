package oracle

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mirrorlake/guesswho/internal/domain"
)

// Turn-count policy gating the guess decision. Below the floor the AI never
// guesses; at or past the ceiling it always does, without consulting the
// reasoning service in either case. The thresholds bound game length even
// when the service is down.
const (
	guessTurnFloor    = 3
	guessTurnCeiling  = 8
	guessTurnFallback = 6
)

// Canned questions used when the reasoning service cannot produce one.
var fallbackQuestions = []string{
	"Does your character wear glasses?",
	"Does your character have facial hair?",
	"Is your character male?",
	"Does your character have brown hair?",
	"Is your character young?",
}

// Service wraps a Client with a per-call timeout and the deterministic
// fallback defined for each operation. Service methods never return an error
// for a reasoning failure; callers always get a usable result.
type Service struct {
	client  Client
	timeout time.Duration
}

// NewService creates a resilient oracle service. A non-positive timeout
// disables the per-call deadline.
func NewService(client Client, timeout time.Duration) *Service {
	return &Service{client: client, timeout: timeout}
}

func (s *Service) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// AnswerQuestion answers a yes/no question about the AI's character.
// Fallback: "no".
func (s *Service) AnswerQuestion(ctx context.Context, question string, attrs domain.CharacterAttributes) AnswerResult {
	cctx, cancel := s.callCtx(ctx)
	defer cancel()

	result, err := s.client.AnswerQuestion(cctx, question, attrs)
	if err != nil {
		slog.Warn("oracle answer failed, using fallback", "error", err)
		return AnswerResult{
			Answer:    AnswerNo,
			Reasoning: "Unable to process question at this time",
		}
	}
	return result
}

// GenerateQuestion proposes the AI's next question. Fallback: one of five
// canned questions, chosen uniformly.
func (s *Service) GenerateQuestion(ctx context.Context, remaining []domain.Character, history []domain.HistoryEntry) QuestionResult {
	cctx, cancel := s.callCtx(ctx)
	defer cancel()

	result, err := s.client.GenerateQuestion(cctx, remaining, history)
	if err != nil {
		slog.Warn("oracle question generation failed, using fallback", "error", err)
		return QuestionResult{
			Question:  fallbackQuestions[rand.Intn(len(fallbackQuestions))],
			Reasoning: "Fallback strategic question",
		}
	}
	return result
}

// ProcessResponse infers eliminations after a human response. Model output may
// reference characters by name or ID; anything that does not resolve against
// the supplied roster is dropped so the eliminated set stays a subset of it.
// Fallback: no eliminations.
func (s *Service) ProcessResponse(ctx context.Context, all []domain.Character, question, response string, history []domain.HistoryEntry) EliminationResult {
	cctx, cancel := s.callCtx(ctx)
	defer cancel()

	result, err := s.client.ProcessResponse(cctx, all, question, response, history)
	if err != nil {
		slog.Warn("oracle elimination inference failed, using fallback", "error", err)
		return EliminationResult{
			Eliminated: nil,
			Reasoning:  "AI had trouble processing your response, but the game continues",
		}
	}

	var resolved []string
	for _, ref := range result.Eliminated {
		if id, ok := resolveCharacter(all, ref); ok {
			resolved = append(resolved, id)
		}
	}
	result.Eliminated = resolved
	return result
}

// MakeGuess picks the AI's final guess. If the model's pick does not resolve
// against the roster, or the call fails outright, a uniformly random roster
// member is substituted.
func (s *Service) MakeGuess(ctx context.Context, all []domain.Character, history []domain.HistoryEntry) GuessResult {
	cctx, cancel := s.callCtx(ctx)
	defer cancel()

	result, err := s.client.MakeGuess(cctx, all, history)
	if err != nil {
		slog.Warn("oracle guess failed, using fallback", "error", err)
		return randomGuess(all, "Random guess due to service error")
	}

	for _, ch := range all {
		if ch.ID == result.CharacterID || ch.Name == result.CharacterName {
			return GuessResult{
				CharacterID:   ch.ID,
				CharacterName: ch.Name,
				Reasoning:     orDefault(result.Reasoning, "Based on conversation analysis"),
			}
		}
	}
	return randomGuess(all, "Made a random guess due to analysis error")
}

// ShouldMakeGuess decides whether the AI guesses this round. Turn counts below
// the floor or at/past the ceiling are decided locally without consulting the
// reasoning service; in between, a failed call falls back on turn count alone.
func (s *Service) ShouldMakeGuess(ctx context.Context, all []domain.Character, history []domain.HistoryEntry, turnCount int) ShouldGuessResult {
	if turnCount < guessTurnFloor {
		return ShouldGuessResult{
			ShouldGuess: false,
			Reasoning:   "Too early in the game, need more information",
			Confidence:  0,
		}
	}
	if turnCount >= guessTurnCeiling {
		return ShouldGuessResult{
			ShouldGuess: true,
			Reasoning:   "Many turns have passed, time to make a strategic guess",
			Confidence:  75,
		}
	}

	cctx, cancel := s.callCtx(ctx)
	defer cancel()

	result, err := s.client.ShouldMakeGuess(cctx, all, history, turnCount)
	if err != nil {
		slog.Warn("oracle guess decision failed, using fallback", "error", err, "turn_count", turnCount)
		if turnCount >= guessTurnFallback {
			return ShouldGuessResult{
				ShouldGuess: true,
				Reasoning:   "Fallback: enough turns have passed",
				Confidence:  60,
			}
		}
		return ShouldGuessResult{
			ShouldGuess: false,
			Reasoning:   "Fallback: need more information",
			Confidence:  30,
		}
	}
	return result
}

func resolveCharacter(all []domain.Character, ref string) (string, bool) {
	for _, ch := range all {
		if ch.ID == ref || ch.Name == ref {
			return ch.ID, true
		}
	}
	return "", false
}

func randomGuess(all []domain.Character, reasoning string) GuessResult {
	if len(all) == 0 {
		return GuessResult{Reasoning: reasoning}
	}
	ch := all[rand.Intn(len(all))]
	return GuessResult{
		CharacterID:   ch.ID,
		CharacterName: ch.Name,
		Reasoning:     reasoning,
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
