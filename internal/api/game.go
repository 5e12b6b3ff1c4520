package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mirrorlake/guesswho/internal/domain"
	"github.com/mirrorlake/guesswho/internal/game"
	"github.com/mirrorlake/guesswho/internal/identity"
)

// GameHandler exposes the game state machine over HTTP.
type GameHandler struct {
	svc *game.Service
}

// NewGameHandler creates a game handler.
func NewGameHandler(svc *game.Service) *GameHandler {
	return &GameHandler{svc: svc}
}

// RegisterRoutes registers the game API routes.
func (h *GameHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/characters", h.ListCharacters)
		r.Route("/games", func(r chi.Router) {
			r.Post("/", h.CreateGame)
			r.Get("/", h.ListMyGames)
			r.Route("/{gameID}", func(r chi.Router) {
				r.Get("/", h.GetGame)
				r.Patch("/", h.UpdateGame)
				r.Get("/history", h.GetHistory)
				r.Post("/ask-ai", h.AskQuestion)
				r.Post("/ai-question", h.AIQuestion)
				r.Post("/respond", h.Respond)
				r.Post("/eliminate", h.Eliminate)
				r.Post("/guess", h.HumanGuess)
				r.Post("/ai-guess", h.AIGuess)
			})
		})
	})
}

// ListCharacters returns the full roster.
func (h *GameHandler) ListCharacters(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, h.svc.Roster().All())
}

type createGameRequest struct {
	HumanCharacterID string `json:"humanCharacterId"`
	AICharacterID    string `json:"aiCharacterId"`
}

// CreateGame starts a new game for the calling player.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid game data")
		return
	}

	g, err := h.svc.Create(r.Context(), game.CreateParams{
		PlayerID:         identity.PlayerIDFromContext(r.Context()),
		HumanCharacterID: req.HumanCharacterID,
		AICharacterID:    req.AICharacterID,
	})
	if err != nil {
		serviceError(w, err)
		return
	}
	JSON(w, http.StatusOK, g)
}

// ListMyGames returns the calling player's games, newest first.
func (h *GameHandler) ListMyGames(w http.ResponseWriter, r *http.Request) {
	playerID := identity.PlayerIDFromContext(r.Context())
	games, err := h.svc.ListByPlayer(r.Context(), playerID)
	if err != nil {
		serviceError(w, err)
		return
	}
	if games == nil {
		games = []*domain.Game{}
	}
	JSON(w, http.StatusOK, games)
}

// GetGame returns a game by ID.
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Get(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		serviceError(w, err)
		return
	}
	JSON(w, http.StatusOK, g)
}

type updateGameRequest struct {
	HumanCharacterID *string   `json:"humanCharacterId"`
	AICharacterID    *string   `json:"aiCharacterId"`
	CurrentTurn      *string   `json:"currentTurn"`
	Status           *string   `json:"status"`
	Eliminated       *[]string `json:"eliminatedCharacters"`
	TurnCount        *int      `json:"turnCount"`
}

// UpdateGame applies a generic partial update to a game.
func (h *GameHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	var req updateGameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid game data")
		return
	}

	update := domain.GameUpdate{
		HumanCharacterID: req.HumanCharacterID,
		AICharacterID:    req.AICharacterID,
		Eliminated:       req.Eliminated,
		TurnCount:        req.TurnCount,
	}
	if req.CurrentTurn != nil {
		turn := domain.Turn(*req.CurrentTurn)
		update.CurrentTurn = &turn
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		update.Status = &status
	}

	g, err := h.svc.Update(r.Context(), chi.URLParam(r, "gameID"), update)
	if err != nil {
		serviceError(w, err)
		return
	}
	JSON(w, http.StatusOK, g)
}

// GetHistory returns a game's history, oldest first.
func (h *GameHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.History(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		serviceError(w, err)
		return
	}
	JSON(w, http.StatusOK, entries)
}

type askRequest struct {
	Question string `json:"question"`
}

// AskQuestion handles the human asking about the AI's character.
func (h *GameHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, "question is required")
		return
	}

	result, err := h.svc.AskQuestion(r.Context(), chi.URLParam(r, "gameID"), req.Question)
	if err != nil {
		serviceError(w, err)
		return
	}
	JSON(w, http.StatusOK, result)
}

// AIQuestion has the AI produce its next question.
func (h *GameHandler) AIQuestion(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.AIQuestion(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		serviceError(w, err)
		return
	}
	JSON(w, http.StatusOK, result)
}

type respondRequest struct {
	Response string `json:"response"`
}

// Respond handles the human's yes/no answer to the AI's latest question.
func (h *GameHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req respondRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Error(w, http.StatusBadRequest, `response must be "yes" or "no"`)
		return
	}

	result, err := h.svc.Respond(r.Context(), chi.URLParam(r, "gameID"), req.Response)
	if err != nil {
		serviceError(w, err)
		return
	}
	JSON(w, http.StatusOK, result)
}

type eliminateRequest struct {
	CharacterIDs []string `json:"characterIds"`
}

// Eliminate unions character IDs into the human's eliminated set.
func (h *GameHandler) Eliminate(w http.ResponseWriter, r *http.Request) {
	var req eliminateRequest
	if err := decodeJSON(w, r, &req); err != nil || req.CharacterIDs == nil {
		Error(w, http.StatusBadRequest, "characterIds must be an array")
		return
	}

	eliminated, err := h.svc.Eliminate(r.Context(), chi.URLParam(r, "gameID"), req.CharacterIDs)
	if err != nil {
		serviceError(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string][]string{"eliminatedCharacters": eliminated})
}

type guessRequest struct {
	CharacterID string `json:"characterId"`
}

// HumanGuess resolves the human's final guess.
func (h *GameHandler) HumanGuess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := decodeJSON(w, r, &req); err != nil || req.CharacterID == "" {
		Error(w, http.StatusBadRequest, "characterId is required")
		return
	}

	result, err := h.svc.HumanGuess(r.Context(), chi.URLParam(r, "gameID"), req.CharacterID)
	if err != nil {
		serviceError(w, err)
		return
	}
	JSON(w, http.StatusOK, result)
}

// AIGuess has the AI commit to a final guess.
func (h *GameHandler) AIGuess(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.AIGuess(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		serviceError(w, err)
		return
	}
	slog.Info("ai final guess", "game_id", chi.URLParam(r, "gameID"), "correct", result.Correct)
	JSON(w, http.StatusOK, result)
}
