package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"
	"github.com/mirrorlake/guesswho/internal/game"
)

// EventsHandler streams live game events over WebSocket so the board can
// update without polling.
type EventsHandler struct {
	svc   *game.Service
	isDev bool
}

// NewEventsHandler creates a WebSocket events handler.
func NewEventsHandler(svc *game.Service, isDev bool) *EventsHandler {
	return &EventsHandler{svc: svc, isDev: isDev}
}

// ServeHTTP upgrades the connection and forwards the game's events until the
// client disconnects.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	if _, err := h.svc.Get(r.Context(), gameID); err != nil {
		serviceError(w, err)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: h.isDev,
	})
	if err != nil {
		slog.Warn("websocket accept failed", "game_id", gameID, "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "closed")

	events, cancel := h.svc.Events().Subscribe(gameID, 32)
	defer cancel()

	// Reads are only needed to notice the peer closing.
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case ev, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			if err := wsjson.Write(ctx, conn, ev); err != nil {
				if ctx.Err() == nil && !errors.Is(err, context.Canceled) {
					slog.Debug("websocket write failed", "game_id", gameID, "error", err)
				}
				return
			}
		}
	}
}
