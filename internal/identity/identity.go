// Package identity provides anonymous per-browser player identity.
//
// Players never register; a random ID is issued in a cookie on first contact
// and games record it at creation so a browser can list its own games.
package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"regexp"
	"time"
)

// PlayerCookieName is the cookie carrying the anonymous player ID.
const PlayerCookieName = "guesswho_player_id"

const playerCookieMaxAge = 90 * 24 * time.Hour

type contextKey int

const playerIDKey contextKey = iota

var playerIDPattern = regexp.MustCompile(`^p_[a-f0-9]{32}$`)

// PlayerIDFromContext extracts the player ID from the request context.
func PlayerIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(playerIDKey).(string); ok {
		return v
	}
	return ""
}

func generatePlayerID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate player id: %w", err)
	}
	return "p_" + hex.EncodeToString(buf), nil
}

func isValidPlayerID(id string) bool {
	return playerIDPattern.MatchString(id)
}

// Middleware resolves or issues the anonymous player ID and stores it on the
// request context. isDev relaxes the cookie's Secure flag for local work.
func Middleware(isDev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			playerID := ""
			if c, err := r.Cookie(PlayerCookieName); err == nil && isValidPlayerID(c.Value) {
				playerID = c.Value
			}

			if playerID == "" {
				id, err := generatePlayerID()
				if err != nil {
					http.Error(w, "failed to establish identity", http.StatusInternalServerError)
					return
				}
				playerID = id
				http.SetCookie(w, &http.Cookie{
					Name:     PlayerCookieName,
					Value:    playerID,
					Path:     "/",
					MaxAge:   int(playerCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   !isDev,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), playerIDKey, playerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
