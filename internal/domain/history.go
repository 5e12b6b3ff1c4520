package domain

import (
	"time"
)

// EntryKind categorizes history entries.
type EntryKind string

// EntryKind values.
const (
	EntryHumanQuestion EntryKind = "human_question"
	EntryAIQuestion    EntryKind = "ai_question"
	EntryHumanResponse EntryKind = "human_response"
	EntryAIResponse    EntryKind = "ai_response"
	EntryHumanGuess    EntryKind = "human_guess"
	EntryAIGuess       EntryKind = "ai_guess"
	EntryAIElimination EntryKind = "ai_elimination"
)

// Question reports whether the entry consumes a question turn. The draw and
// loss thresholds count only these.
func (k EntryKind) Question() bool {
	return k == EntryHumanQuestion || k == EntryAIQuestion
}

// HistoryEntry is one immutable audit record within a game. Entries are
// ordered by Seq, a monotonic per-store sequence assigned at append time;
// ordering never relies on wall-clock timestamps.
type HistoryEntry struct {
	ID        string    `json:"id"`
	GameID    string    `json:"gameId"`
	Seq       int64     `json:"seq"`
	Kind      EntryKind `json:"type"`
	Content   string    `json:"content"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}

// LastOfKind returns the most recent entry of the given kind in append order,
// or nil if none exists.
func LastOfKind(entries []HistoryEntry, kind EntryKind) *HistoryEntry {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Kind == kind {
			return &entries[i]
		}
	}
	return nil
}

// CountKind returns how many entries have the given kind.
func CountKind(entries []HistoryEntry, kind EntryKind) int {
	n := 0
	for _, e := range entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// CountQuestions returns how many entries are question turns (human or AI).
func CountQuestions(entries []HistoryEntry) int {
	n := 0
	for _, e := range entries {
		if e.Kind.Question() {
			n++
		}
	}
	return n
}
