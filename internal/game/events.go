package game

import (
	"sync"

	"github.com/mirrorlake/guesswho/internal/domain"
)

// EventType categorizes game events.
type EventType string

// EventType values.
const (
	// EventHistoryAppended fires for every history entry added to a game.
	EventHistoryAppended EventType = "history"
	// EventGameUpdated fires when a game's fields change (turn, status,
	// eliminations).
	EventGameUpdated EventType = "game"
)

// Event is one observable change to a game, delivered to live subscribers.
type Event struct {
	Type   EventType            `json:"type"`
	GameID string               `json:"gameId"`
	Entry  *domain.HistoryEntry `json:"entry,omitempty"`
	Game   *domain.Game         `json:"game,omitempty"`
}

// Broker fans game events out to per-game subscribers. Delivery is
// best-effort: a subscriber that stops draining loses events rather than
// blocking game progress.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers for events on one game. The returned cancel func must
// be called to release the subscription; it closes the channel.
func (b *Broker) Subscribe(gameID string, buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	if b.subs[gameID] == nil {
		b.subs[gameID] = make(map[chan Event]struct{})
	}
	b.subs[gameID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[gameID], ch)
			if len(b.subs[gameID]) == 0 {
				delete(b.subs, gameID)
			}
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber of its game without blocking.
func (b *Broker) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs[ev.GameID] {
		select {
		case ch <- ev:
		default:
			// Subscriber is not draining; drop rather than stall the game.
		}
	}
}
