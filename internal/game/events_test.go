package game

import (
	"testing"

	"github.com/mirrorlake/guesswho/internal/domain"
)

func TestBrokerDeliversToGameSubscribers(t *testing.T) {
	b := NewBroker()

	ch1, cancel1 := b.Subscribe("g1", 4)
	defer cancel1()
	ch2, cancel2 := b.Subscribe("g2", 4)
	defer cancel2()

	b.Publish(Event{Type: EventHistoryAppended, GameID: "g1", Entry: &domain.HistoryEntry{GameID: "g1"}})

	select {
	case ev := <-ch1:
		if ev.Type != EventHistoryAppended || ev.GameID != "g1" {
			t.Errorf("Unexpected event: %+v", ev)
		}
	default:
		t.Fatal("Expected event on g1 subscriber")
	}

	select {
	case ev := <-ch2:
		t.Fatalf("g2 subscriber received foreign event: %+v", ev)
	default:
	}
}

func TestBrokerDropsWhenFull(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe("g1", 1)
	defer cancel()

	b.Publish(Event{Type: EventGameUpdated, GameID: "g1"})
	// Buffer is full; this must not block.
	b.Publish(Event{Type: EventGameUpdated, GameID: "g1"})

	if len(ch) != 1 {
		t.Errorf("Expected exactly 1 buffered event, got %d", len(ch))
	}
}

func TestBrokerCancelClosesChannel(t *testing.T) {
	b := NewBroker()

	ch, cancel := b.Subscribe("g1", 4)
	cancel()
	cancel() // second call is a no-op

	if _, open := <-ch; open {
		t.Error("Expected channel closed after cancel")
	}

	// Publishing after cancel must not panic.
	b.Publish(Event{Type: EventGameUpdated, GameID: "g1"})
}
