package events

import (
	"testing"
	"time"
)

func TestBus_EmitPreservesOrder(t *testing.T) {
	bus := NewBus()

	var got []EventType
	bus.Subscribe(func(e Event) {
		got = append(got, e.Type)
	})

	bus.Emit(Event{Type: SearchStarted})
	bus.Emit(Event{Type: Thought})
	bus.Emit(Event{Type: SearchCompleted})

	want := []EventType{SearchStarted, Thought, SearchCompleted}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestBus_StampsReceiptTime(t *testing.T) {
	bus := NewBus()
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	bus.now = func() time.Time { return fixed }

	var got Event
	bus.Subscribe(func(e Event) { got = e })

	bus.Emit(Event{Type: Thought})
	if !got.ReceivedAt.Equal(fixed) {
		t.Errorf("expected receipt time %v, got %v", fixed, got.ReceivedAt)
	}
}

func TestBus_DoesNotOverrideReceiptTime(t *testing.T) {
	bus := NewBus()
	stamped := time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC)

	var got Event
	bus.Subscribe(func(e Event) { got = e })

	bus.Emit(Event{Type: Thought, ReceivedAt: stamped})
	if !got.ReceivedAt.Equal(stamped) {
		t.Errorf("expected producer timestamp preserved, got %v", got.ReceivedAt)
	}
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := NewBus()

	count := 0
	bus.Subscribe(func(Event) { count++ })
	bus.Subscribe(func(Event) { count++ })

	bus.Emit(Event{Type: Connected})
	if count != 2 {
		t.Errorf("expected both handlers invoked, got %d", count)
	}
}
