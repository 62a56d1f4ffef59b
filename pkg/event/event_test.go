// pkg/event/event_test.go
package event

import (
	"sync"
	"testing"

	"github.com/opd-ai/go-flight/pkg/flight"
)

func TestNewEventBus_Creation_ReturnsInitializedBus(t *testing.T) {
	bus := NewEventBus()

	if bus == nil {
		t.Fatal("NewEventBus() returned nil")
	}
	if bus.handlers == nil {
		t.Error("handlers map not initialized")
	}
	if bus.nextID != 1 {
		t.Errorf("expected nextID to be 1, got %d", bus.nextID)
	}
}

func TestTypeForTransition(t *testing.T) {
	tests := []struct {
		transition flight.Transition
		want       Type
		ok         bool
	}{
		{flight.None, "", false},
		{flight.Takeoff, Takeoff, true},
		{flight.Landing, Landing, true},
		{flight.Crash, Crash, true},
	}

	for _, tt := range tests {
		t.Run(tt.transition.String(), func(t *testing.T) {
			got, ok := TypeForTransition(tt.transition)
			if got != tt.want || ok != tt.ok {
				t.Errorf("TypeForTransition(%v) = %q, %v; want %q, %v", tt.transition, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBus_PublishDeliversToMatchingHandlers(t *testing.T) {
	bus := NewEventBus()

	var takeoffs, crashes int
	bus.Subscribe(Takeoff, func(e Event) { takeoffs++ })
	bus.Subscribe(Takeoff, func(e Event) { takeoffs++ })
	bus.Subscribe(Crash, func(e Event) { crashes++ })

	bus.Publish(NewFlightEvent(Takeoff, "test", 1, flight.PlaneState{}))

	if takeoffs != 2 {
		t.Errorf("expected 2 takeoff deliveries, got %d", takeoffs)
	}
	if crashes != 0 {
		t.Errorf("expected no crash deliveries, got %d", crashes)
	}

	// Publishing a type nobody listens to is a no-op.
	bus.Publish(&BaseEvent{EventType: SessionEnded})
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()

	var first, second int
	id1 := bus.Subscribe(Landing, func(e Event) { first++ })
	id2 := bus.Subscribe(Landing, func(e Event) { second++ })
	if id1 == id2 {
		t.Fatal("subscription IDs must be unique")
	}

	if !bus.Unsubscribe(Landing, id1) {
		t.Fatal("Unsubscribe returned false for a registered handler")
	}
	if bus.Unsubscribe(Landing, id1) {
		t.Error("second Unsubscribe of the same ID should return false")
	}
	if bus.Unsubscribe(Crash, id2) {
		t.Error("Unsubscribe with the wrong type should return false")
	}

	bus.Publish(&BaseEvent{EventType: Landing})
	if first != 0 || second != 1 {
		t.Errorf("expected only second handler to run, got first=%d second=%d", first, second)
	}
}

func TestFlightEvent_Fields(t *testing.T) {
	state := flight.PlaneState{Airborne: true, BankAngle: 12}
	e := NewFlightEvent(Crash, "session", 42, state)

	if e.GetType() != Crash {
		t.Errorf("GetType() = %v, want %v", e.GetType(), Crash)
	}
	if e.GetSource() != "session" {
		t.Errorf("GetSource() = %v, want session", e.GetSource())
	}
	if e.Tick != 42 || e.State != state {
		t.Errorf("unexpected payload: tick=%d state=%v", e.Tick, e.State)
	}
}

func TestBus_ConcurrentSubscribeAndPublish(t *testing.T) {
	bus := NewEventBus()

	var mu sync.Mutex
	count := 0

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Subscribe(SessionStarted, func(e Event) {
				mu.Lock()
				count++
				mu.Unlock()
			})
			bus.Publish(&BaseEvent{EventType: SessionStarted})
		}()
	}
	wg.Wait()

	bus.Publish(&BaseEvent{EventType: SessionStarted})

	mu.Lock()
	defer mu.Unlock()
	if count < 10 {
		t.Errorf("expected at least 10 deliveries, got %d", count)
	}
}
