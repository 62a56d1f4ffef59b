package input

// EventSource is a KeySource fed by discrete press and release events,
// for front ends that deliver callbacks instead of pollable key state.
// Call EndFrame after each Sample to clear the per-frame press flags.
type EventSource struct {
	down    IntentSet
	pressed IntentSet
}

// NewEventSource creates an EventSource with no keys down
func NewEventSource() *EventSource {
	return &EventSource{}
}

// Press records a key-down event
func (e *EventSource) Press(i Intent) {
	if !e.down.Has(i) {
		e.pressed = e.pressed.With(i)
	}
	e.down = e.down.With(i)
}

// Tap records a press that is released before the next frame, the only
// kind of event a terminal delivers.
func (e *EventSource) Tap(i Intent) {
	e.pressed = e.pressed.With(i)
}

// Release records a key-up event
func (e *EventSource) Release(i Intent) {
	e.down = e.down.Without(i)
}

// EndFrame forgets the presses seen during the frame
func (e *EventSource) EndFrame() {
	e.pressed = 0
}

// Down implements KeySource
func (e *EventSource) Down(i Intent) bool {
	return e.down.Has(i)
}

// JustPressed implements KeySource
func (e *EventSource) JustPressed(i Intent) bool {
	return e.pressed.Has(i)
}
