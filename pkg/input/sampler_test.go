package input

import "testing"

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"held", HeldPolicy, false},
		{"edge", EdgePolicy, false},
		{"toggle", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && got.String() != tt.in {
			t.Errorf("Policy.String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestSampler_NoInputIsEmpty(t *testing.T) {
	for _, policy := range []Policy{HeldPolicy, EdgePolicy} {
		s := NewSampler(policy)
		if got := s.Sample(NewEventSource()); !got.Empty() {
			t.Errorf("%v: Sample() with no keys = %v, want empty", policy, got)
		}
		if got := s.Sample(nil); !got.Empty() {
			t.Errorf("%v: Sample(nil) = %v, want empty", policy, got)
		}
	}
}

func TestSampler_HeldPolicy(t *testing.T) {
	s := NewSampler(HeldPolicy)
	src := NewEventSource()

	src.Press(TurnRight)
	src.Press(Climb)

	// Held keys stay active frame after frame.
	for frame := 0; frame < 3; frame++ {
		got := s.Sample(src)
		src.EndFrame()
		if got != NewIntentSet(TurnRight, Climb) {
			t.Fatalf("frame %d: Sample() = %v, want {turn-right,climb}", frame, got)
		}
	}

	// Releasing deactivates the intent on the next frame.
	src.Release(Climb)
	if got := s.Sample(src); got != NewIntentSet(TurnRight) {
		t.Errorf("after release Sample() = %v, want {turn-right}", got)
	}
}

func TestSampler_EdgePolicy(t *testing.T) {
	s := NewSampler(EdgePolicy)
	src := NewEventSource()

	src.Press(TurnRight)
	if got := s.Sample(src); got != NewIntentSet(TurnRight) {
		t.Fatalf("press frame: Sample() = %v, want {turn-right}", got)
	}
	src.EndFrame()

	// Still held, but the press was already consumed.
	if got := s.Sample(src); !got.Empty() {
		t.Errorf("held frame: Sample() = %v, want empty", got)
	}
	src.EndFrame()

	src.Release(TurnRight)
	src.Press(TurnRight)
	if got := s.Sample(src); got != NewIntentSet(TurnRight) {
		t.Errorf("second press: Sample() = %v, want {turn-right}", got)
	}
}

func TestSampler_ExitFiresOnPress(t *testing.T) {
	s := NewSampler(HeldPolicy)
	src := NewEventSource()

	src.Tap(Exit)
	if got := s.Sample(src); !got.Has(Exit) {
		t.Errorf("Sample() = %v, want exit", got)
	}
}

func TestEventSource_RepeatPressIsNotAnEdge(t *testing.T) {
	src := NewEventSource()
	src.Press(Descend)
	src.EndFrame()

	// Key repeat delivers another press without a release.
	src.Press(Descend)
	if src.JustPressed(Descend) {
		t.Error("repeated press without release should not count as a new edge")
	}
	if !src.Down(Descend) {
		t.Error("key should still be down")
	}
}
