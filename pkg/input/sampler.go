package input

import "fmt"

// KeySource reports the state of the key bound to each intent
type KeySource interface {
	// Down reports whether the key is held this frame.
	Down(Intent) bool
	// JustPressed reports whether the key went down since the last frame.
	JustPressed(Intent) bool
}

// Policy decides when a bound key yields an intent
type Policy int

const (
	// HeldPolicy: the intent is active every frame its key is held.
	HeldPolicy Policy = iota
	// EdgePolicy: the intent fires once per key press.
	EdgePolicy
)

func (p Policy) String() string {
	switch p {
	case HeldPolicy:
		return "held"
	case EdgePolicy:
		return "edge"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "held" and "edge" to a Policy
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "held":
		return HeldPolicy, nil
	case "edge":
		return EdgePolicy, nil
	default:
		return 0, fmt.Errorf("unknown input policy %q", s)
	}
}

// Sampler extracts the intent set once per frame
type Sampler struct {
	Policy Policy
}

// NewSampler creates a sampler using the given policy
func NewSampler(policy Policy) *Sampler {
	return &Sampler{Policy: policy}
}

// Sample returns the intents active this frame. A nil source yields the
// empty set.
func (s *Sampler) Sample(src KeySource) IntentSet {
	var set IntentSet
	if src == nil {
		return set
	}
	for _, i := range Intents {
		if s.active(src, i) {
			set = set.With(i)
		}
	}
	return set
}

func (s *Sampler) active(src KeySource, i Intent) bool {
	// Exit always reacts to the press so a held key cannot be missed.
	if s.Policy == EdgePolicy || i == Exit {
		return src.JustPressed(i)
	}
	return src.Down(i)
}
