// Package input turns raw key state into per-frame intents. It never
// touches the plane; the flight model consumes the IntentSet it produces.
package input

import "strings"

// Intent is a player-commanded action for the current frame
type Intent uint8

// Intents, in display order
const (
	TurnLeft Intent = iota
	TurnRight
	Climb
	Descend
	// Exit ends the session; the flight model ignores it.
	Exit
)

var intentNames = [...]string{
	TurnLeft:  "turn-left",
	TurnRight: "turn-right",
	Climb:     "climb",
	Descend:   "descend",
	Exit:      "exit",
}

// Intents lists every intent a KeySource is asked about
var Intents = []Intent{TurnLeft, TurnRight, Climb, Descend, Exit}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// IntentSet is an immutable set of intents
type IntentSet uint8

// NewIntentSet builds a set from the given intents
func NewIntentSet(intents ...Intent) IntentSet {
	var s IntentSet
	for _, i := range intents {
		s = s.With(i)
	}
	return s
}

// Has reports whether i is in the set
func (s IntentSet) Has(i Intent) bool {
	return s&(1<<i) != 0
}

// With returns a copy of the set that also contains i
func (s IntentSet) With(i Intent) IntentSet {
	return s | 1<<i
}

// Without returns a copy of the set with i removed
func (s IntentSet) Without(i Intent) IntentSet {
	return s &^ (1 << i)
}

// Empty reports whether no intent is active
func (s IntentSet) Empty() bool {
	return s == 0
}

// Turning reports whether either turn intent is active
func (s IntentSet) Turning() bool {
	return s.Has(TurnLeft) || s.Has(TurnRight)
}

func (s IntentSet) String() string {
	var names []string
	for _, i := range Intents {
		if s.Has(i) {
			names = append(names, i.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// ParseIntent maps an intent name back to the Intent
func ParseIntent(name string) (Intent, bool) {
	for i, n := range intentNames {
		if n == name {
			return Intent(i), true
		}
	}
	return 0, false
}
