package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-flight/pkg/input"
)

// Segment holds a set of intents for a number of frames
type Segment struct {
	Frames  int      `json:"frames"`
	Intents []string `json:"intents"`
}

// Script is a deterministic list of input segments, used to fly the plane
// without a keyboard
type Script struct {
	Name     string    `json:"name,omitempty"`
	Segments []Segment `json:"segments"`

	sets []input.IntentSet
}

// ParseScript decodes and checks a JSON script
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.compile(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScript reads a JSON script from path
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return ParseScript(data)
}

// NewScript builds a script from segments
func NewScript(segments ...Segment) (*Script, error) {
	s := &Script{Segments: segments}
	if err := s.compile(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) compile() error {
	s.sets = make([]input.IntentSet, len(s.Segments))
	for i, seg := range s.Segments {
		if seg.Frames < 0 {
			return fmt.Errorf("segment %d: negative frame count %d", i, seg.Frames)
		}
		var set input.IntentSet
		for _, name := range seg.Intents {
			intent, ok := input.ParseIntent(name)
			if !ok {
				return fmt.Errorf("segment %d: unknown intent %q", i, name)
			}
			set = set.With(intent)
		}
		s.sets[i] = set
	}
	return nil
}

// Frames returns the total number of frames the script covers
func (s *Script) Frames() int {
	total := 0
	for _, seg := range s.Segments {
		total += seg.Frames
	}
	return total
}

// Run plays the script on session, calling onFrame after every step.
// A segment containing exit stops the session. Run returns early when ctx
// is cancelled or onFrame fails.
func (s *Script) Run(ctx context.Context, session *Session, onFrame func(Snapshot) error) error {
	if s.sets == nil {
		if err := s.compile(); err != nil {
			return err
		}
	}

	for i, seg := range s.Segments {
		set := s.sets[i]
		if set.Has(input.Exit) {
			session.Stop()
			return nil
		}
		for f := 0; f < seg.Frames; f++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !session.Running() {
				return nil
			}
			snap := session.Update(set)
			if onFrame != nil {
				if err := onFrame(snap); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
