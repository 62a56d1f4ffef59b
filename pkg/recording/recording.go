// Package recording stores flights as a zstd-compressed msgpack stream: a
// header carrying the configuration, then one record per frame. Since the
// physics is deterministic, a recording can be replayed and checked.
package recording

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/opd-ai/go-flight/pkg/config"
	"github.com/opd-ai/go-flight/pkg/engine"
	"github.com/opd-ai/go-flight/pkg/flight"
	"github.com/opd-ai/go-flight/pkg/input"
)

// FormatVersion is bumped whenever Header or Frame change incompatibly
const FormatVersion = 1

// Header starts every recording
type Header struct {
	Version int                 `json:"version"`
	Created time.Time           `json:"created"`
	Config  config.FlightConfig `json:"config"`
}

// Frame is one stepped frame
type Frame struct {
	Tick       uint64            `json:"tick"`
	Intents    input.IntentSet   `json:"intents"`
	State      flight.PlaneState `json:"state"`
	Transition flight.Transition `json:"transition"`
}

// FrameFromSnapshot extracts the recorded part of a snapshot
func FrameFromSnapshot(snap engine.Snapshot) Frame {
	return Frame{
		Tick:       snap.Tick,
		Intents:    snap.Intents,
		State:      snap.State,
		Transition: snap.LastTransition,
	}
}

// Recorder appends frames to a recording
type Recorder struct {
	zw     *zstd.Encoder
	enc    *msgpack.Encoder
	frames int
}

// NewRecorder writes the header for cfg to w and returns a recorder for
// the frames. Close must be called to flush the stream.
func NewRecorder(w io.Writer, cfg *config.FlightConfig) (*Recorder, error) {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %w", err)
	}

	enc := msgpack.NewEncoder(zw)
	enc.SetCustomStructTag("json")

	header := Header{Version: FormatVersion, Created: time.Now().UTC(), Config: *cfg}
	if err := enc.Encode(&header); err != nil {
		zw.Close()
		return nil, fmt.Errorf("failed to encode header: %w", err)
	}
	return &Recorder{zw: zw, enc: enc}, nil
}

// Record appends the frame of snap
func (r *Recorder) Record(snap engine.Snapshot) error {
	return r.WriteFrame(FrameFromSnapshot(snap))
}

// WriteFrame appends f
func (r *Recorder) WriteFrame(f Frame) error {
	if err := r.enc.Encode(&f); err != nil {
		return fmt.Errorf("failed to encode frame %d: %w", f.Tick, err)
	}
	r.frames++
	return nil
}

// Frames returns how many frames were recorded
func (r *Recorder) Frames() int {
	return r.frames
}

// Close flushes the stream. It does not close the underlying writer.
func (r *Recorder) Close() error {
	if err := r.zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return nil
}

// Reader reads a recording back
type Reader struct {
	Header Header

	zr  *zstd.Decoder
	dec *msgpack.Decoder
}

// NewReader reads the header from r
func NewReader(r io.Reader) (*Reader, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}

	dec := msgpack.NewDecoder(zr)
	dec.SetCustomStructTag("json")

	rd := &Reader{zr: zr, dec: dec}
	if err := dec.Decode(&rd.Header); err != nil {
		zr.Close()
		return nil, fmt.Errorf("failed to decode header: %w", err)
	}
	if rd.Header.Version != FormatVersion {
		zr.Close()
		return nil, fmt.Errorf("unsupported recording version %d", rd.Header.Version)
	}
	return rd, nil
}

// Next returns the next frame, or io.EOF after the last one
func (rd *Reader) Next() (Frame, error) {
	var f Frame
	if err := rd.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	return f, nil
}

// Close releases the decoder
func (rd *Reader) Close() {
	rd.zr.Close()
}
