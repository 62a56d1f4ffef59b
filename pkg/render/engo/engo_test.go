package engo

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-flight/pkg/config"
	"github.com/opd-ai/go-flight/pkg/engine"
	"github.com/opd-ai/go-flight/pkg/input"
	"github.com/opd-ai/go-flight/pkg/logging"
	"github.com/opd-ai/go-flight/pkg/render"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestDefaultBindings_CoverEveryIntent(t *testing.T) {
	bindings := DefaultBindings()
	source := NewButtonSource(bindings)

	buttons := make(map[string]bool)
	for _, i := range input.Intents {
		name := source.ButtonName(i)
		if name == "" {
			t.Errorf("intent %v has no button", i)
		}
		if buttons[name] {
			t.Errorf("button %q bound twice", name)
		}
		buttons[name] = true
	}

	for _, b := range bindings {
		if len(b.Keys) == 0 {
			t.Errorf("button %q has no keys", b.Button)
		}
	}
}

func TestButtonSource_UnboundIntent(t *testing.T) {
	source := NewButtonSource(nil)
	if source.Down(input.Climb) || source.JustPressed(input.Climb) {
		t.Error("unbound intent reported as pressed")
	}
}

func TestRotatedOrigin(t *testing.T) {
	tests := []struct {
		name string
		deg  float32
		want engo.Point
	}{
		{"level", 0, engo.Point{X: 385, Y: 285}},
		{"quarter turn", 90, engo.Point{X: 415, Y: 285}},
		{"half turn", 180, engo.Point{X: 415, Y: 315}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotatedOrigin(400, 300, 30, 30, tt.deg)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("RotatedOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineSpace(t *testing.T) {
	tests := []struct {
		name  string
		line  render.Line
		scale engo.Point
		want  [4]float32 // x, y, width, rotation
	}{
		{"horizontal", render.Line{X1: 0, Y1: 350, X2: 800, Y2: 350}, engo.Point{X: 1, Y: 1}, [4]float32{0, 350, 800, 0}},
		{"vertical", render.Line{X1: 400, Y1: 300, X2: 400, Y2: 600}, engo.Point{X: 1, Y: 1}, [4]float32{400, 300, 300, 90}},
		{"scaled", render.Line{X1: 0, Y1: 350, X2: 800, Y2: 350}, engo.Point{X: 0.5, Y: 2}, [4]float32{0, 700, 400, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineSpace(tt.line, tt.scale)
			if !near(got.Position.X, tt.want[0]) || !near(got.Position.Y, tt.want[1]) ||
				!near(got.Width, tt.want[2]) || !near(got.Rotation, tt.want[3]) {
				t.Errorf("LineSpace() = %+v, want %v", got, tt.want)
			}
			if got.Height != gridLineWidth {
				t.Errorf("Height = %v, want %v", got.Height, gridLineWidth)
			}
		})
	}
}

func TestHUDPosition(t *testing.T) {
	if p := HUDPosition(0); p.X != hudLeft || p.Y != hudTop {
		t.Errorf("HUDPosition(0) = %v", p)
	}
	if d := HUDPosition(3).Y - HUDPosition(2).Y; d != hudLineHeight {
		t.Errorf("line spacing = %v, want %v", d, hudLineHeight)
	}
}

func TestSeverityColor(t *testing.T) {
	if SeverityColor(render.SeverityWarning) != WarningColor {
		t.Error("warning lines should be red")
	}
	if SeverityColor(render.SeverityOK) != OKColor {
		t.Error("ok lines should be green")
	}
	if SeverityColor(render.Severity(42)) != TextColor {
		t.Error("unknown severity should use the text colour")
	}
}

func TestLoadAssets_ExpectFailure(t *testing.T) {
	// LoadAssets and FlightScene.Setup need an OpenGL context and are not
	// run in unit tests.
	t.Log("LoadAssets requires OpenGL context and cannot be tested in unit tests")
	am := NewAssetManager(hudFontSize)
	if am.Font(render.SeverityNormal) != nil {
		t.Error("fonts present before LoadAssets")
	}
}

func TestFlightScene_Type(t *testing.T) {
	scene := NewFlightScene(context.Background(), nil, nil, 800, 600)
	if scene.Type() != "FlightScene" {
		t.Errorf("Type() = %q, want FlightScene", scene.Type())
	}
}

// keys is a KeySource with fixed answers
type keys struct {
	down    input.IntentSet
	pressed input.IntentSet
}

func (k keys) Down(i input.Intent) bool        { return k.down.Has(i) }
func (k keys) JustPressed(i input.Intent) bool { return k.pressed.Has(i) }

func newTestSystem(t *testing.T, src input.KeySource) (*FlightSystem, *engine.Session, *render.NullRenderer, *int) {
	t.Helper()
	logger := logging.NewWriterLogger(io.Discard, slog.LevelError)
	session, err := engine.NewSession(config.DefaultConfig(), logger)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	session.Start(context.Background())

	renderer := render.NewNullRenderer(logger)
	fs := NewFlightSystem(session, src, renderer, logger)
	exits := 0
	fs.exit = func() { exits++ }
	return fs, session, renderer, &exits
}

func TestFlightSystem_UpdateStepsAndDraws(t *testing.T) {
	fs, session, renderer, exits := newTestSystem(t, keys{down: input.NewIntentSet(input.TurnRight)})

	for i := 0; i < 5; i++ {
		fs.Update(1.0 / 60)
	}

	if session.Tick() != 5 || renderer.Frames() != 5 {
		t.Errorf("tick = %d frames = %d, want 5 and 5", session.Tick(), renderer.Frames())
	}
	if session.State().Velocity.X <= 0 {
		t.Errorf("vx = %v, want thrust applied", session.State().Velocity.X)
	}
	if *exits != 0 {
		t.Error("exit called without escape")
	}
}

func TestFlightSystem_EscapeExits(t *testing.T) {
	fs, session, _, exits := newTestSystem(t, keys{pressed: input.NewIntentSet(input.Exit)})

	fs.Update(1.0 / 60)
	fs.Update(1.0 / 60)

	if *exits != 1 {
		t.Errorf("exit called %d times, want 1", *exits)
	}
	if session.Running() || session.Tick() != 0 {
		t.Errorf("running=%v tick=%d after escape", session.Running(), session.Tick())
	}
}
