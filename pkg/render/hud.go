package render

import (
	"fmt"

	"github.com/opd-ai/go-flight/pkg/engine"
)

// Severity picks the colour of a HUD line
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityOK
	SeverityWarning
)

// HUDLine is one line of heads-up text
type HUDLine struct {
	Text     string
	Severity Severity
}

// FormatHUD returns the heads-up lines for a frame, top to bottom. The
// takeoff readiness line is only shown on the ground.
func FormatHUD(snap engine.Snapshot) []HUDLine {
	lines := []HUDLine{
		{Text: fmt.Sprintf("Speed: %.1f", snap.Speed)},
		{Text: fmt.Sprintf("Altitude: %.0f", snap.Altitude)},
		{Text: fmt.Sprintf("Bank Angle: %.0f°", snap.State.BankAngle)},
	}

	if snap.State.Airborne {
		lines = append(lines, HUDLine{Text: "AIRBORNE"})
		return lines
	}

	lines = append(lines, HUDLine{Text: "ON GROUND"})
	if snap.TakeoffReady {
		lines = append(lines, HUDLine{Text: "TAKEOFF SPEED: REACHED", Severity: SeverityOK})
	} else {
		lines = append(lines, HUDLine{Text: "TAKEOFF SPEED: NOT REACHED", Severity: SeverityWarning})
	}
	return lines
}
