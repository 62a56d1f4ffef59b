package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-flight/pkg/engine"
)

var (
	skyStyle     = tcell.StyleDefault.Background(tcell.ColorLightBlue).Foreground(tcell.ColorBlack)
	gridStyle    = skyStyle.Foreground(tcell.ColorGreen)
	planeStyle   = skyStyle.Foreground(tcell.ColorRed).Bold(true)
	hudStyle     = skyStyle.Foreground(tcell.ColorBlack)
	okStyle      = skyStyle.Foreground(tcell.ColorGreen).Bold(true)
	warningStyle = skyStyle.Foreground(tcell.ColorRed).Bold(true)
)

// TerminalRenderer draws frames on a tcell screen. The screen must already
// be initialised; Close finalises it.
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer drawing on screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Screen returns the underlying tcell screen
func (r *TerminalRenderer) Screen() tcell.Screen {
	return r.screen
}

// worldToScreen converts reference surface coordinates to cell coordinates
func (r *TerminalRenderer) worldToScreen(x, y float64) (int, int) {
	w, h := r.screen.Size()
	screenX := int(math.Floor(x * float64(w) / SurfaceWidth))
	screenY := int(math.Floor(y * float64(h) / SurfaceHeight))
	return screenX, screenY
}

// Render implements Renderer
func (r *TerminalRenderer) Render(snap engine.Snapshot) error {
	r.clear()
	for _, l := range GroundGrid(snap.State.Position.X, snap.Altitude) {
		r.drawLine(l)
	}
	r.drawPlane(snap.State.BankAngle)
	r.drawHUD(FormatHUD(snap))
	r.screen.Show()
	return nil
}

// Close implements Renderer
func (r *TerminalRenderer) Close() error {
	r.screen.Fini()
	return nil
}

func (r *TerminalRenderer) clear() {
	r.screen.SetStyle(skyStyle)
	r.screen.Clear()
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x >= 0 && x < w && y >= 0 && y < h {
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawLine(l Line) {
	x1, y1 := r.worldToScreen(l.X1, l.Y1)
	x2, y2 := r.worldToScreen(l.X2, l.Y2)

	var ch rune
	switch {
	case y1 == y2:
		ch = '-'
	case x1 == x2:
		ch = '|'
	case (x2-x1)*(y2-y1) > 0:
		ch = '\\'
	default:
		ch = '/'
	}

	steps := max(abs(x2-x1), abs(y2-y1))
	if steps == 0 {
		r.set(x1, y1, ch, gridStyle)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x1 + (x2-x1)*i/steps
		y := y1 + (y2-y1)*i/steps
		r.set(x, y, ch, gridStyle)
	}
}

func (r *TerminalRenderer) drawPlane(bank float64) {
	x, y := r.worldToScreen(SurfaceWidth/2, Horizon)
	for i, ch := range []rune(PlaneGlyph(bank)) {
		r.set(x-1+i, y, ch, planeStyle)
	}
}

func (r *TerminalRenderer) drawHUD(lines []HUDLine) {
	for row, line := range lines {
		style := hudStyle
		switch line.Severity {
		case SeverityOK:
			style = okStyle
		case SeverityWarning:
			style = warningStyle
		}
		drawText(r, 1, row, style, line.Text)
	}
}

// drawText draws a string starting at the given cell.
func drawText(r *TerminalRenderer, x, y int, style tcell.Style, text string) {
	col := 0
	for _, ch := range text {
		r.set(x+col, y, ch, style)
		col++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
