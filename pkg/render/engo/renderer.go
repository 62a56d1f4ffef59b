// pkg/render/engo/renderer.go
package engo

import (
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-flight/pkg/engine"
	"github.com/opd-ai/go-flight/pkg/render"
)

const (
	planeSize     = 30
	gridLineWidth = 1
)

// sprite is an entity drawn by the render system
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// FlightRenderer implements render.Renderer with engo drawables: the ground
// grid as thin rotated rectangles and the plane as a triangle.
type FlightRenderer struct {
	renderSystem *common.RenderSystem
	scale        engo.Point

	plane *sprite
	grid  []*sprite
	hud   *HUD
}

// NewFlightRenderer creates a renderer for a window of the given size.
// Drawing is laid out on the 800x600 reference surface and scaled.
func NewFlightRenderer(renderSystem *common.RenderSystem, hud *HUD, width, height float32) *FlightRenderer {
	r := &FlightRenderer{
		renderSystem: renderSystem,
		hud:          hud,
		scale: engo.Point{
			X: width / render.SurfaceWidth,
			Y: height / render.SurfaceHeight,
		},
	}

	r.plane = &sprite{BasicEntity: ecs.NewBasic()}
	r.plane.RenderComponent = common.RenderComponent{
		Drawable: common.Triangle{},
		Color:    PlaneColor,
	}
	r.plane.SetZIndex(5)
	r.plane.SpaceComponent = common.SpaceComponent{
		Width:  planeSize * r.scale.X,
		Height: planeSize * r.scale.Y,
	}
	renderSystem.Add(&r.plane.BasicEntity, &r.plane.RenderComponent, &r.plane.SpaceComponent)

	return r
}

// Render implements render.Renderer
func (r *FlightRenderer) Render(snap engine.Snapshot) error {
	r.drawGrid(render.GroundGrid(snap.State.Position.X, snap.Altitude))
	r.drawPlane(snap.State.BankAngle)
	if r.hud != nil {
		r.hud.Update(render.FormatHUD(snap))
	}
	return nil
}

// Close implements render.Renderer
func (r *FlightRenderer) Close() error {
	r.renderSystem.Remove(r.plane.BasicEntity)
	for _, s := range r.grid {
		r.renderSystem.Remove(s.BasicEntity)
	}
	r.grid = nil
	if r.hud != nil {
		r.hud.Close()
	}
	return nil
}

func (r *FlightRenderer) drawPlane(bank float64) {
	w, h := r.plane.Width, r.plane.Height
	cx := render.SurfaceWidth / 2 * r.scale.X
	cy := render.Horizon * r.scale.Y
	r.plane.Position = RotatedOrigin(cx, cy, w, h, float32(bank))
	r.plane.Rotation = float32(bank)
}

// drawGrid reuses grid entities from earlier frames; the line count only
// changes with altitude.
func (r *FlightRenderer) drawGrid(lines []render.Line) {
	for len(r.grid) < len(lines) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		s.RenderComponent = common.RenderComponent{
			Drawable: common.Rectangle{},
			Color:    GridColor,
		}
		r.renderSystem.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		r.grid = append(r.grid, s)
	}

	for i, s := range r.grid {
		if i >= len(lines) {
			s.Hidden = true
			continue
		}
		s.Hidden = false
		s.SpaceComponent = LineSpace(lines[i], r.scale)
	}
}

// LineSpace places a thin rectangle over l. engo rotates a drawable about
// its position, so the rectangle starts at the first point of the line.
func LineSpace(l render.Line, scale engo.Point) common.SpaceComponent {
	scaled := render.Line{
		X1: l.X1 * float64(scale.X),
		Y1: l.Y1 * float64(scale.Y),
		X2: l.X2 * float64(scale.X),
		Y2: l.Y2 * float64(scale.Y),
	}
	return common.SpaceComponent{
		Position: engo.Point{X: float32(scaled.X1), Y: float32(scaled.Y1)},
		Width:    float32(scaled.Length()),
		Height:   gridLineWidth,
		Rotation: float32(scaled.Angle()),
	}
}

// RotatedOrigin returns the position that keeps a w by h drawable centred
// on (cx, cy) once rotated by deg about that position.
func RotatedOrigin(cx, cy, w, h, deg float32) engo.Point {
	rad := float64(deg) * math.Pi / 180
	sin, cos := math.Sincos(rad)
	hw, hh := float64(w)/2, float64(h)/2
	return engo.Point{
		X: cx - float32(hw*cos-hh*sin),
		Y: cy - float32(hw*sin+hh*cos),
	}
}
