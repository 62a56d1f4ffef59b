// pkg/render/engo/hud.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-flight/pkg/render"
)

const (
	hudLeft       = 10
	hudTop        = 8
	hudLineHeight = 20
)

// HUD manages the heads-up text entities
type HUD struct {
	renderSystem *common.RenderSystem
	assets       *AssetManager
	lines        []*sprite
}

// NewHUD creates a HUD drawing with fonts from assets
func NewHUD(renderSystem *common.RenderSystem, assets *AssetManager) *HUD {
	return &HUD{
		renderSystem: renderSystem,
		assets:       assets,
	}
}

// Update shows lines, top to bottom. Entities for unused lines are hidden.
func (hud *HUD) Update(lines []render.HUDLine) {
	for len(hud.lines) < len(lines) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		s.SpaceComponent = common.SpaceComponent{
			Position: HUDPosition(len(hud.lines)),
		}
		s.Drawable = common.Text{Font: hud.assets.Font(render.SeverityNormal)}
		s.SetShader(common.TextHUDShader)
		s.SetZIndex(10)
		hud.renderSystem.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		hud.lines = append(hud.lines, s)
	}

	for i, s := range hud.lines {
		if i >= len(lines) {
			s.Hidden = true
			continue
		}
		s.Hidden = false
		s.Drawable = common.Text{
			Font: hud.assets.Font(lines[i].Severity),
			Text: lines[i].Text,
		}
	}
}

// Close removes the HUD entities from the render system
func (hud *HUD) Close() {
	for _, s := range hud.lines {
		hud.renderSystem.Remove(s.BasicEntity)
	}
	hud.lines = nil
}

// HUDPosition returns the top-left corner of HUD line n
func HUDPosition(n int) engo.Point {
	return engo.Point{X: hudLeft, Y: float32(hudTop + n*hudLineHeight)}
}
