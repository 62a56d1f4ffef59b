// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-flight/pkg/engine"
	"github.com/opd-ai/go-flight/pkg/logging"
)

const hudFontSize = 16

// FlightScene is the engo scene hosting one flight session
type FlightScene struct {
	session  *engine.Session
	logger   *logging.Logger
	ctx      context.Context
	bindings []Binding

	width, height float32

	assets   *AssetManager
	renderer *FlightRenderer
	system   *FlightSystem
}

// NewFlightScene creates a scene drawing on a width by height window
func NewFlightScene(ctx context.Context, session *engine.Session, logger *logging.Logger, width, height int) *FlightScene {
	return &FlightScene{
		session:  session,
		logger:   logger,
		ctx:      ctx,
		bindings: DefaultBindings(),
		width:    float32(width),
		height:   float32(height),
		assets:   NewAssetManager(hudFontSize),
	}
}

// Type returns the scene type (required by Engo)
func (scene *FlightScene) Type() string {
	return "FlightScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *FlightScene) Preload() {
	if err := scene.assets.Preload(); err != nil {
		scene.logger.Error(scene.ctx, "failed to preload assets", err)
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *FlightScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)

	common.SetBackground(SkyColor)
	RegisterBindings(scene.bindings)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	if err := scene.assets.LoadAssets(); err != nil {
		// Without fonts the HUD cannot be drawn; fly without it.
		scene.logger.Error(scene.ctx, "failed to load assets", err)
		scene.renderer = NewFlightRenderer(renderSystem, nil, scene.width, scene.height)
	} else {
		hud := NewHUD(renderSystem, scene.assets)
		scene.renderer = NewFlightRenderer(renderSystem, hud, scene.width, scene.height)
	}

	scene.system = NewFlightSystem(scene.session, NewButtonSource(scene.bindings), scene.renderer, scene.logger)
	world.AddSystem(scene.system)

	if !scene.session.Running() {
		scene.session.Start(scene.ctx)
	}
	_ = scene.renderer.Render(scene.session.Snapshot())
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *FlightScene) Exit() {
	scene.session.Stop()
	if scene.renderer != nil {
		_ = scene.renderer.Close()
	}
}
