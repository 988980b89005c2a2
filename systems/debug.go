package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/fonts"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs.World), cfg.ActionDebug).JustPressed {
		cfg.Debug.DrawProbes = !cfg.Debug.DrawProbes
	}
}

// DrawDebug outlines every collider, draws ground probes and prints the
// player's state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawProbes {
		return
	}
	view, ok := cameraViewport(ecs, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			if !view.visible(obj) || obj.HasTags(tags.ResolvProbe) {
				continue
			}
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}
			vector.StrokeRect(screen, float32(obj.X+view.camX), float32(obj.Y+view.camY), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	y := screen.Bounds().Dy() - int(cfg.HUD.Margin)
	components.GroundSensor.Each(ecs.World, func(e *donburi.Entry) {
		ground := components.GroundSensor.Get(e)
		body := components.Object.Get(e).Object
		cx, cy := ProbeCenter(body, ground)
		c := cfg.Render.Probe
		if !ground.Grounded {
			c = cfg.Red
		}
		vector.StrokeCircle(screen, float32(cx+view.camX), float32(cy+view.camY), float32(ground.Radius), 1, c, false)

		if e.HasComponent(components.State) && e.HasComponent(components.Physics) {
			state := components.State.Get(e)
			physics := components.Physics.Get(e)
			line := fmt.Sprintf("%s vx=%.0f vy=%.0f contacts=%d", state.CurrentState, physics.SpeedX, physics.SpeedY, ground.Contacts)
			text.Draw(screen, line, fonts.Small.Get(), int(cfg.HUD.Margin), y, cfg.HUD.TextColor)
			y -= int(cfg.HUD.SmallFontSize) + 4
		}
	})
}
