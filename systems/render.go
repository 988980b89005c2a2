package systems

import (
	"image/color"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewport is the visible world rectangle plus the camera translation.
type viewport struct {
	camX, camY             float64
	minX, minY, maxX, maxY float64
}

// cameraViewport returns the view for the current camera. A small padding
// is used to prevent objects from popping in/out at the edges.
func cameraViewport(ecs *ecs.ECS, screen *ebiten.Image) (viewport, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return viewport{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	const padding = 32.0
	return viewport{
		camX: width/2 - camera.Position.X,
		camY: height/2 - camera.Position.Y,
		minX: camera.Position.X - width/2 - padding,
		maxX: camera.Position.X + width/2 + padding,
		minY: camera.Position.Y - height/2 - padding,
		maxY: camera.Position.Y + height/2 + padding,
	}, true
}

func (v viewport) visible(o *resolv.Object) bool {
	return o.X+o.W >= v.minX && o.X <= v.maxX && o.Y+o.H >= v.minY && o.Y <= v.maxY
}

func (v viewport) fill(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	vector.FillRect(screen, float32(o.X+v.camX), float32(o.Y+v.camY), float32(o.W), float32(o.H), c, false)
}

// DrawLevel renders the background and static level geometry as flat colors.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	view, ok := cameraViewport(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}

	for _, o := range components.Space.Get(spaceEntry).Objects() {
		if !view.visible(o) {
			continue
		}
		switch {
		case o.HasTags(tags.ResolvSolid):
			view.fill(screen, o, cfg.Render.Solid)
		case o.HasTags(tags.ResolvPlatform):
			view.fill(screen, o, cfg.Render.Platform)
		case o.HasTags(tags.ResolvTrap):
			view.fill(screen, o, cfg.Render.Trap)
		case o.HasTags(tags.ResolvTeleporter):
			view.fill(screen, o, cfg.Render.Teleporter)
		case o.HasTags(tags.ResolvFinishLine):
			view.fill(screen, o, cfg.Render.FinishLine)
		case o.HasTags(tags.ResolvCheckpoint):
			c := cfg.Render.Checkpoint
			if e, ok := entryOf(o); ok && components.Checkpoint.Get(e).Activated {
				c = cfg.Render.CheckpointA
			}
			view.fill(screen, o, c)
		}
	}
}

// DrawCharacters renders players and enemies on top of the level.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := cameraViewport(ecs, screen)
	if !ok {
		return
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if o := components.Object.Get(e).Object; view.visible(o) {
			view.fill(screen, o, cfg.Render.Enemy)
		}
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		o := components.Object.Get(e).Object
		if !view.visible(o) {
			return
		}
		c := cfg.Render.Player
		if components.AirDash.Get(e).Active {
			c = cfg.Render.PlayerDash
		}
		view.fill(screen, o, c)

		// Facing marker
		player := components.Player.Get(e)
		eyeX := o.X + o.W/2 + player.Facing*o.W/4 + view.camX
		vector.FillRect(screen, float32(eyeX-1), float32(o.Y+4+view.camY), 2, 2, cfg.Render.Background, false)
	})
}
