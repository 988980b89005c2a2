package systems

import (
	"image/color"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowBanner displays msg at the top of the screen and fades it out over
// HUD.BannerDuration seconds. A new banner replaces the current one.
func ShowBanner(w donburi.World, msg string) {
	banner := getOrCreateBanner(w)
	banner.Text = msg
	banner.Alpha = 1
	banner.Fade = gween.New(1, 0, float32(cfg.HUD.BannerDuration), ease.InQuad)
}

// UpdateBanner advances the fade of the active banner.
func UpdateBanner(ecs *ecs.ECS) {
	banner := getOrCreateBanner(ecs.World)
	if banner.Fade == nil {
		return
	}
	alpha, done := banner.Fade.Update(float32(cfg.C.TickDelta()))
	banner.Alpha = alpha
	if done {
		banner.Text = ""
		banner.Alpha = 0
		banner.Fade = nil
	}
}

// DrawBanner renders the active banner at the top center of the screen.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	banner := getOrCreateBanner(ecs.World)
	if banner.Text == "" || banner.Alpha <= 0 {
		return
	}

	face := fonts.Regular.Get()
	bounds := text.BoundString(face, banner.Text) //nolint:staticcheck // TODO: migrate to text/v2
	margin := float32(cfg.HUD.Margin)
	boxW := float32(bounds.Dx()) + margin*2
	boxH := float32(bounds.Dy()) + margin*2
	boxX := (float32(screen.Bounds().Dx()) - boxW) / 2
	boxY := margin * 3

	vector.FillRect(screen, boxX, boxY, boxW, boxH, fade(cfg.HUD.PanelColor, banner.Alpha), false)
	text.Draw(screen, banner.Text, face, int(boxX+margin), int(boxY+margin)+bounds.Dy(), fade(cfg.HUD.TextColor, banner.Alpha))
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// getOrCreateBanner returns the singleton Banner component
func getOrCreateBanner(w donburi.World) *components.BannerData {
	entry, ok := components.Banner.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Banner))
	}
	return components.Banner.Get(entry)
}
