package systems

import (
	"fmt"

	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the run timer in the top-left corner and the best time
// under it.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	timer := GetOrCreateTimer(ecs.World)
	margin := int(cfg.HUD.Margin)

	face := fonts.Regular.Get()
	label := FormatTime(timer.Elapsed)
	bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2

	vector.FillRect(screen,
		float32(margin/2), float32(margin/2),
		float32(bounds.Dx()+margin), float32(bounds.Dy()+margin),
		cfg.HUD.PanelColor, false)
	text.Draw(screen, label, face, margin, margin+bounds.Dy(), cfg.HUD.TextColor)

	if timer.Best > 0 {
		best := fmt.Sprintf("Best %s", FormatTime(timer.Best))
		text.Draw(screen, best, fonts.Small.Get(), margin, margin*2+bounds.Dy()+int(cfg.HUD.SmallFontSize), cfg.HUD.TextColor)
	}
}
