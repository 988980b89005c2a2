package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is a short HUD message that fades out.
type BannerData struct {
	Text  string
	Alpha float32
	Fade  *gween.Tween
}

var Banner = donburi.NewComponentType[BannerData]()
