package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a one-way platform that only blocks from above.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	addToSpace(ecs, newRegion(platform, x, y, w, h, tags.ResolvPlatform))
	return platform
}

// CreateFloatingPlatform creates a one-way platform that rises travel pixels
// and comes back, taking duration seconds per leg.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, travel, duration float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)
	addToSpace(ecs, newRegion(platform, x, y, w, h, tags.ResolvPlatform))

	// The floating platform moves using a *gween.Sequence sequence of tweens, moving it back and forth.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-travel), float32(duration), ease.InOutSine),
		gween.New(float32(y-travel), float32(y), float32(duration), ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	return platform
}
