package components

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the level's collision space.
var Space = donburi.NewComponentType[resolv.Space]()

// Tween drives a floating platform's vertical position.
var Tween = donburi.NewComponentType[gween.Sequence]()
