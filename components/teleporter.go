package components

import "github.com/yohamta/donburi"

type TeleporterData struct {
	DestX, DestY float64
	Name         string
}

var Teleporter = donburi.NewComponentType[TeleporterData]()
