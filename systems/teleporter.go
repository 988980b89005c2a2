package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
)

// OnTeleporterTrigger moves a player that enters a teleporter to its
// destination. Velocity is kept.
func OnTeleporterTrigger(w donburi.World, ev TriggerEvent) {
	if !ev.Entered || ev.Tag != tags.ResolvTeleporter || !ev.Entry.HasComponent(tags.Player) {
		return
	}
	teleporterEntry, ok := entryOf(ev.Other)
	if !ok || !teleporterEntry.HasComponent(components.Teleporter) {
		return
	}
	tp := components.Teleporter.Get(teleporterEntry)

	obj := components.Object.Get(ev.Entry)
	obj.X = tp.DestX
	obj.Y = tp.DestY
	obj.Update()

	Teleported.Publish(w, TeleportedEvent{Entry: ev.Entry, Name: tp.Name, X: tp.DestX, Y: tp.DestY})
}
