package systems

import (
	"fmt"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
)

// OnFinishLineTrigger stops the run timer and records a best time.
func OnFinishLineTrigger(w donburi.World, ev TriggerEvent) {
	if !ev.Entered || ev.Tag != tags.ResolvFinishLine || !ev.Entry.HasComponent(tags.Player) {
		return
	}
	finishEntry, ok := entryOf(ev.Other)
	if !ok || !finishEntry.HasComponent(components.FinishLine) {
		return
	}
	finish := components.FinishLine.Get(finishEntry)
	timer := GetOrCreateTimer(w)
	if finish.Activated || !timer.Running {
		return
	}
	finish.Activated = true

	StopTimer(w)
	best := timer.Best == 0 || timer.Elapsed < timer.Best
	if best {
		timer.Best = timer.Elapsed
		SaveBestTime(levelName(w), timer.Best)
	}

	ShowBanner(w, fmt.Sprintf("Finish! %s", FormatTime(timer.Elapsed)))
	Finished.Publish(w, FinishedEvent{Entry: ev.Entry, Time: timer.Elapsed, Best: best})
}

func levelName(w donburi.World) string {
	if levelEntry, ok := components.Level.First(w); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			return level.Name
		}
	}
	return ""
}
