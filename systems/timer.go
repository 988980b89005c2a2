package systems

import (
	"fmt"
	"math"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimer advances the run timer while it is running.
func UpdateTimer(ecs *ecs.ECS) {
	timer := GetOrCreateTimer(ecs.World)
	if timer.Running {
		timer.Elapsed += cfg.C.TickDelta()
	}
}

// GetOrCreateTimer returns the singleton Timer component, creating if needed.
func GetOrCreateTimer(w donburi.World) *components.TimerData {
	entry, ok := components.Timer.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Timer))
		components.Timer.SetValue(entry, components.TimerData{Running: cfg.Timer.AutoStart})
	}
	return components.Timer.Get(entry)
}

func StartTimer(w donburi.World) {
	GetOrCreateTimer(w).Running = true
}

func StopTimer(w donburi.World) {
	GetOrCreateTimer(w).Running = false
}

// ResetTimer zeroes the elapsed time without changing whether it runs.
func ResetTimer(w donburi.World) {
	GetOrCreateTimer(w).Elapsed = 0
}

// FormatTime renders seconds as mm:ss.
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
