package components

import "github.com/yohamta/donburi"

// TimerData is the run timer shown on the HUD.
type TimerData struct {
	Elapsed float64
	Running bool
	// Best is the fastest finish, 0 when none is recorded.
	Best float64
}

var Timer = donburi.NewComponentType[TimerData]()
