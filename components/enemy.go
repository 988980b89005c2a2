package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Speed        float64
	StopDistance float64
	Lethal       bool
	Spawner      *donburi.Entry
}

var Enemy = donburi.NewComponentType[EnemyData]()

// EnemySpawnerData spawns a single enemy once Delay seconds have passed.
type EnemySpawnerData struct {
	Delay   float64
	Elapsed float64
	Spawned bool
	X, Y    float64

	// Passed to the spawned enemy
	Speed        float64
	StopDistance float64
}

var EnemySpawner = donburi.NewComponentType[EnemySpawnerData]()
