package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Wall             = donburi.NewTag().SetName("Wall")
	Enemy            = donburi.NewTag().SetName("Enemy")
	EnemySpawner     = donburi.NewTag().SetName("EnemySpawner")
	Checkpoint       = donburi.NewTag().SetName("Checkpoint")
	Trap             = donburi.NewTag().SetName("Trap")
	Teleporter       = donburi.NewTag().SetName("Teleporter")
	FinishLine       = donburi.NewTag().SetName("FinishLine")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlatform   = "platform"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvDeadZone   = "deadzone"
	ResolvTrap       = "trap"
	ResolvCheckpoint = "checkpoint"
	ResolvTeleporter = "teleporter"
	ResolvFinishLine = "finishline"
	ResolvProbe      = "probe"
)

// TriggerTags are the region tags that produce trigger events on overlap.
var TriggerTags = []string{
	ResolvCheckpoint,
	ResolvTeleporter,
	ResolvFinishLine,
	ResolvTrap,
	ResolvDeadZone,
	ResolvEnemy,
}
