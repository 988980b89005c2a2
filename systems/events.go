package systems

import (
	cfg "github.com/automoto/skyhop/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

type StateChangedEvent struct {
	Entry *donburi.Entry
	From  cfg.StateID
	To    cfg.StateID
}

type GroundedChangedEvent struct {
	Entry    *donburi.Entry
	Grounded bool
}

type JumpedEvent struct {
	Entry    *donburi.Entry
	Buffered bool
	AirJump  bool
}

type AirDashedEvent struct {
	Entry     *donburi.Entry
	Direction float64
}

type DashEndedEvent struct {
	Entry *donburi.Entry
}

type CheckpointReachedEvent struct {
	Entry        *donburi.Entry
	CheckpointID float64
	X, Y         float64
	First        bool
}

type DiedEvent struct {
	Entry *donburi.Entry
	Cause string
}

type RespawnedEvent struct {
	Entry *donburi.Entry
	X, Y  float64
}

type TeleportedEvent struct {
	Entry *donburi.Entry
	Name  string
	X, Y  float64
}

type FinishedEvent struct {
	Entry *donburi.Entry
	Time  float64
	Best  bool
}

// TriggerEvent is published when a body starts or stops overlapping a
// tagged region.
type TriggerEvent struct {
	Entry   *donburi.Entry
	Other   *resolv.Object
	Tag     string
	Entered bool
}

var (
	StateChanged      = events.NewEventType[StateChangedEvent]()
	GroundedChanged   = events.NewEventType[GroundedChangedEvent]()
	Jumped            = events.NewEventType[JumpedEvent]()
	AirDashed         = events.NewEventType[AirDashedEvent]()
	DashEnded         = events.NewEventType[DashEndedEvent]()
	CheckpointReached = events.NewEventType[CheckpointReachedEvent]()
	Died              = events.NewEventType[DiedEvent]()
	Respawned         = events.NewEventType[RespawnedEvent]()
	Teleported        = events.NewEventType[TeleportedEvent]()
	Finished          = events.NewEventType[FinishedEvent]()
	Trigger           = events.NewEventType[TriggerEvent]()
)

// RegisterHandlers subscribes the gameplay reactions for a world. Call it
// once per world before the first frame.
func RegisterHandlers(w donburi.World) {
	Trigger.Subscribe(w, OnCheckpointTrigger)
	Trigger.Subscribe(w, OnHazardTrigger)
	Trigger.Subscribe(w, OnTeleporterTrigger)
	Trigger.Subscribe(w, OnFinishLineTrigger)

	StateChanged.Subscribe(w, logStateChange)
	GroundedChanged.Subscribe(w, logGroundedChange)
	CheckpointReached.Subscribe(w, logCheckpoint)
	Respawned.Subscribe(w, logRespawn)
	Teleported.Subscribe(w, logTeleport)
}

// UpdateEvents dispatches every event queued during the frame.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
