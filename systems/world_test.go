package systems

import (
	"math"
	"testing"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const floorY = 400.0

type testWorld struct {
	ecs    *ecs.ECS
	player *donburi.Entry
}

// newTestWorld builds a level with a long floor and a player standing on it.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	RegisterHandlers(e.World)
	factory.CreateSpace(e, 1280, 480, 16, 16)
	factory.CreateWall(e, 0, floorY, 1280, 32)
	player := factory.CreatePlayer(e, 200, floorY-float64(cfg.Player.CollisionHeight))
	return &testWorld{ecs: e, player: player}
}

// tick runs one simulation frame with in as the player's input.
func (tw *testWorld) tick(in components.InputSample) {
	components.PlayerInput.Get(tw.player).Sample = in
	for _, system := range Simulation() {
		system(tw.ecs)
	}
}

func (tw *testWorld) state() cfg.StateID {
	return components.State.Get(tw.player).CurrentState
}

func (tw *testWorld) physics() *components.PhysicsData {
	return components.Physics.Get(tw.player)
}

func (tw *testWorld) ground() *components.GroundSensorData {
	return components.GroundSensor.Get(tw.player)
}

func (tw *testWorld) object() *components.ObjectData {
	return components.Object.Get(tw.player)
}

// settle lets the player stand still until grounded.
func (tw *testWorld) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 10; i++ {
		tw.tick(components.InputSample{})
	}
	if !tw.ground().Grounded || tw.state() != cfg.Idle {
		t.Fatalf("player did not settle: grounded=%t state=%s", tw.ground().Grounded, tw.state())
	}
}

// untilLanded ticks with in until the grounded edge fires and returns the
// number of frames it took.
func (tw *testWorld) untilLanded(t *testing.T, in components.InputSample, each func()) int {
	t.Helper()
	for i := 1; i <= 300; i++ {
		tw.tick(in)
		if tw.ground().Entered {
			return i
		}
		if each != nil {
			each()
		}
	}
	t.Fatal("player never landed")
	return 0
}

func withPlayerConfig(t *testing.T, mutate func(p *cfg.PlayerConfig)) {
	t.Helper()
	saved := cfg.Player
	t.Cleanup(func() { cfg.Player = saved })
	mutate(&cfg.Player)
}

func TestWalkJumpLandScenario(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle(t)

	tw.tick(components.InputSample{Axis: 1})
	if tw.state() != cfg.Walking {
		t.Fatalf("state = %s, want Walking", tw.state())
	}
	if got := tw.physics().SpeedX; got != cfg.Player.WalkSpeed {
		t.Fatalf("walk vx = %v, want %v", got, cfg.Player.WalkSpeed)
	}

	tw.tick(components.InputSample{Axis: 1, RunHeld: true})
	if tw.state() != cfg.Running || tw.physics().SpeedX != cfg.Player.RunSpeed {
		t.Fatalf("state = %s vx = %v, want Running at %v", tw.state(), tw.physics().SpeedX, cfg.Player.RunSpeed)
	}

	tw.tick(components.InputSample{Axis: 1, JumpPressed: true})
	if tw.state() != cfg.Jumping {
		t.Fatalf("state = %s, want Jumping", tw.state())
	}
	if tw.physics().SpeedY >= 0 {
		t.Fatalf("vy = %v after jump, want upward", tw.physics().SpeedY)
	}

	tw.untilLanded(t, components.InputSample{Axis: 1}, nil)
	if tw.state() != cfg.Idle {
		t.Fatalf("state on landing = %s, want Idle", tw.state())
	}
	if components.Player.Get(tw.player).DirectionLocked {
		t.Fatal("direction still locked after landing")
	}
}

func TestJumpLocksHorizontalSpeed(t *testing.T) {
	cases := []struct {
		name     string
		jumpAxis float64
		airAxis  float64
	}{
		{"right_then_left", 1, -1},
		{"left_then_right", -1, 1},
		{"still_then_right", 0, 1},
		{"half_then_none", 0.5, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tw := newTestWorld(t)
			tw.settle(t)

			tw.tick(components.InputSample{Axis: c.jumpAxis, JumpPressed: true})
			want := c.jumpAxis * cfg.Player.AirSpeed
			if got := tw.physics().SpeedX; got != want {
				t.Fatalf("vx after jump = %v, want %v", got, want)
			}

			airborne := 0
			tw.untilLanded(t, components.InputSample{Axis: c.airAxis}, func() {
				if !tw.state().Airborne() {
					return
				}
				airborne++
				if got := tw.physics().SpeedX; got != want {
					t.Fatalf("vx in air = %v, want %v", got, want)
				}
			})
			if airborne == 0 {
				t.Fatal("never observed an airborne frame")
			}
		})
	}
}

func TestAirDashScenario(t *testing.T) {
	tw := newTestWorld(t)
	tw.settle(t)

	tw.tick(components.InputSample{JumpPressed: true})
	for i := 0; i < 10; i++ {
		tw.tick(components.InputSample{})
	}

	tw.tick(components.InputSample{Axis: 1, DashPressed: true})
	if tw.state() != cfg.AirDashing {
		t.Fatalf("state = %s, want AirDashing", tw.state())
	}
	if tw.physics().GravityScale != 0 {
		t.Fatalf("gravity scale during dash = %v, want 0", tw.physics().GravityScale)
	}
	if tw.physics().SpeedX != cfg.Player.DashSpeed {
		t.Fatalf("dash vx = %v, want %v", tw.physics().SpeedX, cfg.Player.DashSpeed)
	}
	y := tw.object().Y

	frames := 0
	for tw.state() == cfg.AirDashing && frames < 60 {
		tw.tick(components.InputSample{Axis: -1})
		frames++
		if tw.state() == cfg.AirDashing && tw.object().Y != y {
			t.Fatalf("y moved during dash: %v -> %v", y, tw.object().Y)
		}
	}
	if want := int(cfg.Player.DashDuration*float64(cfg.C.TPS) + 0.5); frames != want {
		t.Fatalf("dash lasted %d frames, want %d", frames, want)
	}
	if tw.state() != cfg.Jumping {
		t.Fatalf("state after dash = %s, want Jumping", tw.state())
	}
	if tw.physics().SpeedX != 0 {
		t.Fatalf("vx after dash = %v, want 0", tw.physics().SpeedX)
	}
	if tw.physics().GravityScale != cfg.Player.GravityScale {
		t.Fatalf("gravity scale after dash = %v, want %v", tw.physics().GravityScale, cfg.Player.GravityScale)
	}

	tw.tick(components.InputSample{Axis: 1, DashPressed: true})
	if tw.state() == cfg.AirDashing {
		t.Fatal("second dash in the same airborne period")
	}

	tw.untilLanded(t, components.InputSample{}, nil)
	tw.tick(components.InputSample{JumpPressed: true})
	for i := 0; i < 10; i++ {
		tw.tick(components.InputSample{})
	}
	tw.tick(components.InputSample{DashPressed: true})
	if tw.state() != cfg.AirDashing {
		t.Fatalf("dash not restored by landing, state = %s", tw.state())
	}
}

func TestLedgeFallIsAirborneWithoutLock(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	RegisterHandlers(e.World)
	factory.CreateSpace(e, 640, 480, 16, 16)
	factory.CreateWall(e, 0, floorY, 220, 32)
	h := float64(cfg.Player.CollisionHeight)
	tw := &testWorld{ecs: e, player: factory.CreatePlayer(e, 190, floorY-h)}
	tw.settle(t)

	for i := 0; i < 60 && tw.ground().Grounded; i++ {
		tw.tick(components.InputSample{Axis: 1})
	}
	tw.tick(components.InputSample{Axis: 0.5})
	if tw.state() != cfg.Jumping {
		t.Fatalf("state after walking off = %s, want Jumping", tw.state())
	}
	if components.Player.Get(tw.player).DirectionLocked {
		t.Fatal("walking off a ledge must not lock direction")
	}
	if got, want := tw.physics().SpeedX, 0.5*cfg.Player.AirSpeed; got != want {
		t.Fatalf("air control vx = %v, want %v", got, want)
	}
}

func TestFloatingPlatformCarriesRider(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 480, 16, 16)
	platform := factory.CreateFloatingPlatform(e, 100, 300, 64, 8, 32, 1)
	h := float64(cfg.Player.CollisionHeight)
	player := factory.CreatePlayer(e, 110, 300-h)

	platformObj := components.Object.Get(platform)
	playerObj := components.Object.Get(player)
	platformY, playerY := platformObj.Y, playerObj.Y

	for i := 0; i < 5; i++ {
		UpdateFloatingPlatforms(e)
	}

	dy := platformObj.Y - platformY
	if dy >= 0 {
		t.Fatalf("platform did not rise: dy = %v", dy)
	}
	if got := playerObj.Y - playerY; math.Abs(got-dy) > 1e-9 {
		t.Fatalf("rider moved %v, platform moved %v", got, dy)
	}
}

func TestJumpThroughPlatformLandsOnTop(t *testing.T) {
	tw := newTestWorld(t)
	platformY := floorY - 40
	factory.CreatePlatform(tw.ecs, 150, platformY, 100, 8)
	tw.settle(t)

	tw.tick(components.InputSample{JumpPressed: true})
	tw.untilLanded(t, components.InputSample{}, func() {
		if !tw.state().Airborne() {
			t.Fatalf("state = %s while passing through the platform", tw.state())
		}
		if !components.Player.Get(tw.player).DirectionLocked {
			t.Fatal("direction lock released before landing")
		}
	})

	if bottom := tw.object().Y + tw.object().H; bottom > platformY {
		t.Fatalf("landed with feet at %v, want on top of %v", bottom, platformY)
	}
	for i := 0; i < 10; i++ {
		tw.tick(components.InputSample{})
	}
	if bottom := tw.object().Y + tw.object().H; bottom != platformY {
		t.Fatalf("resting feet at %v, want %v", bottom, platformY)
	}
	if tw.state() != cfg.Idle {
		t.Fatalf("state on platform = %s, want Idle", tw.state())
	}
}

func TestLowCeilingJumpRecovers(t *testing.T) {
	tw := newTestWorld(t)
	h := float64(cfg.Player.CollisionHeight)
	// Ceiling 4 px above the head, inside the ground sensor's radius.
	factory.CreateWall(tw.ecs, 150, floorY-h-4-16, 100, 16)
	tw.settle(t)

	tw.tick(components.InputSample{JumpPressed: true})
	if tw.state() != cfg.Jumping {
		t.Fatalf("state after jump = %s, want Jumping", tw.state())
	}

	recovered := false
	for i := 0; i < 30; i++ {
		tw.tick(components.InputSample{})
		if tw.state() == cfg.Idle {
			recovered = true
			break
		}
	}
	if !recovered {
		t.Fatalf("player stuck in %s under a low ceiling", tw.state())
	}
	if components.Player.Get(tw.player).DirectionLocked {
		t.Fatal("direction lock kept after settling")
	}

	tw.tick(components.InputSample{JumpPressed: true})
	if tw.state() != cfg.Jumping {
		t.Fatalf("second jump state = %s, want Jumping", tw.state())
	}
}

func TestGroundedChangedOnEdgesOnly(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	RegisterHandlers(e.World)
	factory.CreateSpace(e, 640, 480, 16, 16)
	// Two walls meeting under the player's feet.
	factory.CreateWall(e, 150, floorY, 57, 32)
	factory.CreateWall(e, 207, floorY, 60, 32)
	h := float64(cfg.Player.CollisionHeight)
	tw := &testWorld{ecs: e, player: factory.CreatePlayer(e, 200, floorY-h)}

	var changes []bool
	GroundedChanged.Subscribe(e.World, func(w donburi.World, ev GroundedChangedEvent) {
		if ev.Entry == tw.player {
			changes = append(changes, ev.Grounded)
		}
	})

	entered := 0
	for i := 0; i < 10; i++ {
		tw.tick(components.InputSample{})
		if tw.ground().Entered {
			entered++
		}
	}
	if got := tw.ground().Contacts; got != 2 {
		t.Fatalf("contacts = %d, want 2", got)
	}
	if !tw.ground().Grounded || entered != 1 {
		t.Fatalf("grounded=%t entered=%d, want true 1", tw.ground().Grounded, entered)
	}
	if len(changes) != 1 || !changes[0] {
		t.Fatalf("events while standing = %v, want [true]", changes)
	}

	for i := 0; i < 120 && tw.ground().Grounded; i++ {
		tw.tick(components.InputSample{Axis: 1})
	}
	if tw.ground().Grounded {
		t.Fatal("player never walked off the edge")
	}
	for i := 0; i < 5; i++ {
		tw.tick(components.InputSample{})
	}
	if len(changes) != 2 || changes[1] {
		t.Fatalf("events after walking off = %v, want [true false]", changes)
	}
}
