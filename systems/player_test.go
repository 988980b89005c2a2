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

// newBarePlayer returns a player in a world without a collision space so
// ground flags can be driven by hand.
func newBarePlayer(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	return e, factory.CreatePlayer(e, 0, 0)
}

func setGrounded(e *donburi.Entry, grounded bool) {
	ground := components.GroundSensor.Get(e)
	ground.WasGrounded = ground.Grounded
	ground.Grounded = grounded
	ground.Entered = grounded && !ground.WasGrounded
	ground.Exited = !grounded && ground.WasGrounded
}

func TestJumpZeroesVerticalSpeedFirst(t *testing.T) {
	cases := []struct {
		name string
		vy   float64
	}{
		{"at_rest", 0},
		{"falling", 300},
		{"rising", -150},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, player := newBarePlayer(t)
			setGrounded(player, true)
			components.Physics.Get(player).SpeedY = c.vy

			stepPlayer(w.World, player, components.InputSample{Axis: 1, JumpPressed: true}, cfg.C.TickDelta())

			physics := components.Physics.Get(player)
			if physics.SpeedY != -cfg.Player.JumpImpulse {
				t.Fatalf("vy = %v, want %v", physics.SpeedY, -cfg.Player.JumpImpulse)
			}
			p := components.Player.Get(player)
			if !p.DirectionLocked || p.LockedSpeedX != cfg.Player.AirSpeed {
				t.Fatalf("lock = %t %v, want true %v", p.DirectionLocked, p.LockedSpeedX, cfg.Player.AirSpeed)
			}
			if s := components.State.Get(player).CurrentState; s != cfg.Jumping {
				t.Fatalf("state = %s, want Jumping", s)
			}
		})
	}
}

func TestJumpBufferWindow(t *testing.T) {
	cases := []struct {
		name       string
		framesLate int
		wantJump   bool
	}{
		{"next_frame", 1, true},
		{"mid_window", 6, true},
		{"window_edge", 12, true},
		{"just_late", 13, false},
		{"long_after", 30, false},
	}
	dt := cfg.C.TickDelta()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, player := newBarePlayer(t)
			setGrounded(player, false)
			stepPlayer(w.World, player, components.InputSample{}, dt)

			stepPlayer(w.World, player, components.InputSample{JumpPressed: true}, dt)
			if !components.JumpBuffer.Get(player).Pending {
				t.Fatal("airborne press was not buffered")
			}

			for i := 1; i < c.framesLate; i++ {
				setGrounded(player, false)
				stepPlayer(w.World, player, components.InputSample{}, dt)
			}
			setGrounded(player, true)
			stepPlayer(w.World, player, components.InputSample{}, dt)

			state := components.State.Get(player).CurrentState
			jumped := state == cfg.Jumping && components.Physics.Get(player).SpeedY == -cfg.Player.JumpImpulse
			if jumped != c.wantJump {
				t.Fatalf("jumped = %t (state %s), want %t", jumped, state, c.wantJump)
			}
			if !jumped && state != cfg.Idle {
				t.Fatalf("state = %s, want Idle", state)
			}
			if components.JumpBuffer.Get(player).Pending {
				t.Fatal("buffer still pending after landing")
			}
		})
	}
}

func TestAirJumpRepinsLock(t *testing.T) {
	withPlayerConfig(t, func(p *cfg.PlayerConfig) { p.AirJumps = 1 })
	w, player := newBarePlayer(t)
	dt := cfg.C.TickDelta()

	setGrounded(player, true)
	stepPlayer(w.World, player, components.InputSample{Axis: 1, JumpPressed: true}, dt)
	setGrounded(player, false)
	stepPlayer(w.World, player, components.InputSample{}, dt)

	stepPlayer(w.World, player, components.InputSample{Axis: -1, JumpPressed: true}, dt)
	if s := components.State.Get(player).CurrentState; s != cfg.DoubleJumping {
		t.Fatalf("state = %s, want DoubleJumping", s)
	}
	if got := components.Player.Get(player).LockedSpeedX; got != -cfg.Player.AirSpeed {
		t.Fatalf("locked vx = %v, want %v", got, -cfg.Player.AirSpeed)
	}

	stepPlayer(w.World, player, components.InputSample{JumpPressed: true}, dt)
	if !components.JumpBuffer.Get(player).Pending {
		t.Fatal("third press should be buffered once air jumps are spent")
	}
}

func TestDashLandingEndsDash(t *testing.T) {
	w, player := newBarePlayer(t)
	dt := cfg.C.TickDelta()

	setGrounded(player, false)
	stepPlayer(w.World, player, components.InputSample{DashPressed: true}, dt)
	dash := components.AirDash.Get(player)
	if !dash.Active || dash.Direction != cfg.DirectionRight {
		t.Fatalf("dash = %+v, want active toward facing", dash)
	}

	setGrounded(player, true)
	stepPlayer(w.World, player, components.InputSample{}, dt)
	if dash.Active || !dash.Available {
		t.Fatalf("dash after landing = %+v", dash)
	}
	if s := components.State.Get(player).CurrentState; s != cfg.Idle {
		t.Fatalf("state = %s, want Idle", s)
	}
	if g := components.Physics.Get(player).GravityScale; g != cfg.Player.GravityScale {
		t.Fatalf("gravity scale = %v, want %v", g, cfg.Player.GravityScale)
	}
}

func TestJumpDuringDashDropped(t *testing.T) {
	w, player := newBarePlayer(t)
	dt := cfg.C.TickDelta()

	setGrounded(player, false)
	stepPlayer(w.World, player, components.InputSample{DashPressed: true}, dt)
	airJumps := components.Player.Get(player).AirJumpsLeft

	setGrounded(player, false)
	stepPlayer(w.World, player, components.InputSample{JumpPressed: true}, dt)

	if !components.AirDash.Get(player).Active {
		t.Fatal("jump press cancelled the dash")
	}
	if components.JumpBuffer.Get(player).Pending {
		t.Fatal("jump pressed mid-dash was buffered")
	}
	if got := components.Player.Get(player).AirJumpsLeft; got != airJumps {
		t.Fatalf("air jumps = %d, want %d", got, airJumps)
	}
	if s := components.State.Get(player).CurrentState; s != cfg.AirDashing {
		t.Fatalf("state = %s, want AirDashing", s)
	}
}

func TestGroundedDashIgnored(t *testing.T) {
	w, player := newBarePlayer(t)
	setGrounded(player, true)
	stepPlayer(w.World, player, components.InputSample{}, cfg.C.TickDelta())
	setGrounded(player, true)
	stepPlayer(w.World, player, components.InputSample{Axis: 1, DashPressed: true}, cfg.C.TickDelta())
	if components.AirDash.Get(player).Active {
		t.Fatal("dash started on the ground")
	}
	if s := components.State.Get(player).CurrentState; s != cfg.Walking {
		t.Fatalf("state = %s, want Walking", s)
	}
}

func TestStateChangedOnlyOnChange(t *testing.T) {
	w, player := newBarePlayer(t)

	var got []StateChangedEvent
	StateChanged.Subscribe(w.World, func(_ donburi.World, ev StateChangedEvent) {
		got = append(got, ev)
	})

	steps := []struct {
		next    cfg.StateID
		changed bool
	}{
		{cfg.Idle, false},
		{cfg.Walking, true},
		{cfg.Walking, false},
		{cfg.Running, true},
		{cfg.Running, false},
		{cfg.Idle, true},
	}
	for i, s := range steps {
		if changed := setState(w.World, player, s.next); changed != s.changed {
			t.Fatalf("step %d: changed = %t, want %t", i, changed, s.changed)
		}
	}
	UpdateEvents(w)

	if len(got) != 3 {
		t.Fatalf("got %d events, want 3: %+v", len(got), got)
	}
	if got[0].From != cfg.Idle || got[0].To != cfg.Walking {
		t.Fatalf("first event = %+v", got[0])
	}
	if st := components.State.Get(player); st.PreviousState != cfg.Running {
		t.Fatalf("previous state = %s, want Running", st.PreviousState)
	}
}

func TestApplyFriction(t *testing.T) {
	const (
		decay = 5.0
		eps   = 0.01
	)
	dt := cfg.C.TickDelta()
	cases := []struct {
		name string
		v    float64
	}{
		{"zero", 0},
		{"inside_epsilon", 0.005},
		{"negative_inside_epsilon", -0.01},
		{"moving_right", 160},
		{"moving_left", -256},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ApplyFriction(c.v, decay, eps, dt)
			if math.Abs(c.v) <= eps {
				if got != c.v {
					t.Fatalf("ApplyFriction(%v) = %v, want unchanged", c.v, got)
				}
				return
			}
			if math.Abs(got) >= math.Abs(c.v) || math.Signbit(got) != math.Signbit(c.v) {
				t.Fatalf("ApplyFriction(%v) = %v, want smaller magnitude same sign", c.v, got)
			}
		})
	}

	t.Run("settles_and_stays", func(t *testing.T) {
		v := 160.0
		for i := 0; i < 600; i++ {
			v = ApplyFriction(v, decay, eps, dt)
		}
		if math.Abs(v) > eps {
			t.Fatalf("v = %v after 10s, want within %v", v, eps)
		}
		if again := ApplyFriction(v, decay, eps, dt); again != v {
			t.Fatalf("settled speed changed %v -> %v", v, again)
		}
	})

	t.Run("large_step_clamps", func(t *testing.T) {
		if got := ApplyFriction(100, decay, eps, 1); got != 0 {
			t.Fatalf("got %v, want 0", got)
		}
	})
}
