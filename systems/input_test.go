package systems

import (
	"testing"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
)

func TestSampleInput(t *testing.T) {
	cases := []struct {
		name     string
		current  []cfg.ActionID
		previous []cfg.ActionID
		analog   float64
		want     components.InputSample
	}{
		{"nothing", nil, nil, 0, components.InputSample{}},
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, nil, 0, components.InputSample{Axis: -1}},
		{"both_cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, nil, 0, components.InputSample{}},
		{"analog_overrides", []cfg.ActionID{cfg.ActionMoveLeft}, nil, 0.4, components.InputSample{Axis: 0.4}},
		{"jump_edge", []cfg.ActionID{cfg.ActionJump}, nil, 0, components.InputSample{JumpPressed: true}},
		{"jump_held", []cfg.ActionID{cfg.ActionJump}, []cfg.ActionID{cfg.ActionJump}, 0, components.InputSample{}},
		{"dash_edge_run_held",
			[]cfg.ActionID{cfg.ActionDash, cfg.ActionRun, cfg.ActionMoveRight},
			[]cfg.ActionID{cfg.ActionRun},
			0,
			components.InputSample{Axis: 1, DashPressed: true, RunHeld: true},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var input components.InputData
			for _, a := range c.current {
				input.Current[a] = true
			}
			for _, a := range c.previous {
				input.Previous[a] = true
			}
			input.Axis = c.analog
			if got := SampleInput(&input); got != c.want {
				t.Fatalf("SampleInput = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestGetActionEdges(t *testing.T) {
	cases := []struct {
		name       string
		curr, prev bool
		want       components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"pressed", true, false, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"released", false, true, components.ActionState{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var input components.InputData
			input.Current[cfg.ActionJump] = c.curr
			input.Previous[cfg.ActionJump] = c.prev
			if got := GetAction(&input, cfg.ActionJump); got != c.want {
				t.Fatalf("GetAction = %+v, want %+v", got, c.want)
			}
		})
	}
}
