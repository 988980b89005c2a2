package systems

import (
	"errors"
	"testing"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestValidatePlayer(t *testing.T) {
	cases := []struct {
		name  string
		build func(e *ecs.ECS) *donburi.Entry
		want  error
	}{
		{
			name: "complete",
			build: func(e *ecs.ECS) *donburi.Entry {
				factory.CreateSpace(e, 320, 240, 16, 16)
				return factory.CreatePlayer(e, 10, 10)
			},
		},
		{
			name: "no_space",
			build: func(e *ecs.ECS) *donburi.Entry {
				return factory.CreatePlayer(e, 10, 10)
			},
			want: ErrNoSpace,
		},
		{
			name: "no_probe",
			build: func(e *ecs.ECS) *donburi.Entry {
				factory.CreateSpace(e, 320, 240, 16, 16)
				p := factory.CreatePlayer(e, 10, 10)
				components.Probe.Get(p).Object = nil
				return p
			},
			want: ErrNoGroundSensor,
		},
		{
			name: "no_body",
			build: func(e *ecs.ECS) *donburi.Entry {
				factory.CreateSpace(e, 320, 240, 16, 16)
				p := factory.CreatePlayer(e, 10, 10)
				components.Object.Get(p).Object = nil
				return p
			},
			want: ErrNoPhysicsBody,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			player := c.build(e)

			err := ValidatePlayer(e.World, player)
			if c.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("error = %v, want %v", err, c.want)
			}

			if err := EnsurePlayers(e.World); !errors.Is(err, c.want) {
				t.Fatalf("EnsurePlayers error = %v, want %v", err, c.want)
			}
			if !components.Player.Get(player).Disabled {
				t.Fatal("invalid player was not disabled")
			}
			if controllable(player) {
				t.Fatal("disabled player is still controllable")
			}
		})
	}
}
