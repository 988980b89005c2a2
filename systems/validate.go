package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
)

var (
	ErrNoPhysicsBody  = errors.New("no physics body")
	ErrNoGroundSensor = errors.New("no ground sensor")
	ErrNoSpace        = errors.New("no collision space")
)

// ValidatePlayer reports the first collaborator a player entity is missing.
func ValidatePlayer(w donburi.World, e *donburi.Entry) error {
	if !e.HasComponent(components.Physics) || !e.HasComponent(components.Object) ||
		components.Object.Get(e).Object == nil {
		return fmt.Errorf("player %v: %w", e.Entity(), ErrNoPhysicsBody)
	}
	if !e.HasComponent(components.GroundSensor) || !e.HasComponent(components.Probe) ||
		components.Probe.Get(e).Object == nil {
		return fmt.Errorf("player %v: %w", e.Entity(), ErrNoGroundSensor)
	}
	if _, ok := components.Space.First(w); !ok || components.Object.Get(e).Space == nil {
		return fmt.Errorf("player %v: %w", e.Entity(), ErrNoSpace)
	}
	return nil
}

// EnsurePlayers disables every player that fails validation and returns the
// joined errors.
func EnsurePlayers(w donburi.World) error {
	var errs []error
	tags.Player.Each(w, func(e *donburi.Entry) {
		if err := ValidatePlayer(w, e); err != nil {
			log.Printf("Disabling player: %v", err)
			if e.HasComponent(components.Player) {
				components.Player.Get(e).Disabled = true
			}
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}
