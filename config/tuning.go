package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk shape of a tuning file. Every field is optional;
// missing fields keep their current value.
type Tuning struct {
	Player  PlayerTuning  `yaml:"player"`
	Physics PhysicsTuning `yaml:"physics"`
	Enemy   EnemyTuning   `yaml:"enemy"`
}

type PlayerTuning struct {
	WalkSpeed        *float64 `yaml:"walk_speed"`
	RunSpeed         *float64 `yaml:"run_speed"`
	AirSpeed         *float64 `yaml:"air_speed"`
	JumpImpulse      *float64 `yaml:"jump_impulse"`
	AirJumps         *int     `yaml:"air_jumps"`
	JumpBufferWindow *float64 `yaml:"jump_buffer_window"`
	DashSpeed        *float64 `yaml:"dash_speed"`
	DashDuration     *float64 `yaml:"dash_duration"`
	GroundFriction   *float64 `yaml:"ground_friction"`
	FrictionEpsilon  *float64 `yaml:"friction_epsilon"`
	GravityScale     *float64 `yaml:"gravity_scale"`
	RespawnDelay     *float64 `yaml:"respawn_delay"`
}

type PhysicsTuning struct {
	Gravity      *float64 `yaml:"gravity"`
	MaxFallSpeed *float64 `yaml:"max_fall_speed"`
}

type EnemyTuning struct {
	Speed        *float64 `yaml:"speed"`
	StopDistance *float64 `yaml:"stop_distance"`
	SpawnDelay   *float64 `yaml:"spawn_delay"`
}

// ParseTuning decodes a YAML tuning document.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	return &t, nil
}

// LoadTuning reads path and overlays it onto the global configuration.
// Nothing is changed when the file is invalid.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return err
	}
	return t.Apply(&Player, &Physics, &Enemy)
}

// Apply overlays the tuning onto the given configs after validating the
// merged result.
func (t *Tuning) Apply(p *PlayerConfig, ph *PhysicsConfig, e *EnemyConfig) error {
	np, nph, ne := *p, *ph, *e

	setFloat(&np.WalkSpeed, t.Player.WalkSpeed)
	setFloat(&np.RunSpeed, t.Player.RunSpeed)
	setFloat(&np.AirSpeed, t.Player.AirSpeed)
	setFloat(&np.JumpImpulse, t.Player.JumpImpulse)
	if t.Player.AirJumps != nil {
		np.AirJumps = *t.Player.AirJumps
	}
	setFloat(&np.JumpBufferWindow, t.Player.JumpBufferWindow)
	setFloat(&np.DashSpeed, t.Player.DashSpeed)
	setFloat(&np.DashDuration, t.Player.DashDuration)
	setFloat(&np.GroundFriction, t.Player.GroundFriction)
	setFloat(&np.FrictionEpsilon, t.Player.FrictionEpsilon)
	setFloat(&np.GravityScale, t.Player.GravityScale)
	setFloat(&np.RespawnDelay, t.Player.RespawnDelay)

	setFloat(&nph.Gravity, t.Physics.Gravity)
	setFloat(&nph.MaxFallSpeed, t.Physics.MaxFallSpeed)

	setFloat(&ne.Speed, t.Enemy.Speed)
	setFloat(&ne.StopDistance, t.Enemy.StopDistance)
	setFloat(&ne.SpawnDelay, t.Enemy.SpawnDelay)

	if err := errors.Join(ValidatePlayer(np), validatePhysics(nph), validateEnemy(ne)); err != nil {
		return err
	}

	*p, *ph, *e = np, nph, ne
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// ValidatePlayer reports every out-of-range movement value.
func ValidatePlayer(p PlayerConfig) error {
	var errs []error
	positive := []struct {
		name  string
		value float64
	}{
		{"walk_speed", p.WalkSpeed},
		{"run_speed", p.RunSpeed},
		{"air_speed", p.AirSpeed},
		{"jump_impulse", p.JumpImpulse},
		{"dash_speed", p.DashSpeed},
		{"dash_duration", p.DashDuration},
	}
	for _, f := range positive {
		if f.value <= 0 {
			errs = append(errs, fmt.Errorf("player.%s must be positive, got %v", f.name, f.value))
		}
	}
	if p.JumpBufferWindow < 0 {
		errs = append(errs, fmt.Errorf("player.jump_buffer_window must not be negative, got %v", p.JumpBufferWindow))
	}
	if p.GroundFriction < 0 {
		errs = append(errs, fmt.Errorf("player.ground_friction must not be negative, got %v", p.GroundFriction))
	}
	if p.FrictionEpsilon < 0 {
		errs = append(errs, fmt.Errorf("player.friction_epsilon must not be negative, got %v", p.FrictionEpsilon))
	}
	if p.AirJumps < 0 {
		errs = append(errs, fmt.Errorf("player.air_jumps must not be negative, got %d", p.AirJumps))
	}
	if p.RespawnDelay < 0 {
		errs = append(errs, fmt.Errorf("player.respawn_delay must not be negative, got %v", p.RespawnDelay))
	}
	return errors.Join(errs...)
}

func validatePhysics(p PhysicsConfig) error {
	if p.Gravity < 0 {
		return fmt.Errorf("physics.gravity must not be negative, got %v", p.Gravity)
	}
	if p.MaxFallSpeed <= 0 {
		return fmt.Errorf("physics.max_fall_speed must be positive, got %v", p.MaxFallSpeed)
	}
	return nil
}

func validateEnemy(e EnemyConfig) error {
	var errs []error
	if e.Speed < 0 {
		errs = append(errs, fmt.Errorf("enemy.speed must not be negative, got %v", e.Speed))
	}
	if e.StopDistance < 0 {
		errs = append(errs, fmt.Errorf("enemy.stop_distance must not be negative, got %v", e.StopDistance))
	}
	if e.SpawnDelay < 0 {
		errs = append(errs, fmt.Errorf("enemy.spawn_delay must not be negative, got %v", e.SpawnDelay))
	}
	return errors.Join(errs...)
}
