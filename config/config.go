package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/update layer the game uses.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per second, durations in seconds.
type PlayerConfig struct {
	// Movement
	WalkSpeed        float64
	RunSpeed         float64
	AirSpeed         float64
	JumpImpulse      float64
	AirJumps         int // extra jumps per airborne period; 0 = single jump
	JumpBufferWindow float64

	// Air dash
	DashSpeed    float64
	DashDuration float64

	// Friction
	GroundFriction  float64 // exponential decay rate
	FrictionEpsilon float64 // speeds at or below this are left alone

	// Physics
	GravityScale float64

	// Death
	RespawnDelay float64 // 0 = relocate on the same frame

	// Dimensions
	CollisionWidth  int
	CollisionHeight int
}

// GroundConfig describes the feet probe used for grounded checks.
type GroundConfig struct {
	OffsetX float64 // relative to the bottom-center of the collision box
	OffsetY float64
	Radius  float64
	Mask    []string // resolv tags that count as ground
}

// EnemyConfig contains chaser configuration
type EnemyConfig struct {
	Speed        float64
	StopDistance float64
	SpawnDelay   float64
	Size         float64
	Lethal       bool
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	MaxRiseSpeed float64
	CellSize     int
}

// TimerConfig contains HUD run timer settings
type TimerConfig struct {
	AutoStart bool
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin         float64
	TextColor      color.RGBA
	PanelColor     color.RGBA
	BannerDuration float64
	FontSize       float64
	SmallFontSize  float64
}

// RenderConfig holds the flat colors used to draw level geometry.
type RenderConfig struct {
	Background  color.RGBA
	Solid       color.RGBA
	Platform    color.RGBA
	Player      color.RGBA
	PlayerDash  color.RGBA
	Enemy       color.RGBA
	Trap        color.RGBA
	Checkpoint  color.RGBA
	CheckpointA color.RGBA
	Teleporter  color.RGBA
	FinishLine  color.RGBA
	Probe       color.RGBA
}

// PauseConfig contains pause panel configuration values
type PauseConfig struct {
	OverlayColor color.NRGBA
	PanelColor   color.NRGBA
	ButtonColor  color.NRGBA
	TextColor    color.NRGBA
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	LookAheadDistanceX      float64
	LookAheadSpeedThreshold float64
	LookAheadSmoothing      float64
	FollowSmoothing         float64
	DeathShakeIntensity     float64
	DeathShakeDuration      float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Verbose    bool // per-frame velocity logging
	DrawProbes bool // draw ground probe circles
	LogStates  bool // log every state change
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
	// AppName is the gdata storage namespace.
	AppName string
}

// TickDelta is the fixed simulation step in seconds.
func (c *Config) TickDelta() float64 {
	return 1.0 / float64(c.TPS)
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Ground GroundConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Timer TimerConfig
var HUD HUDConfig
var Render RenderConfig
var Pause PauseConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:   640,
		Height:  360,
		TPS:     60,
		Title:   "skyhop",
		AppName: "skyhop",
	}

	Physics = PhysicsConfig{
		Gravity:      1200,
		MaxFallSpeed: 600,
		MaxRiseSpeed: -900,
		CellSize:     16,
	}

	Player = DefaultPlayer()

	Ground = GroundConfig{
		OffsetX: 0,
		OffsetY: 0,
		Radius:  5,
		Mask:    []string{"solid", "platform"},
	}

	Enemy = EnemyConfig{
		Speed:        64,
		StopDistance: 32,
		SpawnDelay:   1,
		Size:         14,
		Lethal:       true,
	}

	Timer = TimerConfig{
		AutoStart: true,
	}

	HUD = HUDConfig{
		Margin:         8,
		TextColor:      White,
		PanelColor:     BlackOverlay,
		BannerDuration: 1.5,
		FontSize:       16,
		SmallFontSize:  10,
	}

	Render = RenderConfig{
		Background:  color.RGBA{R: 24, G: 26, B: 38, A: 255},
		Solid:       color.RGBA{R: 70, G: 80, B: 110, A: 255},
		Platform:    color.RGBA{R: 120, G: 100, B: 70, A: 255},
		Player:      LightBlue,
		PlayerDash:  White,
		Enemy:       Purple,
		Trap:        Red,
		Checkpoint:  Orange,
		CheckpointA: LightGreen,
		Teleporter:  color.RGBA{R: 0, G: 200, B: 200, A: 255},
		FinishLine:  Yellow,
		Probe:       color.RGBA{R: 255, G: 255, B: 0, A: 160},
	}

	Pause = PauseConfig{
		OverlayColor: color.NRGBA{A: 120},
		PanelColor:   color.NRGBA{A: 200},
		ButtonColor:  color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255},
		TextColor:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}

	Camera = CameraConfig{
		LookAheadDistanceX:      48,
		LookAheadSpeedThreshold: 20,
		LookAheadSmoothing:      0.05,
		FollowSmoothing:         0.15,
		DeathShakeIntensity:     4,
		DeathShakeDuration:      0.25,
	}

	Debug = DebugConfig{
		LogStates: true,
	}
}

// DefaultPlayer returns the stock movement tuning.
func DefaultPlayer() PlayerConfig {
	return PlayerConfig{
		WalkSpeed:        160,
		RunSpeed:         256,
		AirSpeed:         96,
		JumpImpulse:      420,
		AirJumps:         0,
		JumpBufferWindow: 0.2,

		DashSpeed:    480,
		DashDuration: 0.2,

		GroundFriction:  5,
		FrictionEpsilon: 0.01,

		GravityScale: 1,

		RespawnDelay: 0,

		CollisionWidth:  14,
		CollisionHeight: 24,
	}
}
