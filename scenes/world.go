package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/skyhop/assets"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/systems"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/automoto/skyhop/tags"
	"github.com/automoto/skyhop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelConfig selects what a PlatformerScene loads.
type LevelConfig struct {
	Levels     []assets.Level
	LevelIndex int
	// TuningPath is reloaded whenever Watcher reports a change.
	TuningPath string
	Watcher    *cfg.TuningWatcher
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelConfig  LevelConfig
	pauseUI      *ui.PauseUI
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, lc LevelConfig) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelConfig: lc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.drainTuning()
	ps.ecs.Update()

	if ps.pauseUI != nil && systems.GetOrCreatePause(ps.ecs).IsPaused {
		ps.pauseUI.UI.Update()
	}

	if next, ok := ps.finishedLevel(); ok {
		lc := ps.levelConfig
		lc.LevelIndex = next
		ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, lc))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if ps.pauseUI != nil && systems.GetOrCreatePause(ps.ecs).IsPaused {
		ps.pauseUI.UI.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayerInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)

	// Game systems wrapped with pause checks
	for _, system := range systems.Simulation() {
		ecs.AddSystem(systems.WithGameplayChecks(system))
	}

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawBanner)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPauseOverlay)

	ps.ecs = ecs
	systems.RegisterHandlers(ecs.World)

	// Create the level entity and load level data FIRST.
	level, err := factory.CreateLevelAtIndex(ecs, ps.levelConfig.Levels, ps.levelConfig.LevelIndex)
	if err != nil {
		panic(err)
	}
	levelData := components.Level.Get(level)
	factory.PopulateLevel(ecs, levelData.CurrentLevel)

	if err := systems.EnsurePlayers(ecs.World); err != nil {
		log.Printf("Level %q has invalid players: %v", levelData.CurrentLevel.Name, err)
	}

	timer := systems.GetOrCreateTimer(ecs.World)
	timer.Best = systems.LoadBestTimes()[levelData.CurrentLevel.Name]

	if systems.HasSaveGame() {
		if progress, err := systems.LoadGameProgress(); err == nil {
			systems.RestoreProgress(ecs.World, progress)
		}
	}

	ps.pauseUI, err = ui.NewPauseUI(
		func() { systems.SetPaused(ps.ecs, false) },
		func() {
			systems.RestartLevel(ps.ecs.World)
			systems.SetPaused(ps.ecs, false)
		},
		func() { os.Exit(0) },
	)
	if err != nil {
		log.Printf("Warning: pause menu unavailable: %v", err)
		ps.pauseUI = nil
	} else {
		best := ""
		if timer.Best > 0 {
			best = systems.FormatTime(timer.Best)
		}
		ps.pauseUI.SetLevelInfo(levelData.CurrentLevel.Name, best)
	}

	log.Printf("Level %q loaded", levelData.CurrentLevel.Name)
}

// drainTuning applies tuning file changes reported since the last frame.
func (ps *PlatformerScene) drainTuning() {
	w := ps.levelConfig.Watcher
	if w == nil {
		return
	}
	for {
		select {
		case path := <-w.Events:
			if err := cfg.LoadTuning(path); err != nil {
				log.Printf("Tuning reload failed: %v", err)
				continue
			}
			ps.applyPhysicsTuning()
			log.Printf("Tuning reloaded from %s", path)
		case err := <-w.Errors:
			log.Printf("Tuning watcher: %v", err)
		default:
			return
		}
	}
}

// applyPhysicsTuning copies reloaded physics values into live players.
func (ps *PlatformerScene) applyPhysicsTuning() {
	tags.Player.Each(ps.ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		physics.Gravity = cfg.Physics.Gravity
		physics.MaxFallSpeed = cfg.Physics.MaxFallSpeed
		if dash := components.AirDash.Get(e); dash.Active {
			dash.SavedGravityScale = cfg.Player.GravityScale
		} else {
			physics.GravityScale = cfg.Player.GravityScale
		}
	})
}

// finishedLevel reports the next level index once the finish line has been
// crossed and its banner has faded.
func (ps *PlatformerScene) finishedLevel() (int, bool) {
	finished := false
	components.FinishLine.Each(ps.ecs.World, func(e *donburi.Entry) {
		if components.FinishLine.Get(e).Activated {
			finished = true
		}
	})
	if !finished {
		return 0, false
	}
	if banner, ok := components.Banner.First(ps.ecs.World); ok && components.Banner.Get(banner).Text != "" {
		return 0, false
	}
	next := ps.levelConfig.LevelIndex + 1
	if next >= len(ps.levelConfig.Levels) {
		return 0, false
	}
	_ = systems.ClearGameProgress()
	return next, true
}
