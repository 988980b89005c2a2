package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/skyhop/assets"
	"github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/fonts"
	"github.com/automoto/skyhop/scenes"
	"github.com/automoto/skyhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(lc scenes.LevelConfig) (*Game, error) {
	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.SmallFontSize); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, lc)
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelIndex := flag.Int("level", 0, "index of the level to start on")
	tuningPath := flag.String("tuning", "", "YAML file overriding movement tuning")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	debug := flag.Bool("debug", false, "draw probes and log per-frame velocities")
	flag.Parse()

	if *debug {
		config.Debug.DrawProbes = true
		config.Debug.Verbose = true
	}

	lc := scenes.LevelConfig{
		Levels:     assets.NewLevelLoader().MustLoadLevels(),
		LevelIndex: *levelIndex,
		TuningPath: *tuningPath,
	}

	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		if *watch {
			w, err := config.WatchTuning(*tuningPath)
			if err != nil {
				log.Printf("Warning: Could not watch tuning file: %v", err)
			} else {
				defer w.Close()
				lc.Watcher = w
			}
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	game, err := NewGame(lc)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
