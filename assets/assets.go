package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Rect is an axis-aligned region in level pixels.
type Rect struct {
	X, Y, Width, Height float64
}

type PlayerSpawn struct {
	X, Y float64
}

type CheckpointSpawn struct {
	Rect
	CheckpointID float64
}

type TeleporterSpawn struct {
	Rect
	Name         string
	DestX, DestY float64
}

type EnemySpawn struct {
	X, Y float64
	// Zero values fall back to config.Enemy.
	Delay        float64
	Speed        float64
	StopDistance float64
}

type FloatingPlatformSpawn struct {
	Rect
	Travel   float64 // pixels moved up and back
	Duration float64 // seconds per leg
}

type Level struct {
	Name   string
	Width  int
	Height int

	SolidTiles        []Rect
	Platforms         []Rect
	FloatingPlatforms []FloatingPlatformSpawn
	PlayerSpawns      []PlayerSpawn
	DeadZones         []Rect
	Traps             []Rect
	Checkpoints       []CheckpointSpawn
	Teleporters       []TeleporterSpawn
	EnemySpawns       []EnemySpawn
	FinishLines       []Rect
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads levels embedded in the binary.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: "levels"}
}

// NewLevelLoaderFS reads .tmx files from dir inside fsys.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	levels, err := l.LoadLevels()
	if err != nil {
		panic(err)
	}
	return levels
}

// LoadLevels loads every .tmx file in the loader's directory, sorted by name.
func (l *LevelLoader) LoadLevels() ([]Level, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		level, err := l.LoadLevel(path.Join(l.dir, name))
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("no level files found in %s", l.dir)
	}
	return levels, nil
}

func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	level := Level{
		Name:   levelMap.Properties.GetString("name"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	if level.Name == "" {
		level.Name = path.Base(levelPath)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				level.SolidTiles = append(level.SolidTiles, objectRect(o))
			}
		case "Platforms":
			for _, o := range og.Objects {
				if objectClass(o) == "floating" {
					travel := o.Properties.GetFloat("travel")
					if travel == 0 {
						travel = 128
					}
					duration := o.Properties.GetFloat("duration")
					if duration == 0 {
						duration = 2
					}
					level.FloatingPlatforms = append(level.FloatingPlatforms, FloatingPlatformSpawn{
						Rect:     objectRect(o),
						Travel:   travel,
						Duration: duration,
					})
					continue
				}
				level.Platforms = append(level.Platforms, objectRect(o))
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: o.X, Y: o.Y})
			}
		case "DeadZones":
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, objectRect(o))
			}
		case "Traps":
			for _, o := range og.Objects {
				level.Traps = append(level.Traps, objectRect(o))
			}
		case "Checkpoint":
			for _, o := range og.Objects {
				level.Checkpoints = append(level.Checkpoints, CheckpointSpawn{
					Rect:         objectRect(o),
					CheckpointID: o.Properties.GetFloat("checkpointID"),
				})
			}
		case "Teleporters":
			for _, o := range og.Objects {
				level.Teleporters = append(level.Teleporters, TeleporterSpawn{
					Rect:  objectRect(o),
					Name:  o.Name,
					DestX: o.Properties.GetFloat("destX"),
					DestY: o.Properties.GetFloat("destY"),
				})
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:            o.X,
					Y:            o.Y,
					Delay:        o.Properties.GetFloat("spawnDelay"),
					Speed:        o.Properties.GetFloat("speed"),
					StopDistance: o.Properties.GetFloat("stopDistance"),
				})
			}
		case "FinishLine":
			for _, o := range og.Objects {
				level.FinishLines = append(level.FinishLines, objectRect(o))
			}
		}
	}

	// Solid tiles from the wg-tiles layer, merged into horizontal runs
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "wg-tiles" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			runStart := -1
			for x := 0; x <= levelMap.Width; x++ {
				solid := false
				if x < levelMap.Width {
					tile := layer.Tiles[y*levelMap.Width+x]
					solid = tile != nil && !tile.IsNil()
				}
				if solid && runStart < 0 {
					runStart = x
				}
				if !solid && runStart >= 0 {
					level.SolidTiles = append(level.SolidTiles, Rect{
						X:      float64(runStart) * tileW,
						Y:      float64(y) * tileH,
						Width:  float64(x-runStart) * tileW,
						Height: tileH,
					})
					runStart = -1
				}
			}
		}
		break
	}

	if len(level.PlayerSpawns) == 0 {
		return Level{}, fmt.Errorf("level %s: no player spawn points defined", levelPath)
	}

	return level, nil
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

func objectClass(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}
