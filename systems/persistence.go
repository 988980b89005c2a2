package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/quasilyte/gdata"
)

const (
	progressKey  = "progress"
	bestTimesKey = "best_times"
)

// SavedGameProgress is the last checkpoint reached, stored on disk.
type SavedGameProgress struct {
	LevelIndex   int     `json:"levelIndex"`
	CheckpointID float64 `json:"checkpointId"`
	SpawnX       float64 `json:"spawnX"`
	SpawnY       float64 `json:"spawnY"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the gdata store. The game runs without saves when
// this fails.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

func LoadGameProgress() (*SavedGameProgress, error) {
	var progress SavedGameProgress
	ok, err := loadJSON(progressKey, &progress)
	if err != nil || !ok {
		return nil, err
	}
	return &progress, nil
}

func SaveGameProgress(levelIndex int, respawn *components.RespawnData) error {
	if respawn == nil {
		return nil
	}
	return saveJSON(progressKey, &SavedGameProgress{
		LevelIndex:   levelIndex,
		CheckpointID: respawn.CheckpointID,
		SpawnX:       respawn.X,
		SpawnY:       respawn.Y,
	})
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	if gdataManager == nil {
		return false
	}
	data, err := gdataManager.LoadItem(progressKey)
	return err == nil && len(data) > 0
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if gdataManager == nil {
		return nil
	}
	if err := gdataManager.SaveItem(progressKey, nil); err != nil {
		log.Printf("Warning: Could not clear game progress: %v", err)
		return err
	}
	return nil
}

// LoadBestTimes returns the best finish time per level name.
func LoadBestTimes() map[string]float64 {
	times := map[string]float64{}
	if _, err := loadJSON(bestTimesKey, &times); err != nil {
		return map[string]float64{}
	}
	return times
}

// SaveBestTime records seconds for level if it beats the stored time.
func SaveBestTime(level string, seconds float64) {
	if gdataManager == nil || level == "" {
		return
	}
	times := LoadBestTimes()
	if prev, ok := times[level]; ok && prev <= seconds {
		return
	}
	times[level] = seconds
	_ = saveJSON(bestTimesKey, times)
}

func loadJSON(key string, v any) (bool, error) {
	if gdataManager == nil {
		return false, nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveJSON(key string, v any) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}
