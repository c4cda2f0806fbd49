package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ArriVeder4i/mod-lab04-life/src/life"
)

//default runner options
const (
	DefStabilizationWindow = 5
	DefIntervalMs          = 100
	DefMaxSteps            = 1000
)

//Settings mirrors the JSON settings file consumed by the application
//missing fields keep their defaults
type Settings struct {
	Width               int     `json:"width"`
	Height              int     `json:"height"`
	CellSize            int     `json:"cellSize"`
	LiveDensity         float64 `json:"liveDensity"`
	StabilizationWindow int     `json:"stabilizationWindow"`
	IntervalMs          int     `json:"intervalMs"`
	MaxSteps            int     `json:"maxSteps"`
}

//Default returns the standard settings
func Default() Settings {
	return Settings{
		Width:               life.DefWidth,
		Height:              life.DefHeight,
		CellSize:            life.DefCellSize,
		LiveDensity:         life.DefLiveDensity,
		StabilizationWindow: DefStabilizationWindow,
		IntervalMs:          DefIntervalMs,
		MaxSteps:            DefMaxSteps,
	}
}

//Load reads settings from the JSON file at path on top of the defaults
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("settings: parse %v: %w", path, err)
	}
	return s, nil
}

//Interval returns the simulation step interval
func (s Settings) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

//Options converts the settings to board options
func (s Settings) Options() *life.Options {
	return &life.Options{
		Width:       s.Width,
		Height:      s.Height,
		CellSize:    s.CellSize,
		LiveDensity: s.LiveDensity,
	}
}
