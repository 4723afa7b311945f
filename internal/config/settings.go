package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no config path is given.
const EnvConfigPath = "VOXELVIEW_CONFIG"

// Settings are the construction-time constants of a viewer build.
type Settings struct {
	Display DisplaySettings `yaml:"display"`
	World   WorldSettings   `yaml:"world"`
	Player  PlayerSettings  `yaml:"player"`
	Sky     SkySettings     `yaml:"sky"`
}

type DisplaySettings struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	FPSLimit int    `yaml:"fps_limit"`
	Texture  string `yaml:"texture"`
}

// WorldSettings describe the grid and its strata. Cells below StoneLevel are
// stone, cells below DirtLevel are dirt, the cell at DirtLevel is grass. With
// GrassToTop every cell from DirtLevel up is grass.
type WorldSettings struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Depth      int     `yaml:"depth"`
	BlockSize  float32 `yaml:"block_size"`
	StoneLevel int     `yaml:"stone_level"`
	DirtLevel  int     `yaml:"dirt_level"`
	GrassToTop bool    `yaml:"grass_to_top"`
}

type PlayerSettings struct {
	MoveStep         float32 `yaml:"move_step"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
}

type SkySettings struct {
	DayLength time.Duration `yaml:"day_length"`
	Top       string        `yaml:"top"`
	Middle    string        `yaml:"middle"`
	Bottom    string        `yaml:"bottom"`
}

// Default returns the settings of the stock 16x32x16 world.
func Default() Settings {
	return Settings{
		Display: DisplaySettings{
			Width:    900,
			Height:   600,
			Title:    "voxelview",
			FPSLimit: 120,
			Texture:  "",
		},
		World: WorldSettings{
			Width:      16,
			Height:     32,
			Depth:      16,
			BlockSize:  1.0,
			StoneLevel: 10,
			DirtLevel:  20,
		},
		Player: PlayerSettings{
			MoveStep:         0.1,
			MouseSensitivity: 0.1,
		},
		Sky: SkySettings{
			DayLength: 1200 * time.Second,
			Top:       "#87CEEB",
			Middle:    "#FF9E5E",
			Bottom:    "#0B1026",
		},
	}
}

// Load reads a YAML settings file on top of Default().
// If path == "", it falls back to $VOXELVIEW_CONFIG, and to the defaults when that is unset too.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return s, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Validate checks ranges that would otherwise surface as panics deep in the world build.
func (s Settings) Validate() error {
	var errs []error
	w := s.World
	if w.Width <= 0 || w.Height <= 0 || w.Depth <= 0 {
		errs = append(errs, fmt.Errorf("world size %dx%dx%d must be positive", w.Width, w.Height, w.Depth))
	}
	if w.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("block_size %v must be positive", w.BlockSize))
	}
	if w.StoneLevel < 0 || w.DirtLevel < w.StoneLevel {
		errs = append(errs, fmt.Errorf("strata stone_level=%d dirt_level=%d out of order", w.StoneLevel, w.DirtLevel))
	}
	if s.Player.MoveStep < 0 {
		errs = append(errs, fmt.Errorf("move_step %v must not be negative", s.Player.MoveStep))
	}
	if s.Sky.DayLength <= 0 {
		errs = append(errs, fmt.Errorf("day_length %v must be positive", s.Sky.DayLength))
	}
	if s.Display.Width <= 0 || s.Display.Height <= 0 {
		errs = append(errs, fmt.Errorf("display %dx%d must be positive", s.Display.Width, s.Display.Height))
	}
	return errors.Join(errs...)
}
