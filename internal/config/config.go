// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"go-space4x/pkg/hexmap"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	WindowTitle  = "Space4X"
	MaxDeltaTime = 0.06

	GridDimX = 16
	GridDimY = 16

	HexTileWidth     = 64.0
	HexTileHeight    = 74.0
	HexGridMarginX   = 2.0
	HexGridMarginY   = 16.0
	HexCorrectionX   = 1.0
	HexCorrectionY   = 2.0
	HexGridOriginX   = 40.0
	HexGridOriginY   = 48.0
	ScrollTiles      = 5 // tiles moved per scroll key press
	ShipStartX       = 7
	ShipStartY       = 5
	ShipSpeed        = 4.0 // steps per second
	ShipRadius       = 18.0
	StarToHexRatio   = 0.1
	StarRadius       = 9.0
	StarMaxResources = 500.0
	HarvestRate      = 25.0 // units per second
	CursorRadius     = 6.0
	StrokeWidth      = 2.0

	DefaultAlgorithm = "astar"
	DefaultLogLevel  = "info"
)

var (
	BackgroundColor  = color.RGBA{5, 5, 15, 255}
	TileColor        = color.RGBA{40, 60, 110, 200}
	TileStrokeColor  = color.RGBA{90, 120, 190, 255}
	HighlightColor   = color.RGBA{220, 180, 60, 220}
	StarColor        = color.RGBA{255, 240, 170, 255}
	ShipColor        = color.RGBA{120, 230, 255, 255}
	CursorColor      = color.RGBA{255, 255, 255, 230}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	DepletedStarTint = color.RGBA{120, 120, 120, 255}
)

// Config is the runtime configuration. Zero values are replaced by the
// defaults above when loaded.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Grid        GridConfig        `yaml:"grid"`
	Layout      LayoutConfig      `yaml:"layout"`
	Ship        ShipConfig        `yaml:"ship"`
	Stars       StarConfig        `yaml:"stars"`
	Pathfinding PathfindingConfig `yaml:"pathfinding"`
	Log         LogConfig         `yaml:"log"`
}

type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type GridConfig struct {
	DimX int `yaml:"dim_x"`
	DimY int `yaml:"dim_y"`
}

type LayoutConfig struct {
	TileWidth   float64 `yaml:"tile_width"`
	TileHeight  float64 `yaml:"tile_height"`
	MarginX     float64 `yaml:"margin_x"`
	MarginY     float64 `yaml:"margin_y"`
	CorrectionX float64 `yaml:"correction_x"`
	CorrectionY float64 `yaml:"correction_y"`
	OriginX     float64 `yaml:"origin_x"`
	OriginY     float64 `yaml:"origin_y"`
}

type ShipConfig struct {
	StartX int     `yaml:"start_x"`
	StartY int     `yaml:"start_y"`
	Speed  float64 `yaml:"speed"` // steps per second
	Cargo  float64 `yaml:"cargo"` // 0 = unlimited
}

type StarConfig struct {
	Ratio        float64 `yaml:"ratio"`
	Seed         int64   `yaml:"seed"` // 0 = random
	MaxResources float64 `yaml:"max_resources"`
	HarvestRate  float64 `yaml:"harvest_rate"`
}

type PathfindingConfig struct {
	Algorithm string `yaml:"algorithm"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML configuration file. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = ScreenWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = ScreenHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = WindowTitle
	}
	if c.Grid.DimX == 0 {
		c.Grid.DimX = GridDimX
	}
	if c.Grid.DimY == 0 {
		c.Grid.DimY = GridDimY
	}
	if c.Layout == (LayoutConfig{}) {
		c.Layout = LayoutConfig{
			TileWidth:   HexTileWidth,
			TileHeight:  HexTileHeight,
			MarginX:     HexGridMarginX,
			MarginY:     HexGridMarginY,
			CorrectionX: HexCorrectionX,
			CorrectionY: HexCorrectionY,
			OriginX:     HexGridOriginX,
			OriginY:     HexGridOriginY,
		}
	}
	if c.Ship == (ShipConfig{}) {
		c.Ship.StartX, c.Ship.StartY = ShipStartX, ShipStartY
	}
	if c.Ship.Speed == 0 {
		c.Ship.Speed = ShipSpeed
	}
	if c.Stars.Ratio == 0 {
		c.Stars.Ratio = StarToHexRatio
	}
	if c.Stars.MaxResources == 0 {
		c.Stars.MaxResources = StarMaxResources
	}
	if c.Stars.HarvestRate == 0 {
		c.Stars.HarvestRate = HarvestRate
	}
	if c.Pathfinding.Algorithm == "" {
		c.Pathfinding.Algorithm = DefaultAlgorithm
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate rejects configurations the game cannot start with.
func (c *Config) Validate() error {
	if c.Grid.DimX <= 0 || c.Grid.DimY <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Grid.DimX, c.Grid.DimY)
	}
	if c.Ship.StartX < 0 || c.Ship.StartY < 0 || c.Ship.StartX >= c.Grid.DimX || c.Ship.StartY >= c.Grid.DimY {
		return fmt.Errorf("ship start (%d,%d) is outside the %dx%d grid",
			c.Ship.StartX, c.Ship.StartY, c.Grid.DimX, c.Grid.DimY)
	}
	if c.Ship.Speed <= 0 {
		return fmt.Errorf("ship speed must be positive, got %v", c.Ship.Speed)
	}
	if c.Stars.Ratio < 0 || c.Stars.Ratio > 1 {
		return fmt.Errorf("star ratio must be within [0,1], got %v", c.Stars.Ratio)
	}
	if c.Layout.TileWidth <= 0 || c.Layout.TileHeight <= 0 || c.Layout.TileHeight <= c.Layout.MarginY+c.Layout.CorrectionY {
		return fmt.Errorf("invalid tile layout %+v", c.Layout)
	}
	if _, err := hexmap.ParseAlgorithm(c.Pathfinding.Algorithm); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// HexLayout converts the layout section for the hexmap package.
func (c *Config) HexLayout() hexmap.Layout {
	return hexmap.Layout{
		TileWidth:   c.Layout.TileWidth,
		TileHeight:  c.Layout.TileHeight,
		MarginX:     c.Layout.MarginX,
		MarginY:     c.Layout.MarginY,
		CorrectionX: c.Layout.CorrectionX,
		CorrectionY: c.Layout.CorrectionY,
		OriginX:     c.Layout.OriginX,
		OriginY:     c.Layout.OriginY,
	}
}

// Algorithm returns the configured path finding algorithm.
func (c *Config) Algorithm() hexmap.Algorithm {
	algo, err := hexmap.ParseAlgorithm(c.Pathfinding.Algorithm)
	if err != nil {
		return hexmap.AlgorithmAStar
	}
	return algo
}

// LogLevel parses the log level name.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
