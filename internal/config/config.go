// Package config loads the solver's tuning knobs from the environment.
//
// Every knob has a tuned default; values come from a .env file in the
// working directory (when present) and the process environment, with the
// environment winning. Malformed values fall back to the default rather
// than failing startup, so a typo in a tuning variable never takes the
// server down.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/HenningRK/Smart-Systems-2025/internal/imaging"
	"github.com/HenningRK/Smart-Systems-2025/internal/maze"
)

// Environment variable names. All tuning uses the MAZE_ prefix.
const (
	EnvWallThreshold = "MAZE_WALL_THRESHOLD"
	EnvFreeThreshold = "MAZE_FREE_THRESHOLD"
	EnvFramePadding  = "MAZE_FRAME_PADDING"
	EnvCellSize      = "MAZE_CELL_SIZE"
	EnvFreeRatio     = "MAZE_FREE_RATIO"
	EnvMaxGridDim    = "MAZE_MAX_GRID_DIM"
	EnvSmoothRadius  = "MAZE_SMOOTH_RADIUS"
	EnvMaxImageDim   = "MAZE_MAX_IMAGE_DIM"
	EnvStrokeColor   = "MAZE_STROKE_COLOR"
	EnvStrokeWidth   = "MAZE_STROKE_WIDTH"
)

// Config holds every tunable of the solving pipeline and its rendering.
type Config struct {
	// Pipeline carries the grid and threshold tuning.
	Pipeline maze.Config

	// MaxImageDim is the longest photo side allowed before solving;
	// larger photos are downscaled proportionally first. Zero or
	// negative disables the downscale.
	MaxImageDim int

	// StrokeColor is the overlay stroke as a hex color. Empty selects
	// the default red.
	StrokeColor string

	// StrokeWidth is the overlay stroke width in pixels. Zero selects
	// the width rule max(3, imageWidth/200).
	StrokeWidth int
}

// Default returns the tuned defaults without consulting the environment.
func Default() Config {
	return Config{
		Pipeline:    maze.DefaultConfig(),
		MaxImageDim: 1024,
	}
}

// Load builds a Config from the defaults, a .env file if one exists, and
// the process environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Default()
	cfg.Pipeline.WallThreshold = envInt(EnvWallThreshold, cfg.Pipeline.WallThreshold)
	cfg.Pipeline.FreeThreshold = envInt(EnvFreeThreshold, cfg.Pipeline.FreeThreshold)
	cfg.Pipeline.FramePadding = envInt(EnvFramePadding, cfg.Pipeline.FramePadding)
	cfg.Pipeline.CellSize = envInt(EnvCellSize, cfg.Pipeline.CellSize)
	cfg.Pipeline.FreeRatio = envFloat(EnvFreeRatio, cfg.Pipeline.FreeRatio)
	cfg.Pipeline.MaxGridDim = envInt(EnvMaxGridDim, cfg.Pipeline.MaxGridDim)
	cfg.Pipeline.SmoothRadius = envFloat(EnvSmoothRadius, cfg.Pipeline.SmoothRadius)
	cfg.MaxImageDim = envInt(EnvMaxImageDim, cfg.MaxImageDim)
	cfg.StrokeColor = envString(EnvStrokeColor, cfg.StrokeColor)
	cfg.StrokeWidth = envInt(EnvStrokeWidth, cfg.StrokeWidth)
	return cfg
}

// Overlay returns the overlay options derived from the stroke settings.
func (c Config) Overlay() imaging.OverlayOptions {
	return imaging.OverlayOptions{
		StrokeColor: c.StrokeColor,
		StrokeWidth: c.StrokeWidth,
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
