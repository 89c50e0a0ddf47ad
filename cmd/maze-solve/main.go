// maze-solve is a one-shot command line interface to the maze solving
// pipeline: give it a photo of a drawn maze and it prints the solution
// as run-length moves, optionally writing an overlay image and a moves
// JSON file.
//
// Tuning is read from the environment and a .env file first; command
// line flags override it.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/HenningRK/Smart-Systems-2025/internal/config"
	"github.com/HenningRK/Smart-Systems-2025/internal/imaging"
	"github.com/HenningRK/Smart-Systems-2025/internal/maze"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func run() int {
	cfg := config.Load()

	var inputPath, overlayPath, movesPath string
	var showInstructions, showVersion bool
	flag.StringVar(&inputPath, "input", "",
		"Path to the maze photo (png, jpg, gif, bmp, or webp).")
	flag.StringVar(&overlayPath, "overlay", "",
		"Optional path for a PNG of the photo with the solved path drawn on it.")
	flag.StringVar(&movesPath, "moves", "",
		"Optional path for the move list as JSON. Defaults to printing moves to stdout.")
	flag.BoolVar(&showInstructions, "instructions", false,
		"Print turn-by-turn drive instructions.")
	flag.IntVar(&cfg.Pipeline.CellSize, "cell-size", cfg.Pipeline.CellSize,
		"Grid cell edge length in pixels.")
	flag.IntVar(&cfg.Pipeline.WallThreshold, "wall-threshold", cfg.Pipeline.WallThreshold,
		"Luminance below which a pixel counts as drawn ink.")
	flag.IntVar(&cfg.Pipeline.FreeThreshold, "free-threshold", cfg.Pipeline.FreeThreshold,
		"Luminance above which a pixel counts as open corridor.")
	flag.Float64Var(&cfg.Pipeline.SmoothRadius, "smooth", cfg.Pipeline.SmoothRadius,
		"Gaussian blur radius applied before rasterizing; 0 disables.")
	flag.IntVar(&cfg.MaxImageDim, "max-dim", cfg.MaxImageDim,
		"Downscale photos whose longer side exceeds this; 0 disables.")
	flag.StringVar(&cfg.StrokeColor, "stroke-color", cfg.StrokeColor,
		"Overlay stroke color as hex, e.g. #FF0000.")
	flag.IntVar(&cfg.StrokeWidth, "stroke-width", cfg.StrokeWidth,
		"Overlay stroke width in pixels; 0 picks max(3, width/200).")
	flag.BoolVar(&showVersion, "version", false, "Print version information.")
	flag.Parse()

	if showVersion {
		fmt.Printf("maze-solve %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
		return 0
	}
	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "Missing -input. Run with -help for usage.")
		return 1
	}

	cache := imaging.NewImageCache()
	photo, err := cache.Load(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", inputPath, err)
		return 1
	}
	working := imaging.FitDown(photo, cfg.MaxImageDim)

	sol, err := maze.SolveImage(working, cfg.Pipeline)
	switch {
	case errors.Is(err, maze.ErrNoOpenings):
		fmt.Fprintln(os.Stderr, "No maze entrance and exit found. Check that the maze border has two openings and the photo is well lit.")
		return 1
	case errors.Is(err, maze.ErrNoPath):
		fmt.Fprintln(os.Stderr, "The maze has no path between its entrance and exit.")
		return 1
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error solving maze: %v\n", err)
		return 1
	}

	if sol.FrameFallback {
		fmt.Fprintln(os.Stderr, "Warning: no dark frame found; solving over the whole photo.")
	}

	fmt.Printf("Solved: %dx%d grid, entrance %v, exit %v, %d steps in %d moves.\n",
		sol.GridCols, sol.GridRows, sol.Start, sol.Goal, sol.TotalSteps, len(sol.Moves))

	movesJSON, err := json.MarshalIndent(sol.Moves, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding moves: %v\n", err)
		return 1
	}
	if movesPath != "" {
		if err := os.WriteFile(movesPath, append(movesJSON, '\n'), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", movesPath, err)
			return 1
		}
		fmt.Printf("Moves written to %s\n", movesPath)
	} else {
		fmt.Println(string(movesJSON))
	}

	if showInstructions {
		for _, line := range sol.Instructions {
			fmt.Println(line)
		}
	}

	if overlayPath != "" {
		opts := cfg.Overlay()
		if dir, ok := sol.EntryDirection(); ok {
			opts.EntryArrow = arrowDir(dir)
		}
		if dir, ok := sol.ExitDirection(); ok {
			opts.ExitArrow = arrowDir(dir)
		}
		img, err := imaging.PathOverlay(working, sol.PixelPath(), opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering overlay: %v\n", err)
			return 1
		}
		if err := imaging.SaveImage(img, overlayPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", overlayPath, err)
			return 1
		}
		fmt.Printf("Overlay written to %s\n", overlayPath)
	}

	return 0
}

func arrowDir(d maze.Direction) imaging.ArrowDir {
	switch d {
	case maze.North:
		return imaging.ArrowUp
	case maze.South:
		return imaging.ArrowDown
	case maze.West:
		return imaging.ArrowLeft
	default:
		return imaging.ArrowRight
	}
}

func main() {
	os.Exit(run())
}
