package maze

import (
	"fmt"
	"image"

	"github.com/HenningRK/Smart-Systems-2025/internal/imaging"
)

// Config carries the pipeline tuning knobs. The numeric defaults are
// empirically tuned for phone photos of pen-drawn mazes; treat them as a
// starting point, not law.
type Config struct {
	// WallThreshold is the luminance below which a pixel counts as drawn
	// ink when locating the frame.
	WallThreshold int

	// FreeThreshold is the luminance above which a pixel counts as open
	// corridor when rasterizing the grid.
	FreeThreshold int

	// FramePadding grows the located frame by this many pixels per side.
	FramePadding int

	// CellSize is the edge length in pixels of one grid cell.
	CellSize int

	// FreeRatio is the fraction of free pixels required to classify a
	// cell as corridor. The margin keeps single noisy pixels from
	// flipping a cell.
	FreeRatio float64

	// MaxGridDim caps the grid's columns and rows; larger inputs fail
	// with ErrGridTooLarge before allocating. Zero or negative disables
	// the cap.
	MaxGridDim int

	// SmoothRadius applies a Gaussian blur of this radius to the cropped
	// frame before rasterizing. Zero disables smoothing.
	SmoothRadius float64
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		WallThreshold: 200,
		FreeThreshold: 230,
		FramePadding:  2,
		CellSize:      3,
		FreeRatio:     0.7,
		MaxGridDim:    2048,
	}
}

// Bounds is a pixel rectangle in transport form.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Raster bundles the front half of the pipeline: the occupancy grid plus
// the imaging artifacts it was derived from.
type Raster struct {
	// Grid is the rasterized occupancy grid.
	Grid *Grid

	// Frame is the located maze boundary in photo coordinates.
	Frame imaging.Frame

	// Working is the cropped (and possibly smoothed) frame interior the
	// grid was sampled from.
	Working image.Image
}

// BuildRaster locates and crops the maze frame, optionally smooths it,
// and rasterizes the occupancy grid. It is the shared front half of
// SolveImage, exported for grid inspection tooling.
func BuildRaster(img image.Image, cfg Config) (*Raster, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, ErrEmptyImage
	}
	if cfg.CellSize < 1 {
		return nil, fmt.Errorf("invalid cell size %d", cfg.CellSize)
	}

	frame := imaging.FindFrame(img, cfg.WallThreshold, cfg.FramePadding)
	cropped, err := imaging.CropFrame(img, frame.Rect)
	if err != nil {
		return nil, fmt.Errorf("cropping frame: %w", err)
	}
	working := imaging.Smooth(cropped, cfg.SmoothRadius)

	w := working.Bounds().Dx()
	h := working.Bounds().Dy()
	if cfg.MaxGridDim > 0 {
		cols := (w + cfg.CellSize - 1) / cfg.CellSize
		rows := (h + cfg.CellSize - 1) / cfg.CellSize
		if cols > cfg.MaxGridDim || rows > cfg.MaxGridDim {
			return nil, fmt.Errorf("%dx%d grid over limit %d: %w", cols, rows, cfg.MaxGridDim, ErrGridTooLarge)
		}
	}

	grid, err := Rasterize(working, cfg.CellSize, cfg.FreeThreshold, cfg.FreeRatio)
	if err != nil {
		return nil, fmt.Errorf("rasterizing maze: %w", err)
	}

	return &Raster{Grid: grid, Frame: frame, Working: working}, nil
}

// Solution is the full outcome of solving one photo.
type Solution struct {
	ImageWidth  int `json:"image_width"`
	ImageHeight int `json:"image_height"`

	Frame         Bounds `json:"frame"`
	FrameFallback bool   `json:"frame_fallback"`

	CellSize int `json:"cell_size"`
	GridCols int `json:"grid_cols"`
	GridRows int `json:"grid_rows"`

	Start Cell `json:"start"`
	Goal  Cell `json:"goal"`

	// Path is the raw cell path; transport carries Points and Moves.
	Path []Cell `json:"-"`

	Points       []NormalizedPoint `json:"points"`
	Moves        []Move            `json:"moves"`
	Instructions []string          `json:"instructions"`
	TotalSteps   int               `json:"total_steps"`
}

// SolveImage runs the whole pipeline on a photo: locate the frame, crop,
// optionally smooth, rasterize, find the openings, seal the border,
// search, and encode the result. The input is used as the working image
// at its given size; callers wanting large photos shrunk first apply
// imaging.FitDown themselves.
//
// Recoverable outcomes are reported via the package sentinels:
// ErrEmptyImage, ErrGridTooLarge, ErrNoOpenings, ErrNoPath.
func SolveImage(img image.Image, cfg Config) (*Solution, error) {
	raster, err := BuildRaster(img, cfg)
	if err != nil {
		return nil, err
	}
	grid := raster.Grid

	start, goal, err := FindOpenings(grid)
	if err != nil {
		return nil, fmt.Errorf("detecting openings: %w", err)
	}

	path, err := Solve(grid.Sealed(start, goal), start, goal)
	if err != nil {
		return nil, fmt.Errorf("searching %dx%d grid: %w", grid.Cols(), grid.Rows(), err)
	}

	moves := Compress(path)
	working := raster.Working.Bounds()
	return &Solution{
		ImageWidth:    img.Bounds().Dx(),
		ImageHeight:   img.Bounds().Dy(),
		Frame:         rectBounds(raster.Frame.Rect),
		FrameFallback: raster.Frame.Fallback,
		CellSize:      cfg.CellSize,
		GridCols:      grid.Cols(),
		GridRows:      grid.Rows(),
		Start:         start,
		Goal:          goal,
		Path:          path,
		Points:        NormalizePath(path, cfg.CellSize, working.Dx(), working.Dy()),
		Moves:         moves,
		Instructions:  Instructions(moves),
		TotalSteps:    TotalSteps(moves),
	}, nil
}

func rectBounds(r image.Rectangle) Bounds {
	return Bounds{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// FrameRect reconstructs the frame rectangle in photo coordinates.
func (s *Solution) FrameRect() image.Rectangle {
	return image.Rect(s.Frame.X, s.Frame.Y, s.Frame.X+s.Frame.Width, s.Frame.Y+s.Frame.Height)
}

// PixelPath maps the solution's normalized points into photo pixels
// inside the frame, ready for overlay drawing.
func (s *Solution) PixelPath() []image.Point {
	return ProjectToImage(s.Points, s.FrameRect())
}

// EntryDirection returns the direction of travel entering the maze.
// Single-cell paths have no direction.
func (s *Solution) EntryDirection() (Direction, bool) {
	if len(s.Moves) == 0 {
		return 0, false
	}
	return s.Moves[0].Dir, true
}

// ExitDirection returns the direction of travel leaving the maze.
func (s *Solution) ExitDirection() (Direction, bool) {
	if len(s.Moves) == 0 {
		return 0, false
	}
	return s.Moves[len(s.Moves)-1].Dir, true
}
