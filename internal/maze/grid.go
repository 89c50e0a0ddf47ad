package maze

import (
	"fmt"
	"image"
	"strings"

	"github.com/HenningRK/Smart-Systems-2025/internal/imaging"
)

// Cell addresses one occupancy grid cell; X is the column, Y the row.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a boolean occupancy raster over the cropped maze image: a true
// cell is open corridor, a false cell is wall.
type Grid struct {
	cols, rows int
	cells      []bool
}

// NewGrid returns an all-wall grid of the given dimensions.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", cols, rows)
	}
	return &Grid{cols: cols, rows: rows, cells: make([]bool, cols*rows)}, nil
}

// Rasterize samples an image into an occupancy grid with
// ceil(width/cellSize) columns and ceil(height/cellSize) rows. A pixel
// counts as free when its luminance exceeds freeThreshold; a cell is free
// when the free fraction of the pixels it actually covers exceeds
// freeRatio. Judging partial cells at the right and bottom edges by their
// actual pixel count keeps them from skewing toward wall.
func Rasterize(img image.Image, cellSize, freeThreshold int, freeRatio float64) (*Grid, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("invalid cell size %d", cellSize)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, ErrEmptyImage
	}

	g, err := NewGrid((w+cellSize-1)/cellSize, (h+cellSize-1)/cellSize)
	if err != nil {
		return nil, err
	}

	for gy := 0; gy < g.rows; gy++ {
		for gx := 0; gx < g.cols; gx++ {
			free, total := 0, 0
			for py := gy * cellSize; py < (gy+1)*cellSize && py < h; py++ {
				for px := gx * cellSize; px < (gx+1)*cellSize && px < w; px++ {
					total++
					if imaging.LuminanceAt(img, bounds.Min.X+px, bounds.Min.Y+py) > freeThreshold {
						free++
					}
				}
			}
			g.set(gx, gy, float64(free)/float64(total) > freeRatio)
		}
	}

	return g, nil
}

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether c addresses a cell of this grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.cols && c.Y >= 0 && c.Y < g.rows
}

// Free reports whether the cell at (x, y) is open corridor.
// Out-of-bounds coordinates are never free.
func (g *Grid) Free(x, y int) bool {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return false
	}
	return g.cells[y*g.cols+x]
}

func (g *Grid) set(x, y int, free bool) {
	g.cells[y*g.cols+x] = free
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cols: g.cols, rows: g.rows, cells: cells}
}

// Sealed returns a copy of the grid with every border cell forced to wall
// except start and goal. Incidental free cells along the border are
// usually photographic noise; left open, the search can leak through them
// instead of using the real entrance and exit. The receiver is not
// modified.
func (g *Grid) Sealed(start, goal Cell) *Grid {
	s := g.Clone()
	for x := 0; x < s.cols; x++ {
		s.sealCell(x, 0, start, goal)
		s.sealCell(x, s.rows-1, start, goal)
	}
	for y := 0; y < s.rows; y++ {
		s.sealCell(0, y, start, goal)
		s.sealCell(s.cols-1, y, start, goal)
	}
	return s
}

func (g *Grid) sealCell(x, y int, start, goal Cell) {
	c := Cell{X: x, Y: y}
	if c == start || c == goal {
		return
	}
	g.set(x, y, false)
}

// FreeCells returns the number of open corridor cells.
func (g *Grid) FreeCells() int {
	n := 0
	for _, free := range g.cells {
		if free {
			n++
		}
	}
	return n
}

// String renders the grid with '.' for corridor and '#' for wall, one row
// per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.Free(x, y) {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
