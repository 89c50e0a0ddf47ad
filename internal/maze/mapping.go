package maze

import (
	"image"
	"math"
)

// NormalizedPoint is a position expressed as fractions of the cropped
// image's dimensions: (0,0) top-left, (1,1) bottom-right, y increasing
// downward. Normalized points survive any later rescaling of the photo.
type NormalizedPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NormalizePath maps cell path coordinates into normalized image
// coordinates. Each cell maps to its center pixel, (c+0.5)*cellSize,
// clamped into the image and divided by (dimension-1). A degenerate
// 1-pixel dimension maps to 0.
func NormalizePath(path []Cell, cellSize, width, height int) []NormalizedPoint {
	pts := make([]NormalizedPoint, len(path))
	for i, c := range path {
		pts[i] = NormalizedPoint{
			X: normalize((float64(c.X)+0.5)*float64(cellSize), width),
			Y: normalize((float64(c.Y)+0.5)*float64(cellSize), height),
		}
	}
	return pts
}

func normalize(v float64, dim int) float64 {
	max := float64(dim - 1)
	if max <= 0 {
		return 0
	}
	if v < 0 {
		v = 0
	} else if v > max {
		v = max
	}
	return v / max
}

// ProjectToImage maps normalized points back into photo pixels inside the
// frame rectangle: pixel = frame origin + clamp01(n) * frame size. This
// is the inverse of NormalizePath up to the clamping and the cell-size
// quantization.
func ProjectToImage(points []NormalizedPoint, frame image.Rectangle) []image.Point {
	w := float64(frame.Dx())
	h := float64(frame.Dy())

	pts := make([]image.Point, len(points))
	for i, p := range points {
		pts[i] = image.Point{
			X: frame.Min.X + int(math.Round(clamp01(p.X)*w)),
			Y: frame.Min.Y + int(math.Round(clamp01(p.Y)*h)),
		}
	}
	return pts
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
