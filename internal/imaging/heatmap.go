package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HeatmapResult contains a rendered distance field.
type HeatmapResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	MaxDistance int    `json:"max_distance"`
}

// DistanceHeatmap renders a search distance field as a cell raster: blue
// near the entrance blending through to red at the farthest reachable
// cell, walls and unreached cells near black. The field is indexed
// row-major (row*cols + col); -1 marks cells the search never reached.
func DistanceHeatmap(cols, rows, cellSize int, dist []int) (*HeatmapResult, error) {
	if cols < 1 || rows < 1 || cellSize < 1 {
		return nil, fmt.Errorf("invalid heatmap geometry %dx%d with cell size %d", cols, rows, cellSize)
	}
	if len(dist) != cols*rows {
		return nil, fmt.Errorf("distance field has %d entries, want %d", len(dist), cols*rows)
	}

	maxDist := 0
	for _, d := range dist {
		if d > maxDist {
			maxDist = d
		}
	}

	cold, _ := colorful.Hex("#2c7bb6")
	hot, _ := colorful.Hex("#d7191c")
	wall := color.RGBA{16, 16, 16, 255}

	img := image.NewRGBA(image.Rect(0, 0, cols*cellSize, rows*cellSize))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := wall
			if d := dist[y*cols+x]; d >= 0 {
				t := 0.0
				if maxDist > 0 {
					t = float64(d) / float64(maxDist)
				}
				r, g, b := cold.BlendLab(hot, t).Clamped().RGB255()
				c = color.RGBA{R: r, G: g, B: b, A: 255}
			}
			fillCell(img, x*cellSize, y*cellSize, cellSize, c)
		}
	}

	encoded, err := encodePNGBase64(img)
	if err != nil {
		return nil, err
	}

	return &HeatmapResult{
		Width:       cols * cellSize,
		Height:      rows * cellSize,
		ImageBase64: encoded,
		MimeType:    "image/png",
		MaxDistance: maxDist,
	}, nil
}

func fillCell(img *image.RGBA, x0, y0, size int, c color.RGBA) {
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// encodePNGBase64 encodes an image as a base64 PNG payload.
func encodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
