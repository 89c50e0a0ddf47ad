package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// Smooth applies a Gaussian blur ahead of rasterization. Phone photos of
// paper mazes carry sensor noise that flips individual pixels across the
// luminance thresholds; a small radius (1-2 px) evens that out without
// eroding the drawn walls. A radius <= 0 returns the input unchanged.
func Smooth(img image.Image, radius float64) image.Image {
	if radius <= 0 {
		return img
	}
	return blur.Gaussian(img, radius)
}
