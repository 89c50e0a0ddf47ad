package imaging

import "image"

// Frame is the located maze boundary within a photo.
type Frame struct {
	// Rect is the padded bounding rectangle of the dark frame pixels,
	// clamped to the image bounds.
	Rect image.Rectangle

	// Fallback is true when no pixel was dark enough to anchor the frame
	// and Rect covers the whole image. Grid quality usually suffers in
	// that case, so callers should surface the condition.
	Fallback bool
}

// FindFrame locates the drawn maze frame: the tight bounding box of every
// pixel with luminance below wallThreshold, grown by pad pixels on each
// side and clamped to the image bounds. Photos place the maze against
// arbitrary backgrounds, so the ink must be isolated before a grid is
// imposed on it.
//
// When nothing in the image qualifies as dark, the whole image is returned
// with Fallback set so a solve can still be attempted.
func FindFrame(img image.Image, wallThreshold, pad int) Frame {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X - 1, bounds.Min.Y - 1

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if LuminanceAt(img, x, y) >= wallThreshold {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return Frame{Rect: bounds, Fallback: true}
	}

	rect := image.Rect(minX-pad, minY-pad, maxX+1+pad, maxY+1+pad)
	return Frame{Rect: rect.Intersect(bounds)}
}
