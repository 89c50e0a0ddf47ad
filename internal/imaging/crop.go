package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropFrame extracts the frame rectangle from a photo. The rectangle must
// be non-empty and lie inside the image bounds; FindFrame output always
// satisfies both. The returned image has its origin at (0,0).
func CropFrame(img image.Image, rect image.Rectangle) (*image.NRGBA, error) {
	if rect.Empty() {
		return nil, fmt.Errorf("empty frame rectangle %v", rect)
	}
	bounds := img.Bounds()
	if !rect.In(bounds) {
		return nil, fmt.Errorf("frame %v outside image bounds %v", rect, bounds)
	}
	return imaging.Crop(img, rect), nil
}

// FitDown proportionally downscales an image so neither side exceeds
// maxDim, matching how photos are shrunk before solving. Images already
// within the limit are returned unchanged; maxDim <= 0 disables the
// limit.
func FitDown(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	if maxDim <= 0 || (bounds.Dx() <= maxDim && bounds.Dy() <= maxDim) {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
}

// SaveImage writes an image to disk, with the format chosen from the file
// extension (.png, .jpg, .gif, .tif, .bmp).
func SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
