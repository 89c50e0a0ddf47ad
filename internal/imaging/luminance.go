package imaging

import "image"

// Rec. 709 luma weights scaled by 10000 so the per-pixel computation stays
// in integer arithmetic.
const (
	lumaRed   = 2126
	lumaGreen = 7152
	lumaBlue  = 722
)

// Luminance returns the Rec. 709 luma of an 8-bit RGB triple, in [0, 255].
func Luminance(r, g, b uint8) int {
	return (lumaRed*int(r) + lumaGreen*int(g) + lumaBlue*int(b)) / 10000
}

// LuminanceAt returns the luma of the pixel at (x, y). Coordinates are in
// the image's own coordinate space (respecting bounds that do not start at
// the origin).
func LuminanceAt(img image.Image, x, y int) int {
	r, g, b, _ := img.At(x, y).RGBA()
	return Luminance(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
