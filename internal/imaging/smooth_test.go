package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestSmooth_ZeroRadiusReturnsInput(t *testing.T) {
	src := fillImage(10, 10, color.White)

	if out := Smooth(src, 0); out != image.Image(src) {
		t.Error("radius 0 should return the input unchanged")
	}
	if out := Smooth(src, -1); out != image.Image(src) {
		t.Error("negative radius should return the input unchanged")
	}
}

func TestSmooth_BlursNoise(t *testing.T) {
	src := fillImage(15, 15, color.White)
	src.Set(7, 7, color.Black)

	out := Smooth(src, 2)
	if out == image.Image(src) {
		t.Fatal("positive radius should produce a new image")
	}
	if out.Bounds().Dx() != 15 || out.Bounds().Dy() != 15 {
		t.Errorf("blurred size: got %v, want 15x15", out.Bounds())
	}

	// The lone dark pixel spreads out: its center brightens, and the
	// original image stays untouched.
	if lum := LuminanceAt(out, 7, 7); lum == 0 {
		t.Error("blur should have lightened the noise pixel")
	}
	if lum := LuminanceAt(src, 7, 7); lum != 0 {
		t.Error("Smooth must not mutate its input")
	}
}
