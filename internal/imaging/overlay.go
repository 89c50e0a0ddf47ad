package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/yalue/image_utils"
)

// ArrowDir orients an endpoint marker arrow.
type ArrowDir int

const (
	ArrowNone ArrowDir = iota
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
)

// OverlayOptions controls how a solved path is painted onto a photo.
type OverlayOptions struct {
	// StrokeColor is a hex color ("#RRGGBB" or "#RGB"). Empty selects red.
	StrokeColor string

	// StrokeWidth in pixels. Zero or negative selects max(3, width/200),
	// which keeps the stroke visible on large photos without swallowing
	// narrow corridors on small ones.
	StrokeWidth int

	// EntryArrow and ExitArrow orient the markers drawn just outside the
	// two endpoints. ArrowNone disables the marker.
	EntryArrow ArrowDir
	ExitArrow  ArrowDir
}

// OverlayResult contains a rendered overlay encoded for transport.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// PathOverlay paints the solved path onto a copy of src: round-capped
// thick segments between successive points, entrance and exit discs, and
// optional direction arrows. src is never modified.
func PathOverlay(src image.Image, pts []image.Point, opts OverlayOptions) (*image.RGBA, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("empty pixel path")
	}

	stroke, err := strokeColor(opts.StrokeColor)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	width := opts.StrokeWidth
	if width <= 0 {
		width = bounds.Dx() / 200
		if width < 3 {
			width = 3
		}
	}

	for i := 1; i < len(pts); i++ {
		drawSegment(dst, pts[i-1], pts[i], stroke, width)
	}

	start, goal := pts[0], pts[len(pts)-1]
	white := color.RGBA{255, 255, 255, 255}
	drawDisc(dst, start, width+3, 2, color.RGBA{0, 200, 83, 255}, white)
	drawDisc(dst, goal, width+3, 2, color.RGBA{213, 0, 0, 255}, white)

	arrowSize := clampInt(4*width, 16, 64) / 4 * 4
	drawArrow(dst, start.Sub(arrowOffset(opts.EntryArrow, arrowSize)), opts.EntryArrow, arrowSize, stroke)
	drawArrow(dst, goal.Add(arrowOffset(opts.ExitArrow, arrowSize)), opts.ExitArrow, arrowSize, stroke)

	return dst, nil
}

// RenderOverlay draws the overlay and encodes it as a base64 PNG payload.
func RenderOverlay(src image.Image, pts []image.Point, opts OverlayOptions) (*OverlayResult, error) {
	img, err := PathOverlay(src, pts, opts)
	if err != nil {
		return nil, err
	}

	encoded, err := encodePNGBase64(img)
	if err != nil {
		return nil, err
	}

	return &OverlayResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}

// strokeColor parses a hex stroke color; empty selects the default red.
func strokeColor(hex string) (color.RGBA, error) {
	if hex == "" {
		return color.RGBA{255, 0, 0, 255}, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid stroke color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// drawSegment draws a thick line with Bresenham stepping and a square
// brush, then caps both ends with discs so successive segments join
// without notches at the corners.
func drawSegment(img *image.RGBA, p0, p1 image.Point, c color.RGBA, width int) {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	e := dx - dy

	x, y := p0.X, p0.Y
	for {
		for i := -width / 2; i <= width/2; i++ {
			for j := -width / 2; j <= width/2; j++ {
				setPixel(img, x+i, y+j, c)
			}
		}
		if x == p1.X && y == p1.Y {
			break
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}

	fillDisc(img, p0, width/2, c)
	fillDisc(img, p1, width/2, c)
}

func fillDisc(img *image.RGBA, center image.Point, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				setPixel(img, center.X+dx, center.Y+dy, c)
			}
		}
	}
}

// drawDisc fills a disc with a contrasting border ring around it.
func drawDisc(img *image.RGBA, center image.Point, r, border int, fill, ring color.RGBA) {
	fillDisc(img, center, r+border, ring)
	fillDisc(img, center, r, fill)
}

// drawArrow composites a two-tone arrow (colored body, white core) of the
// given size centered at pt. The white core keeps the marker readable over
// both light paper and the stroke itself.
func drawArrow(dst *image.RGBA, pt image.Point, dir ArrowDir, size int, body color.RGBA) {
	if dir == ArrowNone || size < 4 {
		return
	}

	outer := image_utils.ResizeImage(arrowImage(dir, body), size, size)
	inner := image_utils.ResizeImage(arrowImage(dir, color.White), size/2, size/2)
	composite := image_utils.NewCompositeImage()
	composite.AddImage(outer, image.Pt(0, 0))
	composite.AddImage(inner, image.Pt(size/4, size/4))
	arrow := image_utils.ToRGBA(composite)

	r := image.Rect(pt.X-size/2, pt.Y-size/2, pt.X-size/2+size, pt.Y-size/2+size)
	draw.Draw(dst, r, arrow, arrow.Bounds().Min, draw.Over)
}

func arrowImage(dir ArrowDir, c color.Color) image.Image {
	switch dir {
	case ArrowUp:
		return image_utils.UpArrow(c)
	case ArrowDown:
		return image_utils.DownArrow(c)
	case ArrowLeft:
		return image_utils.LeftArrow(c)
	default:
		return image_utils.RightArrow(c)
	}
}

// arrowOffset is the displacement from an endpoint to its marker center,
// along the arrow's pointing direction.
func arrowOffset(dir ArrowDir, dist int) image.Point {
	switch dir {
	case ArrowUp:
		return image.Pt(0, -dist)
	case ArrowDown:
		return image.Pt(0, dist)
	case ArrowLeft:
		return image.Pt(-dist, 0)
	case ArrowRight:
		return image.Pt(dist, 0)
	default:
		return image.Point{}
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
