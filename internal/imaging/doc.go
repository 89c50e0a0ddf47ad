// Package imaging provides the pixel-level operations of the maze solver.
//
// This package covers everything that touches raw pixels: loading and
// caching photos, luminance classification, locating the drawn maze frame,
// cropping and downscaling, optional smoothing, and rendering results
// (path overlays, distance heatmaps) back onto images. All operations work
// with standard Go image.Image types and use a coordinate system where
// (0,0) is at the top-left corner, X increases rightward, and Y increases
// downward.
//
// # Luminance
//
// Classification uses Rec. 709 luma (0.2126 R + 0.7152 G + 0.0722 B) on
// 8-bit channels, giving values in [0, 255]. Two independent thresholds
// are applied by callers: a dark threshold separating drawn ink from the
// background (frame location) and a light threshold separating corridor
// fill from everything else (grid rasterization).
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other operations are
// stateless pure functions over their inputs and can run concurrently on
// different images; none of them mutate a caller's image.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - File I/O or decode errors during image loading
//   - Frame rectangles outside the image bounds
//   - Malformed hex color strings
//   - Encoding errors during image output
//
// # Performance Considerations
//
// For repeated operations on the same photo, use ImageCache to avoid
// redundant disk reads and decodes. Large photos may consume significant
// memory when cached; use Evict() or Clear() in long-running processes.
package imaging
