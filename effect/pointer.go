package effect

// Rect is a host rectangle in pixels with a top-left origin.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Sentinel is fed to the pipeline as the pointer position before the
// pointer has ever entered the surface. It is far enough outside the unit
// square that neither the reveal nor the ripple can reach the image.
var Sentinel = Vec2{-10, -10}

// MapPointer converts host pixel coordinates into pipeline space: unit
// square, bottom-left origin. Coordinates outside the rectangle are
// clamped to its edge. A zero area rectangle yields ok == false and the
// caller leaves its state untouched.
func MapPointer(clientX, clientY float64, rect Rect) (uv Vec2, ok bool) {
	if !(rect.Width > 0) || !(rect.Height > 0) {
		return Vec2{}, false
	}

	u := (clientX - rect.Left) / rect.Width
	v := 1 - (clientY-rect.Top)/rect.Height

	return Vec2{Clamp(u, 0, 1), Clamp(v, 0, 1)}, true
}

// PixelCenter is the container coordinate of the center of pixel (px, py)
// on a w by h surface.
func PixelCenter(px, py, w, h int) Vec2 {
	return Vec2{
		X: (float64(px) + 0.5) / float64(w),
		Y: 1 - (float64(py)+0.5)/float64(h),
	}
}
