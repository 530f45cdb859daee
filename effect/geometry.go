package effect

// Scale is the size of the image quad relative to its container. A scale
// of (2, 1) means the quad is twice as wide as the container and exactly
// as tall, so half of the image width is cropped away.
type Scale struct {
	X, Y float64
}

var UnitScale = Scale{1, 1}

// CoverScale sizes the quad so an image of the given aspect ratio covers a
// container of containerAspect without stretching. The quad's effective
// aspect, X*containerAspect / Y, always equals imageAspect.
//
// ok is false when either ratio is not a positive finite number. Callers
// keep their previous scale in that case.
func CoverScale(imageAspect, containerAspect float64) (s Scale, ok bool) {
	if !validRatio(imageAspect) || !validRatio(containerAspect) {
		return UnitScale, false
	}

	rel := imageAspect / containerAspect
	if rel > 1 {
		return Scale{rel, 1}, true
	}
	return Scale{1, 1 / rel}, true
}

// ToTexture maps a container coordinate (unit square, bottom-left origin)
// into the image's texture coordinate, centering the cropped quad.
func (s Scale) ToTexture(p Vec2) Vec2 {
	return Vec2{
		X: (p.X-0.5)/s.X + 0.5,
		Y: (p.Y-0.5)/s.Y + 0.5,
	}
}

// AspectRatio returns w/h, or false for a zero area size.
func AspectRatio(w, h float64) (float64, bool) {
	if !(w > 0) || !(h > 0) {
		return 0, false
	}
	a := w / h
	return a, validRatio(a)
}

func validRatio(r float64) bool {
	return r > 0 && r < 1e12
}
