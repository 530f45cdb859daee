package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"time"

	"revealwave/effect"
	"revealwave/surface"
)

type OfflineOptions struct {
	Width, Height int

	// frames ticked before the last one is rendered, at least 1
	Frames  int
	FrameDt time.Duration

	// held pointer in fractions of the size, top-left origin
	Pointer    effect.Vec2
	HasPointer bool
}

// RenderOffline ticks s Frames times without a screen and encodes the
// last frame to w as png.
func RenderOffline(s *surface.Surface, w io.Writer, opts OfflineOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}

	s.Resize(opts.Width, opts.Height)
	s.Attach()

	if opts.HasPointer {
		s.PointerEnter()
		s.PointerMove(opts.Pointer.X*float64(opts.Width), opts.Pointer.Y*float64(opts.Height))
	}

	var frame surface.Frame
	for i := 0; i < max(opts.Frames, 1); i++ {
		var ok bool
		if frame, ok = s.Tick(opts.FrameDt); !ok {
			return fmt.Errorf("surface detached at frame %d", i)
		}
	}

	img := image.NewNRGBA(image.Rectangle{Max: frame.Size})
	effect.Render(img, frame.Sampler(), &frame.Frame)

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
