package effect

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Render shades every pixel of dst for the frame. Rows are split into
// bands shaded concurrently; the frame and sampler are only read.
func Render(dst *image.NRGBA, tex Sampler, frame *Frame) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return
	}

	bands := min(runtime.GOMAXPROCS(0), h)
	rowsPerBand := (h + bands - 1) / bands

	var g errgroup.Group

	for y0 := 0; y0 < h; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, h)
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					frag := frame.Shade(tex, x, y, w, h)
					dst.SetNRGBA(b.Min.X+x, b.Min.Y+y, frag.Color.NRGBA())
				}
			}
			return nil
		})
	}

	// shading never fails
	_ = g.Wait()
}
