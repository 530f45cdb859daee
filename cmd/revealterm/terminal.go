package main

import (
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"revealwave/effect"
	"revealwave/surface"
)

const statusEllipsis = "…"

// upper half block, fg paints the top pixel and bg the bottom one
const halfBlock = '▀'

// imageRows is how many rows of an h row terminal show the image. The
// last row is the status line when there is room for one.
func imageRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// RunTerminal renders s on the terminal until the user quits.
func RunTerminal(s *surface.Surface, frameDt time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	w, h := screen.Size()
	s.Resize(w, imageRows(h)*2)
	s.Attach()

	quit := make(chan struct{})
	go pollEvents(screen, s, quit)

	ticker := time.NewTicker(frameDt)
	defer ticker.Stop()

	var raster *image.NRGBA
	last := time.Now()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now

		frame, ok := s.Tick(dt)
		w, h := screen.Size()
		if !ok {
			drawStatus(screen, w, h, "paused  space resume  q quit")
			screen.Show()
			continue
		}

		if frame.Size.X <= 0 || frame.Size.Y <= 0 {
			continue
		}
		if raster == nil || raster.Bounds().Size() != frame.Size {
			raster = image.NewNRGBA(image.Rectangle{Max: frame.Size})
		}

		effect.Render(raster, frame.Sampler(), &frame.Frame)
		PaintHalfBlocks(screen, raster)

		drawStatus(screen, w, h, statusLine(&frame))
		screen.Show()
	}
}

// pollEvents forwards terminal events to s. It closes quit when the user
// quits or the screen goes away.
func pollEvents(screen tcell.Screen, s *surface.Surface, quit chan<- struct{}) {
	defer close(quit)

	inside := false
	var buttons tcell.ButtonMask

	setInside := func(in bool) {
		if in == inside {
			return
		}
		inside = in
		if in {
			s.PointerEnter()
		} else {
			s.PointerLeave()
		}
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return

		case *tcell.EventResize:
			w, h := ev.Size()
			s.Resize(w, imageRows(h)*2)
			screen.Sync()

		case *tcell.EventFocus:
			if !ev.Focused {
				setInside(false)
			}

		case *tcell.EventMouse:
			x, y := ev.Position()
			_, h := screen.Size()

			setInside(y < imageRows(h))
			if !inside {
				buttons = ev.Buttons()
				continue
			}

			px, py := CellPixel(x, y)
			s.PointerMove(px, py)

			pressed := ev.Buttons()
			if pressed&tcell.Button1 != 0 && buttons&tcell.Button1 == 0 {
				s.Click(px, py)
			}
			buttons = pressed

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				if s.Attached() {
					s.Detach()
				} else {
					s.Attach()
				}
			}
		}
	}
}

// CellPixel is the raster position a pointer in cell (x, y) stands for,
// the middle of the cell's two pixels.
func CellPixel(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(y*2) + 1
}

// PaintHalfBlocks draws img, two pixel rows per terminal row.
func PaintHalfBlocks(screen tcell.Screen, img *image.NRGBA) {
	size := img.Bounds().Size()
	for cy := 0; cy*2 < size.Y; cy++ {
		for x := 0; x < size.X; x++ {
			fg, bg := CellColors(img, x, cy)
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			screen.SetContent(x, cy, halfBlock, nil, style)
		}
	}
}

// CellColors returns the colors of cell (x, cy): the pixel rows 2cy and
// 2cy+1 composited over black.
func CellColors(img *image.NRGBA, x, cy int) (fg, bg tcell.Color) {
	b := img.Bounds()
	fg = overBlack(img, b.Min.X+x, b.Min.Y+cy*2)
	if cy*2+1 < b.Dy() {
		bg = overBlack(img, b.Min.X+x, b.Min.Y+cy*2+1)
	} else {
		bg = tcell.NewRGBColor(0, 0, 0)
	}
	return fg, bg
}

func overBlack(img *image.NRGBA, x, y int) tcell.Color {
	c := img.NRGBAAt(x, y)
	a := int32(c.A)
	return tcell.NewRGBColor(
		(int32(c.R)*a+127)/255,
		(int32(c.G)*a+127)/255,
		(int32(c.B)*a+127)/255,
	)
}

func statusLine(f *surface.Frame) string {
	str := fmt.Sprintf(
		"t %.1fs  activation %.2f  %s",
		f.Params.Time, f.Params.Activation, f.Config.Pattern,
	)
	if f.Resource == nil {
		str += "  loading"
	} else if f.Resource.Err != nil {
		str += "  placeholder"
	}
	return str + "  space pause  q quit"
}

// drawStatus writes str on the last row, cut to the terminal width.
func drawStatus(screen tcell.Screen, w, h int, str string) {
	if h < 2 {
		return
	}

	str = FitStatus(str, w)
	style := tcell.StyleDefault.Reverse(true)

	x := 0
	for _, r := range str {
		screen.SetContent(x, h-1, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < w; x++ {
		screen.SetContent(x, h-1, ' ', nil, style)
	}
}

// FitStatus cuts str to at most w terminal columns.
func FitStatus(str string, w int) string {
	if runewidth.StringWidth(str) <= w {
		return str
	}
	// too narrow for the ellipsis itself
	if w < runewidth.StringWidth(statusEllipsis) {
		return runewidth.Truncate(str, max(w, 0), "")
	}
	return runewidth.Truncate(str, w, statusEllipsis)
}
