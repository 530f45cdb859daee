package main

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

func TestCellColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{200, 100, 50, 0})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 128})
	img.SetNRGBA(0, 2, color.NRGBA{10, 20, 30, 255})

	tests := []struct {
		x, cy  int
		fg, bg tcell.Color
	}{
		{0, 0, tcell.NewRGBColor(255, 0, 0), tcell.NewRGBColor(0, 0, 255)},
		// transparent pixels come out black, half alpha half bright
		{1, 0, tcell.NewRGBColor(0, 0, 0), tcell.NewRGBColor(128, 128, 128)},
		// odd height, the last row has no bottom pixel
		{0, 1, tcell.NewRGBColor(10, 20, 30), tcell.NewRGBColor(0, 0, 0)},
	}

	for _, test := range tests {
		fg, bg := CellColors(img, test.x, test.cy)
		if fg != test.fg || bg != test.bg {
			t.Errorf("cell (%d, %d) = %v, %v; want %v, %v", test.x, test.cy, fg, bg, test.fg, test.bg)
		}
	}
}

func TestCellPixel(t *testing.T) {
	x, y := CellPixel(3, 2)
	if x != 3.5 || y != 5 {
		t.Errorf("CellPixel(3, 2) = %v, %v", x, y)
	}
}

func TestImageRows(t *testing.T) {
	for h, want := range map[int]int{0: 0, 1: 1, 2: 1, 40: 39} {
		if got := imageRows(h); got != want {
			t.Errorf("imageRows(%d) = %d, want %d", h, got, want)
		}
	}
}

func TestFitStatus(t *testing.T) {
	str := "t 1.0s  activation 0.50  bayer4"

	if got := FitStatus(str, 100); got != str {
		t.Errorf("wide terminal changed status to %q", got)
	}

	if got := FitStatus(str, 0); got != "" {
		t.Errorf("FitStatus(0) = %q, want empty", got)
	}
	if got := FitStatus(str, -3); got != "" {
		t.Errorf("FitStatus(-3) = %q, want empty", got)
	}
	if got := FitStatus(str, 5); !strings.HasSuffix(got, "…") {
		t.Errorf("FitStatus(5) = %q has no ellipsis", got)
	}

	for _, w := range []int{0, 1, 2, 10, 20} {
		if got := FitStatus(str, w); runewidth.StringWidth(got) > w {
			t.Errorf("FitStatus(%d) = %q is %d wide", w, got, runewidth.StringWidth(got))
		}
	}
}

func TestPaintHalfBlocks(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(4, 3)

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	PaintHalfBlocks(screen, img)

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			r, _, style, _ := screen.GetContent(x, y)
			if r != halfBlock {
				t.Fatalf("cell (%d, %d) holds %q", x, y, r)
			}
			fg, bg, _ := style.Decompose()
			white := tcell.NewRGBColor(255, 255, 255)
			if fg != white || bg != white {
				t.Fatalf("cell (%d, %d) colors %v %v", x, y, fg, bg)
			}
		}
	}

	// the status row is left alone
	if r, _, _, _ := screen.GetContent(0, 2); r == halfBlock {
		t.Error("painted below the image")
	}
}
