package surface

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"revealwave/effect"
)

const frameDt = time.Second / 60

func newSurface(t *testing.T, cfg effect.Config) *Surface {
	t.Helper()

	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func tick(t *testing.T, s *Surface) Frame {
	t.Helper()

	f, ok := s.Tick(frameDt)
	if !ok {
		t.Fatal("surface is detached")
	}
	return f
}

func near(a, b effect.Vec2) bool {
	return effect.Distance(a, b) < 1e-9
}

func scenarioConfig() effect.Config {
	cfg := effect.DefaultConfig()
	cfg.RevealRadius = 0.3
	cfg.RevealSoftness = 0.5
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := effect.DefaultConfig()
	cfg.PixelSize = -2
	if _, err := New(cfg); !errors.Is(err, effect.ErrInvalidConfig) {
		t.Errorf("err = %v", err)
	}
}

func TestLandscapeImageNeverTouched(t *testing.T) {
	path := writePNG(t, 200, 100, color.NRGBA{180, 120, 60, 255})
	r := Resolve(context.Background(), path, ResolveOptions{})
	waitResource(t, r)

	s := newSurface(t, scenarioConfig())
	s.Bind(r)
	s.Resize(100, 100)
	s.Attach()

	var f Frame
	for range 100 {
		f = tick(t, s)
		if f.Params.Activation != 0 {
			t.Fatalf("frame %d: activation %v without a pointer", f.Number, f.Params.Activation)
		}
		if f.Params.Pointer != effect.Sentinel {
			t.Fatalf("frame %d: pointer %v before entering", f.Number, f.Params.Pointer)
		}
	}

	if f.Scale != (effect.Scale{X: 2, Y: 1}) {
		t.Fatalf("scale = %v, want (2, 1)", f.Scale)
	}

	const size = 40
	tex := f.Sampler()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			frag := f.Shade(tex, x, y, size, size)
			if frag.Weight != 0 || frag.Color != frag.Stylized {
				t.Fatalf("pixel (%d,%d) shows original color", x, y)
			}
		}
	}
}

func TestPointerHeldAtCenter(t *testing.T) {
	s := newSurface(t, scenarioConfig())
	s.Resize(100, 100)
	s.Attach()

	s.PointerEnter()
	s.PointerMove(50, 50)

	const size = 41
	for n := 1; n <= 60; n++ {
		f := tick(t, s)
		if f.Params.Pointer != effect.V2(0.5, 0.5) {
			t.Fatalf("pointer = %v", f.Params.Pointer)
		}

		// pixel (0, 20) sits about 0.49 away from the pointer
		far := f.Shade(f.Sampler(), 0, 20, size, size)
		if far.Weight != 0 {
			t.Fatalf("frame %d: weight %v beyond the reveal radius", n, far.Weight)
		}

		if n == 60 {
			if f.Params.Activation <= 0.95 {
				t.Fatalf("activation after 60 frames = %v", f.Params.Activation)
			}
			center := f.Shade(f.Sampler(), 20, 20, size, size)
			if center.Weight < 0.95 {
				t.Errorf("weight at pointer = %v", center.Weight)
			}
		}
	}
}

func TestSentinelUntilEntered(t *testing.T) {
	s := newSurface(t, effect.DefaultConfig())
	s.Resize(200, 100)
	s.Attach()

	// a move without an enter is remembered but not shown
	s.PointerMove(20, 10)
	if f := tick(t, s); f.Params.Pointer != effect.Sentinel {
		t.Fatalf("pointer = %v before entering", f.Params.Pointer)
	}

	// entering without a position keeps the sentinel too
	s2 := newSurface(t, effect.DefaultConfig())
	s2.Resize(200, 100)
	s2.Attach()
	s2.PointerEnter()
	if f := tick(t, s2); f.Params.Pointer != effect.Sentinel {
		t.Fatalf("pointer = %v without a position", f.Params.Pointer)
	}

	s.PointerEnter()
	f := tick(t, s)
	want := effect.V2(0.1, 0.9)
	if f.Params.Pointer != want {
		t.Fatalf("pointer = %v, want %v", f.Params.Pointer, want)
	}

	// leaving keeps the last position, the reveal fades out instead
	s.PointerLeave()
	for range 10 {
		f = tick(t, s)
	}
	if f.Params.Pointer != want {
		t.Errorf("pointer jumped to %v after leaving", f.Params.Pointer)
	}
	if f.Params.Activation >= 0.5 {
		t.Errorf("activation %v should be fading", f.Params.Activation)
	}
}

func TestPointerMovesCoalesce(t *testing.T) {
	s := newSurface(t, effect.DefaultConfig())
	s.Resize(100, 100)
	s.Attach()
	s.PointerEnter()

	for i := 0; i <= 100; i++ {
		s.PointerMove(float64(i), 25)
	}

	f := tick(t, s)
	if f.Params.Pointer != effect.V2(1, 0.75) {
		t.Errorf("pointer = %v, want the last move", f.Params.Pointer)
	}
}

func TestDetachStopsClock(t *testing.T) {
	s := newSurface(t, effect.DefaultConfig())
	s.Resize(10, 10)

	if _, ok := s.Tick(frameDt); ok {
		t.Fatal("new surface should start detached")
	}

	s.Attach()
	tick(t, s)
	before := tick(t, s)

	s.Detach()
	for range 30 {
		if _, ok := s.Tick(frameDt); ok {
			t.Fatal("detached surface rendered")
		}
	}

	s.Attach()
	after := tick(t, s)

	elapsed := after.Params.Time - before.Params.Time
	if math.Abs(elapsed-frameDt.Seconds()) > 1e-9 {
		t.Errorf("clock moved %vs across a detach", elapsed)
	}
	if after.Number != before.Number+1 {
		t.Errorf("frame number %d after %d", after.Number, before.Number)
	}
}

func TestClickReplacesPrevious(t *testing.T) {
	s := newSurface(t, effect.DefaultConfig())
	s.Resize(100, 100)
	s.Attach()

	for range 30 {
		tick(t, s)
	}

	s.Click(20, 80)
	f := tick(t, s)
	if !f.Params.Click.Set || !near(f.Params.Click.Pos, effect.V2(0.2, 0.2)) {
		t.Fatalf("click = %+v", f.Params.Click)
	}
	if math.Abs(f.Params.Click.Time-30*frameDt.Seconds()) > 1e-9 {
		t.Errorf("click stamped at %v", f.Params.Click.Time)
	}

	tick(t, s)
	s.Click(50, 50)
	f = tick(t, s)
	if f.Params.Click.Pos != effect.V2(0.5, 0.5) {
		t.Errorf("second click did not replace the first: %+v", f.Params.Click)
	}
	if _, ok := effect.ClickProgress(&f.Params, &f.Config); !ok {
		t.Error("fresh click should be live")
	}
}

func TestDegenerateResizeKeepsScale(t *testing.T) {
	path := writePNG(t, 300, 100, color.NRGBA{0, 0, 0, 255})
	r := Resolve(context.Background(), path, ResolveOptions{})
	waitResource(t, r)

	s := newSurface(t, effect.DefaultConfig())
	s.Bind(r)
	s.Resize(100, 100)
	s.Attach()

	if f := tick(t, s); f.Scale != (effect.Scale{X: 3, Y: 1}) {
		t.Fatalf("scale = %v", f.Scale)
	}

	s.Resize(0, 100)
	s.PointerEnter()
	s.PointerMove(10, 10)
	s.Click(10, 10)

	f := tick(t, s)
	if f.Scale != (effect.Scale{X: 3, Y: 1}) {
		t.Errorf("zero width container changed scale to %v", f.Scale)
	}
	if f.Params.Pointer != effect.Sentinel || f.Params.Click.Set {
		t.Errorf("events on a zero area surface were applied: %+v", f.Params)
	}

	s.Resize(100, 300)
	if f := tick(t, s); !near(effect.Vec2(f.Scale), effect.V2(9, 1)) {
		t.Errorf("portrait container scale = %v, want (9, 1)", f.Scale)
	}
}

func TestProvisionalAspectUntilLoaded(t *testing.T) {
	release := make(chan struct{})
	data := encodePNG(t, 50, 100, color.NRGBA{255, 255, 255, 255})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write(data)
	}))
	defer srv.Close()

	r := Resolve(context.Background(), srv.URL, ResolveOptions{Client: srv.Client()})

	s := newSurface(t, effect.DefaultConfig())
	s.Bind(r)
	s.Resize(160, 90)
	s.Attach()

	f := tick(t, s)
	if f.Scale != effect.UnitScale || f.Resource != nil {
		t.Fatalf("before load: scale %v, resource %v", f.Scale, f.Resource)
	}
	if f.Sampler().At(effect.V2(0.5, 0.5)) != effect.Gray(0.5) {
		t.Error("loading surface should sample the placeholder")
	}

	close(release)
	waitResource(t, r)

	f = tick(t, s)
	if f.Resource == nil {
		t.Fatal("resource not picked up on the next frame")
	}
	want, _ := effect.CoverScale(0.5, 160.0/90.0)
	if f.Scale != want {
		t.Errorf("scale = %v, want %v", f.Scale, want)
	}
}

func TestFailedLoadKeepsProvisionalAspect(t *testing.T) {
	r := Resolve(context.Background(), "ftp://nowhere/a.png", ResolveOptions{})
	waitResource(t, r)

	s := newSurface(t, effect.DefaultConfig())
	s.Bind(r)
	s.Resize(64, 32)
	s.Attach()

	f := tick(t, s)
	if f.Resource == nil || f.Resource.Err == nil {
		t.Fatal("expected the placeholder resource")
	}
	if f.Scale != effect.UnitScale {
		t.Errorf("scale = %v", f.Scale)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	effect.Render(dst, f.Sampler(), &f.Frame)
}

func TestSetConfigAppliesNextFrame(t *testing.T) {
	s := newSurface(t, effect.DefaultConfig())
	s.Resize(10, 10)
	s.Attach()
	tick(t, s)

	bad := effect.DefaultConfig()
	bad.Easing = 3
	if err := s.SetConfig(bad); !errors.Is(err, effect.ErrInvalidConfig) {
		t.Fatalf("err = %v", err)
	}

	next := effect.DefaultConfig()
	next.PixelSize = 7
	if err := s.SetConfig(next); err != nil {
		t.Fatal(err)
	}
	if s.Config().PixelSize == 7 {
		t.Error("config swapped before the next frame")
	}

	f := tick(t, s)
	if f.Config.PixelSize != 7 {
		t.Errorf("pixel size = %v", f.Config.PixelSize)
	}

	// later edits to the caller's value must not leak in
	next.Palette[0] = effect.Gray(0.3)
	f = tick(t, s)
	if f.Config.Palette[0] != effect.Gray(0) {
		t.Error("surface shares the palette passed to SetConfig")
	}
}

func TestConcurrentEvents(t *testing.T) {
	s := newSurface(t, effect.DefaultConfig())
	s.Resize(100, 100)
	s.Attach()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 1000 {
			s.PointerEnter()
			s.PointerMove(float64(i%100), 50)
			if i%100 == 0 {
				s.Click(50, 50)
			}
		}
	}()

	for range 200 {
		tick(t, s)
	}
	<-done

	f := tick(t, s)
	if f.Params.Pointer.X != 0.99 {
		t.Errorf("pointer = %v", f.Params.Pointer)
	}
}
