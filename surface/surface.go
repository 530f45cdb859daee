package surface

import (
	"image"
	"sync"
	"time"

	"revealwave/effect"
)

// Frame is what a host needs to draw one frame.
type Frame struct {
	effect.Frame

	// latest published resource, nil while the image is still loading
	Resource *Resource

	// container size in pixels
	Size image.Point

	Number uint64
}

// Sampler returns the texture to shade from, the placeholder while the
// image is loading.
func (f *Frame) Sampler() effect.Sampler {
	if f.Resource == nil || f.Resource.Texture == nil {
		return effect.PlaceholderTexture()
	}
	return f.Resource.Texture
}

// Surface is the state of one rendered image: the render loop's clock and
// activation plus the latest pointer, click, size and config captured
// from the host. Event methods may be called from any goroutine; they only
// record the most recent state, which Tick folds into a Frame.
type Surface struct {
	mu sync.Mutex

	// captured from host events
	width, height int
	pointerInside bool
	pointerPos    effect.Vec2
	pointerMapped bool
	click         effect.Click
	pendingConfig *effect.Config
	resolver      *Resolver

	// advanced by Tick
	attached       bool
	clock          time.Duration
	activation     effect.Activation
	hasEverEntered bool
	config         effect.Config
	scale          effect.Scale
	resource       *Resource
	frameNumber    uint64
}

// New creates a detached surface. cfg must be valid.
func New(cfg effect.Config) (*Surface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Surface{
		config: cfg.Clone(),
		scale:  effect.UnitScale,
	}, nil
}

// Bind makes the surface follow r. The resource is picked up at the start
// of the first frame after it is published.
func (s *Surface) Bind(r *Resolver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolver = r
	s.resource = nil
}

// Attach starts the render loop. The clock resumes where it stopped.
func (s *Surface) Attach() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attached = true
}

// Detach stops the render loop. While detached Tick neither renders nor
// advances the clock.
func (s *Surface) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attached = false
}

func (s *Surface) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attached
}

// Resize records the container size in pixels. A zero area size is kept
// but leaves the geometry at its last valid scale.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.width, s.height = width, height
}

func (s *Surface) rect() effect.Rect {
	return effect.Rect{Width: float64(s.width), Height: float64(s.height)}
}

func (s *Surface) PointerEnter() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pointerInside = true
}

func (s *Surface) PointerLeave() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pointerInside = false
}

// PointerMove records the pointer at host pixel (x, y), top-left origin.
func (s *Surface) PointerMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if uv, ok := effect.MapPointer(x, y, s.rect()); ok {
		s.pointerPos = uv
		s.pointerMapped = true
	}
}

// Click starts a click ripple at host pixel (x, y), replacing any ripple
// still running. It is stamped with the current surface time.
func (s *Surface) Click(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uv, ok := effect.MapPointer(x, y, s.rect())
	if !ok {
		return
	}

	s.click = effect.Click{
		Pos:  uv,
		Time: s.clock.Seconds(),
		Set:  true,
	}
}

// SetConfig swaps the effect config. The new values take effect at the
// start of the next frame, never in the middle of one.
func (s *Surface) SetConfig(cfg effect.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg = cfg.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingConfig = &cfg
	return nil
}

// Config returns the config used by the last frame.
func (s *Surface) Config() effect.Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.config.Clone()
}

// Tick advances the surface by one display refresh and returns the frame
// to draw. It returns false while detached.
func (s *Surface) Tick(dt time.Duration) (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return Frame{}, false
	}

	// clock
	s.clock += max(dt, 0)

	if s.pendingConfig != nil {
		s.config = *s.pendingConfig
		s.pendingConfig = nil
	}

	if s.resolver != nil {
		if res := s.resolver.Latest(); res != s.resource {
			s.resource = res
			if res != nil && res.Err != nil {
				warnLogger.Printf("rendering placeholder for %q", res.Source)
			}
		}
	}

	s.updateGeometry()

	// activation
	s.activation = s.activation.Step(s.pointerInside, s.config.Easing)

	// pointer
	if s.pointerInside && s.pointerMapped {
		s.hasEverEntered = true
	}
	pointer := effect.Sentinel
	if s.hasEverEntered {
		pointer = s.pointerPos
	}

	s.frameNumber++

	frame := Frame{
		Frame: effect.Frame{
			Params: effect.FrameParameters{
				Time:       s.clock.Seconds(),
				Pointer:    pointer,
				Activation: s.activation.Value(),
				Click:      s.click,
			},
			Config: s.config,
			Scale:  s.scale,
		},
		Resource: s.resource,
		Size:     image.Pt(s.width, s.height),
		Number:   s.frameNumber,
	}

	return frame, true
}

// updateGeometry recomputes the cover scale from the container size and
// the image aspect. Until the image is resolved the container's own
// aspect stands in for it.
func (s *Surface) updateGeometry() {
	containerAspect, ok := effect.AspectRatio(float64(s.width), float64(s.height))
	if !ok {
		return
	}

	imageAspect, ok := s.resource.Aspect()
	if !ok {
		imageAspect = containerAspect
	}

	if scale, ok := effect.CoverScale(imageAspect, containerAspect); ok {
		s.scale = scale
	} else {
		errLogger.Printf("bad geometry: image %v, container %v", imageAspect, containerAspect)
	}
}
