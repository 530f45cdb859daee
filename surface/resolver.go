package surface

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"revealwave/effect"
)

var (
	ErrEmptySource       = errors.New("empty image source")
	ErrUnsupportedScheme = errors.New("unsupported image source scheme")
	ErrImageTooLarge     = errors.New("image source too large")
)

const (
	// DefaultTimeout bounds a whole load, fetch and decode included.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxPixels bounds the decoded size, checked from the header
	// before any pixel is decoded.
	DefaultMaxPixels = 50_000_000

	// encoded sources past this are refused while reading
	maxSourceBytes = 256 << 20
)

// Resource is a loaded image. It never changes once published.
type Resource struct {
	Source string

	// Image is the decoded image, scaled down to the resolver's
	// MaxDimension. It is the placeholder when Err is set.
	Image   image.Image
	Texture *effect.Texture

	NativeWidth  int
	NativeHeight int

	// Err is why the load failed. A failed resource renders as the
	// placeholder and keeps the provisional aspect ratio.
	Err error
}

// Aspect returns the native aspect ratio, false for failed loads.
func (r *Resource) Aspect() (float64, bool) {
	if r == nil || r.Err != nil {
		return 0, false
	}
	return effect.AspectRatio(float64(r.NativeWidth), float64(r.NativeHeight))
}

func placeholderResource(source string, err error) *Resource {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{128, 128, 128, 255})

	return &Resource{
		Source:  source,
		Image:   img,
		Texture: effect.PlaceholderTexture(),
		Err:     err,
	}
}

type ResolveOptions struct {
	// images larger than this on either side are scaled down, 0 keeps
	// them as they are
	MaxDimension int

	// images with more pixels than this are refused, 0 means
	// DefaultMaxPixels
	MaxPixels int

	// 0 means DefaultTimeout
	Timeout time.Duration

	// used for http and https sources, nil means http.DefaultClient
	Client *http.Client
}

// Resolver loads one image source in the background. The result is
// published exactly once and is safe to read from any goroutine.
// There are no retries; a failed load stays failed.
type Resolver struct {
	source string
	result atomic.Pointer[Resource]
	done   chan struct{}
}

// Resolve starts loading source, a local path or an http(s) URL.
func Resolve(ctx context.Context, source string, opts ResolveOptions) *Resolver {
	r := &Resolver{
		source: source,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(r.done)

		res, err := load(ctx, source, opts)
		if err != nil {
			warnLogger.Printf("failed to load %q, using placeholder: %v", source, err)
			res = placeholderResource(source, err)
		}

		r.result.Store(res)
	}()

	return r
}

func (r *Resolver) Source() string {
	return r.source
}

// Latest returns the published resource, or nil while still loading.
func (r *Resolver) Latest() *Resource {
	return r.result.Load()
}

func (r *Resolver) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the resource is published or ctx is done.
func (r *Resolver) Wait(ctx context.Context) (*Resource, error) {
	select {
	case <-r.done:
		return r.result.Load(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func load(ctx context.Context, source string, opts ResolveOptions) (*Resource, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptySource
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	rc, err := open(ctx, source, opts.Client)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxSourceBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	if len(data) > maxSourceBytes {
		return nil, fmt.Errorf("%w: %s is over %d bytes", ErrImageTooLarge, source, maxSourceBytes)
	}

	maxPixels := opts.MaxPixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}

	header, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}
	if header.Width*header.Height > maxPixels {
		return nil, fmt.Errorf(
			"%w: %s is %dx%d, limit is %d pixels",
			ErrImageTooLarge, source, header.Width, header.Height, maxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("decoding %s: empty image", source)
	}

	infoLogger.Printf("loaded %s (%s, %dx%d)", source, format, bounds.Dx(), bounds.Dy())

	img = fitImage(img, opts.MaxDimension)

	return &Resource{
		Source:       source,
		Image:        img,
		Texture:      effect.NewTexture(img),
		NativeWidth:  bounds.Dx(),
		NativeHeight: bounds.Dy(),
	}, nil
}

func open(ctx context.Context, source string, client *http.Client) (io.ReadCloser, error) {
	u, err := url.Parse(source)
	// single letter schemes are windows drive letters
	if err != nil || len(u.Scheme) <= 1 {
		return os.Open(source)
	}

	switch u.Scheme {
	case "file":
		return os.Open(u.Path)
	case "http", "https":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
	}

	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: %s", source, resp.Status)
	}

	return resp.Body, nil
}

// fitImage scales img down so neither side exceeds maxDim, keeping its
// aspect ratio.
func fitImage(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return img
	}

	scale := float64(maxDim) / float64(max(b.Dx(), b.Dy()))
	w := max(int(float64(b.Dx())*scale+0.5), 1)
	h := max(int(float64(b.Dy())*scale+0.5), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

	return dst
}
