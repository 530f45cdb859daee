package main

import (
	"context"
	"flag"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"

	"revealwave/effect"
	"revealwave/misc"
	"revealwave/surface"
)

var (
	ErrLogger  = misc.ErrLogger
	WarnLogger = misc.WarnLogger
	InfoLogger = misc.InfoLogger
)

var (
	FlagImage       string
	FlagConfig      string
	FlagWidth       int
	FlagHeight      int
	FlagForceCPU    bool
	FlagHotReload   bool
	FlagMaxTexture  int
	ScreenshotsPath string
)

func init() {
	flag.StringVar(&FlagImage, "image", "", "image to render, a path or an http(s) url")
	flag.StringVar(&FlagConfig, "config", "", "effect config file (json)")
	flag.IntVar(&FlagWidth, "width", 800, "initial window width")
	flag.IntVar(&FlagHeight, "height", 600, "initial window height")
	flag.BoolVar(&FlagForceCPU, "cpu", false, "render on the cpu instead of the shader")
	flag.BoolVar(&FlagHotReload, "hot", false, "load the shader from disk so F5 picks up edits")
	flag.IntVar(&FlagMaxTexture, "maxtex", 4096, "downscale images larger than this")
	flag.StringVar(&ScreenshotsPath, "shots", "./", "directory screenshots are written to")
}

func main() {
	flag.Parse()

	cfg := effect.DefaultConfig()
	if FlagConfig != "" {
		var err error
		if cfg, err = effect.LoadConfig(FlagConfig); err != nil {
			ErrLogger.Fatalf("failed to load config: %v", err)
		}
	}

	if FlagImage == "" {
		WarnLogger.Print("no -image given, rendering the placeholder")
	}

	InitClipboardManager()

	app, err := NewApp(cfg)
	if err != nil {
		ErrLogger.Fatalf("failed to create app: %v", err)
	}

	if FlagImage != "" {
		app.Surface.Bind(surface.Resolve(context.Background(), FlagImage, surface.ResolveOptions{
			MaxDimension: FlagMaxTexture,
		}))
	}

	eb.SetVsyncEnabled(true)
	eb.SetScreenClearedEveryFrame(false)
	eb.SetWindowSize(FlagWidth, FlagHeight)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("revealwave")

	if err := eb.RunGame(app); err != nil {
		ErrLogger.Fatal(err)
	}
}
