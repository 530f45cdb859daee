// revealterm renders the reveal effect in a terminal, two pixels per cell
// using half blocks, or offline into a png.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"golang.org/x/term"

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
	FlagImage   string
	FlagConfig  string
	FlagFPS     int
	FlagLogPath string

	FlagPNG     string
	FlagFrames  int
	FlagWidth   int
	FlagHeight  int
	FlagPointer bool
	FlagPX      float64
	FlagPY      float64
)

func init() {
	flag.StringVar(&FlagImage, "image", "", "image to render, a path or an http(s) url")
	flag.StringVar(&FlagConfig, "config", "", "effect config file (json)")
	flag.IntVar(&FlagFPS, "fps", 30, "frames per second")
	flag.StringVar(&FlagLogPath, "log", "", "write logs to this file while the terminal is in use")

	flag.StringVar(&FlagPNG, "png", "", "render offline into this png instead of the terminal")
	flag.IntVar(&FlagFrames, "frames", 1, "frames to simulate before writing -png")
	flag.IntVar(&FlagWidth, "width", 640, "-png width")
	flag.IntVar(&FlagHeight, "height", 480, "-png height")
	flag.BoolVar(&FlagPointer, "pointer", false, "hold the pointer at -px, -py for -png")
	flag.Float64Var(&FlagPX, "px", 0.5, "pointer x for -png, 0 is left")
	flag.Float64Var(&FlagPY, "py", 0.5, "pointer y for -png, 0 is top")
}

func main() {
	flag.Parse()

	if FlagFPS <= 0 {
		ErrLogger.Fatalf("-fps must be positive, got %d", FlagFPS)
	}

	cfg := effect.DefaultConfig()
	if FlagConfig != "" {
		var err error
		if cfg, err = effect.LoadConfig(FlagConfig); err != nil {
			ErrLogger.Fatalf("failed to load config: %v", err)
		}
	}

	s, err := surface.New(cfg)
	if err != nil {
		ErrLogger.Fatalf("failed to create surface: %v", err)
	}

	ctx := context.Background()

	var resolver *surface.Resolver
	if FlagImage != "" {
		resolver = surface.Resolve(ctx, FlagImage, surface.ResolveOptions{
			MaxDimension: 2048,
		})
		s.Bind(resolver)
	} else {
		WarnLogger.Print("no -image given, rendering the placeholder")
	}

	frameDt := time.Second / time.Duration(FlagFPS)

	if FlagPNG != "" {
		if resolver != nil {
			waitCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			_, err := resolver.Wait(waitCtx)
			cancel()
			if err != nil {
				ErrLogger.Fatalf("image did not load: %v", err)
			}
		}
		f, err := os.Create(FlagPNG)
		if err != nil {
			ErrLogger.Fatal(err)
		}
		err = RenderOffline(s, f, OfflineOptions{
			Width:      FlagWidth,
			Height:     FlagHeight,
			Frames:     FlagFrames,
			FrameDt:    frameDt,
			Pointer:    effect.V2(FlagPX, FlagPY),
			HasPointer: FlagPointer,
		})
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			ErrLogger.Fatal(err)
		}
		InfoLogger.Printf("wrote %s", FlagPNG)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		ErrLogger.Fatal("stdout is not a terminal, use -png to render offline")
	}

	// logging over the screen would tear it
	logOut := io.Discard
	if FlagLogPath != "" {
		f, err := os.OpenFile(FlagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			ErrLogger.Fatalf("failed to open log: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	misc.SetLogOutput(logOut, logOut)
	surface.SetLogOutput(logOut, logOut)

	err = RunTerminal(s, frameDt)

	misc.SetLogOutput(os.Stderr, os.Stdout)
	surface.SetLogOutput(os.Stderr, os.Stdout)

	if err != nil {
		ErrLogger.Fatal(err)
	}
}
