package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/gbvideo/internal/ppu"
	"github.com/thelolagemann/gbvideo/internal/ppu/palette"
	"github.com/thelolagemann/gbvideo/internal/ram"
	"github.com/thelolagemann/gbvideo/internal/types"
	"github.com/thelolagemann/gbvideo/pkg/display"
	"github.com/thelolagemann/gbvideo/pkg/display/event"
	_ "github.com/thelolagemann/gbvideo/pkg/display/web"
	"github.com/thelolagemann/gbvideo/pkg/log"
	"github.com/thelolagemann/gbvideo/pkg/utils"
)

var schemes = map[string]int{
	"greyscale": palette.Greyscale,
	"green":     palette.Green,
	"red":       palette.Red,
	"yellow":    palette.Yellow,
}

type config struct {
	dump        string
	model       string
	out         string
	format      string
	scale       int
	tiles       bool
	bank        int
	spriteLimit int
	scheme      string
	serve       bool
	debug       bool
}

func main() {
	cfg := config{}
	fs := flag.NewFlagSet("gbvideo", flag.ExitOnError)
	fs.StringVar(&cfg.dump, "dump", "", "The memory dump to render (.gz, .xz, .zip and .7z are decompressed)")
	fs.StringVar(&cfg.model, "model", "auto", "The model to render as. Can be auto, dmg or cgb")
	fs.StringVar(&cfg.out, "out", "", "Where to save the rendered image")
	fs.StringVar(&cfg.format, "format", "", "The image format, png or bmp. Defaults to the extension of -out")
	fs.IntVar(&cfg.scale, "scale", 1, "Scale the image by this factor")
	fs.BoolVar(&cfg.tiles, "tiles", false, "Render the tile sheet instead of the screen")
	fs.IntVar(&cfg.bank, "bank", 0, "The VRAM bank to render the tile sheet from")
	fs.IntVar(&cfg.spriteLimit, "sprite-limit", 0, "Limit the number of sprites per line (0 for unlimited, 10 on hardware)")
	fs.StringVar(&cfg.scheme, "scheme", "greyscale", "The colour scheme of monochrome frames. Can be greyscale, green, red or yellow")
	fs.BoolVar(&cfg.serve, "serve", false, "Stream the frame to browsers until interrupted")
	fs.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	display.RegisterFlags(fs)
	fs.Parse(os.Args[1:])

	level := logrus.InfoLevel
	if cfg.debug {
		level = logrus.DebugLevel
	}
	logger := log.NewWithLevel(level)

	if err := run(cfg, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg config, logger log.Logger) error {
	if cfg.dump == "" {
		return errors.New("no dump given, see -help")
	}
	scheme, ok := schemes[strings.ToLower(cfg.scheme)]
	if !ok {
		return fmt.Errorf("unknown scheme %q", cfg.scheme)
	}

	// open the dump file
	data, err := utils.LoadFile(cfg.dump)
	if err != nil {
		return err
	}
	mem := ram.New()
	if err := mem.Load(data); err != nil {
		return fmt.Errorf("loading %s: %w", cfg.dump, err)
	}

	model := types.StringToModel(cfg.model)
	if model == types.Unset {
		// only colour dumps carry the banked address space
		model = types.DMG
		if len(data) > int(types.VRAMOffset) {
			model = types.CGB
		}
	}
	logger.Infof("rendering %s as %s", cfg.dump, model)

	fb := display.NewFramebuffer(display.WithScheme(scheme), display.WithLogger(logger))
	r := ppu.New(mem,
		ppu.AsModel(model),
		ppu.WithLogger(logger),
		ppu.WithSpriteLimit(cfg.spriteLimit),
		ppu.WithScreen(fb),
	)
	renderFrame(r)
	logger.Infof("frame %016x", fb.Hash())

	if cfg.out != "" {
		var img image.Image
		if cfg.tiles {
			sheet, err := display.TileSheet(r, cfg.bank, 16)
			if err != nil {
				return err
			}
			img = display.Scale(sheet, cfg.scale)
		} else {
			img = fb.Scaled(cfg.scale)
		}
		if err := utils.SaveImage(img, cfg.out, cfg.format); err != nil {
			return err
		}
		logger.Infof("saved %s", cfg.out)
	}

	if cfg.serve {
		return serve(r, fb, cfg.dump, logger)
	}
	return nil
}

// renderFrame draws every line of the screen and publishes the frame.
func renderFrame(r *ppu.Renderer) {
	for y := 0; y < ppu.ScreenHeight; y++ {
		r.RenderLine(y)
	}
	r.RefreshFrame()
}

// serve streams frames over the web driver, re-rendering the dump at
// the hardware's frame rate so that layer toggles show up.
func serve(r *ppu.Renderer, fb *display.Framebuffer, title string, logger log.Logger) error {
	d := display.GetDriver("web")
	if d == nil {
		return errors.New("web driver not installed")
	}
	if l, ok := d.(interface{ SetLogger(log.Logger) }); ok {
		l.SetLogger(logger)
	}
	d.Initialize(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frames := fb.Subscribe(2)
	events := make(chan event.Event, 4)
	events <- event.Event{Type: event.Title, Data: title}

	go func() {
		t := time.NewTicker(time.Second / 60)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				events <- event.Event{Type: event.Quit}
				return
			case <-t.C:
				start := time.Now()
				renderFrame(r)
				select {
				case events <- event.Event{Type: event.FrameTime, Data: time.Since(start)}:
				default:
				}
			}
		}
	}()

	return d.Start(frames, events)
}
