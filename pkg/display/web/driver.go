package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/thelolagemann/gbvideo/internal/ppu"
	"github.com/thelolagemann/gbvideo/pkg/display"
	"github.com/thelolagemann/gbvideo/pkg/display/event"
	"github.com/thelolagemann/gbvideo/pkg/log"
)

func init() {
	d := &driver{log: log.New()}
	display.Install("web", d, []display.DriverOption{
		{
			Name:        "addr",
			Default:     ":8090",
			Value:       &d.addr,
			Type:        "string",
			Description: "The address to serve frames on",
		},
		{
			Name:        "compression",
			Default:     false,
			Value:       &d.compression,
			Type:        "bool",
			Description: "Compress frames with brotli",
		},
		{
			Name:        "quality",
			Default:     7,
			Value:       &d.quality,
			Type:        "int",
			Description: "The brotli quality (0-11)",
		},
		{
			Name:        "cache",
			Default:     64,
			Value:       &d.cacheSize,
			Type:        "int",
			Description: "The number of frames clients cache",
		},
	})
}

// driver serves a Hub over http as a display.Driver.
type driver struct {
	addr        string
	compression bool
	quality     int
	cacheSize   int

	renderer *ppu.Renderer
	log      log.Logger
	srv      *http.Server
	cancel   context.CancelFunc
}

func (d *driver) Initialize(r *ppu.Renderer) {
	d.renderer = r
}

// SetLogger replaces the logger of the driver.
func (d *driver) SetLogger(l log.Logger) {
	d.log = l
}

func (d *driver) Start(frames <-chan []byte, events <-chan event.Event) error {
	opts := []Opt{WithCacheSize(d.cacheSize), WithRenderer(d.renderer), WithLogger(d.log)}
	if d.compression {
		opts = append(opts, WithCompression(d.quality))
	}
	hub := NewHub(opts...)

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	go hub.Run(ctx)

	d.srv = &http.Server{Addr: d.addr, Handler: hub}
	errs := make(chan error, 1)
	go func() {
		errs <- d.srv.ListenAndServe()
	}()
	d.log.Infof("web: serving frames on %s", d.addr)

	for {
		select {
		case f, ok := <-frames:
			if !ok {
				return d.Stop()
			}
			hub.Publish(f)
		case e := <-events:
			switch e.Type {
			case event.Quit:
				return d.Stop()
			case event.Title:
				if title, ok := e.Data.(string); ok {
					hub.SetTitle(title)
				}
			case event.FrameTime:
				d.log.Debugf("web: frame time %v", e.Data)
			}
		case err := <-errs:
			cancel()
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("web: serving %s: %w", d.addr, err)
		}
	}
}

func (d *driver) Stop() error {
	if d.cancel != nil {
		d.cancel()
	}
	if d.srv == nil {
		return nil
	}
	if err := d.srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("web: shutting down: %w", err)
	}
	return nil
}
