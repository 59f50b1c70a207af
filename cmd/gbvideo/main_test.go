package main

import (
	"bytes"
	"compress/gzip"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/thelolagemann/gbvideo/internal/types"
	"github.com/thelolagemann/gbvideo/pkg/log"
)

// writeDump writes a gzipped monochrome dump with a solid background.
func writeDump(t *testing.T) string {
	t.Helper()
	dump := make([]byte, 0x10000)
	dump[types.LCDC] = 0x91
	dump[types.BGP] = 0xE4
	for i := 0; i < 16; i++ {
		dump[types.TileData+types.Address(i)] = 0xFF
	}

	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	w.Write(dump)
	w.Close()

	path := filepath.Join(t.TempDir(), "dump.bin.gz")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	dump := writeDump(t)
	out := filepath.Join(t.TempDir(), "frame.png")

	err := run(config{dump: dump, model: "auto", out: out, scale: 2, scheme: "greyscale"}, log.NewNullLogger())
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 288 {
		t.Errorf("bounds = %v", b)
	}
	if r, _, _, _ := img.At(10, 10).RGBA(); r != 0 {
		t.Errorf("expected a black frame, got red %d", r)
	}
}

func TestRun_Tiles(t *testing.T) {
	dump := writeDump(t)
	out := filepath.Join(t.TempDir(), "tiles.bmp")

	if err := run(config{dump: dump, model: "dmg", out: out, scale: 1, tiles: true, scheme: "green"}, log.NewNullLogger()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}

	// monochrome dumps have no second bank
	if err := run(config{dump: dump, model: "dmg", out: out, tiles: true, bank: 1, scheme: "green"}, log.NewNullLogger()); err == nil {
		t.Error("expected an error for bank 1")
	}
}

func TestRun_Errors(t *testing.T) {
	for name, cfg := range map[string]config{
		"no dump":        {scheme: "greyscale"},
		"unknown scheme": {dump: "x", scheme: "purple"},
		"missing dump":   {dump: filepath.Join(t.TempDir(), "missing"), scheme: "red"},
	} {
		if err := run(cfg, log.NewNullLogger()); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
