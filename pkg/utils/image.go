package utils

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Formats lists the image formats SaveImage can write.
var Formats = []string{"png", "bmp"}

// EncodeImage writes img to w in the given format.
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// SaveImage saves img to filename. An empty format is taken from the
// file's extension.
func SaveImage(img image.Image, filename, format string) (err error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(filename), ".")
	}
	if !supported(format) {
		return fmt.Errorf("saving %s as %q: %w", filename, format, ErrUnknownFormat)
	}

	// does file have an extension?
	if filepath.Ext(filename) == "" {
		filename += "." + format
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	if err := EncodeImage(file, img, format); err != nil {
		return fmt.Errorf("saving %s: %w", filename, err)
	}
	return nil
}

func supported(format string) bool {
	for _, f := range Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}
