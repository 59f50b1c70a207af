package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/ulikunitz/xz"
)

var (
	// ErrEmptyArchive is returned when an archive contains no files.
	ErrEmptyArchive = errors.New("utils: empty archive")
	// ErrUnknownFormat is returned for an unsupported image format.
	ErrUnknownFormat = errors.New("utils: unknown format")
)

// LoadFile loads the given file and performs decompression if necessary,
// based on the file's extension. Archives yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	data, err = Decompress(filepath.Ext(filename), data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}
	return data, nil
}

// Decompress decompresses data according to the given file extension.
// Unknown extensions return the data as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	var err error

	// try to assert the compression type from the file extension
	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".xz":
		decoder, err = xz.NewReader(bytes.NewReader(data))
	case ".zip":
		var r *zip.Reader
		r, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the zip file
		var rc io.ReadCloser
		if rc, err = r.File[0].Open(); err == nil {
			defer rc.Close()
			decoder = rc
		}
	case ".7z":
		var r *sevenzip.Reader
		r, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			break
		}
		if len(r.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the archive
		var rc io.ReadCloser
		if rc, err = r.File[0].Open(); err == nil {
			defer rc.Close()
			decoder = rc
		}
	default:
		// return the data as is
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", ext, err)
	}

	// read the decompressed data into a byte slice
	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", ext, err)
	}
	return out, nil
}
