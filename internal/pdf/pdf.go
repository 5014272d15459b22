// Package pdf wraps document rendering and page counting for the
// extraction providers.
package pdf

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// CountPages returns the number of pages in a PDF, or an error when the
// file cannot be opened.
func CountPages(path string) (int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer doc.Close()
	return doc.NumPage(), nil
}

// RenderPagePNG renders a 1-indexed page to PNG bytes at the given DPI.
func RenderPagePNG(path string, pageNum int, dpi float64) ([]byte, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(pageNum-1, dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d of %s: %w", pageNum, path, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode page %d as PNG: %w", pageNum, err)
	}
	return buf.Bytes(), nil
}
