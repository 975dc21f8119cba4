// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package imagecache

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// StandardLoader decodes conventional 8-bit-per-channel formats:
// PNG and JPEG with the standard library (mirroring load/png.go), BMP
// and TIFF with golang.org/x/image, the same module the teacher already
// depends on for image-adjacent decoding (load/ttf.go). Every decoded
// image is normalized to image.NRGBA before being handed back, the same
// normalize-to-one-format step load/ttf.go performs when rasterizing
// glyphs into a fixed atlas.
type StandardLoader struct{}

// Load decodes path and returns it as a Image.
func (StandardLoader) Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		src, err = png.Decode(f)
	case ".jpg", ".jpeg":
		src, err = jpeg.Decode(f)
	case ".bmp":
		src, err = bmp.Decode(f)
	case ".tif", ".tiff":
		src, err = tiff.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return normalize(src), nil
}

func normalize(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return &Image{Width: b.Dx(), Height: b.Dy(), Pix: dst.Pix, ColorSpace: "srgb"}
}
