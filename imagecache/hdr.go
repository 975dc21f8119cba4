// Copyright © 2015 CurveKit Authors.
// Use is governed by a BSD-style license found in the LICENSE file.

package imagecache

import (
	"fmt"
	"io"
	"math"
	"os"

	curve "github.com/galvanized/curvekit"
)

// HDRDecoder reads a floating-point raster from r and returns its pixel
// data (channels interleaved, channels of 1, 3, or 4) plus its
// dimensions. Actual OpenEXR bitstream parsing is out of scope for this
// module (SPEC_FULL.md item 4) — it is an injected dependency so callers
// can plug in a real decoder without this package needing to carry one.
type HDRDecoder func(r io.Reader) (pix []float32, width, height, channels int, err error)

// HDRLoader decodes a high-dynamic-range frame and tone-maps it down to
// the cache's canonical 8-bit form via Reinhard tone mapping followed by
// an approximate sRGB gamma curve, the contract spec.md §6 describes for
// EXR frames. Decoder defaults to DecodeRawFloatRaster when nil.
type HDRLoader struct {
	Decoder HDRDecoder
}

// Load decodes and tone-maps path.
func (h HDRLoader) Load(path string) (*Image, error) {
	decode := h.Decoder
	if decode == nil {
		decode = DecodeRawFloatRaster
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pix, width, height, channels, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("hdr decode %s: %w", path, err)
	}
	return ToneMapReinhard(pix, width, height, channels)
}

// ToneMapReinhard converts a float32 HDR raster to an 8-bit-per-channel
// Image using Reinhard tone mapping (x / (1 + x)) followed by an
// approximate sRGB gamma curve (x ^ (1/2.2)), per channels in {1, 3, 4}.
func ToneMapReinhard(pix []float32, width, height, channels int) (*Image, error) {
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: unsupported channel count %d", curve.ErrLoadFailed, channels)
	}
	n := width * height
	if len(pix) < n*channels {
		return nil, fmt.Errorf("%w: raster has %d samples, need %d", curve.ErrLoadFailed, len(pix), n*channels)
	}
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		var r, g, b, a float32 = 0, 0, 0, 1
		switch channels {
		case 1:
			r = pix[i]
			g, b = r, r
		case 3:
			r, g, b = pix[i*3], pix[i*3+1], pix[i*3+2]
		case 4:
			r, g, b, a = pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3]
		}
		out[i*4+0] = toneMapChannel(r)
		out[i*4+1] = toneMapChannel(g)
		out[i*4+2] = toneMapChannel(b)
		out[i*4+3] = byte(clamp01(float64(a)) * 255)
	}
	return &Image{Width: width, Height: height, Pix: out, ColorSpace: "srgb"}, nil
}

func toneMapChannel(v float32) byte {
	if v < 0 {
		v = 0
	}
	mapped := v / (1 + v)
	gamma := math.Pow(float64(mapped), 1.0/2.2)
	return byte(clamp01(gamma)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// DecodeRawFloatRaster is the reference HDRDecoder used by this
// package's own tests: a minimal, documented raw-float raster — header
// line "RAWF <width> <height> <channels>\n" followed by
// width*height*channels little-endian float32 samples. It is not an EXR
// parser; a real one is a separate, injected concern (SPEC_FULL.md
// item 4).
func DecodeRawFloatRaster(r io.Reader) (pix []float32, width, height, channels int, err error) {
	if _, err = fmt.Fscanf(r, "RAWF %d %d %d\n", &width, &height, &channels); err != nil {
		return nil, 0, 0, 0, fmt.Errorf("invalid raw-float header: %w", err)
	}
	n := width * height * channels
	buf := make([]byte, n*4)
	if _, err = io.ReadFull(r, buf); err != nil {
		return nil, 0, 0, 0, fmt.Errorf("short raster: %w", err)
	}
	pix = make([]float32, n)
	for i := 0; i < n; i++ {
		bits := uint32(buf[i*4]) | uint32(buf[i*4+1])<<8 | uint32(buf[i*4+2])<<16 | uint32(buf[i*4+3])<<24
		pix[i] = math.Float32frombits(bits)
	}
	return pix, width, height, channels, nil
}
