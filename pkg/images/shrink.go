package images

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Shrink decodes data, scales the image so neither dimension exceeds
// maxDim while preserving aspect ratio, and re-encodes it as JPEG at the
// given quality. Images already within bounds are re-encoded only.
//
// Shrink is a pure function over its inputs; callers decide what to do on
// failure (the manager falls back to the original bytes).
func Shrink(data []byte, maxDim, quality int) ([]byte, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("maxDim must be positive, got %d", maxDim)
	}
	if quality <= 0 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxDim || h > maxDim {
		scale := float64(maxDim) / float64(w)
		if h > w {
			scale = float64(maxDim) / float64(h)
		}
		nw, nh := int(float64(w)*scale), int(float64(h)*scale)
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, src, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return out.Bytes(), nil
}
