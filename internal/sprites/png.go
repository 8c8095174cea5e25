package sprites

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// maxSpriteSide bounds override sprites per axis. Oversized art is downscaled
// rather than rejected so a high-resolution sprite still works.
const maxSpriteSide = 96

// loadPNGMask decodes a PNG into a bitmap mask. Transparent images use the
// alpha channel (a pixel is lit when at least half opaque); fully opaque
// images light every non-black pixel instead.
func loadPNGMask(path string) (w, h int, mask []bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}

	img = shrinkToBound(img, maxSpriteSide)
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 0, 0, nil, fmt.Errorf("image %s is empty", path)
	}

	hasAlpha := false
	for y := b.Min.Y; y < b.Max.Y && !hasAlpha; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a < 0xffff {
				hasAlpha = true
				break
			}
		}
	}

	mask = make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if hasAlpha {
				mask[y*w+x] = a >= 0x8000
			} else {
				mask[y*w+x] = r+g+bl > 0
			}
		}
	}
	return w, h, mask, nil
}

// shrinkToBound downscales an image so neither axis exceeds bound,
// preserving aspect ratio. Images already in bounds pass through.
func shrinkToBound(img image.Image, bound int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= bound && h <= bound {
		return img
	}

	nw, nh := w, h
	if nw > bound {
		nh = nh * bound / nw
		nw = bound
	}
	if nh > bound {
		nw = nw * bound / nh
		nh = bound
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
