// Package sprites resolves logical sprite names to drawable bitmaps.
// The simulation only ever asks for names from a fixed allow-list and only
// consumes the reported dimensions; the rasterizer consumes the mask. Any
// resolution failure yields a solid placeholder, never an error.
package sprites

import (
	"fmt"
	"strings"

	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"
)

// Logical sprite names. This set is closed: the game requests nothing else
// and the atlas accepts nothing else.
const (
	NamePlayer  = "player"
	NameSquid   = "enemy-squid"
	NameCrab    = "enemy-crab"
	NameOctopus = "enemy-octopus"
	NameBunker  = "bunker"
	NameBullet  = "bullet"
)

// Names returns the allow-list in display order.
func Names() []string {
	return []string{NamePlayer, NameSquid, NameCrab, NameOctopus, NameBunker, NameBullet}
}

// Sprite is a drawable bitmap in virtual pixels. Mask is row-major with
// length W*H; a set bit is a lit pixel.
type Sprite struct {
	Name  string
	W, H  int
	Mask  []bool
	Color core.Color
}

// At reports whether the pixel at (x, y) is lit.
// Out-of-bounds coordinates are unlit.
func (s *Sprite) At(x, y int) bool {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return false
	}
	return s.Mask[y*s.W+x]
}

// Art returns the sprite as rows of '#' and ' ' runes, one string per row.
// Used by the sprites subcommand for terminal previews.
func (s *Sprite) Art() []string {
	rows := make([]string, s.H)
	var sb strings.Builder
	for y := 0; y < s.H; y++ {
		sb.Reset()
		for x := 0; x < s.W; x++ {
			if s.At(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// parseArt converts rows of '1'/'0' characters into a bitmap.
// Rows must be non-empty and of equal width.
func parseArt(rows []string) (w, h int, mask []bool, err error) {
	if len(rows) == 0 {
		return 0, 0, nil, fmt.Errorf("empty bitmap")
	}
	w = len(rows[0])
	h = len(rows)
	if w == 0 {
		return 0, 0, nil, fmt.Errorf("empty bitmap row")
	}

	mask = make([]bool, w*h)
	for y, row := range rows {
		if len(row) != w {
			return 0, 0, nil, fmt.Errorf("ragged bitmap: row %d is %d wide, expected %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			switch row[x] {
			case '1':
				mask[y*w+x] = true
			case '0':
				// empty pixel
			default:
				return 0, 0, nil, fmt.Errorf("invalid bitmap character %q at (%d, %d)", row[x], x, y)
			}
		}
	}
	return w, h, mask, nil
}

// scaleMask blows a bitmap up by an integer factor, replicating pixels.
// The original art is tiny (8x8 class); gameplay sprites use scale 3.
func scaleMask(w, h int, mask []bool, scale int) (int, int, []bool) {
	if scale <= 1 {
		return w, h, mask
	}
	sw, sh := w*scale, h*scale
	scaled := make([]bool, sw*sh)
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			scaled[y*sw+x] = mask[(y/scale)*w+(x/scale)]
		}
	}
	return sw, sh, scaled
}
