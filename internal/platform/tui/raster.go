package tui

import (
	"fmt"

	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/core"
	"github.com/AlessandroGCodeca/spaceinvadersgame/internal/sprites"
)

// Terminal layout. The playfield is quantized into the cell rows between the
// score header and the baseline footer.
const (
	minTermWidth  = 60
	minTermHeight = 20

	headerRows = 2 // score labels and values
	footerRows = 2 // green baseline and the lives row

	spriteRune   = '█'
	lifeRune     = '▀'
	baselineRune = '─'
)

// drawFrame rasterizes one simulation frame into the cell buffer. Playfield
// pixels map onto cells with a per-axis ceiling scale so the whole field
// always fits regardless of the terminal size.
func drawFrame(s *core.Screen, f core.Frame, atlas *sprites.Atlas) {
	s.Clear()
	drawHUD(s, f.HUD)

	if f.GameOver {
		mid := s.Height() / 2
		s.DrawTextCenteredColor(mid, "GAME OVER", core.ColorBrightGreen)
		s.DrawTextCentered(mid+2, "PRESS R TO RESTART")
		return
	}

	playH := s.Height() - headerRows - footerRows
	if playH < 1 || s.Width() < 1 || f.W < 1 || f.H < 1 {
		return
	}
	scaleX := ceilDiv(f.W, s.Width())
	scaleY := ceilDiv(f.H, playH)

	for _, cmd := range f.Sprites {
		drawSprite(s, atlas.Resolve(cmd.Name), cmd.X, cmd.Y, scaleX, scaleY)
	}
}

// drawSprite lights every cell touched by a set pixel of the sprite mask.
// Pixels outside the playfield are clipped.
func drawSprite(s *core.Screen, sp *sprites.Sprite, x, y, scaleX, scaleY int) {
	bottom := s.Height() - footerRows
	for py := 0; py < sp.H; py++ {
		vy := y + py
		if vy < 0 {
			continue
		}
		cy := headerRows + vy/scaleY
		if cy >= bottom {
			continue
		}
		for px := 0; px < sp.W; px++ {
			if !sp.At(px, py) {
				continue
			}
			vx := x + px
			if vx < 0 {
				continue
			}
			cx := vx / scaleX
			if cx >= s.Width() {
				continue
			}
			s.SetCell(cx, cy, spriteRune, sp.Color)
		}
	}
}

// drawHUD renders the cabinet chrome: score header, green baseline, and the
// lives/credit row.
func drawHUD(s *core.Screen, hud core.HUD) {
	s.DrawText(10, 0, "SCORE<1>   HI-SCORE   SCORE<2>")
	s.DrawText(12, 1, fmt.Sprintf("%04d        %04d", hud.Score, hud.HiScore))

	s.DrawHLineColor(0, s.Height()-2, s.Width(), baselineRune, core.ColorGreen)

	bottom := s.Height() - 1
	s.DrawText(2, bottom, fmt.Sprintf("%d", hud.Lives))

	credit := "CREDIT 00"
	creditX := s.Width() - len(credit) - 2
	for i := 0; i < hud.Lives-1; i++ {
		x := 4 + i*2
		if x >= creditX-1 {
			break
		}
		s.SetCell(x, bottom, lifeRune, core.ColorGreen)
	}
	s.DrawText(creditX, bottom, credit)
}

// drawTooSmall covers the frame with a resize notice.
func drawTooSmall(s *core.Screen, w, h int) {
	s.Clear()
	mid := s.Height() / 2
	s.DrawTextCentered(mid-1, "Terminal too small")
	s.DrawTextCentered(mid, fmt.Sprintf("Need at least %dx%d, have %dx%d",
		minTermWidth, minTermHeight, w, h))
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
