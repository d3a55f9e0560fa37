// Package sprite generates small cell-buffer graphics procedurally.
// All generators are pure functions from parameters to a Sprite; games
// build their sprites once at Reset and blit them every frame, so none
// of this runs on the per-tick hot path.
package sprite

import (
	"strings"

	"github.com/blahos/funfair/internal/core"
)

// Sprite is an immutable rectangular patch of cells. Cells with a zero
// rune are transparent and skipped when blitting.
type Sprite struct {
	W, H  int
	cells []core.Cell
}

// New creates an empty (fully transparent) sprite.
func New(w, h int) *Sprite {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Sprite{W: w, H: h, cells: make([]core.Cell, w*h)}
}

// Set places a cell; out-of-bounds coordinates are ignored.
func (s *Sprite) Set(x, y int, c core.Cell) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return
	}
	s.cells[y*s.W+x] = c
}

// At returns the cell at (x, y), or a zero cell out of bounds.
func (s *Sprite) At(x, y int) core.Cell {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return core.Cell{}
	}
	return s.cells[y*s.W+x]
}

// Blit draws the sprite onto dst with its top-left corner at (x, y).
// Transparent cells leave the destination untouched.
func (s *Sprite) Blit(dst *core.Screen, x, y int) {
	for sy := 0; sy < s.H; sy++ {
		for sx := 0; sx < s.W; sx++ {
			c := s.cells[sy*s.W+sx]
			if c.Rune == 0 {
				continue
			}
			dst.SetCell(x+sx, y+sy, c)
		}
	}
}

// BlitCentered draws the sprite centered on the given cell.
func (s *Sprite) BlitCentered(dst *core.Screen, cx, cy int) {
	s.Blit(dst, cx-s.W/2, cy-s.H/2)
}

// Dots fills a w×h patch with a base color and a grid of dot accents.
func Dots(w, h int, base, accent core.Color) *Sprite {
	s := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := core.Cell{Rune: '▒', Color: base}
			if x%2 == 1 && y%2 == 1 {
				c = core.Cell{Rune: '●', Color: accent}
			}
			s.Set(x, y, c)
		}
	}
	return s
}

// Stripes fills a w×h patch with alternating vertical bands.
func Stripes(w, h int, bright, dim core.Color) *Sprite {
	s := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/2)%2 == 0 {
				s.Set(x, y, core.Cell{Rune: '█', Color: bright})
			} else {
				s.Set(x, y, core.Cell{Rune: '▓', Color: dim})
			}
		}
	}
	return s
}

// Checks fills a w×h patch with a checkerboard of two colors.
func Checks(w, h int, a, b core.Color) *Sprite {
	s := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				s.Set(x, y, core.Cell{Rune: '█', Color: a})
			} else {
				s.Set(x, y, core.Cell{Rune: '▓', Color: b})
			}
		}
	}
	return s
}

// Ring draws a circular ring with a darker interior, for the drop hole.
// The patch is w×h with the ellipse inscribed; cells outside the outer
// radius stay transparent.
func Ring(w, h int, inner, outer core.Color) *Sprite {
	s := New(w, h)
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	rx := float64(w) / 2
	ry := float64(h) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) - cx) / rx
			dy := (float64(y) - cy) / ry
			d2 := dx*dx + dy*dy
			switch {
			case d2 <= 0.30:
				s.Set(x, y, core.Cell{Rune: '░', Color: inner})
			case d2 <= 1.0:
				s.Set(x, y, core.Cell{Rune: '▓', Color: outer})
			}
		}
	}
	return s
}

// Banner renders text lines inside a framed box of the given width.
// Lines are split on '\n', uppercased, clipped to fit, and centered.
func Banner(w int, text string, frame, ink core.Color) *Sprite {
	lines := strings.Split(strings.ToUpper(text), "\n")
	h := len(lines) + 2
	s := New(w, h)

	s.Set(0, 0, core.Cell{Rune: '┌', Color: frame})
	s.Set(w-1, 0, core.Cell{Rune: '┐', Color: frame})
	s.Set(0, h-1, core.Cell{Rune: '└', Color: frame})
	s.Set(w-1, h-1, core.Cell{Rune: '┘', Color: frame})
	for x := 1; x < w-1; x++ {
		s.Set(x, 0, core.Cell{Rune: '─', Color: frame})
		s.Set(x, h-1, core.Cell{Rune: '─', Color: frame})
	}
	for y := 1; y < h-1; y++ {
		s.Set(0, y, core.Cell{Rune: '│', Color: frame})
		s.Set(w-1, y, core.Cell{Rune: '│', Color: frame})
		for x := 1; x < w-1; x++ {
			s.Set(x, y, core.Cell{Rune: ' ', Color: core.ColorDefault})
		}
	}

	for i, line := range lines {
		if len(line) > w-2 {
			line = line[:w-2]
		}
		x := (w - len(line)) / 2
		for j, r := range line {
			s.Set(x+j, i+1, core.Cell{Rune: r, Color: ink})
		}
	}
	return s
}
