package sprite

import (
	"testing"

	"github.com/blahos/funfair/internal/core"
)

func TestGeneratorDimensions(t *testing.T) {
	for name, s := range map[string]*Sprite{
		"dots":    Dots(7, 4, core.ColorMagenta, core.ColorYellow),
		"stripes": Stripes(7, 4, core.ColorBlue, core.ColorCyan),
		"checks":  Checks(7, 4, core.ColorCyan, core.ColorBlue),
	} {
		if s.W != 7 || s.H != 4 {
			t.Errorf("%s: got %dx%d, want 7x4", name, s.W, s.H)
		}
		// Toy skins are fully opaque.
		for y := 0; y < s.H; y++ {
			for x := 0; x < s.W; x++ {
				if s.At(x, y).Rune == 0 {
					t.Errorf("%s: transparent cell at (%d, %d)", name, x, y)
				}
			}
		}
	}
}

func TestGeneratorsArePure(t *testing.T) {
	a := Dots(6, 3, core.ColorMagenta, core.ColorYellow)
	b := Dots(6, 3, core.ColorMagenta, core.ColorYellow)
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("Same parameters should produce the same sprite, cell (%d, %d) differs", x, y)
			}
		}
	}
}

func TestRingTransparencyAndHole(t *testing.T) {
	s := Ring(9, 9, core.ColorGray, core.ColorWhite)

	if s.At(0, 0).Rune != 0 {
		t.Error("Ring corners should be transparent")
	}
	center := s.At(4, 4)
	if center.Rune == 0 {
		t.Error("Ring center should be drawn")
	}
	if center.Color != core.ColorGray {
		t.Error("Ring center should use the inner color")
	}
	if edge := s.At(4, 0); edge.Rune != 0 && edge.Color != core.ColorWhite {
		t.Error("Ring rim should use the outer color")
	}
}

func TestBanner(t *testing.T) {
	s := Banner(20, "hello\nworld", core.ColorGray, core.ColorWhite)

	if s.W != 20 || s.H != 4 {
		t.Fatalf("Banner should be 20x4, got %dx%d", s.W, s.H)
	}
	if s.At(0, 0).Rune != '┌' || s.At(19, 3).Rune != '┘' {
		t.Error("Banner should be framed")
	}

	// Text is uppercased and centered on its row.
	found := false
	for x := 1; x < 19; x++ {
		if s.At(x, 1).Rune == 'H' {
			found = true
			break
		}
	}
	if !found {
		t.Error("Banner should contain the uppercased text")
	}
}

func TestBlitRespectsTransparency(t *testing.T) {
	dst := core.NewScreen(10, 10)
	dst.Set(0, 0, 'x')

	s := New(3, 3)
	s.Set(1, 1, core.Cell{Rune: '#', Color: core.ColorRed})
	s.Blit(dst, 0, 0)

	if got := dst.GetCell(0, 0).Rune; got != 'x' {
		t.Errorf("Transparent cell should not overwrite, got %q", got)
	}
	if got := dst.GetCell(1, 1).Rune; got != '#' {
		t.Errorf("Opaque cell should be drawn, got %q", got)
	}
}

func TestBlitClipsAtEdges(t *testing.T) {
	dst := core.NewScreen(4, 4)
	s := Checks(6, 6, core.ColorRed, core.ColorBlue)

	// Should not panic or wrap.
	s.Blit(dst, -3, -3)
	s.Blit(dst, 3, 3)
	s.BlitCentered(dst, 0, 0)
}
