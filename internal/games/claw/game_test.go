package claw

import (
	"strings"
	"testing"

	"github.com/blahos/funfair/internal/core"
)

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "claw" {
		t.Errorf("ID should be 'claw', got %s", g.ID())
	}
	if g.Title() != "Claw Machine" {
		t.Errorf("Title should be 'Claw Machine', got %s", g.Title())
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})

	if g.machine == nil {
		t.Fatal("Reset should build the machine")
	}
	if g.machine.State() != StateIdle {
		t.Errorf("Fresh game should be Idle, got %s", g.machine.State())
	}
	for i, sp := range g.toySprites {
		if sp == nil {
			t.Errorf("Toy sprite %d not built", i)
		}
	}
	if g.holeSprite == nil || g.banner == nil {
		t.Error("Hole and banner sprites should be built at Reset")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	g.machine.InsertToken()

	in := core.NewInputFrame()
	in.Press(core.ActionPause)
	g.Step(in, testDT)
	if !g.State().Paused {
		t.Fatal("Pause press should pause the game")
	}

	// While paused, the simulation must not advance.
	before := g.machine.Snapshot()
	in.Clear()
	in.Press(core.ActionLower)
	g.Step(in, testDT)
	if g.machine.Snapshot() != before {
		t.Error("Paused game should ignore simulation input")
	}

	in.Clear()
	in.Press(core.ActionPause)
	g.Step(in, testDT)
	if g.State().Paused {
		t.Error("Second pause press should resume")
	}
}

func TestGameScore(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	g.machine.collected = 3

	if got := g.State().Score; got != 3 {
		t.Errorf("Score should mirror collected prizes, got %d", got)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if len(out) == 0 {
		t.Fatal("Rendered screen should not be empty")
	}
	if !strings.Contains(out, "PRIZES: 0") {
		t.Error("HUD should show the prize counter")
	}
	if !strings.Contains(out, "TOKEN") {
		t.Error("Token slot label should be drawn")
	}
}
