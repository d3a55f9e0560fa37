package claw

import (
	"fmt"

	"github.com/blahos/funfair/internal/config"
	"github.com/blahos/funfair/internal/core"
	"github.com/blahos/funfair/internal/registry"
	"github.com/blahos/funfair/internal/sprite"
)

var configPath string

// SetConfigPath sets a custom YAML config path, applied at next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the claw machine simulation to the platform Game interface.
type Game struct {
	machine *Machine
	cfg     core.RuntimeConfig
	tuning  config.ClawConfig

	toySprites [3]*sprite.Sprite
	holeSprite *sprite.Sprite
	banner     *sprite.Sprite

	pointer core.Vec2
	paused  bool
}

// New creates a new claw machine game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "claw"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Claw Machine"
}

// Reset initializes or restarts the game. Sprites are generated here,
// once, and only read afterwards.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.paused = false

	tuning, err := config.LoadClaw(configPath)
	if err != nil {
		tuning = config.DefaultClawConfig()
	}
	g.tuning = tuning
	g.machine = NewMachine(tuning, cfg.Seed)

	vp := core.Viewport{W: cfg.ScreenW, H: cfg.ScreenH}
	tw := vp.SpanW(tuning.Toys.Size)
	th := vp.SpanH(tuning.Toys.Size)
	g.toySprites[0] = sprite.Dots(tw, th, core.ColorMagenta, core.ColorBrightYellow)
	g.toySprites[1] = sprite.Stripes(tw, th, core.ColorBrightBlue, core.ColorBlue)
	g.toySprites[2] = sprite.Checks(tw, th, core.ColorCyan, core.ColorBlue)
	g.holeSprite = sprite.Ring(vp.SpanW(tuning.Hole.Radius*2), vp.SpanH(tuning.Hole.Radius*2), core.ColorGray, core.ColorWhite)
	g.banner = sprite.Banner(44,
		"CLAW MACHINE\nCLICK TOKEN SLOT TO START\nA/D MOVE  W RAISE  S LOWER/DROP\nCLICK PRIZE TO COLLECT",
		core.ColorGray, core.ColorBrightWhite)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.WasPressed(core.ActionPause) {
		g.paused = !g.paused
	}
	g.pointer = in.Pointer

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.machine.Update(in, dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.machine.Collected(),
		Paused: g.paused,
	}
}

// Render draws the current machine state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := dst.Viewport()
	m := g.machine

	g.drawCabinet(dst, vp)
	g.drawHole(dst, vp)
	g.drawPrize(dst, vp)
	g.drawTokenSlot(dst, vp)
	g.drawToys(dst, vp)
	g.drawRopeAndClaw(dst, vp)
	g.drawLamp(dst, vp)

	g.banner.Blit(dst, (dst.Width()-g.banner.W)/2, 0)
	dst.DrawTextColored(2, dst.Height()-1,
		fmt.Sprintf(" PRIZES: %d  STATE: %s ", m.Collected(), m.State()), core.ColorBrightWhite)

	// Pointer marker, since the terminal cursor is not tracked.
	px, py := vp.ToCell(g.pointer)
	dst.SetColored(px, py, '+', core.ColorBrightYellow)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - press P to resume ")
	}
}

func (g *Game) drawCabinet(dst *core.Screen, vp core.Viewport) {
	x0, y0 := vp.ToCell(core.Vec2{X: boxLeft, Y: boxTop})
	x1, y1 := vp.ToCell(core.Vec2{X: boxRight, Y: boxBottom})
	dst.DrawBoxOutline(x0, y0, x1-x0+1, y1-y0+1, core.ColorCyan)

	// Floor strip and top rail inside the glass.
	_, fy := vp.ToCell(core.Vec2{X: 0, Y: floorY})
	dst.DrawHLine(x0+1, fy, x1-x0-1, '═', core.ColorGray)
	dst.DrawHLine(x0+1, y0+1, x1-x0-1, '─', core.ColorBlue)
}

func (g *Game) drawHole(dst *core.Screen, vp core.Viewport) {
	cx, cy := vp.ToCell(g.machine.hole.Center)
	g.holeSprite.BlitCentered(dst, cx, cy)
}

func (g *Game) drawPrize(dst *core.Screen, vp core.Viewport) {
	m := g.machine
	cx, cy := vp.ToCell(m.prize.Area.Center)
	w := vp.SpanW(m.prize.Area.Size.X)
	h := vp.SpanH(m.prize.Area.Size.Y)

	frame := core.ColorBlue
	if m.prize.HasToy {
		// Pulse the frame while a collection click is awaited.
		if int(m.prizePulse*3)%2 == 0 {
			frame = core.ColorBrightYellow
		} else {
			frame = core.ColorYellow
		}
	}
	dst.DrawBoxOutline(cx-w/2, cy-h/2, w, h, frame)
	dst.DrawTextColored(cx-2, cy+h/2, "PRIZE", frame)

	if m.prize.HasToy && m.prize.ToyIndex >= 0 {
		g.toySprites[m.toys[m.prize.ToyIndex].Skin].BlitCentered(dst, cx, cy)
	}
}

func (g *Game) drawTokenSlot(dst *core.Screen, vp core.Viewport) {
	m := g.machine
	cx, cy := vp.ToCell(m.tokenSlot.Center)
	w := vp.SpanW(m.tokenSlot.Size.X)
	dst.FillRect(cx-w/2, cy, w, 1, '▬', core.ColorYellow)
	dst.DrawTextColored(cx-2, cy+1, "TOKEN", core.ColorYellow)
}

func (g *Game) drawToys(dst *core.Screen, vp core.Viewport) {
	for i := range g.machine.toys {
		t := &g.machine.toys[i]
		if !t.Active || t.InPrize {
			continue
		}
		cx, cy := vp.ToCell(t.Pos)
		g.toySprites[t.Skin].BlitCentered(dst, cx, cy)
	}
}

func (g *Game) drawRopeAndClaw(dst *core.Screen, vp core.Viewport) {
	m := g.machine
	pos := m.ClawPosition()
	ax, ay := vp.ToCell(m.claw.Anchor)
	cx, cy := vp.ToCell(pos)

	// Trolley on the rail, then the rope down to the claw body.
	dst.SetColored(ax, ay, '▣', core.ColorBlue)
	dst.DrawVLine(ax, ay+1, core.Max(cy-ay-1, 0), '│', core.ColorWhite)

	body := core.ColorBrightWhite
	if !m.claw.Open {
		body = core.ColorGray
	}
	dst.SetColored(cx, cy, '╦', body)
	if m.claw.Open {
		dst.SetColored(cx-1, cy+1, '╱', body)
		dst.SetColored(cx+1, cy+1, '╲', body)
	} else {
		dst.SetColored(cx-1, cy+1, '╲', body)
		dst.SetColored(cx+1, cy+1, '╱', body)
	}
}

func (g *Game) drawLamp(dst *core.Screen, vp core.Viewport) {
	m := g.machine
	lx, ly := vp.ToCell(core.Vec2{X: boxCenterX, Y: boxTop + 0.18})

	color := core.ColorGray
	switch m.lamp.Mode {
	case LampBlue:
		color = core.ColorBrightBlue
	case LampBlink:
		if m.lamp.Toggle {
			color = core.ColorBrightGreen
		} else {
			color = core.ColorBrightRed
		}
	}
	dst.SetColored(lx, ly, '◉', color)
}

// Register the game with the registry
func init() {
	registry.Register("claw", func() registry.Game {
		return New()
	})
}
