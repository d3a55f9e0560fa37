package coaster

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

// Game adapts the rollercoaster simulation to the platform Game interface.
type Game struct {
	ride   *Ride
	track  *Track
	cfg    core.RuntimeConfig
	tuning config.CoasterConfig

	banner *sprite.Sprite

	pointer core.Vec2
	paused  bool
}

// New creates a new rollercoaster game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "coaster"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rollercoaster"
}

// Reset initializes or restarts the game. The track and banner are built
// here, once, and only read afterwards.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.paused = false

	tuning, err := config.LoadCoaster(configPath)
	if err != nil {
		tuning = config.DefaultCoasterConfig()
	}
	g.tuning = tuning
	g.track = NewTrack()
	g.ride = NewRide(tuning, g.track)

	g.banner = sprite.Banner(48,
		"ROLLERCOASTER\nN SEAT A PASSENGER  CLICK SEAT TO STRAP\nENTER START RIDE  CLICK A RIDER IF SICK",
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

	g.ride.Update(in, dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.ride.Delivered(),
		Paused: g.paused,
	}
}

// Render draws the track, the car, and the seat row to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := dst.Viewport()

	g.drawTrack(dst, vp)
	g.drawStation(dst, vp)
	g.drawCar(dst, vp)

	g.banner.Blit(dst, (dst.Width()-g.banner.W)/2, 0)
	g.drawHUD(dst)

	px, py := vp.ToCell(g.pointer)
	dst.SetColored(px, py, '+', core.ColorBrightYellow)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED - press P to resume ")
	}
}

func (g *Game) drawTrack(dst *core.Screen, vp core.Viewport) {
	for _, p := range g.track.Points() {
		x, y := vp.ToCell(p)
		dst.SetColored(x, y, '·', core.ColorGray)
	}
}

func (g *Game) drawStation(dst *core.Screen, vp core.Viewport) {
	s := g.track.Station()
	x, y := vp.ToCell(s)
	dst.DrawHLine(x-2, y+1, 14, '▀', core.ColorBlue)
	dst.DrawTextColored(x-2, y+2, "STATION", core.ColorBlue)
}

func (g *Game) drawCar(dst *core.Screen, vp core.Viewport) {
	pos, _ := g.ride.Car()
	cx, cy := vp.ToCell(pos)
	dst.SetColored(cx, cy, '►', core.ColorBrightCyan)

	for i := 0; i < SeatCount; i++ {
		sx, sy := vp.ToCell(g.ride.SeatPosition(i))
		seat := g.ride.seats[i]

		glyph, color := '‗', core.ColorGray
		switch {
		case seat.Sick:
			glyph, color = '@', core.ColorBrightRed
		case seat.Strapped:
			glyph, color = '●', core.ColorBrightGreen
		case seat.Occupied:
			glyph, color = 'o', core.ColorBrightYellow
		}
		if g.ride.RemovalMode() && seat.Occupied {
			color = core.ColorBrightMagenta
		}
		dst.SetColored(sx, sy, glyph, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	status := g.ride.State().String()
	if g.ride.RemovalMode() {
		status = "Unloading - click riders"
	}
	dst.DrawTextColored(2, dst.Height()-1,
		fmt.Sprintf(" DELIVERED: %d  RIDERS: %d  %s ",
			g.ride.Delivered(), g.ride.occupiedCount(), status),
		core.ColorBrightWhite)
}

// Register the game with the registry
func init() {
	registry.Register("coaster", func() registry.Game {
		return New()
	})
}
