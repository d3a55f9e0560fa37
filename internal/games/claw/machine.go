// Package claw implements a claw/crane machine simulation.
// Insert a token, steer the claw over a toy, drop the claw to grab it,
// then carry the toy over the hole and release it to win a prize.
package claw

import (
	"math/rand"

	"github.com/blahos/funfair/internal/config"
	"github.com/blahos/funfair/internal/core"
)

// State identifies the machine's gameplay phase.
type State int

const (
	StateIdle State = iota
	StateActiveNoToy
	StateActiveCarrying
	StateToyFalling
	StatePrizeWaiting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActiveNoToy:
		return "ActiveNoToy"
	case StateActiveCarrying:
		return "ActiveCarrying"
	case StateToyFalling:
		return "ToyFalling"
	case StatePrizeWaiting:
		return "PrizeWaiting"
	default:
		return "Unknown"
	}
}

// LampMode is the cabinet lamp's display mode.
type LampMode int

const (
	LampOff LampMode = iota
	LampBlue
	LampBlink
)

// Lamp is the cosmetic cabinet lamp. While blinking, a timer accumulates
// and flips the toggle each interval; it has no gameplay effect.
type Lamp struct {
	Mode   LampMode
	Timer  float64
	Toggle bool
}

// Motion is the claw's vertical drive. Exactly one variant holds at a
// time, so "lowering and raising simultaneously" cannot be represented.
type Motion int

const (
	MotionIdle Motion = iota
	MotionLowering
	MotionRaising
)

// Claw is the grab rig: a horizontally free anchor on the top rail with
// a rope of bounded length hanging from it.
type Claw struct {
	Anchor core.Vec2
	Rope   float64
	Open   bool
	Motion Motion
}

// Toy is one pool entry. The flags are mutually exclusive except that
// Active may combine with any of them.
type Toy struct {
	Pos      core.Vec2
	Velocity core.Vec2
	Skin     int // Index into the toy sprite set
	Active   bool
	Grabbed  bool
	Falling  bool
	InPrize  bool
}

// Hole is the drop target on the floor.
type Hole struct {
	Center core.Vec2
	Radius float64
}

// PrizeCompartment holds a won toy until the player clicks to collect.
// ToyIndex is valid only while HasToy is true.
type PrizeCompartment struct {
	Area     core.Box
	HasToy   bool
	ToyIndex int
}

// Cabinet layout in world (NDC) coordinates.
const (
	boxCenterX = 0.0
	boxCenterY = 0.12
	boxSizeX   = 1.26
	boxSizeY   = 1.06

	boxLeft   = boxCenterX - boxSizeX*0.5
	boxRight  = boxCenterX + boxSizeX*0.5
	boxTop    = boxCenterY + boxSizeY*0.5
	boxBottom = boxCenterY - boxSizeY*0.5

	floorY       = boxBottom + 0.035
	anchorStartY = boxTop + 0.08

	// Horizontal travel margin inside the glass box.
	travelMargin = 0.10

	// The clickable prize area is enlarged beyond its visual footprint
	// to reduce missed collection clicks.
	prizeClickScale = 1.40

	// Vertical slack below the hole's center line within which a falling
	// toy may still commit to the hole.
	holeEntrySlack = 0.02
)

// ToyCount is the size of the toy pool.
const ToyCount = 4

// spawnSlots are the rotating floor positions toys respawn into.
var spawnSlots = [6]float64{-0.58, -0.32, -0.06, 0.16, 0.36, 0.56}

// NoToy is the index sentinel for "no toy selected".
const NoToy = -1

// Machine owns the complete claw machine simulation state. It is a plain
// value-world struct mutated only through Update and the trigger methods,
// so multiple independent instances can run side by side in tests.
type Machine struct {
	cfg config.ClawConfig

	state     State
	lamp      Lamp
	claw      Claw
	hole      Hole
	prize     PrizeCompartment
	tokenSlot core.Box
	toys      [ToyCount]Toy

	nextSpawnSlot int
	grabbedToy    int
	fallingToy    int

	prizePulse float64
	collected  int

	rng *rand.Rand
}

// NewMachine builds a machine with the given tuning and RNG seed.
// The seed only affects the initial toy placement.
func NewMachine(cfg config.ClawConfig, seed int64) *Machine {
	m := &Machine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	m.configureLayout()
	m.spawnToys()
	m.resetRig()
	return m
}

// configureLayout places the static cabinet fixtures.
func (m *Machine) configureLayout() {
	m.hole = Hole{
		Center: core.Vec2{X: boxRight - 0.20, Y: floorY + 0.11},
		Radius: m.cfg.Hole.Radius,
	}
	m.prize = PrizeCompartment{
		Area: core.Box{
			Center: core.Vec2{X: boxRight - 0.10, Y: boxBottom - 0.16},
			Size:   core.Vec2{X: 0.32, Y: 0.16},
		},
		ToyIndex: NoToy,
	}
	m.tokenSlot = core.Box{
		Center: core.Vec2{X: boxLeft + 0.30, Y: boxBottom - 0.14},
		Size:   core.Vec2{X: 0.22, Y: 0.08},
	}
}

// spawnToys places the whole pool on consecutive rotating slots starting
// at a seeded random slot.
func (m *Machine) spawnToys() {
	start := m.rng.Intn(len(spawnSlots))
	for i := range m.toys {
		slot := (start + i) % len(spawnSlots)
		m.toys[i] = Toy{
			Pos:    core.Vec2{X: spawnSlots[slot], Y: floorY + m.cfg.Toys.Size*0.5},
			Skin:   i % 3,
			Active: true,
		}
	}
	m.nextSpawnSlot = (start + ToyCount) % len(spawnSlots)
}

// resetRig returns the machine to Idle with the claw parked. Toy and
// prize state is untouched; callers clear those separately when needed.
func (m *Machine) resetRig() {
	m.state = StateIdle
	m.lamp = Lamp{}
	m.claw = Claw{
		Anchor: core.Vec2{X: 0, Y: anchorStartY},
		Rope:   m.cfg.Claw.MinRope,
	}
	m.grabbedToy = NoToy
	m.fallingToy = NoToy
}

// State returns the current gameplay phase.
func (m *Machine) State() State { return m.state }

// Collected returns the number of prizes collected this session.
func (m *Machine) Collected() int { return m.collected }

// ClawPosition returns the claw body center.
func (m *Machine) ClawPosition() core.Vec2 {
	return core.Vec2{X: m.claw.Anchor.X, Y: m.claw.Anchor.Y - m.claw.Rope}
}

// GrabPoint returns the point a carried toy is pinned to, slightly below
// the claw body center.
func (m *Machine) GrabPoint() core.Vec2 {
	pos := m.ClawPosition()
	return core.Vec2{X: pos.X, Y: pos.Y - m.cfg.Claw.Height*0.35}
}

// prizeClickArea is the enlarged collection hit box.
func (m *Machine) prizeClickArea() core.Box {
	return m.prize.Area.Scaled(prizeClickScale)
}

// InsertToken starts a play if the machine is idle: lamp on, claw open.
func (m *Machine) InsertToken() {
	if m.state != StateIdle {
		return
	}
	m.lamp.Mode = LampBlue
	m.claw.Open = true
	m.state = StateActiveNoToy
}

// StartLowering begins the automatic descent. No-op if the claw is
// already driving either way.
func (m *Machine) StartLowering() {
	if m.claw.Motion != MotionIdle {
		return
	}
	m.claw.Motion = MotionLowering
}

// attachToy grabs the toy at idx: the claw closes and auto-raises.
func (m *Machine) attachToy(idx int) {
	m.grabbedToy = idx
	m.toys[idx].Grabbed = true
	m.toys[idx].Falling = false
	m.toys[idx].Velocity = core.Vec2{}
	m.claw.Open = false
	m.claw.Motion = MotionRaising
	m.state = StateActiveCarrying
}

// Release drops the carried toy from the grab point with zero velocity.
func (m *Machine) Release() {
	if m.grabbedToy == NoToy {
		return
	}
	t := &m.toys[m.grabbedToy]
	t.Grabbed = false
	t.Falling = true
	t.Velocity = core.Vec2{}
	t.Pos = m.GrabPoint()
	m.fallingToy = m.grabbedToy
	m.grabbedToy = NoToy
	m.claw.Open = true
	m.state = StateToyFalling
}

// CollectPrize hands out a pending prize and fully resets the machine.
// Idempotent: with no pending prize (or a cleared toy index) it is a
// no-op, so double-fired clicks leave state unchanged.
func (m *Machine) CollectPrize() {
	if !m.prize.HasToy || m.prize.ToyIndex < 0 {
		return
	}
	idx := m.prize.ToyIndex
	t := &m.toys[idx]
	t.InPrize = false
	t.Falling = false
	t.Grabbed = false
	t.Active = true
	// Respawn at the next rotating slot to keep the machine playable.
	t.Pos = core.Vec2{X: spawnSlots[m.nextSpawnSlot], Y: floorY + m.cfg.Toys.Size*0.5}
	t.Velocity = core.Vec2{}
	m.nextSpawnSlot = (m.nextSpawnSlot + 1) % len(spawnSlots)

	m.prize.HasToy = false
	m.prize.ToyIndex = NoToy
	m.collected++
	m.resetRig()
}

// HandleClick routes a pointer press. The prize hit test runs whenever a
// prize is pending, regardless of phase: a click landing between hole
// entry and the PrizeWaiting transition must not be dropped.
func (m *Machine) HandleClick(p core.Vec2) {
	if m.prize.HasToy && m.prizeClickArea().Contains(p) {
		m.CollectPrize()
		return
	}
	if m.tokenSlot.Contains(p) {
		m.InsertToken()
	}
}
