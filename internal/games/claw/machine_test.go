package claw

import (
	"testing"

	"github.com/blahos/funfair/internal/config"
	"github.com/blahos/funfair/internal/core"
)

const testDT = 1.0 / 60.0

func newTestMachine(seed int64) *Machine {
	return NewMachine(config.DefaultClawConfig(), seed)
}

// tick advances the machine with an empty input frame.
func tick(m *Machine, n int, dt float64) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		m.Update(in, dt)
	}
}

// countGrabbedOrFalling counts toys that are grabbed or falling.
func countGrabbedOrFalling(m *Machine) int {
	n := 0
	for i := range m.toys {
		if m.toys[i].Grabbed || m.toys[i].Falling {
			n++
		}
	}
	return n
}

func TestInitialState(t *testing.T) {
	m := newTestMachine(42)

	if m.State() != StateIdle {
		t.Errorf("New machine should be Idle, got %s", m.State())
	}
	if m.lamp.Mode != LampOff {
		t.Errorf("Lamp should start off, got %v", m.lamp.Mode)
	}
	if m.claw.Open {
		t.Error("Claw should start closed")
	}
	if m.claw.Rope != m.cfg.Claw.MinRope {
		t.Errorf("Rope should start at min %v, got %v", m.cfg.Claw.MinRope, m.claw.Rope)
	}
	for i := range m.toys {
		if !m.toys[i].Active {
			t.Errorf("Toy %d should be active on spawn", i)
		}
		if m.toys[i].Grabbed || m.toys[i].Falling || m.toys[i].InPrize {
			t.Errorf("Toy %d should have no transient flags on spawn", i)
		}
	}
}

func TestInsertToken(t *testing.T) {
	m := newTestMachine(42)

	m.InsertToken()
	if m.State() != StateActiveNoToy {
		t.Errorf("Expected ActiveNoToy after token, got %s", m.State())
	}
	if m.lamp.Mode != LampBlue {
		t.Errorf("Lamp should be blue after token, got %v", m.lamp.Mode)
	}
	if !m.claw.Open {
		t.Error("Claw should open after token")
	}

	// A second token while active is a no-op.
	m.state = StateActiveCarrying
	m.InsertToken()
	if m.State() != StateActiveCarrying {
		t.Errorf("Token during play should be ignored, got %s", m.State())
	}
}

func TestTokenSlotClick(t *testing.T) {
	m := newTestMachine(42)

	// A click outside both hot zones does nothing.
	m.HandleClick(core.Vec2{X: 0, Y: 0.9})
	if m.State() != StateIdle {
		t.Errorf("Stray click should not start a play, got %s", m.State())
	}

	m.HandleClick(m.tokenSlot.Center)
	if m.State() != StateActiveNoToy {
		t.Errorf("Token slot click should start a play, got %s", m.State())
	}
}

// The single-toy invariant: no input sequence may put more than one toy
// in a grabbed or falling state.
func TestSingleCarriedToyInvariant(t *testing.T) {
	m := newTestMachine(7)
	m.InsertToken()

	in := core.NewInputFrame()
	for i := 0; i < 3000; i++ {
		in.Clear()
		// Sweep the claw back and forth, hammering the drop trigger.
		if (i/120)%2 == 0 {
			in.Hold(core.ActionLeft)
		} else {
			in.Hold(core.ActionRight)
		}
		if i%17 == 0 {
			in.Press(core.ActionLower)
		}
		if i%97 == 0 {
			in.AddClick(m.prize.Area.Center)
		}
		m.Update(in, testDT)

		if n := countGrabbedOrFalling(m); n > 1 {
			t.Fatalf("Tick %d: %d toys grabbed/falling, want at most 1 (state %s)",
				i, n, m.State())
		}
	}
}

// The rope stays within [MinRope, MaxRope] for any dt, including zero and
// a pathological multi-second stall.
func TestRopeBounds(t *testing.T) {
	for _, dt := range []float64{0, 1e-6, testDT, 0.25, 5.0} {
		m := newTestMachine(3)
		m.InsertToken()

		in := core.NewInputFrame()
		for i := 0; i < 200; i++ {
			in.Clear()
			switch (i / 20) % 3 {
			case 0:
				in.Press(core.ActionLower)
			case 1:
				in.Hold(core.ActionLower)
			case 2:
				in.Hold(core.ActionRaise)
			}
			m.Update(in, dt)

			if m.claw.Rope < m.cfg.Claw.MinRope || m.claw.Rope > m.cfg.Claw.MaxRope {
				t.Fatalf("dt=%v tick %d: rope %v out of [%v, %v]",
					dt, i, m.claw.Rope, m.cfg.Claw.MinRope, m.cfg.Claw.MaxRope)
			}
		}
	}
}

func TestZeroDTIsNoOp(t *testing.T) {
	m := newTestMachine(11)
	m.InsertToken()
	tick(m, 5, testDT)

	before := m.Snapshot()
	tick(m, 10, 0)
	after := m.Snapshot()

	if before != after {
		t.Error("Updates with dt=0 should not change observable state")
	}
}

func TestLoweringReversesOnFloor(t *testing.T) {
	m := newTestMachine(5)
	m.InsertToken()
	// Park the claw away from every toy so the descent reaches the floor.
	m.claw.Anchor.X = boxLeft + travelMargin
	for i := range m.toys {
		m.toys[i].Pos.X = boxRight - 0.1
	}

	m.StartLowering()
	tick(m, 600, testDT)

	if m.State() != StateActiveNoToy {
		t.Errorf("Empty descent should return to ActiveNoToy, got %s", m.State())
	}
	if m.claw.Motion != MotionIdle {
		t.Errorf("Drive should be idle after full cycle, got %v", m.claw.Motion)
	}
	if m.claw.Rope != m.cfg.Claw.MinRope {
		t.Errorf("Rope should be parked at min, got %v", m.claw.Rope)
	}
}

func TestGrabOverToy(t *testing.T) {
	m := newTestMachine(5)
	m.InsertToken()
	m.claw.Anchor.X = m.toys[0].Pos.X

	m.StartLowering()
	tick(m, 600, testDT)

	if m.State() != StateActiveCarrying {
		t.Fatalf("Descent over a toy should grab it, got %s", m.State())
	}
	if m.grabbedToy != 0 {
		t.Errorf("Expected toy 0 grabbed, got %d", m.grabbedToy)
	}
	if m.claw.Open {
		t.Error("Claw should be closed while carrying")
	}
	// The carried toy tracks the grab point.
	if m.toys[0].Pos != m.GrabPoint() {
		t.Errorf("Carried toy at %v, want grab point %v", m.toys[0].Pos, m.GrabPoint())
	}
}

func TestReleaseMissesAndLands(t *testing.T) {
	m := newTestMachine(5)
	m.InsertToken()
	m.claw.Anchor.X = m.toys[0].Pos.X
	m.StartLowering()
	tick(m, 600, testDT)
	if m.State() != StateActiveCarrying {
		t.Fatal("Setup failed: no toy carried")
	}

	// Drop far from the hole.
	m.claw.Anchor.X = boxLeft + travelMargin
	m.toys[0].Pos = m.GrabPoint()
	m.Release()
	if m.State() != StateToyFalling {
		t.Fatalf("Expected ToyFalling after release, got %s", m.State())
	}

	tick(m, 600, testDT)
	if m.State() != StateActiveNoToy {
		t.Errorf("Missed drop should land and resume, got %s", m.State())
	}
	wantY := floorY + m.cfg.Toys.Size*0.5
	if m.toys[0].Pos.Y != wantY {
		t.Errorf("Landed toy at y=%v, want %v", m.toys[0].Pos.Y, wantY)
	}
	if m.toys[0].Falling {
		t.Error("Landed toy should not be falling")
	}
}

func TestFullPrizeCycle(t *testing.T) {
	m := newTestMachine(5)

	m.HandleClick(m.tokenSlot.Center)
	if m.State() != StateActiveNoToy {
		t.Fatalf("Token click failed, state %s", m.State())
	}

	// Grab toy 0.
	m.claw.Anchor.X = m.toys[0].Pos.X
	m.StartLowering()
	tick(m, 600, testDT)
	if m.State() != StateActiveCarrying {
		t.Fatalf("Grab failed, state %s", m.State())
	}

	// Carry over the hole and release.
	m.claw.Anchor.X = m.hole.Center.X
	m.toys[0].Pos = m.GrabPoint()
	m.Release()
	tick(m, 600, testDT)

	if m.State() != StatePrizeWaiting {
		t.Fatalf("Drop over hole should reach PrizeWaiting, got %s", m.State())
	}
	if !m.prize.HasToy || m.prize.ToyIndex != 0 {
		t.Fatalf("Prize should hold toy 0, got hasToy=%v idx=%d", m.prize.HasToy, m.prize.ToyIndex)
	}
	if m.lamp.Mode != LampBlink {
		t.Errorf("Lamp should blink while prize waits, got %v", m.lamp.Mode)
	}
	if !m.toys[0].InPrize {
		t.Error("Won toy should be flagged InPrize")
	}

	// Collect via click.
	m.HandleClick(m.prize.Area.Center)
	if m.Collected() != 1 {
		t.Errorf("Collected should be 1, got %d", m.Collected())
	}
	if m.State() != StateIdle {
		t.Errorf("Machine should reset to Idle after collection, got %s", m.State())
	}
	if m.lamp.Mode != LampOff {
		t.Errorf("Lamp should be off after reset, got %v", m.lamp.Mode)
	}
	if m.prize.HasToy || m.prize.ToyIndex != NoToy {
		t.Error("Prize compartment should be empty after collection")
	}
	if m.toys[0].InPrize {
		t.Error("Collected toy should respawn, not stay InPrize")
	}
	if !m.toys[0].Active {
		t.Error("Collected toy should respawn active")
	}
}

func TestCollectPrizeIdempotent(t *testing.T) {
	m := newTestMachine(5)

	// No pending prize: a stray collect is a no-op.
	m.CollectPrize()
	if m.Collected() != 0 {
		t.Errorf("Collect with no prize should not score, got %d", m.Collected())
	}

	// Set up a pending prize directly.
	m.toys[1].InPrize = true
	m.toys[1].Pos = m.prize.Area.Center
	m.prize.HasToy = true
	m.prize.ToyIndex = 1
	m.state = StatePrizeWaiting

	m.CollectPrize()
	snap := m.Snapshot()
	if m.Collected() != 1 {
		t.Fatalf("Collected should be 1, got %d", m.Collected())
	}

	// Double-fired clicks change nothing.
	m.CollectPrize()
	m.HandleClick(m.prize.Area.Center)
	if m.Snapshot() != snap {
		t.Error("Repeated collection should leave state unchanged")
	}
}

func TestPrizeClickUsesEnlargedArea(t *testing.T) {
	m := newTestMachine(5)
	m.toys[2].InPrize = true
	m.prize.HasToy = true
	m.prize.ToyIndex = 2
	m.state = StatePrizeWaiting

	// Just outside the visual box but inside the enlarged hit box.
	edge := core.Vec2{
		X: m.prize.Area.Center.X + m.prize.Area.Size.X*0.5*(prizeClickScale-0.05),
		Y: m.prize.Area.Center.Y,
	}
	if m.prize.Area.Contains(edge) {
		t.Fatal("Test point should be outside the visual area")
	}
	m.HandleClick(edge)
	if m.Collected() != 1 {
		t.Error("Click in the enlarged area should collect the prize")
	}
}

func TestLampBlink(t *testing.T) {
	m := newTestMachine(5)
	m.lamp.Mode = LampBlink

	interval := m.cfg.Lamp.BlinkInterval
	start := m.lamp.Toggle
	tick(m, int(interval/testDT)+2, testDT)
	if m.lamp.Toggle == start {
		t.Error("Blink toggle should flip after one interval")
	}
}

func TestTravelBounds(t *testing.T) {
	m := newTestMachine(5)
	m.InsertToken()

	in := core.NewInputFrame()
	in.Hold(core.ActionLeft)
	for i := 0; i < 300; i++ {
		m.Update(in, testDT)
	}
	if m.claw.Anchor.X < boxLeft+travelMargin {
		t.Errorf("Anchor %v escaped left bound %v", m.claw.Anchor.X, boxLeft+travelMargin)
	}

	in.Clear()
	in.Hold(core.ActionRight)
	for i := 0; i < 300; i++ {
		m.Update(in, testDT)
	}
	if m.claw.Anchor.X > boxRight-travelMargin {
		t.Errorf("Anchor %v escaped right bound %v", m.claw.Anchor.X, boxRight-travelMargin)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		m := newTestMachine(12345)
		in := core.NewInputFrame()
		for i := 0; i < 500; i++ {
			in.Clear()
			if i == 10 {
				in.AddClick(m.tokenSlot.Center)
			}
			if i > 20 && i < 80 {
				in.Hold(core.ActionRight)
			}
			if i == 100 {
				in.Press(core.ActionLower)
			}
			m.Update(in, testDT)
		}
		return m.Snapshot()
	}

	if run() != run() {
		t.Error("Identical seed and input sequence should produce identical snapshots")
	}
}

func TestSeededToyPlacementVaries(t *testing.T) {
	base := newTestMachine(0)
	for seed := int64(1); seed <= 16; seed++ {
		m := newTestMachine(seed)
		for i := range m.toys {
			if m.toys[i].Pos != base.toys[i].Pos {
				return
			}
		}
	}
	t.Error("Toy placement should vary across seeds")
}
