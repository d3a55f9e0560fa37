package claw

import (
	"math"

	"github.com/blahos/funfair/internal/core"
)

// Update advances the machine by dt seconds given this tick's input.
// All integrations clamp, so any dt >= 0 is safe, including 0 and very
// large values after a stall.
func (m *Machine) Update(in core.InputFrame, dt float64) {
	// Latched clicks fired between ticks are applied before any state
	// advance, mirroring an input-callback model.
	for _, c := range in.Clicks {
		m.HandleClick(c.Pos)
	}

	m.updateLamp(dt)
	m.updateClawMotion(in, dt)

	// Lower is edge-triggered: descend when empty-handed, drop when
	// carrying. Both require the vertical drive to be idle.
	if in.WasPressed(core.ActionLower) && m.claw.Motion == MotionIdle {
		switch m.state {
		case StateActiveNoToy:
			m.StartLowering()
		case StateActiveCarrying:
			m.Release()
		}
	}

	// Manual rope nudging, only while gameplay is active and the drive
	// is idle.
	if (m.state == StateActiveNoToy || m.state == StateActiveCarrying) && m.claw.Motion == MotionIdle {
		if in.IsHeld(core.ActionLower) {
			m.claw.Rope = math.Min(m.claw.Rope+m.cfg.Claw.LowerSpeed*dt, m.cfg.Claw.MaxRope)
		}
		if in.IsHeld(core.ActionRaise) {
			m.claw.Rope = math.Max(m.claw.Rope-m.cfg.Claw.RaiseSpeed*dt, m.cfg.Claw.MinRope)
		}
	}

	// A carried toy is pinned to the grab point every tick.
	if m.grabbedToy != NoToy {
		m.toys[m.grabbedToy].Pos = m.GrabPoint()
	}

	m.updateFallingToy(dt)

	// Cosmetic pulse while a prize is waiting.
	if m.prize.HasToy {
		m.prizePulse += dt
	} else {
		m.prizePulse = 0
	}
}

// updateLamp advances the blink timer; purely cosmetic.
func (m *Machine) updateLamp(dt float64) {
	if m.lamp.Mode != LampBlink {
		return
	}
	m.lamp.Timer += dt
	if m.lamp.Timer >= m.cfg.Lamp.BlinkInterval {
		m.lamp.Timer = 0
		m.lamp.Toggle = !m.lamp.Toggle
	}
}

// updateClawMotion handles horizontal travel and the automatic
// lower/raise drive, including the grab scan during descent.
func (m *Machine) updateClawMotion(in core.InputFrame, dt float64) {
	// Horizontal movement is continuous while a play is active.
	if m.state == StateActiveNoToy || m.state == StateActiveCarrying || m.state == StateToyFalling {
		dir := 0.0
		if in.IsHeld(core.ActionLeft) {
			dir -= 1
		}
		if in.IsHeld(core.ActionRight) {
			dir += 1
		}
		m.claw.Anchor.X += dir * m.cfg.Claw.MoveSpeed * dt
		m.claw.Anchor.X = core.ClampF(m.claw.Anchor.X, boxLeft+travelMargin, boxRight-travelMargin)
	}

	switch m.claw.Motion {
	case MotionLowering:
		m.claw.Rope = math.Min(m.claw.Rope+m.cfg.Claw.LowerSpeed*dt, m.cfg.Claw.MaxRope)
		pos := m.ClawPosition()

		// Floor contact with nothing grabbed reverses to ascent.
		if pos.Y-m.cfg.Claw.Height*0.5 <= floorY {
			m.claw.Motion = MotionRaising
		}

		// Grab the first overlapping toy in pool order. The test is a
		// box overlap of half extents plus a tolerance fraction.
		tolX := m.cfg.Claw.Width*0.5 + m.cfg.Toys.Size*m.cfg.Toys.GrabTolerance
		tolY := m.cfg.Claw.Height*0.5 + m.cfg.Toys.Size*m.cfg.Toys.GrabTolerance
		for i := range m.toys {
			t := &m.toys[i]
			if !t.Active || t.Falling || t.InPrize {
				continue
			}
			if math.Abs(pos.X-t.Pos.X) <= tolX && math.Abs(pos.Y-t.Pos.Y) <= tolY {
				m.attachToy(i)
				break
			}
		}

	case MotionRaising:
		m.claw.Rope -= m.cfg.Claw.RaiseSpeed * dt
		if m.claw.Rope <= m.cfg.Claw.MinRope {
			m.claw.Rope = m.cfg.Claw.MinRope
			m.claw.Motion = MotionIdle
		}
	}
}

// updateFallingToy integrates the released toy and resolves hole entry
// or floor landing.
func (m *Machine) updateFallingToy(dt float64) {
	if m.fallingToy == NoToy {
		return
	}
	t := &m.toys[m.fallingToy]
	if !t.Falling {
		m.fallingToy = NoToy
		return
	}

	t.Velocity.Y += m.cfg.Toys.Gravity * dt
	t.Pos.Y += t.Velocity.Y * dt

	// Hole entry: close to the center and already past its line.
	dist := t.Pos.Sub(m.hole.Center).Len()
	if dist < m.hole.Radius*m.cfg.Hole.CaptureScale && t.Pos.Y <= m.hole.Center.Y+holeEntrySlack {
		t.Falling = false
		t.InPrize = true
		t.Pos = m.prize.Area.Center
		m.prize.HasToy = true
		m.prize.ToyIndex = m.fallingToy
		m.fallingToy = NoToy

		m.lamp.Mode = LampBlink
		m.lamp.Timer = 0
		m.claw.Open = false
		m.claw.Motion = MotionRaising
		m.state = StatePrizeWaiting
		return
	}

	// Floor landing: clamp, stop, and hand control back.
	minY := floorY + m.cfg.Toys.Size*0.5
	if t.Pos.Y <= minY {
		t.Pos.Y = minY
		t.Velocity = core.Vec2{}
		t.Falling = false
		m.fallingToy = NoToy
		m.state = StateActiveNoToy
	}
}
