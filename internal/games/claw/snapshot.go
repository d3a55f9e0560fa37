package claw

import "github.com/blahos/funfair/internal/core"

// ToySnapshot is one toy's externally visible state.
type ToySnapshot struct {
	Pos     core.Vec2
	Skin    int
	Active  bool
	Grabbed bool
	Falling bool
	InPrize bool
}

// Snapshot is a copy of the machine's observable state, used by tests to
// compare runs and assert determinism.
type Snapshot struct {
	State      State
	LampMode   LampMode
	AnchorX    float64
	Rope       float64
	ClawOpen   bool
	Motion     Motion
	Toys       [ToyCount]ToySnapshot
	PrizeToy   int
	PrizeReady bool
	Collected  int
}

// Snapshot captures the current observable state.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		State:      m.state,
		LampMode:   m.lamp.Mode,
		AnchorX:    m.claw.Anchor.X,
		Rope:       m.claw.Rope,
		ClawOpen:   m.claw.Open,
		Motion:     m.claw.Motion,
		PrizeToy:   m.prize.ToyIndex,
		PrizeReady: m.prize.HasToy,
		Collected:  m.collected,
	}
	for i := range m.toys {
		t := &m.toys[i]
		s.Toys[i] = ToySnapshot{
			Pos:     t.Pos,
			Skin:    t.Skin,
			Active:  t.Active,
			Grabbed: t.Grabbed,
			Falling: t.Falling,
			InPrize: t.InPrize,
		}
	}
	return s
}
