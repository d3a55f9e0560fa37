package coaster

import (
	"testing"

	"github.com/blahos/funfair/internal/config"
	"github.com/blahos/funfair/internal/core"
)

const testDT = 1.0 / 60.0

func newTestRide() *Ride {
	return NewRide(config.DefaultCoasterConfig(), NewTrack())
}

// tick advances the ride with an empty input frame.
func tick(r *Ride, n int, dt float64) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		r.Update(in, dt)
	}
}

// board seats and straps n passengers.
func board(r *Ride, n int) {
	for i := 0; i < n; i++ {
		r.AddPassenger()
		r.seats[i].Strapped = true
	}
}

func TestInitialState(t *testing.T) {
	r := newTestRide()
	if r.State() != StateBoarding {
		t.Errorf("New ride should be Boarding, got %s", r.State())
	}
	if r.param != 0 {
		t.Errorf("Car should start at the station, param %v", r.param)
	}
	if r.occupiedCount() != 0 {
		t.Error("Seats should start empty")
	}
}

func TestAddPassenger(t *testing.T) {
	r := newTestRide()

	for i := 0; i < SeatCount; i++ {
		r.AddPassenger()
		if !r.seats[i].Occupied {
			t.Fatalf("Passenger %d should fill seat %d", i, i)
		}
	}
	// A full car silently refuses more.
	r.AddPassenger()
	if r.occupiedCount() != SeatCount {
		t.Errorf("Occupied count should cap at %d, got %d", SeatCount, r.occupiedCount())
	}

	// Boarding is refused mid-ride.
	r2 := newTestRide()
	r2.state = StateRiding
	r2.AddPassenger()
	if r2.occupiedCount() != 0 {
		t.Error("Boarding should be refused while riding")
	}
}

func TestStartRequiresStraps(t *testing.T) {
	r := newTestRide()

	// Empty car never launches.
	r.TryStartRide()
	if r.State() != StateBoarding {
		t.Fatalf("Empty car should not launch, got %s", r.State())
	}

	// An unstrapped passenger blocks launch.
	r.AddPassenger()
	r.AddPassenger()
	r.seats[0].Strapped = true
	r.TryStartRide()
	if r.State() != StateBoarding {
		t.Fatalf("Unstrapped passenger should block launch, got %s", r.State())
	}

	r.seats[1].Strapped = true
	r.TryStartRide()
	if r.State() != StateRiding {
		t.Errorf("Fully strapped car should launch, got %s", r.State())
	}
}

func TestStrapToggleByClick(t *testing.T) {
	r := newTestRide()
	r.AddPassenger()

	seat := r.SeatPosition(0)
	r.HandleClick(seat)
	if !r.seats[0].Strapped {
		t.Fatal("Click on an occupied seat should strap the passenger")
	}
	r.HandleClick(seat)
	if r.seats[0].Strapped {
		t.Error("Second click should unstrap")
	}

	// Clicks far from any seat do nothing.
	r.HandleClick(core.Vec2{X: 0.9, Y: 0.9})
	if r.seats[0].Strapped {
		t.Error("Distant click should not touch seats")
	}
}

// The car's track parameter stays in [0, 1] for any dt, including zero
// and a pathological multi-second stall.
func TestParamBounds(t *testing.T) {
	for _, dt := range []float64{0, 1e-6, testDT, 0.25, 5.0} {
		r := newTestRide()
		board(r, 3)
		r.TryStartRide()

		in := core.NewInputFrame()
		for i := 0; i < 400; i++ {
			in.Clear()
			if i == 50 {
				// Mid-ride sickness exercises the stop and return legs.
				in.AddClick(r.SeatPosition(0))
			}
			r.Update(in, dt)

			if r.param < 0 || r.param > 1 {
				t.Fatalf("dt=%v tick %d: param %v out of [0, 1]", dt, i, r.param)
			}
		}
	}
}

func TestSpeedBoundsWhileRiding(t *testing.T) {
	r := newTestRide()
	board(r, 2)
	r.TryStartRide()

	cfg := r.cfg.Ride
	in := core.NewInputFrame()
	for i := 0; i < 2000 && r.State() == StateRiding; i++ {
		r.Update(in, testDT)
		if r.speed < cfg.MinSpeed || r.speed > cfg.MaxSpeed {
			t.Fatalf("Tick %d: speed %v out of [%v, %v]", i, r.speed, cfg.MinSpeed, cfg.MaxSpeed)
		}
	}
}

func TestCompletedRideScores(t *testing.T) {
	r := newTestRide()
	board(r, 3)
	r.TryStartRide()
	if r.State() != StateRiding {
		t.Fatal("Launch failed")
	}

	// Ride out the full circuit and the return leg.
	tick(r, 60*120, testDT)

	if r.State() != StateBoarding {
		t.Fatalf("Ride should be back at the station, got %s", r.State())
	}
	if r.Delivered() != 3 {
		t.Errorf("All 3 riders should score, got %d", r.Delivered())
	}
	if !r.RemovalMode() {
		t.Error("Returned riders should await unloading")
	}
	for i := 0; i < 3; i++ {
		if !r.seats[i].Occupied {
			t.Errorf("Seat %d should still hold its rider until unloaded", i)
		}
		if r.seats[i].Strapped || r.seats[i].Sick {
			t.Errorf("Seat %d straps and sickness should clear on return", i)
		}
	}
}

func TestSickStopsAndReturnsUnscored(t *testing.T) {
	r := newTestRide()
	board(r, 2)
	r.TryStartRide()
	tick(r, 60, testDT) // get moving

	// A rider gets sick.
	r.HandleClick(r.SeatPosition(1))
	if r.State() != StateStoppedForSick {
		t.Fatalf("Sick click should stop the ride, got %s", r.State())
	}
	if !r.seats[1].Sick {
		t.Fatal("Clicked rider should be flagged sick")
	}

	// Brake to a stop.
	for i := 0; i < 600 && r.speed > 0; i++ {
		tick(r, 1, testDT)
	}
	if r.speed != 0 {
		t.Fatal("Car should brake to a full stop")
	}
	paused := r.param

	// The dwell holds position.
	tick(r, int(r.cfg.Ride.SickDwell/testDT)-30, testDT)
	if r.param != paused {
		t.Error("Car should hold position during the sick dwell")
	}

	// Dwell expires, car returns, nobody scores.
	tick(r, 60*120, testDT)
	if r.State() != StateBoarding {
		t.Fatalf("Car should return to the station, got %s", r.State())
	}
	if r.Delivered() != 0 {
		t.Errorf("Interrupted ride should not score, got %d", r.Delivered())
	}
	if r.seats[1].Sick {
		t.Error("Sickness should clear on return")
	}
	if !r.RemovalMode() {
		t.Error("Returned riders should await unloading")
	}
}

func TestRemovalMode(t *testing.T) {
	r := newTestRide()
	board(r, 2)
	r.TryStartRide()
	tick(r, 60*120, testDT)
	if !r.RemovalMode() {
		t.Fatal("Setup failed: expected removal mode after the ride")
	}

	// While unloading, boarding and launching are refused.
	r.AddPassenger()
	if r.occupiedCount() != 2 {
		t.Error("Boarding should be refused during unloading")
	}
	r.TryStartRide()
	if r.State() != StateBoarding {
		t.Error("Launch should be refused during unloading")
	}

	// Clicking riders removes them one at a time.
	r.HandleClick(r.SeatPosition(0))
	if r.seats[0].Occupied {
		t.Fatal("Click should unload rider 0")
	}
	if !r.RemovalMode() {
		t.Error("Removal mode should persist while riders remain")
	}

	r.HandleClick(r.SeatPosition(1))
	if r.seats[1].Occupied {
		t.Fatal("Click should unload rider 1")
	}
	if r.RemovalMode() {
		t.Error("Removal mode should clear once the car is empty")
	}

	// Normal boarding resumes.
	r.AddPassenger()
	if r.occupiedCount() != 1 {
		t.Error("Boarding should work again after unloading")
	}
}

func TestClickPicksNearestSeat(t *testing.T) {
	r := newTestRide()
	r.AddPassenger()
	r.AddPassenger()

	// A point nearer seat 1 than seat 0, within the click radius of both.
	p0, p1 := r.SeatPosition(0), r.SeatPosition(1)
	mid := p1.Add(p1.Sub(p0).Scale(0.2))
	r.HandleClick(mid)

	if r.seats[0].Strapped {
		t.Error("Farther seat should not be toggled")
	}
	if !r.seats[1].Strapped {
		t.Error("Nearest seat should be toggled")
	}
}

func TestZeroDTIsNoOp(t *testing.T) {
	r := newTestRide()
	board(r, 2)
	r.TryStartRide()
	tick(r, 30, testDT)

	before := r.Snapshot()
	tick(r, 10, 0)
	if r.Snapshot() != before {
		t.Error("Updates with dt=0 should not change observable state")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		r := newTestRide()
		in := core.NewInputFrame()
		for i := 0; i < 2000; i++ {
			in.Clear()
			if i < 3 {
				in.Press(core.ActionBoard)
			}
			if i == 5 {
				in.AddClick(r.SeatPosition(0))
				in.AddClick(r.SeatPosition(1))
				in.AddClick(r.SeatPosition(2))
			}
			if i == 6 {
				in.Press(core.ActionConfirm)
			}
			if i == 400 {
				in.AddClick(r.SeatPosition(2))
			}
			r.Update(in, testDT)
		}
		return r.Snapshot()
	}

	if run() != run() {
		t.Error("Identical input sequences should produce identical snapshots")
	}
}
