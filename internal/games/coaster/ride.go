package coaster

import (
	"math"

	"github.com/blahos/funfair/internal/config"
	"github.com/blahos/funfair/internal/core"
)

// RideState identifies the ride's gameplay phase.
type RideState int

const (
	StateBoarding RideState = iota
	StateRiding
	StateStoppedForSick
	StateReturning
)

// String returns a human-readable state name.
func (s RideState) String() string {
	switch s {
	case StateBoarding:
		return "Boarding"
	case StateRiding:
		return "Riding"
	case StateStoppedForSick:
		return "StoppedForSick"
	case StateReturning:
		return "Returning"
	default:
		return "Unknown"
	}
}

// SeatCount is the number of seats on the car.
const SeatCount = 8

// NoSeat is the index sentinel for "no seat matched".
const NoSeat = -1

// Seat layout relative to the car's front, in world units. Seats trail
// behind the front along the track and sit slightly above it.
const (
	seatSpacing = 0.055
	seatLift    = 0.035
)

// Passenger is one seat's occupancy. Strapped and Sick are meaningful
// only while Occupied.
type Passenger struct {
	Occupied bool
	Strapped bool
	Sick     bool
}

// Ride owns the complete rollercoaster simulation state: a fixed track,
// one car with a row of seats, and the boarding/riding cycle. It is
// mutated only through Update and the trigger methods.
type Ride struct {
	cfg   config.CoasterConfig
	track *Track

	state RideState
	seats [SeatCount]Passenger

	// param is the car's position along the track, normalized to [0, 1]
	// proportional to arc length. speed is in arc-length units per second.
	param float64
	speed float64

	stopTimer   float64
	removalMode bool
	completed   bool
	delivered   int
}

// NewRide builds a ride on the given track with the given tuning.
func NewRide(cfg config.CoasterConfig, track *Track) *Ride {
	return &Ride{cfg: cfg, track: track}
}

// State returns the current ride phase.
func (r *Ride) State() RideState { return r.state }

// Delivered returns how many passengers have finished a complete ride.
func (r *Ride) Delivered() int { return r.delivered }

// RemovalMode reports whether seat clicks currently unload passengers.
func (r *Ride) RemovalMode() bool { return r.removalMode }

// Car returns the car front's position and unit tangent on the track.
func (r *Ride) Car() (core.Vec2, core.Vec2) {
	return r.track.Evaluate(r.param)
}

// SeatPosition returns seat i's world position: the seats trail the car
// front along its heading, lifted off the track.
func (r *Ride) SeatPosition(i int) core.Vec2 {
	pos, tan := r.track.Evaluate(r.param)
	heading := math.Atan2(tan.Y, tan.X)
	local := core.Vec2{X: -seatSpacing * float64(i), Y: seatLift}
	return pos.Add(local.Rotated(heading))
}

// occupiedCount returns the number of occupied seats.
func (r *Ride) occupiedCount() int {
	n := 0
	for i := range r.seats {
		if r.seats[i].Occupied {
			n++
		}
	}
	return n
}

// AddPassenger seats a passenger in the first free seat. No-op unless
// boarding, and never while delivered passengers still need unloading.
func (r *Ride) AddPassenger() {
	if r.state != StateBoarding || r.removalMode {
		return
	}
	for i := range r.seats {
		if !r.seats[i].Occupied {
			r.seats[i] = Passenger{Occupied: true}
			return
		}
	}
}

// TryStartRide launches the car if at least one passenger is seated and
// every seated passenger is strapped in. No-op otherwise.
func (r *Ride) TryStartRide() {
	if r.state != StateBoarding || r.removalMode {
		return
	}
	if r.occupiedCount() == 0 {
		return
	}
	for i := range r.seats {
		if r.seats[i].Occupied && !r.seats[i].Strapped {
			return
		}
	}
	r.state = StateRiding
	r.speed = r.cfg.Ride.MinSpeed
	r.param = 0
	r.completed = false
}

// nearestSeat returns the closest seat to p within the click radius for
// which keep returns true, or NoSeat.
func (r *Ride) nearestSeat(p core.Vec2, keep func(Passenger) bool) int {
	best := NoSeat
	bestDist := r.cfg.Seats.ClickRadius
	for i := range r.seats {
		if !keep(r.seats[i]) {
			continue
		}
		if d := r.SeatPosition(i).Sub(p).Len(); d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// HandleClick routes a pointer press by phase: unload a delivered
// passenger, toggle a strap at the station, or mark a rider sick
// mid-ride.
func (r *Ride) HandleClick(p core.Vec2) {
	if r.removalMode {
		i := r.nearestSeat(p, func(s Passenger) bool { return s.Occupied })
		if i != NoSeat {
			r.seats[i] = Passenger{}
			if r.occupiedCount() == 0 {
				r.removalMode = false
			}
		}
		return
	}

	switch r.state {
	case StateBoarding:
		i := r.nearestSeat(p, func(s Passenger) bool { return s.Occupied })
		if i != NoSeat {
			r.seats[i].Strapped = !r.seats[i].Strapped
		}

	case StateRiding:
		i := r.nearestSeat(p, func(s Passenger) bool { return s.Occupied && !s.Sick })
		if i != NoSeat {
			r.seats[i].Sick = true
			r.state = StateStoppedForSick
			r.stopTimer = 0
		}
	}
}

// Update advances the ride by dt seconds given this tick's input. All
// integrations clamp, so any dt >= 0 is safe.
func (r *Ride) Update(in core.InputFrame, dt float64) {
	for _, c := range in.Clicks {
		r.HandleClick(c.Pos)
	}
	if in.WasPressed(core.ActionBoard) {
		r.AddPassenger()
	}
	if in.WasPressed(core.ActionConfirm) {
		r.TryStartRide()
	}

	switch r.state {
	case StateRiding:
		r.updateRiding(dt)
	case StateStoppedForSick:
		r.updateStopped(dt)
	case StateReturning:
		r.updateReturning(dt)
	}
}

// updateRiding drives the speed toward cruise, adds the slope term, and
// advances the car. Reaching the end of the track begins the return leg.
func (r *Ride) updateRiding(dt float64) {
	_, tan := r.track.Evaluate(r.param)

	cruise := r.cfg.Ride.CruiseSpeed
	accel := r.cfg.Ride.Accel
	if r.speed < cruise {
		r.speed = math.Min(r.speed+accel*dt, cruise)
	} else if r.speed > cruise {
		r.speed = math.Max(r.speed-accel*dt, cruise)
	}
	// Downhill tangents speed the car up, climbs slow it down.
	r.speed -= tan.Y * r.cfg.Ride.SlopeAccel * dt
	r.speed = core.ClampF(r.speed, r.cfg.Ride.MinSpeed, r.cfg.Ride.MaxSpeed)

	r.param = core.ClampF(r.param+r.speed/r.track.Total()*dt, 0, 1)
	if r.param >= 1 {
		r.completed = true
		r.state = StateReturning
	}
}

// updateStopped brakes to a halt, holds for the sick dwell, then sends
// the car back to the station.
func (r *Ride) updateStopped(dt float64) {
	if r.speed > 0 {
		r.speed = math.Max(r.speed-r.cfg.Ride.BrakeRate*dt, 0)
		r.param = core.ClampF(r.param+r.speed/r.track.Total()*dt, 0, 1)
		return
	}
	r.stopTimer += dt
	if r.stopTimer >= r.cfg.Ride.SickDwell {
		r.state = StateReturning
	}
}

// updateReturning backs the car down the track to the station.
func (r *Ride) updateReturning(dt float64) {
	r.param = core.ClampF(r.param-r.cfg.Ride.ReturnSpeed/r.track.Total()*dt, 0, 1)
	if r.param <= 0 {
		r.arriveAtStation()
	}
}

// arriveAtStation ends a ride cycle. Passengers from a completed circuit
// score; a sick-interrupted ride returns its riders unscored. Either way
// straps and sickness clear, and any remaining passengers must be
// unloaded by clicking before the next group boards.
func (r *Ride) arriveAtStation() {
	if r.completed {
		r.delivered += r.occupiedCount()
	}
	for i := range r.seats {
		r.seats[i].Strapped = false
		r.seats[i].Sick = false
	}
	r.state = StateBoarding
	r.removalMode = r.occupiedCount() > 0
	r.completed = false
	r.speed = 0
	r.stopTimer = 0
}
