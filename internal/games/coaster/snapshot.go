package coaster

// Snapshot is a copy of the ride's observable state, used by tests to
// compare runs and assert determinism.
type Snapshot struct {
	State       RideState
	Param       float64
	Speed       float64
	Seats       [SeatCount]Passenger
	RemovalMode bool
	Delivered   int
}

// Snapshot captures the current observable state.
func (r *Ride) Snapshot() Snapshot {
	return Snapshot{
		State:       r.state,
		Param:       r.param,
		Speed:       r.speed,
		Seats:       r.seats,
		RemovalMode: r.removalMode,
		Delivered:   r.delivered,
	}
}
