// Package config provides YAML-based game configuration loading for the
// funfair platform.
package config

// ClawConfig contains all tuning for the claw machine.
type ClawConfig struct {
	Claw ClawRig  `yaml:"claw"`
	Toys ClawToys `yaml:"toys"`
	Lamp ClawLamp `yaml:"lamp"`
	Hole ClawHole `yaml:"hole"`
}

// ClawRig defines the claw body and rope kinematics. Speeds are in world
// units per second; the world is NDC, [-1, 1] on both axes.
type ClawRig struct {
	MinRope    float64 `yaml:"min_rope"`
	MaxRope    float64 `yaml:"max_rope"`
	MoveSpeed  float64 `yaml:"move_speed"`
	LowerSpeed float64 `yaml:"lower_speed"`
	RaiseSpeed float64 `yaml:"raise_speed"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

// ClawToys defines the toy pool and fall physics.
type ClawToys struct {
	Size          float64 `yaml:"size"`
	Gravity       float64 `yaml:"gravity"`        // Negative: downward acceleration
	GrabTolerance float64 `yaml:"grab_tolerance"` // Fraction of toy half extents added to the grab box
}

// ClawLamp defines the cosmetic blink lamp.
type ClawLamp struct {
	BlinkInterval float64 `yaml:"blink_interval"`
}

// ClawHole defines the drop hole geometry and commit test.
type ClawHole struct {
	Radius       float64 `yaml:"radius"`
	CaptureScale float64 `yaml:"capture_scale"` // Fraction of radius inside which a falling toy commits
}

// CoasterConfig contains all tuning for the rollercoaster.
type CoasterConfig struct {
	Ride  CoasterRide  `yaml:"ride"`
	Seats CoasterSeats `yaml:"seats"`
}

// CoasterRide defines the car speed model. Speeds are arc-length units
// per second along the track; accelerations are per second squared.
type CoasterRide struct {
	CruiseSpeed float64 `yaml:"cruise_speed"`
	Accel       float64 `yaml:"accel"`
	SlopeAccel  float64 `yaml:"slope_accel"` // Applied against the downward tangent component
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	ReturnSpeed float64 `yaml:"return_speed"`
	BrakeRate   float64 `yaml:"brake_rate"`
	SickDwell   float64 `yaml:"sick_dwell"` // Seconds to wait at zero speed before resuming
}

// CoasterSeats defines seat interaction geometry.
type CoasterSeats struct {
	ClickRadius float64 `yaml:"click_radius"` // World-space radius of the per-seat hit test
}
