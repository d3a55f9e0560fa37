package config

import (
	_ "embed"
)

//go:embed defaults/claw.yaml
var defaultClawYAML []byte

//go:embed defaults/coaster.yaml
var defaultCoasterYAML []byte

// DefaultClawConfig returns the default claw machine configuration.
func DefaultClawConfig() ClawConfig {
	return ClawConfig{
		Claw: ClawRig{
			MinRope:    0.16,
			MaxRope:    1.18,
			MoveSpeed:  0.65,
			LowerSpeed: 0.80,
			RaiseSpeed: 1.00,
			Width:      0.12,
			Height:     0.10,
		},
		Toys: ClawToys{
			Size:          0.11,
			Gravity:       -2.6,
			GrabTolerance: 0.35,
		},
		Lamp: ClawLamp{
			BlinkInterval: 0.5,
		},
		Hole: ClawHole{
			Radius:       0.085,
			CaptureScale: 0.75,
		},
	}
}

// DefaultCoasterConfig returns the default rollercoaster configuration.
func DefaultCoasterConfig() CoasterConfig {
	return CoasterConfig{
		Ride: CoasterRide{
			CruiseSpeed: 0.45,
			Accel:       0.35,
			SlopeAccel:  0.90,
			MinSpeed:    0.12,
			MaxSpeed:    1.30,
			ReturnSpeed: 0.25,
			BrakeRate:   0.80,
			SickDwell:   10.0,
		},
		Seats: CoasterSeats{
			ClickRadius: 0.12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "claw":
		return defaultClawYAML
	case "coaster":
		return defaultCoasterYAML
	default:
		return nil
	}
}
