package config

import "phased/pkg/phasechange"

type Config interface {
	Curve() phasechange.Curve
	Port() int

	SetCurve(phasechange.Curve)
	SetPort(int)

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
