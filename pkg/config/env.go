package config

import (
	"github.com/kelseyhightower/envconfig"
	pkgerrors "github.com/pkg/errors"
)

type envOverrides struct {
	// PHASED_PORT wins over PORT; PORT is kept for compatibility with
	// platform-injected ports.
	Port       *int `envconfig:"PHASED_PORT"`
	LegacyPort *int `envconfig:"PORT"`
}

// PortFromEnv reads the port override from the environment. The second
// return value reports whether an override is present.
func PortFromEnv() (int, bool, error) {
	var o envOverrides
	if err := envconfig.Process("", &o); err != nil {
		return 0, false, pkgerrors.Wrap(err, "failed to parse environment overrides")
	}

	if o.Port != nil {
		return *o.Port, true, nil
	}
	if o.LegacyPort != nil {
		return *o.LegacyPort, true, nil
	}
	return 0, false, nil
}
