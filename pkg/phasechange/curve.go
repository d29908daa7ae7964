package phasechange

import (
	"math"

	pkgerrors "github.com/pkg/errors"
)

// Point is one calibration coordinate on the phase-change diagram. X is a
// specific volume, Y is the pressure at that volume.
type Point struct {
	X float64
	Y float64
}

// Curve holds the three calibration points that define the two linear
// segments of the diagram: P1->P2 is the liquid segment, P2->P3 is the vapor
// segment.
type Curve struct {
	P1 Point
	P2 Point
	P3 Point
}

// DefaultCurve is the built-in calibration. It is never mutated; a custom
// curve can be supplied through the config file instead.
var DefaultCurve = Curve{
	P1: Point{X: 0.00105, Y: 0.05},
	P2: Point{X: 0.0035, Y: 10},
	P3: Point{X: 30, Y: 0.05},
}

// Validate checks that parameters can be derived from the curve. A segment
// whose two x-values coincide has no finite slope, so it is rejected, as is
// any NaN or infinite coordinate.
func (c Curve) Validate() error {
	for _, v := range []float64{c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return pkgerrors.Wrap(ErrConfiguration, "calibration coordinates must be finite")
		}
	}

	if c.P2.X == c.P1.X {
		return pkgerrors.Wrapf(ErrConfiguration, "liquid segment is vertical: x1 == x2 == %g", c.P1.X)
	}
	if c.P3.X == c.P2.X {
		return pkgerrors.Wrapf(ErrConfiguration, "vapor segment is vertical: x2 == x3 == %g", c.P2.X)
	}

	return nil
}
