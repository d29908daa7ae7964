package phasechange

import (
	"math"

	pkgerrors "github.com/pkg/errors"
)

// Result holds the two specific volumes computed for a pressure.
type Result struct {
	SpecificVolumeLiquid float64 `json:"specific_volume_liquid"`
	SpecificVolumeVapor  float64 `json:"specific_volume_vapor"`
}

// Calculator evaluates the inverse of the two linear segments for a given
// pressure. It is stateless after construction and safe for concurrent use.
type Calculator struct {
	params Parameters
}

// NewCalculator derives parameters from the curve and returns a calculator
// over them. Fails with ErrConfiguration on a degenerate curve.
func NewCalculator(c Curve) (*Calculator, error) {
	params, err := Derive(c)
	if err != nil {
		return nil, err
	}
	return &Calculator{params: params}, nil
}

// NewCalculatorFromParameters returns a calculator over already-derived
// parameters. The zero-slope check still happens at evaluation time.
func NewCalculatorFromParameters(p Parameters) *Calculator {
	return &Calculator{params: p}
}

// Parameters returns the derived constants the calculator evaluates with.
func (c *Calculator) Parameters() Parameters {
	return c.params
}

// Evaluate computes the liquid and vapor specific volumes for the given
// pressure, rounded to 6 decimal places.
//
// Pressure must be finite and non-negative. The API layer rejects bad
// pressures before they get here; the check is repeated so the package
// stands on its own.
func (c *Calculator) Evaluate(pressure float64) (Result, error) {
	if math.IsNaN(pressure) || math.IsInf(pressure, 0) {
		return Result{}, pkgerrors.Wrap(ErrInvalidInput, "pressure must be a finite number")
	}
	if pressure < 0 {
		return Result{}, pkgerrors.Wrapf(ErrInvalidInput, "pressure must be non-negative, got %g", pressure)
	}

	if c.params.SlopeLiquid == 0 || c.params.SlopeVapor == 0 {
		return Result{}, pkgerrors.Wrap(ErrDivisionByZero, "a derived slope is zero")
	}

	liquid := (pressure - c.params.InterceptLiquid) / c.params.SlopeLiquid
	vapor := (pressure - c.params.InterceptVapor) / c.params.SlopeVapor

	if math.IsNaN(liquid) || math.IsInf(liquid, 0) ||
		math.IsNaN(vapor) || math.IsInf(vapor, 0) {
		return Result{}, pkgerrors.Wrapf(ErrNonFiniteResult, "pressure %g produced liquid=%g vapor=%g", pressure, liquid, vapor)
	}

	return Result{
		SpecificVolumeLiquid: Round6(liquid),
		SpecificVolumeVapor:  Round6(vapor),
	}, nil
}

// Round6 rounds to 6 decimal places, half away from zero (math.Round
// semantics).
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
