package phasechange

import (
	"errors"
	"math"
	"testing"
)

func mustCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := NewCalculator(DefaultCurve)
	if err != nil {
		t.Fatalf("NewCalculator returned error: %v", err)
	}
	return calc
}

// At each calibration pressure the inverse relation must map back to the
// calibration volume (modulo 6-decimal rounding).
func TestEvaluateCalibrationPoints(t *testing.T) {
	calc := mustCalculator(t)

	tests := []struct {
		name       string
		pressure   float64
		wantLiquid float64
		wantVapor  float64
	}{
		{
			name:       "knee pressure maps both phases to x2",
			pressure:   10,
			wantLiquid: 0.0035,
			wantVapor:  0.0035,
		},
		{
			name:       "base pressure maps to x1 and x3",
			pressure:   0.05,
			wantLiquid: 0.00105,
			wantVapor:  30,
		},
		{
			name:       "zero pressure",
			pressure:   0,
			wantLiquid: 0.001038,
			wantVapor:  30.150736,
		},
		{
			name:       "mid-range pressure",
			pressure:   5,
			wantLiquid: 0.002269,
			wantVapor:  15.077118,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Evaluate(tt.pressure)
			if err != nil {
				t.Fatalf("Evaluate(%g) returned error: %v", tt.pressure, err)
			}
			if got.SpecificVolumeLiquid != tt.wantLiquid {
				t.Errorf("liquid = %v, want %v", got.SpecificVolumeLiquid, tt.wantLiquid)
			}
			if got.SpecificVolumeVapor != tt.wantVapor {
				t.Errorf("vapor = %v, want %v", got.SpecificVolumeVapor, tt.wantVapor)
			}
		})
	}
}

func TestEvaluateMatchesFormulas(t *testing.T) {
	calc := mustCalculator(t)
	p := calc.Parameters()

	for _, pressure := range []float64{0, 0.05, 1, 5, 10, 100, 12345.678} {
		got, err := calc.Evaluate(pressure)
		if err != nil {
			t.Fatalf("Evaluate(%g) returned error: %v", pressure, err)
		}

		wantLiquid := Round6((pressure - p.InterceptLiquid) / p.SlopeLiquid)
		wantVapor := Round6((pressure - p.InterceptVapor) / p.SlopeVapor)

		if got.SpecificVolumeLiquid != wantLiquid {
			t.Errorf("Evaluate(%g) liquid = %v, want %v", pressure, got.SpecificVolumeLiquid, wantLiquid)
		}
		if got.SpecificVolumeVapor != wantVapor {
			t.Errorf("Evaluate(%g) vapor = %v, want %v", pressure, got.SpecificVolumeVapor, wantVapor)
		}
	}
}

func TestEvaluateZeroPressure(t *testing.T) {
	calc := mustCalculator(t)

	got, err := calc.Evaluate(0)
	if err != nil {
		t.Fatalf("Evaluate(0) returned error: %v", err)
	}
	if math.IsNaN(got.SpecificVolumeLiquid) || math.IsInf(got.SpecificVolumeLiquid, 0) {
		t.Errorf("liquid volume at p=0 is not finite: %v", got.SpecificVolumeLiquid)
	}
	if math.IsNaN(got.SpecificVolumeVapor) || math.IsInf(got.SpecificVolumeVapor, 0) {
		t.Errorf("vapor volume at p=0 is not finite: %v", got.SpecificVolumeVapor)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	calc := mustCalculator(t)

	first, err := calc.Evaluate(5)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	second, err := calc.Evaluate(5)
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	if first != second {
		t.Errorf("repeated evaluation differs: %+v vs %+v", first, second)
	}
}

// The liquid slope is positive, so the liquid volume must be strictly
// increasing in pressure; the vapor slope is negative, so the vapor volume
// must be strictly decreasing.
func TestEvaluateMonotonic(t *testing.T) {
	calc := mustCalculator(t)

	pressures := []float64{0, 0.5, 1, 2, 5, 10, 20, 50}
	var prev Result
	for i, pressure := range pressures {
		got, err := calc.Evaluate(pressure)
		if err != nil {
			t.Fatalf("Evaluate(%g) returned error: %v", pressure, err)
		}
		if i > 0 {
			if got.SpecificVolumeLiquid <= prev.SpecificVolumeLiquid {
				t.Errorf("liquid volume not increasing: f(%g)=%v, previous %v",
					pressure, got.SpecificVolumeLiquid, prev.SpecificVolumeLiquid)
			}
			if got.SpecificVolumeVapor >= prev.SpecificVolumeVapor {
				t.Errorf("vapor volume not decreasing: f(%g)=%v, previous %v",
					pressure, got.SpecificVolumeVapor, prev.SpecificVolumeVapor)
			}
		}
		prev = got
	}
}

func TestEvaluateInvalidPressure(t *testing.T) {
	calc := mustCalculator(t)

	for _, pressure := range []float64{-1, -0.000001, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := calc.Evaluate(pressure)
		if err == nil {
			t.Errorf("Evaluate(%g) should have failed", pressure)
			continue
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Evaluate(%g) error should wrap ErrInvalidInput, got %v", pressure, err)
		}
	}
}

func TestEvaluateZeroSlope(t *testing.T) {
	tests := []struct {
		name   string
		params Parameters
	}{
		{
			name:   "zero liquid slope",
			params: Parameters{SlopeLiquid: 0, SlopeVapor: -1},
		},
		{
			name:   "zero vapor slope",
			params: Parameters{SlopeLiquid: 1, SlopeVapor: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewCalculatorFromParameters(tt.params)
			_, err := calc.Evaluate(5)
			if err == nil {
				t.Fatal("Evaluate should have failed")
			}
			if !errors.Is(err, ErrDivisionByZero) {
				t.Fatalf("error should wrap ErrDivisionByZero, got %v", err)
			}
		})
	}
}

func TestEvaluateNonFiniteResult(t *testing.T) {
	// A subnormal slope overflows the division to +Inf.
	calc := NewCalculatorFromParameters(Parameters{
		SlopeLiquid: math.SmallestNonzeroFloat64,
		SlopeVapor:  -1,
	})

	_, err := calc.Evaluate(math.MaxFloat64 / 2)
	if err == nil {
		t.Fatal("Evaluate should have failed")
	}
	if !errors.Is(err, ErrNonFiniteResult) {
		t.Fatalf("error should wrap ErrNonFiniteResult, got %v", err)
	}
}

func TestRound6(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.0000004, want: 0},
		{in: 0.0000005, want: 0.000001},
		{in: -0.0000005, want: -0.000001},
		{in: 1.2345678, want: 1.234568},
		{in: -1.2345674, want: -1.234567},
		{in: 30, want: 30},
	}

	for _, tt := range tests {
		if got := Round6(tt.in); got != tt.want {
			t.Errorf("Round6(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
