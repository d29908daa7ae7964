package phasechange

import (
	"errors"
	"math"
	"testing"
)

func TestDeriveDefaultCurve(t *testing.T) {
	p, err := Derive(DefaultCurve)
	if err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}

	wantSlopeLiquid := (10.0 - 0.05) / (0.0035 - 0.00105)
	wantSlopeVapor := (0.05 - 10.0) / (30.0 - 0.0035)
	wantInterceptLiquid := 10.0 - wantSlopeLiquid*0.0035
	wantInterceptVapor := 0.05 - wantSlopeVapor*30.0

	if p.SlopeLiquid != wantSlopeLiquid {
		t.Errorf("SlopeLiquid = %v, want %v", p.SlopeLiquid, wantSlopeLiquid)
	}
	if p.SlopeVapor != wantSlopeVapor {
		t.Errorf("SlopeVapor = %v, want %v", p.SlopeVapor, wantSlopeVapor)
	}
	if p.InterceptLiquid != wantInterceptLiquid {
		t.Errorf("InterceptLiquid = %v, want %v", p.InterceptLiquid, wantInterceptLiquid)
	}
	if p.InterceptVapor != wantInterceptVapor {
		t.Errorf("InterceptVapor = %v, want %v", p.InterceptVapor, wantInterceptVapor)
	}

	if p.SlopeLiquid <= 0 {
		t.Errorf("liquid slope should be positive, got %v", p.SlopeLiquid)
	}
	if p.SlopeVapor >= 0 {
		t.Errorf("vapor slope should be negative, got %v", p.SlopeVapor)
	}
}

func TestDeriveDegenerateCurve(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
	}{
		{
			name: "liquid segment vertical",
			curve: Curve{
				P1: Point{X: 0.0035, Y: 0.05},
				P2: Point{X: 0.0035, Y: 10},
				P3: Point{X: 30, Y: 0.05},
			},
		},
		{
			name: "vapor segment vertical",
			curve: Curve{
				P1: Point{X: 0.00105, Y: 0.05},
				P2: Point{X: 30, Y: 10},
				P3: Point{X: 30, Y: 0.05},
			},
		},
		{
			name: "NaN coordinate",
			curve: Curve{
				P1: Point{X: math.NaN(), Y: 0.05},
				P2: Point{X: 0.0035, Y: 10},
				P3: Point{X: 30, Y: 0.05},
			},
		},
		{
			name: "infinite coordinate",
			curve: Curve{
				P1: Point{X: 0.00105, Y: 0.05},
				P2: Point{X: 0.0035, Y: math.Inf(1)},
				P3: Point{X: 30, Y: 0.05},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Derive(tt.curve)
			if err == nil {
				t.Fatal("Derive should have failed")
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("error should wrap ErrConfiguration, got %v", err)
			}
		})
	}
}
