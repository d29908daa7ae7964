package phasechange

// Parameters are the four constants derived from a calibration curve using
// the two-point line equations. They are computed once per curve and shared
// read-only between requests.
type Parameters struct {
	SlopeLiquid     float64 `json:"ml"`
	SlopeVapor      float64 `json:"mv"`
	InterceptLiquid float64 `json:"al"`
	InterceptVapor  float64 `json:"av"`
}

// Derive computes the slopes and intercepts of the two segments. It fails
// with ErrConfiguration if the curve is degenerate.
func Derive(c Curve) (Parameters, error) {
	if err := c.Validate(); err != nil {
		return Parameters{}, err
	}

	p := Parameters{}
	p.SlopeLiquid = (c.P2.Y - c.P1.Y) / (c.P2.X - c.P1.X)
	p.SlopeVapor = (c.P3.Y - c.P2.Y) / (c.P3.X - c.P2.X)
	p.InterceptLiquid = c.P2.Y - p.SlopeLiquid*c.P2.X
	p.InterceptVapor = c.P3.Y - p.SlopeVapor*c.P3.X

	return p, nil
}
