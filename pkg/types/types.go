// Package types holds the wire types shared between the daemon and its
// clients.
package types

import "phased/pkg/phasechange"

// CalibrationConstants is the six calibration inputs as served by
// GET /constants.
type CalibrationConstants struct {
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
	X3 float64 `json:"x3"`
	Y1 float64 `json:"y1"`
	Y2 float64 `json:"y2"`
	Y3 float64 `json:"y3"`
}

// ConstantsResponse is the GET /constants response body: the calibration
// inputs plus the parameters derived from them.
type ConstantsResponse struct {
	Constants            CalibrationConstants   `json:"constants"`
	CalculatedParameters phasechange.Parameters `json:"calculated_parameters"`
}

// HealthResponse is the GET /health response body.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ServiceInfo is the GET / response body.
type ServiceInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// ConstantsFromCurve flattens a calibration curve into the wire shape.
func ConstantsFromCurve(c phasechange.Curve) CalibrationConstants {
	return CalibrationConstants{
		X1: c.P1.X,
		X2: c.P2.X,
		X3: c.P3.X,
		Y1: c.P1.Y,
		Y2: c.P2.Y,
		Y3: c.P3.Y,
	}
}
