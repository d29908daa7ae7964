package daemon

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"phased/pkg/phasechange"
	"phased/pkg/types"
	"phased/pkg/version"
)

// abortWithDetail writes the FastAPI-style error body the original service
// used, so existing consumers keep parsing errors the same way.
func abortWithDetail(c *gin.Context, code int, err error) {
	c.IndentedJSON(code, gin.H{"detail": err.Error()})
	_ = c.AbortWithError(code, err)
}

func getRoot(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, types.ServiceInfo{
		Message: "Phase Change Diagram API",
		Version: version.Version,
		Endpoints: map[string]string{
			"phase_diagram": "/phase-change-diagram?pressure=<value>",
			"constants":     "/constants",
			"health":        "/health",
			"metrics":       "/metrics",
		},
	})
}

func getHealth(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, types.HealthResponse{
		Status:  "healthy",
		Message: "API is running",
	})
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

func getPhaseChangeDiagram(c *gin.Context) {
	raw, ok := c.GetQuery("pressure")
	if !ok {
		abortWithDetail(c, http.StatusBadRequest, errors.New("missing required query parameter: pressure"))
		return
	}

	pressure, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		abortWithDetail(c, http.StatusBadRequest, fmt.Errorf("pressure must be a number, got %q", raw))
		return
	}

	if math.IsNaN(pressure) || math.IsInf(pressure, 0) {
		abortWithDetail(c, http.StatusBadRequest, fmt.Errorf("pressure must be a finite number, got %q", raw))
		return
	}
	if pressure < 0 {
		abortWithDetail(c, http.StatusBadRequest, fmt.Errorf("pressure must be non-negative, got %g", pressure))
		return
	}

	result, err := currentCalculator().Evaluate(pressure)
	if err != nil {
		evaluationFailures.Inc()
		switch {
		case errors.Is(err, phasechange.ErrInvalidInput),
			errors.Is(err, phasechange.ErrDivisionByZero):
			abortWithDetail(c, http.StatusBadRequest, err)
		default:
			// ErrNonFiniteResult and anything unexpected.
			abortWithDetail(c, http.StatusInternalServerError, err)
		}
		return
	}

	evaluationsTotal.Inc()
	c.IndentedJSON(http.StatusOK, result)
}

func getConstants(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, types.ConstantsResponse{
		Constants:            types.ConstantsFromCurve(conf.Curve()),
		CalculatedParameters: currentCalculator().Parameters(),
	})
}
