package analytics

import "math"

const (
	expectedFactor = 0.95
	previousFactor = 0.88
)

type YieldData struct {
	Actual   float64 `json:"actual"`
	Expected float64 `json:"expected"`
	Previous float64 `json:"previous"`
}

// Project derives the yield figures for a harvested quantity. Rounding is
// math.Round, i.e. half-up for the non-negative quantities stored.
func Project(quantity float64) YieldData {
	return YieldData{
		Actual:   quantity,
		Expected: math.Round(quantity * expectedFactor),
		Previous: math.Round(quantity * previousFactor),
	}
}
