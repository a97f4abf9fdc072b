package service

import (
	"fmt"
)

// ComputeVolume converts a plot's linear metric into the liquid volume needed
// to treat it: linearMetric meters per row, rows parallel rows, rate applied
// in milliliters per meter. The result is in liters.
func ComputeVolume(linearMetric float64, rows int, rateMlPerMeter float64) (float64, error) {
	if linearMetric < 0 {
		return 0, fmt.Errorf("%w: linear metric must be non-negative, got %g", ErrInvalidParameter, linearMetric)
	}
	if rows < 1 {
		return 0, fmt.Errorf("%w: rows must be at least 1, got %d", ErrInvalidParameter, rows)
	}
	if rateMlPerMeter < 0 {
		return 0, fmt.Errorf("%w: rate must be non-negative, got %g", ErrInvalidParameter, rateMlPerMeter)
	}

	totalMeters := linearMetric * float64(rows)
	return totalMeters * rateMlPerMeter / 1000, nil
}
