package geo

import "fmt"

// DefaultAverageSpeedKmph is the courier speed assumed when no override is
// configured.
const DefaultAverageSpeedKmph = 20.0

// ConstantSpeedEstimator converts distance to travel time under a fixed
// average speed. No acceleration, traffic, or road-network effects.
type ConstantSpeedEstimator struct {
	kmph float64
}

// NewConstantSpeedEstimator validates the speed once at construction; a
// non-positive speed is a configuration error.
func NewConstantSpeedEstimator(kmph float64) (*ConstantSpeedEstimator, error) {
	if kmph <= 0 {
		return nil, fmt.Errorf("new constant speed estimator: speed must be positive, got %v", kmph)
	}
	return &ConstantSpeedEstimator{kmph: kmph}, nil
}

// Minutes of travel needed to cover km kilometers at the configured speed.
func (c *ConstantSpeedEstimator) Minutes(km float64) float64 {
	return km / c.kmph * 60
}
