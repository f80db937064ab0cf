package scene

import "github.com/Carmen-Shannon/oxy-trace/geom"

// LightBuilderOption configures a Light under construction.
type LightBuilderOption func(*lightImpl)

// WithPosition sets the light's world-space position.
//
// Parameters:
//   - p: position to set
//
// Returns:
//   - LightBuilderOption: a function that sets the light's position
func WithPosition(p geom.Point3) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = p
	}
}

// WithIntensity sets the light's scalar intensity.
//
// Parameters:
//   - intensity: intensity value, expected in [0, 1]
//
// Returns:
//   - LightBuilderOption: a function that sets the light's intensity
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}
