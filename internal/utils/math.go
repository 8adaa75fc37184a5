package utils

import "math"

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Jitter returns base + added*r, with r drawn from src.
func Jitter(src Source, base, added float64) float64 {
	return base + added*src.Float64()
}

// Polar converts a speed and an angle into a velocity.
func Polar(speed, angle float64) (vx, vy float64) {
	return speed * math.Cos(angle), speed * math.Sin(angle)
}
