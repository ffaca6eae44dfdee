// internal/utils/math.go
package utils

// Lerp is plain linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle interpolates between two angles in degrees along the shorter arc.
func LerpAngle(from, to, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}

	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle maps an angle in degrees into [-180, 180].
func NormalizeAngle(angle float64) float64 {
	for angle > 180 {
		angle -= 360
	}
	for angle < -180 {
		angle += 360
	}
	return angle
}
