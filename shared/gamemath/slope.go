package gamemath

import (
	"math"

	"github.com/solarlune/resolv"
)

// SlopeSurfaceY calculates the slope surface Y (screen space, y down) at centerX.
// upRightTag and upLeftTag are the resolv tags used to identify slope direction.
func SlopeSurfaceY(centerX float64, ramp *resolv.Object, upRightTag, upLeftTag string) float64 {
	relativeX := ClampFloat(centerX-ramp.X, 0, ramp.W)
	slope := relativeX / ramp.W

	if ramp.HasTags(upRightTag) {
		return ramp.Y + ramp.H*(1-slope)
	}
	if ramp.HasTags(upLeftTag) {
		return ramp.Y + ramp.H*slope
	}
	return ramp.Y
}

// SlopeAngle returns the ramp incline in degrees.
func SlopeAngle(ramp *resolv.Object) float64 {
	if ramp.W <= 0 {
		return 90
	}
	return math.Atan2(ramp.H, ramp.W) * 180 / math.Pi
}

// SlopeNormal returns the unit surface normal of the ramp with y pointing up.
// The x component points downhill.
func SlopeNormal(ramp *resolv.Object, upRightTag, upLeftTag string) (nx, ny float64) {
	rad := SlopeAngle(ramp) * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	switch {
	case ramp.HasTags(upRightTag):
		return -sin, cos
	case ramp.HasTags(upLeftTag):
		return sin, cos
	}
	return 0, 1
}
