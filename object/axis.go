package object

import "github.com/go-gl/mathgl/mgl64"

// Axis names a cardinal world axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// AxisVector returns the unit vector for a cardinal axis.
func AxisVector(axis Axis) mgl64.Vec3 {
	switch axis {
	case AxisX:
		return mgl64.Vec3{1, 0, 0}
	case AxisY:
		return mgl64.Vec3{0, 1, 0}
	}
	return mgl64.Vec3{0, 0, 1}
}
