// Package orient builds and decomposes orientation quaternions for scene
// objects: look-at basis construction and Euler angle extraction in the
// yaw (Y), pitch (X), roll (Z) convention.
package orient

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Beyond this the orientation is considered pitched onto a gimbal pole and
// yaw/roll are no longer separable.
const poleThreshold = 0.499

// LookAt returns the orientation viewing along direction with the given up
// reference. direction is the backward vector (position minus target).
//
// camera selects the facing convention: a camera keeps the identity basis and
// views along -Z, any other object has its +Z axis turned toward the target.
// A zero direction or an up parallel to direction is not guarded; the
// resulting non-finite values propagate to the caller.
func LookAt(direction, up mgl64.Vec3, camera bool) mgl64.Quat {
	z := direction.Normalize()
	x := up.Cross(z).Normalize()
	y := z.Cross(x)

	if !camera {
		x = x.Mul(-1)
		z = z.Mul(-1)
	}

	// Column-major basis matrix (right, up, backward).
	m := mgl64.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}

	return mgl64.Mat4ToQuat(m)
}

// FromEuler builds a quaternion from Euler angles in radians, applied as
// yaw about Y, then pitch about X, then roll about Z.
func FromEuler(yaw, pitch, roll float64) mgl64.Quat {
	return mgl64.AnglesToQuat(yaw, pitch, roll, mgl64.YXZ)
}

// gimbalPole reports which pole the orientation is pitched onto: +1 for north
// (+90° pitch), -1 for south, 0 when away from both.
func gimbalPole(q mgl64.Quat) int {
	t := q.X()*q.Y() + q.Z()*q.W
	switch {
	case t > poleThreshold:
		return 1
	case t < -poleThreshold:
		return -1
	}
	return 0
}

// Yaw extracts the rotation about the Y axis in radians. At a gimbal pole the
// yaw is folded into the roll and reported as 0.
func Yaw(q mgl64.Quat) float64 {
	if gimbalPole(q) != 0 {
		return 0
	}
	return math.Atan2(2*(q.Y()*q.W+q.X()*q.Z()), 1-2*(q.Y()*q.Y()+q.X()*q.X()))
}

// Pitch extracts the rotation about the X axis in radians, clamped to
// [-π/2, π/2].
func Pitch(q mgl64.Quat) float64 {
	if pole := gimbalPole(q); pole != 0 {
		return float64(pole) * math.Pi / 2
	}
	return math.Asin(mgl64.Clamp(2*(q.W*q.X()-q.Z()*q.Y()), -1, 1))
}

// Roll extracts the rotation about the Z axis in radians.
func Roll(q mgl64.Quat) float64 {
	if pole := gimbalPole(q); pole != 0 {
		return float64(pole) * 2 * math.Atan2(q.Y(), q.W)
	}
	return math.Atan2(2*(q.W*q.Z()+q.Y()*q.X()), 1-2*(q.X()*q.X()+q.Z()*q.Z()))
}
