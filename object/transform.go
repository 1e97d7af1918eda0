// Package object holds the spatial placement core shared by everything that
// can be put in a scene: position, scale, orientation and the look-at
// constraint that keeps an object facing a target point as it moves.
package object

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gimbal3d/gimbal/orient"
)

// ErrNilLookTarget is returned by SetLookAt when given a nil target.
// Removing a look target must go through ClearLookAt so that a target is
// never dropped by accident.
var ErrNilLookTarget = errors.New("object: nil look target, use ClearLookAt to remove the target")

// Transform is the placement of one object in the scene. Orientation is
// stored as a quaternion. A look-at target can be set and is re-enforced as
// the object is translated around; manually rotating the object keeps the
// target but stops enforcing it until ResetToLookAt is called.
//
// A Transform has a single logical owner and provides no internal locking;
// concurrent mutation must be serialized by the caller.
type Transform struct {
	position    mgl64.Vec3
	scale       mgl64.Vec3
	orientation mgl64.Quat
	upAxis      mgl64.Vec3

	lookAt        *mgl64.Vec3
	lookAtValid   bool
	lookAtEnabled bool

	camera bool

	node    GraphNode
	inGraph bool
}

// New returns a Transform at the origin with unit scale, identity orientation
// and +Y up. Look-at enforcement is enabled but no target is set.
func New() *Transform {
	return &Transform{
		scale:         mgl64.Vec3{1, 1, 1},
		orientation:   mgl64.QuatIdent(),
		upAxis:        AxisVector(AxisY),
		lookAtEnabled: true,
	}
}

// NewCamera returns a Transform using the camera facing convention: the
// look-at basis keeps the view along -Z instead of turning +Z toward the
// target. The convention is fixed for the lifetime of the Transform.
func NewCamera() *Transform {
	t := New()
	t.camera = true
	return t
}

// IsCamera reports which facing convention the look-at basis uses.
func (t *Transform) IsCamera() bool {
	return t.camera
}

// lookAtActive reports whether translation must keep enforcing the target.
func (t *Transform) lookAtActive() bool {
	return t.lookAtEnabled && t.lookAt != nil && t.lookAtValid
}

// applyLookAt rebuilds the orientation from the look-at basis using up as
// the reference direction. Without a target the orientation resets to
// identity. Callers notify the graph node themselves, exactly once.
func (t *Transform) applyLookAt(up mgl64.Vec3) {
	if t.lookAt == nil {
		t.orientation = mgl64.QuatIdent()
		return
	}
	t.orientation = orient.LookAt(t.position.Sub(*t.lookAt), up, t.camera)
}

// updateGraphNode tells the spatial index the observable state changed.
func (t *Transform) updateGraphNode() {
	if t.node != nil {
		t.node.UpdateObject(t)
	}
}

// ============================================================================
// Translation
// ============================================================================

// SetPosition moves the object to position. An active look-at target is
// re-enforced with the current up axis.
func (t *Transform) SetPosition(position mgl64.Vec3) *Transform {
	t.position = position
	if t.lookAtActive() {
		t.applyLookAt(t.upAxis)
	}
	t.updateGraphNode()
	return t
}

// SetPositionXYZ moves the object to (x, y, z).
func (t *Transform) SetPositionXYZ(x, y, z float64) *Transform {
	return t.SetPosition(mgl64.Vec3{x, y, z})
}

// SetX sets the x component of the position.
func (t *Transform) SetX(x float64) *Transform {
	t.position[0] = x
	if t.lookAtActive() {
		t.applyLookAt(t.upAxis)
	}
	t.updateGraphNode()
	return t
}

// SetY sets the y component of the position.
func (t *Transform) SetY(y float64) *Transform {
	t.position[1] = y
	if t.lookAtActive() {
		t.applyLookAt(t.upAxis)
	}
	t.updateGraphNode()
	return t
}

// SetZ sets the z component of the position.
func (t *Transform) SetZ(z float64) *Transform {
	t.position[2] = z
	if t.lookAtActive() {
		t.applyLookAt(t.upAxis)
	}
	t.updateGraphNode()
	return t
}

// Position returns a copy of the current position.
func (t *Transform) Position() mgl64.Vec3 {
	return t.position
}

func (t *Transform) X() float64 { return t.position[0] }
func (t *Transform) Y() float64 { return t.position[1] }
func (t *Transform) Z() float64 { return t.position[2] }

// ============================================================================
// Rotation
// ============================================================================

// Rotate composes q onto the current orientation. Any manual rotation stops
// look-at enforcement until ResetToLookAt.
func (t *Transform) Rotate(q mgl64.Quat) *Transform {
	t.orientation = t.orientation.Mul(q)
	t.lookAtValid = false
	t.updateGraphNode()
	return t
}

// RotateAxisAngle composes a rotation of angle radians about axis.
func (t *Transform) RotateAxisAngle(axis mgl64.Vec3, angle float64) *Transform {
	return t.Rotate(mgl64.QuatRotate(angle, axis))
}

// RotateAround composes a rotation of angle radians about a cardinal axis.
func (t *Transform) RotateAround(axis Axis, angle float64) *Transform {
	return t.Rotate(mgl64.QuatRotate(angle, AxisVector(axis)))
}

// RotateMatrix composes the rotation described by m.
func (t *Transform) RotateMatrix(m mgl64.Mat4) *Transform {
	return t.Rotate(mgl64.Mat4ToQuat(m))
}

// SetRotation replaces the orientation with the rotation described by Euler
// angles in radians: x is roll, y is yaw, z is pitch.
func (t *Transform) SetRotation(x, y, z float64) *Transform {
	t.orientation = orient.FromEuler(y, z, x)
	t.lookAtValid = false
	t.updateGraphNode()
	return t
}

// SetRotX sets the roll angle, re-extracting yaw and pitch from the current
// orientation. Near ±90° pitch the re-extraction is approximate.
func (t *Transform) SetRotX(roll float64) *Transform {
	current := t.orientation
	t.orientation = orient.FromEuler(orient.Yaw(current), orient.Pitch(current), roll)
	t.lookAtValid = false
	t.updateGraphNode()
	return t
}

// SetRotY sets the yaw angle, re-extracting pitch and roll from the current
// orientation.
func (t *Transform) SetRotY(yaw float64) *Transform {
	current := t.orientation
	t.orientation = orient.FromEuler(yaw, orient.Pitch(current), orient.Roll(current))
	t.lookAtValid = false
	t.updateGraphNode()
	return t
}

// SetRotZ sets the pitch angle, re-extracting yaw and roll from the current
// orientation.
func (t *Transform) SetRotZ(pitch float64) *Transform {
	current := t.orientation
	t.orientation = orient.FromEuler(orient.Yaw(current), pitch, orient.Roll(current))
	t.lookAtValid = false
	t.updateGraphNode()
	return t
}

// RotX extracts the roll Euler angle from the current orientation.
func (t *Transform) RotX() float64 {
	return orient.Roll(t.orientation)
}

// RotY extracts the yaw Euler angle from the current orientation.
func (t *Transform) RotY() float64 {
	return orient.Yaw(t.orientation)
}

// RotZ extracts the pitch Euler angle from the current orientation.
func (t *Transform) RotZ() float64 {
	return orient.Pitch(t.orientation)
}

// SetOrientation replaces the orientation with a copy of q.
func (t *Transform) SetOrientation(q mgl64.Quat) *Transform {
	t.orientation = q
	t.lookAtValid = false
	t.updateGraphNode()
	return t
}

// Orientation returns a copy of the current orientation.
func (t *Transform) Orientation() mgl64.Quat {
	return t.orientation
}

// ============================================================================
// Look-at
// ============================================================================

// SetLookAt orients the object toward target and keeps enforcing it as the
// object moves. The target is copied. A nil target is rejected with
// ErrNilLookTarget and leaves the Transform untouched.
func (t *Transform) SetLookAt(target *mgl64.Vec3) error {
	if target == nil {
		return ErrNilLookTarget
	}
	t.SetLookAtXYZ(target.X(), target.Y(), target.Z())
	return nil
}

// SetLookAtXYZ orients the object toward the point (x, y, z) and keeps
// enforcing it as the object moves.
func (t *Transform) SetLookAtXYZ(x, y, z float64) *Transform {
	t.lookAt = &mgl64.Vec3{x, y, z}
	t.applyLookAt(t.upAxis)
	t.lookAtValid = true
	t.updateGraphNode()
	return t
}

// ClearLookAt removes the look-at target. With retainOrientation the current
// orientation is kept as-is and no notification is issued; otherwise the
// orientation resets to identity.
func (t *Transform) ClearLookAt(retainOrientation bool) *Transform {
	t.lookAt = nil
	t.lookAtValid = true
	if !retainOrientation {
		t.orientation = mgl64.QuatIdent()
		t.updateGraphNode()
	}
	return t
}

// EnableLookAt turns automatic target enforcement back on. The target and
// orientation are untouched.
func (t *Transform) EnableLookAt() {
	t.lookAtEnabled = true
}

// DisableLookAt stops position changes from enforcing the target. The target
// itself is kept.
func (t *Transform) DisableLookAt() {
	t.lookAtEnabled = false
}

// IsLookAtEnabled reports whether position changes enforce the target.
func (t *Transform) IsLookAtEnabled() bool {
	return t.lookAtEnabled
}

// IsLookAtValid reports whether the current orientation was produced by the
// look-at constraint rather than a manual rotation.
func (t *Transform) IsLookAtValid() bool {
	return t.lookAtValid
}

// LookAtTarget returns a copy of the current target. ok is false when no
// target is set.
func (t *Transform) LookAtTarget() (target mgl64.Vec3, ok bool) {
	if t.lookAt == nil {
		return mgl64.Vec3{}, false
	}
	return *t.lookAt, true
}

// ResetToLookAt rebuilds the orientation from the look-at target and the
// current up axis, restoring enforcement after a manual rotation. Without a
// target the orientation resets to identity.
func (t *Transform) ResetToLookAt() *Transform {
	return t.ResetToLookAtUp(t.upAxis)
}

// ResetToLookAtUp rebuilds the orientation from the look-at target using the
// provided up direction instead of the stored up axis.
func (t *Transform) ResetToLookAtUp(up mgl64.Vec3) *Transform {
	t.applyLookAt(up)
	t.lookAtValid = true
	t.updateGraphNode()
	return t
}

// ============================================================================
// Up axis
// ============================================================================

// SetUpAxis sets the reference up direction used by the look-at basis. An
// actively enforced target is recomputed immediately; an invalid or disabled
// constraint is left alone, changing the up axis never revives it.
func (t *Transform) SetUpAxis(up mgl64.Vec3) *Transform {
	t.upAxis = up
	if t.lookAtActive() {
		t.applyLookAt(t.upAxis)
		t.updateGraphNode()
	}
	return t
}

// SetUpAxisXYZ sets the up direction to (x, y, z).
func (t *Transform) SetUpAxisXYZ(x, y, z float64) *Transform {
	return t.SetUpAxis(mgl64.Vec3{x, y, z})
}

// SetUpAxisCardinal sets the up direction to a cardinal axis.
func (t *Transform) SetUpAxisCardinal(axis Axis) *Transform {
	return t.SetUpAxis(AxisVector(axis))
}

// ResetUpAxis resets the up direction to +Y.
func (t *Transform) ResetUpAxis() *Transform {
	return t.SetUpAxis(AxisVector(AxisY))
}

// UpAxis returns a copy of the current up direction.
func (t *Transform) UpAxis() mgl64.Vec3 {
	return t.upAxis
}

// ============================================================================
// Scaling
// ============================================================================

// SetScale sets the per-axis scale factors. Scale never interacts with the
// look-at constraint.
func (t *Transform) SetScale(scale mgl64.Vec3) *Transform {
	t.scale = scale
	t.updateGraphNode()
	return t
}

// SetScaleXYZ sets the scale factors per axis.
func (t *Transform) SetScaleXYZ(x, y, z float64) *Transform {
	return t.SetScale(mgl64.Vec3{x, y, z})
}

// SetUniformScale sets the same scale factor on all three axes.
func (t *Transform) SetUniformScale(scale float64) *Transform {
	return t.SetScale(mgl64.Vec3{scale, scale, scale})
}

// SetScaleX sets the scale factor on the x axis.
func (t *Transform) SetScaleX(scale float64) *Transform {
	t.scale[0] = scale
	t.updateGraphNode()
	return t
}

// SetScaleY sets the scale factor on the y axis.
func (t *Transform) SetScaleY(scale float64) *Transform {
	t.scale[1] = scale
	t.updateGraphNode()
	return t
}

// SetScaleZ sets the scale factor on the z axis.
func (t *Transform) SetScaleZ(scale float64) *Transform {
	t.scale[2] = scale
	t.updateGraphNode()
	return t
}

// Scale returns a copy of the per-axis scale factors.
func (t *Transform) Scale() mgl64.Vec3 {
	return t.scale
}

func (t *Transform) ScaleX() float64 { return t.scale[0] }
func (t *Transform) ScaleY() float64 { return t.scale[1] }
func (t *Transform) ScaleZ() float64 { return t.scale[2] }

// ============================================================================
// Graph linkage
// ============================================================================

// SetGraphNode attaches this Transform to a spatial index node. No
// notification is issued; the index drives registration itself.
func (t *Transform) SetGraphNode(node GraphNode, inside bool) {
	t.node = node
	t.inGraph = inside
}

// GraphNode returns the attached spatial index node, nil when unlinked.
func (t *Transform) GraphNode() GraphNode {
	return t.node
}

// InGraph reports whether this Transform is currently registered in the
// attached index.
func (t *Transform) InGraph() bool {
	return t.inGraph
}

// ScenePosition is the world position the spatial index files this object
// under. It reports the same value as Position.
func (t *Transform) ScenePosition() mgl64.Vec3 {
	return t.position
}
