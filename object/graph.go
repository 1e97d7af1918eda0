package object

import "github.com/go-gl/mathgl/mgl64"

// GraphNode is the spatial index a placed object reports to. It receives one
// UpdateObject call per observable transform mutation; the notification has
// no error channel, a misbehaving index is a defect in the index.
type GraphNode interface {
	// UpdateObject tells the index that member's observable state changed.
	UpdateObject(member GraphNodeMember)
	// Contains reports whether the index currently tracks member.
	Contains(member GraphNodeMember) bool
}

// GraphNodeMember is an object that can be filed in a spatial index. The
// member does not own the node; the reference is purely a registration handle.
type GraphNodeMember interface {
	// SetGraphNode attaches the member to node. inside records whether the
	// member is currently considered registered in the index. Attaching
	// (nil, false) clears the link.
	SetGraphNode(node GraphNode, inside bool)
	// GraphNode returns the attached node, nil when unlinked.
	GraphNode() GraphNode
	// InGraph reports the registration flag.
	InGraph() bool
	// ScenePosition is the location the index files the member under.
	ScenePosition() mgl64.Vec3
}
