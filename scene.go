package gimbal

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gimbal3d/gimbal/object"
)

const DEFAULT_WORKERS = 1

// Scene tracks placed objects through a spatial grid and relays their
// transform change notifications as events. Scene is the graph node that
// transforms are attached to; every observable mutation of an attached
// transform lands in UpdateObject.
type Scene struct {
	// List of all members in the scene
	Members []object.GraphNodeMember
	Grid    *SpatialGrid
	Workers int

	Events Events
}

// NewScene creates a scene indexed by a grid with the given cell edge length
// and bucket count.
func NewScene(cellSize float64, numCells int) *Scene {
	return &Scene{
		Grid:   NewSpatialGrid(cellSize, numCells),
		Events: NewEvents(),
	}
}

// Add inserts member into the scene, files it in the grid and attaches it to
// the graph.
func (s *Scene) Add(member object.GraphNodeMember) {
	s.Members = append(s.Members, member)
	s.Grid.Insert(member)
	member.SetGraphNode(s, true)
	s.Events.emit(ObjectAddedEvent{Member: member})
}

// Remove detaches member from the graph and drops it from the scene.
// Removing an unknown member is a no-op.
func (s *Scene) Remove(member object.GraphNodeMember) {
	k := -1
	for i, m := range s.Members {
		if m == member {
			k = i
			break
		}
	}
	if k == -1 {
		return
	}
	s.Members = append(s.Members[:k], s.Members[k+1:]...)

	s.Grid.Remove(member)
	member.SetGraphNode(nil, false)
	s.Events.emit(ObjectRemovedEvent{Member: member})
}

// UpdateObject is the notification entry point called by transforms on every
// observable mutation. It re-buckets the member and records a move event.
func (s *Scene) UpdateObject(member object.GraphNodeMember) {
	s.Grid.Relocate(member)
	s.Events.emit(ObjectMovedEvent{Member: member})
}

// Contains reports whether member is indexed by the scene.
func (s *Scene) Contains(member object.GraphNodeMember) bool {
	return s.Grid.Contains(member)
}

// QueryRadius returns the members within radius of center.
func (s *Scene) QueryRadius(center mgl64.Vec3, radius float64) []object.GraphNodeMember {
	return s.Grid.QueryRadius(center, radius)
}

// Each runs fn over every member, chunked across Workers goroutines. fn must
// treat transforms as read-only; mutation stays with the single owner.
func (s *Scene) Each(fn func(member object.GraphNodeMember)) {
	workers := max(DEFAULT_WORKERS, s.Workers)
	task(workers, s.Members, fn)
}
