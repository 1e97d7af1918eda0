// Package gimbal is a scene placement core: object transforms with look-at
// orientation tracking (package object), indexed by a uniform spatial grid
// and observed through a small event manager.
package gimbal

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gimbal3d/gimbal/object"
)

// ============================================================================
// Types
// ============================================================================

// CellKey addresses a cell in the uniform grid.
type CellKey struct {
	X, Y, Z int
}

type cell struct {
	members []object.GraphNodeMember
}

// SpatialGrid is a uniform hashed grid indexing scene members by their
// position. The cell count is rounded up to a power of two so the spatial
// hash can mask instead of mod; distinct cells may share a bucket.
type SpatialGrid struct {
	cellSize float64
	cells    []cell
	cellMask int
	// last cell each member was filed under
	location map[object.GraphNodeMember]CellKey
}

// NewSpatialGrid creates a grid with the given cell edge length and at least
// numCells buckets.
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]cell, numCells)
	for i := range cells {
		cells[i].members = make([]object.GraphNodeMember, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
		location: make(map[object.GraphNodeMember]CellKey),
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// ============================================================================
// Indexing
// ============================================================================

// Insert files member under the cell containing its scene position.
// Re-inserting a known member only re-buckets it.
func (sg *SpatialGrid) Insert(member object.GraphNodeMember) {
	if prev, ok := sg.location[member]; ok {
		sg.removeFromCell(sg.hashCell(prev), member)
	}
	key := sg.worldToCell(member.ScenePosition())
	sg.location[member] = key
	idx := sg.hashCell(key)
	sg.cells[idx].members = append(sg.cells[idx].members, member)
}

// Remove drops member from the grid. Unknown members are ignored.
func (sg *SpatialGrid) Remove(member object.GraphNodeMember) {
	key, ok := sg.location[member]
	if !ok {
		return
	}
	delete(sg.location, member)
	sg.removeFromCell(sg.hashCell(key), member)
}

// Relocate re-buckets member after a position change. A member that stayed
// inside its cell, or was never inserted, is left alone.
func (sg *SpatialGrid) Relocate(member object.GraphNodeMember) {
	prev, ok := sg.location[member]
	if !ok {
		return
	}
	key := sg.worldToCell(member.ScenePosition())
	if key == prev {
		return
	}
	sg.removeFromCell(sg.hashCell(prev), member)
	sg.location[member] = key
	idx := sg.hashCell(key)
	sg.cells[idx].members = append(sg.cells[idx].members, member)
}

// Contains reports whether member is currently filed in the grid.
func (sg *SpatialGrid) Contains(member object.GraphNodeMember) bool {
	_, ok := sg.location[member]
	return ok
}

// Len returns the number of members in the grid.
func (sg *SpatialGrid) Len() int {
	return len(sg.location)
}

func (sg *SpatialGrid) removeFromCell(idx int, member object.GraphNodeMember) {
	members := sg.cells[idx].members
	for i, m := range members {
		if m == member {
			sg.cells[idx].members = append(members[:i], members[i+1:]...)
			return
		}
	}
}

// ============================================================================
// Queries
// ============================================================================

// QueryRadius returns the members within radius of center. Buckets are
// shared between cells, so candidates are filtered by actual distance.
func (sg *SpatialGrid) QueryRadius(center mgl64.Vec3, radius float64) []object.GraphNodeMember {
	minCell := sg.worldToCell(center.Sub(mgl64.Vec3{radius, radius, radius}))
	maxCell := sg.worldToCell(center.Add(mgl64.Vec3{radius, radius, radius}))

	found := make([]object.GraphNodeMember, 0, 8)
	seen := make(map[object.GraphNodeMember]bool)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				idx := sg.hashCell(CellKey{x, y, z})
				for _, m := range sg.cells[idx].members {
					if seen[m] {
						continue
					}
					seen[m] = true
					if m.ScenePosition().Sub(center).Len() <= radius {
						found = append(found, m)
					}
				}
			}
		}
	}

	return found
}

// worldToCell maps a world position to its cell coordinates.
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell maps a cell to a bucket index.
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
