package main

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gimbal3d/gimbal"
	"github.com/gimbal3d/gimbal/object"
)

func main() {
	scene := gimbal.NewScene(2.0, 256)
	scene.Workers = 4

	scene.Events.Subscribe(gimbal.OBJECT_ADDED, func(event gimbal.Event) {
		added := event.(gimbal.ObjectAddedEvent)
		fmt.Printf("added at %v\n", added.Member.ScenePosition())
	})
	moves := 0
	scene.Events.Subscribe(gimbal.OBJECT_MOVED, func(event gimbal.Event) {
		moves++
	})

	// A camera watching the origin from (0, 0, 5).
	camera := object.NewCamera()
	camera.SetPositionXYZ(0, 0, 5)
	scene.Add(camera)
	camera.SetLookAtXYZ(0, 0, 0)

	// A satellite orbiting the origin, kept facing it by its look-at target.
	satellite := object.New().SetPositionXYZ(3, 0, 0).SetUniformScale(0.5)
	scene.Add(satellite)
	satellite.SetLookAtXYZ(0, 0, 0)

	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		satellite.SetPositionXYZ(3*math.Cos(angle), 0, 3*math.Sin(angle))
		fmt.Printf("step %d: pos=%v yaw=%6.3f valid=%v\n",
			i, satellite.Position(), satellite.RotY(), satellite.IsLookAtValid())
	}

	// A manual rotation overrides the constraint until it is reset.
	satellite.RotateAround(object.AxisY, math.Pi/6)
	fmt.Printf("after manual rotation: valid=%v\n", satellite.IsLookAtValid())
	satellite.ResetToLookAt()
	fmt.Printf("after reset: valid=%v\n", satellite.IsLookAtValid())

	near := scene.QueryRadius(mgl64.Vec3{0, 0, 0}, 4)
	fmt.Printf("members within 4 units of origin: %d\n", len(near))

	var count atomic.Int64
	scene.Each(func(member object.GraphNodeMember) {
		if member.InGraph() {
			count.Add(1)
		}
	})
	fmt.Printf("members in graph: %d\n", count.Load())

	scene.Events.Flush()
	fmt.Printf("move notifications delivered: %d\n", moves)
}
