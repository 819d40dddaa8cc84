// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/Faultbox/terrain-scenes/pkg/math"
)

// snapDistance is how close an AnimatedCamera must get before it snaps.
const snapDistance = 0.01

// FlyCamera translates along world axes while keeping a fixed viewing direction.
type FlyCamera struct {
	Position math.Vec3
	Forward  math.Vec3 // Unit viewing direction

	// Units per second
	Speed float32
}

// NewFlyCamera creates a fly camera at position looking toward target.
func NewFlyCamera(position, target math.Vec3, speed float32) *FlyCamera {
	return &FlyCamera{
		Position: position,
		Forward:  target.Sub(position).Normalize(),
		Speed:    speed,
	}
}

// HandleMovement moves the camera along world axes. Each axis value is
// typically -1, 0 or 1: forward is +Z, right is +X, up is +Y.
func (c *FlyCamera) HandleMovement(forward, right, up, dt float32) {
	move := math.Vec3{X: right, Y: up, Z: forward}
	c.Position = c.Position.Add(move.Scale(dt * c.Speed))
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Forward), math.UnitY)
}

// AnimatedCamera eases toward a destination while always looking at a target.
// Speed is proportional to the remaining distance, so motion decelerates.
type AnimatedCamera struct {
	Position    math.Vec3
	Destination math.Vec3
	Target      math.Vec3
}

// NewAnimatedCamera creates a camera resting at position, looking at the origin.
func NewAnimatedCamera(position math.Vec3) *AnimatedCamera {
	return &AnimatedCamera{
		Position:    position,
		Destination: position,
		Target:      math.Zero,
	}
}

// Update advances the camera by dt seconds. It returns true once the camera
// has arrived at its destination.
func (c *AnimatedCamera) Update(dt float32) bool {
	distance := c.Position.Distance(c.Destination)
	if distance < snapDistance {
		c.Position = c.Destination
		return true
	}

	velocity := distance / 2
	c.Position = c.Position.Lerp(c.Destination, velocity*dt)
	return false
}

// ViewMatrix returns the view matrix for this camera.
func (c *AnimatedCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, math.UnitY)
}

// CursorDestination maps a cursor position to a camera destination around home.
// The window edges shift the destination by swing units horizontally and
// vertically; screen Y grows downward, world Y grows upward. A cursor outside
// the window returns home.
func CursorDestination(home math.Vec3, cursorX, cursorY, width, height, swing float32, inside bool) math.Vec3 {
	if !inside || width <= 0 || height <= 0 {
		return home
	}
	offsetX := (cursorX/width*2 - 1) * swing
	offsetY := (cursorY/height*2 - 1) * swing
	return home.Add(math.Vec3{X: offsetX, Y: -offsetY})
}
