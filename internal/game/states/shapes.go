package states

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scenes/internal/config"
	"github.com/Faultbox/terrain-scenes/internal/engine/camera"
	"github.com/Faultbox/terrain-scenes/internal/engine/input"
	"github.com/Faultbox/terrain-scenes/internal/engine/lighting"
	"github.com/Faultbox/terrain-scenes/internal/engine/renderer"
	"github.com/Faultbox/terrain-scenes/internal/engine/shapes"
	"github.com/Faultbox/terrain-scenes/internal/logger"
	"github.com/Faultbox/terrain-scenes/pkg/math"
)

// circleSegments is the tessellation of the circular base.
const circleSegments = 64

type meshObject struct {
	shape *shapes.Mesh
	model math.Mat4
	color [3]float32
	gpu   *renderer.Mesh
}

type lineObject struct {
	lines shapes.Lines
	model math.Mat4
	color [3]float32
	gpu   *renderer.LineMesh
}

// ShapesState shows a cube on a circular base with two line sets, viewed by
// a camera that follows the cursor.
type ShapesState struct {
	camera *camera.AnimatedCamera
	home   math.Vec3
	swing  float32
	width  int
	height int
	light  lighting.PointLight

	meshes []*meshObject
	lines  []*lineObject
	log    *zap.Logger
}

// NewShapesState creates the shapes scene for a window of the given size.
func NewShapesState(cam config.CameraConfig, width, height int) *ShapesState {
	home := math.V3(cam.Home)
	return &ShapesState{
		camera: camera.NewAnimatedCamera(home),
		home:   home,
		swing:  cam.CursorSwing,
		width:  width,
		height: height,
		light:  lighting.NewPointLight(math.Vec3{X: 4, Y: 8, Z: 4}, 1500, 20),
		meshes: []*meshObject{
			{
				// Circle faces +Z; tip it flat onto the XZ plane
				shape: shapes.Circle(4, circleSegments),
				model: math.RotateX(-gomath.Pi / 2),
				color: [3]float32{1, 1, 1},
			},
			{
				shape: shapes.Cube(1),
				model: math.Translate(0, 0.5, 0),
				color: [3]float32{124.0 / 255, 144.0 / 255, 1},
			},
		},
		lines: []*lineObject{
			{
				lines: shapes.NewLineList(
					shapes.Segment{Start: math.Zero, End: math.Vec3{X: 1, Y: 1}},
					shapes.Segment{Start: math.Vec3{X: 1, Y: 1}, End: math.Vec3{X: 1}},
				),
				model: math.Translate(-1.5, 2, 0),
				color: [3]float32{0, 1, 0},
			},
			{
				lines: shapes.NewLineStrip(math.Zero, math.Vec3{X: 1, Y: 1}, math.Vec3{X: 1}),
				model: math.Translate(0.5, 2, 0),
				color: [3]float32{0, 0, 1},
			},
		},
		log: logger.Named("shapes"),
	}
}

// Enter uploads every shape.
func (s *ShapesState) Enter(r *renderer.Renderer) error {
	for _, obj := range s.meshes {
		gpu, err := r.UploadShape(obj.shape)
		if err != nil {
			return err
		}
		obj.gpu = gpu
	}
	for _, obj := range s.lines {
		gpu, err := r.UploadLines(obj.lines)
		if err != nil {
			return err
		}
		obj.gpu = gpu
	}
	r.SetLight(s.light)

	s.log.Info("shapes scene ready",
		zap.Int("meshes", len(s.meshes)),
		zap.Int("lines", len(s.lines)),
	)
	return nil
}

// Exit is a no-op; the renderer owns GPU buffers.
func (s *ShapesState) Exit() error {
	return nil
}

// Update retargets the camera from the cursor and eases toward it.
func (s *ShapesState) Update(dt float64, in *input.Input) error {
	for _, e := range in.Events() {
		if e.Type == input.EventWindowResize {
			s.width, s.height = e.Width, e.Height
		}
	}

	x, y, inside := in.Cursor()
	s.camera.Destination = camera.CursorDestination(s.home,
		float32(x), float32(y), float32(s.width), float32(s.height), s.swing, inside)
	s.camera.Update(float32(dt))
	return nil
}

// Render draws all shapes.
func (s *ShapesState) Render(r *renderer.Renderer) error {
	r.SetView(s.camera.ViewMatrix())
	for _, obj := range s.meshes {
		r.DrawMesh(obj.gpu, obj.model, obj.color)
	}
	for _, obj := range s.lines {
		r.DrawLines(obj.gpu, obj.model, obj.color)
	}
	return nil
}

// Camera returns the animated camera.
func (s *ShapesState) Camera() *camera.AnimatedCamera {
	return s.camera
}
