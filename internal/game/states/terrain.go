package states

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scenes/internal/config"
	"github.com/Faultbox/terrain-scenes/internal/engine/camera"
	"github.com/Faultbox/terrain-scenes/internal/engine/debug"
	"github.com/Faultbox/terrain-scenes/internal/engine/input"
	"github.com/Faultbox/terrain-scenes/internal/engine/lighting"
	"github.com/Faultbox/terrain-scenes/internal/engine/renderer"
	"github.com/Faultbox/terrain-scenes/internal/engine/terrain"
	"github.com/Faultbox/terrain-scenes/internal/logger"
	"github.com/Faultbox/terrain-scenes/pkg/math"
)

var (
	terrainColor = [3]float32{1, 0, 0}
	boundsColor  = [3]float32{1, 1, 0}
)

// TerrainState shows a generated terrain mesh under a fly camera.
type TerrainState struct {
	result     *terrain.Result
	camera     *camera.FlyCamera
	light      lighting.PointLight
	wireframe  bool
	showBounds bool

	mesh   *renderer.Mesh
	bounds *renderer.LineMesh
	log    *zap.Logger
}

// NewTerrainState creates the terrain scene for an already generated result.
func NewTerrainState(result *terrain.Result, cam config.CameraConfig, wireframe bool) *TerrainState {
	return &TerrainState{
		result:    result,
		camera:    camera.NewFlyCamera(math.V3(cam.Position), math.V3(cam.LookAt), cam.FlySpeed),
		light:     lighting.NewPointLight(math.Vec3{X: 50, Y: 10, Z: 50}, 1000, 1000),
		wireframe: wireframe,
		log:       logger.Named("terrain"),
	}
}

// Enter uploads the terrain mesh.
func (s *TerrainState) Enter(r *renderer.Renderer) error {
	m := s.result.Mesh
	mesh, err := r.UploadMesh(m.Positions, m.Normals, m.Indices)
	if err != nil {
		return fmt.Errorf("upload terrain mesh: %w", err)
	}
	s.mesh = mesh

	box := debug.BBoxLines(m.Bounds.Min, m.Bounds.Max, debug.DefaultBBoxPadding)
	if s.bounds, err = r.UploadLines(box); err != nil {
		return fmt.Errorf("upload terrain bounds: %w", err)
	}
	r.SetLight(s.light)

	s.log.Info("terrain scene ready",
		zap.Int("vertices", len(m.Positions)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Bool("wireframe", s.wireframe),
	)
	return nil
}

// Exit is a no-op; the renderer owns GPU buffers.
func (s *TerrainState) Exit() error {
	return nil
}

// Update moves the camera and toggles wireframe on Ctrl+W.
// Movement is suppressed while Ctrl is held. B toggles the bounds box.
func (s *TerrainState) Update(dt float64, in *input.Input) error {
	if in.JustPressed(sdl.SCANCODE_B) {
		s.showBounds = !s.showBounds
	}
	if in.ControlHeld() {
		if in.JustPressed(sdl.SCANCODE_W) {
			s.wireframe = !s.wireframe
			s.log.Debug("wireframe toggled", zap.Bool("enabled", s.wireframe))
		}
		return nil
	}

	var forward, right, up float32
	if in.Pressed(sdl.SCANCODE_W) {
		forward++
	}
	if in.Pressed(sdl.SCANCODE_S) {
		forward--
	}
	if in.Pressed(sdl.SCANCODE_A) {
		right--
	}
	if in.Pressed(sdl.SCANCODE_D) {
		right++
	}
	if in.Pressed(sdl.SCANCODE_Q) {
		up--
	}
	if in.Pressed(sdl.SCANCODE_E) {
		up++
	}

	s.camera.HandleMovement(forward, right, up, float32(dt))
	return nil
}

// Render draws the terrain.
func (s *TerrainState) Render(r *renderer.Renderer) error {
	r.SetWireframe(s.wireframe)
	r.SetView(s.camera.ViewMatrix())
	r.DrawMesh(s.mesh, math.Identity(), terrainColor)
	if s.showBounds {
		r.DrawLines(s.bounds, math.Identity(), boundsColor)
	}
	return nil
}

// Camera returns the fly camera.
func (s *TerrainState) Camera() *camera.FlyCamera {
	return s.camera
}

// Wireframe reports whether the wireframe overlay is on.
func (s *TerrainState) Wireframe() bool {
	return s.wireframe
}

// ShowBounds reports whether the bounds box is drawn.
func (s *TerrainState) ShowBounds() bool {
	return s.showBounds
}
