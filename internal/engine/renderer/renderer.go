// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scenes/internal/engine/lighting"
	"github.com/Faultbox/terrain-scenes/internal/engine/shader"
	"github.com/Faultbox/terrain-scenes/internal/engine/shapes"
	"github.com/Faultbox/terrain-scenes/internal/logger"
	"github.com/Faultbox/terrain-scenes/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	FOV    float32 // Vertical field of view in degrees
	MSAA   bool
}

// Mesh is an indexed triangle mesh uploaded to the GPU.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// LineMesh is a line list or line strip uploaded to the GPU.
type LineMesh struct {
	vao, vbo    uint32
	vertexCount int32
	mode        uint32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	litProgram  uint32
	lineProgram uint32

	// Uniform locations
	locLitModel, locLitViewProj, locLitColor int32
	locAmbient                               int32
	locLightPos, locLightColor               int32
	locLightIntensity, locLightRange         int32
	locLineModel, locLineViewProj            int32
	locLineColor                             int32

	viewProj  math.Mat4
	light     lighting.PointLight
	ambient   [3]float32
	wireframe bool

	meshes []*Mesh
	lines  []*LineMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		viewProj: math.Identity(),
		ambient:  [3]float32{0.2, 0.2, 0.2},
		light:    lighting.NewPointLight(math.Zero, 1000, 1000),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	if cfg.MSAA {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.litProgram, err = shader.CompileProgram(litVertexShader, litFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("lit shader: %w", err)
	}
	r.lineProgram, err = shader.CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		gl.DeleteProgram(r.litProgram)
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.locLitModel = shader.GetUniform(r.litProgram, "uModel")
	r.locLitViewProj = shader.GetUniform(r.litProgram, "uViewProj")
	r.locLitColor = shader.GetUniform(r.litProgram, "uColor")
	r.locAmbient = shader.GetUniform(r.litProgram, "uAmbient")
	r.locLightPos = shader.GetUniform(r.litProgram, "uLightPos")
	r.locLightColor = shader.GetUniform(r.litProgram, "uLightColor")
	r.locLightIntensity = shader.GetUniform(r.litProgram, "uLightIntensity")
	r.locLightRange = shader.GetUniform(r.litProgram, "uLightRange")

	r.locLineModel = shader.GetUniform(r.lineProgram, "uModel")
	r.locLineViewProj = shader.GetUniform(r.lineProgram, "uViewProj")
	r.locLineColor = shader.GetUniform(r.lineProgram, "uColor")

	logger.Debug("shader programs created",
		zap.Uint32("lit", r.litProgram),
		zap.Uint32("line", r.lineProgram),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	for _, l := range r.lines {
		gl.DeleteVertexArrays(1, &l.vao)
		gl.DeleteBuffers(1, &l.vbo)
	}
	r.meshes, r.lines = nil, nil
	if r.litProgram != 0 {
		gl.DeleteProgram(r.litProgram)
	}
	if r.lineProgram != 0 {
		gl.DeleteProgram(r.lineProgram)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Projection returns the perspective projection for the current viewport.
func (r *Renderer) Projection() math.Mat4 {
	return Projection(r.config.FOV, r.config.Width, r.config.Height)
}

// Projection builds a perspective projection for a viewport size.
func Projection(fovDegrees float32, width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	fov := fovDegrees * float32(gomath.Pi) / 180
	return math.Perspective(fov, aspect, 0.1, 1000)
}

// SetView sets the camera view matrix used by subsequent draws.
func (r *Renderer) SetView(view math.Mat4) {
	r.viewProj = r.Projection().Mul(view)
}

// SetLight replaces the scene point light.
func (r *Renderer) SetLight(light lighting.PointLight) {
	r.light = light
}

// SetWireframe toggles the edge overlay drawn over every triangle mesh.
func (r *Renderer) SetWireframe(enabled bool) {
	r.wireframe = enabled
}

// Wireframe reports whether wireframe rendering is on.
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// ReadPixels reads the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	width, height := r.config.Width, r.config.Height
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// UploadMesh copies an indexed triangle mesh to the GPU. positions and normals
// must have the same length.
func (r *Renderer) UploadMesh(positions, normals [][3]float32, indices []uint32) (*Mesh, error) {
	vertices, err := Interleave(positions, normals)
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("mesh has no indices")
	}

	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.meshes = append(r.meshes, m)
	logger.Debug("mesh uploaded",
		zap.Int("vertices", len(positions)),
		zap.Int("indices", len(indices)),
	)
	return m, nil
}

// UploadShape uploads a primitive mesh.
func (r *Renderer) UploadShape(s *shapes.Mesh) (*Mesh, error) {
	return r.UploadMesh(s.Positions, s.Normals, s.Indices)
}

// UploadLines copies a line list or strip to the GPU.
func (r *Renderer) UploadLines(lines shapes.Lines) (*LineMesh, error) {
	if lines.SegmentCount() == 0 {
		return nil, fmt.Errorf("lines have no segments")
	}

	l := &LineMesh{
		vertexCount: int32(len(lines.Points)),
		mode:        gl.LINES,
	}
	if lines.Topology == shapes.LineStrip {
		l.mode = gl.LINE_STRIP
	}

	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)

	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(lines.Points)*3*4, unsafe.Pointer(&lines.Points[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	r.lines = append(r.lines, l)
	return l, nil
}

// DrawMesh draws a mesh with a flat colour under the scene light. With
// wireframe on, the triangle edges are overlaid in the wireframe colour.
func (r *Renderer) DrawMesh(m *Mesh, model math.Mat4, color [3]float32) {
	gl.UseProgram(r.litProgram)
	gl.UniformMatrix4fv(r.locLitModel, 1, false, model.Ptr())
	gl.UniformMatrix4fv(r.locLitViewProj, 1, false, r.viewProj.Ptr())
	gl.Uniform3f(r.locLitColor, color[0], color[1], color[2])
	gl.Uniform3f(r.locAmbient, r.ambient[0], r.ambient[1], r.ambient[2])
	gl.Uniform3f(r.locLightPos, r.light.Position.X, r.light.Position.Y, r.light.Position.Z)
	gl.Uniform3f(r.locLightColor, r.light.Color[0], r.light.Color[1], r.light.Color[2])
	gl.Uniform1f(r.locLightIntensity, r.light.Intensity)
	gl.Uniform1f(r.locLightRange, r.light.Range)

	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)

	if r.wireframe {
		gl.UseProgram(r.lineProgram)
		gl.UniformMatrix4fv(r.locLineModel, 1, false, model.Ptr())
		gl.UniformMatrix4fv(r.locLineViewProj, 1, false, r.viewProj.Ptr())
		gl.Uniform3f(r.locLineColor, wireframeColor[0], wireframeColor[1], wireframeColor[2])

		// Pull edges toward the camera so they win the depth test
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		gl.Enable(gl.POLYGON_OFFSET_LINE)
		gl.PolygonOffset(-1, -1)
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
		gl.Disable(gl.POLYGON_OFFSET_LINE)
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(0)
}

// DrawLines draws lines with a flat unlit colour.
func (r *Renderer) DrawLines(l *LineMesh, model math.Mat4, color [3]float32) {
	gl.UseProgram(r.lineProgram)
	gl.UniformMatrix4fv(r.locLineModel, 1, false, model.Ptr())
	gl.UniformMatrix4fv(r.locLineViewProj, 1, false, r.viewProj.Ptr())
	gl.Uniform3f(r.locLineColor, color[0], color[1], color[2])

	gl.BindVertexArray(l.vao)
	gl.DrawArrays(l.mode, 0, l.vertexCount)
	gl.BindVertexArray(0)
}

var wireframeColor = [3]float32{1, 1, 1}

// vertexStride is the number of floats per interleaved vertex.
const vertexStride = 6

// Interleave packs positions and normals into one [px py pz nx ny nz] buffer.
func Interleave(positions, normals [][3]float32) ([]float32, error) {
	if len(positions) != len(normals) {
		return nil, fmt.Errorf("%d positions but %d normals", len(positions), len(normals))
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}

	out := make([]float32, 0, len(positions)*vertexStride)
	for i, p := range positions {
		n := normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out, nil
}
