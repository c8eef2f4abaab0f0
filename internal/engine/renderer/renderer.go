// Package renderer draws ornament meshes with OpenGL.
package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/symbionic/ornaments/internal/engine/renderer/shaders"
	"github.com/symbionic/ornaments/internal/engine/shader"
	"github.com/symbionic/ornaments/internal/logger"
	"github.com/symbionic/ornaments/internal/ornament"
	"github.com/symbionic/ornaments/internal/palette"
	"github.com/symbionic/ornaments/internal/scene"
)

// ErrUnknownHandle is returned by Update for a released or foreign handle.
var ErrUnknownHandle = errors.New("unknown mesh handle")

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

type gpuMesh struct {
	vao         uint32
	positionVBO uint32
	normalVBO   uint32
	colorVBO    uint32
	vertexCount int32
	material    ornament.Material
}

// Renderer implements scene.Backend on an OpenGL 4.1 core context.
type Renderer struct {
	config     Config
	program    *shader.Program
	background palette.RGBA
	log        *zap.Logger

	view       mgl32.Mat4
	projection mgl32.Mat4
	eye        mgl32.Vec3
	lights     lightSet

	meshes map[scene.Handle]*gpuMesh
	next   scene.Handle
}

// New creates a renderer. It must be called after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		log:        logger.Named("renderer"),
		view:       mgl32.Ident4(),
		projection: mgl32.Ident4(),
		meshes:     make(map[scene.Handle]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.New(shaders.OrnamentVertexShader, shaders.OrnamentFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ornament shader: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))
	return r, nil
}

// Close releases every uploaded mesh and the shader program.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for h := range r.meshes {
		r.Release(h)
	}
	r.program.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// SetBackground sets the clear colour.
func (r *Renderer) SetBackground(c palette.RGBA) {
	r.background = c
}

// SetCamera sets the view and projection used by subsequent draws.
func (r *Renderer) SetCamera(view, projection mgl32.Mat4, eye mgl32.Vec3) {
	r.view = view
	r.projection = projection
	r.eye = eye
}

// SetLights replaces the scene lighting.
func (r *Renderer) SetLights(l scene.Lights) {
	set, dropped := packLights(l)
	if dropped > 0 {
		r.log.Warn("too many lights", zap.Int("max", maxLights), zap.Int("dropped", dropped))
	}
	r.lights = set
}

// Begin clears the frame and binds the shared lighting state.
func (r *Renderer) Begin() {
	bg := r.background
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := r.program
	p.Use()
	p.SetMat4("uView", r.view)
	p.SetMat4("uProjection", r.projection)
	p.SetVec3("uEye", r.eye)
	p.SetFloat("uAmbient", r.lights.ambient)
	p.SetInt("uDirCount", int32(len(r.lights.directional)))
	for i, l := range r.lights.directional {
		p.SetVec3(fmt.Sprintf("uDirPos[%d]", i), l.position)
		p.SetVec3(fmt.Sprintf("uDirColor[%d]", i), l.color)
	}
	p.SetInt("uPointCount", int32(len(r.lights.point)))
	for i, l := range r.lights.point {
		p.SetVec3(fmt.Sprintf("uPointPos[%d]", i), l.position)
		p.SetVec3(fmt.Sprintf("uPointColor[%d]", i), l.color)
	}
}

// End restores the state changed by transparent draws.
func (r *Renderer) End() {
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)
	gl.BindVertexArray(0)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Upload creates vertex buffers for mesh. Positions and colours use
// dynamic storage since they are rewritten every frame.
func (r *Renderer) Upload(mesh *ornament.Mesh, mat ornament.Material) (scene.Handle, error) {
	if mesh.Disposed() {
		return 0, fmt.Errorf("upload: %w", ornament.ErrEmptyGeometry)
	}
	m := &gpuMesh{vertexCount: int32(mesh.VertexCount()), material: mat}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	m.positionVBO = newBuffer(0, 3, mesh.Positions, gl.DYNAMIC_DRAW)
	m.normalVBO = newBuffer(1, 3, mesh.Normals(), gl.STATIC_DRAW)
	m.colorVBO = newBuffer(2, 4, mesh.Colors, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		r.deleteMesh(m)
		return 0, fmt.Errorf("upload: GL error 0x%x", code)
	}

	r.next++
	r.meshes[r.next] = m
	r.log.Debug("mesh uploaded", zap.Uint32("handle", uint32(r.next)), zap.Int32("vertices", m.vertexCount))
	return r.next, nil
}

func newBuffer(location uint32, size int32, data []float32, usage uint32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), usage)
	gl.VertexAttribPointer(location, size, gl.FLOAT, false, size*4, nil)
	gl.EnableVertexAttribArray(location)
	return vbo
}

// Update copies the mesh's live positions and colours into its buffers.
func (r *Renderer) Update(h scene.Handle, mesh *ornament.Mesh) error {
	m, ok := r.meshes[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	if len(mesh.Positions) != int(m.vertexCount)*3 || len(mesh.Colors) != int(m.vertexCount)*4 {
		return fmt.Errorf("update %d: mesh has %d positions, buffer holds %d vertices",
			h, len(mesh.Positions)/3, m.vertexCount)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.positionVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(mesh.Positions)*4, unsafe.Pointer(&mesh.Positions[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, m.colorVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(mesh.Colors)*4, unsafe.Pointer(&mesh.Colors[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// Draw renders one mesh with its material. Transparent meshes blend and
// skip depth writes so ornaments behind them stay visible.
func (r *Renderer) Draw(h scene.Handle, model mgl32.Mat4) {
	m, ok := r.meshes[h]
	if !ok {
		return
	}
	mat := m.material
	p := r.program
	p.SetMat4("uModel", model)
	p.SetVec3("uEmissive", mgl32.Vec3{mat.Emissive.R, mat.Emissive.G, mat.Emissive.B})
	p.SetFloat("uEmissiveIntensity", mat.EmissiveIntensity)
	p.SetFloat("uMetalness", mat.Metalness)
	p.SetFloat("uRoughness", mat.Roughness)
	p.SetFloat("uShininess", mat.Shininess)

	if mat.DoubleSided {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
	}
	if mat.Transparent {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
	} else {
		gl.Disable(gl.BLEND)
		gl.DepthMask(true)
	}

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
}

// Release deletes the buffers behind h. Unknown handles are ignored.
func (r *Renderer) Release(h scene.Handle) {
	m, ok := r.meshes[h]
	if !ok {
		return
	}
	r.deleteMesh(m)
	delete(r.meshes, h)
}

func (r *Renderer) deleteMesh(m *gpuMesh) {
	for _, vbo := range []*uint32{&m.positionVBO, &m.normalVBO, &m.colorVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
}

var _ scene.Backend = (*Renderer)(nil)
