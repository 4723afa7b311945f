package graphics

import (
	"log"

	"voxelview/internal/profiling"
	"voxelview/internal/registry"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws a BlockScene with the sky color as background.
type Renderer struct {
	shader *Shader
	camera *Camera
	scene  *BlockScene

	tiles    uint32
	textured bool
}

// NewRenderer configures GL state and compiles the block shader. The GL
// context must already be current and initialized.
func NewRenderer(scene *BlockScene, width, height int) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	// meshing emits CCW front faces
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	shader, err := NewBlockShader()
	if err != nil {
		return nil, err
	}

	return &Renderer{
		shader: shader,
		camera: NewCamera(width, height),
		scene:  scene,
	}, nil
}

// LoadTexture loads the block tile strip. An empty path or a failed load
// leaves blocks in their flat colors.
func (r *Renderer) LoadTexture(path string) bool {
	if path == "" {
		log.Printf("No texture configured, using flat block colors")
		r.textured = false
		return false
	}
	layers, err := LoadTileStrip(path, registry.TileCount)
	if err == nil {
		r.tiles, err = UploadTileArray(layers)
	}
	if err != nil {
		log.Printf("Texture unavailable, using flat block colors: %v", err)
		r.textured = false
		return false
	}
	log.Printf("Loaded %d block tiles from %s (%dx%d)", len(layers), path, layers[0].Bounds().Dx(), layers[0].Bounds().Dy())
	r.textured = true
	return true
}

// Render clears to sky and draws the scene from view.
func (r *Renderer) Render(view mgl32.Mat4, sky mgl32.Vec3) {
	defer profiling.Track("graphics.Render")()

	if r.scene.Dirty() {
		r.scene.Upload()
	}

	gl.ClearColor(sky.X(), sky.Y(), sky.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := r.camera.GetProjectionMatrix()
	r.shader.Use()
	r.shader.SetMatrix4("proj", &proj[0])
	r.shader.SetMatrix4("view", &view[0])
	r.shader.SetBool("useTexture", r.textured)
	if r.textured {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D_ARRAY, r.tiles)
		r.shader.SetInt("tiles", 0)
	}

	r.scene.Draw()
}

// UpdateViewport updates the camera's viewport dimensions
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
}

func (r *Renderer) Dispose() {
	r.scene.Dispose()
	if r.tiles != 0 {
		gl.DeleteTextures(1, &r.tiles)
		r.tiles = 0
	}
	r.shader.Delete()
}
