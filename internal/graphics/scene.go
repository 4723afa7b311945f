package graphics

import (
	"voxelview/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// BlockScene collects block meshes and keeps them in one vertex buffer.
// Add is CPU-only; Upload and Draw need a current GL context.
type BlockScene struct {
	meshes []meshing.BlockMesh
	quads  int
	dirty  bool

	vao         uint32
	vbo         uint32
	vertexCount int32
}

func NewBlockScene() *BlockScene {
	return &BlockScene{}
}

// Add implements meshing.Scene.
func (s *BlockScene) Add(mesh meshing.BlockMesh) {
	s.meshes = append(s.meshes, mesh)
	s.quads += len(mesh.Quads)
	s.dirty = true
}

func (s *BlockScene) Meshes() []meshing.BlockMesh {
	return s.meshes
}

// QuadCount is the number of faces added so far.
func (s *BlockScene) QuadCount() int {
	return s.quads
}

// Dirty reports whether meshes were added since the last Upload.
func (s *BlockScene) Dirty() bool {
	return s.dirty
}

// Vertices packs every quad in insertion order.
func (s *BlockScene) Vertices() []float32 {
	return meshing.PackMeshes(s.meshes)
}

// Upload (re)fills the GPU buffer from the collected meshes.
func (s *BlockScene) Upload() {
	verts := s.Vertices()
	if s.vao == 0 {
		s.setupVAO()
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	if len(verts) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	s.vertexCount = int32(len(verts) / meshing.VertexStride)
	s.dirty = false
}

func (s *BlockScene) setupVAO() {
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	stride := int32(meshing.VertexStride * 4)
	// pos
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	// uv
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	// tile layer
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, 5*4)
	// tint
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
}

// Draw issues one draw call for the whole scene.
func (s *BlockScene) Draw() {
	if s.vertexCount == 0 {
		return
	}
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, s.vertexCount)
	gl.BindVertexArray(0)
}

func (s *BlockScene) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	s.vertexCount = 0
}
