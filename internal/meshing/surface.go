package meshing

import (
	"fmt"

	"voxelview/internal/profiling"
	"voxelview/internal/registry"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Quad is one exposed block face, ready to hand to a renderer.
type Quad struct {
	Cell     [3]int
	Face     world.BlockFace
	Block    world.BlockType
	Position mgl32.Vec3 // center of the face plane
	Rotation mgl32.Quat // turns the +Z unit quad onto the face
	Size     float32
	Color    mgl32.Vec3
	Layer    int // texture tile
}

// BlockMesh holds the exposed faces of a single solid cell.
type BlockMesh struct {
	Cell  [3]int
	Block world.BlockType
	Quads []Quad
}

// Scene receives block meshes. Renderers implement it; the mesher never
// touches rendering library types.
type Scene interface {
	Add(mesh BlockMesh)
}

// Stats summarizes one meshing pass.
type Stats struct {
	Blocks int // solid cells visited
	Meshes int // cells that produced at least one face
	Faces  int // emitted faces
	Culled int // faces hidden by a solid neighbour
}

// ExposedFaces returns the faces of cell (x,y,z) whose neighbour along the
// face normal is empty or outside the grid. Air cells have no faces.
// Asking for a cell outside the grid is a programming error and panics.
func ExposedFaces(g *world.Grid, x, y, z int) []world.BlockFace {
	if !g.InBounds(x, y, z) {
		panic(fmt.Sprintf("meshing: cell (%d,%d,%d) outside grid", x, y, z))
	}
	if !g.Occupied(x, y, z) {
		return nil
	}

	var faces []world.BlockFace
	for _, f := range world.Faces {
		dx, dy, dz := f.Offset()
		if !g.Occupied(x+dx, y+dy, z+dz) {
			faces = append(faces, f)
		}
	}
	return faces
}

// BuildBlockMesh builds the exposed quads for one cell. blockSize scales the
// cell spacing and the quad edge length.
func BuildBlockMesh(g *world.Grid, x, y, z int, blockSize float32) BlockMesh {
	faces := ExposedFaces(g, x, y, z)
	mesh := BlockMesh{Cell: [3]int{x, y, z}}
	if len(faces) == 0 {
		return mesh
	}

	bt := g.Get(x, y, z)
	mesh.Block = bt
	center := mgl32.Vec3{float32(x), float32(y), float32(z)}.Mul(blockSize)
	color := registry.GetBlockColor(bt)

	mesh.Quads = make([]Quad, 0, len(faces))
	for _, f := range faces {
		mesh.Quads = append(mesh.Quads, Quad{
			Cell:     mesh.Cell,
			Face:     f,
			Block:    bt,
			Position: center.Add(f.Normal().Mul(blockSize / 2)),
			Rotation: f.Rotation(),
			Size:     blockSize,
			Color:    color,
			Layer:    registry.GetTextureLayer(bt, f),
		})
	}
	return mesh
}

// BuildSurface meshes every solid cell of g in x, y, z order and adds each
// non-empty mesh to the scene.
func BuildSurface(g *world.Grid, blockSize float32, scene Scene) Stats {
	defer profiling.Track("meshing.BuildSurface")()

	var stats Stats
	w, h, d := g.Size()
	for x := range w {
		for y := range h {
			for z := range d {
				if !g.Occupied(x, y, z) {
					continue
				}
				stats.Blocks++
				mesh := BuildBlockMesh(g, x, y, z, blockSize)
				stats.Culled += len(world.Faces) - len(mesh.Quads)
				if len(mesh.Quads) == 0 {
					continue
				}
				stats.Meshes++
				stats.Faces += len(mesh.Quads)
				scene.Add(mesh)
			}
		}
	}
	return stats
}

// Collector is an in-memory Scene.
type Collector struct {
	Meshes []BlockMesh
}

func (c *Collector) Add(mesh BlockMesh) {
	c.Meshes = append(c.Meshes, mesh)
}

// FaceCount returns the total number of collected quads.
func (c *Collector) FaceCount() int {
	n := 0
	for _, m := range c.Meshes {
		n += len(m.Quads)
	}
	return n
}
