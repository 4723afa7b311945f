package world

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Grid is a fixed-size, fully resident block volume.
// Coordinates run 0 <= x < Width, 0 <= y < Height, 0 <= z < Depth.
type Grid struct {
	width, height, depth int
	blocks               []BlockType
}

// NewGrid allocates an all-air grid.
func NewGrid(width, height, depth int) *Grid {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%dx%d", width, height, depth))
	}
	return &Grid{
		width:  width,
		height: height,
		depth:  depth,
		blocks: make([]BlockType, width*height*depth),
	}
}

// Size returns the grid extents.
func (g *Grid) Size() (width, height, depth int) {
	return g.width, g.height, g.depth
}

func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < g.depth
}

// Occupied reports whether (x,y,z) holds a solid block. Out-of-bounds cells are air.
func (g *Grid) Occupied(x, y, z int) bool {
	if !g.InBounds(x, y, z) {
		return false
	}
	return g.blocks[g.index(x, y, z)].IsSolid()
}

// Get returns the block at (x,y,z). It panics for coordinates outside the grid.
func (g *Grid) Get(x, y, z int) BlockType {
	g.mustContain(x, y, z)
	return g.blocks[g.index(x, y, z)]
}

// Set stores the block at (x,y,z). It panics for coordinates outside the grid.
func (g *Grid) Set(x, y, z int, blockType BlockType) {
	g.mustContain(x, y, z)
	g.blocks[g.index(x, y, z)] = blockType
}

// Count returns the number of solid cells.
func (g *Grid) Count() int {
	n := 0
	for _, b := range g.blocks {
		if b.IsSolid() {
			n++
		}
	}
	return n
}

// Column returns the blocks of column (x,z) ordered bottom to top.
func (g *Grid) Column(x, z int) []BlockType {
	g.mustContain(x, 0, z)
	out := make([]BlockType, g.height)
	for y := range g.height {
		out[y] = g.blocks[g.index(x, y, z)]
	}
	return out
}

func (g *Grid) index(x, y, z int) int {
	return x*g.height*g.depth + y*g.depth + z
}

func (g *Grid) mustContain(x, y, z int) {
	if !g.InBounds(x, y, z) {
		panic(fmt.Sprintf("world: cell (%d,%d,%d) outside %dx%dx%d grid", x, y, z, g.width, g.height, g.depth))
	}
}

// Fingerprint hashes the extents and every cell. Equal grids have equal fingerprints.
func (g *Grid) Fingerprint() uint64 {
	h := xxhash.New()
	var dims [12]byte
	binary.LittleEndian.PutUint32(dims[0:], uint32(g.width))
	binary.LittleEndian.PutUint32(dims[4:], uint32(g.height))
	binary.LittleEndian.PutUint32(dims[8:], uint32(g.depth))
	h.Write(dims[:])

	buf := make([]byte, len(g.blocks))
	for i, b := range g.blocks {
		buf[i] = byte(b)
	}
	h.Write(buf)
	return h.Sum64()
}
