// Package worldgen fills the voxel grid and hands its surface to a scene.
package worldgen

import (
	"log"

	"voxelview/internal/config"
	"voxelview/internal/meshing"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Strata assigns block types by height.
type Strata struct {
	StoneLevel int  // y < StoneLevel is stone
	DirtLevel  int  // StoneLevel <= y < DirtLevel is dirt
	GrassToTop bool // grass for every y >= DirtLevel instead of one layer
}

// DefaultStrata is stone below 10, dirt below 20 and a single grass layer at 20.
var DefaultStrata = Strata{StoneLevel: 10, DirtLevel: 20}

// BlockAt returns the block for height y.
func (s Strata) BlockAt(y int) world.BlockType {
	switch {
	case y < 0:
		return world.BlockTypeAir
	case y < s.StoneLevel:
		return world.BlockTypeStone
	case y < s.DirtLevel:
		return world.BlockTypeDirt
	case y == s.DirtLevel || s.GrassToTop:
		return world.BlockTypeGrass
	default:
		return world.BlockTypeAir
	}
}

// Fill writes the strata into every column of g.
func Fill(g *world.Grid, s Strata) {
	w, h, d := g.Size()
	for x := range w {
		for z := range d {
			for y := range h {
				g.Set(x, y, z, s.BlockAt(y))
			}
		}
	}
}

// NewGrid allocates and fills a grid from settings.
func NewGrid(ws config.WorldSettings) *world.Grid {
	g := world.NewGrid(ws.Width, ws.Height, ws.Depth)
	Fill(g, StrataFrom(ws))
	return g
}

// StrataFrom extracts the stratification rule from world settings.
func StrataFrom(ws config.WorldSettings) Strata {
	return Strata{StoneLevel: ws.StoneLevel, DirtLevel: ws.DirtLevel, GrassToTop: ws.GrassToTop}
}

// Build fills a fresh grid and meshes its surface into scene.
func Build(ws config.WorldSettings, scene meshing.Scene) (*world.Grid, meshing.Stats) {
	g := NewGrid(ws)
	stats := meshing.BuildSurface(g, ws.BlockSize, scene)
	log.Printf("world %dx%dx%d (%016x): %d solid blocks, %d faces emitted, %d culled",
		ws.Width, ws.Height, ws.Depth, g.Fingerprint(), stats.Blocks, stats.Faces, stats.Culled)
	return g, stats
}

// SpawnView returns the initial eye position and look target: centered over
// the grid width, level with its top, set back two depths and aimed at the
// grid center.
func SpawnView(g *world.Grid, blockSize float32) (eye, target mgl32.Vec3) {
	w, h, d := g.Size()
	eye = mgl32.Vec3{float32(w) / 2, float32(h), float32(d) * 2}.Mul(blockSize)
	target = mgl32.Vec3{float32(w) / 2, float32(h) / 2, float32(d) / 2}.Mul(blockSize)
	return eye, target
}
