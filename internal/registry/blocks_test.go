package registry

import (
	"testing"

	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestGrassUsesDistinctTopAndSide(t *testing.T) {
	assert.Equal(t, TileGrassTop, GetTextureLayer(world.BlockTypeGrass, world.FaceTop))
	assert.Equal(t, TileGrassSide, GetTextureLayer(world.BlockTypeGrass, world.FaceNorth))
	assert.Equal(t, TileDirt, GetTextureLayer(world.BlockTypeGrass, world.FaceBottom))
}

func TestStoneIsUniform(t *testing.T) {
	for _, f := range world.Faces {
		assert.Equal(t, TileStone, GetTextureLayer(world.BlockTypeStone, f))
	}
}

func TestBlockColors(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, GetBlockColor(world.BlockTypeGrass))
	stone := GetBlockColor(world.BlockTypeStone)
	assert.InDelta(t, 128.0/255.0, stone.X(), 1e-6)
	assert.Equal(t, stone.X(), stone.Z())
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, GetBlockColor(world.BlockTypeAir))
}

func TestRegisterRejectsAir(t *testing.T) {
	assert.Panics(t, func() {
		RegisterBlock(&BlockDefinition{ID: world.BlockTypeAir, Name: "air"})
	})
}
