package registry

import (
	"fmt"

	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Tile indices into the block texture strip.
const (
	TileStone = iota
	TileDirt
	TileGrassTop
	TileGrassSide
	TileCount
)

// BlockDefinition defines the appearance of a block type
type BlockDefinition struct {
	ID          world.BlockType
	Name        string
	TextureTop  int
	TextureSide int
	TextureBot  int
	TintColor   uint32
}

var Blocks = make(map[world.BlockType]*BlockDefinition)

func init() {
	RegisterBlock(&BlockDefinition{
		ID:          world.BlockTypeStone,
		Name:        "stone",
		TextureTop:  TileStone,
		TextureSide: TileStone,
		TextureBot:  TileStone,
		TintColor:   0x808080,
	})
	RegisterBlock(&BlockDefinition{
		ID:          world.BlockTypeDirt,
		Name:        "dirt",
		TextureTop:  TileDirt,
		TextureSide: TileDirt,
		TextureBot:  TileDirt,
		TintColor:   0x8B4513,
	})
	RegisterBlock(&BlockDefinition{
		ID:          world.BlockTypeGrass,
		Name:        "grass",
		TextureTop:  TileGrassTop,
		TextureSide: TileGrassSide,
		TextureBot:  TileDirt,
		TintColor:   0x00FF00,
	})
}

// RegisterBlock adds or replaces a block definition. Air cannot be registered.
func RegisterBlock(def *BlockDefinition) {
	if def.ID == world.BlockTypeAir {
		panic("registry: air has no appearance")
	}
	for _, tile := range []int{def.TextureTop, def.TextureSide, def.TextureBot} {
		if tile < 0 || tile >= TileCount {
			panic(fmt.Sprintf("registry: block %q references tile %d", def.Name, tile))
		}
	}
	Blocks[def.ID] = def
}

// GetTextureLayer returns the texture tile index for a given block and face
func GetTextureLayer(blockType world.BlockType, face world.BlockFace) int {
	def, ok := Blocks[blockType]
	if !ok {
		return 0
	}

	switch face {
	case world.FaceTop:
		return def.TextureTop
	case world.FaceBottom:
		return def.TextureBot
	default:
		return def.TextureSide
	}
}

// GetBlockColor returns the flat color of a block, used when no texture is bound
func GetBlockColor(blockType world.BlockType) mgl32.Vec3 {
	def, ok := Blocks[blockType]
	if !ok {
		return mgl32.Vec3{0.5, 0.5, 0.5}
	}
	return HexColor(def.TintColor)
}

// HexColor converts 0xRRGGBB into a normalized RGB vector.
func HexColor(c uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((c>>16)&0xFF) / 255.0,
		float32((c>>8)&0xFF) / 255.0,
		float32(c&0xFF) / 255.0,
	}
}
