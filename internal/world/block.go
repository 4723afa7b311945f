package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypeDirt
	BlockTypeGrass
)

// IsSolid reports whether the block occupies its cell. Air is the only empty type.
func (b BlockType) IsSolid() bool {
	return b != BlockTypeAir
}

func (b BlockType) String() string {
	switch b {
	case BlockTypeAir:
		return "air"
	case BlockTypeStone:
		return "stone"
	case BlockTypeDirt:
		return "dirt"
	case BlockTypeGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// BlockFace identifies a face of a block
type BlockFace int

const (
	FaceTop BlockFace = iota
	FaceBottom
	FaceNorth
	FaceSouth
	FaceEast
	FaceWest
)

// Faces lists every face in meshing order.
var Faces = [6]BlockFace{FaceTop, FaceBottom, FaceNorth, FaceSouth, FaceEast, FaceWest}

// faceNormals are the integer neighbour offsets per face
var faceNormals = [6][3]int{
	FaceTop:    {0, 1, 0},
	FaceBottom: {0, -1, 0},
	FaceNorth:  {0, 0, 1},
	FaceSouth:  {0, 0, -1},
	FaceEast:   {1, 0, 0},
	FaceWest:   {-1, 0, 0},
}

// Offset returns the integer step from a cell to its neighbour across this face.
func (f BlockFace) Offset() (dx, dy, dz int) {
	n := faceNormals[f]
	return n[0], n[1], n[2]
}

// Normal returns the outward unit normal of the face.
func (f BlockFace) Normal() mgl32.Vec3 {
	n := faceNormals[f]
	return mgl32.Vec3{float32(n[0]), float32(n[1]), float32(n[2])}
}

// Rotation turns the canonical +Z facing quad onto this face.
func (f BlockFace) Rotation() mgl32.Quat {
	switch f {
	case FaceTop:
		return mgl32.QuatRotate(-mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})
	case FaceBottom:
		return mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0})
	case FaceSouth:
		return mgl32.QuatRotate(mgl32.DegToRad(180), mgl32.Vec3{0, 1, 0})
	case FaceEast:
		return mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	case FaceWest:
		return mgl32.QuatRotate(-mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	default: // north
		return mgl32.QuatIdent()
	}
}

func (f BlockFace) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceNorth:
		return "north"
	case FaceSouth:
		return "south"
	case FaceEast:
		return "east"
	case FaceWest:
		return "west"
	default:
		return "unknown"
	}
}
