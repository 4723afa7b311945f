package physics

import (
	"math"

	"voxelview/internal/profiling"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxReachDistance bounds the overlay's block probe, in world units.
const MaxReachDistance = 8.0

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	Cell     [3]int
	Block    world.BlockType
	Face     world.BlockFace // face of Cell the ray entered through
	Distance float32
	Hit      bool
}

// Raycast walks the grid cells crossed by the ray (Amanatides-Woo) and returns
// the first occupied one within maxDist. Cell c spans (c±0.5)*blockSize on each
// axis. The cell containing start is skipped so a camera inside a block can see out.
func Raycast(g *world.Grid, start, direction mgl32.Vec3, maxDist, blockSize float32) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	if direction.Len() == 0 || maxDist <= 0 || blockSize <= 0 {
		return RaycastResult{}
	}
	dir := direction.Normalize()
	p := start.Mul(1 / blockSize).Add(mgl32.Vec3{0.5, 0.5, 0.5})
	limit := float64(maxDist / blockSize)

	var cell, step [3]int
	var tMax, tDelta [3]float64
	for i := 0; i < 3; i++ {
		pi := float64(p[i])
		d := float64(dir[i])
		cell[i] = int(math.Floor(pi))
		switch {
		case d > 0:
			step[i] = 1
			tMax[i] = (float64(cell[i]+1) - pi) / d
			tDelta[i] = 1 / d
		case d < 0:
			step[i] = -1
			tMax[i] = (pi - float64(cell[i])) / -d
			tDelta[i] = -1 / d
		default:
			tMax[i] = math.Inf(1)
			tDelta[i] = math.Inf(1)
		}
	}

	for {
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		t := tMax[axis]
		if t > limit {
			return RaycastResult{}
		}
		cell[axis] += step[axis]
		tMax[axis] += tDelta[axis]

		if g.Occupied(cell[0], cell[1], cell[2]) {
			return RaycastResult{
				Cell:     cell,
				Block:    g.Get(cell[0], cell[1], cell[2]),
				Face:     entryFace(axis, step[axis]),
				Distance: float32(t) * blockSize,
				Hit:      true,
			}
		}
	}
}

func entryFace(axis, step int) world.BlockFace {
	switch axis {
	case 0:
		if step > 0 {
			return world.FaceWest
		}
		return world.FaceEast
	case 1:
		if step > 0 {
			return world.FaceBottom
		}
		return world.FaceTop
	default:
		if step > 0 {
			return world.FaceSouth
		}
		return world.FaceNorth
	}
}
