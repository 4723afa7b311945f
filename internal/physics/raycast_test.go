package physics_test

import (
	"math"
	"testing"

	"voxelview/internal/physics"
	"voxelview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRaycast(t *testing.T) {
	g := world.NewGrid(10, 3, 3)
	g.Set(5, 1, 1, world.BlockTypeStone)

	start := mgl32.Vec3{0, 1, 1}
	dir := mgl32.Vec3{1, 0, 0}

	// Test 1: hit along +X
	result := physics.Raycast(g, start, dir, 10, 1)
	if !result.Hit {
		t.Fatalf("Expected hit, got miss")
	}
	if result.Cell != [3]int{5, 1, 1} {
		t.Errorf("Expected hit at {5,1,1}, got %v", result.Cell)
	}
	if result.Face != world.FaceWest {
		t.Errorf("Expected west face, got %s", result.Face)
	}
	if result.Block != world.BlockTypeStone {
		t.Errorf("Expected stone, got %s", result.Block)
	}
	// cell 5 starts at x=4.5
	if math.Abs(float64(result.Distance)-4.5) > 1e-5 {
		t.Errorf("Expected distance 4.5, got %f", result.Distance)
	}

	// Test 2: out of reach
	if r := physics.Raycast(g, start, dir, 4, 1); r.Hit {
		t.Errorf("Expected miss due to maxDist, got hit at %v", r.Cell)
	}

	// Test 3: wrong direction
	if r := physics.Raycast(g, start, mgl32.Vec3{0, 1, 0}, 10, 1); r.Hit {
		t.Errorf("Expected miss, got hit at %v", r.Cell)
	}

	// Test 4: negative direction enters through the east face
	r := physics.Raycast(g, mgl32.Vec3{9, 1, 1}, mgl32.Vec3{-2, 0, 0}, 10, 1)
	if !r.Hit || r.Cell != [3]int{5, 1, 1} || r.Face != world.FaceEast {
		t.Errorf("Expected east face of {5,1,1}, got %+v", r)
	}
	if math.Abs(float64(r.Distance)-3.5) > 1e-5 {
		t.Errorf("Expected distance 3.5, got %f", r.Distance)
	}
}

func TestRaycastDiagonal(t *testing.T) {
	g := world.NewGrid(4, 4, 4)
	g.Set(2, 2, 2, world.BlockTypeDirt)

	r := physics.Raycast(g, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, 10, 1)
	if !r.Hit {
		t.Fatalf("Expected hit at {2,2,2}, got miss")
	}
	if r.Cell != [3]int{2, 2, 2} {
		t.Errorf("Expected hit at {2,2,2}, got %v", r.Cell)
	}
	want := 1.5 * math.Sqrt(3)
	if math.Abs(float64(r.Distance)-want) > 1e-4 {
		t.Errorf("Expected distance %f, got %f", want, r.Distance)
	}
}

func TestRaycastTopFace(t *testing.T) {
	g := world.NewGrid(3, 5, 3)
	g.Set(1, 0, 1, world.BlockTypeGrass)

	r := physics.Raycast(g, mgl32.Vec3{1, 4, 1}, mgl32.Vec3{0, -1, 0}, 10, 1)
	if !r.Hit || r.Face != world.FaceTop || r.Cell != [3]int{1, 0, 1} {
		t.Errorf("Expected top face of {1,0,1}, got %+v", r)
	}
}

func TestRaycastBlockSize(t *testing.T) {
	g := world.NewGrid(5, 1, 1)
	g.Set(3, 0, 0, world.BlockTypeStone)

	r := physics.Raycast(g, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 20, 2)
	if !r.Hit || r.Cell != [3]int{3, 0, 0} {
		t.Fatalf("Expected hit at {3,0,0}, got %+v", r)
	}
	// cell 3 spans x in [5,7]
	if math.Abs(float64(r.Distance)-5) > 1e-5 {
		t.Errorf("Expected distance 5, got %f", r.Distance)
	}
}

func TestRaycastSkipsStartCell(t *testing.T) {
	g := world.NewGrid(3, 3, 3)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				g.Set(x, y, z, world.BlockTypeStone)
			}
		}
	}
	r := physics.Raycast(g, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 0, 0}, 5, 1)
	if !r.Hit || r.Cell != [3]int{2, 1, 1} {
		t.Errorf("Expected neighbor {2,1,1}, got %+v", r)
	}
}

func TestRaycastDegenerateInput(t *testing.T) {
	g := world.NewGrid(2, 2, 2)
	g.Set(1, 0, 0, world.BlockTypeStone)
	if r := physics.Raycast(g, mgl32.Vec3{}, mgl32.Vec3{}, 5, 1); r.Hit {
		t.Errorf("Expected miss for zero direction")
	}
	if r := physics.Raycast(g, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 0, 1); r.Hit {
		t.Errorf("Expected miss for zero reach")
	}
}

func BenchmarkRaycast(b *testing.B) {
	g := world.NewGrid(16, 32, 16)
	g.Set(15, 31, 15, world.BlockTypeStone)
	dir := mgl32.Vec3{1, 1, 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		physics.Raycast(g, mgl32.Vec3{0, 0, 0}, dir, 100, 1)
	}
}
