package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is number of float32 per vertex (pos.xyz + uv + tile + tint.rgb)
const VertexStride = 9

// VerticesPerQuad is two triangles.
const VerticesPerQuad = 6

// quadTemplate is the unit quad facing +Z, counter-clockwise, with its UVs.
var quadTemplate = [VerticesPerQuad][5]float32{
	{-0.5, -0.5, 0, 0, 1},
	{0.5, -0.5, 0, 1, 1},
	{0.5, 0.5, 0, 1, 0},
	{0.5, 0.5, 0, 1, 0},
	{-0.5, 0.5, 0, 0, 0},
	{-0.5, -0.5, 0, 0, 1},
}

// AppendVertices appends the two triangles of q to dst.
func AppendVertices(dst []float32, q Quad) []float32 {
	for _, t := range quadTemplate {
		corner := q.Rotation.Rotate(mgl32.Vec3{t[0], t[1], t[2]}.Mul(q.Size))
		p := q.Position.Add(corner)
		dst = append(dst,
			p.X(), p.Y(), p.Z(),
			t[3], t[4],
			float32(q.Layer),
			q.Color.X(), q.Color.Y(), q.Color.Z(),
		)
	}
	return dst
}

// PackMeshes flattens all quads of the meshes into one vertex buffer.
func PackMeshes(meshes []BlockMesh) []float32 {
	n := 0
	for _, m := range meshes {
		n += len(m.Quads)
	}
	vertices := make([]float32, 0, n*VerticesPerQuad*VertexStride)
	for _, m := range meshes {
		for _, q := range m.Quads {
			vertices = AppendVertices(vertices, q)
		}
	}
	return vertices
}
