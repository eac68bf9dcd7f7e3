// Package model defines the vertex formats the shading stages consume and the
// shared quad geometry sprite draws are built from.
package model

// QuadVertices returns the unit quad every sprite draw call uses: a 1x1 square
// centered on the origin, scaled and positioned per draw by the sprite model
// matrix. The V coordinate runs bottom-up on the first row of vertices, so the
// texture appears upright under the y-down sprite projection.
//
// Returns:
//   - []GPUSpriteVertex: the four quad vertices
func QuadVertices() []GPUSpriteVertex {
	return []GPUSpriteVertex{
		{Position: [2]float32{0.5, 0.5}, UV: [2]float32{1.0, 0.0}},
		{Position: [2]float32{-0.5, 0.5}, UV: [2]float32{0.0, 0.0}},
		{Position: [2]float32{-0.5, -0.5}, UV: [2]float32{0.0, 1.0}},
		{Position: [2]float32{0.5, -0.5}, UV: [2]float32{1.0, 1.0}},
	}
}

// QuadIndices returns the index list drawing the quad as two triangles.
//
// Returns:
//   - []uint32: six indices forming two counter-clockwise triangles
func QuadIndices() []uint32 {
	return []uint32{0, 1, 2, 2, 3, 0}
}
