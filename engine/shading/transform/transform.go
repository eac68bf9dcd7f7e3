// Package transform implements the minimal vertex stage variant that consumes a
// precomputed projection/model matrix pair from a uniform block instead of
// constructing matrices on the fly. UVs and colors pass through untouched.
package transform

import (
	"github.com/lilith645/Maat-Graphics/common"
)

// TransformVertex projects a 2D vertex into clip space using the precomputed
// matrices: projection * model * vec4(position, 0, 1).
//
// Parameters:
//   - u: the uniform block holding the precomputed projection and model matrices
//   - position: object-space 2D vertex position
//
// Returns:
//   - [4]float32: the clip-space position
func TransformVertex(u *GPUTransformUniform, position [2]float32) [4]float32 {
	p := common.MulVec4(u.Model[:], [4]float32{position[0], position[1], 0, 1})
	return common.MulVec4(u.Projection[:], p)
}
