// Package geometry implements the view-space geometry vertex stage: clip-space
// projection through projection * view * model, plus the per-vertex view-space
// normal, light, and view vectors the lighting stage consumes.
package geometry

import (
	"github.com/lilith645/Maat-Graphics/common"
)

// VertexOutput holds the varyings produced by the view-space geometry stage for
// one vertex.
type VertexOutput struct {
	Position [4]float32 // clip-space position (from the object-space input)
	UV       [2]float32 // texture coordinate, passed through
	Normal   [3]float32 // view-space normal
	ToLight  [3]float32 // view-space fragment-to-light vector
	ToCamera [3]float32 // view-space fragment-to-camera vector
}

// TransformVertex runs the vertex stage for a single vertex.
//
// The clip position is finalized from the object-space position before the
// view-space derivation happens; the two use distinct intermediates (objectPos
// and viewPos) so neither can observe the other. The view-space derivation
// transforms the raw input position by the view matrix alone, and the normal
// by mat3(view) alone: the model matrix is intentionally not applied to either,
// matching the shipped behaviour.
//
// Parameters:
//   - u: the per-pass uniform block (projection, view, light position)
//   - pc: the per-draw push-constant block (model matrix, opaque attrs)
//   - position: object-space vertex position
//   - normal: object-space vertex normal
//   - uv: vertex texture coordinate
//
// Returns:
//   - VertexOutput: clip-space position and view-space lighting varyings
func TransformVertex(u *GPUSceneUniform, pc *GPUModelPush, position, normal [3]float32, uv [2]float32) VertexOutput {
	var out VertexOutput
	out.UV = uv

	objectPos := [4]float32{position[0], position[1], position[2], 1}

	// clip = projection * view * model * objectPos
	p := common.MulVec4(pc.Model[:], objectPos)
	p = common.MulVec4(u.View[:], p)
	out.Position = common.MulVec4(u.Projection[:], p)

	// view-space derivation for lighting varyings only
	viewPos := common.MulVec4(u.View[:], objectPos)
	out.Normal = common.Mat3MulVec3(u.View[:], normal)

	lightView := common.Mat3MulVec3(u.View[:], [3]float32{u.LightPosition[0], u.LightPosition[1], u.LightPosition[2]})
	out.ToLight = common.Sub3(lightView, [3]float32{viewPos[0], viewPos[1], viewPos[2]})
	out.ToCamera = [3]float32{-viewPos[0], -viewPos[1], -viewPos[2]}
	return out
}
