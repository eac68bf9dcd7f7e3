// Package sprite implements the sprite transform vertex stage: a translation +
// scale model matrix and a custom orthographic projection built from a
// push-constant block, plus sprite-atlas UV remapping.
package sprite

import (
	"github.com/chewxy/math32"

	"github.com/lilith645/Maat-Graphics/common"
)

// Near and far plane values baked into the sprite projection. These are fixed
// by the wire contract, not configurable per draw.
const (
	projectionNear float32 = 1.0
	projectionFar  float32 = -1.0
)

// ProjectionMode selects the z-scale term of the sprite orthographic projection.
type ProjectionMode int

const (
	// ProjectionModeLegacy reproduces the shipped z-scale term -2/(near/far),
	// which evaluates to +2.0 with the baked near/far planes. Mathematically this
	// deviates from a standard orthographic derivation but existing hosts depend
	// on the exact clip-space values, so it is the default.
	ProjectionModeLegacy ProjectionMode = iota

	// ProjectionModeCorrected uses the standard orthographic z-scale term
	// -2/(far - near), which evaluates to +1.0 with the baked near/far planes.
	ProjectionModeCorrected
)

// VertexOutput holds the varyings produced by the sprite vertex stage for one
// vertex. Position is a clip-space homogeneous coordinate; the remaining fields
// are interpolated across the primitive before the fragment stage reads them.
type VertexOutput struct {
	Position   [4]float32 // clip-space position
	UV         [2]float32 // atlas-remapped texture coordinate
	Colour     [4]float32 // RGBA tint passed through from the push block
	UseTexture float32    // the signed row count; sign/zero decides texture usage downstream
}

// Stage is the sprite transform vertex stage. One Stage is shared by every draw
// call in a pass; per-draw state arrives through the GPUSpritePush block.
type Stage interface {
	// Mode returns the projection mode in effect.
	//
	// Returns:
	//   - ProjectionMode: the active projection mode
	Mode() ProjectionMode

	// Offset returns the projection offset. The current call path always leaves
	// this at (0, 0); the parameter exists for hosts that render into a sub-rect.
	//
	// Returns:
	//   - x, y: the projection offset components
	Offset() (x, y float32)

	// TransformVertex runs the vertex stage for a single vertex: remaps the UV
	// into the sprite-atlas cell, builds the model and projection matrices from
	// the push block, and produces the clip-space position and varyings.
	//
	// Parameters:
	//   - pc: the per-draw push-constant block
	//   - position: object-space 2D vertex position
	//   - uv: raw vertex texture coordinate
	//
	// Returns:
	//   - VertexOutput: clip-space position and varyings for interpolation
	TransformVertex(pc *GPUSpritePush, position, uv [2]float32) VertexOutput

	// SetMode switches the projection mode.
	//
	// Parameters:
	//   - mode: the projection mode to use
	SetMode(mode ProjectionMode)
}

// stageImpl is the implementation of the Stage interface.
type stageImpl struct {
	mode    ProjectionMode
	offsetX float32
	offsetY float32
}

var _ Stage = &stageImpl{}

// NewStage creates a sprite transform stage with the legacy projection mode and
// a zero projection offset, then applies the provided options.
//
// Parameters:
//   - options: functional options to configure the stage
//
// Returns:
//   - Stage: the configured stage
func NewStage(options ...StageBuilderOption) Stage {
	s := &stageImpl{
		mode: ProjectionModeLegacy,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *stageImpl) Mode() ProjectionMode {
	return s.mode
}

func (s *stageImpl) Offset() (x, y float32) {
	return s.offsetX, s.offsetY
}

func (s *stageImpl) SetMode(mode ProjectionMode) {
	s.mode = mode
}

func (s *stageImpl) TransformVertex(pc *GPUSpritePush, position, uv [2]float32) VertexOutput {
	var out VertexOutput

	out.UV = RemapUV(uv, [2]float32{pc.SpriteSheet[0], pc.SpriteSheet[1]}, pc.SpriteSheet[2])
	out.Colour = pc.Colour
	out.UseTexture = pc.SpriteSheet[2]

	var model, projection [16]float32
	ModelMatrix(model[:], pc.Model[0], pc.Model[1], pc.Model[2], pc.Model[3])
	Projection(projection[:], s.offsetX, s.offsetY, pc.ProjectionDetails[2], pc.ProjectionDetails[3], s.mode)

	// projection * model * vec4(position, 0, 1), z hardcoded to 0 for 2D geometry.
	p := [4]float32{position[0], position[1], 0, 1}
	p = common.MulVec4(model[:], p)
	out.Position = common.MulVec4(projection[:], p)
	return out
}

// RemapUV remaps a raw vertex UV into a sprite-atlas cell:
// (uv + block) / |rowCount|. The row count's sign is stripped before the
// division, so the remap is invariant under sign flip; the signed value itself
// travels to the fragment stage through the UseTexture varying.
//
// Parameters:
//   - uv: raw vertex texture coordinate
//   - block: atlas cell coordinates (block_x, block_y)
//   - rowCount: signed atlas row count (must be non-zero)
//
// Returns:
//   - [2]float32: the remapped UV
func RemapUV(uv, block [2]float32, rowCount float32) [2]float32 {
	rows := math32.Abs(rowCount)
	return [2]float32{
		(uv[0] + block[0]) / rows,
		(uv[1] + block[1]) / rows,
	}
}

// ModelMatrix builds the combined non-uniform scale + translation model matrix
// for a sprite, equivalent to translate(pos) * scale(sx, sy, 1) expressed as a
// single column-major 4x4 with the scale on the diagonal and the translation in
// the last column's xy.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - posX, posY: sprite position
//   - scaleX, scaleY: sprite scale
func ModelMatrix(out []float32, posX, posY, scaleX, scaleY float32) {
	for i := range out {
		out[i] = 0
	}
	out[0] = scaleX
	out[5] = scaleY
	out[10] = 1
	out[12] = posX
	out[13] = posY
	out[15] = 1
}

// Projection builds the custom sprite orthographic projection matrix. The near
// and far planes are fixed at 1 and -1. The x/y terms follow the standard
// orthographic derivation; the z-scale term depends on the mode (see
// ProjectionMode). Degenerate extents (right == left or top == bottom) divide
// by zero and propagate non-finite values; the host is responsible for never
// submitting them.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - offsetX, offsetY: projection offset (the current call path passes 0, 0)
//   - rightExtent: horizontal extent added to the left edge
//   - bottomExtent: vertical extent added to the top edge
//   - mode: z-scale term selection
func Projection(out []float32, offsetX, offsetY, rightExtent, bottomExtent float32, mode ProjectionMode) {
	left := offsetX
	top := offsetY
	right := rightExtent + left
	bottom := bottomExtent + top

	for i := range out {
		out[i] = 0
	}
	out[0] = 2.0 / (right - left)
	out[5] = 2.0 / (top - bottom)
	switch mode {
	case ProjectionModeCorrected:
		out[10] = -2.0 / (projectionFar - projectionNear)
	default:
		out[10] = -2.0 / (projectionNear / projectionFar)
	}
	out[12] = -(right + left) / (right - left)
	out[13] = -(top + bottom) / (top - bottom)
	out[14] = 0
	out[15] = 1
}
