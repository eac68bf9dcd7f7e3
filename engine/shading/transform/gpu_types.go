package transform

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUTransformUniformSource is the canonical WGSL definition of the TransformUniform struct.
// Matches GPUTransformUniform layout exactly (128 bytes).
//
//go:embed assets/transform_uniform.wgsl
var GPUTransformUniformSource string

// TransformVertexSource is the WGSL vertex stage consuming the TransformUniform block.
//
//go:embed assets/transform_vert.wgsl
var TransformVertexSource string

// GPUTransformUniform is the uniform block consumed by the precomputed transform
// vertex stage. Both matrices are computed off-device by the host and uploaded
// once; the stage itself does no matrix construction.
// Matches the WGSL TransformUniform struct layout exactly (see GPUTransformUniformSource).
// Size: 128 bytes (2 x mat4x4<f32>, column-major).
type GPUTransformUniform struct {
	Projection [16]float32 // offset  0: projection matrix
	Model      [16]float32 // offset 64: model matrix
}

// Size returns the size of the GPUTransformUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUTransformUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUTransformUniform struct into a byte buffer suitable
// for GPU uniform upload.
//
// Returns:
//   - []byte: 128-byte buffer ready for GPU upload
func (g *GPUTransformUniform) Marshal() []byte {
	buf := make([]byte, 128)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Projection[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Model[i]))
	}
	return buf
}
