package geometry

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUSceneUniformSource is the canonical WGSL definition of the SceneUniform struct.
// Matches GPUSceneUniform layout exactly (144 bytes).
//
//go:embed assets/scene_uniform.wgsl
var GPUSceneUniformSource string

// GPUModelPushSource is the canonical WGSL definition of the ModelPush struct.
// Matches GPUModelPush layout exactly (128 bytes).
//
//go:embed assets/model_push.wgsl
var GPUModelPushSource string

// SceneVertexSource is the WGSL vertex stage consuming both blocks. The
// TransformVertex function in this package mirrors its math exactly.
//
//go:embed assets/scene_vert.wgsl
var SceneVertexSource string

// GPUSceneUniform is the per-pass uniform block: projection and view matrices
// plus the single light position in homogeneous coordinates. The host updates
// it once per frame and every draw in the pass reads the same copy.
// Matches the WGSL SceneUniform struct layout exactly (see GPUSceneUniformSource).
// Size: 144 bytes (2 x mat4x4<f32> + vec4<f32>, column-major).
type GPUSceneUniform struct {
	Projection    [16]float32 // offset   0: projection matrix
	View          [16]float32 // offset  64: view matrix
	LightPosition [4]float32  // offset 128: world-space light position (homogeneous)
}

// Size returns the size of the GPUSceneUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPUSceneUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSceneUniform struct into a byte buffer suitable for
// GPU uniform upload.
//
// Returns:
//   - []byte: 144-byte buffer ready for GPU upload
func (g *GPUSceneUniform) Marshal() []byte {
	buf := make([]byte, 144)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Projection[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.View[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.LightPosition[i]))
	}
	return buf
}

// GPUModelPush is the per-draw push-constant block for the view-space geometry
// stage: a model matrix plus four auxiliary attribute vectors. The attribute
// vectors are an opaque payload this core passes through unused; they are part
// of the fixed-size contract with the host.
// Matches the WGSL ModelPush struct layout exactly (see GPUModelPushSource).
// Size: 128 bytes (mat4x4<f32> + 4 x vec4<f32>).
type GPUModelPush struct {
	Model [16]float32   // offset  0: model matrix
	Attrs [4][4]float32 // offset 64: opaque auxiliary vectors
}

// Size returns the size of the GPUModelPush struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUModelPush) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUModelPush struct into a byte buffer suitable for
// push-constant upload.
//
// Returns:
//   - []byte: 128-byte buffer ready for GPU upload
func (g *GPUModelPush) Marshal() []byte {
	buf := make([]byte, 128)
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	off := 64
	for _, v := range g.Attrs {
		for i := range 4 {
			binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v[i]))
			off += 4
		}
	}
	return buf
}
