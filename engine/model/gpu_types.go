package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUSpriteVertexSource is the canonical WGSL definition of the SpriteVertexInput struct.
// Matches GPUSpriteVertex layout exactly (16 bytes).
//
//go:embed assets/sprite_vertex.wgsl
var GPUSpriteVertexSource string

// GPUSpriteVertex is the vertex format for sprite and precomputed-transform
// pipelines: a 2D position and a raw texture coordinate.
// Matches the WGSL SpriteVertexInput struct layout exactly (see GPUSpriteVertexSource).
// Size: 16 bytes.
type GPUSpriteVertex struct {
	Position [2]float32 // offset 0: 2D position in object space (8 bytes)
	UV       [2]float32 // offset 8: texture coordinate before atlas remap (8 bytes)
}

// Size returns the size of the GPUSpriteVertex struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUSpriteVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSpriteVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload
func (g *GPUSpriteVertex) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.UV[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.UV[1]))
	return buf
}

// SpriteVertexLayout returns the wgpu vertex buffer layout matching
// GPUSpriteVertex. A host configuring a render pipeline against the sprite
// vertex stage must use exactly this packing; a mismatch is a host-side
// configuration error this core cannot detect.
//
// Returns:
//   - wgpu.VertexBufferLayout: the vertex buffer layout
func SpriteVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 16,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
		},
	}
}

// GPUMeshVertexSource is the canonical WGSL definition of the MeshVertexInput struct.
// Matches GPUMeshVertex layout exactly (48 bytes).
//
//go:embed assets/mesh_vertex.wgsl
var GPUMeshVertexSource string

// GPUMeshVertex is the vertex format for lit mesh pipelines: 3D position, UV,
// normal, and a per-vertex colour.
// Matches the WGSL MeshVertexInput struct layout exactly (see GPUMeshVertexSource).
// Size: 48 bytes.
type GPUMeshVertex struct {
	Position [3]float32 // offset  0: position in object space (12 bytes)
	UV       [2]float32 // offset 12: texture coordinate (8 bytes)
	Normal   [3]float32 // offset 20: surface normal (12 bytes)
	Colour   [4]float32 // offset 32: per-vertex RGBA colour (16 bytes)
}

// Size returns the size of the GPUMeshVertex struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPUMeshVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMeshVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPUMeshVertex) Marshal() []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.UV[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.UV[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Normal[2]))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Colour[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Colour[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Colour[2]))
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.Colour[3]))
	return buf
}

// MeshVertexLayout returns the wgpu vertex buffer layout matching GPUMeshVertex.
//
// Returns:
//   - wgpu.VertexBufferLayout: the vertex buffer layout
func MeshVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 48,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 20, ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 3},
		},
	}
}
