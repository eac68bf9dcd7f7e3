package sprite

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUSpritePushSource is the canonical WGSL definition of the SpritePush struct.
// Matches GPUSpritePush layout exactly (64 bytes).
//
//go:embed assets/sprite_push.wgsl
var GPUSpritePushSource string

// SpriteVertexSource is the WGSL vertex stage consuming the SpritePush block.
// The Go methods in this package mirror its math exactly so the CPU path and the
// GPU path produce the same varyings.
//
//go:embed assets/sprite_vert.wgsl
var SpriteVertexSource string

// GPUSpritePush is the push-constant block consumed by the sprite vertex stage.
// Matches the WGSL SpritePush struct layout exactly (see GPUSpritePushSource).
// Size: 64 bytes (4 x vec4<f32>). The host writes this as a raw struct, so field
// order and offsets are part of the wire contract.
type GPUSpritePush struct {
	Model             [4]float32 // offset  0: position.xy, scale.zw
	Colour            [4]float32 // offset 16: RGBA tint
	SpriteSheet       [4]float32 // offset 32: block_x, block_y, row_count (signed), flag
	ProjectionDetails [4]float32 // offset 48: x_offset, y_offset, right_extent, bottom_extent
}

// Size returns the size of the GPUSpritePush struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUSpritePush) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSpritePush struct into a byte buffer suitable for
// push-constant upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPUSpritePush) Marshal() []byte {
	buf := make([]byte, 64)
	vecs := [4][4]float32{g.Model, g.Colour, g.SpriteSheet, g.ProjectionDetails}
	off := 0
	for _, v := range vecs {
		for i := range 4 {
			binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v[i]))
			off += 4
		}
	}
	return buf
}

// RowCount returns the sprite sheet row count with its sign stripped, matching
// how the UV remap consumes the value.
//
// Returns:
//   - float32: |sprite_sheet.z|
func (g *GPUSpritePush) RowCount() float32 {
	if g.SpriteSheet[2] < 0 {
		return -g.SpriteSheet[2]
	}
	return g.SpriteSheet[2]
}

// UseTexture reports whether the fragment stage should sample the bound texture
// for this draw. The wire format carries no dedicated flag; the sign of the row
// count doubles as the enable signal, with positive meaning textured.
//
// Returns:
//   - bool: true if the row count is positive
func (g *GPUSpritePush) UseTexture() bool {
	return g.SpriteSheet[2] > 0
}
