package lighting

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightingUniformSource is the canonical WGSL definition of the LightingUniform struct.
// Matches GPULightingUniform layout exactly (32 bytes, std430 aligned).
//
//go:embed assets/lighting_uniform.wgsl
var GPULightingUniformSource string

// LitFragmentSource is the WGSL fragment stage consuming the LightingUniform block.
// The Shade function in this package mirrors its math exactly.
//
//go:embed assets/lit_frag.wgsl
var LitFragmentSource string

// GPULightingUniform is the GPU-aligned uniform data for the lit fragment stage:
// the single light's colour plus the surface damper/reflectivity pair.
// Matches the WGSL LightingUniform struct layout exactly (see GPULightingUniformSource).
// Size: 32 bytes (vec3 + 2 x f32, padded to 16-byte alignment).
type GPULightingUniform struct {
	LightColour  [3]float32 // offset  0: RGB light colour
	ShineDamper  float32    // offset 12: specular exponent
	Reflectivity float32    // offset 16: specular intensity multiplier
	_pad         [3]float32 // offset 20: padding to 32 bytes
}

// Size returns the size of the GPULightingUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULightingUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightingUniform struct into a byte buffer suitable
// for GPU uniform upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULightingUniform) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.LightColour[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.LightColour[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.LightColour[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.ShineDamper))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Reflectivity))
	// bytes 20-32 are padding
	return buf
}
