package texture

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lilith645/Maat-Graphics/common"
)

// TextureBuilderOption is a functional option for configuring a texture.
type TextureBuilderOption func(*textureImpl)

// WithSamplerData overrides the full sampler configuration.
//
// Parameters:
//   - sampler: the sampler configuration to use
//
// Returns:
//   - TextureBuilderOption: the option
func WithSamplerData(sampler common.SamplerStagingData) TextureBuilderOption {
	return func(t *textureImpl) {
		t.sampler = sampler
	}
}

// WithAddressModes overrides just the sampler address modes, keeping the
// filter configuration.
//
// Parameters:
//   - u: the address mode for the U dimension
//   - v: the address mode for the V dimension
//
// Returns:
//   - TextureBuilderOption: the option
func WithAddressModes(u, v wgpu.AddressMode) TextureBuilderOption {
	return func(t *textureImpl) {
		t.sampler.AddressModeU = u
		t.sampler.AddressModeV = v
	}
}

// NewTextureFromPixels stages a texture directly from raw RGBA pixel data,
// skipping image decoding. Useful for procedurally generated textures and for
// render targets.
//
// Parameters:
//   - name: the texture identifier
//   - pixels: RGBA pixel data, 4 bytes per pixel, row-major
//   - width, height: the texture dimensions in pixels
//   - options: functional options to configure the texture
//
// Returns:
//   - Texture: the staged texture
func NewTextureFromPixels(name string, pixels []byte, width, height uint32, options ...TextureBuilderOption) Texture {
	t := &textureImpl{
		name: name,
		staging: common.TextureStagingData{
			Pixels: pixels,
			Width:  width,
			Height: height,
		},
		sampler: common.SamplerStagingData{
			AddressModeU: wgpu.AddressModeRepeat,
			AddressModeV: wgpu.AddressModeRepeat,
			MagFilter:    wgpu.FilterModeLinear,
			MinFilter:    wgpu.FilterModeLinear,
		},
	}
	for _, option := range options {
		option(t)
	}
	return t
}
