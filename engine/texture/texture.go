// Package texture stages RGBA texture data for the shading core and provides
// the CPU-side sampling path the software rasterizer uses. Staged data is also
// what a GPU backend would upload, so both paths consume the same bytes.
package texture

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lilith645/Maat-Graphics/common"
)

// Texture is a staged 2D RGBA texture with sampler configuration. It can be
// sampled directly on the CPU or uploaded to a GPU backend as-is.
type Texture interface {
	// Name returns the texture's identifier.
	//
	// Returns:
	//   - string: the texture name
	Name() string

	// Width returns the texture width in pixels.
	//
	// Returns:
	//   - uint32: the width
	Width() uint32

	// Height returns the texture height in pixels.
	//
	// Returns:
	//   - uint32: the height
	Height() uint32

	// StagingData returns the staged pixel payload pending GPU upload.
	//
	// Returns:
	//   - *common.TextureStagingData: the staged RGBA pixels and dimensions
	StagingData() *common.TextureStagingData

	// SamplerData returns the sampler configuration for this texture.
	//
	// Returns:
	//   - *common.SamplerStagingData: address modes and filters
	SamplerData() *common.SamplerStagingData

	// Sample reads the texture at the given UV coordinate with nearest-neighbour
	// filtering, applying this texture's address modes to coordinates outside
	// [0, 1]. Channels are returned normalized to [0, 1].
	//
	// Parameters:
	//   - u, v: the texture coordinate
	//
	// Returns:
	//   - [4]float32: the RGBA texel
	Sample(u, v float32) [4]float32
}

// textureImpl is the implementation of the Texture interface.
type textureImpl struct {
	name    string
	staging common.TextureStagingData
	sampler common.SamplerStagingData
}

var _ Texture = &textureImpl{}

// NewTexture decodes a source texture and stages its pixels, then applies the
// provided options. The default sampler repeats in both dimensions with linear
// filters, matching the sampler a GPU backend would create when the source
// carries no override.
//
// Parameters:
//   - source: the texture source (embedded bytes or a file path)
//   - options: functional options to configure the texture
//
// Returns:
//   - Texture: the staged texture
//   - error: error if the source cannot be decoded
func NewTexture(source *common.SourceTexture, options ...TextureBuilderOption) (Texture, error) {
	pixels, width, height, err := source.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to stage texture %s: %w", source.Name, err)
	}

	t := &textureImpl{
		name: source.Name,
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
	if source.SamplerData != nil {
		t.sampler = *source.SamplerData
	}
	for _, option := range options {
		option(t)
	}
	return t, nil
}

func (t *textureImpl) Name() string {
	return t.name
}

func (t *textureImpl) Width() uint32 {
	return t.staging.Width
}

func (t *textureImpl) Height() uint32 {
	return t.staging.Height
}

func (t *textureImpl) StagingData() *common.TextureStagingData {
	return &t.staging
}

func (t *textureImpl) SamplerData() *common.SamplerStagingData {
	return &t.sampler
}

func (t *textureImpl) Sample(u, v float32) [4]float32 {
	if len(t.staging.Pixels) == 0 || t.staging.Width == 0 || t.staging.Height == 0 {
		return [4]float32{1, 1, 1, 1}
	}

	u = applyAddressMode(u, t.sampler.AddressModeU)
	v = applyAddressMode(v, t.sampler.AddressModeV)

	// Nearest-neighbour sampling.
	x := int(u * float32(t.staging.Width))
	y := int(v * float32(t.staging.Height))
	if x >= int(t.staging.Width) {
		x = int(t.staging.Width) - 1
	}
	if y >= int(t.staging.Height) {
		y = int(t.staging.Height) - 1
	}

	i := (y*int(t.staging.Width) + x) * 4
	return [4]float32{
		float32(t.staging.Pixels[i]) / 255.0,
		float32(t.staging.Pixels[i+1]) / 255.0,
		float32(t.staging.Pixels[i+2]) / 255.0,
		float32(t.staging.Pixels[i+3]) / 255.0,
	}
}

// applyAddressMode maps a texture coordinate into [0, 1] according to the
// sampler address mode. Unknown modes fall back to repeat.
func applyAddressMode(c float32, mode wgpu.AddressMode) float32 {
	switch mode {
	case wgpu.AddressModeClampToEdge:
		if c < 0 {
			return 0
		}
		if c > 1 {
			return 1
		}
		return c
	case wgpu.AddressModeMirrorRepeat:
		return mirror(c)
	default:
		c = c - math32.Floor(c)
		if c < 0 {
			c += 1.0
		}
		return c
	}
}

// mirror folds a coordinate into [0, 1], reflecting on odd periods.
func mirror(c float32) float32 {
	period := math32.Floor(c)
	frac := c - period
	if int(period)%2 != 0 {
		return 1.0 - frac
	}
	return frac
}
