package texture

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checker2x2 builds a 2x2 texture: red, green / blue, white.
func checker2x2(options ...TextureBuilderOption) Texture {
	pixels := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	return NewTextureFromPixels("checker", pixels, 2, 2, options...)
}

func TestSampleNearest(t *testing.T) {
	tex := checker2x2()

	assert.Equal(t, [4]float32{1, 0, 0, 1}, tex.Sample(0.25, 0.25))
	assert.Equal(t, [4]float32{0, 1, 0, 1}, tex.Sample(0.75, 0.25))
	assert.Equal(t, [4]float32{0, 0, 1, 1}, tex.Sample(0.25, 0.75))
	assert.Equal(t, [4]float32{1, 1, 1, 1}, tex.Sample(0.75, 0.75))
}

func TestSampleEdgeCoordinate(t *testing.T) {
	tex := checker2x2(WithAddressModes(wgpu.AddressModeClampToEdge, wgpu.AddressModeClampToEdge))

	// u = v = 1.0 must clamp onto the last texel, not read out of bounds.
	assert.Equal(t, [4]float32{1, 1, 1, 1}, tex.Sample(1.0, 1.0))
}

func TestSampleAddressModes(t *testing.T) {
	t.Run("repeat wraps past one", func(t *testing.T) {
		tex := checker2x2()
		assert.Equal(t, tex.Sample(0.25, 0.25), tex.Sample(1.25, 2.25))
		assert.Equal(t, tex.Sample(0.75, 0.25), tex.Sample(-0.25, 0.25))
	})

	t.Run("clamp pins to edge", func(t *testing.T) {
		tex := checker2x2(WithAddressModes(wgpu.AddressModeClampToEdge, wgpu.AddressModeClampToEdge))
		assert.Equal(t, tex.Sample(0.25, 0.25), tex.Sample(-3.0, -0.5))
		assert.Equal(t, tex.Sample(0.75, 0.75), tex.Sample(5.0, 2.0))
	})

	t.Run("mirror reflects odd periods", func(t *testing.T) {
		tex := checker2x2(WithAddressModes(wgpu.AddressModeMirrorRepeat, wgpu.AddressModeMirrorRepeat))
		// 1.25 mirrors back to 0.75.
		assert.Equal(t, tex.Sample(0.75, 0.25), tex.Sample(1.25, 0.25))
		// 2.25 is an even period, so it lands at 0.25.
		assert.Equal(t, tex.Sample(0.25, 0.25), tex.Sample(2.25, 0.25))
	})
}

func TestSampleEmptyTexture(t *testing.T) {
	tex := NewTextureFromPixels("empty", nil, 0, 0)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, tex.Sample(0.5, 0.5))
}

func TestAtlasBlock(t *testing.T) {
	tex := checker2x2()
	atlas := NewAtlas(tex, 4)

	require.Equal(t, uint32(16), atlas.Cells())
	assert.Equal(t, [2]float32{0, 0}, atlas.Block(0))
	assert.Equal(t, [2]float32{3, 0}, atlas.Block(3))
	assert.Equal(t, [2]float32{0, 1}, atlas.Block(4))
	assert.Equal(t, [2]float32{3, 3}, atlas.Block(15))
	// index past the sheet wraps
	assert.Equal(t, [2]float32{0, 0}, atlas.Block(16))
}

func TestAtlasSheetVector(t *testing.T) {
	atlas := NewAtlas(checker2x2(), 4)

	textured := atlas.SheetVector(5, true)
	assert.Equal(t, [4]float32{1, 1, 4, 0}, textured)

	untextured := atlas.SheetVector(5, false)
	assert.Equal(t, [4]float32{1, 1, -4, 0}, untextured)
}

func TestAtlasZeroRowsClamped(t *testing.T) {
	atlas := NewAtlas(checker2x2(), 0)
	require.Equal(t, uint32(1), atlas.Rows())
	assert.Equal(t, [4]float32{0, 0, 1, 0}, atlas.SheetVector(0, true))
}
