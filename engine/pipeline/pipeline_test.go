package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilith645/Maat-Graphics/common"
	"github.com/lilith645/Maat-Graphics/engine/model"
	"github.com/lilith645/Maat-Graphics/engine/shading/geometry"
	"github.com/lilith645/Maat-Graphics/engine/shading/lighting"
	"github.com/lilith645/Maat-Graphics/engine/shading/sprite"
	"github.com/lilith645/Maat-Graphics/engine/shading/transform"
	"github.com/lilith645/Maat-Graphics/engine/texture"
)

// fullscreenQuad builds a mesh quad covering the whole clip volume at depth z,
// facing the camera.
func fullscreenQuad(z float32) ([]model.GPUMeshVertex, []uint32) {
	verts := []model.GPUMeshVertex{
		{Position: [3]float32{-1, -1, z}, UV: [2]float32{0, 1}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{1, -1, z}, UV: [2]float32{1, 1}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{1, 1, z}, UV: [2]float32{1, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{-1, 1, z}, UV: [2]float32{0, 0}, Normal: [3]float32{0, 0, 1}},
	}
	return verts, []uint32{0, 1, 2, 2, 3, 0}
}

// identityScene builds a scene uniform with identity matrices and a light
// directly in front of the quad plane.
func identityScene() *geometry.GPUSceneUniform {
	var u geometry.GPUSceneUniform
	common.Identity(u.Projection[:])
	common.Identity(u.View[:])
	u.LightPosition = [4]float32{0, 0, 5, 1}
	return &u
}

func TestDrawSpriteTintOnly(t *testing.T) {
	p := NewPipeline(64, 64, WithWorkers(2))

	pc := &sprite.GPUSpritePush{
		Model:             [4]float32{32, 32, 16, 16},
		Colour:            [4]float32{1, 0, 0, 1},
		SpriteSheet:       [4]float32{0, 0, -1, 0},
		ProjectionDetails: [4]float32{0, 0, 64, 64},
	}
	require.NoError(t, p.DrawSprite(pc, nil))

	fb := p.Framebuffer()
	assert.Equal(t, [4]float32{1, 0, 0, 1}, fb.At(32, 32))
	// outside the 16x16 footprint the target is untouched
	assert.Equal(t, [4]float32{0, 0, 0, 0}, fb.At(4, 4))
	assert.Equal(t, [4]float32{0, 0, 0, 0}, fb.At(32, 50))
}

func TestDrawSpriteTexturedModulatesTint(t *testing.T) {
	p := NewPipeline(32, 32, WithWorkers(1))

	// solid white 1x1 texture
	tex := texture.NewTextureFromPixels("white", []byte{255, 255, 255, 255}, 1, 1)
	pc := &sprite.GPUSpritePush{
		Model:             [4]float32{16, 16, 32, 32},
		Colour:            [4]float32{1, 0.5, 0, 1},
		SpriteSheet:       [4]float32{0, 0, 1, 0},
		ProjectionDetails: [4]float32{0, 0, 32, 32},
	}
	require.NoError(t, p.DrawSprite(pc, tex))

	got := p.Framebuffer().At(16, 16)
	assert.InDelta(t, 1.0, got[0], 0.01)
	assert.InDelta(t, 0.5, got[1], 0.01)
	assert.InDelta(t, 0.0, got[2], 0.01)
}

func TestDrawSpriteNegativeRowCountSkipsSampling(t *testing.T) {
	p := NewPipeline(32, 32, WithWorkers(1))

	// a solid green texture that must NOT appear in the output
	tex := texture.NewTextureFromPixels("green", []byte{0, 255, 0, 255}, 1, 1)
	pc := &sprite.GPUSpritePush{
		Model:             [4]float32{16, 16, 32, 32},
		Colour:            [4]float32{0, 0, 1, 1},
		SpriteSheet:       [4]float32{0, 0, -1, 0},
		ProjectionDetails: [4]float32{0, 0, 32, 32},
	}
	require.NoError(t, p.DrawSprite(pc, tex))

	assert.Equal(t, [4]float32{0, 0, 1, 1}, p.Framebuffer().At(16, 16))
}

func TestDrawSpriteDefaultsProjectionExtents(t *testing.T) {
	p := NewPipeline(48, 48, WithWorkers(1))

	// zero extents fall back to the framebuffer dimensions
	pc := &sprite.GPUSpritePush{
		Model:       [4]float32{24, 24, 48, 48},
		Colour:      [4]float32{1, 1, 1, 1},
		SpriteSheet: [4]float32{0, 0, -1, 0},
	}
	require.NoError(t, p.DrawSprite(pc, nil))
	assert.Equal(t, [4]float32{1, 1, 1, 1}, p.Framebuffer().At(24, 24))
	assert.Equal(t, [4]float32{1, 1, 1, 1}, p.Framebuffer().At(1, 1))
}

func TestDrawSpriteNilPush(t *testing.T) {
	p := NewPipeline(8, 8, WithWorkers(1))
	assert.Error(t, p.DrawSprite(nil, nil))
}

func TestDrawTexturedQuad(t *testing.T) {
	p := NewPipeline(32, 32, WithWorkers(1))

	tex := texture.NewTextureFromPixels("white", []byte{255, 255, 255, 255}, 1, 1)
	var u transform.GPUTransformUniform
	common.Identity(u.Projection[:])
	common.Identity(u.Model[:])
	// scale the unit quad up to cover clip space
	u.Model[0], u.Model[5] = 4, 4

	require.NoError(t, p.DrawTexturedQuad(&u, [4]float32{0, 1, 1, 1}, tex))
	assert.Equal(t, [4]float32{0, 1, 1, 1}, p.Framebuffer().At(16, 16))

	assert.Error(t, p.DrawTexturedQuad(nil, [4]float32{1, 1, 1, 1}, tex))
}

func TestDrawMeshLitQuad(t *testing.T) {
	p := NewPipeline(64, 64, WithWorkers(2))

	verts, indices := fullscreenQuad(0)
	u := identityScene()
	var pc geometry.GPUModelPush
	common.Identity(pc.Model[:])
	lu := &lighting.GPULightingUniform{
		LightColour: [3]float32{1, 1, 1},
		ShineDamper: 10,
	}

	require.NoError(t, p.DrawMesh(verts, indices, u, &pc, lu, nil))

	// At the center the interpolated to-light vector points straight at the
	// light, so the diffuse term saturates and the fragment is full white.
	got := p.Framebuffer().At(32, 32)
	assert.InDelta(t, 1.0, got[0], 0.02)
	assert.InDelta(t, 1.0, got[1], 0.02)
	assert.InDelta(t, 1.0, got[2], 0.02)
	assert.Equal(t, float32(1.0), got[3])
}

func TestDrawMeshDepthTest(t *testing.T) {
	p := NewPipeline(32, 32, WithWorkers(1))

	u := identityScene()
	var pc geometry.GPUModelPush
	common.Identity(pc.Model[:])

	nearVerts, indices := fullscreenQuad(-0.5)
	farVerts, _ := fullscreenQuad(0.5)

	green := &lighting.GPULightingUniform{LightColour: [3]float32{0, 1, 0}, ShineDamper: 10}
	red := &lighting.GPULightingUniform{LightColour: [3]float32{1, 0, 0}, ShineDamper: 10}

	require.NoError(t, p.DrawMesh(nearVerts, indices, u, &pc, green, nil))
	require.NoError(t, p.DrawMesh(farVerts, indices, u, &pc, red, nil))

	// the far quad fails the depth test everywhere the near quad rendered
	got := p.Framebuffer().At(16, 16)
	assert.InDelta(t, 0.0, got[0], 0.02)
	assert.InDelta(t, 1.0, got[1], 0.02)
}

func TestDrawMeshValidation(t *testing.T) {
	p := NewPipeline(8, 8, WithWorkers(1))
	verts, indices := fullscreenQuad(0)
	u := identityScene()
	var pc geometry.GPUModelPush
	common.Identity(pc.Model[:])
	lu := &lighting.GPULightingUniform{LightColour: [3]float32{1, 1, 1}, ShineDamper: 10}

	assert.Error(t, p.DrawMesh(verts, indices, nil, &pc, lu, nil))
	assert.Error(t, p.DrawMesh(verts, indices, u, nil, lu, nil))
	assert.Error(t, p.DrawMesh(verts, indices, u, &pc, nil, nil))
	assert.Error(t, p.DrawMesh(verts, indices[:4], u, &pc, lu, nil))
	assert.Error(t, p.DrawMesh(verts[:2], indices, u, &pc, lu, nil))
}

func TestClearResetsDepth(t *testing.T) {
	p := NewPipeline(16, 16, WithWorkers(1))

	u := identityScene()
	var pc geometry.GPUModelPush
	common.Identity(pc.Model[:])
	lu := &lighting.GPULightingUniform{LightColour: [3]float32{1, 0, 0}, ShineDamper: 10}

	nearVerts, indices := fullscreenQuad(-0.5)
	require.NoError(t, p.DrawMesh(nearVerts, indices, u, &pc, lu, nil))

	p.Clear([4]float32{0, 0, 0, 1})
	assert.Equal(t, [4]float32{0, 0, 0, 1}, p.Framebuffer().At(8, 8))

	// after clearing, a farther surface renders again
	farVerts, _ := fullscreenQuad(0.5)
	green := &lighting.GPULightingUniform{LightColour: [3]float32{0, 1, 0}, ShineDamper: 10}
	require.NoError(t, p.DrawMesh(farVerts, indices, u, &pc, green, nil))
	got := p.Framebuffer().At(8, 8)
	assert.InDelta(t, 1.0, got[1], 0.02)
}

func TestFramebufferStagingRoundTrip(t *testing.T) {
	p := NewPipeline(16, 16, WithWorkers(1))
	p.Clear([4]float32{0.5, 0.25, 0, 1})

	staged := p.Framebuffer().StagingData()
	tex := texture.NewTextureFromPixels("frame", staged.Pixels, staged.Width, staged.Height)
	got := tex.Sample(0.5, 0.5)
	assert.InDelta(t, 0.5, got[0], 0.01)
	assert.InDelta(t, 0.25, got[1], 0.01)
}
