package transform

import (
	"testing"

	"github.com/lilith645/Maat-Graphics/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformVertexIdentityPassThrough(t *testing.T) {
	u := &GPUTransformUniform{}
	common.Identity(u.Projection[:])
	common.Identity(u.Model[:])

	got := TransformVertex(u, [2]float32{0.5, -0.25})
	assert.Equal(t, [4]float32{0.5, -0.25, 0, 1}, got)
}

func TestTransformVertexAppliesBothMatrices(t *testing.T) {
	u := &GPUTransformUniform{}
	// model: translate by (1, 2)
	common.Identity(u.Model[:])
	u.Model[12] = 1
	u.Model[13] = 2
	// projection: scale x by 0.5
	common.Identity(u.Projection[:])
	u.Projection[0] = 0.5

	got := TransformVertex(u, [2]float32{1, 1})
	assert.InDelta(t, 1.0, got[0], 1e-6) // (1+1)*0.5
	assert.InDelta(t, 3.0, got[1], 1e-6) // 1+2
	assert.InDelta(t, 1.0, got[3], 1e-6)
}

func TestGPUTransformUniformContract(t *testing.T) {
	u := &GPUTransformUniform{}
	common.Identity(u.Projection[:])
	common.Identity(u.Model[:])
	require.Equal(t, 128, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 128)
	// identity diagonal 1.0 at offset 0 (projection) and 64 (model)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[0:4])
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[64:68])
}
