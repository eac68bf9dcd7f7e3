package geometry

import (
	"testing"

	"github.com/lilith645/Maat-Graphics/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityUniform() *GPUSceneUniform {
	u := &GPUSceneUniform{}
	common.Identity(u.Projection[:])
	common.Identity(u.View[:])
	return u
}

func identityPush() *GPUModelPush {
	pc := &GPUModelPush{}
	common.Identity(pc.Model[:])
	return pc
}

func TestTransformVertexIdentity(t *testing.T) {
	u := identityUniform()
	u.LightPosition = [4]float32{0, 5, 0, 1}

	out := TransformVertex(u, identityPush(), [3]float32{1, 2, 3}, [3]float32{0, 1, 0}, [2]float32{0.5, 0.5})
	assert.Equal(t, [4]float32{1, 2, 3, 1}, out.Position)
	assert.Equal(t, [2]float32{0.5, 0.5}, out.UV)
	assert.Equal(t, [3]float32{0, 1, 0}, out.Normal)
	assert.Equal(t, [3]float32{-1, 3, -3}, out.ToLight)
	assert.Equal(t, [3]float32{-1, -2, -3}, out.ToCamera)
}

func TestClipPositionUsesModelMatrix(t *testing.T) {
	u := identityUniform()
	pc := identityPush()
	pc.Model[12] = 10 // translate x

	out := TransformVertex(u, pc, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}, [2]float32{0, 0})
	assert.InDelta(t, 11.0, out.Position[0], 1e-6)
}

func TestViewSpaceDerivationIgnoresModel(t *testing.T) {
	u := identityUniform()
	pc := identityPush()
	pc.Model[12] = 10

	// the model translation shifts the clip position but none of the
	// view-space varyings, which recompute from the raw input position
	out := TransformVertex(u, pc, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}, [2]float32{0, 0})
	assert.Equal(t, [3]float32{-1, 0, 0}, out.ToCamera)
}

func TestNormalTransformedByViewOnly(t *testing.T) {
	u := identityUniform()
	// view rotates 90 degrees about y: x -> -z, z -> x (column-major)
	common.BuildModelMatrix(u.View[:], 0, 0, 0, 0, 1.5707964, 0, 1, 1, 1)

	pc := identityPush()
	// model rotates the other way; normals must not see it
	common.BuildModelMatrix(pc.Model[:], 0, 0, 0, 0, -1.5707964, 0, 1, 1, 1)

	out := TransformVertex(u, pc, [3]float32{0, 0, 0}, [3]float32{1, 0, 0}, [2]float32{0, 0})
	assert.InDelta(t, 0.0, out.Normal[0], 1e-6)
	assert.InDelta(t, 0.0, out.Normal[1], 1e-6)
	assert.InDelta(t, -1.0, out.Normal[2], 1e-6)
}

func TestLightVectorPointsFromVertexToLight(t *testing.T) {
	u := identityUniform()
	u.LightPosition = [4]float32{0, 10, 0, 1}

	out := TransformVertex(u, identityPush(), [3]float32{0, 2, 0}, [3]float32{0, 1, 0}, [2]float32{0, 0})
	assert.Equal(t, [3]float32{0, 8, 0}, out.ToLight)
}

func TestGPUSceneUniformContract(t *testing.T) {
	u := identityUniform()
	u.LightPosition = [4]float32{1, 2, 3, 1}
	require.Equal(t, 144, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 144)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[0:4])     // projection[0] = 1.0
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[64:68])   // view[0] = 1.0
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[128:132]) // light_position.x = 1.0
}

func TestGPUModelPushContract(t *testing.T) {
	pc := identityPush()
	pc.Attrs[0] = [4]float32{1, 0, 0, 0}
	pc.Attrs[3] = [4]float32{0, 0, 0, 1}
	require.Equal(t, 128, pc.Size())

	buf := pc.Marshal()
	require.Len(t, buf, 128)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[0:4])     // model[0] = 1.0
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[64:68])   // attrs[0].x = 1.0
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[124:128]) // attrs[3].w = 1.0
}
