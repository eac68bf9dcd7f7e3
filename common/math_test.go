package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	var m [16]float32
	Identity(m[:])
	v := MulVec4(m[:], [4]float32{1, 2, 3, 4})
	assert.Equal(t, [4]float32{1, 2, 3, 4}, v)
}

func TestMul4AgainstVectorPath(t *testing.T) {
	var translate, scale, combined [16]float32
	Identity(translate[:])
	translate[12], translate[13], translate[14] = 1, 2, 3
	Identity(scale[:])
	scale[0], scale[5], scale[10] = 2, 2, 2

	// combined = translate * scale applied to a point must equal applying
	// scale then translate separately
	Mul4(combined[:], translate[:], scale[:])
	p := [4]float32{1, 1, 1, 1}
	direct := MulVec4(combined[:], p)
	stepped := MulVec4(translate[:], MulVec4(scale[:], p))
	assert.Equal(t, stepped, direct)
	assert.Equal(t, [4]float32{3, 4, 5, 1}, direct)
}

func TestMul4AliasedOutput(t *testing.T) {
	var a, b [16]float32
	Identity(a[:])
	a[12] = 5
	Identity(b[:])
	b[0] = 3

	// out aliasing an input must not corrupt the product
	Mul4(a[:], a[:], b[:])
	v := MulVec4(a[:], [4]float32{1, 0, 0, 1})
	assert.Equal(t, [4]float32{8, 0, 0, 1}, v)
}

func TestMat3MulVec3DropsTranslation(t *testing.T) {
	var m [16]float32
	Identity(m[:])
	m[12], m[13], m[14] = 10, 20, 30

	v := Mat3MulVec3(m[:], [3]float32{1, 2, 3})
	assert.Equal(t, [3]float32{1, 2, 3}, v)
}

func TestNormalize3(t *testing.T) {
	v := Normalize3([3]float32{3, 0, 4})
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[2], 1e-6)

	// zero vector passes through instead of producing NaN
	assert.Equal(t, [3]float32{0, 0, 0}, Normalize3([3]float32{0, 0, 0}))
}

func TestReflect3(t *testing.T) {
	// straight-down incident against an up-facing normal reflects straight up
	r := Reflect3([3]float32{0, -1, 0}, [3]float32{0, 1, 0})
	assert.Equal(t, [3]float32{0, 1, 0}, r)

	// 45 degree bounce off a floor keeps the horizontal component
	r = Reflect3([3]float32{1, -1, 0}, [3]float32{0, 1, 0})
	assert.Equal(t, [3]float32{1, 1, 0}, r)

	// unnormalized normal scales the reflection, matching the GLSL convention
	r = Reflect3([3]float32{0, -1, 0}, [3]float32{0, 2, 0})
	assert.Equal(t, [3]float32{0, 7, 0}, r)
}

func TestOrthoMapsExtentsToClipCube(t *testing.T) {
	var m [16]float32
	Ortho(m[:], 0, 800, 600, 0, -1, 1)

	topLeft := MulVec4(m[:], [4]float32{0, 0, 0, 1})
	assert.InDelta(t, -1.0, topLeft[0], 1e-6)
	assert.InDelta(t, 1.0, topLeft[1], 1e-6)

	bottomRight := MulVec4(m[:], [4]float32{800, 600, 0, 1})
	assert.InDelta(t, 1.0, bottomRight[0], 1e-6)
	assert.InDelta(t, -1.0, bottomRight[1], 1e-6)
}

func TestPerspectiveClipRange(t *testing.T) {
	var m [16]float32
	Perspective(m[:], 1.0, 1.0, 0.1, 100.0)

	// a point on the near plane maps to z = 0, far plane to z = 1 after the
	// perspective divide (WebGPU convention)
	near := MulVec4(m[:], [4]float32{0, 0, -0.1, 1})
	assert.InDelta(t, 0.0, near[2]/near[3], 1e-5)

	far := MulVec4(m[:], [4]float32{0, 0, -100.0, 1})
	assert.InDelta(t, 1.0, far[2]/far[3], 1e-5)
}

func TestBuildModelMatrixTranslationAndScale(t *testing.T) {
	var m [16]float32
	BuildModelMatrix(m[:], 1, 2, 3, 0, 0, 0, 2, 2, 2)

	v := MulVec4(m[:], [4]float32{1, 1, 1, 1})
	assert.InDelta(t, 3.0, v[0], 1e-6)
	assert.InDelta(t, 4.0, v[1], 1e-6)
	assert.InDelta(t, 5.0, v[2], 1e-6)
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1.0, 2.0}
	buf := SliceToBytes(data)
	require.Len(t, buf, 8)
	// 1.0f little-endian
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[0:4])
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, float32(5), Coalesce(float32(0), 5, 7))
	assert.Equal(t, float32(0), Coalesce[float32]())
	assert.Equal(t, "fallback", Coalesce("", "fallback"))
}
