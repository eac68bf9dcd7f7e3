package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilith645/Maat-Graphics/common"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	x, y, z := c.Position()
	assert.Equal(t, [3]float32{0, 0, 5}, [3]float32{x, y, z})
	assert.Equal(t, float32(1.0), c.Aspect())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100.0), c.Far())
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 5), WithTarget(0, 0, 0))

	view := c.ViewMatrix()
	// Looking down -z from (0,0,5) the view is a pure translation by -5 in z.
	assert.InDelta(t, 1.0, view[0], 1e-6)
	assert.InDelta(t, 1.0, view[5], 1e-6)
	assert.InDelta(t, 1.0, view[10], 1e-6)
	assert.InDelta(t, -5.0, view[14], 1e-6)
}

func TestViewProjectionIsProduct(t *testing.T) {
	c := NewCamera(WithPosition(1, 2, 8), WithTarget(0, 0, 0), WithAspect(16.0/9.0))

	view := c.ViewMatrix()
	proj := c.ProjectionMatrix()
	var want [16]float32
	common.Mul4(want[:], proj[:], view[:])

	got := c.ViewProjectionMatrix()
	for i := range 16 {
		assert.InDelta(t, want[i], got[i], 1e-6)
	}
}

func TestSettersRecomputeMatrices(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 5), WithTarget(0, 0, 0))
	before := c.ViewMatrix()

	c.SetPosition(0, 0, 10)
	after := c.ViewMatrix()
	assert.NotEqual(t, before, after)
	assert.InDelta(t, -10.0, after[14], 1e-6)
}

func TestSceneUniform(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 5), WithTarget(0, 0, 0))
	lightPos := [4]float32{2, 4, 6, 1}

	u := c.SceneUniform(lightPos)
	require.Equal(t, c.ProjectionMatrix(), u.Projection)
	require.Equal(t, c.ViewMatrix(), u.View)
	assert.Equal(t, lightPos, u.LightPosition)

	buf := u.Marshal()
	require.Len(t, buf, 144)
}
