package light

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()
	assert.Equal(t, [4]float32{0, 5, 0, 1}, l.Position())
	assert.Equal(t, [3]float32{1, 1, 1}, l.Colour())
	assert.Equal(t, float32(10.0), l.ShineDamper())
	assert.Equal(t, float32(1.0), l.Reflectivity())
}

func TestLightOptions(t *testing.T) {
	l := NewLight(
		WithPosition(1, 2, 3, 0),
		WithColour(1, 0.5, 0.25),
		WithSpecular(32, 0.8),
	)
	assert.Equal(t, [4]float32{1, 2, 3, 0}, l.Position())
	assert.Equal(t, [3]float32{1, 0.5, 0.25}, l.Colour())

	u := l.LightingUniform()
	assert.Equal(t, [3]float32{1, 0.5, 0.25}, u.LightColour)
	assert.Equal(t, float32(32), u.ShineDamper)
	assert.Equal(t, float32(0.8), u.Reflectivity)
}

func TestSetPositionKeepsW(t *testing.T) {
	l := NewLight(WithPosition(0, 0, 0, 0))
	l.SetPosition(4, 5, 6)
	assert.Equal(t, [4]float32{4, 5, 6, 0}, l.Position())
}
