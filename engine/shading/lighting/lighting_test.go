package lighting

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrightnessBounds(t *testing.T) {
	dirs := [][3]float32{
		{0, 1, 0}, {0, -1, 0}, {1, 0, 0}, {-1, 0, 0},
		{0.3, 0.7, -0.2}, {-0.5, -0.5, -0.5}, {2, 0, 0}, {0, 0, 4},
	}
	for _, n := range dirs {
		for _, l := range dirs {
			b := Brightness(n, l)
			assert.GreaterOrEqual(t, b, float32(0.2))
			assert.LessOrEqual(t, b, float32(1.0)+1e-6)
		}
	}
}

func TestBrightnessAmbientFloor(t *testing.T) {
	// light directly behind the surface: raw dot is -1, clamped to the floor
	b := Brightness([3]float32{0, 1, 0}, [3]float32{0, -1, 0})
	assert.Equal(t, AmbientFloor, b)
}

func TestSpecularFactorZeroWhenFacingAway(t *testing.T) {
	// light straight down onto an upward-facing surface, camera below the
	// surface: the reflection points up, away from the camera.
	f := SpecularFactor([3]float32{0, 1, 0}, [3]float32{0, 1, 0}, [3]float32{0, -1, 0})
	assert.Equal(t, float32(0), f)
}

func TestSpecularUsesRawNormal(t *testing.T) {
	// Scaling the normal changes the reflection because the stage reflects
	// about the varying as interpolated. A glancing setup where the scaled
	// normal overshoots makes the difference observable.
	unit := SpecularFactor([3]float32{0, 1, 0}, [3]float32{1, 1, 0}, [3]float32{-1, 1, 0})
	scaled := SpecularFactor([3]float32{0, 3, 0}, [3]float32{1, 1, 0}, [3]float32{-1, 1, 0})
	assert.NotEqual(t, unit, scaled)

	// The diffuse term normalizes, so the same scaling changes nothing there.
	assert.InDelta(t,
		float64(Brightness([3]float32{0, 1, 0}, [3]float32{1, 1, 0})),
		float64(Brightness([3]float32{0, 3, 0}, [3]float32{1, 1, 0})),
		1e-6)
}

func TestShadeHeadOnHighlight(t *testing.T) {
	// Flat quad facing the light directly with the camera along the same axis:
	// brightness 1, specular factor 1 before damping, damped factor 1, and a
	// final specular of 0.5 per channel.
	u := &GPULightingUniform{
		LightColour:  [3]float32{1, 1, 1},
		ShineDamper:  10,
		Reflectivity: 0.5,
	}
	in := Inputs{
		Normal:    [3]float32{0, 0, 1},
		ToLight:   [3]float32{0, 0, 1},
		ToCamera:  [3]float32{0, 0, 1},
		TexColour: [4]float32{1, 1, 1, 1},
	}

	require.InDelta(t, 1.0, Brightness(in.Normal, in.ToLight), 1e-6)
	require.InDelta(t, 1.0, SpecularFactor(in.Normal, in.ToLight, in.ToCamera), 1e-6)

	got := Shade(in, u)
	assert.InDelta(t, 1.5, got[0], 1e-5) // diffuse 1.0 + specular 0.5
	assert.InDelta(t, 1.5, got[1], 1e-5)
	assert.InDelta(t, 1.5, got[2], 1e-5)
}

func TestShadeModulatesTexture(t *testing.T) {
	u := &GPULightingUniform{
		LightColour:  [3]float32{1, 1, 1},
		ShineDamper:  10,
		Reflectivity: 0,
	}
	in := Inputs{
		Normal:    [3]float32{0, 0, 1},
		ToLight:   [3]float32{0, 0, 1},
		ToCamera:  [3]float32{0, 0, 1},
		TexColour: [4]float32{0.5, 0.25, 0, 1},
	}

	got := Shade(in, u)
	assert.InDelta(t, 0.5, got[0], 1e-6)
	assert.InDelta(t, 0.25, got[1], 1e-6)
	assert.InDelta(t, 0.0, got[2], 1e-6)
}

func TestShadeDampedSpecularFalloff(t *testing.T) {
	// glancing highlight: damping with a higher exponent must not increase it
	in := Inputs{
		Normal:    [3]float32{0, 0, 1},
		ToLight:   [3]float32{0.2, 0, 1},
		ToCamera:  [3]float32{-0.3, 0, 1},
		TexColour: [4]float32{0, 0, 0, 1},
	}
	factor := SpecularFactor(in.Normal, in.ToLight, in.ToCamera)
	require.Greater(t, factor, float32(0))
	require.Less(t, factor, float32(1))

	low := math32.Pow(factor, 2)
	high := math32.Pow(factor, 20)
	assert.Less(t, high, low)
}

func TestGPULightingUniformContract(t *testing.T) {
	u := &GPULightingUniform{
		LightColour:  [3]float32{1, 0.5, 0.25},
		ShineDamper:  10,
		Reflectivity: 0.5,
	}
	require.Equal(t, 32, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, 32)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, buf[0:4])   // light_colour.r = 1.0
	assert.Equal(t, []byte{0x00, 0x00, 0x20, 0x41}, buf[12:16]) // shine_damper = 10.0
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x3f}, buf[16:20]) // reflectivity = 0.5
}
