// Package light models the single scene point light the lit forward pass
// shades against. The light's position travels to the vertex stage through the
// scene uniform; its colour and the surface specular pair travel to the
// fragment stage through the lighting uniform.
package light

import (
	"github.com/lilith645/Maat-Graphics/engine/shading/lighting"
)

// Light is the scene's point light source.
//
// The position is homogeneous: a w of 1 places the light in the world, a w of
// 0 turns it into a directional source at infinity once the vertex stage
// subtracts the surface position.
type Light interface {
	// Position returns the homogeneous world-space position of the light.
	//
	// Returns:
	//   - [4]float32: position as (x, y, z, w)
	Position() [4]float32

	// Colour returns the RGB colour of the light.
	//
	// Returns:
	//   - [3]float32: colour as (r, g, b)
	Colour() [3]float32

	// ShineDamper returns the specular exponent applied to the reflected-ray
	// alignment term. Higher values tighten the highlight.
	//
	// Returns:
	//   - float32: the specular exponent
	ShineDamper() float32

	// Reflectivity returns the specular intensity multiplier.
	//
	// Returns:
	//   - float32: the specular multiplier
	Reflectivity() float32

	// LightingUniform packs the light's fragment-stage parameters into the GPU
	// uniform block the lit fragment stage consumes.
	//
	// Returns:
	//   - lighting.GPULightingUniform: the packed uniform data
	LightingUniform() lighting.GPULightingUniform

	// SetPosition sets the world-space position, keeping the current w.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetColour sets the RGB colour of the light.
	//
	// Parameters:
	//   - r, g, b: colour components
	SetColour(r, g, b float32)

	// SetSpecular sets the surface specular pair the light shades with.
	//
	// Parameters:
	//   - shineDamper: the specular exponent
	//   - reflectivity: the specular intensity multiplier
	SetSpecular(shineDamper, reflectivity float32)
}

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position     [4]float32
	colour       [3]float32
	shineDamper  float32
	reflectivity float32
}

var _ Light = &lightImpl{}

// NewLight creates a white point light above the origin with a broad, dim
// highlight, then applies the provided options.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		position:     [4]float32{0, 5, 0, 1},
		colour:       [3]float32{1, 1, 1},
		shineDamper:  10.0,
		reflectivity: 1.0,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [4]float32 {
	return l.position
}

func (l *lightImpl) Colour() [3]float32 {
	return l.colour
}

func (l *lightImpl) ShineDamper() float32 {
	return l.shineDamper
}

func (l *lightImpl) Reflectivity() float32 {
	return l.reflectivity
}

func (l *lightImpl) LightingUniform() lighting.GPULightingUniform {
	return lighting.GPULightingUniform{
		LightColour:  l.colour,
		ShineDamper:  l.shineDamper,
		Reflectivity: l.reflectivity,
	}
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position[0] = x
	l.position[1] = y
	l.position[2] = z
}

func (l *lightImpl) SetColour(r, g, b float32) {
	l.colour = [3]float32{r, g, b}
}

func (l *lightImpl) SetSpecular(shineDamper, reflectivity float32) {
	l.shineDamper = shineDamper
	l.reflectivity = reflectivity
}
